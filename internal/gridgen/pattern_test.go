package gridgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name string
		want Pattern
	}{
		{"none", PatternNone},
		{"positive", PatternPositive},
		{"negative", PatternNegative},
		{"cluster", PatternCluster},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePattern(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.name, p.String())
		})
	}
}

func TestParsePatternInvalid(t *testing.T) {
	for _, name := range []string{"diagonal", "", "Positive", "random"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePattern(name)
			require.Error(t, err)
			// The error must enumerate the permitted choices.
			assert.Contains(t, err.Error(), "none")
			assert.Contains(t, err.Error(), "positive")
			assert.Contains(t, err.Error(), "negative")
			assert.Contains(t, err.Error(), "cluster")
		})
	}
}

func TestPatternStringUnknown(t *testing.T) {
	assert.Equal(t, "unknown", Pattern(99).String())
}

func TestPatterns(t *testing.T) {
	assert.Equal(t, []Pattern{PatternNone, PatternPositive, PatternNegative, PatternCluster}, Patterns())
}
