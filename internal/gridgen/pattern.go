package gridgen

import (
	"github.com/rotisserie/eris"
)

// Pattern selects the spatial autocorrelation structure of a generated grid.
type Pattern int

const (
	// PatternNone produces independent draws with no spatial structure.
	PatternNone Pattern = iota
	// PatternPositive smooths the base field so neighboring cells are similar.
	PatternPositive
	// PatternNegative flips smoothed values in a checkerboard so neighbors oppose.
	PatternNegative
	// PatternCluster builds the field from Gaussian bumps around random centers.
	PatternCluster
)

// patternNames maps each Pattern to its canonical string form.
var patternNames = map[Pattern]string{
	PatternNone:     "none",
	PatternPositive: "positive",
	PatternNegative: "negative",
	PatternCluster:  "cluster",
}

// String returns the canonical name of the pattern, or "unknown" for
// values outside the defined set.
func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePattern converts a pattern name to its Pattern value.
// Unrecognized names produce an error listing the permitted choices.
func ParsePattern(s string) (Pattern, error) {
	switch s {
	case "none":
		return PatternNone, nil
	case "positive":
		return PatternPositive, nil
	case "negative":
		return PatternNegative, nil
	case "cluster":
		return PatternCluster, nil
	default:
		return 0, eris.Errorf("gridgen: invalid autocorrelation pattern %q: choose from none, positive, negative, or cluster", s)
	}
}

// Patterns returns all supported patterns in canonical order.
func Patterns() []Pattern {
	return []Pattern{PatternNone, PatternPositive, PatternNegative, PatternCluster}
}
