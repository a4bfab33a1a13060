package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/gridstat/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gridstat",
	Short: "Synthetic spatial-autocorrelation grid lab",
	Long:  "Synthesizes square grids of values with a chosen spatial autocorrelation pattern and measures them with the global Moran's I statistic over rook-contiguity weights.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
