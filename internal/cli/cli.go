package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbraden/hoopscout/internal/config"
	"github.com/tbraden/hoopscout/internal/logging"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hoopscout",
		Short: "Scrape and analyze Final Four team data",
		Long: `A CLI tool that scrapes historical Final Four team statistics and
rosters from sports-reference.com and derives yes/no scouting attributes
(can score, has size, experienced core, ...) for each team season.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for the team and analysis tables")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newAnalyzeCmd())

	return cmd
}

// loadConfig resolves configuration and applies flag overrides, then
// initializes logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	logging.Init(cfg.LogLevel)
	return cfg, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
