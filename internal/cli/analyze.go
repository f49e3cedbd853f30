package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tbraden/hoopscout/internal/rules"
	"github.com/tbraden/hoopscout/internal/storage"
)

var flagFormat string

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Derive scouting attributes from the team table",
		Long: `Evaluates the scouting rules against every row of the team table.
With --format csv (the default) the analysis table is written next to the
team table; text and json print to stdout instead.`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "csv", "Output format: csv, text or json")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := OutputFormat(flagFormat)
	switch format {
	case FormatCSV, FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format: %s (must be 'csv', 'text' or 'json')", flagFormat)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	seasons, err := store.LoadTeams()
	if err != nil {
		return fmt.Errorf("loading team table: %w", err)
	}
	if len(seasons) == 0 {
		return fmt.Errorf("team table %s is empty, run scrape first", store.TeamsPath())
	}

	log.Debug().Int("teams", len(seasons)).Msg("team table loaded")

	results := rules.Analyze(seasons)

	if format == FormatCSV {
		if err := store.SaveAnalysis(results); err != nil {
			return fmt.Errorf("saving analysis table: %w", err)
		}
		log.Info().Int("teams", len(results)).Str("path", store.AnalysisPath()).Msg("analysis table written")
		fmt.Fprintf(cmd.OutOrStdout(), "Analyzed %d teams, results in %s\n", len(results), store.AnalysisPath())
		return nil
	}

	result := &OutputResult{
		Columns: rules.Columns(),
		Teams:   results,
	}
	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
