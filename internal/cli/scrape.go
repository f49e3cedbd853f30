package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tbraden/hoopscout/internal/scraper"
	"github.com/tbraden/hoopscout/internal/storage"
	"github.com/tbraden/hoopscout/internal/team"
)

var (
	flagStartYear int
	flagEndYear   int
)

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Collect Final Four team stats and rosters into the team table",
		RunE:  runScrape,
	}

	cmd.Flags().IntVar(&flagStartYear, "start-year", 0, "First season to scrape (default from config)")
	cmd.Flags().IntVar(&flagEndYear, "end-year", 0, "Last season to scrape (default from config)")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	startYear := cfg.StartYear
	endYear := cfg.EndYear
	if flagStartYear != 0 {
		startYear = flagStartYear
	}
	if flagEndYear != 0 {
		endYear = flagEndYear
	}
	if startYear > endYear {
		return fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(
		scraper.WithBaseURL(cfg.BaseURL),
		scraper.WithUserAgent(cfg.UserAgent),
		scraper.WithDelay(cfg.RequestDelay()),
	)

	var seasons []team.Season
	for year := startYear; year <= endYear; year++ {
		log.Info().Int("year", year).Msg("scraping season")

		found, err := sc.FetchFinalFour(year)
		if err != nil {
			// A missing season page should not lose everything scraped so
			// far; log and move on.
			log.Warn().Err(err).Int("year", year).Msg("season scrape failed")
			continue
		}

		log.Debug().Int("year", year).Int("teams", len(found)).Msg("season scraped")
		seasons = append(seasons, found...)
	}

	if len(seasons) == 0 {
		return fmt.Errorf("no teams scraped for %d-%d", startYear, endYear)
	}

	if err := store.SaveTeams(seasons); err != nil {
		return fmt.Errorf("saving team table: %w", err)
	}

	log.Info().Int("teams", len(seasons)).Str("path", store.TeamsPath()).Msg("team table written")
	fmt.Fprintf(cmd.OutOrStdout(), "Scraped %d teams to %s\n", len(seasons), store.TeamsPath())
	return nil
}
