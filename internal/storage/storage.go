package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/tbraden/hoopscout/internal/rules"
	"github.com/tbraden/hoopscout/internal/team"
)

const (
	// TeamsFile is the team table produced by the scrape command.
	TeamsFile = "final_four_teams.csv"
	// AnalysisFile is the derived table produced by the analyze command.
	AnalysisFile = "team_analysis.csv"
)

// Storage handles persistence of the team and analysis tables
type Storage struct {
	fs      afero.Fs
	dataDir string
}

// New creates a Storage backed by the OS filesystem
func New(dataDir string) (*Storage, error) {
	return NewWithFs(afero.NewOsFs(), dataDir)
}

// NewWithFs creates a Storage on the given filesystem. Tests use an
// in-memory fs.
func NewWithFs(fs afero.Fs, dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := fs.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		fs:      fs,
		dataDir: dataDir,
	}, nil
}

// TeamsPath returns the path of the team table.
func (s *Storage) TeamsPath() string {
	return filepath.Join(s.dataDir, TeamsFile)
}

// AnalysisPath returns the path of the analysis table.
func (s *Storage) AnalysisPath() string {
	return filepath.Join(s.dataDir, AnalysisFile)
}

// SaveTeams writes the team table: year and team first, then the canonical
// rank columns, then the JSON-encoded roster.
func (s *Storage) SaveTeams(seasons []team.Season) error {
	rankCols := team.RankColumns()

	header := make([]string, 0, len(rankCols)+3)
	header = append(header, "year", "team")
	header = append(header, rankCols...)
	header = append(header, "roster")

	records := make([][]string, 0, len(seasons)+1)
	records = append(records, header)

	for _, season := range seasons {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(season.Year), season.Team)
		for _, col := range rankCols {
			row = append(row, season.Rank(col))
		}
		row = append(row, team.EncodeRoster(season.Roster))
		records = append(records, row)
	}

	return s.writeCSV(s.TeamsPath(), records)
}

// LoadTeams reads the team table back. A missing file yields an empty slice.
// Unknown columns are ignored and known columns may be absent; a row with a
// bad year cell keeps year 0 rather than being dropped.
func (s *Storage) LoadTeams() ([]team.Season, error) {
	f, err := s.fs.Open(s.TeamsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []team.Season{}, nil
		}
		return nil, fmt.Errorf("opening team table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.LazyQuotes = true    // tolerate hand-edited roster cells

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading team table: %w", err)
	}
	if len(records) == 0 {
		return []team.Season{}, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	rankCols := team.RankColumns()

	seasons := make([]team.Season, 0, len(records)-1)
	for _, row := range records[1:] {
		year, _ := strconv.Atoi(strings.TrimSpace(cell(row, "year")))

		season := team.Season{
			Year:   year,
			Team:   cell(row, "team"),
			Ranks:  make(map[string]string),
			Roster: team.ParseRoster(cell(row, "roster")),
		}
		for _, col := range rankCols {
			if v := cell(row, col); v != "" {
				season.Ranks[col] = v
			}
		}
		seasons = append(seasons, season)
	}

	return seasons, nil
}

// SaveAnalysis writes the analysis table: year, team, then one Yes/No column
// per rule in registry order.
func (s *Storage) SaveAnalysis(results []rules.Analysis) error {
	cols := rules.Columns()

	header := make([]string, 0, len(cols)+2)
	header = append(header, "year", "team")
	header = append(header, cols...)

	records := make([][]string, 0, len(results)+1)
	records = append(records, header)

	for _, result := range results {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(result.Year), result.Team)
		for _, col := range cols {
			answer := result.Answers[col]
			if answer == "" {
				answer = rules.AnswerNo
			}
			row = append(row, answer)
		}
		records = append(records, row)
	}

	return s.writeCSV(s.AnalysisPath(), records)
}

func (s *Storage) writeCSV(path string, records [][]string) error {
	f, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
