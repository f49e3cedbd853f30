package team

import (
	"strconv"
	"strings"
)

// Rank column names for the statistics the analysis rules consume.
// Lower rank is better for every column except TOV, where a high rank
// means few turnovers committed.
const (
	RankPTS      = "PTS Rank"
	RankTOV      = "TOV Rank"
	Rank3P       = "3P Rank"
	RankORB      = "ORB Rank"
	RankFTPct    = "FT% Rank"
	RankOppPTS   = "Opponent PTS Rank"
	RankOppTOV   = "Opponent TOV Rank"
	RankOpp3PPct = "Opponent 3P% Rank"
)

// baseRankColumns lists the team rank columns in the order they appear in the
// per-game stats table on the source site. The opponent columns mirror this
// list with an "Opponent " prefix.
var baseRankColumns = []string{
	"FG Rank", "FGA Rank", "FG% Rank",
	"2P Rank", "2PA Rank", "2P% Rank",
	"3P Rank", "3PA Rank", "3P% Rank",
	"FT Rank", "FTA Rank", "FT% Rank",
	"ORB Rank", "DRB Rank", "TRB Rank",
	"AST Rank", "STL Rank", "BLK Rank",
	"TOV Rank", "PF Rank", "PTS Rank",
}

// RankColumns returns the canonical ordered list of rank columns: all team
// columns followed by their opponent counterparts. This is the column order
// used when the team table is persisted.
func RankColumns() []string {
	cols := make([]string, 0, len(baseRankColumns)*2)
	cols = append(cols, baseRankColumns...)
	for _, c := range baseRankColumns {
		cols = append(cols, "Opponent "+c)
	}
	return cols
}

// Season represents one team's tournament season
type Season struct {
	Year   int
	Team   string
	Ranks  map[string]string // raw rank text keyed by rank column name
	Roster []Player          // sorted by descending scoring contribution
}

// Player is one roster entry as scraped from the team's season page
type Player struct {
	Name         string `json:"player"`
	Link         string `json:"player_link,omitempty"`
	Number       string `json:"number,omitempty"`
	Class        string `json:"class,omitempty"`
	Pos          string `json:"pos,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       string `json:"weight,omitempty"`
	Hometown     string `json:"hometown,omitempty"`
	HighSchool   string `json:"high_school,omitempty"`
	RSCIRank     string `json:"rsci_rank,omitempty"`
	StatsSummary string `json:"stats_summary,omitempty"`
}

// Rank returns the raw rank text for a column, or "" if the column was never
// scraped for this season.
func (s *Season) Rank(column string) string {
	if s.Ranks == nil {
		return ""
	}
	return s.Ranks[column]
}

// RankValue parses the rank for a column as a 1-based ordinal.
// Returns false if the column is missing or the text is not an integer.
func (s *Season) RankValue(column string) (int, bool) {
	raw := strings.TrimSpace(s.Rank(column))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
