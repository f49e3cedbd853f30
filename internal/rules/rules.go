package rules

import (
	"github.com/tbraden/hoopscout/internal/team"
)

// Rule is a single scouting attribute: a named, side-effect-free predicate
// over one team season. Evaluate must be total — it returns false for
// missing or malformed input rather than failing.
type Rule interface {
	Name() string
	Evaluate(s *team.Season) bool
}

// Answer values used in the analysis table.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// Registry returns the ordered list of scouting rules. The order determines
// the column order of the analysis table, so it is part of the output
// contract; append new rules at the end.
func Registry() []Rule {
	return []Rule{
		rankRule{"Can Score", team.RankPTS, topRankThreshold},
		rankRule{"Forces Turnovers", team.RankOppTOV, topRankThreshold},
		invertedRankRule{"Protects the Ball", team.RankTOV, fewTurnoverRank},
		rankRule{"High Volume 3PT Team", team.Rank3P, topRankThreshold},
		rankRule{"Elite Offensive Rebounding", team.RankORB, topRankThreshold},
		rankRule{"Good Defense", team.RankOppPTS, topRankThreshold},
		rankRule{"Defends Three Point", team.RankOpp3PPct, topRankThreshold},
		rankRule{"Good Free Throw Team", team.RankFTPct, topRankThreshold},
		rosterRule{"Experienced Core", experiencedCore},
		rosterRule{"Multiple Top Recruits", multipleTopRecruits},
		rosterRule{"Has Scoring Guard", hasScoringGuard},
		rosterRule{"Has Size", hasSize},
	}
}

// Columns returns the rule names in registry order.
func Columns() []string {
	registry := Registry()
	cols := make([]string, len(registry))
	for i, r := range registry {
		cols[i] = r.Name()
	}
	return cols
}

// Analysis is one row of the analysis table: the season's natural key plus a
// Yes/No answer per rule, keyed by rule name.
type Analysis struct {
	Year    int               `json:"year"`
	Team    string            `json:"team"`
	Answers map[string]string `json:"answers"`
}

// Analyze evaluates every registered rule against every season. The output
// has exactly one row per input row, in input order, with Year and Team
// carried through unchanged. Rows with missing or malformed data are never
// dropped; their answers degrade to "No".
func Analyze(seasons []team.Season) []Analysis {
	registry := Registry()

	results := make([]Analysis, len(seasons))
	for i := range seasons {
		answers := make(map[string]string, len(registry))
		for _, rule := range registry {
			if rule.Evaluate(&seasons[i]) {
				answers[rule.Name()] = AnswerYes
			} else {
				answers[rule.Name()] = AnswerNo
			}
		}
		results[i] = Analysis{
			Year:    seasons[i].Year,
			Team:    seasons[i].Team,
			Answers: answers,
		}
	}

	return results
}
