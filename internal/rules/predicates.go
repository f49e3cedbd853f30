package rules

import (
	"github.com/tbraden/hoopscout/internal/team"
)

const (
	// topRankThreshold is the cutoff for "elite at this stat": ranked in the
	// national top 50.
	topRankThreshold = 50

	// fewTurnoverRank is the inverted cutoff for turnovers committed: a team
	// ranked 300th or worse in turnovers per game commits very few of them.
	// Tied to the ranked population of the source site (350+ teams).
	fewTurnoverRank = 300

	// startersCount is how many roster entries the roster rules look at.
	// The roster is sorted by scoring, so the first five are the core.
	startersCount = 5

	topRecruitRank    = 100
	topRecruitsNeeded = 2
	guardScoringMin   = 15.0
	tallInches        = 78 // 6'6"
	tallPlayersNeeded = 3
)

// rankRule is true when the season's rank in a column is at or inside the
// threshold (1 = best).
type rankRule struct {
	name      string
	column    string
	threshold int
}

func (r rankRule) Name() string { return r.name }

func (r rankRule) Evaluate(s *team.Season) bool {
	rank, ok := s.RankValue(r.column)
	return ok && rank <= r.threshold
}

// invertedRankRule is true when the rank is at or beyond the threshold. Used
// for turnovers committed, where being ranked near the bottom means coughing
// the ball up least.
type invertedRankRule struct {
	name      string
	column    string
	threshold int
}

func (r invertedRankRule) Name() string { return r.name }

func (r invertedRankRule) Evaluate(s *team.Season) bool {
	rank, ok := s.RankValue(r.column)
	return ok && rank >= r.threshold
}

// rosterRule evaluates a condition over the top scorers. Fewer than five
// roster entries is always false: there is not enough of a core to judge.
type rosterRule struct {
	name string
	eval func(starters []team.Player) bool
}

func (r rosterRule) Name() string { return r.name }

func (r rosterRule) Evaluate(s *team.Season) bool {
	if len(s.Roster) < startersCount {
		return false
	}
	return r.eval(s.Roster[:startersCount])
}

// experiencedCore: more upperclassmen (JR/SR) than lowerclassmen (FR/SO)
// among the top scorers.
func experiencedCore(starters []team.Player) bool {
	upper, lower := 0, 0
	for _, p := range starters {
		switch p.Class {
		case "JR", "SR":
			upper++
		case "FR", "SO":
			lower++
		}
	}
	return upper > lower
}

// multipleTopRecruits: at least two starters carried a top-100 recruit
// ranking. RSCI text like "37 (2021)" counts by its leading number.
func multipleTopRecruits(starters []team.Player) bool {
	count := 0
	for _, p := range starters {
		if rank, ok := team.LeadingInt(p.RSCIRank); ok && rank <= topRecruitRank {
			count++
		}
	}
	return count >= topRecruitsNeeded
}

// hasScoringGuard: any guard among the starters averaging more than 15 points.
func hasScoringGuard(starters []team.Player) bool {
	for _, p := range starters {
		if !isGuard(p.Pos) {
			continue
		}
		if pts, ok := team.PointsPerGame(p.StatsSummary); ok && pts > guardScoringMin {
			return true
		}
	}
	return false
}

func isGuard(pos string) bool {
	switch pos {
	case "G", "PG", "SG":
		return true
	}
	return false
}

// hasSize: at least three starters standing 6'6" or taller. Entries with an
// unparsable height are skipped, not counted.
func hasSize(starters []team.Player) bool {
	tall := 0
	for _, p := range starters {
		if inches, ok := team.HeightInches(p.Height); ok && inches >= tallInches {
			tall++
		}
	}
	return tall >= tallPlayersNeeded
}
