// Package rules derives scouting attributes from scraped team seasons.
//
// Each attribute is a named Rule: a total predicate over a single season that
// answers a yes/no question ("Can Score", "Has Size", ...). Eight rules test
// national rank thresholds, four examine the top five scorers on the roster.
// Rules never fail — a missing rank, an unparsable cell, or a short roster
// all evaluate to false, so every input row always produces a complete
// output row.
//
// The registry is an ordered list; its order fixes the column order of the
// analysis table.
package rules
