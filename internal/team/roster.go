package team

import (
	"encoding/json"
	"strings"
)

// ParseRoster decodes the roster column of the team table: a JSON array of
// player objects. Any decode failure (malformed syntax, wrong shape, empty
// cell) yields an empty roster — never an error. A bad roster degrades the
// roster-based attributes to "No" downstream instead of dropping the row.
func ParseRoster(raw string) []Player {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []Player{}
	}

	var roster []Player
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		return []Player{}
	}
	if roster == nil {
		return []Player{}
	}
	return roster
}

// EncodeRoster encodes a roster for the team table's roster column.
// The inverse of ParseRoster; an empty roster encodes as "[]".
func EncodeRoster(roster []Player) string {
	if roster == nil {
		roster = []Player{}
	}
	data, err := json.Marshal(roster)
	if err != nil {
		// Player contains only strings, so this cannot fail in practice.
		return "[]"
	}
	return string(data)
}
