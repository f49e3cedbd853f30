package team

import (
	"regexp"
	"strconv"
	"strings"
)

// Free-text extraction patterns. Recruit ranks look like "37 (2021)", stat
// summaries like "17.5 Pts, 4.2 Reb, 4.0 Ast"; both are matched from the
// start of the string only.
var (
	leadingIntPattern = regexp.MustCompile(`^(\d+)`)
	pointsPattern     = regexp.MustCompile(`^(\d+\.?\d*)\s*Pts`)
)

// LeadingInt extracts a leading integer from free text, e.g. "37 (2021)" → 37.
// Returns false if the text does not start with a digit.
func LeadingInt(s string) (int, bool) {
	match := leadingIntPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// PointsPerGame extracts the points figure from a stats summary,
// e.g. "17.5 Pts, 4.2 Reb" → 17.5. Returns false if the summary does not
// start with a number followed by "Pts".
func PointsPerGame(summary string) (float64, bool) {
	match := pointsPattern.FindStringSubmatch(strings.TrimSpace(summary))
	if match == nil {
		return 0, false
	}
	pts, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return pts, true
}

// HeightInches converts a "feet-inches" height string such as "6-8" to total
// inches. Returns false for anything that is not two integers joined by a
// single dash.
func HeightInches(height string) (int, bool) {
	feetText, inchesText, ok := strings.Cut(strings.TrimSpace(height), "-")
	if !ok {
		return 0, false
	}
	feet, err := strconv.Atoi(feetText)
	if err != nil {
		return 0, false
	}
	inches, err := strconv.Atoi(inchesText)
	if err != nil {
		return 0, false
	}
	return feet*12 + inches, true
}
