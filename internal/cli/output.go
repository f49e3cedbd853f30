package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tbraden/hoopscout/internal/rules"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains analysis data to be printed
type OutputResult struct {
	Columns []string         `json:"columns"`
	Teams   []rules.Analysis `json:"teams"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text: one line per team
// listing the attributes it earned.
func writeText(w io.Writer, result *OutputResult) error {
	if len(result.Teams) == 0 {
		fmt.Fprintln(w, "No teams analyzed.")
		return nil
	}

	for _, t := range result.Teams {
		var earned []string
		for _, col := range result.Columns {
			if t.Answers[col] == rules.AnswerYes {
				earned = append(earned, col)
			}
		}

		if len(earned) == 0 {
			fmt.Fprintf(w, "%d %s: -\n", t.Year, t.Team)
			continue
		}
		fmt.Fprintf(w, "%d %s:", t.Year, t.Team)
		for i, attr := range earned {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, " %s", attr)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nTotal: %d teams\n", len(result.Teams))
	return nil
}
