package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tbraden/hoopscout/internal/storage"
	"github.com/tbraden/hoopscout/internal/team"
)

func writeTeamTable(t *testing.T, dir string) {
	t.Helper()
	store, err := storage.New(dir)
	if err != nil {
		t.Fatalf("initializing storage: %v", err)
	}
	seasons := []team.Season{
		{Year: 2024, Team: "UConn", Ranks: map[string]string{team.RankPTS: "4"}},
		{Year: 2024, Team: "Purdue"},
	}
	if err := store.SaveTeams(seasons); err != nil {
		t.Fatalf("saving team table: %v", err)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// NewRootCmd re-registers every flag, resetting the package-level flag
	// vars to their defaults between test cases.
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAnalyzeCommandWritesCSV(t *testing.T) {
	dir := t.TempDir()
	writeTeamTable(t, dir)

	out, err := runCommand(t, "analyze", "--data-dir", dir)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !strings.Contains(out, "Analyzed 2 teams") {
		t.Errorf("unexpected output: %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, storage.AnalysisFile))
	if err != nil {
		t.Fatalf("analysis table not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "2024,UConn,Yes") {
		t.Errorf("unexpected analysis content:\n%s", content)
	}
	if !strings.Contains(content, "2024,Purdue,No") {
		t.Errorf("unexpected analysis content:\n%s", content)
	}
}

func TestAnalyzeCommandTextFormat(t *testing.T) {
	dir := t.TempDir()
	writeTeamTable(t, dir)

	out, err := runCommand(t, "analyze", "--data-dir", dir, "--format", "text")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !strings.Contains(out, "2024 UConn: Can Score") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestAnalyzeCommandRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	writeTeamTable(t, dir)

	if _, err := runCommand(t, "analyze", "--data-dir", dir, "--format", "xml"); err == nil {
		t.Fatal("expected an error for an invalid format")
	}
}

func TestAnalyzeCommandEmptyTable(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCommand(t, "analyze", "--data-dir", dir); err == nil {
		t.Fatal("expected an error when the team table is missing")
	}
}

func TestScrapeCommandRejectsInvertedYears(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "scrape", "--data-dir", dir, "--start-year", "2024", "--end-year", "2020")
	if err == nil {
		t.Fatal("expected an error for an inverted year range")
	}
}
