package scraper

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture %s: %v", name, err)
	}
	return data
}

func TestParseFinalFour(t *testing.T) {
	data := loadFixture(t, "season_2024.html")

	entries, err := parseFinalFour(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parseFinalFour failed: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("expected 4 Final Four teams, got %d", len(entries))
	}

	wantNames := []string{"UConn", "Purdue", "Alabama", "NC State"}
	for i, want := range wantNames {
		if entries[i].name != want {
			t.Errorf("team %d = %q, want %q", i, entries[i].name, want)
		}
		if entries[i].link == "" {
			t.Errorf("team %q has no link", entries[i].name)
		}
	}

	if entries[0].link != "/cbb/schools/uconn/men/2024.html" {
		t.Errorf("unexpected link %q", entries[0].link)
	}
}

func TestParseTeamPage(t *testing.T) {
	data := loadFixture(t, "team_2024.html")

	ranks, roster, err := parseTeamPage(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parseTeamPage failed: %v", err)
	}

	wantRanks := map[string]string{
		"FG Rank":           "6",
		"3P Rank":           "30",
		"FT% Rank":          "151",
		"ORB Rank":          "9",
		"TOV Rank":          "342",
		"PTS Rank":          "4",
		"Opponent FG Rank":  "21",
		"Opponent 3P Rank":  "52",
		"Opponent FT% Rank": "188",
		"Opponent ORB Rank": "33",
		"Opponent TOV Rank": "210",
		"Opponent PTS Rank": "44",
	}
	for column, want := range wantRanks {
		if got := ranks[column]; got != want {
			t.Errorf("rank %q = %q, want %q", column, got, want)
		}
	}

	if len(roster) != 5 {
		t.Fatalf("expected 5 roster entries, got %d", len(roster))
	}

	newton := roster[0]
	if newton.Name != "Tristen Newton" {
		t.Errorf("first player = %q, want Tristen Newton", newton.Name)
	}
	if newton.Link != "/cbb/players/tristen-newton-1.html" {
		t.Errorf("unexpected player link %q", newton.Link)
	}
	if newton.Class != "SR" || newton.Pos != "G" || newton.Height != "6-5" {
		t.Errorf("unexpected class/pos/height: %q/%q/%q", newton.Class, newton.Pos, newton.Height)
	}
	if newton.StatsSummary != "15.1 Pts, 6.6 Reb, 6.2 Ast" {
		t.Errorf("unexpected stats summary %q", newton.StatsSummary)
	}

	// Unranked players carry the "iz" class and must stay empty.
	if newton.RSCIRank != "" {
		t.Errorf("expected empty RSCI rank for unranked player, got %q", newton.RSCIRank)
	}
	if roster[1].RSCIRank != "41 (2022)" {
		t.Errorf("unexpected RSCI rank %q", roster[1].RSCIRank)
	}

	// Players without a profile link still get a name.
	if roster[2].Name != "Cam Spencer" || roster[2].Link != "" {
		t.Errorf("unexpected linkless player: %q / %q", roster[2].Name, roster[2].Link)
	}
}

func TestParseTeamPageNoStatsTable(t *testing.T) {
	html := `<html><body><p>No tables here</p></body></html>`

	ranks, roster, err := parseTeamPage(bytes.NewReader([]byte(html)))
	if err != nil {
		t.Fatalf("parseTeamPage failed: %v", err)
	}
	if len(ranks) != 0 {
		t.Errorf("expected no ranks, got %v", ranks)
	}
	if len(roster) != 0 {
		t.Errorf("expected no roster, got %d entries", len(roster))
	}
}

func TestCleanRank(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1st", "1"},
		{"2nd", "2"},
		{"3rd", "3"},
		{"4th", "4"},
		{"31st", "31"},
		{"342nd", "342"},
		{" 151st ", "151"},
		{"", ""},
		{"12", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := cleanRank(tt.input); got != tt.want {
				t.Errorf("cleanRank(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSchoolFromLink(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"/cbb/schools/uconn/men/2024.html", "uconn"},
		{"/cbb/schools/north-carolina-state/men/2024.html", "north-carolina-state"},
		{"", ""},
		{"uconn", ""},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			if got := schoolFromLink(tt.link); got != tt.want {
				t.Errorf("schoolFromLink(%q) = %q, want %q", tt.link, got, tt.want)
			}
		})
	}
}

func TestFetchFinalFour(t *testing.T) {
	season := loadFixture(t, "season_2024.html")
	teamPage := loadFixture(t, "team_2024.html")

	mux := http.NewServeMux()
	mux.HandleFunc("/cbb/seasons/men/2024.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write(season)
	})
	// Only UConn's page exists; the other three return 404 and must degrade
	// to stat-less seasons rather than failing the run.
	mux.HandleFunc("/cbb/schools/uconn/men/2024.html", func(w http.ResponseWriter, r *http.Request) {
		w.Write(teamPage)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	sc := New(WithBaseURL(server.URL), WithDelay(0))

	seasons, err := sc.FetchFinalFour(2024)
	if err != nil {
		t.Fatalf("FetchFinalFour failed: %v", err)
	}

	if len(seasons) != 4 {
		t.Fatalf("expected 4 seasons, got %d", len(seasons))
	}

	uconn := seasons[0]
	if uconn.Team != "UConn" || uconn.Year != 2024 {
		t.Errorf("unexpected first season: %+v", uconn)
	}
	if uconn.Ranks["PTS Rank"] != "4" {
		t.Errorf("PTS Rank = %q, want 4", uconn.Ranks["PTS Rank"])
	}
	if len(uconn.Roster) != 5 {
		t.Errorf("expected 5 roster entries, got %d", len(uconn.Roster))
	}

	for _, s := range seasons[1:] {
		if len(s.Ranks) != 0 || len(s.Roster) != 0 {
			t.Errorf("team %q should have empty stats after a failed fetch", s.Team)
		}
		if s.Year != 2024 || s.Team == "" {
			t.Errorf("team %q lost its key fields", s.Team)
		}
	}
}

func TestFetchFinalFourSeasonPageMissing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	sc := New(WithBaseURL(server.URL), WithDelay(0))
	if _, err := sc.FetchFinalFour(1999); err == nil {
		t.Fatal("expected an error for a missing season page")
	}
}

func TestFetchFinalFourNoTeams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>Nothing to see</p></body></html>")
	}))
	defer server.Close()

	sc := New(WithBaseURL(server.URL), WithDelay(0))
	if _, err := sc.FetchFinalFour(2024); err == nil {
		t.Fatal("expected an error when the Final Four section is absent")
	}
}
