package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"github.com/tbraden/hoopscout/internal/team"
)

const (
	DefaultBaseURL = "https://www.sports-reference.com"
	UserAgent      = "hoopscout/1.0 (github.com/tbraden/hoopscout)"
	Timeout        = 30 * time.Second

	// DefaultDelay is the pause before each team page request. The source
	// site rate-limits aggressive clients.
	DefaultDelay = 3 * time.Second
)

// Scraper fetches and parses season and team pages
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
	delay     time.Duration
}

// Option configures a Scraper
type Option func(*Scraper)

// WithBaseURL overrides the source site base URL. Used by tests to point the
// scraper at a local server.
func WithBaseURL(baseURL string) Option {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		s.userAgent = ua
	}
}

// WithDelay sets the pause before each team page request.
func WithDelay(delay time.Duration) Option {
	return func(s *Scraper) {
		s.delay = delay
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:   DefaultBaseURL,
		userAgent: UserAgent,
		delay:     DefaultDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchFinalFour fetches the Final Four teams for a season along with each
// team's rank stats and roster. A team page that fails to fetch or parse is
// logged and returned with empty stats; the slice always contains one entry
// per team found on the season page.
func (s *Scraper) FetchFinalFour(year int) ([]team.Season, error) {
	url := fmt.Sprintf("%s/cbb/seasons/men/%d.html", s.baseURL, year)

	body, err := s.get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching season page: %w", err)
	}
	entries, err := parseFinalFour(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing season page: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no Final Four teams found for %d", year)
	}

	seasons := make([]team.Season, 0, len(entries))
	for _, entry := range entries {
		season := team.Season{
			Year:  year,
			Team:  entry.name,
			Ranks: map[string]string{},
		}

		school := schoolFromLink(entry.link)
		if school == "" {
			log.Warn().Int("year", year).Str("team", entry.name).
				Msg("no school link on season page, skipping team stats")
			seasons = append(seasons, season)
			continue
		}

		time.Sleep(s.delay)

		ranks, roster, err := s.fetchTeamPage(school, year)
		if err != nil {
			log.Warn().Err(err).Int("year", year).Str("team", entry.name).
				Msg("fetching team stats failed")
			seasons = append(seasons, season)
			continue
		}

		season.Ranks = ranks
		season.Roster = roster
		seasons = append(seasons, season)
	}

	return seasons, nil
}

// fetchTeamPage fetches a team's season page and extracts its rank stats and
// roster.
func (s *Scraper) fetchTeamPage(school string, year int) (map[string]string, []team.Player, error) {
	url := fmt.Sprintf("%s/cbb/schools/%s/men/%d.html", s.baseURL, school, year)

	body, err := s.get(url)
	if err != nil {
		return nil, nil, err
	}
	return parseTeamPage(strings.NewReader(body))
}

func (s *Scraper) get(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code for %s: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// finalFourEntry is one team link from the season summary page
type finalFourEntry struct {
	name string
	link string
}

// parseFinalFour extracts the Final Four team links from a season summary
// page. The teams are the links inside the paragraph that carries the
// "Final Four" label.
func parseFinalFour(r io.Reader) ([]finalFourEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var entries []finalFourEntry

	doc.Find("strong").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) != "Final Four" {
			return true
		}

		sel.Closest("p").Find("a").Each(func(j int, link *goquery.Selection) {
			name := strings.TrimSpace(link.Text())
			if name == "" {
				return
			}
			href, _ := link.Attr("href")
			entries = append(entries, finalFourEntry{name: name, link: href})
		})
		return false
	})

	return entries, nil
}

// baseStats maps the per-game table's data-stat attributes to the rank
// column names used in the team table.
var baseStats = map[string]string{
	"fg_per_g":   "FG Rank",
	"fga_per_g":  "FGA Rank",
	"fg_pct":     "FG% Rank",
	"fg2_per_g":  "2P Rank",
	"fg2a_per_g": "2PA Rank",
	"fg2_pct":    "2P% Rank",
	"fg3_per_g":  "3P Rank",
	"fg3a_per_g": "3PA Rank",
	"fg3_pct":    "3P% Rank",
	"ft_per_g":   "FT Rank",
	"fta_per_g":  "FTA Rank",
	"ft_pct":     "FT% Rank",
	"orb_per_g":  "ORB Rank",
	"drb_per_g":  "DRB Rank",
	"trb_per_g":  "TRB Rank",
	"ast_per_g":  "AST Rank",
	"stl_per_g":  "STL Rank",
	"blk_per_g":  "BLK Rank",
	"tov_per_g":  "TOV Rank",
	"pf_per_g":   "PF Rank",
	"pts_per_g":  "PTS Rank",
}

// parseTeamPage extracts rank stats and the roster from a team season page.
// The per-game table holds four body rows: team per-game values, team ranks,
// opponent per-game values, opponent ranks. Only the two rank rows are used.
func parseTeamPage(r io.Reader) (map[string]string, []team.Player, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}

	ranks := make(map[string]string)
	roster := parseRosterTable(doc)

	rows := doc.Find("table#season-total_per_game tbody tr")
	if rows.Length() < 4 {
		// Roster may still be useful even when the stats table is absent.
		return ranks, roster, nil
	}

	// Team rank row
	rows.Eq(1).Find("th, td").Each(func(i int, cell *goquery.Selection) {
		stat, _ := cell.Attr("data-stat")
		if column, ok := baseStats[stat]; ok {
			ranks[column] = cleanRank(cell.Text())
		}
	})

	// Opponent rank row
	rows.Eq(3).Find("th, td").Each(func(i int, cell *goquery.Selection) {
		stat, _ := cell.Attr("data-stat")
		if column, ok := baseStats[strings.TrimPrefix(stat, "opp_")]; ok {
			ranks["Opponent "+column] = cleanRank(cell.Text())
		}
	})

	return ranks, roster, nil
}

// parseRosterTable extracts roster rows in page order. The source site lists
// players by descending scoring contribution, which the analysis rules rely
// on when slicing the top five.
func parseRosterTable(doc *goquery.Document) []team.Player {
	var roster []team.Player

	doc.Find("table#roster tbody tr").Each(func(i int, row *goquery.Selection) {
		var p team.Player

		nameCell := row.Find("td[data-stat='player'], th[data-stat='player']").First()
		if link := nameCell.Find("a").First(); link.Length() > 0 {
			p.Name = strings.TrimSpace(link.Text())
			p.Link, _ = link.Attr("href")
		} else {
			p.Name = strings.TrimSpace(nameCell.Text())
		}

		p.Number = cellText(row, "number")
		p.Class = cellText(row, "class")
		p.Pos = cellText(row, "pos")
		p.Height = cellText(row, "height")
		p.Weight = cellText(row, "weight")
		p.Hometown = cellText(row, "hometown")
		p.HighSchool = cellText(row, "high_school")
		p.StatsSummary = cellText(row, "summary")

		// The RSCI cell is rendered with an "iz" class when the player was
		// never ranked.
		rsci := row.Find("td[data-stat='rsci']").First()
		if rsci.Length() > 0 && !rsci.HasClass("iz") {
			p.RSCIRank = strings.TrimSpace(rsci.Text())
		}

		roster = append(roster, p)
	})

	return roster
}

func cellText(row *goquery.Selection, stat string) string {
	return strings.TrimSpace(row.Find("td[data-stat='" + stat + "']").First().Text())
}

var ordinalPattern = regexp.MustCompile(`(\d)(st|nd|rd|th)`)

// cleanRank strips ordinal suffixes from rank text: "31st" → "31".
func cleanRank(text string) string {
	return ordinalPattern.ReplaceAllString(strings.TrimSpace(text), "$1")
}

// schoolFromLink extracts the school slug from a team href like
// "/cbb/schools/duke/men/2024.html".
func schoolFromLink(link string) string {
	parts := strings.Split(strings.TrimSpace(link), "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-3]
}
