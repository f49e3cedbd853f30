// Package scraper collects Final Four team data from sports-reference.com.
//
// For each season it finds the four tournament teams on the season summary
// page, then visits each team's page to pull the roster table and the
// national rank rows of the per-game stats table. A failed team page logs a
// warning and leaves that team's stats empty rather than aborting the run.
// Requests are throttled with a configurable delay to stay polite to the
// source site.
package scraper
