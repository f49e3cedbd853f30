// Package cli implements the command-line interface for hoopscout.
//
// The cli package provides the Cobra-based CLI with two subcommands: scrape,
// which collects Final Four team data into the team table, and analyze,
// which evaluates the scouting rules over that table and writes or prints
// the derived attributes. It coordinates the scraper, storage, and rules
// packages.
package cli
