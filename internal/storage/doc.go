// Package storage persists the team and analysis tables as CSV files in a
// data directory. The roster column of the team table is a JSON-encoded
// array of player objects; everything else is plain text. Reads are lenient:
// missing files yield empty tables and malformed cells degrade to absent
// ranks or empty rosters rather than errors.
package storage
