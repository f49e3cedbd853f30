// Package team defines the data model for scraped team seasons.
//
// A Season is one (year, team) row of the Final Four table: the national rank
// text for each tracked statistic plus the roster, pre-sorted by scoring
// contribution. The package also provides the parsing primitives the rest of
// the code relies on — roster decoding, leading-number extraction from free
// text, and height conversion. All of these are total: malformed input
// degrades to a zero value, never to an error.
package team
