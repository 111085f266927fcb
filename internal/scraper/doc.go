// Package scraper fetches and parses the SIGGRAPH 2023 program pages.
//
// A day's agenda snippet is parsed into Sessions, classified through an ordered
// sequence of passes (program tags, type policy, cancellation marker), and every
// "Talk" session is expanded by fetching and parsing its detail page into SubEvents.
// Raw pages come from a PageSource; CachedSource downloads each page once and keeps
// it on disk so repeated runs parse identical input. A small table of known source
// defects patches specific historical rows of the published program.
package scraper
