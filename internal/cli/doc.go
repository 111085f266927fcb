// Package cli implements the command-line interface for sg23-catalog.
//
// The root command builds the session catalog once: it loads the configuration,
// reads each day's agenda through the page cache, writes the JSON export and
// optionally an iCalendar feed. The summary subcommand reads an existing export,
// applies the viewer's filters and prints per-date and per-type counts as an
// aligned text table or JSON.
package cli
