package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// maxKeyWidth caps the first column; longer labels are truncated
const maxKeyWidth = 48

// Count is one row of a summary table
type Count struct {
	Key      string `json:"key"`
	Sessions int    `json:"sessions"`
	Recorded int    `json:"recorded"`
	Streamed int    `json:"streamed"`
}

// Summary contains the data to be output by the summary command
type Summary struct {
	Filter    string  `json:"filter"`
	Sessions  int     `json:"sessions"`
	SubEvents int     `json:"sub_events"`
	ByDate    []Count `json:"by_date"`
	ByType    []Count `json:"by_type"`
}

// WriteSummary writes the summary in the specified format
func WriteSummary(w io.Writer, summary *Summary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, summary *Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

// writeText outputs the summary as aligned tables
func writeText(w io.Writer, summary *Summary) error {
	fmt.Fprintf(w, "Filter: %s\n", summary.Filter)

	if summary.Sessions == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return nil
	}

	fmt.Fprintln(w)
	writeTable(w, "DATE", summary.ByDate)
	fmt.Fprintln(w)
	writeTable(w, "TYPE", summary.ByType)

	fmt.Fprintf(w, "\nTotal: %d sessions, %d sub-events\n", summary.Sessions, summary.SubEvents)
	return nil
}

func writeTable(w io.Writer, heading string, counts []Count) {
	width := runewidth.StringWidth(heading)
	for _, c := range counts {
		if cw := runewidth.StringWidth(c.Key); cw > width {
			width = cw
		}
	}
	if width > maxKeyWidth {
		width = maxKeyWidth
	}

	fmt.Fprintf(w, "%s  %8s  %8s  %8s\n", runewidth.FillRight(heading, width), "SESSIONS", "RECORDED", "STREAMED")
	for _, c := range counts {
		key := runewidth.FillRight(runewidth.Truncate(c.Key, width, "..."), width)
		fmt.Fprintf(w, "%s  %8d  %8d  %8d\n", key, c.Sessions, c.Recorded, c.Streamed)
	}
}
