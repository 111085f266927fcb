package program

import (
	"fmt"
	"strings"
)

// Status is the tri-state recorded/streamed flag of a session or sub-event
type Status string

const (
	StatusYes     Status = "Yes"
	StatusNo      Status = "No"
	StatusUnknown Status = "Unknown"
)

// TypeTalk is the only session type whose detail page is expanded into sub-events
const TypeTalk = "Talk"

// SubEvent is one talk inside a composite Talk session
type SubEvent struct {
	SSID     string `json:"ssid"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Recorded Status `json:"recorded"`
	Streamed Status `json:"streamed"`
}

func (s SubEvent) String() string {
	return strings.Join([]string{
		s.Title,
		fmt.Sprintf("%s - %s", s.Start, s.End),
		fmt.Sprintf("Recorded: %s, Streamed: %s", s.Recorded, s.Streamed),
	}, " | ")
}

// Session is one top-level agenda entry
type Session struct {
	EvID      string     `json:"evid"`
	TypeName  string     `json:"type_name"` // may be several labels joined by ", "
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Location  string     `json:"location"`
	Date      string     `json:"date"` // MM-DD, local
	Start     string     `json:"start"`
	End       string     `json:"end"`
	Recorded  Status     `json:"recorded"`
	Streamed  Status     `json:"streamed"`
	SubEvents []SubEvent `json:"sub_events"`
}

// NewSession creates a Session with unknown status and an empty, non-nil sub-event list
func NewSession(evid string) *Session {
	return &Session{
		EvID:      evid,
		Recorded:  StatusUnknown,
		Streamed:  StatusUnknown,
		SubEvents: []SubEvent{},
	}
}

func (s *Session) String() string {
	return strings.Join([]string{
		s.EvID,
		s.TypeName,
		s.Title,
		s.Location,
		fmt.Sprintf("%s %s - %s", s.Date, s.Start, s.End),
		fmt.Sprintf("Recorded: %s, Streamed: %s", s.Recorded, s.Streamed),
	}, " | ")
}

// TypeLabels splits a composite type label into its individual labels
func (s *Session) TypeLabels() []string {
	if s.TypeName == "" {
		return nil
	}
	return strings.Split(s.TypeName, ", ")
}

// Catalog is the ordered list of all sessions, in day-then-row discovery order
type Catalog []*Session

// SubEventCount returns the total number of sub-events across the catalog
func (c Catalog) SubEventCount() int {
	n := 0
	for _, s := range c {
		n += len(s.SubEvents)
	}
	return n
}

// DayReport holds the diagnostics gathered while extracting one day's agenda
type DayReport struct {
	Day            int      `json:"day"`
	Added          int      `json:"added"`
	Skipped        int      `json:"skipped"`
	UnhandledTypes []string `json:"unhandled_types,omitempty"` // sorted
}
