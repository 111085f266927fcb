// Package calendar renders a session catalog as an iCalendar feed.
package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

const (
	// ProductID identifies the generator in PRODID
	ProductID = "-//sane-sg23//sg23-catalog//EN"

	// UIDDomain is appended to every event UID
	UIDDomain = "s2023.siggraph.org"

	// FallbackURL is used for sessions without a detail link
	FallbackURL = "https://s2023.siggraph.org/full-program"
)

// Entry is one calendar event: a whole session, or one sub-event of a Talk
type Entry struct {
	UID         string
	Summary     string
	Location    string
	Description string
	URL         string
	Start       time.Time
	End         time.Time
}

// Entries expands the catalog into calendar entries. Sessions with sub-events are
// broken down into one entry per sub-event sharing the session's date and location.
func Entries(catalog program.Catalog, year int) ([]Entry, error) {
	entries := make([]Entry, 0, len(catalog))

	for _, s := range catalog {
		if len(s.SubEvents) == 0 {
			e, err := newEntry(year, s.Date, s.Start, s.End)
			if err != nil {
				return nil, fmt.Errorf("session %s: %w", s.EvID, err)
			}
			e.UID = fmt.Sprintf("%s@%s", s.EvID, UIDDomain)
			e.Summary = s.Title
			e.Location = s.Location
			e.Description = describe(s.TypeName, s.Recorded, s.Streamed)
			e.URL = linkOrFallback(s.Link)
			entries = append(entries, e)
			continue
		}

		for _, sub := range s.SubEvents {
			e, err := newEntry(year, s.Date, sub.Start, sub.End)
			if err != nil {
				return nil, fmt.Errorf("session %s sub-event %s: %w", s.EvID, sub.SSID, err)
			}
			e.UID = fmt.Sprintf("%s-%s@%s", s.EvID, sub.SSID, UIDDomain)
			e.Summary = fmt.Sprintf("%s | %s", s.Title, sub.Title)
			e.Location = s.Location
			e.Description = describe(s.TypeName, sub.Recorded, sub.Streamed)
			e.URL = linkOrFallback(sub.Link)
			entries = append(entries, e)
		}
	}

	return entries, nil
}

func newEntry(year int, date, start, end string) (Entry, error) {
	from, err := program.LocalTime(year, date, start)
	if err != nil {
		return Entry{}, err
	}
	to, err := program.LocalTime(year, date, end)
	if err != nil {
		return Entry{}, err
	}
	// Only the start carries a date; an earlier end ran past midnight
	if to.Before(from) {
		to = to.AddDate(0, 0, 1)
	}
	return Entry{Start: from, End: to}, nil
}

func describe(typeName string, recorded, streamed program.Status) string {
	return fmt.Sprintf("Type: %s\nRecorded: %s, Streamed: %s", typeName, recorded, streamed)
}

func linkOrFallback(link string) string {
	if link == "" {
		return FallbackURL
	}
	return link
}

// GenerateICS renders the catalog as an iCalendar document. stamp is written as
// DTSTAMP on every event so the same catalog always renders the same feed.
func GenerateICS(catalog program.Catalog, year int, stamp time.Time) (string, error) {
	entries, err := Entries(catalog, year)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("SIGGRAPH %d", year))

	for _, e := range entries {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Summary)
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		ev.SetDescription(e.Description)
		ev.SetURL(e.URL)
	}

	return cal.Serialize(), nil
}
