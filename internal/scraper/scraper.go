package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

const (
	DefaultOrigin          = "https://s2023.siggraph.org"
	DefaultListURLTemplate = DefaultOrigin + "/wp-content/linklings_snippets/wp_program_view_all_%04d-%02d-%02d.txt"
	DefaultYear            = 2023
	DefaultMonth           = 8
	UserAgent              = "sg23-catalog/1.0 (github.com/pfrederiksen/sane-sg23)"
	Timeout                = 30 * time.Second
)

// Options configures where the program pages live
type Options struct {
	Origin string
	// ListURLTemplate is formatted with year, month and day
	ListURLTemplate string
	Year            int
	Month           int
}

// Scraper loads and parses agenda and talk pages through a PageSource
type Scraper struct {
	source          PageSource
	origin          *url.URL
	listURLTemplate string
	year            int
	month           int
}

// New creates a new Scraper reading pages from source. Zero options take the 2023 defaults.
func New(source PageSource, opts Options) (*Scraper, error) {
	if opts.Origin == "" {
		opts.Origin = DefaultOrigin
	}
	if opts.ListURLTemplate == "" {
		opts.ListURLTemplate = DefaultListURLTemplate
	}
	if opts.Year == 0 {
		opts.Year = DefaultYear
	}
	if opts.Month == 0 {
		opts.Month = DefaultMonth
	}

	origin, err := url.Parse(opts.Origin)
	if err != nil {
		return nil, fmt.Errorf("parsing origin: %w", err)
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("origin must be an absolute URL: %q", opts.Origin)
	}

	return &Scraper{
		source:          source,
		origin:          origin,
		listURLTemplate: opts.ListURLTemplate,
		year:            opts.Year,
		month:           opts.Month,
	}, nil
}

// DayURL returns the agenda snippet URL for a day of the configured month
func (s *Scraper) DayURL(day int) string {
	return fmt.Sprintf(s.listURLTemplate, s.year, s.month, day)
}

// LoadDay fetches one day's agenda and returns the sessions not yet in seen.
// New identifiers are added to seen.
func (s *Scraper) LoadDay(ctx context.Context, day int, seen *program.SeenSet) ([]*program.Session, *program.DayReport, error) {
	key := fmt.Sprintf("lists/%02d-%02d.html", s.month, day)
	raw, err := s.source.Fetch(ctx, key, s.DayURL(day))
	if err != nil {
		return nil, nil, fmt.Errorf("loading day %02d: %w", day, err)
	}

	sessions, report, err := s.parseAgenda(ctx, strings.NewReader(raw), seen)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing day %02d: %w", day, err)
	}
	report.Day = day

	return sessions, report, nil
}

// LoadTalk fetches a Talk session's detail page and returns its sub-events
func (s *Scraper) LoadTalk(ctx context.Context, evid, link string) ([]program.SubEvent, error) {
	if link == "" {
		return nil, fmt.Errorf("%w: talk %s has no detail link", ErrStructure, evid)
	}

	raw, err := s.source.Fetch(ctx, "talks/"+evid+".html", link)
	if err != nil {
		return nil, fmt.Errorf("loading talk %s: %w", evid, err)
	}

	subEvents, err := s.parseTalk(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing talk %s: %w", evid, err)
	}
	return subEvents, nil
}

// resolveLink makes href absolute against the site origin
func (s *Scraper) resolveLink(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return strings.TrimSuffix(s.origin.String(), "/") + href
	}
	return s.origin.ResolveReference(ref).String()
}
