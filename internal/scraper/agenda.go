package scraper

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/sane-sg23/internal/logger"
	"github.com/pfrederiksen/sane-sg23/internal/program"
)

// parseAgenda extracts the sessions of one day's agenda table, in row order.
// Rows whose identifier is already in seen are skipped.
func (s *Scraper) parseAgenda(ctx context.Context, r io.Reader, seen *program.SeenSet) ([]*program.Session, *program.DayReport, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, nil, fmt.Errorf("%w: agenda table not found", ErrStructure)
	}

	// rows of nested tables belong to their own table
	rows := table.Find("tr.agenda-item").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(table)
	})

	report := &program.DayReport{}
	sessions := make([]*program.Session, 0, rows.Length())
	unhandled := make(map[string]bool)

	var rowErr error
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		evid, err := requireAttr(tr, "psid")
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		if !seen.Add(evid) {
			report.Skipped++
			logger.IncrCounter("sessions.duplicates")
			return true
		}

		d, err := s.extractSession(tr, evid)
		if err != nil {
			rowErr = fmt.Errorf("session %s: %w", evid, err)
			return false
		}

		classify(d)
		if d.unhandled {
			unhandled[d.session.TypeName] = true
		}

		if d.rule == ruleTalk {
			subEvents, err := s.LoadTalk(ctx, evid, d.session.Link)
			if err != nil {
				rowErr = err
				return false
			}
			d.session.SubEvents = subEvents
		}

		sessions = append(sessions, d.session)
		logger.IncrCounter("sessions.emitted")
		logger.Debug("Session added", logger.Fields{
			"session": d.session.String(),
		})
		return true
	})
	if rowErr != nil {
		return nil, nil, rowErr
	}

	report.Added = len(sessions)
	report.UnhandledTypes = sortedKeys(unhandled)

	return sessions, report, nil
}

// extractSession reads the raw fields of one agenda row
func (s *Scraper) extractSession(tr *goquery.Selection, evid string) (*rowDraft, error) {
	session := program.NewSession(evid)

	typeCell, err := firstWithClass(tr, "presentation-type")
	if err != nil {
		return nil, err
	}
	session.TypeName = fixTypeLabel(nodeText(typeCell))

	titleCell, err := firstWithClass(tr, "presentation-title")
	if err != nil {
		return nil, err
	}
	session.Title = nodeText(titleCell)
	if href, ok := titleCell.Find("a").First().Attr("href"); ok && href != "" {
		session.Link = s.resolveLink(href)
	}

	locationCell, err := firstWithClass(tr, "presentation-location")
	if err != nil {
		return nil, err
	}
	session.Location = nodeText(locationCell)

	startUTC, err := requireAttr(tr, "s_utc")
	if err != nil {
		return nil, err
	}
	endUTC, err := requireAttr(tr, "e_utc")
	if err != nil {
		return nil, err
	}
	session.Date, session.Start, session.End, err = program.Normalize(startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructure, err)
	}

	tagCell, err := firstWithClass(tr, "presentation-tags")
	if err != nil {
		return nil, err
	}

	return &rowDraft{
		session: session,
		tags:    trackTags(tagCell),
	}, nil
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
