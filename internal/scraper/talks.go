package scraper

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/sane-sg23/internal/program"
)

// parseTalk extracts the sub-events of a Talk detail page in document order
func (s *Scraper) parseTalk(r io.Reader) ([]program.SubEvent, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	subEvents := make([]program.SubEvent, 0)

	var rowErr error
	doc.Find("tr.agenda-item").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		sub, err := s.extractSubEvent(tr)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		subEvents = append(subEvents, sub)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return subEvents, nil
}

func (s *Scraper) extractSubEvent(tr *goquery.Selection) (program.SubEvent, error) {
	var sub program.SubEvent

	ssid, err := requireAttr(tr, "ssid")
	if err != nil {
		return sub, err
	}
	sub.SSID = ssid

	startUTC, err := requireAttr(tr, "s_utc")
	if err != nil {
		return sub, err
	}
	endUTC, err := requireAttr(tr, "e_utc")
	if err != nil {
		return sub, err
	}
	_, sub.Start, sub.End, err = program.Normalize(startUTC, endUTC)
	if err != nil {
		return sub, fmt.Errorf("%w: %w", ErrStructure, err)
	}

	titleCell, err := firstWithClass(tr, "title-speakers-td")
	if err != nil {
		return sub, err
	}
	anchor := titleCell.Find("a").First()
	if anchor.Length() == 0 {
		return sub, fmt.Errorf("%w: sub-event %s has no title link", ErrStructure, ssid)
	}
	sub.Title = nodeText(anchor)
	href, err := requireAttr(anchor, "href")
	if err != nil {
		return sub, err
	}
	sub.Link = s.resolveLink(href)

	trackList, err := firstWithClass(tr, "ptrack-list")
	if err != nil {
		return sub, err
	}
	sub.Recorded, sub.Streamed = program.ClassifyTags(trackTags(trackList))

	fixSubEventTime(&sub)

	return sub, nil
}
