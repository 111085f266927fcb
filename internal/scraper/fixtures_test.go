package scraper

import (
	"context"
	"fmt"
	"strings"
)

// fakeSource serves pages from memory and records requested keys
type fakeSource struct {
	pages   map[string]string
	fetched []string
	urls    []string
}

func newFakeSource(pages map[string]string) *fakeSource {
	return &fakeSource{pages: pages}
}

func (f *fakeSource) Fetch(_ context.Context, key, url string) (string, error) {
	f.fetched = append(f.fetched, key)
	f.urls = append(f.urls, url)
	page, ok := f.pages[key]
	if !ok {
		return "", fmt.Errorf("%w: no page for %s", ErrFetch, key)
	}
	return page, nil
}

type agendaRowFields struct {
	psid     string
	typeName string
	title    string
	href     string
	location string
	sUTC     string
	eUTC     string
	tags     []string
}

func agendaRow(r agendaRowFields) string {
	if r.sUTC == "" {
		r.sUTC = "2023-08-08T16:00:00Z"
	}
	if r.eUTC == "" {
		r.eUTC = "2023-08-08T17:30:00Z"
	}
	if r.location == "" {
		r.location = "Room 502"
	}

	title := r.title
	if r.href != "" {
		title = fmt.Sprintf(`<a href="%s">%s</a>`, r.href, r.title)
	}

	return fmt.Sprintf(`
	<tr class="agenda-item" psid="%s" s_utc="%s" e_utc="%s">
		<td class="presentation-type">%s</td>
		<td><span class="presentation-title">%s</span></td>
		<td class="presentation-location">%s</td>
		<td class="presentation-tags">%s</td>
	</tr>`, r.psid, r.sUTC, r.eUTC, r.typeName, title, r.location, trackDivs(r.tags))
}

func agendaPage(rows ...string) string {
	return "<div class=\"program\"><table class=\"agenda\">" + strings.Join(rows, "\n") + "</table></div>"
}

type talkRowFields struct {
	ssid  string
	title string
	href  string
	sUTC  string
	eUTC  string
	tags  []string
}

func talkRow(r talkRowFields) string {
	if r.sUTC == "" {
		r.sUTC = "2023-08-08T16:00:00Z"
	}
	if r.eUTC == "" {
		r.eUTC = "2023-08-08T16:20:00Z"
	}

	return fmt.Sprintf(`
	<tr class="agenda-item" ssid="%s" s_utc="%s" e_utc="%s">
		<td class="title-speakers-td"><a href="%s">%s</a><div class="speakers">A. Speaker</div></td>
		<td><div class="ptrack-list">%s</div></td>
	</tr>`, r.ssid, r.sUTC, r.eUTC, r.href, r.title, trackDivs(r.tags))
}

func talkPage(rows ...string) string {
	return "<html><body><h1>Talk</h1><table>" + strings.Join(rows, "\n") + "</table></body></html>"
}

func trackDivs(tags []string) string {
	var b strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&b, `<div class="program-track">%s</div>`, tag)
	}
	return b.String()
}
