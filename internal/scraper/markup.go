package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// normalizeText trims s, drops line breaks and collapses the remaining whitespace runs.
// Line breaks are removed rather than replaced, which is what glues adjacent type labels
// together in the source (see typeLabelFixups).
func normalizeText(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", "")
	return strings.Join(strings.Fields(s), " ")
}

func nodeText(sel *goquery.Selection) string {
	return normalizeText(sel.Text())
}

// firstWithClass returns the first descendant of sel carrying class
func firstWithClass(sel *goquery.Selection, class string) (*goquery.Selection, error) {
	found := sel.Find("." + class).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: no element with class %q", ErrStructure, class)
	}
	return found, nil
}

func requireAttr(sel *goquery.Selection, name string) (string, error) {
	v, ok := sel.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: missing attribute %q", ErrStructure, name)
	}
	return v, nil
}

// trackTags returns the texts of the program-track tags below sel
func trackTags(sel *goquery.Selection) []string {
	return sel.Find("div.program-track").Map(func(_ int, tag *goquery.Selection) string {
		return nodeText(tag)
	})
}
