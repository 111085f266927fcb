package scraper

import (
	"strings"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

// typeRule is the part of classification decided by the session type alone
type typeRule int

const (
	ruleTags   typeRule = iota // unrecognized type, tags decide
	ruleAlways                 // always recorded and streamed
	ruleNever                  // never recorded nor streamed
	ruleTalk                   // tags decide, sub-events are loaded
)

var alwaysRecordedTypes = map[string]bool{
	"Technical Paper":                                         true,
	"Art Papers":                                              true,
	"Art Gallery, Experience Presentation":                    true,
	"Experience Presentation, Immersive Pavilion, VR Theater": true,
}

var neverRecordedTypes = map[string]bool{
	"Art Gallery":                   true,
	"Poster":                        true,
	"Emerging Technologies":         true,
	"VR Theater":                    true,
	"Immersive Pavilion":            true,
	"History":                       true,
	"Educator's Forum":              true,
	"Exhibition":                    true,
	"Exhibitor Session":             true,
	"Job Fair":                      true,
	"Affiliated Session":            true,
	"Job Fair, Job Fair Roundtable": true,
	"Appy Hour":                     true,
	"Labs":                          true,
}

func ruleForType(typeName string) typeRule {
	switch {
	case alwaysRecordedTypes[typeName]:
		return ruleAlways
	case neverRecordedTypes[typeName]:
		return ruleNever
	case typeName == program.TypeTalk:
		return ruleTalk
	default:
		return ruleTags
	}
}

// rowDraft is a session still being classified
type rowDraft struct {
	session   *program.Session
	tags      []string
	rule      typeRule
	unhandled bool // type unrecognized and tags left an axis unknown
}

// classifyPass owns a fixed subset of a draft's fields; passes run in order and a later
// pass may overwrite what an earlier one decided.
type classifyPass struct {
	name  string
	apply func(d *rowDraft)
}

var classifyPasses = []classifyPass{
	{name: "tags", apply: applyTags},
	{name: "type", apply: applyTypeRule},
	{name: "cancellation", apply: applyCancellation},
}

func classify(d *rowDraft) {
	for _, pass := range classifyPasses {
		pass.apply(d)
	}
}

func applyTags(d *rowDraft) {
	d.session.Recorded, d.session.Streamed = program.ClassifyTags(d.tags)
}

func applyTypeRule(d *rowDraft) {
	d.rule = ruleForType(d.session.TypeName)

	switch d.rule {
	case ruleAlways:
		d.session.Recorded = program.StatusYes
		d.session.Streamed = program.StatusYes
	case ruleNever:
		d.session.Recorded = program.StatusNo
		d.session.Streamed = program.StatusNo
	case ruleTags:
		d.unhandled = d.session.Recorded == program.StatusUnknown || d.session.Streamed == program.StatusUnknown
	}
}

// applyCancellation strips the cancellation annotation from the title and marks the
// course as recorded. Streamed is left alone.
func applyCancellation(d *rowDraft) {
	title := d.session.Title
	if !strings.Contains(title, cancelledCourseMarker) {
		return
	}

	if i := strings.Index(title, cancelledCourseSuffix); i >= 0 {
		d.session.Title = title[:i]
	}
	d.session.Recorded = program.StatusYes
}
