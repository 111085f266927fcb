package scraper

import "github.com/pfrederiksen/sane-sg23/internal/program"

// Known source defects of the 2023 program. Each entry patches one specific malformed
// value of the published pages; none of them is classification policy.

// typeLabelFixups rewrites type labels where two categories were glued together
var typeLabelFixups = map[string]string{
	"Job FairJob Fair Roundtable":                                    "Job Fair, Job Fair Roundtable",
	"Electronic TheaterElectronic Theater Retrospective Celebration": "Electronic Theater, Electronic Theater Retrospective Celebration",
	"Art GalleryArt Papers":                                          "Art Gallery, Art Papers",
}

func fixTypeLabel(label string) string {
	if fixed, ok := typeLabelFixups[label]; ok {
		return fixed
	}
	return label
}

// subEventTimeFix corrects the start of a sub-event matched by title and derived times
type subEventTimeFix struct {
	title          string
	start          string
	end            string
	correctedStart string
}

var subEventTimeFixes = []subEventTimeFix{
	{title: "Eyes Without a Face", start: "16:52", end: "17:15", correctedStart: "16:51"},
}

func fixSubEventTime(sub *program.SubEvent) {
	for _, fix := range subEventTimeFixes {
		if sub.Title == fix.title && sub.Start == fix.start && sub.End == fix.end {
			sub.Start = fix.correctedStart
			return
		}
	}
}

// Cancelled in-person courses keep their recording, and carry this annotation in the title
const (
	cancelledCourseMarker = "[IN-PERSON COURSE CANCELLED"
	cancelledCourseSuffix = " - [IN-PERSON"
)
