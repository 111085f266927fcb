package scraper

import (
	"testing"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

func TestRuleForType(t *testing.T) {
	tests := []struct {
		typeName string
		want     typeRule
	}{
		{"Technical Paper", ruleAlways},
		{"Art Papers", ruleAlways},
		{"Experience Presentation, Immersive Pavilion, VR Theater", ruleAlways},
		{"Poster", ruleNever},
		{"Educator's Forum", ruleNever},
		{"Job Fair, Job Fair Roundtable", ruleNever},
		{"Labs", ruleNever},
		{"Talk", ruleTalk},
		{"Course", ruleTags},
		{"technical paper", ruleTags},
		{"", ruleTags},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			if got := ruleForType(tt.typeName); got != tt.want {
				t.Errorf("ruleForType(%q) = %v, want %v", tt.typeName, got, tt.want)
			}
		})
	}
}

func TestClassifyPasses_Order(t *testing.T) {
	want := []string{"tags", "type", "cancellation"}
	if len(classifyPasses) != len(want) {
		t.Fatalf("got %d passes, want %d", len(classifyPasses), len(want))
	}
	for i, pass := range classifyPasses {
		if pass.name != want[i] {
			t.Errorf("pass %d = %q, want %q", i, pass.name, want[i])
		}
	}
}

func TestClassify_PassByPass(t *testing.T) {
	d := &rowDraft{
		session: &program.Session{TypeName: "Technical Paper", Title: "Paper - [IN-PERSON COURSE CANCELLED]"},
		tags:    []string{"Not Recorded", "Not Livestreamed"},
	}

	applyTags(d)
	if d.session.Recorded != program.StatusNo || d.session.Streamed != program.StatusNo {
		t.Fatalf("after tags = (%s, %s), want (No, No)", d.session.Recorded, d.session.Streamed)
	}

	applyTypeRule(d)
	if d.session.Recorded != program.StatusYes || d.session.Streamed != program.StatusYes {
		t.Fatalf("after type = (%s, %s), want (Yes, Yes)", d.session.Recorded, d.session.Streamed)
	}
	if d.unhandled {
		t.Error("forced type should not be unhandled")
	}

	applyCancellation(d)
	if d.session.Title != "Paper" {
		t.Errorf("after cancellation Title = %q, want Paper", d.session.Title)
	}
}

func TestApplyCancellation(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		recorded     program.Status
		wantTitle    string
		wantRecorded program.Status
	}{
		{"marker trims title", "Foo - [IN-PERSON COURSE CANCELLED]", program.StatusNo, "Foo", program.StatusYes},
		{"marker with unknown status", "Foo - [IN-PERSON COURSE CANCELLED]", program.StatusUnknown, "Foo", program.StatusYes},
		{"no marker", "Foo - [IN-PERSON ONLY]", program.StatusNo, "Foo - [IN-PERSON ONLY]", program.StatusNo},
		{"marker without separator keeps title", "[IN-PERSON COURSE CANCELLED] Foo", program.StatusNo, "[IN-PERSON COURSE CANCELLED] Foo", program.StatusYes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &rowDraft{session: &program.Session{Title: tt.title, Recorded: tt.recorded, Streamed: program.StatusNo}}
			applyCancellation(d)

			if d.session.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", d.session.Title, tt.wantTitle)
			}
			if d.session.Recorded != tt.wantRecorded {
				t.Errorf("Recorded = %q, want %q", d.session.Recorded, tt.wantRecorded)
			}
			if d.session.Streamed != program.StatusNo {
				t.Errorf("Streamed changed to %q", d.session.Streamed)
			}
		})
	}
}

func TestFixTypeLabel(t *testing.T) {
	for glued, fixed := range typeLabelFixups {
		if got := fixTypeLabel(glued); got != fixed {
			t.Errorf("fixTypeLabel(%q) = %q, want %q", glued, got, fixed)
		}
	}

	if got := fixTypeLabel("Job Fair Job Fair Roundtable"); got != "Job Fair Job Fair Roundtable" {
		t.Errorf("fixTypeLabel should only match exact labels, got %q", got)
	}
}
