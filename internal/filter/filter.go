// Package filter narrows a session catalog down to what a viewer wants to see.
//
// Criteria mirror the schedule viewer's controls:
//   - Enabled types (substring match on the type label; empty means all)
//   - Disabled types (substring match; always wins over enabled)
//   - Excluded titles (exact match, e.g. placeholder schedule entries)
//   - Dates (inclusive "MM-DD" range)
//   - Only not recorded (hide recorded sessions; Talk sessions are judged per sub-event)
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.EnabledTypes = []string{"Course", "Talk"}
//	f.OnlyNotRecorded = true
//
//	visible := f.Apply(catalog)
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

// Defaults of the schedule viewer
var (
	DefaultEnabledTypes = []string{
		"Course",
		"Keynote",
		"Production Session",
		"Real-Time Live!",
		"Talk",
	}

	DefaultDisabledTypes = []string{
		"Birds of a Feather",
		"Electronic Theater",
		"Poster",
		"Technical Paper",
		"VR Theater",
	}

	// DefaultExcludedTitles are schedule placeholders rather than sessions
	DefaultExcludedTitles = []string{
		"Labs Installations",
		"Labs Demo Schedule for Tuesday",
		"Labs Demo Schedule for Wednesday",
		"Labs Demo Schedule for Thursday",
	}

	// HiddenTypes only ever appear next to another label and are not offered on their own
	HiddenTypes = []string{
		"ACM SIGGRAPH Award Talk",
		"Electronic Theater Retrospective Celebration",
		"Job Fair Roundtable",
	}
)

// Filter represents catalog filtering criteria
type Filter struct {
	EnabledTypes    []string `json:"enabled_types,omitempty"`
	DisabledTypes   []string `json:"disabled_types,omitempty"`
	ExcludedTitles  []string `json:"excluded_titles,omitempty"`
	DateFrom        string   `json:"date_from,omitempty"` // MM-DD, inclusive
	DateTo          string   `json:"date_to,omitempty"`   // MM-DD, inclusive
	OnlyNotRecorded bool     `json:"only_not_recorded,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
func NewFilter() *Filter {
	return &Filter{
		EnabledTypes:   []string{},
		DisabledTypes:  []string{},
		ExcludedTitles: []string{},
	}
}

// NewViewerFilter creates a filter with the schedule viewer's default selection
func NewViewerFilter() *Filter {
	f := NewFilter()
	f.EnabledTypes = append(f.EnabledTypes, DefaultEnabledTypes...)
	f.DisabledTypes = append(f.DisabledTypes, DefaultDisabledTypes...)
	f.ExcludedTitles = append(f.ExcludedTitles, DefaultExcludedTitles...)
	return f
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.EnabledTypes) == 0 &&
		len(f.DisabledTypes) == 0 &&
		len(f.ExcludedTitles) == 0 &&
		f.DateFrom == "" &&
		f.DateTo == "" &&
		!f.OnlyNotRecorded
}

// Matches checks a session against every criterion except OnlyNotRecorded,
// which Apply resolves per sub-event.
func (f *Filter) Matches(s *program.Session) bool {
	for _, title := range f.ExcludedTitles {
		if s.Title == title {
			return false
		}
	}

	if f.DateFrom != "" && s.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && s.Date > f.DateTo {
		return false
	}

	for _, t := range f.DisabledTypes {
		if strings.Contains(s.TypeName, t) {
			return false
		}
	}

	if len(f.EnabledTypes) == 0 {
		return true
	}
	for _, t := range f.EnabledTypes {
		if strings.Contains(s.TypeName, t) {
			return true
		}
	}
	return false
}

// Apply returns the sessions matching the filter, in catalog order.
// With OnlyNotRecorded, a session with sub-events is kept with only its unrecorded
// sub-events, and dropped when none remain. The input catalog is not modified.
func (f *Filter) Apply(catalog program.Catalog) program.Catalog {
	if f.IsEmpty() {
		return catalog
	}

	filtered := make(program.Catalog, 0, len(catalog))
	for _, s := range catalog {
		if !f.Matches(s) {
			continue
		}

		if f.OnlyNotRecorded {
			s = notRecorded(s)
			if s == nil {
				continue
			}
		}

		filtered = append(filtered, s)
	}

	return filtered
}

func notRecorded(s *program.Session) *program.Session {
	if len(s.SubEvents) == 0 {
		if s.Recorded == program.StatusYes {
			return nil
		}
		return s
	}

	subEvents := make([]program.SubEvent, 0, len(s.SubEvents))
	for _, sub := range s.SubEvents {
		if sub.Recorded != program.StatusYes {
			subEvents = append(subEvents, sub)
		}
	}
	if len(subEvents) == 0 {
		return nil
	}

	trimmed := *s
	trimmed.SubEvents = subEvents
	return &trimmed
}

// String returns a human-readable description of the active filter criteria.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.EnabledTypes) > 0 {
		parts = append(parts, fmt.Sprintf("Types: %s", strings.Join(f.EnabledTypes, ", ")))
	}

	if len(f.DisabledTypes) > 0 {
		parts = append(parts, fmt.Sprintf("Hidden types: %s", strings.Join(f.DisabledTypes, ", ")))
	}

	if len(f.ExcludedTitles) > 0 {
		parts = append(parts, fmt.Sprintf("Excluded titles: %d", len(f.ExcludedTitles)))
	}

	if f.DateFrom != "" || f.DateTo != "" {
		parts = append(parts, fmt.Sprintf("Dates: %s..%s", f.DateFrom, f.DateTo))
	}

	if f.OnlyNotRecorded {
		parts = append(parts, "Not recorded only")
	}

	return strings.Join(parts, " | ")
}

// Types returns the sorted individual type labels found in the catalog, without
// HiddenTypes.
func Types(catalog program.Catalog) []string {
	hidden := make(map[string]bool, len(HiddenTypes))
	for _, t := range HiddenTypes {
		hidden[t] = true
	}

	set := make(map[string]bool)
	for _, s := range catalog {
		for _, label := range s.TypeLabels() {
			if !hidden[label] {
				set[label] = true
			}
		}
	}

	types := make([]string, 0, len(set))
	for t := range set {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
