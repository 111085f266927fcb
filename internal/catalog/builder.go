package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/sane-sg23/internal/logger"
	"github.com/pfrederiksen/sane-sg23/internal/program"
)

// DayLoader extracts the sessions of one day not yet present in seen
type DayLoader interface {
	LoadDay(ctx context.Context, day int, seen *program.SeenSet) ([]*program.Session, *program.DayReport, error)
}

// Result is the outcome of a build
type Result struct {
	Catalog program.Catalog
	Reports []*program.DayReport
}

// UnhandledTypes returns the sorted union of unhandled type labels over all days
func (r *Result) UnhandledTypes() []string {
	set := make(map[string]bool)
	for _, report := range r.Reports {
		for _, t := range report.UnhandledTypes {
			set[t] = true
		}
	}
	return sortedKeys(set)
}

// Builder builds the catalog over an inclusive range of days
type Builder struct {
	loader DayLoader
}

// NewBuilder creates a Builder reading days through loader
func NewBuilder(loader DayLoader) *Builder {
	return &Builder{loader: loader}
}

// Build loads days firstDay..lastDay in order and concatenates their sessions
func (b *Builder) Build(ctx context.Context, firstDay, lastDay int) (*Result, error) {
	if firstDay > lastDay {
		return nil, fmt.Errorf("invalid day range %d..%d", firstDay, lastDay)
	}

	seen := program.NewSeenSet()
	result := &Result{
		Catalog: make(program.Catalog, 0),
		Reports: make([]*program.DayReport, 0, lastDay-firstDay+1),
	}

	for day := firstDay; day <= lastDay; day++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		sessions, report, err := b.loader.LoadDay(ctx, day, seen)
		if err != nil {
			return nil, fmt.Errorf("building day %02d: %w", day, err)
		}
		logger.RecordTiming("day.build", time.Since(start))

		if len(report.UnhandledTypes) > 0 {
			logger.Warn(fmt.Sprintf("New types requiring special handling for recording: [%s]",
				strings.Join(report.UnhandledTypes, "], [")), logger.Fields{
				"day":   day,
				"types": report.UnhandledTypes,
			})
		}
		logger.Info(fmt.Sprintf("Day %02d added %d events", day, len(sessions)), logger.Fields{
			"day":     day,
			"added":   len(sessions),
			"skipped": report.Skipped,
		})

		result.Catalog = append(result.Catalog, sessions...)
		result.Reports = append(result.Reports, report)
	}

	logger.SetGauge("catalog.sessions", float64(len(result.Catalog)))
	logger.SetGauge("catalog.sub_events", float64(result.Catalog.SubEventCount()))

	return result, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
