package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/sane-sg23/internal/config"
	"github.com/pfrederiksen/sane-sg23/internal/filter"
	"github.com/pfrederiksen/sane-sg23/internal/program"
	"github.com/pfrederiksen/sane-sg23/internal/storage"
)

type summaryOptions struct {
	input           string
	format          string
	sortOrder       string
	types           []string
	excludeTypes    []string
	dates           string
	viewer          bool
	onlyNotRecorded bool
}

func newSummaryCmd(configPath *string) *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize an existing catalog export",
		Long: `Print session counts per date and per type from a catalog export.
Filters match type labels by substring, as the schedule viewer does.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, *configPath, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Catalog export to read (defaults to the configured output)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.sortOrder, "sort", string(SortByKey), "Row order: key or count")
	cmd.Flags().StringSliceVar(&opts.types, "type", nil, "Only include these types (repeatable)")
	cmd.Flags().StringSliceVar(&opts.excludeTypes, "exclude-type", nil, "Exclude these types (repeatable)")
	cmd.Flags().StringVar(&opts.dates, "dates", "", "Date range, e.g. 'Aug 8-10'")
	cmd.Flags().BoolVar(&opts.viewer, "viewer-defaults", false, "Start from the schedule viewer's default filters")
	cmd.Flags().BoolVar(&opts.onlyNotRecorded, "only-not-recorded", false, "Only include sessions that are not recorded")

	return cmd
}

func runSummary(cmd *cobra.Command, configPath string, opts *summaryOptions) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	order := SortOrder(strings.ToLower(opts.sortOrder))
	if order != SortByKey && order != SortByCount {
		return fmt.Errorf("invalid sort order: %s (must be 'key' or 'count')", opts.sortOrder)
	}

	f, err := opts.filter()
	if err != nil {
		return err
	}

	input := opts.input
	if input == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		input = cfg.Output
	}

	c, err := storage.LoadCatalog(input)
	if err != nil {
		return err
	}

	summary := Summarize(f.Apply(c), f)
	sortCounts(summary.ByDate, order)
	sortCounts(summary.ByType, order)

	return WriteSummary(cmd.OutOrStdout(), summary, format)
}

func (o *summaryOptions) filter() (*filter.Filter, error) {
	f := filter.NewFilter()
	if o.viewer {
		f = filter.NewViewerFilter()
	}

	if len(o.types) > 0 {
		f.EnabledTypes = o.types
	}
	f.DisabledTypes = append(f.DisabledTypes, o.excludeTypes...)
	f.OnlyNotRecorded = f.OnlyNotRecorded || o.onlyNotRecorded

	if o.dates != "" {
		from, to, err := filter.ParseDateRange(o.dates)
		if err != nil {
			return nil, fmt.Errorf("parsing --dates: %w", err)
		}
		f.DateFrom, f.DateTo = from, to
	}

	return f, nil
}

// Summarize counts sessions per date and per individual type label
func Summarize(c program.Catalog, f *filter.Filter) *Summary {
	summary := &Summary{
		Filter:    f.String(),
		Sessions:  len(c),
		SubEvents: c.SubEventCount(),
		ByDate:    []Count{},
		ByType:    []Count{},
	}

	dates := make(map[string]int)
	types := make(map[string]int)

	for _, s := range c {
		summary.ByDate = tally(summary.ByDate, dates, s.Date, s)
		for _, label := range s.TypeLabels() {
			summary.ByType = tally(summary.ByType, types, label, s)
		}
	}

	return summary
}

// tally adds s to the row for key, appending the row on first sight
func tally(counts []Count, index map[string]int, key string, s *program.Session) []Count {
	i, ok := index[key]
	if !ok {
		i = len(counts)
		index[key] = i
		counts = append(counts, Count{Key: key})
	}
	c := &counts[i]
	c.Sessions++
	if s.Recorded == program.StatusYes {
		c.Recorded++
	}
	if s.Streamed == program.StatusYes {
		c.Streamed++
	}
	return counts
}
