package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/sane-sg23/internal/calendar"
	"github.com/pfrederiksen/sane-sg23/internal/catalog"
	"github.com/pfrederiksen/sane-sg23/internal/config"
	"github.com/pfrederiksen/sane-sg23/internal/logger"
	"github.com/pfrederiksen/sane-sg23/internal/program"
	"github.com/pfrederiksen/sane-sg23/internal/scraper"
	"github.com/pfrederiksen/sane-sg23/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

type buildOptions struct {
	configPath string
	cacheDir   string
	output     string
	ics        string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "sg23-catalog",
		Short: "Build the SIGGRAPH 2023 session catalog",
		Long: `Build the SIGGRAPH 2023 session catalog from the conference program.
Downloads each day's agenda (cached on disk), expands Talk sessions into their
individual presentations and writes the catalog as JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Configuration file (YAML)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "Page cache directory (overrides config)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Catalog export path (overrides config)")
	cmd.Flags().StringVar(&opts.ics, "ics", "", "Also write an iCalendar feed to this path")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging and print the catalog to stderr")

	cmd.AddCommand(newSummaryCmd(&opts.configPath))

	return cmd
}

// runBuild is the main command logic
func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.cacheDir != "" {
		cfg.CacheDir = opts.cacheDir
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.ics != "" {
		cfg.CalendarOutput = opts.ics
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if opts.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	logger.ResetMetrics()

	cacheDir, err := storage.ExpandPath(cfg.CacheDir)
	if err != nil {
		return err
	}

	source := scraper.NewCachedSource(cacheDir, cfg.UserAgent, cfg.Timeout())
	sc, err := scraper.New(source, cfg.ScraperOptions())
	if err != nil {
		return fmt.Errorf("initializing scraper: %w", err)
	}

	result, err := catalog.NewBuilder(sc).Build(cmd.Context(), cfg.FirstDay, cfg.LastDay)
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	if err := storage.SaveCatalog(cfg.Output, result.Catalog); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	logger.Info("Catalog written", logger.Fields{
		"path":       cfg.Output,
		"sessions":   len(result.Catalog),
		"sub_events": result.Catalog.SubEventCount(),
	})

	if cfg.CalendarOutput != "" {
		stamp := time.Date(cfg.Year, time.Month(cfg.Month), cfg.FirstDay, 0, 0, 0, 0, time.UTC)
		ics, err := calendar.GenerateICS(result.Catalog, cfg.Year, stamp)
		if err != nil {
			return fmt.Errorf("generating calendar: %w", err)
		}
		if err := storage.WriteFile(cfg.CalendarOutput, []byte(ics)); err != nil {
			return fmt.Errorf("saving calendar: %w", err)
		}
		logger.Info("Calendar written", logger.Fields{"path": cfg.CalendarOutput})
	}

	logger.Debug("Run metrics", logger.GetMetricsSnapshot())

	if opts.verbose {
		printCatalog(cmd.ErrOrStderr(), result.Catalog)
	}

	return nil
}

func printCatalog(w io.Writer, c program.Catalog) {
	for _, s := range c {
		fmt.Fprintln(w, s.String())
		for _, sub := range s.SubEvents {
			fmt.Fprintf(w, "    %s\n", sub.String())
		}
	}
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
