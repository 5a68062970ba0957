package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhofbauer/venue-calendar/internal/calendar"
	"github.com/mhofbauer/venue-calendar/internal/config"
	"github.com/mhofbauer/venue-calendar/internal/logger"
	"github.com/mhofbauer/venue-calendar/internal/scraper"
	"github.com/mhofbauer/venue-calendar/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig    string
	flagStartDate string
	flagDays      int
	flagCluster   int
	flagBaseURL   string
	flagDelay     time.Duration
	flagDataDir   string
	flagOutput    string
	flagICS       string
	flagFormat    string
	flagVerbose   bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venue-calendar",
		Short: "Aggregate venue booking availability into a calendar grid",
		Long: `Fetches per-day availability for all venues of a booking cluster,
parses the slot grid of every venue and assembles the results into a
day x time calendar saved as JSON.`,
		RunE: runAggregate,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagStartDate, "start-date", "", "First date to fetch, YYYYMMDD (default: today)")
	cmd.Flags().IntVar(&flagDays, "days", 7, "Number of consecutive days to fetch")
	cmd.Flags().IntVar(&flagCluster, "cluster", config.Default().ClusterID, "Venue cluster id")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", config.Default().BaseURL, "Booking platform venue root URL")
	cmd.Flags().DurationVar(&flagDelay, "delay", config.Default().FetchDelay, "Pause between day requests")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Directory for the saved calendar (default: config data_dir)")
	cmd.Flags().StringVar(&flagOutput, "output", storage.DefaultWeekFile, "Calendar output file name")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Also export available slots as an iCalendar file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd())

	return cmd
}

// runAggregate is the main aggregation logic.
func runAggregate(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = config.FromEnv(cfg)

	// Flags override file and environment, but only when set.
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = flagBaseURL
	}
	if cmd.Flags().Changed("cluster") {
		cfg.ClusterID = flagCluster
	}
	if cmd.Flags().Changed("delay") {
		cfg.FetchDelay = flagDelay
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	startDate := flagStartDate
	if startDate == "" {
		startDate = time.Now().Format(scraper.DateFormat)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(
		scraper.WithBaseURL(cfg.BaseURL),
		scraper.WithClusterID(cfg.ClusterID),
		scraper.WithUserAgent(cfg.UserAgent),
		scraper.WithFetchDelay(cfg.FetchDelay),
	)

	logger.Info("Starting aggregation", logger.Fields{
		"start_date": startDate,
		"days":       flagDays,
		"cluster":    cfg.ClusterID,
	})

	results, err := sc.FetchRange(startDate, flagDays)
	if err != nil {
		return fmt.Errorf("fetching range: %w", err)
	}

	week := calendar.Assemble(results)

	if err := store.SaveWeek(week, flagOutput); err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}

	if flagICS != "" {
		if err := os.WriteFile(flagICS, []byte(calendar.GenerateICS(week)), 0644); err != nil {
			return fmt.Errorf("writing ics file: %w", err)
		}
	}

	if err := WriteOutput(os.Stdout, week, store.Path(flagOutput), format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
