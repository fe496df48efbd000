package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"normativa/internal/telemetry"
)

var (
	metricsJSON    bool
	runPromotions  bool
	metricsTimeout time.Duration
)

// metricsCmd represents the metrics command
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show telemetry metrics for the reporting window",
	Long: `Metrics aggregates the audit events recorded in the telemetry
store: issue and fix presence rates, autofix usage and promotions.

With --promote the promotion rule runs first: any fix code present in
at least the configured share of the window's events becomes a
permanent default for future generations.

Example:
  normativa metrics
  normativa metrics --promote
  normativa metrics --json`,
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)

	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "emit the snapshot as JSON")
	metricsCmd.Flags().BoolVar(&runPromotions, "promote", false, "run the promotion rule before aggregating")
	metricsCmd.Flags().DurationVar(&metricsTimeout, "timeout", time.Minute, "aggregation timeout")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), metricsTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := telemetry.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open telemetry store: %w", err)
	}
	defer func() { _ = store.Close() }()

	agg := telemetry.NewAggregator(store, cfg.Promotion)

	if runPromotions {
		promoted, err := agg.RunPromotions(ctx)
		if err != nil {
			return fmt.Errorf("promotion run: %w", err)
		}
		for _, rec := range promoted {
			fmt.Fprintf(os.Stderr, "✓ Promoted %s (presence %.1f%% over %d days)\n",
				rec.FixCode, rec.PresenceRate, rec.WindowDays)
		}
		if len(promoted) == 0 {
			fmt.Fprintln(os.Stderr, "No new promotions")
		}
	}

	snap, err := agg.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	if metricsJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Window: last %d days\n", snap.WindowDays)
	fmt.Printf("Events: %d total, %d with errors, %d with autofix\n\n",
		snap.TotalEvents, snap.EventsWithErrors, snap.AutofixApplied)

	if len(snap.IssueStats) > 0 {
		fmt.Println("Issue presence:")
		for _, s := range snap.IssueStats {
			fmt.Printf("  %-28s %4d events  %5.1f%%\n", s.Code, s.Events, s.PresenceRate)
		}
		fmt.Println()
	}

	if len(snap.FixStats) > 0 {
		fmt.Println("Fix presence:")
		for _, s := range snap.FixStats {
			fmt.Printf("  %-28s %4d events  %5.1f%%\n", s.Code, s.Events, s.PresenceRate)
		}
		fmt.Println()
	}

	if len(snap.Promotions) > 0 {
		fmt.Println("Promoted defaults:")
		for _, p := range snap.Promotions {
			fmt.Printf("  %s\n", p.FixCode)
		}
	}

	return nil
}
