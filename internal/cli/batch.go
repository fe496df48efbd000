package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"normativa/internal/pipeline"
	"normativa/internal/telemetry"
	"normativa/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Generate documents for multiple companies in parallel",
	Long: `Batch processes multiple company records concurrently:
- Read records from a YAML or JSON list file
- Generate documents in parallel with configurable worker count
- Write one Markdown document and one audit report per record

Records whose audit blocks delivery get only the audit report.

Example:
  normativa batch empresas.yaml
  normativa batch empresas.yaml --concurrency 8 --output-dir ./reglamentos
  normativa batch empresas.yaml --ignore-warnings`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./normativa-docs", "output directory for documents")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&ignoreWarnings, "ignore-warnings", false, "deliver documents even with audit warnings")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	store, err := telemetry.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open telemetry store: %w", err)
	}
	defer func() { _ = store.Close() }()

	p := pipeline.NewPipeline(cfg, store, logger)
	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Reading records from %s...\n", file)
	outcomes, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Processing %d records with %d workers\n\n", len(outcomes), concurrency)

	successCount := 0
	blockedCount := 0
	failureCount := 0

	for _, outcome := range outcomes {
		name := outcome.RazonSocial
		if name == "" {
			name = fmt.Sprintf("record-%d", outcome.Index+1)
		}

		if outcome.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", name, outcome.Error)
			continue
		}

		slug := sanitizeFilename(name)
		result := outcome.Result

		reportJSON, err := p.Renderer().RenderAuditJSON(result)
		if err == nil {
			err = os.WriteFile(filepath.Join(outputDir, slug+".audit.json"), reportJSON, 0o644)
		}
		if err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write audit report: %v\n", name, err)
			continue
		}

		if !result.Deliverable(ignoreWarnings) {
			blockedCount++
			fmt.Fprintf(os.Stderr, "✗ %s: blocked by audit (%d errors, %d warnings)\n",
				name, len(result.Outcome.Result.Errors()), len(result.Outcome.Result.Warnings()))
			continue
		}

		md := p.Renderer().RenderMarkdown(result.Outcome.Sections, outcome.Data)
		if err := os.WriteFile(filepath.Join(outputDir, slug+".md"), []byte(md), 0o644); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write document: %v\n", name, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d articles, %d passes)\n",
			name, result.Outcome.Result.Stats.ArticleCount, result.Outcome.Passes)
	}

	fmt.Fprintf(os.Stderr, "\n  Total:    %d records\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "  Success:  %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Blocked:  %d\n", blockedCount)
	fmt.Fprintf(os.Stderr, "  Failures: %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:   %s\n\n", outputDir)

	return nil
}

// sanitizeFilename turns a company name into a safe file name
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
