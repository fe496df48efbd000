package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"normativa/internal/model"
	"normativa/internal/pipeline"
	"normativa/internal/telemetry"
)

var (
	outMD          string
	outJSON        string
	auditMode      string
	noAutofix      bool
	ignoreWarnings bool
	noFooter       bool
	storeDriver    string
	storePath      string
	genTimeout     time.Duration
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <input-file>",
	Short: "Generate a regulation document from a company data file",
	Long: `Generate assembles, audits and renders one regulation document:
- Read company data from a YAML or JSON file
- Assemble the applicable chapters
- Audit for placeholders, rigid references and contradictions
- Regenerate once with flexible wording when rigidity issues appear
- Write the document as Markdown plus an audit report as JSON

The document is only written when the audit passes. Warnings can be
accepted explicitly with --ignore-warnings; errors always block.

Example:
  normativa generate empresa.yaml
  normativa generate empresa.yaml --md reglamento.md --json audit.json
  normativa generate empresa.yaml --mode normal --ignore-warnings`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Output flags
	generateCmd.Flags().StringVar(&outMD, "md", "reglamento.md", "output Markdown path")
	generateCmd.Flags().StringVar(&outJSON, "json", "audit.json", "output audit report JSON path")
	generateCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")

	// Audit flags
	generateCmd.Flags().StringVar(&auditMode, "mode", "", "audit mode: strict or normal (default from config)")
	generateCmd.Flags().BoolVar(&noAutofix, "no-autofix", false, "disable text normalization and opener variation")
	generateCmd.Flags().BoolVar(&ignoreWarnings, "ignore-warnings", false, "deliver the document even with audit warnings")

	// Store flags
	generateCmd.Flags().StringVar(&storeDriver, "store", "", "telemetry store driver: sqlite, jsonl or memory (default from config)")
	generateCmd.Flags().StringVar(&storePath, "store-path", "", "telemetry store path (default from config)")

	generateCmd.Flags().DurationVar(&genTimeout, "timeout", time.Minute, "overall generation timeout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGenerateFlags(cfg)

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	data, err := readInputRecord(args[0])
	if err != nil {
		return err
	}

	store, err := telemetry.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open telemetry store: %w", err)
	}
	defer func() { _ = store.Close() }()

	p := pipeline.NewPipeline(cfg, store, logger)
	result, err := p.Generate(ctx, data)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Assembled %d chapters, %d articles\n",
			result.Outcome.Result.Stats.ChapterCount, result.Outcome.Result.Stats.ArticleCount)
		fmt.Fprintf(os.Stderr, "✓ Audit passes: %d\n", result.Outcome.Passes)
		for _, fix := range result.Outcome.Fixes {
			fmt.Fprintf(os.Stderr, "✓ Applied fix: %s\n", fix.Code)
		}
	}

	reportJSON, err := p.Renderer().RenderAuditJSON(result)
	if err != nil {
		return fmt.Errorf("render audit report: %w", err)
	}
	if err := os.WriteFile(outJSON, reportJSON, 0o644); err != nil {
		return fmt.Errorf("write audit report: %w", err)
	}

	if !result.Deliverable(ignoreWarnings) {
		for _, issue := range result.Outcome.Result.Issues {
			fmt.Fprintf(os.Stderr, "  [%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
		}
		return fmt.Errorf("audit blocked delivery: %d errors, %d warnings (report: %s)",
			len(result.Outcome.Result.Errors()), len(result.Outcome.Result.Warnings()), outJSON)
	}

	md := p.Renderer().RenderMarkdown(result.Outcome.Sections, data)
	if err := os.WriteFile(outMD, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Document written: %s\n", outMD)
	fmt.Fprintf(os.Stderr, "✓ Audit report written: %s\n", outJSON)
	return nil
}

// applyGenerateFlags folds the command flags into the loaded config
func applyGenerateFlags(cfg *model.Config) {
	if auditMode != "" {
		cfg.Audit.Mode = auditMode
	}
	if noAutofix {
		cfg.Audit.EnableAutofix = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if storeDriver != "" {
		cfg.Store.Driver = storeDriver
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}
}

// readInputRecord loads one company data record from a YAML or JSON
// file
func readInputRecord(path string) (model.ReglamentoData, error) {
	var data model.ReglamentoData
	raw, err := os.ReadFile(path)
	if err != nil {
		return data, fmt.Errorf("read input file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("decode input file: %w", err)
	}
	return data, nil
}
