// Package pipeline orchestrates one document request end to end:
// convergence run, telemetry append and rendering. The pipeline is the
// only component that talks to both the engine and the store.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"normativa/internal/audit"
	"normativa/internal/converge"
	"normativa/internal/model"
	"normativa/internal/telemetry"
)

// Pipeline wires the convergence engine to the telemetry store
type Pipeline struct {
	engine   *converge.Engine
	store    telemetry.Store
	renderer *Renderer
	logger   *zap.Logger
	config   *model.Config
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config, store telemetry.Store, logger *zap.Logger) *Pipeline {
	opts := audit.Options{
		Mode:          audit.Mode(cfg.Audit.Mode),
		EnableAutofix: cfg.Audit.EnableAutofix,
	}
	return &Pipeline{
		engine:   converge.New(opts),
		store:    store,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		logger:   logger,
		config:   cfg,
	}
}

// Renderer exposes the pipeline's renderer for callers that format
// output themselves
func (p *Pipeline) Renderer() *Renderer { return p.renderer }

// GenerateResult is the complete outcome of one request
type GenerateResult struct {
	Outcome converge.Outcome
	EventID string
}

// Deliverable reports whether the document can be delivered: no
// blocking issues, or only warnings with the caller explicitly
// accepting them
func (r *GenerateResult) Deliverable(ignoreWarnings bool) bool {
	if len(r.Outcome.Result.Errors()) > 0 {
		return false
	}
	if len(r.Outcome.Result.Warnings()) > 0 && !ignoreWarnings {
		return false
	}
	return true
}

// Generate runs the full request flow. Telemetry is best effort: a
// failed append is logged and the result still returned, because the
// document matters more than the event trail.
func (p *Pipeline) Generate(ctx context.Context, d model.ReglamentoData) (*GenerateResult, error) {
	promoted, err := p.store.PromotedCodes(ctx)
	if err != nil {
		p.logger.Warn("loading promoted codes failed, starting without defaults", zap.Error(err))
		promoted = nil
	}

	outcome := p.engine.Run(d, promoted)

	ev := buildEvent(outcome)
	if err := p.store.Append(ctx, ev); err != nil {
		p.logger.Warn("telemetry append failed", zap.String("event_id", ev.ID), zap.Error(err))
	}

	p.logger.Info("document generated",
		zap.String("event_id", ev.ID),
		zap.String("variant", string(outcome.Variant)),
		zap.Int("passes", outcome.Passes),
		zap.Int("chapters", outcome.Result.Stats.ChapterCount),
		zap.Int("articles", outcome.Result.Stats.ArticleCount),
		zap.Int("errors", ev.ErrorCount),
		zap.Int("warnings", ev.WarnCount),
	)

	return &GenerateResult{Outcome: outcome, EventID: ev.ID}, nil
}

// buildEvent flattens a convergence outcome into the persisted shape
func buildEvent(outcome converge.Outcome) model.TelemetryEvent {
	issues := make([]model.IssueRef, 0, len(outcome.Result.Issues))
	for _, i := range outcome.Result.Issues {
		issues = append(issues, model.IssueRef{Severity: i.Severity, Code: i.Code})
	}
	return model.TelemetryEvent{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now(),
		ModelVariant:   outcome.Variant,
		Issues:         issues,
		Fixes:          outcome.Fixes,
		AutofixApplied: outcome.AutofixApplied,
		ErrorCount:     len(outcome.Result.Errors()),
		WarnCount:      len(outcome.Result.Warnings()),
	}
}
