package telemetry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"normativa/internal/model"
)

func promotionConfig() model.PromotionConfig {
	return model.PromotionConfig{
		WindowDays:        30,
		MinEvents:         5,
		PresenceThreshold: 80.0,
		SnapshotTTL:       time.Minute,
	}
}

func event(id string, withFix bool) model.TelemetryEvent {
	ev := model.TelemetryEvent{
		ID:           id,
		CreatedAt:    time.Now(),
		ModelVariant: model.VariantServicios10a25,
		Issues:       []model.IssueRef{{Severity: model.SeverityWarn, Code: model.CodeFewChapters}},
	}
	if withFix {
		ev.Fixes = []model.FixRef{{Code: model.CodeArticulo9Rigido, Count: 1}}
		ev.AutofixApplied = true
	}
	return ev
}

func seed(t *testing.T, store Store, total, withFix int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < total; i++ {
		if err := store.Append(ctx, event(fmt.Sprintf("ev-%d", i), i < withFix)); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}
}

func TestRunPromotions_ThresholdMet(t *testing.T) {
	store := NewMemory()
	seed(t, store, 10, 8)

	agg := NewAggregator(store, promotionConfig())
	promoted, err := agg.RunPromotions(context.Background())
	if err != nil {
		t.Fatalf("run promotions: %v", err)
	}

	if len(promoted) != 1 {
		t.Fatalf("expected 1 promotion, got %d", len(promoted))
	}
	if promoted[0].FixCode != model.CodeArticulo9Rigido {
		t.Errorf("expected %s promoted, got %s", model.CodeArticulo9Rigido, promoted[0].FixCode)
	}
	if promoted[0].PresenceRate != 80.0 {
		t.Errorf("expected presence rate 80.0, got %v", promoted[0].PresenceRate)
	}

	codes, err := store.PromotedCodes(context.Background())
	if err != nil {
		t.Fatalf("promoted codes: %v", err)
	}
	if len(codes) != 1 || codes[0] != model.CodeArticulo9Rigido {
		t.Errorf("expected promoted code persisted, got %v", codes)
	}
}

func TestRunPromotions_Idempotent(t *testing.T) {
	store := NewMemory()
	seed(t, store, 10, 9)

	agg := NewAggregator(store, promotionConfig())
	ctx := context.Background()

	first, err := agg.RunPromotions(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 promotion on first run, got %d", len(first))
	}

	second, err := agg.RunPromotions(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second run must not re-promote, got %v", second)
	}
}

func TestRunPromotions_BelowMinEvents(t *testing.T) {
	store := NewMemory()
	seed(t, store, 4, 4)

	agg := NewAggregator(store, promotionConfig())
	promoted, err := agg.RunPromotions(context.Background())
	if err != nil {
		t.Fatalf("run promotions: %v", err)
	}
	if len(promoted) != 0 {
		t.Errorf("4 events are below the minimum, got promotions %v", promoted)
	}
}

func TestRunPromotions_BelowThreshold(t *testing.T) {
	store := NewMemory()
	seed(t, store, 10, 7)

	agg := NewAggregator(store, promotionConfig())
	promoted, err := agg.RunPromotions(context.Background())
	if err != nil {
		t.Fatalf("run promotions: %v", err)
	}
	if len(promoted) != 0 {
		t.Errorf("70%% presence is below the 80%% threshold, got %v", promoted)
	}
}

func TestSnapshot_Aggregates(t *testing.T) {
	store := NewMemory()
	seed(t, store, 10, 6)

	agg := NewAggregator(store, promotionConfig())
	snap, err := agg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if snap.TotalEvents != 10 {
		t.Errorf("expected 10 events, got %d", snap.TotalEvents)
	}
	if snap.AutofixApplied != 6 {
		t.Errorf("expected 6 autofixed events, got %d", snap.AutofixApplied)
	}
	if len(snap.IssueStats) != 1 || snap.IssueStats[0].Code != model.CodeFewChapters {
		t.Errorf("unexpected issue stats: %v", snap.IssueStats)
	}
	if snap.IssueStats[0].PresenceRate != 100.0 {
		t.Errorf("expected 100%% issue presence, got %v", snap.IssueStats[0].PresenceRate)
	}
	if len(snap.FixStats) != 1 || snap.FixStats[0].Events != 6 {
		t.Errorf("unexpected fix stats: %v", snap.FixStats)
	}
}

func TestSnapshot_CachedWithinTTL(t *testing.T) {
	store := NewMemory()
	seed(t, store, 3, 0)

	agg := NewAggregator(store, promotionConfig())
	ctx := context.Background()

	first, err := agg.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	// New events within the TTL do not show up until the cache expires
	seed(t, store, 2, 0)

	second, err := agg.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if second.TotalEvents != first.TotalEvents {
		t.Errorf("expected cached snapshot, got %d vs %d events", second.TotalEvents, first.TotalEvents)
	}
}
