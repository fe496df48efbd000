package telemetry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"normativa/internal/model"
)

func TestJSONLStore_AppendAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	store, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	old := model.TelemetryEvent{
		ID:           "old",
		CreatedAt:    time.Now().AddDate(0, 0, -40),
		ModelVariant: model.VariantUnknown,
	}
	recent := model.TelemetryEvent{
		ID:           "recent",
		CreatedAt:    time.Now(),
		ModelVariant: model.VariantServicios10a25,
		Fixes:        []model.FixRef{{Code: model.CodeArticulo9Rigido, Count: 1}},
		ErrorCount:   1,
	}
	for _, ev := range []model.TelemetryEvent{old, recent} {
		if err := store.Append(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := store.EventsSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("events since: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event inside the window, got %d", len(events))
	}
	if events[0].ID != "recent" {
		t.Errorf("expected the recent event, got %s", events[0].ID)
	}
	if len(events[0].Fixes) != 1 || events[0].Fixes[0].Code != model.CodeArticulo9Rigido {
		t.Errorf("fixes did not survive the round trip: %v", events[0].Fixes)
	}
	if !events[0].HasError() {
		t.Error("error count did not survive the round trip")
	}
}

func TestJSONLStore_EmptyFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	store, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	events, err := store.EventsSince(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("events since: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestJSONLStore_PromotionIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	store, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	rec := model.PromotionRecord{
		FixCode:      model.CodeArticulo9Rigido,
		PresenceRate: 85.0,
		WindowDays:   30,
		Promoted:     true,
		PromotedAt:   time.Now(),
	}

	inserted, err := store.RecordPromotion(ctx, rec)
	if err != nil {
		t.Fatalf("record promotion: %v", err)
	}
	if !inserted {
		t.Error("first promotion should insert")
	}

	inserted, err = store.RecordPromotion(ctx, rec)
	if err != nil {
		t.Fatalf("record promotion: %v", err)
	}
	if inserted {
		t.Error("second promotion for the same code must be a no-op")
	}

	codes, err := store.PromotedCodes(ctx)
	if err != nil {
		t.Fatalf("promoted codes: %v", err)
	}
	if len(codes) != 1 || codes[0] != model.CodeArticulo9Rigido {
		t.Errorf("expected single promoted code, got %v", codes)
	}
}
