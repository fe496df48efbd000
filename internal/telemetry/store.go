// Package telemetry persists per-request audit outcomes and the
// promotion records derived from them. Stores only ever aggregate over
// issue/fix codes; free-text findings stay out of persistence.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"normativa/internal/model"
)

// Store is the persistence contract shared by all backends.
// Append must be safe to call concurrently; the HTTP surface writes
// events from request goroutines without coordination.
type Store interface {
	// Append persists one event. Events are immutable once written.
	Append(ctx context.Context, ev model.TelemetryEvent) error

	// EventsSince returns all events created at or after the cutoff
	EventsSince(ctx context.Context, cutoff time.Time) ([]model.TelemetryEvent, error)

	// RecordPromotion persists a promotion if no record exists for the
	// fix code yet. It reports whether a new record was written.
	RecordPromotion(ctx context.Context, rec model.PromotionRecord) (bool, error)

	// PromotedCodes lists the fix codes with a promotion record
	PromotedCodes(ctx context.Context) ([]string, error)

	Close() error
}

// Open builds a store from configuration
func Open(cfg model.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return OpenSQLite(cfg.Path)
	case "jsonl":
		return OpenJSONL(cfg.Path)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
