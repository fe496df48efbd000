package telemetry

import (
	"context"
	"sync"
	"time"

	"normativa/internal/model"
)

// MemoryStore keeps everything in process memory. Used by tests and by
// one-shot CLI runs where persistence is not wanted.
type MemoryStore struct {
	mu     sync.Mutex
	events []model.TelemetryEvent
	promos map[string]model.PromotionRecord
}

// NewMemory creates an empty in-memory store
func NewMemory() *MemoryStore {
	return &MemoryStore{promos: make(map[string]model.PromotionRecord)}
}

// Append stores one event
func (s *MemoryStore) Append(_ context.Context, ev model.TelemetryEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

// EventsSince returns events at or after the cutoff
func (s *MemoryStore) EventsSince(_ context.Context, cutoff time.Time) ([]model.TelemetryEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.TelemetryEvent
	for _, ev := range s.events {
		if !ev.CreatedAt.Before(cutoff) {
			out = append(out, ev)
		}
	}
	return out, nil
}

// RecordPromotion stores the record unless the code already has one
func (s *MemoryStore) RecordPromotion(_ context.Context, rec model.PromotionRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.promos[rec.FixCode]; ok {
		return false, nil
	}
	s.promos[rec.FixCode] = rec
	return true, nil
}

// PromotedCodes lists the fix codes with a promotion record
func (s *MemoryStore) PromotedCodes(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var codes []string
	for code, rec := range s.promos {
		if rec.Promoted {
			codes = append(codes, code)
		}
	}
	return codes, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error { return nil }
