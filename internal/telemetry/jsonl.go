package telemetry

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"normativa/internal/model"
)

// JSONLStore is a file backend for deployments without sqlite. Events
// go to an append-only JSON-lines file; promotions live in a small
// sidecar JSON file next to it.
type JSONLStore struct {
	mu         sync.Mutex
	eventsPath string
	promosPath string
}

// OpenJSONL opens a JSON-lines store rooted at the given events file
func OpenJSONL(path string) (*JSONLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	return &JSONLStore{
		eventsPath: path,
		promosPath: path + ".promotions.json",
	}, nil
}

// Append writes one event as a single JSON line
func (s *JSONLStore) Append(_ context.Context, ev model.TelemetryEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.eventsPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	line, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// EventsSince scans the whole file and keeps events at or after the
// cutoff. Lines that fail to decode are skipped rather than failing
// the read; a torn final line must not take aggregation down.
func (s *JSONLStore) EventsSince(_ context.Context, cutoff time.Time) ([]model.TelemetryEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.eventsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	var events []model.TelemetryEvent
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var ev model.TelemetryEvent
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			continue
		}
		if !ev.CreatedAt.Before(cutoff) {
			events = append(events, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan events file: %w", err)
	}
	return events, nil
}

// RecordPromotion writes the record unless the fix code is already
// present in the sidecar file
func (s *JSONLStore) RecordPromotion(_ context.Context, rec model.PromotionRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promos, err := s.readPromotions()
	if err != nil {
		return false, err
	}
	for _, p := range promos {
		if p.FixCode == rec.FixCode {
			return false, nil
		}
	}
	promos = append(promos, rec)

	data, err := json.MarshalIndent(promos, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode promotions: %w", err)
	}
	if err := os.WriteFile(s.promosPath, data, 0o644); err != nil {
		return false, fmt.Errorf("write promotions: %w", err)
	}
	return true, nil
}

// PromotedCodes lists the fix codes with a promotion record
func (s *JSONLStore) PromotedCodes(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promos, err := s.readPromotions()
	if err != nil {
		return nil, err
	}
	var codes []string
	for _, p := range promos {
		if p.Promoted {
			codes = append(codes, p.FixCode)
		}
	}
	return codes, nil
}

func (s *JSONLStore) readPromotions() ([]model.PromotionRecord, error) {
	data, err := os.ReadFile(s.promosPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read promotions: %w", err)
	}
	var promos []model.PromotionRecord
	if err := json.Unmarshal(data, &promos); err != nil {
		return nil, fmt.Errorf("decode promotions: %w", err)
	}
	return promos, nil
}

// Close is a no-op; files are opened per call
func (s *JSONLStore) Close() error { return nil }
