package telemetry

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"normativa/internal/model"
)

// CodeStat is the per-code aggregate over the reporting window
type CodeStat struct {
	Code         string  `json:"code"`
	Events       int     `json:"events"`
	PresenceRate float64 `json:"presenceRate"`
}

// Snapshot is the aggregated view of the reporting window. Rates are
// event-presence percentages, not raw occurrence counts: an event with
// the same code three times still counts once.
type Snapshot struct {
	GeneratedAt      time.Time               `json:"generatedAt"`
	WindowDays       int                     `json:"windowDays"`
	TotalEvents      int                     `json:"totalEvents"`
	EventsWithErrors int                     `json:"eventsWithErrors"`
	AutofixApplied   int                     `json:"autofixApplied"`
	IssueStats       []CodeStat              `json:"issueStats"`
	FixStats         []CodeStat              `json:"fixStats"`
	Promotions       []model.PromotionRecord `json:"promotions"`
}

const snapshotCacheKey = "metrics-snapshot"

// Aggregator computes windowed metrics and runs the promotion rule.
// Snapshots are cached briefly so a scraped metrics endpoint does not
// rescan the event store on every hit.
type Aggregator struct {
	store Store
	cfg   model.PromotionConfig
	cache *gocache.Cache
}

// NewAggregator creates an aggregator over the given store
func NewAggregator(store Store, cfg model.PromotionConfig) *Aggregator {
	ttl := cfg.SnapshotTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Aggregator{
		store: store,
		cfg:   cfg,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Snapshot aggregates the window, serving from cache when fresh
func (a *Aggregator) Snapshot(ctx context.Context) (Snapshot, error) {
	if v, ok := a.cache.Get(snapshotCacheKey); ok {
		return v.(Snapshot), nil
	}

	cutoff := time.Now().AddDate(0, 0, -a.cfg.WindowDays)
	events, err := a.store.EventsSince(ctx, cutoff)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load events: %w", err)
	}

	snap := Snapshot{
		GeneratedAt: time.Now(),
		WindowDays:  a.cfg.WindowDays,
		TotalEvents: len(events),
	}

	issuePresence := make(map[string]int)
	fixPresence := make(map[string]int)
	for _, ev := range events {
		if ev.HasError() {
			snap.EventsWithErrors++
		}
		if ev.AutofixApplied {
			snap.AutofixApplied++
		}
		for _, code := range distinctIssueCodes(ev) {
			issuePresence[code]++
		}
		for _, code := range distinctFixCodes(ev) {
			fixPresence[code]++
		}
	}

	snap.IssueStats = codeStats(issuePresence, len(events))
	snap.FixStats = codeStats(fixPresence, len(events))

	promos, err := a.promotionRecords(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Promotions = promos

	a.cache.SetDefault(snapshotCacheKey, snap)
	return snap, nil
}

// RunPromotions applies the promotion rule to the current window: a
// fix code present in at least the threshold share of events, with
// enough events in the window, becomes a permanent default. Returns
// the records newly written by this run.
func (a *Aggregator) RunPromotions(ctx context.Context) ([]model.PromotionRecord, error) {
	cutoff := time.Now().AddDate(0, 0, -a.cfg.WindowDays)
	events, err := a.store.EventsSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) < a.cfg.MinEvents {
		return nil, nil
	}

	fixPresence := make(map[string]int)
	for _, ev := range events {
		for _, code := range distinctFixCodes(ev) {
			fixPresence[code]++
		}
	}

	var promoted []model.PromotionRecord
	for code, present := range fixPresence {
		rate := roundRate(float64(present) / float64(len(events)) * 100)
		if rate < a.cfg.PresenceThreshold {
			continue
		}
		rec := model.PromotionRecord{
			FixCode:      code,
			PresenceRate: rate,
			WindowDays:   a.cfg.WindowDays,
			Promoted:     true,
			PromotedAt:   time.Now(),
		}
		inserted, err := a.store.RecordPromotion(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("promote %s: %w", code, err)
		}
		if inserted {
			promoted = append(promoted, rec)
		}
	}

	if len(promoted) > 0 {
		a.cache.Delete(snapshotCacheKey)
	}
	sort.Slice(promoted, func(i, j int) bool { return promoted[i].FixCode < promoted[j].FixCode })
	return promoted, nil
}

func (a *Aggregator) promotionRecords(ctx context.Context) ([]model.PromotionRecord, error) {
	codes, err := a.store.PromotedCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load promotions: %w", err)
	}
	records := make([]model.PromotionRecord, 0, len(codes))
	for _, code := range codes {
		records = append(records, model.PromotionRecord{FixCode: code, Promoted: true, WindowDays: a.cfg.WindowDays})
	}
	return records, nil
}

func distinctIssueCodes(ev model.TelemetryEvent) []string {
	seen := make(map[string]bool, len(ev.Issues))
	var codes []string
	for _, i := range ev.Issues {
		if !seen[i.Code] {
			seen[i.Code] = true
			codes = append(codes, i.Code)
		}
	}
	return codes
}

func distinctFixCodes(ev model.TelemetryEvent) []string {
	seen := make(map[string]bool, len(ev.Fixes))
	var codes []string
	for _, f := range ev.Fixes {
		if !seen[f.Code] {
			seen[f.Code] = true
			codes = append(codes, f.Code)
		}
	}
	return codes
}

func codeStats(presence map[string]int, total int) []CodeStat {
	var stats []CodeStat
	for code, n := range presence {
		rate := 0.0
		if total > 0 {
			rate = roundRate(float64(n) / float64(total) * 100)
		}
		stats = append(stats, CodeStat{Code: code, Events: n, PresenceRate: rate})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Events != stats[j].Events {
			return stats[i].Events > stats[j].Events
		}
		return stats[i].Code < stats[j].Code
	})
	return stats
}

// roundRate keeps presence rates at one decimal so thresholds compare
// cleanly
func roundRate(r float64) float64 {
	return math.Round(r*10) / 10
}
