package model

import "time"

// IssueRef is the severity/code pair persisted per telemetry event.
// Message and location are deliberately dropped: the store aggregates
// over codes, never over free text.
type IssueRef struct {
	Severity AuditSeverity `json:"severity"`
	Code     string        `json:"code"`
}

// FixRef records one fix code applied during a request
type FixRef struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// TelemetryEvent is the immutable record appended once per completed
// document request, after the convergence loop settles
type TelemetryEvent struct {
	ID             string     `json:"id"`
	CreatedAt      time.Time  `json:"createdAt"`
	ModelVariant   Variant    `json:"modelVariant"`
	Issues         []IssueRef `json:"issues"`
	Fixes          []FixRef   `json:"fixes"`
	AutofixApplied bool       `json:"autofixApplied"`
	ErrorCount     int        `json:"errorCount"`
	WarnCount      int        `json:"warnCount"`
}

// HasError reports whether the event carried any blocking issue
func (e TelemetryEvent) HasError() bool { return e.ErrorCount > 0 }

// PromotionRecord marks a fix code that crossed the presence threshold
// and became a permanent default. At most one record exists per code.
type PromotionRecord struct {
	FixCode      string    `json:"fixCode"`
	PresenceRate float64   `json:"presenceRate"`
	WindowDays   int       `json:"windowDays"`
	Promoted     bool      `json:"promoted"`
	PromotedAt   time.Time `json:"promotedAt"`
}
