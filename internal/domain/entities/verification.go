package entities

import (
	"time"

	"github.com/google/uuid"
)

// MatchConfidence distinguishes exact matches from containment matches.
// Containment matching is deliberately lenient and callers should treat
// "partial" results with care.
type MatchConfidence string

const (
	MatchExact   MatchConfidence = "exact"
	MatchPartial MatchConfidence = "partial"
)

// VerifyResult is the transient outcome of a public verification query.
// It is never persisted.
type VerifyResult struct {
	Verified   bool            `json:"verified"`
	Company    string          `json:"company,omitempty"`
	Confidence MatchConfidence `json:"confidence,omitempty"`
}

// VerificationAttempt is an audit record of a public verification query
type VerificationAttempt struct {
	ID         uuid.UUID `json:"id"`
	InputValue string    `json:"inputValue"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AnalyticsStats aggregates verification attempt counts
type AnalyticsStats struct {
	TotalVerifications int64 `json:"total_verifications"`
	VerifiedCount      int64 `json:"verified_count"`
	Today              int64 `json:"today"`
	Week               int64 `json:"week"`
	Month              int64 `json:"month"`
}
