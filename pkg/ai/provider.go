// Package ai provides medical document analysis through pluggable
// LLM providers.
package ai

import (
	"context"
	"fmt"
	"strings"
)

// Risk is the triage level an analysis assigns to a document.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// ParseRisk normalizes a free-form risk string coming back from a model.
// Models occasionally answer with synonyms, so the common ones are folded
// into the three canonical levels.
func ParseRisk(s string) (Risk, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "minimal", "none":
		return RiskLow, nil
	case "medium", "moderate":
		return RiskMedium, nil
	case "high", "severe", "critical":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRisk, s)
	}
}

// Elevated reports whether the risk warrants a consultation recommendation.
func (r Risk) Elevated() bool {
	return r == RiskMedium || r == RiskHigh
}

// Analysis is the structured result of analyzing one medical document.
type Analysis struct {
	RiskLevel       Risk     `json:"risk_level"`
	Summary         string   `json:"summary"`
	HealthScore     int      `json:"health_score"`
	Recommendations []string `json:"recommendations"`
}

// Provider analyzes extracted medical document text.
type Provider interface {
	Analyze(ctx context.Context, text string) (*Analysis, error)
}
