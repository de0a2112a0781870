// Package commentary produces analyst narratives for credit reports.
//
// Two implementations exist: a deterministic local generator built from
// trend arithmetic, and an OpenAI-backed generator that falls back to the
// local one whenever the model call fails.
package commentary

import (
	"context"
	"errors"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
)

// Kind selects which narrative to produce.
type Kind string

const (
	// OverallKind is the executive summary for the full report.
	OverallKind Kind = "overall"
	// SectionKind summarizes one scoring category.
	SectionKind Kind = "section"
	// MetricKind describes a single metric trend.
	MetricKind Kind = "metric"
)

// Context carries everything a summarizer needs for one narrative.
// Data is always required. Report is required for OverallKind, Category
// for SectionKind and Metric for MetricKind.
type Context struct {
	Kind     Kind
	Data     *schema.InstitutionData
	Report   *schema.CreditReport
	Category schema.Category
	Metric   schema.MetricKey
}

// Summarizer turns a commentary context into analyst prose.
type Summarizer interface {
	Summarize(ctx context.Context, c Context) (string, error)
}

// NewSummarizer builds the summarizer selected by the config. The OpenAI
// backend degrades to the local generator when no API key is configured.
func NewSummarizer(ctx context.Context, cfg *contract.Config) (Summarizer, error) {
	if cfg.Summarizer == schema.OpenAISummarizer {
		if cfg.OpenAIAPIKey == "" {
			contract.LogWarn("Falling back to local commentary", errors.New("no OpenAI API key configured"))
			return NewLocal(), nil
		}
		return NewOpenAI(ctx, cfg)
	}
	return NewLocal(), nil
}
