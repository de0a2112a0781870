package commentary

import (
	"context"
	"fmt"
	"strings"

	"github.com/creditlens/creditlens/schema"
)

// Local generates deterministic commentary from trend arithmetic. It never
// fails, which makes it the safety net behind the OpenAI summarizer.
type Local struct {
	catalog map[schema.MetricKey]schema.MetricInfo
}

var _ Summarizer = &Local{}

// NewLocal returns the deterministic commentary generator.
func NewLocal() *Local {
	catalog := make(map[schema.MetricKey]schema.MetricInfo)
	for _, metrics := range schema.GetMetricCatalog() {
		for key, info := range metrics {
			catalog[key] = info
		}
	}
	return &Local{catalog: catalog}
}

// Summarize dispatches on the context kind.
func (l *Local) Summarize(_ context.Context, c Context) (string, error) {
	switch c.Kind {
	case MetricKind:
		return l.metricCommentary(c.Data, c.Metric), nil
	case SectionKind:
		return l.sectionCommentary(c.Data, c.Category), nil
	default:
		return l.overallCommentary(c.Report), nil
	}
}

// metricCommentary describes the year-over-year move of one metric and how
// the latest value sits against the industry benchmarks.
func (l *Local) metricCommentary(d *schema.InstitutionData, key schema.MetricKey) string {
	values := d.Series(key)
	if len(values) < 2 {
		return "Insufficient historical data for analysis."
	}

	current := values[len(values)-1]
	previous := values[len(values)-2]
	change := current - previous
	var changePct float64
	if previous != 0 {
		changePct = change / previous * 100
	}

	trend := "remained stable"
	if change > 0 {
		trend = "increased"
	} else if change < 0 {
		trend = "decreased"
	}

	info := l.catalog[key]
	performance := "within acceptable ranges"
	if b := info.Benchmark; b != nil {
		if b.Good > b.Fair { // higher is better
			switch {
			case current >= b.Good:
				performance = "performing well above industry benchmarks"
			case current >= b.Fair:
				performance = "meeting industry standards"
			default:
				performance = "below industry benchmarks and requires attention"
			}
		} else {
			switch {
			case current <= b.Good:
				performance = "performing well above industry benchmarks"
			case current <= b.Fair:
				performance = "meeting industry standards"
			default:
				performance = "above industry benchmarks and requires attention"
			}
		}
	}

	return fmt.Sprintf("%s's %s %s by %.1f%% year-over-year to %.2f%s. The current level is %s.",
		d.Name, info.Name, trend, abs(changePct), current, info.Unit, performance)
}

// sectionCommentary counts improving versus declining metrics in a category.
func (l *Local) sectionCommentary(d *schema.InstitutionData, category schema.Category) string {
	var improving, declining int
	for _, key := range schema.CategoryMetricOrder[category] {
		values := d.Series(key)
		if len(values) < 2 {
			continue
		}
		if values[len(values)-1] > values[len(values)-2] {
			improving++
		} else if values[len(values)-1] < values[len(values)-2] {
			declining++
		}
	}

	trend := "remaining relatively stable"
	if improving > declining {
		trend = "showing overall improvement"
	} else if declining > improving {
		trend = "showing some areas of concern"
	}

	return fmt.Sprintf("%s's %s metrics are %s based on year-over-year performance across key indicators. "+
		"Management should continue monitoring these trends closely.",
		d.Name, strings.ToLower(schema.CategoryDisplayName(category)), trend)
}

// overallCommentary maps the weighted overall score to an executive summary.
func (l *Local) overallCommentary(report *schema.CreditReport) string {
	var assessment, recommendation string
	switch {
	case report.Overall >= 8.0:
		assessment = "demonstrates strong financial health"
		recommendation = "presents low credit risk"
	case report.Overall >= 6.5:
		assessment = "shows solid financial performance"
		recommendation = "represents moderate credit risk"
	case report.Overall >= 5.0:
		assessment = "exhibits mixed financial indicators"
		recommendation = "requires careful monitoring"
	default:
		assessment = "shows areas of financial concern"
		recommendation = "presents elevated credit risk"
	}

	return fmt.Sprintf("%s %s with an overall credit score of %.1f/10.0. "+
		"The institution %s based on current capitalization, asset quality, profitability, and liquidity metrics.",
		report.Institution, assessment, report.Overall, recommendation)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
