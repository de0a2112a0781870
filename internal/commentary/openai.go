package commentary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	einoschema "github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
)

const (
	maxRetries     = 3
	retryBaseDelay = 2 * time.Second
)

// OpenAI generates commentary through a chat model. Calls are rate limited
// to the configured requests per minute, retried on 429 responses, and fall
// back to the local generator on any terminal failure.
type OpenAI struct {
	chat    model.BaseChatModel
	limiter *rate.Limiter
	timeout time.Duration
	local   *Local
}

var _ Summarizer = &OpenAI{}

// NewOpenAI builds the chat-model-backed summarizer from the validated config.
func NewOpenAI(ctx context.Context, cfg *contract.Config) (*OpenAI, error) {
	chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
	})
	if err != nil {
		return nil, fmt.Errorf("chat model init: %w", err)
	}
	return &OpenAI{
		chat:    chat,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.OpenAIRPM)/60.0), 1),
		timeout: cfg.OpenAITimeout,
		local:   NewLocal(),
	}, nil
}

// Summarize asks the model for the narrative and degrades to the local
// generator if the call cannot be completed.
func (o *OpenAI) Summarize(ctx context.Context, c Context) (string, error) {
	system, prompt := o.buildPrompt(c)

	text, err := o.generate(ctx, system, prompt)
	if err != nil {
		contract.LogWarn("Chat model commentary failed", err)
		return o.local.Summarize(ctx, c)
	}
	return text, nil
}

// generate performs the rate-limited model call with retries on 429.
func (o *OpenAI) generate(ctx context.Context, system, prompt string) (string, error) {
	messages := []*einoschema.Message{
		{Role: einoschema.System, Content: system},
		{Role: einoschema.User, Content: prompt},
	}

	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := o.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("limiter wait: %w", err)
		}

		callCtx, cancel := context.WithTimeout(ctx, o.timeout)
		resp, err := o.chat.Generate(callCtx, messages)
		cancel()
		if err == nil {
			return strings.TrimSpace(resp.Content), nil
		}
		lastErr = err

		if !isRateLimited(err) {
			return "", err
		}
		if i < maxRetries {
			delay := retryBaseDelay * time.Duration(1<<i)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return "", lastErr
}

func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests")
}

// buildPrompt returns the system and user messages for the context kind.
func (o *OpenAI) buildPrompt(c Context) (system, prompt string) {
	switch c.Kind {
	case MetricKind:
		return "You are a senior financial analyst specializing in bank credit analysis. " +
			"Provide clear, professional commentary on financial metrics.", o.metricPrompt(c)
	case SectionKind:
		return "You are a senior credit analyst providing executive-level commentary " +
			"on bank financial performance.", o.sectionPrompt(c)
	default:
		return "You are a senior credit officer preparing executive summaries " +
			"for credit committee review.", o.overallPrompt(c)
	}
}

func (o *OpenAI) metricPrompt(c Context) string {
	values := c.Data.Series(c.Metric)
	info := o.local.catalog[c.Metric]

	var current, previous, change, changePct float64
	if n := len(values); n >= 2 {
		current = values[n-1]
		previous = values[n-2]
		change = current - previous
		if previous != 0 {
			changePct = change / previous * 100
		}
	}

	benchmarks := "{}"
	if info.Benchmark != nil {
		if raw, err := json.MarshalIndent(info.Benchmark, "", "  "); err == nil {
			benchmarks = string(raw)
		}
	}

	return fmt.Sprintf(`Analyze the financial metric trend for %s and provide professional commentary.

Metric Details:
- Metric: %s (%s)
- Description: %s
- Current Value: %.2f
- Previous Year Value: %.2f
- Year-over-Year Change: %.2f (%.1f%%)
- Historical Values: %v

Benchmarks (Good/Fair/Poor thresholds):
%s

Provide a concise 2-3 sentence professional analysis that describes the trend
direction and magnitude, compares current performance against industry
benchmarks, and highlights any risk areas or positive developments.
Format the response as plain text.`,
		c.Data.Name, info.Name, info.Unit, info.Description,
		current, previous, change, changePct, values, benchmarks)
}

func (o *OpenAI) sectionPrompt(c Context) string {
	summary := map[string]map[string]float64{}
	for _, key := range schema.CategoryMetricOrder[c.Category] {
		values := c.Data.Series(key)
		if len(values) < 2 {
			continue
		}
		current := values[len(values)-1]
		previous := values[len(values)-2]
		var changePct float64
		if previous != 0 {
			changePct = (current - previous) / previous * 100
		}
		summary[string(key)] = map[string]float64{
			"current":        current,
			"change_percent": changePct,
		}
	}
	raw, _ := json.MarshalIndent(summary, "", "  ")

	return fmt.Sprintf(`Provide a comprehensive analysis of the %s performance for %s.

Current Metrics and Year-over-Year Changes:
%s

Provide a professional 3-4 sentence analysis that summarizes the overall
position, identifies key strengths and weaknesses, highlights the most
significant changes, and gives a forward-looking assessment of risks.
Use banking terminology and a credit analysis perspective.
Format as plain text suitable for an executive summary.`,
		c.Category, c.Data.Name, raw)
}

func (o *OpenAI) overallPrompt(c Context) string {
	latest := c.Data.LatestMetrics()
	keyMetrics := map[string]float64{
		"Capital Adequacy":   latest[schema.MetricCapitalAdequacy],
		"NPL Ratio":          latest[schema.MetricNPL],
		"Return on Assets":   latest[schema.MetricROA],
		"Liquidity Coverage": latest[schema.MetricLCR],
		"Overall Score":      c.Report.Overall,
	}
	raw, _ := json.MarshalIndent(keyMetrics, "", "  ")

	return fmt.Sprintf(`Provide an executive summary credit analysis for %s.

Overall Credit Score: %.1f/10.0

Key Performance Indicators:
%s

Institution Details:
- Type: %s
- Total Assets: $%.0f million
- Employees: %d

Provide a comprehensive 4-5 sentence executive summary that opens with the
overall credit assessment and rating rationale, highlights key financial
strengths, identifies primary areas of concern, and closes with an outlook
and recommendation for the credit decision. Reference specific metrics.
Write in an executive summary style for senior management review.`,
		c.Data.Name, c.Report.Overall, raw, c.Data.Type, c.Data.TotalAssets, c.Data.Employees)
}
