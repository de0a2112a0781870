package contract

import (
	"errors"
	"testing"

	"github.com/creditlens/creditlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Years:     5,
		Workers:   4,
		Precision: 1,
		Output:    "table",
		Color:     "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validRawInput())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Years)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, schema.TableOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.AnalysisBackend)
	assert.Equal(t, schema.LocalSummarizer, cfg.Summarizer)
	assert.Equal(t, DefaultOpenAITimeout, cfg.OpenAITimeout)
	assert.InDelta(t, 0.30, cfg.CategoryWeights[schema.AssetQuality], 1e-9)
	assert.NotEmpty(t, cfg.ScoringModel)
}

func TestProcessAndValidateRejectsBadScalars(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"zero years", func(in *ConfigRawInput) { in.Years = 0 }},
		{"too many years", func(in *ConfigRawInput) { in.Years = 50 }},
		{"zero workers", func(in *ConfigRawInput) { in.Workers = 0 }},
		{"bad precision", func(in *ConfigRawInput) { in.Precision = 3 }},
		{"bad output", func(in *ConfigRawInput) { in.Output = "xml" }},
		{"bad color", func(in *ConfigRawInput) { in.Color = "maybe" }},
		{"bad backend", func(in *ConfigRawInput) { in.AnalysisBackend = "oracle" }},
		{"bad summarizer", func(in *ConfigRawInput) { in.Summarizer = "gemini" }},
		{"openai without key", func(in *ConfigRawInput) { in.Summarizer = "openai" }},
		{"bad timeout", func(in *ConfigRawInput) { in.OpenAITimeout = "soon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)

			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr), "expected a ConfigError, got %T", err)
		})
	}
}

func TestProcessCategoryWeightOverrides(t *testing.T) {
	override := func(v float64) *float64 { return &v }

	t.Run("full override", func(t *testing.T) {
		input := validRawInput()
		input.Weights = CategoryWeightsRaw{
			Capitalization: override(0.40),
			AssetQuality:   override(0.30),
			Profitability:  override(0.20),
			Liquidity:      override(0.10),
		}

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.InDelta(t, 0.40, cfg.CategoryWeights[schema.Capitalization], 1e-9)
	})

	t.Run("partial override breaking the sum", func(t *testing.T) {
		input := validRawInput()
		input.Weights = CategoryWeightsRaw{Capitalization: override(0.50)}

		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 1.0")
	})

	t.Run("negative weight", func(t *testing.T) {
		input := validRawInput()
		input.Weights = CategoryWeightsRaw{Liquidity: override(-0.20)}

		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
	})
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none empty", schema.NoneBackend, "", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass/creditlens", true},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/creditlens", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost user=admin", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=creditlens", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	clone := cfg.Clone()
	clone.CategoryWeights[schema.Liquidity] = 0.99
	clone.ScoringModel[schema.Liquidity][schema.MetricLCR] = schema.MetricThreshold{}

	assert.InDelta(t, 0.20, cfg.CategoryWeights[schema.Liquidity], 1e-9)
	assert.NotZero(t, cfg.ScoringModel[schema.Liquidity][schema.MetricLCR].Weight)
}

func TestMissingMetricErrorMessage(t *testing.T) {
	err := &MissingMetricError{
		Category: schema.Liquidity,
		Missing:  []schema.MetricKey{schema.MetricNSFR, schema.MetricLCR},
	}

	msg := err.Error()
	assert.Contains(t, msg, "liquidity")
	assert.Contains(t, msg, string(schema.MetricLCR))
	assert.Contains(t, msg, string(schema.MetricNSFR))
}
