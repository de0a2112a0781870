package contract

import (
	"maps"
	"runtime"
	"strings"
	"time"

	"github.com/creditlens/creditlens/schema"
)

// Default values for configuration.
const (
	DefaultYears            = 5
	MaxYears                = 20
	DefaultPrecision        = 1
	DefaultProjectionMonths = 12
	DefaultOpenAITimeout    = 30 * time.Second
	DefaultOpenAIRPM        = 60
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// CategoryWeightsRaw holds custom overall weights from the YAML config file.
// Use float64 pointers so absent fields fall back to defaults.
type CategoryWeightsRaw struct {
	Capitalization *float64 `mapstructure:"capitalization"`
	AssetQuality   *float64 `mapstructure:"asset_quality"`
	Profitability  *float64 `mapstructure:"profitability"`
	Liquidity      *float64 `mapstructure:"liquidity"`
}

// Config holds the runtime configuration for scoring.
// This struct remains the "final, validated" config.
type Config struct {
	Institution string // Target institution, empty means all
	Years       int    // Length of the generated history
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool

	AnalysisBackend   schema.DatabaseBackend
	AnalysisDBConnect string // Please use env var as this is plaintext

	Summarizer    schema.SummarizerBackend
	OpenAIBaseURL string
	OpenAIAPIKey  string // Please use env var as this is plaintext
	OpenAIModel   string
	OpenAITimeout time.Duration
	OpenAIRPM     int

	// CategoryWeights is the final overall weight per category,
	// computed from defaults + custom overrides
	CategoryWeights map[schema.Category]float64

	// ScoringModel holds the validated per-metric thresholds
	ScoringModel schema.ScoringConfig
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InstitutionStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Years             int    `mapstructure:"years"`
	Workers           int    `mapstructure:"workers"`
	Precision         int    `mapstructure:"precision"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Color             string `mapstructure:"color"`
	AnalysisBackend   string `mapstructure:"analysis-backend"`
	AnalysisDBConnect string `mapstructure:"analysis-db-connect"`

	// --- Summarizer settings ---
	Summarizer    string `mapstructure:"summarizer"`
	OpenAIBaseURL string `mapstructure:"openai-base-url"`
	OpenAIAPIKey  string `mapstructure:"openai-api-key"`
	OpenAIModel   string `mapstructure:"openai-model"`
	OpenAITimeout string `mapstructure:"openai-timeout"`
	OpenAIRPM     int    `mapstructure:"openai-rpm"`

	// --- Custom overall weights from config file ---
	Weights CategoryWeightsRaw `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CategoryWeights != nil {
		clone.CategoryWeights = make(map[schema.Category]float64)
		maps.Copy(clone.CategoryWeights, c.CategoryWeights)
	}
	if c.ScoringModel != nil {
		clone.ScoringModel = make(schema.ScoringConfig)
		for category, metrics := range c.ScoringModel {
			categoryCopy := make(schema.CategoryConfig)
			maps.Copy(categoryCopy, metrics)
			clone.ScoringModel[category] = categoryCopy
		}
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processSummarizer(cfg, input); err != nil {
		return err
	}
	if err := processCategoryWeights(cfg, input); err != nil {
		return err
	}
	if err := processScoringModel(cfg); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return NewConfigError("analysis-db-connect", "required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return NewConfigError("analysis-db-connect", "MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return NewConfigError("analysis-db-connect", "MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return NewConfigError("analysis-db-connect", "required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return NewConfigError("analysis-db-connect", "PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return NewConfigError("analysis-db-connect", "PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Institution = strings.TrimSpace(input.InstitutionStr)
	cfg.OutputFile = input.OutputFile

	// --- 1. Years Validation ---
	if input.Years <= 0 || input.Years > MaxYears {
		return NewConfigError("years", "must be between 1 and %d (received %d)", MaxYears, input.Years)
	}
	cfg.Years = input.Years

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return NewConfigError("workers", "must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return NewConfigError("precision", "must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return NewConfigError("output", "invalid format '%s'. must be table, csv, json, parquet", input.Output)
	}

	// --- 4. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return NewConfigError("color", "%v", err)
	}
	cfg.UseColors = colors

	return nil
}

// validateBackendConfigs validates the analysis backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.AnalysisBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return NewConfigError("analysis-backend", "invalid backend '%s'. must be sqlite, mysql, postgresql, none", input.AnalysisBackend)
	}
	cfg.AnalysisBackend = backend
	cfg.AnalysisDBConnect = input.AnalysisDBConnect
	return ValidateDatabaseConnectionString(cfg.AnalysisBackend, cfg.AnalysisDBConnect)
}

// processSummarizer validates the commentary engine settings.
func processSummarizer(cfg *Config, input *ConfigRawInput) error {
	backend := schema.SummarizerBackend(strings.ToLower(input.Summarizer))
	if backend == "" {
		backend = schema.LocalSummarizer
	}
	if _, ok := schema.ValidSummarizerBackends[backend]; !ok {
		return NewConfigError("summarizer", "invalid backend '%s'. must be local, openai", input.Summarizer)
	}
	cfg.Summarizer = backend

	cfg.OpenAIBaseURL = input.OpenAIBaseURL
	cfg.OpenAIAPIKey = input.OpenAIAPIKey
	cfg.OpenAIModel = input.OpenAIModel
	cfg.OpenAITimeout = DefaultOpenAITimeout
	if input.OpenAITimeout != "" {
		timeout, err := time.ParseDuration(input.OpenAITimeout)
		if err != nil {
			return NewConfigError("openai-timeout", "invalid duration '%s'", input.OpenAITimeout)
		}
		cfg.OpenAITimeout = timeout
	}
	cfg.OpenAIRPM = input.OpenAIRPM
	if cfg.OpenAIRPM <= 0 {
		cfg.OpenAIRPM = DefaultOpenAIRPM
	}

	if backend == schema.OpenAISummarizer && cfg.OpenAIAPIKey == "" {
		return NewConfigError("openai-api-key", "required when summarizer is openai")
	}
	return nil
}

// processCategoryWeights merges custom overall weights over the defaults
// and validates that the final weights sum to 1.0.
func processCategoryWeights(cfg *Config, input *ConfigRawInput) error {
	weights := schema.GetDefaultCategoryWeights()

	overrides := map[schema.Category]*float64{
		schema.Capitalization: input.Weights.Capitalization,
		schema.AssetQuality:   input.Weights.AssetQuality,
		schema.Profitability:  input.Weights.Profitability,
		schema.Liquidity:      input.Weights.Liquidity,
	}
	for category, override := range overrides {
		if override == nil {
			continue
		}
		if *override < 0 {
			return NewConfigError("weights", "weight for %s cannot be negative (received %.3f)", category, *override)
		}
		weights[category] = *override
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return NewConfigError("weights", "category weights must sum to 1.0, got %.3f", sum)
	}

	cfg.CategoryWeights = weights
	return nil
}

// processScoringModel installs the scoring thresholds and rejects
// unordered breakpoints before any scoring happens.
func processScoringModel(cfg *Config) error {
	model := schema.GetDefaultScoringConfig()
	for category, metrics := range model {
		sum := 0.0
		for key, threshold := range metrics {
			if !threshold.Ordered() {
				return NewConfigError("scoring", "breakpoints for %s/%s are not strictly ordered", category, key)
			}
			sum += threshold.Weight
		}
		if sum < 0.999 || sum > 1.001 {
			return NewConfigError("scoring", "metric weights for %s must sum to 1.0, got %.3f", category, sum)
		}
	}
	cfg.ScoringModel = model
	return nil
}
