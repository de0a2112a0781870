// Package cmd defines the command-line interface for creditlens.
package cmd

import (
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(analysisCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the analysis subcommands to the parent analysis command
	analysisCmd.AddCommand(analysisClearCmd)
	analysisCmd.AddCommand(analysisStatusCmd)
	analysisCmd.AddCommand(analysisExportCmd)
	analysisCmd.AddCommand(analysisMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("years", "y", contract.DefaultYears, "Number of reporting years to analyze")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TableOut), "Output format: table or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("analysis-backend", "", "Analysis tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("analysis-db-connect", "", "Database connection string for analysis tracking")
	rootCmd.PersistentFlags().String("summarizer", string(schema.LocalSummarizer), "Commentary engine: local or openai")
	rootCmd.PersistentFlags().String("openai-base-url", "", "Base URL for an OpenAI-compatible API")
	rootCmd.PersistentFlags().String("openai-api-key", "", "API key for the OpenAI summarizer (prefer CREDITLENS_OPENAI_API_KEY)")
	rootCmd.PersistentFlags().String("openai-model", "gpt-4o-mini", "Model name for the OpenAI summarizer")
	rootCmd.PersistentFlags().String("openai-timeout", "", "Request timeout for the OpenAI summarizer (e.g. 30s)")
	rootCmd.PersistentFlags().Int("openai-rpm", contract.DefaultOpenAIRPM, "Request rate limit for the OpenAI summarizer")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of stressCmd to Viper
	stressCmd.Flags().Int("projection-months", contract.DefaultProjectionMonths, "Number of months in the cash flow projection")
	if err := viper.BindPFlags(stressCmd.Flags()); err != nil {
		contract.LogFatal("Error binding stress flags", err)
	}

	// Bind all flags of analysisMigrateCmd to Viper
	analysisMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(analysisMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analysis migrate flags", err)
	}
}
