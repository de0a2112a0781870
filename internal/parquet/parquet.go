// Package parquet provides data structures and functions for exporting credit
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/creditlens/creditlens/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single scoring run with metadata.
// This struct maps to the creditlens_analysis_runs database table.
type AnalysisRun struct {
	// AnalysisID is the unique identifier for this analysis run
	AnalysisID int64 `parquet:"analysis_id,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalInstitutions is the number of institutions scored in this run
	TotalInstitutions int32 `parquet:"total_institutions,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// InstitutionScore represents the scores for a single institution in an analysis.
// This struct maps to the creditlens_institution_scores database table.
type InstitutionScore struct {
	// AnalysisID references the parent analysis run
	AnalysisID int64 `parquet:"analysis_id,snappy"`

	// Institution is the full name of the scored institution
	Institution string `parquet:"institution,snappy"`

	// AnalysisTime is when this institution was scored (stored as TIMESTAMP with nanosecond precision)
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// ScoreCapitalization is the 1-10 capitalization category score
	ScoreCapitalization float64 `parquet:"score_capitalization,snappy"`

	// ScoreAssetQuality is the 1-10 asset quality category score
	ScoreAssetQuality float64 `parquet:"score_asset_quality,snappy"`

	// ScoreProfitability is the 1-10 profitability category score
	ScoreProfitability float64 `parquet:"score_profitability,snappy"`

	// ScoreLiquidity is the 1-10 liquidity category score
	ScoreLiquidity float64 `parquet:"score_liquidity,snappy"`

	// OverallWeighted is the weighted composite score across categories
	OverallWeighted float64 `parquet:"overall_weighted,snappy"`

	// OverallMean is the unweighted mean of the category scores
	OverallMean float64 `parquet:"overall_mean,snappy"`

	// Rating is the letter rating derived from the weighted score
	Rating string `parquet:"rating,snappy"`

	// ManagementScore is the stability-based management quality score
	ManagementScore float64 `parquet:"management_score,snappy"`

	// LiquidityRiskScore is the liquidity risk score (higher is riskier)
	LiquidityRiskScore float64 `parquet:"liquidity_risk_score,snappy"`

	// AssetQualityRisk is the asset quality risk score (higher is riskier)
	AssetQualityRisk float64 `parquet:"asset_quality_risk,snappy"`

	// RunwayDays is the estimated liquidity runway in days
	RunwayDays int32 `parquet:"runway_days,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteInstitutionScoresParquet writes a slice of InstitutionScore structs to a Parquet file.
func WriteInstitutionScoresParquet(data []InstitutionScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the InstitutionScore struct tags
	writer := parquet.NewGenericWriter[InstitutionScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			AnalysisID:        record.AnalysisID,
			StartTime:         record.StartTime,
			EndTime:           record.EndTime,
			RunDurationMs:     record.RunDurationMs,
			TotalInstitutions: record.TotalInstitutions,
			ConfigParams:      record.ConfigParams,
		}
	}
	return result
}

// ConvertInstitutionScoreRecords converts schema.InstitutionScoreRecord to InstitutionScore for Parquet export.
func ConvertInstitutionScoreRecords(records []schema.InstitutionScoreRecord) []InstitutionScore {
	result := make([]InstitutionScore, len(records))
	for i, record := range records {
		result[i] = InstitutionScore{
			AnalysisID:          record.AnalysisID,
			Institution:         record.Institution,
			AnalysisTime:        record.AnalysisTime,
			ScoreCapitalization: record.ScoreCapitalization,
			ScoreAssetQuality:   record.ScoreAssetQuality,
			ScoreProfitability:  record.ScoreProfitability,
			ScoreLiquidity:      record.ScoreLiquidity,
			OverallWeighted:     record.OverallWeighted,
			OverallMean:         record.OverallMean,
			Rating:              record.Rating,
			ManagementScore:     record.ManagementScore,
			LiquidityRiskScore:  record.LiquidityRiskScore,
			AssetQualityRisk:    record.AssetQualityRisk,
			RunwayDays:          record.RunwayDays,
		}
	}
	return result
}
