package schema

import "time"

// AnalysisStatus represents the status of the analysis store.
type AnalysisStatus struct {
	Backend           string           `json:"backend"`
	Connected         bool             `json:"connected"`
	TotalRuns         int              `json:"total_runs"`
	LastRunID         int64            `json:"last_run_id"`
	LastRunTime       time.Time        `json:"last_run_time"`
	OldestRunTime     time.Time        `json:"oldest_run_time"`
	TotalInstitutions int              `json:"total_institutions"`
	TableSizes        map[string]int64 `json:"table_sizes"`
}

// AnalysisRunRecord represents a row from the creditlens_analysis_runs table.
type AnalysisRunRecord struct {
	AnalysisID        int64
	StartTime         time.Time
	EndTime           *time.Time
	RunDurationMs     *int32
	TotalInstitutions int32
	ConfigParams      *string
}

// InstitutionScoreRecord represents a row from the creditlens_institution_scores table.
type InstitutionScoreRecord struct {
	AnalysisID          int64
	Institution         string
	AnalysisTime        time.Time
	ScoreCapitalization float64
	ScoreAssetQuality   float64
	ScoreProfitability  float64
	ScoreLiquidity      float64
	OverallWeighted     float64
	OverallMean         float64
	Rating              string
	ManagementScore     float64
	LiquidityRiskScore  float64
	AssetQualityRisk    float64
	RunwayDays          int32
}
