package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	creditschema "github.com/creditlens/creditlens/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysisRuns() []AnalysisRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 30*time.Minute)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"institutions":10,"years":5,"workers":4}`

	startTime2 := now.Add(-10 * time.Minute)
	// Second run is still in flight, so its nullable fields stay nil.

	return []AnalysisRun{
		{
			AnalysisID:        1,
			StartTime:         startTime1,
			EndTime:           &endTime1,
			RunDurationMs:     &durationMs1,
			TotalInstitutions: 10,
			ConfigParams:      &configParams1,
		},
		{
			AnalysisID:        2,
			StartTime:         startTime2,
			EndTime:           nil,
			RunDurationMs:     nil,
			TotalInstitutions: 0,
			ConfigParams:      nil,
		},
	}
}

func sampleInstitutionScores() []InstitutionScore {
	now := time.Now()
	return []InstitutionScore{
		{
			AnalysisID:          1,
			Institution:         "JPMorgan Chase",
			AnalysisTime:        now.Add(-1 * time.Hour),
			ScoreCapitalization: 8.2,
			ScoreAssetQuality:   7.1,
			ScoreProfitability:  6.4,
			ScoreLiquidity:      7.8,
			OverallWeighted:     7.4,
			OverallMean:         7.375,
			Rating:              "AA",
			ManagementScore:     7.0,
			LiquidityRiskScore:  4.5,
			AssetQualityRisk:    3.5,
			RunwayDays:          90,
		},
		{
			AnalysisID:          1,
			Institution:         "Goldman Sachs",
			AnalysisTime:        now.Add(-1 * time.Hour),
			ScoreCapitalization: 6.8,
			ScoreAssetQuality:   6.2,
			ScoreProfitability:  7.5,
			ScoreLiquidity:      6.9,
			OverallWeighted:     6.83,
			OverallMean:         6.85,
			Rating:              "A",
			ManagementScore:     6.5,
			LiquidityRiskScore:  5.0,
			AssetQualityRisk:    4.0,
			RunwayDays:          60,
		},
	}
}

func TestAnalysisRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(AnalysisRun))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"analysis_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_institutions",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestInstitutionScoreStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(InstitutionScore))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"analysis_id",
		"institution",
		"analysis_time",
		"score_capitalization",
		"score_asset_quality",
		"score_profitability",
		"score_liquidity",
		"overall_weighted",
		"overall_mean",
		"rating",
		"management_score",
		"liquidity_risk_score",
		"asset_quality_risk",
		"runway_days",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteAnalysisRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "analysis_runs.parquet")

	data := sampleAnalysisRuns()
	err := WriteAnalysisRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[AnalysisRun](file)
	defer reader.Close()

	readData := make([]AnalysisRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].AnalysisID, readData[i].AnalysisID, "AnalysisID should match")
		assert.Equal(t, data[i].TotalInstitutions, readData[i].TotalInstitutions, "TotalInstitutions should match")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match within nanosecond precision")
		}

		if data[i].RunDurationMs == nil {
			assert.Nil(t, readData[i].RunDurationMs, "RunDurationMs should be nil")
		} else {
			require.NotNil(t, readData[i].RunDurationMs, "RunDurationMs should not be nil")
			assert.Equal(t, *data[i].RunDurationMs, *readData[i].RunDurationMs, "RunDurationMs should match")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteInstitutionScoresParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "institution_scores.parquet")

	data := sampleInstitutionScores()
	err := WriteInstitutionScoresParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[InstitutionScore](file)
	defer reader.Close()

	readData := make([]InstitutionScore, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].AnalysisID, readData[i].AnalysisID, "AnalysisID should match")
		assert.Equal(t, data[i].Institution, readData[i].Institution, "Institution should match")
		assert.InDelta(t, data[i].ScoreCapitalization, readData[i].ScoreCapitalization, 0.001, "ScoreCapitalization should match")
		assert.InDelta(t, data[i].ScoreAssetQuality, readData[i].ScoreAssetQuality, 0.001, "ScoreAssetQuality should match")
		assert.InDelta(t, data[i].ScoreProfitability, readData[i].ScoreProfitability, 0.001, "ScoreProfitability should match")
		assert.InDelta(t, data[i].ScoreLiquidity, readData[i].ScoreLiquidity, 0.001, "ScoreLiquidity should match")
		assert.InDelta(t, data[i].OverallWeighted, readData[i].OverallWeighted, 0.001, "OverallWeighted should match")
		assert.InDelta(t, data[i].OverallMean, readData[i].OverallMean, 0.001, "OverallMean should match")
		assert.Equal(t, data[i].Rating, readData[i].Rating, "Rating should match")
		assert.InDelta(t, data[i].ManagementScore, readData[i].ManagementScore, 0.001, "ManagementScore should match")
		assert.InDelta(t, data[i].LiquidityRiskScore, readData[i].LiquidityRiskScore, 0.001, "LiquidityRiskScore should match")
		assert.InDelta(t, data[i].AssetQualityRisk, readData[i].AssetQualityRisk, 0.001, "AssetQualityRisk should match")
		assert.Equal(t, data[i].RunwayDays, readData[i].RunwayDays, "RunwayDays should match")
	}
}

func TestWriteAnalysisRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_analysis_runs.parquet")

	err := WriteAnalysisRunsParquet([]AnalysisRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteInstitutionScoresParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_institution_scores.parquet")

	err := WriteInstitutionScoresParquet([]InstitutionScore{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteAnalysisRunsParquet_InvalidPath(t *testing.T) {
	data := sampleAnalysisRuns()
	err := WriteAnalysisRunsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestWriteInstitutionScoresParquet_InvalidPath(t *testing.T) {
	data := sampleInstitutionScores()
	err := WriteInstitutionScoresParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertAnalysisRunRecords(t *testing.T) {
	now := time.Now()
	end := now.Add(time.Minute)
	durationMs := int32(60000)
	config := `{"workers":2}`

	records := []creditschema.AnalysisRunRecord{
		{
			AnalysisID:        7,
			StartTime:         now,
			EndTime:           &end,
			RunDurationMs:     &durationMs,
			TotalInstitutions: 4,
			ConfigParams:      &config,
		},
		{AnalysisID: 8, StartTime: now},
	}

	converted := ConvertAnalysisRunRecords(records)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(7), converted[0].AnalysisID)
	assert.Equal(t, int32(4), converted[0].TotalInstitutions)
	require.NotNil(t, converted[0].EndTime)
	assert.True(t, converted[0].EndTime.Equal(end))
	require.NotNil(t, converted[0].ConfigParams)
	assert.Equal(t, config, *converted[0].ConfigParams)

	assert.Equal(t, int64(8), converted[1].AnalysisID)
	assert.Nil(t, converted[1].EndTime)
	assert.Nil(t, converted[1].RunDurationMs)
	assert.Nil(t, converted[1].ConfigParams)
}

func TestConvertInstitutionScoreRecords(t *testing.T) {
	now := time.Now()
	records := []creditschema.InstitutionScoreRecord{
		{
			AnalysisID:          7,
			Institution:         "Morgan Stanley",
			AnalysisTime:        now,
			ScoreCapitalization: 7.5,
			ScoreAssetQuality:   6.8,
			ScoreProfitability:  7.2,
			ScoreLiquidity:      8.0,
			OverallWeighted:     7.35,
			OverallMean:         7.375,
			Rating:              "AA",
			ManagementScore:     8.0,
			LiquidityRiskScore:  3.0,
			AssetQualityRisk:    2.5,
			RunwayDays:          120,
		},
	}

	converted := ConvertInstitutionScoreRecords(records)
	require.Len(t, converted, 1)

	assert.Equal(t, "Morgan Stanley", converted[0].Institution)
	assert.InDelta(t, 7.35, converted[0].OverallWeighted, 1e-9)
	assert.Equal(t, "AA", converted[0].Rating)
	assert.Equal(t, int32(120), converted[0].RunwayDays)
}

func TestNullableFieldHandling(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "nullable_test.parquet")

	now := time.Now()
	endTime := now.Add(1 * time.Hour)
	durationMs := int32(3600000)
	config := `{"test":"config"}`

	testData := []AnalysisRun{
		// All fields populated
		{
			AnalysisID:        1,
			StartTime:         now,
			EndTime:           &endTime,
			RunDurationMs:     &durationMs,
			TotalInstitutions: 10,
			ConfigParams:      &config,
		},
		// All nullable fields are nil
		{
			AnalysisID:        2,
			StartTime:         now,
			EndTime:           nil,
			RunDurationMs:     nil,
			TotalInstitutions: 0,
			ConfigParams:      nil,
		},
	}

	err := WriteAnalysisRunsParquet(testData, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[AnalysisRun](file)
	defer reader.Close()

	readData := make([]AnalysisRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	assert.Equal(t, len(testData), n)

	assert.NotNil(t, readData[0].EndTime)
	assert.NotNil(t, readData[0].RunDurationMs)
	assert.NotNil(t, readData[0].ConfigParams)

	assert.Nil(t, readData[1].EndTime)
	assert.Nil(t, readData[1].RunDurationMs)
	assert.Nil(t, readData[1].ConfigParams)
}

func TestTimestampPrecision(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "timestamp_test.parquet")

	now := time.Now()

	testData := []AnalysisRun{
		{
			AnalysisID:        1,
			StartTime:         now,
			EndTime:           &now,
			RunDurationMs:     nil,
			TotalInstitutions: 0,
			ConfigParams:      nil,
		},
	}

	err := WriteAnalysisRunsParquet(testData, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[AnalysisRun](file)
	defer reader.Close()

	readData := make([]AnalysisRun, reader.NumRows())
	_, err = reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}

	// Timestamps are stored with nanosecond precision internally
	assert.WithinDuration(t, testData[0].StartTime, readData[0].StartTime, time.Nanosecond)
	assert.WithinDuration(t, *testData[0].EndTime, *readData[0].EndTime, time.Nanosecond)
}
