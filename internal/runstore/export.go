package runstore

import (
	"errors"
	"fmt"

	"github.com/creditlens/creditlens/internal/parquet"
	"github.com/creditlens/creditlens/schema"
)

// bulkReader is the extra read surface a store must offer for exports.
// The SQL-backed store implements it; mocks used in scoring tests need not.
type bulkReader interface {
	GetAllAnalysisRuns() ([]schema.AnalysisRunRecord, error)
	GetAllInstitutionScores() ([]schema.InstitutionScoreRecord, error)
}

// ExecuteAnalysisExport dumps all tracked runs and scores to Parquet files.
func ExecuteAnalysisExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetAnalysisStore()
	if store == nil {
		return errors.New("analysis store is not initialized")
	}

	reader, ok := store.(bulkReader)
	if !ok {
		return errors.New("analysis store does not support bulk export")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get analysis status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no analysis data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total score records: %d\n", status.TableSizes[institutionScoresTable])

	// Retrieve all analysis runs
	analysisRuns, err := reader.GetAllAnalysisRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}

	// Retrieve all institution scores
	institutionScores, err := reader.GetAllInstitutionScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve institution scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertAnalysisRunRecords(analysisRuns)
	parquetScores := parquet.ConvertInstitutionScoreRecords(institutionScores)

	// Write analysis runs to Parquet
	analysisRunsFile := outputFile + ".analysis_runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, analysisRunsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetRuns), analysisRunsFile)

	// Write institution scores to Parquet
	scoresFile := outputFile + ".institution_scores.parquet"
	if err := parquet.WriteInstitutionScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write institution scores: %w", err)
	}
	fmt.Printf("Exported %d institution score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
