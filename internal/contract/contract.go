// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/creditlens/creditlens/schema"
)

// DataSource defines how institution data is obtained.
// This allows the scoring pipeline to be tested without the synthetic generator.
type DataSource interface {
	// ListInstitutions returns the names of all known institutions.
	ListInstitutions() []string

	// FetchInstitution returns the historical data for one institution.
	FetchInstitution(ctx context.Context, name string) (*schema.InstitutionData, error)
}

// StoreManager defines the interface for managing analysis stores.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetAnalysisStore() AnalysisStore
}

// AnalysisStore defines the interface for tracking scoring runs and storing results.
type AnalysisStore interface {
	// BeginAnalysis creates a new analysis run and returns its unique ID
	BeginAnalysis(startTime time.Time, configParams map[string]any) (int64, error)

	// EndAnalysis updates the analysis run with completion data
	EndAnalysis(analysisID int64, endTime time.Time, totalInstitutions int) error

	// RecordInstitutionScores stores the scoring results for one institution
	RecordInstitutionScores(analysisID int64, report *schema.CreditReport) error

	// GetStatus returns status information about the analysis store
	GetStatus() (schema.AnalysisStatus, error)

	// Close closes the underlying connection
	Close() error
}
