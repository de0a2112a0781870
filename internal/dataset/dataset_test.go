package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/creditlens/creditlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInstitutions(t *testing.T) {
	g := NewGenerator(5)
	names := g.ListInstitutions()
	require.Len(t, names, 10)
	assert.Equal(t, "JPMorgan Chase & Co.", names[0])

	// The returned slice is a copy, not the shared universe.
	names[0] = "mutated"
	assert.Equal(t, "JPMorgan Chase & Co.", g.ListInstitutions()[0])
}

func TestResolve(t *testing.T) {
	g := NewGenerator(5)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"exact", "Morgan Stanley", "Morgan Stanley", false},
		{"substring", "schwab", "Charles Schwab Corporation", false},
		{"case insensitive", "CITI", "Citigroup Inc.", false},
		{"ambiguous", "corporation", "", true},
		{"unknown", "Acme Bank", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Resolve(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFetchInstitutionDeterministic(t *testing.T) {
	g := NewGenerator(5)
	ctx := context.Background()

	first, err := g.FetchInstitution(ctx, "Wells Fargo & Company")
	require.NoError(t, err)
	second, err := g.FetchInstitution(ctx, "Wells Fargo & Company")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFetchInstitutionShape(t *testing.T) {
	g := NewGenerator(5)

	d, err := g.FetchInstitution(context.Background(), "JPMorgan Chase & Co.")
	require.NoError(t, err)

	assert.Equal(t, "JPMorgan Chase & Co.", d.Name)
	require.Len(t, d.Years, 5)
	assert.Equal(t, time.Now().Year(), d.Years[4])
	assert.Equal(t, d.Years[0]+4, d.Years[4])

	require.Len(t, d.Metrics, 17)
	for key, series := range d.Metrics {
		assert.Len(t, series, 5, "metric %s", key)
	}

	assert.Positive(t, d.TotalAssets)
	assert.Positive(t, d.Employees)
	assert.Positive(t, d.Branches)
}

func TestFetchInstitutionFloors(t *testing.T) {
	g := NewGenerator(5)

	for _, name := range Institutions {
		d, err := g.FetchInstitution(context.Background(), name)
		require.NoError(t, err)

		for _, v := range d.Metrics[schema.MetricLCR] {
			assert.GreaterOrEqual(t, v, 100.0)
		}
		for _, v := range d.Metrics[schema.MetricNSFR] {
			assert.GreaterOrEqual(t, v, 100.0)
		}
		for _, v := range d.Metrics[schema.MetricCostToIncome] {
			assert.GreaterOrEqual(t, v, 40.0)
			assert.LessOrEqual(t, v, 90.0)
		}
		for _, v := range d.Metrics[schema.MetricNPL] {
			assert.GreaterOrEqual(t, v, 0.1)
		}
	}
}

func TestInstitutionTypes(t *testing.T) {
	g := NewGenerator(3)

	bank, err := g.FetchInstitution(context.Background(), "Bank of America Corporation")
	require.NoError(t, err)
	assert.Equal(t, "Bank", bank.Type)
	assert.GreaterOrEqual(t, bank.Branches, 1000)

	dealer, err := g.FetchInstitution(context.Background(), "Morgan Stanley")
	require.NoError(t, err)
	assert.Equal(t, "Broker Dealer", dealer.Type)
	assert.Less(t, dealer.Branches, 1000)
}
