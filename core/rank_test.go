package core

import (
	"testing"

	"github.com/creditlens/creditlens/schema"
	"github.com/stretchr/testify/require"
)

func TestRankReports(t *testing.T) {
	reports := []*schema.CreditReport{
		{Institution: "Charlie Trust", Overall: 6.2},
		{Institution: "Bravo Bank", Overall: 8.1},
		{Institution: "Delta Savings", Overall: 6.2},
		{Institution: "Alpha Capital", Overall: 7.4},
	}

	ranked := RankReports(reports)

	require.Len(t, ranked, 4)
	require.Equal(t, "Bravo Bank", ranked[0].Institution)
	require.Equal(t, "Alpha Capital", ranked[1].Institution)
	// Equal scores order alphabetically.
	require.Equal(t, "Charlie Trust", ranked[2].Institution)
	require.Equal(t, "Delta Savings", ranked[3].Institution)
}
