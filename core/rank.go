package core

import (
	"sort"

	"github.com/creditlens/creditlens/schema"
)

// RankReports orders reports by weighted overall score, best first.
// Ties break alphabetically by institution name so rankings are stable
// across runs.
func RankReports(reports []*schema.CreditReport) []*schema.CreditReport {
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Overall != reports[j].Overall {
			return reports[i].Overall > reports[j].Overall
		}
		return reports[i].Institution < reports[j].Institution
	})
	return reports
}
