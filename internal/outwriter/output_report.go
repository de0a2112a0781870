package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReportResults outputs a full credit report, dispatching based on the output format configured.
func WriteReportResults(report *schema.CreditReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(report, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeReportTables generates and writes the human-readable report.
func writeReportTables(report *schema.CreditReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Credit Report: %s (%s)\n", report.Institution, report.Type); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Total Assets: %s  Reporting Year: %d\n\n",
		schema.FormatAssets(report.TotalAssets), report.Year); err != nil {
		return err
	}

	// 1. Category summary table
	catTable := tablewriter.NewWriter(writer)
	catTable.Header([]string{"Category", "Weight", "Score", "Rating"})
	catTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var catData [][]string
	for _, category := range schema.AllCategories {
		result, ok := report.Categories[category]
		if !ok {
			continue
		}
		band := schema.RatingBands[0]
		for _, candidate := range schema.RatingBands {
			if result.Score >= candidate.Min {
				band = candidate
				break
			}
		}
		catData = append(catData, []string{
			schema.CategoryDisplayName(category),
			fmt.Sprintf("%.0f%%", cfg.CategoryWeights[category]*100),
			fmtFloat(result.Score),
			formatRating(band, cfg),
		})
	}
	if err := catTable.Bulk(catData); err != nil {
		return err
	}
	if err := catTable.Render(); err != nil {
		return err
	}

	// 2. Metric breakdown table
	breakdownTable := tablewriter.NewWriter(writer)
	breakdownTable.Header([]string{"Category", "Metric", "Score"})
	breakdownTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var breakdownData [][]string
	for _, category := range schema.AllCategories {
		result, ok := report.Categories[category]
		if !ok {
			continue
		}
		for _, key := range schema.CategoryMetricOrder[category] {
			score, ok := result.Breakdown[key]
			if !ok {
				continue
			}
			breakdownData = append(breakdownData, []string{
				schema.CategoryDisplayName(category),
				string(key),
				fmtFloat(score),
			})
		}
	}
	if err := breakdownTable.Bulk(breakdownData); err != nil {
		return err
	}
	if err := breakdownTable.Render(); err != nil {
		return err
	}

	// 3. Overall verdict and heuristics
	lines := []string{
		fmt.Sprintf("Overall Score: %s (%s - %s)", fmtFloat(report.Overall), formatRating(report.Rating, cfg), report.Rating.Description),
		fmt.Sprintf("Category Mean: %s", fmtFloat(report.Mean)),
		fmt.Sprintf("Management Quality: %s (%s)", report.Management.Rating, fmtFloat(report.Management.Score)),
		fmt.Sprintf("Liquidity Risk: %s  Asset Quality Risk: %s", fmtFloat(report.LiquidityRisk), fmtFloat(report.AssetQualityRisk)),
		fmt.Sprintf("Funding Diversification: %s  Liquidity Runway: %d days", fmtFloat(report.FundingDiversification), report.RunwayDays),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	// 4. Stress scenarios
	if len(report.Stress) > 0 {
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
		if err := writeStressTable(report.Stress, cfg, fmtFloat, writer); err != nil {
			return err
		}
	}

	// 5. Narrative commentary when enabled
	if report.Commentary != "" {
		if _, err := fmt.Fprintf(writer, "\n%s\n", report.Commentary); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "\nAnalysis completed in %v with %d workers. Analysis backend: %s\n",
		duration, cfg.Workers, cfg.AnalysisBackend); err != nil {
		return err
	}
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(report *schema.CreditReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, buildJSONReport(report))
	}, "Wrote JSON")
}

// jsonCategoryResult is the JSON shape of one scored category.
type jsonCategoryResult struct {
	Score     float64            `json:"score"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// jsonReport is the JSON shape of a full credit report.
type jsonReport struct {
	Institution            string                        `json:"institution"`
	Type                   string                        `json:"type"`
	TotalAssets            float64                       `json:"total_assets"`
	Year                   int                           `json:"year"`
	Categories             map[string]jsonCategoryResult `json:"categories"`
	Overall                float64                       `json:"overall_weighted"`
	Mean                   float64                       `json:"overall_mean"`
	Rating                 string                        `json:"rating"`
	RatingDescription      string                        `json:"rating_description"`
	ManagementRating       string                        `json:"management_rating"`
	ManagementScore        float64                       `json:"management_score"`
	LiquidityRisk          float64                       `json:"liquidity_risk"`
	AssetQualityRisk       float64                       `json:"asset_quality_risk"`
	FundingDiversification float64                       `json:"funding_diversification"`
	RunwayDays             int                           `json:"runway_days"`
	Stress                 []jsonStressResult            `json:"stress_scenarios,omitempty"`
	Commentary             string                        `json:"commentary,omitempty"`
}

// jsonStressResult is the JSON shape of one stress scenario outcome.
type jsonStressResult struct {
	Scenario string  `json:"scenario"`
	LCR      float64 `json:"lcr"`
	NSFR     float64 `json:"nsfr"`
	Pass     bool    `json:"pass"`
}

func buildJSONReport(report *schema.CreditReport) jsonReport {
	categories := make(map[string]jsonCategoryResult, len(report.Categories))
	for category, result := range report.Categories {
		breakdown := make(map[string]float64, len(result.Breakdown))
		for key, score := range result.Breakdown {
			breakdown[string(key)] = score
		}
		categories[string(category)] = jsonCategoryResult{
			Score:     result.Score,
			Breakdown: breakdown,
		}
	}

	var stress []jsonStressResult
	for _, s := range report.Stress {
		stress = append(stress, jsonStressResult{
			Scenario: s.Scenario,
			LCR:      s.LCR,
			NSFR:     s.NSFR,
			Pass:     s.Pass,
		})
	}

	return jsonReport{
		Institution:            report.Institution,
		Type:                   report.Type,
		TotalAssets:            report.TotalAssets,
		Year:                   report.Year,
		Categories:             categories,
		Overall:                report.Overall,
		Mean:                   report.Mean,
		Rating:                 report.Rating.Rating,
		RatingDescription:      report.Rating.Description,
		ManagementRating:       report.Management.Rating,
		ManagementScore:        report.Management.Score,
		LiquidityRisk:          report.LiquidityRisk,
		AssetQualityRisk:       report.AssetQualityRisk,
		FundingDiversification: report.FundingDiversification,
		RunwayDays:             report.RunwayDays,
		Stress:                 stress,
		Commentary:             report.Commentary,
	}
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(report *schema.CreditReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"section", "item", "value", "detail"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeReportCSVRows(csvWriter, report, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeReportCSVRows writes the report as section/item/value rows.
func writeReportCSVRows(w *csv.Writer, report *schema.CreditReport, fmtFloat func(float64) string) error {
	for _, category := range schema.AllCategories {
		result, ok := report.Categories[category]
		if !ok {
			continue
		}
		if err := w.Write([]string{"category", string(category), fmtFloat(result.Score), ""}); err != nil {
			return err
		}
		for _, key := range schema.CategoryMetricOrder[category] {
			score, ok := result.Breakdown[key]
			if !ok {
				continue
			}
			if err := w.Write([]string{"metric", string(key), fmtFloat(score), string(category)}); err != nil {
				return err
			}
		}
	}

	summary := [][]string{
		{"overall", "weighted", fmtFloat(report.Overall), report.Rating.Rating},
		{"overall", "mean", fmtFloat(report.Mean), ""},
		{"heuristic", "management", fmtFloat(report.Management.Score), report.Management.Rating},
		{"heuristic", "liquidity_risk", fmtFloat(report.LiquidityRisk), ""},
		{"heuristic", "asset_quality_risk", fmtFloat(report.AssetQualityRisk), ""},
		{"heuristic", "funding_diversification", fmtFloat(report.FundingDiversification), ""},
		{"heuristic", "runway_days", fmt.Sprintf("%d", report.RunwayDays), ""},
	}
	for _, rec := range summary {
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	for _, s := range report.Stress {
		result := "PASS"
		if !s.Pass {
			result = "FAIL"
		}
		rec := []string{"stress", s.Scenario, fmt.Sprintf("LCR=%s NSFR=%s", fmtFloat(s.LCR), fmtFloat(s.NSFR)), result}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// formatRating renders a rating band with or without color per the config.
func formatRating(band schema.RatingBand, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorRating(band)
	}
	return contract.GetPlainRating(band)
}
