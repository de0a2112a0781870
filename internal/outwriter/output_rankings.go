package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankingResults outputs ranked institutions, dispatching based on the output format configured.
func WriteRankingResults(reports []*schema.CreditReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankingJSONResults(reports, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankingCSVResults(reports, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingTable(reports, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankingTable generates and writes the human-readable rankings table.
func writeRankingTable(reports []*schema.CreditReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Institution", "Type", "Assets", "Cap", "Asset", "Profit", "Liq", "Overall", "Rating"}
	table.Header(headers)

	// 2. Configure alignment for a compact numeric look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := getMaxTableNameWidth()
	var data [][]string
	for i, report := range reports {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(schema.ShortName(report.Institution), nameWidth),
			report.Type,
			schema.FormatAssets(report.TotalAssets),
		}
		for _, category := range schema.AllCategories {
			row = append(row, fmtFloat(report.Categories[category].Score))
		}
		row = append(row, fmtFloat(report.Overall), formatRating(report.Rating, cfg))
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scored %d institutions\n", len(reports)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Analysis backend: %s\n",
		duration, cfg.Workers, cfg.AnalysisBackend); err != nil {
		return err
	}
	return nil
}

// writeRankingJSONResults handles opening the file and calling the JSON writer.
func writeRankingJSONResults(reports []*schema.CreditReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		// 1. Prepare the data structure for JSON with rank added
		type jsonRanking struct {
			Rank int `json:"rank"`
			jsonReport
		}

		output := make([]jsonRanking, len(reports))
		for i, report := range reports {
			output[i] = jsonRanking{
				Rank:       i + 1,
				jsonReport: buildJSONReport(report),
			}
		}

		// 2. Use the generic JSON writer
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeRankingCSVResults handles opening the file and calling the CSV writer.
func writeRankingCSVResults(reports []*schema.CreditReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"institution",
			"type",
			"total_assets",
			"capitalization",
			"asset_quality",
			"profitability",
			"liquidity",
			"overall_weighted",
			"overall_mean",
			"rating",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, report := range reports {
				rec := []string{
					strconv.Itoa(i + 1),
					report.Institution,
					report.Type,
					fmtFloat(report.TotalAssets),
				}
				for _, category := range schema.AllCategories {
					rec = append(rec, fmtFloat(report.Categories[category].Score))
				}
				rec = append(rec, fmtFloat(report.Overall), fmtFloat(report.Mean), report.Rating.Rating)
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}
