package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRiskFactorResults outputs the qualitative risk matrices, dispatching
// based on the output format configured.
func WriteRiskFactorResults(institution string, overview, liquidity []schema.RiskFactor, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRiskJSONResults(institution, overview, liquidity, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRiskCSVResults(institution, overview, liquidity, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRiskTables(institution, overview, liquidity, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeRiskTables renders the overview and liquidity matrices as tables.
func writeRiskTables(institution string, overview, liquidity []schema.RiskFactor, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Risk Factors: %s\n\n", institution); err != nil {
		return err
	}

	sections := []struct {
		title   string
		factors []schema.RiskFactor
	}{
		{"Overview", overview},
		{"Liquidity", liquidity},
	}

	for _, section := range sections {
		if len(section.factors) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(writer, "%s\n", section.title); err != nil {
			return err
		}

		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Factor", "Level", "Detail"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignLeft
		})

		var data [][]string
		for _, factor := range section.factors {
			data = append(data, []string{
				factor.Name,
				formatRiskLevel(factor.Level, cfg),
				factor.Detail,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

// jsonRiskFactor is the JSON shape of one risk matrix row.
type jsonRiskFactor struct {
	Name   string `json:"name"`
	Level  string `json:"level"`
	Detail string `json:"detail"`
}

func toJSONRiskFactors(factors []schema.RiskFactor) []jsonRiskFactor {
	out := make([]jsonRiskFactor, len(factors))
	for i, factor := range factors {
		out[i] = jsonRiskFactor{
			Name:   factor.Name,
			Level:  string(factor.Level),
			Detail: factor.Detail,
		}
	}
	return out
}

// writeRiskJSONResults handles opening the file and calling the JSON writer.
func writeRiskJSONResults(institution string, overview, liquidity []schema.RiskFactor, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		output := struct {
			Institution string           `json:"institution"`
			Overview    []jsonRiskFactor `json:"overview"`
			Liquidity   []jsonRiskFactor `json:"liquidity"`
		}{
			Institution: institution,
			Overview:    toJSONRiskFactors(overview),
			Liquidity:   toJSONRiskFactors(liquidity),
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeRiskCSVResults handles opening the file and calling the CSV writer.
func writeRiskCSVResults(institution string, overview, liquidity []schema.RiskFactor, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"institution", "matrix", "factor", "level", "detail"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			write := func(matrix string, factors []schema.RiskFactor) error {
				for _, factor := range factors {
					rec := []string{institution, matrix, factor.Name, string(factor.Level), factor.Detail}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			}
			if err := write("overview", overview); err != nil {
				return err
			}
			return write("liquidity", liquidity)
		})
	}, "Wrote CSV")
}

// formatRiskLevel renders a risk level with or without color per the config.
func formatRiskLevel(level schema.RiskLevel, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorRiskLevel(level)
	}
	return string(level)
}
