package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteStressResults outputs the stress scenarios and liquidity profile,
// dispatching based on the output format configured.
func WriteStressResults(report *schema.CreditReport, buffer []schema.BufferComponent, cashflow []schema.CashFlowPoint, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStressJSONResults(report, buffer, cashflow, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStressCSVResults(report, buffer, cashflow, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStressTables(report, buffer, cashflow, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeStressTable renders the stress scenario table alone. It is shared with
// the full report writer.
func writeStressTable(stress []schema.StressResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Scenario", "LCR Factor", "NSFR Factor", "LCR", "NSFR", "Result"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range stress {
		data = append(data, []string{
			s.Scenario,
			fmt.Sprintf("%.2f", s.LCRFactor),
			fmt.Sprintf("%.2f", s.NSFRFactor),
			fmtFloat(s.LCR),
			fmtFloat(s.NSFR),
			formatStressResult(s.Pass, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeStressTables renders the scenarios plus buffer and cash flow profile.
func writeStressTables(report *schema.CreditReport, buffer []schema.BufferComponent, cashflow []schema.CashFlowPoint, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Liquidity Stress Test: %s\n\n", report.Institution); err != nil {
		return err
	}

	if err := writeStressTable(report.Stress, cfg, fmtFloat, writer); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Liquidity Runway: %d days\n\n", report.RunwayDays); err != nil {
		return err
	}

	// Buffer composition
	if len(buffer) > 0 {
		bufferTable := tablewriter.NewWriter(writer)
		bufferTable.Header([]string{"Component", "Share", "Value"})
		bufferTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, component := range buffer {
			data = append(data, []string{
				component.Name,
				fmt.Sprintf("%.0f%%", component.Share*100),
				fmtFloat(component.Value),
			})
		}
		if err := bufferTable.Bulk(data); err != nil {
			return err
		}
		if err := bufferTable.Render(); err != nil {
			return err
		}
	}

	// Projected funding profile
	if len(cashflow) > 0 {
		flowTable := tablewriter.NewWriter(writer)
		flowTable.Header([]string{"Month", "Inflow", "Outflow", "Net"})
		flowTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, point := range cashflow {
			data = append(data, []string{
				strconv.Itoa(point.Month),
				fmtFloat(point.Inflow),
				fmtFloat(point.Outflow),
				fmtFloat(point.Net),
			})
		}
		if err := flowTable.Bulk(data); err != nil {
			return err
		}
		if err := flowTable.Render(); err != nil {
			return err
		}
	}
	return nil
}

// jsonBufferComponent is the JSON shape of one buffer slice.
type jsonBufferComponent struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
	Value float64 `json:"value"`
}

// jsonCashFlowPoint is the JSON shape of one projected month.
type jsonCashFlowPoint struct {
	Month   int     `json:"month"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Net     float64 `json:"net"`
}

// writeStressJSONResults handles opening the file and calling the JSON writer.
func writeStressJSONResults(report *schema.CreditReport, buffer []schema.BufferComponent, cashflow []schema.CashFlowPoint, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		var scenarios []jsonStressResult
		for _, s := range report.Stress {
			scenarios = append(scenarios, jsonStressResult{
				Scenario: s.Scenario,
				LCR:      s.LCR,
				NSFR:     s.NSFR,
				Pass:     s.Pass,
			})
		}

		bufferOut := make([]jsonBufferComponent, len(buffer))
		for i, component := range buffer {
			bufferOut[i] = jsonBufferComponent{Name: component.Name, Share: component.Share, Value: component.Value}
		}

		flowOut := make([]jsonCashFlowPoint, len(cashflow))
		for i, point := range cashflow {
			flowOut[i] = jsonCashFlowPoint{Month: point.Month, Inflow: point.Inflow, Outflow: point.Outflow, Net: point.Net}
		}

		output := struct {
			Institution string                `json:"institution"`
			RunwayDays  int                   `json:"runway_days"`
			Scenarios   []jsonStressResult    `json:"scenarios"`
			Buffer      []jsonBufferComponent `json:"buffer_composition"`
			CashFlow    []jsonCashFlowPoint   `json:"cash_flow_projection"`
		}{
			Institution: report.Institution,
			RunwayDays:  report.RunwayDays,
			Scenarios:   scenarios,
			Buffer:      bufferOut,
			CashFlow:    flowOut,
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeStressCSVResults handles opening the file and calling the CSV writer.
func writeStressCSVResults(report *schema.CreditReport, buffer []schema.BufferComponent, cashflow []schema.CashFlowPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"section", "item", "value_1", "value_2", "result"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, s := range report.Stress {
				result := "PASS"
				if !s.Pass {
					result = "FAIL"
				}
				rec := []string{"scenario", s.Scenario, fmtFloat(s.LCR), fmtFloat(s.NSFR), result}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			for _, component := range buffer {
				rec := []string{"buffer", component.Name, fmtFloat(component.Share), fmtFloat(component.Value), ""}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			for _, point := range cashflow {
				rec := []string{"cash_flow", strconv.Itoa(point.Month), fmtFloat(point.Inflow), fmtFloat(point.Outflow), fmtFloat(point.Net)}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			rec := []string{"runway", "days", strconv.Itoa(report.RunwayDays), "", ""}
			return csvWriter.Write(rec)
		})
	}, "Wrote CSV")
}

// formatStressResult renders a pass/fail verdict with or without color per the config.
func formatStressResult(pass bool, cfg *contract.Config) string {
	if pass {
		if cfg.UseColors {
			return contract.StrongColor.Sprint("PASS")
		}
		return "PASS"
	}
	if cfg.UseColors {
		return contract.DistressColor.Sprint("FAIL")
	}
	return "FAIL"
}
