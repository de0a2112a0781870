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

// metricReferenceRow is one metric of the scoring model reference.
type metricReferenceRow struct {
	Key         string                  `json:"key"`
	Name        string                  `json:"name"`
	Unit        string                  `json:"unit"`
	Description string                  `json:"description"`
	Weight      float64                 `json:"weight"`
	Excellent   float64                 `json:"excellent"`
	Good        float64                 `json:"good"`
	Fair        float64                 `json:"fair"`
	Poor        float64                 `json:"poor"`
	Reverse     bool                    `json:"reverse"`
	Scored      bool                    `json:"scored"`
	Benchmark   *schema.MetricBenchmark `json:"benchmark,omitempty"`
}

// metricReferenceCategory groups the reference rows of one category.
type metricReferenceCategory struct {
	Category string               `json:"category"`
	Name     string               `json:"name"`
	Weight   float64              `json:"weight"`
	Metrics  []metricReferenceRow `json:"metrics"`
}

// metricReferenceModel is the complete render model for the metrics command.
type metricReferenceModel struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Categories  []metricReferenceCategory `json:"categories"`
}

// buildMetricReferenceModel constructs the complete render model with all processed data.
func buildMetricReferenceModel(model schema.ScoringConfig, weights map[schema.Category]float64) *metricReferenceModel {
	catalog := schema.GetMetricCatalog()

	categories := make([]metricReferenceCategory, 0, len(schema.AllCategories))
	for _, category := range schema.AllCategories {
		thresholds := model[category]
		infos := catalog[category]

		entry := metricReferenceCategory{
			Category: string(category),
			Name:     schema.CategoryDisplayName(category),
			Weight:   weights[category],
		}

		for _, key := range schema.CategoryMetricOrder[category] {
			info := infos[key]
			row := metricReferenceRow{
				Key:         string(key),
				Name:        info.Name,
				Unit:        info.Unit,
				Description: info.Description,
				Benchmark:   info.Benchmark,
			}
			if t, ok := thresholds[key]; ok {
				row.Weight = t.Weight
				row.Excellent = t.Excellent
				row.Good = t.Good
				row.Fair = t.Fair
				row.Poor = t.Poor
				row.Reverse = t.Reverse
				row.Scored = true
			}
			entry.Metrics = append(entry.Metrics, row)
		}

		// Informational metrics carry catalog entries but no thresholds.
		for key, info := range infos {
			if _, ok := thresholds[key]; ok {
				continue
			}
			if containsKey(schema.CategoryMetricOrder[category], key) {
				continue
			}
			entry.Metrics = append(entry.Metrics, metricReferenceRow{
				Key:         string(key),
				Name:        info.Name,
				Unit:        info.Unit,
				Description: info.Description,
				Benchmark:   info.Benchmark,
			})
		}

		categories = append(categories, entry)
	}

	return &metricReferenceModel{
		Title:       "Credit Scoring Model",
		Description: "Category scores are weighted sums of piecewise-linear metric scores on a 1-10 scale",
		Categories:  categories,
	}
}

func containsKey(keys []schema.MetricKey, key schema.MetricKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// WriteMetricsReference outputs the scoring model reference, dispatching based
// on the output format configured.
func WriteMetricsReference(model schema.ScoringConfig, weights map[schema.Category]float64, cfg *contract.Config) error {
	renderModel := buildMetricReferenceModel(model, weights)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMetricsCSVResults(renderModel, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTables(renderModel, w)
		}, "Wrote table")
	}
	return nil
}

// writeMetricsTables renders one threshold table per category.
func writeMetricsTables(model *metricReferenceModel, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s\n%s\n\n", model.Title, model.Description); err != nil {
		return err
	}

	for _, category := range model.Categories {
		if _, err := fmt.Fprintf(writer, "%s (weight %.0f%%)\n", category.Name, category.Weight*100); err != nil {
			return err
		}

		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Metric", "Unit", "Weight", "Excellent", "Good", "Fair", "Poor", "Direction"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, metric := range category.Metrics {
			if !metric.Scored {
				data = append(data, []string{metric.Name, metric.Unit, "-", "-", "-", "-", "-", "informational"})
				continue
			}
			direction := "higher is better"
			if metric.Reverse {
				direction = "lower is better"
			}
			data = append(data, []string{
				metric.Name,
				metric.Unit,
				fmt.Sprintf("%.0f%%", metric.Weight*100),
				formatThreshold(metric.Excellent),
				formatThreshold(metric.Good),
				formatThreshold(metric.Fair),
				formatThreshold(metric.Poor),
				direction,
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

// writeMetricsCSVResults handles opening the file and calling the CSV writer.
func writeMetricsCSVResults(model *metricReferenceModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"category",
			"category_weight",
			"metric",
			"name",
			"unit",
			"weight",
			"excellent",
			"good",
			"fair",
			"poor",
			"reverse",
			"scored",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, category := range model.Categories {
				for _, metric := range category.Metrics {
					rec := []string{
						category.Category,
						formatThreshold(category.Weight),
						metric.Key,
						metric.Name,
						metric.Unit,
						formatThreshold(metric.Weight),
						formatThreshold(metric.Excellent),
						formatThreshold(metric.Good),
						formatThreshold(metric.Fair),
						formatThreshold(metric.Poor),
						strconv.FormatBool(metric.Reverse),
						strconv.FormatBool(metric.Scored),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// formatThreshold trims trailing zeros so 0.5 and 120 both render compactly.
func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
