package outwriter

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/creditlens/creditlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secondReport() *schema.CreditReport {
	report := testReport()
	report.Institution = "Goldman Sachs Group Inc."
	report.Type = "Broker Dealer"
	report.TotalAssets = 1600000
	report.Overall = 6.8
	report.Mean = 6.75
	report.Rating = schema.RatingBands[2]
	return report
}

func TestWriteRankingTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := testCfg()
	reports := []*schema.CreditReport{testReport(), secondReport()}
	fmtFloat, _ := createFormatters(cfg.Precision)

	err := writeRankingTable(reports, cfg, fmtFloat, 100*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	// Corporate suffixes are trimmed for the table.
	assert.Contains(t, out, "JPMorgan Chase")
	assert.NotContains(t, out, "& Co.")
	assert.Contains(t, out, "Goldman Sachs")
	assert.Contains(t, out, "$3.2T")
	assert.Contains(t, out, "7.6")
	assert.Contains(t, out, "Scored 2 institutions")
}

func TestWriteRankingJSONIncludesRank(t *testing.T) {
	var buf bytes.Buffer
	reports := []*schema.CreditReport{testReport(), secondReport()}

	type jsonRanking struct {
		Rank int `json:"rank"`
		jsonReport
	}
	output := make([]jsonRanking, len(reports))
	for i, report := range reports {
		output[i] = jsonRanking{Rank: i + 1, jsonReport: buildJSONReport(report)}
	}
	require.NoError(t, writeJSON(&buf, output))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.InDelta(t, 1, decoded[0]["rank"].(float64), 1e-9)
	assert.InDelta(t, 2, decoded[1]["rank"].(float64), 1e-9)
	assert.Equal(t, "A", decoded[1]["rating"])
}

func TestWriteRankingCSVResults(t *testing.T) {
	cfg := testCfg()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = t.TempDir() + "/rankings.csv"

	reports := []*schema.CreditReport{testReport(), secondReport()}
	require.NoError(t, WriteRankingResults(reports, cfg, time.Millisecond))

	content := readFile(t, cfg.OutputFile)
	assert.Contains(t, content, "rank,institution,type,total_assets")
	assert.Contains(t, content, "1,JPMorgan Chase & Co.,Bank")
	assert.Contains(t, content, "2,Goldman Sachs Group Inc.,Broker Dealer")
	assert.Contains(t, content, ",AA")
}
