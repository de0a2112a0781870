package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/creditlens/creditlens/internal/commentary"
	"github.com/creditlens/creditlens/internal/contract"
	"github.com/creditlens/creditlens/schema"
)

// BuildReport computes the full credit report for one institution.
// It is a pure function over the institution data and validated config.
func BuildReport(d *schema.InstitutionData, cfg *contract.Config) (*schema.CreditReport, error) {
	latest := d.LatestMetrics()

	categories, err := ScoreAllCategories(latest, cfg.ScoringModel)
	if err != nil {
		return nil, err
	}

	overall := ScoreOverallWeighted(categories, cfg.CategoryWeights)

	report := &schema.CreditReport{
		Institution: d.Name,
		Type:        d.Type,
		TotalAssets: d.TotalAssets,
		Categories:  categories,
		Overall:     overall,
		Mean:        ScoreOverallMean(categories),
		Rating:      InterpretScore(overall),
		Management:  AssessManagement(d),
	}
	if len(d.Years) > 0 {
		report.Year = d.Years[len(d.Years)-1]
	}

	report.LiquidityRisk = LiquidityRiskScore(d)
	report.AssetQualityRisk = AssetQualityRiskScore(d)

	lcr := latest[schema.MetricLCR]
	report.FundingDiversification = FundingDiversificationScore(latest[schema.MetricLoanToDeposit])
	report.RunwayDays = LiquidityRunwayDays(lcr, latest[schema.MetricCashRatio])
	report.Stress = StressScenarios(lcr, latest[schema.MetricNSFR])

	return report, nil
}

// ExecuteScoring fetches and scores institutions in parallel using a worker
// pool, attaches commentary when a summarizer is supplied, and records
// results when analysis tracking is configured.
func ExecuteScoring(
	ctx context.Context,
	cfg *contract.Config,
	source contract.DataSource,
	mgr contract.StoreManager,
	summ commentary.Summarizer,
	names []string,
) ([]*schema.CreditReport, error) {
	if len(names) == 0 {
		return nil, errors.New("no institutions to score")
	}

	// --- 0. Begin Analysis Tracking (if configured) ---
	var analysisID int64
	var analysisStore contract.AnalysisStore
	if mgr != nil {
		analysisStore = mgr.GetAnalysisStore()
	}
	if analysisStore != nil {
		configParams := map[string]any{
			"institutions": len(names),
			"years":        cfg.Years,
			"workers":      cfg.Workers,
			"summarizer":   string(cfg.Summarizer),
		}
		var err error
		analysisID, err = analysisStore.BeginAnalysis(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Analysis tracking initialization failed", err)
			analysisID = 0
		}
	}

	// --- 1. Score institutions with a worker pool ---
	nameCh := make(chan string, len(names))
	reportCh := make(chan *schema.CreditReport, len(names))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for name := range nameCh {
				report, err := scoreInstitution(ctx, cfg, source, summ, name)
				if err != nil {
					contract.LogWarn(fmt.Sprintf("Scoring failed for %s", name), err)
					continue
				}
				reportCh <- report
			}
		})
	}

	for _, name := range names {
		nameCh <- name
	}
	close(nameCh)

	wg.Wait()
	close(reportCh)

	reports := make([]*schema.CreditReport, 0, len(names))
	for report := range reportCh {
		reports = append(reports, report)
	}
	if len(reports) == 0 {
		return nil, errors.New("no institutions could be scored")
	}

	// --- 2. Record results and finish tracking ---
	if analysisStore != nil && analysisID > 0 {
		for _, report := range reports {
			if err := analysisStore.RecordInstitutionScores(analysisID, report); err != nil {
				contract.LogWarn(fmt.Sprintf("Analysis tracking failed for %s", report.Institution), err)
			}
		}
		if err := analysisStore.EndAnalysis(analysisID, time.Now(), len(reports)); err != nil {
			contract.LogWarn("Failed to finalize analysis tracking", err)
		}
	}

	return RankReports(reports), nil
}

// scoreInstitution fetches one institution's data, builds its report, and
// attaches the overall commentary when a summarizer is available.
func scoreInstitution(
	ctx context.Context,
	cfg *contract.Config,
	source contract.DataSource,
	summ commentary.Summarizer,
	name string,
) (*schema.CreditReport, error) {
	data, err := source.FetchInstitution(ctx, name)
	if err != nil {
		return nil, err
	}

	report, err := BuildReport(data, cfg)
	if err != nil {
		return nil, err
	}

	if summ != nil {
		text, err := summ.Summarize(ctx, commentary.Context{
			Kind:   commentary.OverallKind,
			Data:   data,
			Report: report,
		})
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Commentary failed for %s", name), err)
		} else {
			report.Commentary = text
		}
	}

	return report, nil
}
