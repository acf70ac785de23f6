package financial

import (
	"context"
	"math"

	"github.com/sells-group/dart-analysis/internal/classify"
	"github.com/sells-group/dart-analysis/internal/model"
)

// DetailedMetrics is the full-statement metric block of the detailed
// analysis. Equity falls back to assets minus liabilities when the filing
// carries no explicit total.
type DetailedMetrics struct {
	EBITDA            *int64 `json:"ebitda"`
	InterestExpense   *int64 `json:"interest_expense"`
	OperatingCashFlow *int64 `json:"operating_cash_flow"`
	TotalAssets       *int64 `json:"total_assets"`
	TotalLiabilities  *int64 `json:"total_liabilities"`
	TotalEquity       *int64 `json:"total_equity"`
	OperatingProfit   *int64 `json:"operating_profit"`
	NetIncome         *int64 `json:"net_income"`
	Depreciation      *int64 `json:"depreciation"`
	Amortization      *int64 `json:"amortization"`
}

// DetailedRatios holds the ratio set computed over the full statement data.
// Interest coverage here is EBITDA-based, unlike the summary analysis which
// has no depreciation data to work with.
type DetailedRatios struct {
	DebtToEquity     *float64 `json:"debt_to_equity_ratio,omitempty"`
	InterestCoverage *float64 `json:"interest_coverage_ratio,omitempty"`
	EquityRatio      *float64 `json:"equity_ratio,omitempty"`
	ROA              *float64 `json:"roa,omitempty"`
	ROE              *float64 `json:"roe,omitempty"`
}

// DetailedAnalysis is the detailed-analysis endpoint payload, built from
// the complete statement set of one consolidation basis.
type DetailedAnalysis struct {
	CompanyInfo model.FilingInfo `json:"company_info"`
	EBITDA      *int64           `json:"ebitda"`
	Metrics     DetailedMetrics  `json:"financial_metrics"`
	Ratios      DetailedRatios   `json:"ratios"`
}

// DetailedAnalysis fetches the complete statement set for one consolidation
// basis and computes EBITDA plus the extended ratio block.
func (s *Service) DetailedAnalysis(ctx context.Context, p Params, fsDiv model.Consolidation) (*DetailedAnalysis, error) {
	p = s.normalize(p)
	if fsDiv == "" {
		fsDiv = model.ConsolidationIndividual
	}

	f, err := s.dart.FetchFilingAll(ctx, p.CorpCode, p.Year, p.Report, fsDiv)
	if err != nil {
		return nil, err
	}

	cm := classify.Classify(f)
	m := detailedMetrics(cm)

	return &DetailedAnalysis{
		CompanyInfo: summaryInfo(f),
		EBITDA:      m.EBITDA,
		Metrics:     m,
		Ratios:      detailedRatios(m),
	}, nil
}

func detailedMetrics(cm model.CanonicalMetrics) DetailedMetrics {
	m := DetailedMetrics{
		InterestExpense:   cm.Current(model.MetricInterestExpense),
		OperatingCashFlow: cm.Current(model.MetricOperatingCashFlow),
		TotalAssets:       cm.Current(model.MetricAssets),
		TotalLiabilities:  cm.Current(model.MetricLiabilities),
		TotalEquity:       cm.Current(model.MetricEquity),
		OperatingProfit:   cm.Current(model.MetricOperatingProfit),
		NetIncome:         cm.Current(model.MetricNetIncome),
		Depreciation:      cm.Current(model.MetricDepreciation),
		Amortization:      cm.Current(model.MetricAmortization),
	}

	if m.TotalEquity == nil && m.TotalAssets != nil && m.TotalLiabilities != nil {
		eq := *m.TotalAssets - *m.TotalLiabilities
		m.TotalEquity = &eq
	}

	if m.OperatingProfit != nil {
		ebitda := *m.OperatingProfit
		if m.Depreciation != nil {
			ebitda += *m.Depreciation
		}
		if m.Amortization != nil {
			ebitda += *m.Amortization
		}
		m.EBITDA = &ebitda
	}
	return m
}

func detailedRatios(m DetailedMetrics) DetailedRatios {
	var r DetailedRatios
	r.DebtToEquity = ratioPercent(m.TotalLiabilities, m.TotalEquity)
	r.EquityRatio = ratioPercent(m.TotalEquity, m.TotalAssets)
	r.ROA = ratioPercent(m.OperatingProfit, m.TotalAssets)
	r.ROE = ratioPercent(m.NetIncome, m.TotalEquity)

	if m.EBITDA != nil && m.InterestExpense != nil && *m.InterestExpense != 0 {
		v := math.Round(float64(*m.EBITDA)/math.Abs(float64(*m.InterestExpense))*100) / 100
		r.InterestCoverage = &v
	}
	return r
}

func ratioPercent(num, den *int64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := math.Round(float64(*num)/float64(*den)*100*100) / 100
	return &v
}
