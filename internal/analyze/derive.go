// Package analyze derives financial ratios, growth rates, and balance-sheet
// structure from a canonical metric mapping. Every output field is
// conditional: when an operand is missing or a divisor is zero the field is
// omitted, never reported as zero.
package analyze

import (
	"math"

	"github.com/sells-group/dart-analysis/internal/model"
)

// Derive computes the full ratio set from classified metrics. Pure
// function; nothing is persisted.
func Derive(cm model.CanonicalMetrics) model.DerivedAnalysis {
	var d model.DerivedAnalysis

	d.Revenue = revenueAnalysis(cm)
	d.Profitability = profitability(cm)
	d.Ratios = ratios(cm)
	d.Performance = performance(cm)
	d.EBITDA = ebitda(cm)

	if d.EBITDA != nil {
		if ie := cm.Current(model.MetricInterestExpense); ie != nil && *ie != 0 {
			d.Ratios.InterestCoverage = round2p(float64(*d.EBITDA) / math.Abs(float64(*ie)))
		}
	}
	return d
}

func revenueAnalysis(cm model.CanonicalMetrics) model.RevenueAnalysis {
	var ra model.RevenueAnalysis
	pair, ok := cm[model.MetricRevenue]
	if !ok {
		return ra
	}
	cur := pair.Current
	ra.CurrentRevenue = &cur
	ra.PreviousRevenue = pair.Prior

	if pair.Prior != nil && *pair.Prior != 0 {
		growth := (float64(cur) - float64(*pair.Prior)) / float64(*pair.Prior) * 100
		ra.GrowthRate = round2p(growth)
		switch {
		case growth > 5:
			ra.Trend = model.TrendGrowth
		case growth < -5:
			ra.Trend = model.TrendDecline
		default:
			ra.Trend = model.TrendStable
		}
	}
	return ra
}

func profitability(cm model.CanonicalMetrics) model.Profitability {
	var p model.Profitability
	revenue := cm.Current(model.MetricRevenue)

	p.GrossProfitMargin = marginOf(cm.Current(model.MetricGrossProfit), revenue)
	p.OperatingProfitMargin = marginOf(cm.Current(model.MetricOperatingProfit), revenue)
	p.NetProfitMargin = marginOf(cm.Current(model.MetricNetIncome), revenue)
	p.ROA = marginOf(cm.Current(model.MetricNetIncome), cm.Current(model.MetricAssets))
	p.ROE = marginOf(cm.Current(model.MetricNetIncome), cm.Current(model.MetricEquity))
	return p
}

func ratios(cm model.CanonicalMetrics) model.FinancialRatios {
	var r model.FinancialRatios
	r.DebtToEquity = marginOf(cm.Current(model.MetricLiabilities), cm.Current(model.MetricEquity))
	r.EquityRatio = marginOf(cm.Current(model.MetricEquity), cm.Current(model.MetricAssets))
	r.DebtToAssets = marginOf(cm.Current(model.MetricLiabilities), cm.Current(model.MetricAssets))
	return r
}

func performance(cm model.CanonicalMetrics) model.Performance {
	var p model.Performance
	p.AssetGrowth = growthOf(cm, model.MetricAssets)
	p.EquityGrowth = growthOf(cm, model.MetricEquity)
	p.NetIncomeGrowth = growthOf(cm, model.MetricNetIncome)
	return p
}

// ebitda is operating profit plus depreciation and amortization, treating
// an absent add-back as zero. Unset entirely when operating profit is
// absent, regardless of the add-backs.
func ebitda(cm model.CanonicalMetrics) *int64 {
	op := cm.Current(model.MetricOperatingProfit)
	if op == nil {
		return nil
	}
	v := *op
	if dep := cm.Current(model.MetricDepreciation); dep != nil {
		v += *dep
	}
	if amort := cm.Current(model.MetricAmortization); amort != nil {
		v += *amort
	}
	return &v
}

// BalanceCheck evaluates assets = liabilities + equity. When any total is
// absent the equation is reported unbalanced with no error rate. The error
// rate is percent, rounded to 4 decimals; balanced means under 1%.
func BalanceCheck(cm model.CanonicalMetrics) model.BalanceEquation {
	eq := model.BalanceEquation{
		TotalAssets:      cm.Current(model.MetricAssets),
		TotalLiabilities: cm.Current(model.MetricLiabilities),
		TotalEquity:      cm.Current(model.MetricEquity),
	}
	if eq.TotalAssets == nil || eq.TotalLiabilities == nil || eq.TotalEquity == nil || *eq.TotalAssets == 0 {
		return eq
	}

	calculated := *eq.TotalLiabilities + *eq.TotalEquity
	errRate := math.Abs(float64(*eq.TotalAssets)-float64(calculated)) / math.Abs(float64(*eq.TotalAssets))
	eq.Balanced = errRate < 0.01
	rounded := math.Round(errRate*100*10000) / 10000
	eq.ErrorRate = &rounded
	return eq
}

// marginOf returns num/den ×100 rounded to 2 decimals, or nil when either
// operand is absent or the divisor is zero.
func marginOf(num, den *int64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	return round2p(float64(*num) / float64(*den) * 100)
}

func growthOf(cm model.CanonicalMetrics, m model.Metric) *float64 {
	pair, ok := cm[m]
	if !ok || pair.Prior == nil || *pair.Prior == 0 {
		return nil
	}
	return round2p((float64(pair.Current) - float64(*pair.Prior)) / float64(*pair.Prior) * 100)
}

func round2p(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}
