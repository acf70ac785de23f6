package model

// Metric names a canonical financial quantity extracted from a filing.
type Metric string

const (
	MetricAssets            Metric = "assets"
	MetricLiabilities       Metric = "liabilities"
	MetricEquity            Metric = "equity"
	MetricRevenue           Metric = "revenue"
	MetricGrossProfit       Metric = "gross_profit"
	MetricOperatingProfit   Metric = "operating_profit"
	MetricNetIncome         Metric = "net_income"
	MetricInterestExpense   Metric = "interest_expense"
	MetricDepreciation      Metric = "depreciation"
	MetricAmortization      Metric = "amortization"
	MetricOperatingCashFlow Metric = "operating_cash_flow"
)

// MetricPair holds the current-period value and, when the filing reported
// one, the prior-period value for a single metric.
type MetricPair struct {
	Current int64  `json:"current"`
	Prior   *int64 `json:"prior,omitempty"`
}

// CanonicalMetrics maps metric keys to value pairs. Keys the classifier
// could not match are simply absent.
type CanonicalMetrics map[Metric]MetricPair

// Current returns the current-period value for m, or nil if unset.
func (cm CanonicalMetrics) Current(m Metric) *int64 {
	p, ok := cm[m]
	if !ok {
		return nil
	}
	v := p.Current
	return &v
}

// Prior returns the prior-period value for m, or nil if unset.
func (cm CanonicalMetrics) Prior(m Metric) *int64 {
	p, ok := cm[m]
	if !ok {
		return nil
	}
	return p.Prior
}

// Has reports whether m was matched.
func (cm CanonicalMetrics) Has(m Metric) bool {
	_, ok := cm[m]
	return ok
}
