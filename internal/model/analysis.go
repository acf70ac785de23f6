package model

// Revenue trend labels. Growth above +5%, decline below -5%.
const (
	TrendGrowth  = "growth"
	TrendDecline = "decline"
	TrendStable  = "stable"
)

// RevenueAnalysis reports revenue level and year-over-year movement.
type RevenueAnalysis struct {
	CurrentRevenue  *int64   `json:"current_revenue,omitempty"`
	PreviousRevenue *int64   `json:"previous_revenue,omitempty"`
	GrowthRate      *float64 `json:"revenue_growth_rate,omitempty"`
	Trend           string   `json:"revenue_trend,omitempty"`
}

// Profitability holds margin and return ratios, percent, 2 decimals.
type Profitability struct {
	GrossProfitMargin     *float64 `json:"gross_profit_margin,omitempty"`
	OperatingProfitMargin *float64 `json:"operating_profit_margin,omitempty"`
	NetProfitMargin       *float64 `json:"net_profit_margin,omitempty"`
	ROA                   *float64 `json:"roa,omitempty"`
	ROE                   *float64 `json:"roe,omitempty"`
}

// FinancialRatios holds leverage and coverage ratios.
type FinancialRatios struct {
	DebtToEquity     *float64 `json:"debt_to_equity_ratio,omitempty"`
	EquityRatio      *float64 `json:"equity_ratio,omitempty"`
	DebtToAssets     *float64 `json:"debt_to_assets_ratio,omitempty"`
	InterestCoverage *float64 `json:"interest_coverage_ratio,omitempty"`
}

// Performance holds year-over-year growth of balance-sheet and income items.
type Performance struct {
	AssetGrowth     *float64 `json:"total_assets_growth,omitempty"`
	EquityGrowth    *float64 `json:"equity_growth,omitempty"`
	NetIncomeGrowth *float64 `json:"net_income_growth,omitempty"`
}

// DerivedAnalysis is the computed-only analysis result. It is a pure
// function of CanonicalMetrics and is never persisted. A nil field means
// the inputs needed to compute it were absent, not zero.
type DerivedAnalysis struct {
	Revenue       RevenueAnalysis `json:"revenue_analysis"`
	Profitability Profitability   `json:"profitability_analysis"`
	Ratios        FinancialRatios `json:"financial_ratios"`
	Performance   Performance     `json:"performance_indicators"`
	EBITDA        *int64          `json:"ebitda,omitempty"`
}

// BalanceEquation reports the assets = liabilities + equity check.
// ErrorRate is percent rounded to 4 decimals; it is omitted whenever any
// of the three totals is missing, in which case Balanced is false.
type BalanceEquation struct {
	TotalAssets      *int64   `json:"total_assets"`
	TotalLiabilities *int64   `json:"total_liabilities"`
	TotalEquity      *int64   `json:"total_equity"`
	Balanced         bool     `json:"equation_balance"`
	ErrorRate        *float64 `json:"balance_error_rate,omitempty"`
}

// Composition is a named breakdown of a balance-sheet side. Synthesized is
// true when the split was estimated from a fixed ratio table rather than
// matched from filing line items.
type Composition struct {
	Items       map[string]int64 `json:"items"`
	Synthesized bool             `json:"synthesized"`
}

// BalanceStructure is the balance-equation check plus the composition of
// each side of the balance sheet.
type BalanceStructure struct {
	Equation    BalanceEquation `json:"balance_equation"`
	Assets      Composition     `json:"asset_composition"`
	Liabilities Composition     `json:"liability_composition"`
	Equity      Composition     `json:"equity_composition"`
}
