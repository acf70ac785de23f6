package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dart-analysis/internal/model"
)

func bsLine(name, amount string) model.LineItem {
	return model.LineItem{
		AccountName:   name,
		Statement:     model.StatementBalanceSheet,
		Consolidation: model.ConsolidationIndividual,
		CurrentAmount: amount,
	}
}

func isLine(name, amount string) model.LineItem {
	it := bsLine(name, amount)
	it.Statement = model.StatementIncome
	return it
}

func TestStructure_Composition(t *testing.T) {
	f := &model.Filing{Items: []model.LineItem{
		isLine("매출액", "5,000"),
		bsLine("자산총계", "1,000"),
		bsLine("유동자산", "400"),
		bsLine("비유동자산", "600"),
		bsLine("재고자산", "120"),
		bsLine("매출채권", "80"),
		bsLine("유동부채", "300"),
		bsLine("매입채무", "90"),
		bsLine("자본금", "100"),
		bsLine("이익잉여금", "250"),
	}}
	cm := model.CanonicalMetrics{
		model.MetricAssets: {Current: 1000},
	}

	bs := Structure(f, cm)

	assert.Equal(t, int64(400), bs.Assets.Items["current_assets"])
	assert.Equal(t, int64(600), bs.Assets.Items["non_current_assets"])
	assert.Equal(t, int64(120), bs.Assets.Items["inventory"])
	assert.Equal(t, int64(80), bs.Assets.Items["receivables"])
	assert.Equal(t, int64(300), bs.Liabilities.Items["current_liabilities"])
	assert.Equal(t, int64(90), bs.Liabilities.Items["payables"])
	assert.Equal(t, int64(100), bs.Equity.Items["capital_stock"])
	assert.Equal(t, int64(250), bs.Equity.Items["retained_earnings"])
	assert.False(t, bs.Assets.Synthesized)
}

func TestStructure_TotalsNeverBucketed(t *testing.T) {
	f := &model.Filing{Items: []model.LineItem{
		isLine("매출액", "5,000"),
		bsLine("자산총계", "1,000"),
		bsLine("부채총계", "600"),
		bsLine("자본총계", "400"),
	}}
	bs := Structure(f, model.CanonicalMetrics{})

	assert.Empty(t, bs.Assets.Items)
	assert.Empty(t, bs.Liabilities.Items)
	assert.Empty(t, bs.Equity.Items)
}

func TestStructure_KeepMaxAcrossBases(t *testing.T) {
	// The same caption appears once per consolidation basis; the larger
	// amount wins for the current/non-current pairs.
	small := bsLine("유동자산", "400")
	large := bsLine("유동자산", "900")
	large.Consolidation = model.ConsolidationConsolidated

	f := &model.Filing{Items: []model.LineItem{isLine("매출액", "1"), small, large}}
	bs := Structure(f, model.CanonicalMetrics{})

	assert.Equal(t, int64(900), bs.Assets.Items["current_assets"])
}

func TestStructure_PlainBucketsTakeLatestCaption(t *testing.T) {
	// Non-keepMax buckets are plain assignments, so a repeated caption
	// leaves the last reported amount in place.
	f := &model.Filing{Items: []model.LineItem{
		isLine("매출액", "1"),
		bsLine("재고자산", "120"),
		bsLine("재고자산", "130"),
	}}
	bs := Structure(f, model.CanonicalMetrics{})
	assert.Equal(t, int64(130), bs.Assets.Items["inventory"])
}

func TestStructure_CurrentExcludesNonCurrent(t *testing.T) {
	f := &model.Filing{Items: []model.LineItem{
		isLine("매출액", "1"),
		bsLine("비유동자산", "600"),
		bsLine("비유동부채", "200"),
	}}
	bs := Structure(f, model.CanonicalMetrics{})

	assert.NotContains(t, bs.Assets.Items, "current_assets")
	assert.Equal(t, int64(600), bs.Assets.Items["non_current_assets"])
	assert.NotContains(t, bs.Liabilities.Items, "current_liabilities")
	assert.Equal(t, int64(200), bs.Liabilities.Items["non_current_liabilities"])
}

func TestStructure_SynthesizedSplitRegular(t *testing.T) {
	f := &model.Filing{Items: []model.LineItem{isLine("매출액", "5,000")}}
	cm := model.CanonicalMetrics{
		model.MetricAssets:      {Current: 1000},
		model.MetricLiabilities: {Current: 600},
	}

	bs := Structure(f, cm)

	// Non-financial split: assets 40/60, liabilities 50/50.
	require.True(t, bs.Assets.Synthesized)
	assert.Equal(t, int64(400), bs.Assets.Items["current_assets"])
	assert.Equal(t, int64(600), bs.Assets.Items["non_current_assets"])

	require.True(t, bs.Liabilities.Synthesized)
	assert.Equal(t, int64(300), bs.Liabilities.Items["current_liabilities"])
	assert.Equal(t, int64(300), bs.Liabilities.Items["non_current_liabilities"])
}

func TestStructure_SynthesizedSplitFinancial(t *testing.T) {
	// No 매출 caption anywhere marks the filer as a financial institution:
	// assets 60/40, liabilities 70/30.
	f := &model.Filing{Items: []model.LineItem{isLine("영업수익", "5,000")}}
	cm := model.CanonicalMetrics{
		model.MetricAssets:      {Current: 1000},
		model.MetricLiabilities: {Current: 1000},
	}

	bs := Structure(f, cm)

	assert.Equal(t, int64(600), bs.Assets.Items["current_assets"])
	assert.Equal(t, int64(400), bs.Assets.Items["non_current_assets"])
	assert.Equal(t, int64(700), bs.Liabilities.Items["current_liabilities"])
	assert.Equal(t, int64(300), bs.Liabilities.Items["non_current_liabilities"])
}

func TestStructure_NoSynthesisWhenItemsExist(t *testing.T) {
	f := &model.Filing{Items: []model.LineItem{
		isLine("매출액", "1"),
		bsLine("유동자산", "400"),
	}}
	cm := model.CanonicalMetrics{model.MetricAssets: {Current: 1000}}

	bs := Structure(f, cm)
	assert.False(t, bs.Assets.Synthesized)
	assert.Equal(t, int64(400), bs.Assets.Items["current_assets"])
	assert.NotContains(t, bs.Assets.Items, "non_current_assets")
}

func TestStructure_EquityNeverSynthesized(t *testing.T) {
	f := &model.Filing{Items: []model.LineItem{isLine("매출액", "1")}}
	cm := model.CanonicalMetrics{model.MetricEquity: {Current: 500}}

	bs := Structure(f, cm)
	assert.Empty(t, bs.Equity.Items)
	assert.False(t, bs.Equity.Synthesized)
}

func TestStructure_EquationIncluded(t *testing.T) {
	cm := model.CanonicalMetrics{
		model.MetricAssets:      {Current: 1000},
		model.MetricLiabilities: {Current: 600},
		model.MetricEquity:      {Current: 400},
	}
	bs := Structure(nil, cm)
	assert.True(t, bs.Equation.Balanced)
}
