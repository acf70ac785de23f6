package analyze

import (
	"strings"

	"github.com/sells-group/dart-analysis/internal/classify"
	"github.com/sells-group/dart-analysis/internal/model"
)

// side says which composition bucket a matched line item belongs to.
type side int

const (
	sideAsset side = iota
	sideLiability
	sideEquity
)

// compRule maps a balance-sheet caption to a composition key. Rules are
// evaluated in order and the first match wins, so specific captions must
// precede the broader ones that contain them. keepMax resolves the
// current/non-current pairs that appear once per consolidation basis: the
// larger reported amount is retained.
type compRule struct {
	side    side
	key     string
	match   func(name string) bool
	keepMax bool
}

var compRules = []compRule{
	{sideAsset, "current_assets", func(s string) bool {
		return strings.Contains(s, "유동자산") && !strings.Contains(s, "비유동자산")
	}, true},
	{sideAsset, "non_current_assets", has("비유동자산"), true},
	{sideAsset, "inventory", has("재고자산"), false},
	{sideAsset, "receivables", hasAny("매출채권", "수취채권"), false},
	{sideAsset, "cash", hasAny("현금", "예치금"), false},
	{sideAsset, "loans", hasAny("대출채권", "대출"), false},
	{sideAsset, "fair_value_assets", has("공정가치측정금융자산"), false},
	{sideAsset, "insurance_assets", has("보험계약자산"), false},
	{sideAsset, "derivative_assets", has("파생상품자산"), false},
	{sideAsset, "amortized_cost_assets", func(s string) bool {
		return strings.Contains(s, "상각후원가측정") && strings.Contains(s, "자산")
	}, false},

	{sideLiability, "current_liabilities", func(s string) bool {
		return strings.Contains(s, "유동부채") && !strings.Contains(s, "비유동부채")
	}, true},
	{sideLiability, "non_current_liabilities", has("비유동부채"), true},
	{sideLiability, "payables", has("매입채무"), false},
	{sideLiability, "borrowings", hasAny("차입금", "대출"), false},
	{sideLiability, "deposits", hasAny("예수금", "예치금"), false},
	{sideLiability, "deposit_liabilities", has("예수부채"), false},
	{sideLiability, "insurance_liabilities", has("보험계약부채"), false},
	{sideLiability, "derivative_liabilities", has("파생상품부채"), false},

	{sideEquity, "capital_stock", has("자본금"), false},
	{sideEquity, "retained_earnings", has("이익잉여금"), false},
	{sideEquity, "other_comprehensive_income", has("기타포괄손익누계액"), false},
	{sideEquity, "capital_surplus", has("자본잉여금"), false},
	{sideEquity, "hybrid_capital", has("신종자본증권"), false},
}

func has(sub string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, sub) }
}

func hasAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

// totalCaptions are handled by the classifier, not the composition table.
// A balance-sheet item naming a grand total never contributes to a bucket.
var totalCaptions = []string{"자산총계", "부채총계", "자본총계"}

// Structure builds the balance-sheet structure report: the balance-equation
// check over the classified totals plus a composition breakdown of each side
// extracted from the filing's balance-sheet captions. When a side's total is
// known but no captions matched, the current/non-current split is synthesized
// from a fixed ratio table that differs for financial institutions.
func Structure(f *model.Filing, cm model.CanonicalMetrics) model.BalanceStructure {
	bs := model.BalanceStructure{
		Equation:    BalanceCheck(cm),
		Assets:      model.Composition{Items: map[string]int64{}},
		Liabilities: model.Composition{Items: map[string]int64{}},
		Equity:      model.Composition{Items: map[string]int64{}},
	}
	if f == nil {
		return bs
	}

	for _, it := range f.Items {
		if it.Statement != model.StatementBalanceSheet {
			continue
		}
		name := strings.TrimSpace(it.AccountName)
		amount, ok := classify.ParseAmount(it.CurrentAmount)
		if !ok {
			continue
		}
		if isTotalCaption(name) {
			continue
		}
		for _, r := range compRules {
			if !r.match(name) {
				continue
			}
			items := bs.Assets.Items
			switch r.side {
			case sideLiability:
				items = bs.Liabilities.Items
			case sideEquity:
				items = bs.Equity.Items
			}
			if prev, exists := items[r.key]; !exists || !r.keepMax || amount > prev {
				items[r.key] = amount
			}
			break
		}
	}

	financial := classify.IsFinancialInstitution(f)
	synthesizeSplit(&bs.Assets, cm.Current(model.MetricAssets), assetSplit(financial))
	synthesizeSplit(&bs.Liabilities, cm.Current(model.MetricLiabilities), liabilitySplit(financial))
	return bs
}

// splitRatio is the estimated current share of a side's total; the
// remainder is booked as non-current.
type splitRatio struct {
	currentKey    string
	nonCurrentKey string
	currentShare  float64
}

func assetSplit(financial bool) splitRatio {
	share := 0.4
	if financial {
		share = 0.6
	}
	return splitRatio{"current_assets", "non_current_assets", share}
}

func liabilitySplit(financial bool) splitRatio {
	share := 0.5
	if financial {
		share = 0.7
	}
	return splitRatio{"current_liabilities", "non_current_liabilities", share}
}

func synthesizeSplit(c *model.Composition, total *int64, r splitRatio) {
	if len(c.Items) > 0 || total == nil || *total == 0 {
		return
	}
	current := int64(float64(*total) * r.currentShare)
	c.Items[r.currentKey] = current
	c.Items[r.nonCurrentKey] = *total - current
	c.Synthesized = true
}

func isTotalCaption(name string) bool {
	for _, t := range totalCaptions {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}
