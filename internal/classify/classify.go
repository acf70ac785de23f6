// Package classify turns the free-text account labels of a filing into a
// canonical metric mapping. Matching is substring containment over the raw
// Korean captions, driven by an ordered rule table.
package classify

import (
	"strconv"
	"strings"

	"github.com/sells-group/dart-analysis/internal/model"
)

// Classify extracts canonical metrics from a filing. Two sweeps over the
// line items in filing order: individual-statement items first, then
// consolidated items filling only the keys still unset. Within a sweep the
// first matching line item wins a key; nothing ever overwrites.
//
// There is no failure mode: items with unparseable amounts are skipped and
// unmatched metrics are simply absent from the result.
func Classify(f *model.Filing) model.CanonicalMetrics {
	cm := model.CanonicalMetrics{}
	if f == nil {
		return cm
	}
	sweep(cm, f.Items, model.ConsolidationIndividual)
	sweep(cm, f.Items, model.ConsolidationConsolidated)
	return cm
}

func sweep(cm model.CanonicalMetrics, items []model.LineItem, fs model.Consolidation) {
	for _, it := range items {
		if it.Consolidation != fs {
			continue
		}
		current, ok := ParseAmount(it.CurrentAmount)
		if !ok {
			continue
		}

		for _, r := range rules {
			if !r.inScope(it.Statement) || !r.match(it.AccountName) {
				continue
			}
			if _, set := cm[r.metric]; !set {
				pair := model.MetricPair{Current: current}
				if prior, ok := ParseAmount(it.PriorAmount); ok {
					pair.Prior = &prior
				}
				cm[r.metric] = pair
			}
			// The first matching rule decides the item either way.
			break
		}
	}
}

// ParseAmount converts a raw filing amount into a signed integer. Thousands
// separators and inner spaces are stripped; the text is accepted only if
// what remains after removing one leading sign is all decimal digits.
func ParseAmount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	digits := s
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsFinancialInstitution reports whether the filing lacks a conventional
// revenue caption on its income statement. Banks and insurers file 영업수익
// instead of 매출액; several downstream heuristics branch on this.
func IsFinancialInstitution(f *model.Filing) bool {
	if f == nil {
		return true
	}
	for _, it := range f.Items {
		if it.Statement != model.StatementIncome && it.Statement != model.StatementComprehensiveIncome {
			continue
		}
		if strings.Contains(it.AccountName, "매출") {
			return false
		}
	}
	return true
}

// StatementBuckets groups the raw line items of a filing by statement type
// for the raw financial endpoint.
type StatementBuckets struct {
	BalanceSheet    []model.LineItem `json:"balance_sheet"`
	IncomeStatement []model.LineItem `json:"income_statement"`
}

// SplitByStatement buckets filing items into balance-sheet and
// income-statement groups, preserving order. Other statement types are
// ignored here; the key-account endpoint only carries BS and IS items.
func SplitByStatement(f *model.Filing) StatementBuckets {
	var b StatementBuckets
	if f == nil {
		return b
	}
	for _, it := range f.Items {
		switch it.Statement {
		case model.StatementBalanceSheet:
			b.BalanceSheet = append(b.BalanceSheet, it)
		case model.StatementIncome:
			b.IncomeStatement = append(b.IncomeStatement, it)
		}
	}
	return b
}
