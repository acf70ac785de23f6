// Package financial orchestrates the analysis pipeline: fetch a filing,
// classify its accounts, derive ratios, and optionally compose AI
// commentary. Handlers and the CLI both run through this service.
package financial

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/dart-analysis/internal/analyze"
	"github.com/sells-group/dart-analysis/internal/classify"
	"github.com/sells-group/dart-analysis/internal/corpstore"
	"github.com/sells-group/dart-analysis/internal/model"
	"github.com/sells-group/dart-analysis/internal/narrative"
	"github.com/sells-group/dart-analysis/pkg/opendart"
)

// Service ties the filing client, the corporation store, and the narrative
// composer together.
type Service struct {
	dart     opendart.Client
	corps    corpstore.Store
	composer *narrative.Composer
	log      *zap.Logger
	now      func() time.Time
}

func NewService(dart opendart.Client, corps corpstore.Store, composer *narrative.Composer) *Service {
	return &Service{
		dart:     dart,
		corps:    corps,
		composer: composer,
		log:      zap.L().Named("financial"),
		now:      time.Now,
	}
}

// Params selects a filing. Zero values take defaults: year is the previous
// calendar year, report the annual business report.
type Params struct {
	CorpCode string
	Year     string
	Report   model.ReportCode
}

func (s *Service) normalize(p Params) Params {
	if p.Year == "" {
		p.Year = strconv.Itoa(s.now().Year() - 1)
	}
	if p.Report == "" {
		p.Report = model.ReportBusiness
	}
	return p
}

// RawStatements is the raw endpoint payload: line items bucketed by
// statement, untouched apart from the grouping.
type RawStatements struct {
	CompanyInfo     model.FilingInfo `json:"company_info"`
	BalanceSheet    []model.LineItem `json:"balance_sheet"`
	IncomeStatement []model.LineItem `json:"income_statement"`
}

func (s *Service) Raw(ctx context.Context, p Params) (*RawStatements, error) {
	p = s.normalize(p)
	f, err := s.dart.FetchFiling(ctx, p.CorpCode, p.Year, p.Report)
	if err != nil {
		return nil, err
	}
	buckets := classify.SplitByStatement(f)
	return &RawStatements{
		CompanyInfo:     f.Info,
		BalanceSheet:    buckets.BalanceSheet,
		IncomeStatement: buckets.IncomeStatement,
	}, nil
}

// KeyAccounts is the summary payload's account block. Unmatched keys stay
// null, mirroring what clients already parse.
type KeyAccounts struct {
	Assets          *int64 `json:"assets"`
	Liabilities     *int64 `json:"liabilities"`
	Equity          *int64 `json:"equity"`
	Revenue         *int64 `json:"revenue"`
	OperatingProfit *int64 `json:"operating_profit"`
	NetIncome       *int64 `json:"net_income"`
}

// Summary is the key-account overview for one filing.
type Summary struct {
	CompanyInfo model.FilingInfo `json:"company_info"`
	KeyAccounts KeyAccounts      `json:"key_accounts"`
}

func (s *Service) Summary(ctx context.Context, p Params) (*Summary, error) {
	p = s.normalize(p)
	f, err := s.dart.FetchFiling(ctx, p.CorpCode, p.Year, p.Report)
	if err != nil {
		return nil, err
	}
	cm := classify.Classify(f)
	return &Summary{
		CompanyInfo: summaryInfo(f),
		KeyAccounts: keyAccounts(cm),
	}, nil
}

func keyAccounts(cm model.CanonicalMetrics) KeyAccounts {
	return KeyAccounts{
		Assets:          cm.Current(model.MetricAssets),
		Liabilities:     cm.Current(model.MetricLiabilities),
		Equity:          cm.Current(model.MetricEquity),
		Revenue:         cm.Current(model.MetricRevenue),
		OperatingProfit: cm.Current(model.MetricOperatingProfit),
		NetIncome:       cm.Current(model.MetricNetIncome),
	}
}

// Analysis is the ratio endpoint payload.
type Analysis struct {
	CompanyInfo model.FilingInfo `json:"company_info"`
	model.DerivedAnalysis
}

func (s *Service) Analysis(ctx context.Context, p Params) (*Analysis, error) {
	p = s.normalize(p)
	f, err := s.dart.FetchFiling(ctx, p.CorpCode, p.Year, p.Report)
	if err != nil {
		return nil, err
	}
	cm := classify.Classify(f)
	return &Analysis{
		CompanyInfo:     summaryInfo(f),
		DerivedAnalysis: analyze.Derive(cm),
	}, nil
}

// BalanceStructure is the balance-structure endpoint payload.
type BalanceStructure struct {
	CompanyInfo model.FilingInfo `json:"company_info"`
	model.BalanceStructure
}

func (s *Service) BalanceStructure(ctx context.Context, p Params) (*BalanceStructure, error) {
	p = s.normalize(p)
	f, err := s.dart.FetchFiling(ctx, p.CorpCode, p.Year, p.Report)
	if err != nil {
		return nil, err
	}
	cm := classify.Classify(f)
	return &BalanceStructure{
		CompanyInfo:      summaryInfo(f),
		BalanceStructure: analyze.Structure(f, cm),
	}, nil
}

// AIAnalysis is the narrative analysis payload. AnalysisData carries the
// numbers the commentary was generated from so the front end can render
// both together.
type AIAnalysis struct {
	CompanyName  string                `json:"company_name"`
	AnalysisYear string                `json:"analysis_year"`
	ReportType   model.ReportCode      `json:"report_type"`
	Narrative    string                `json:"ai_analysis"`
	AnalysisData model.DerivedAnalysis `json:"analysis_data"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

func (s *Service) AIAnalysis(ctx context.Context, p Params) (*AIAnalysis, error) {
	p = s.normalize(p)

	corp, f, err := s.lookupAndFetch(ctx, p)
	if err != nil {
		return nil, err
	}

	cm := classify.Classify(f)
	derived := analyze.Derive(cm)
	text := s.composer.Analysis(ctx, corp.CorpName, cm, derived)

	return &AIAnalysis{
		CompanyName:  corp.CorpName,
		AnalysisYear: p.Year,
		ReportType:   p.Report,
		Narrative:    text,
		AnalysisData: derived,
		GeneratedAt:  s.now().UTC(),
	}, nil
}

// AISummary is the short narrative summary payload.
type AISummary struct {
	CompanyName string      `json:"company_name"`
	Narrative   string      `json:"summary"`
	KeyMetrics  KeyAccounts `json:"key_metrics"`
}

func (s *Service) AISummary(ctx context.Context, p Params) (*AISummary, error) {
	p = s.normalize(p)

	corp, f, err := s.lookupAndFetch(ctx, p)
	if err != nil {
		return nil, err
	}

	cm := classify.Classify(f)
	text := s.composer.Summary(ctx, corp.CorpName, p.Year, cm)

	return &AISummary{
		CompanyName: corp.CorpName,
		Narrative:   text,
		KeyMetrics:  keyAccounts(cm),
	}, nil
}

// lookupAndFetch resolves the company record and the filing concurrently.
// The corp lookup gates the response (unknown code is a 404 for callers),
// the filing fetch dominates latency.
func (s *Service) lookupAndFetch(ctx context.Context, p Params) (*model.Corporation, *model.Filing, error) {
	var (
		corp *model.Corporation
		f    *model.Filing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		corp, err = s.corps.GetByCorpCode(gctx, p.CorpCode)
		return err
	})
	g.Go(func() error {
		var err error
		f, err = s.dart.FetchFiling(gctx, p.CorpCode, p.Year, p.Report)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return corp, f, nil
}

// summaryInfo drops the receipt number from the echoed metadata; only the
// raw endpoint exposes it.
func summaryInfo(f *model.Filing) model.FilingInfo {
	info := f.Info
	info.ReceiptNo = ""
	return info
}
