// Package opendart calls the OpenDART corporate disclosure API and
// normalizes its transport and application errors into typed results.
package opendart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/sells-group/dart-analysis/internal/model"
)

const (
	defaultBaseURL = "https://opendart.fss.or.kr/api"
	defaultTimeout = 30 * time.Second
)

// Client fetches statutory financial filings from the DART API.
type Client interface {
	// FetchFiling retrieves the key-account filing (fnlttSinglAcnt),
	// which carries both individual and consolidated line items.
	FetchFiling(ctx context.Context, corpCode, year string, report model.ReportCode) (*model.Filing, error)

	// FetchFilingAll retrieves the complete statement set
	// (fnlttSinglAcntAll) for one consolidation variant, including
	// cash-flow and comprehensive-income items.
	FetchFilingAll(ctx context.Context, corpCode, year string, report model.ReportCode, fsDiv model.Consolidation) (*model.Filing, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) { c.baseURL = u }
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) { c.http = hc }
}

// WithLimiter sets a client-side rate limiter. The upstream enforces a
// request quota (status 020); pacing calls avoids tripping it.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *httpClient) { c.limiter = l }
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a DART API client. Single attempt per call, 30-second
// timeout; retries are the caller's problem.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// apiItem is one raw line item as returned by the DART API.
type apiItem struct {
	ReceiptNo     string `json:"rcept_no"`
	FiscalYear    string `json:"bsns_year"`
	StockCode     string `json:"stock_code"`
	ReportCode    string `json:"reprt_code"`
	FsDiv         string `json:"fs_div"`
	SjDiv         string `json:"sj_div"`
	AccountName   string `json:"account_nm"`
	CurrentAmount string `json:"thstrm_amount"`
	PriorAmount   string `json:"frmtrm_amount"`
}

type apiResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	List    []apiItem `json:"list"`
}

func (c *httpClient) FetchFiling(ctx context.Context, corpCode, year string, report model.ReportCode) (*model.Filing, error) {
	params := url.Values{
		"corp_code":  {corpCode},
		"bsns_year":  {year},
		"reprt_code": {string(report)},
	}
	resp, err := c.call(ctx, "fnlttSinglAcnt.json", params)
	if err != nil {
		return nil, err
	}
	return buildFiling(corpCode, resp, ""), nil
}

func (c *httpClient) FetchFilingAll(ctx context.Context, corpCode, year string, report model.ReportCode, fsDiv model.Consolidation) (*model.Filing, error) {
	params := url.Values{
		"corp_code":  {corpCode},
		"bsns_year":  {year},
		"reprt_code": {string(report)},
		"fs_div":     {string(fsDiv)},
	}
	resp, err := c.call(ctx, "fnlttSinglAcntAll.json", params)
	if err != nil {
		return nil, err
	}
	// The complete-statement endpoint does not echo fs_div per item;
	// every item belongs to the requested variant.
	return buildFiling(corpCode, resp, fsDiv), nil
}

func (c *httpClient) call(ctx context.Context, endpoint string, params url.Values) (*apiResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Err: err}
		}
	}

	params.Set("crtfc_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &TransportError{Err: errHTTPStatus(httpResp.StatusCode)}
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if resp.Status != "000" {
		return nil, domainError(resp.Status, resp.Message)
	}
	return &resp, nil
}

type errHTTPStatus int

func (e errHTTPStatus) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", int(e))
}

// buildFiling converts a decoded response into a model.Filing, preserving
// line-item order. forcedFs, when non-empty, overrides the per-item
// consolidation marker.
func buildFiling(corpCode string, resp *apiResponse, forcedFs model.Consolidation) *model.Filing {
	f := &model.Filing{CorpCode: corpCode}

	for i, it := range resp.List {
		if i == 0 {
			f.Info = model.FilingInfo{
				FiscalYear: it.FiscalYear,
				StockCode:  it.StockCode,
				ReportCode: model.ReportCode(it.ReportCode),
				ReceiptNo:  it.ReceiptNo,
			}
		}
		fs := model.Consolidation(it.FsDiv)
		if forcedFs != "" {
			fs = forcedFs
		}
		f.Items = append(f.Items, model.LineItem{
			AccountName:   it.AccountName,
			Statement:     model.StatementType(it.SjDiv),
			Consolidation: fs,
			CurrentAmount: it.CurrentAmount,
			PriorAmount:   it.PriorAmount,
		})
	}
	return f
}
