package opendart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/sells-group/dart-analysis/internal/model"
)

const sampleFiling = `{
	"status": "000",
	"message": "정상",
	"list": [
		{
			"rcept_no": "20240312000736",
			"bsns_year": "2023",
			"stock_code": "005930",
			"reprt_code": "11011",
			"fs_div": "OFS",
			"sj_div": "BS",
			"account_nm": "자산총계",
			"thstrm_amount": "1,000",
			"frmtrm_amount": "900"
		},
		{
			"rcept_no": "20240312000736",
			"bsns_year": "2023",
			"stock_code": "005930",
			"reprt_code": "11011",
			"fs_div": "CFS",
			"sj_div": "IS",
			"account_nm": "매출액",
			"thstrm_amount": "5,000",
			"frmtrm_amount": "4,500"
		}
	]
}`

func TestFetchFiling_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fnlttSinglAcnt.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("crtfc_key"))
		assert.Equal(t, "00126380", q.Get("corp_code"))
		assert.Equal(t, "2023", q.Get("bsns_year"))
		assert.Equal(t, "11011", q.Get("reprt_code"))
		w.Write([]byte(sampleFiling))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	f, err := c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)
	require.NoError(t, err)

	assert.Equal(t, "00126380", f.CorpCode)
	assert.Equal(t, "2023", f.Info.FiscalYear)
	assert.Equal(t, "005930", f.Info.StockCode)
	assert.Equal(t, "20240312000736", f.Info.ReceiptNo)

	require.Len(t, f.Items, 2)
	assert.Equal(t, "자산총계", f.Items[0].AccountName)
	assert.Equal(t, model.StatementBalanceSheet, f.Items[0].Statement)
	assert.Equal(t, model.ConsolidationIndividual, f.Items[0].Consolidation)
	assert.Equal(t, model.ConsolidationConsolidated, f.Items[1].Consolidation)
}

func TestFetchFilingAll_ForcesConsolidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fnlttSinglAcntAll.json", r.URL.Path)
		assert.Equal(t, "OFS", r.URL.Query().Get("fs_div"))
		w.Write([]byte(sampleFiling))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	f, err := c.FetchFilingAll(context.Background(), "00126380", "2023", model.ReportBusiness, model.ConsolidationIndividual)
	require.NoError(t, err)

	// The per-item fs_div marker is overridden by the requested variant.
	require.Len(t, f.Items, 2)
	assert.Equal(t, model.ConsolidationIndividual, f.Items[0].Consolidation)
	assert.Equal(t, model.ConsolidationIndividual, f.Items[1].Consolidation)
}

func TestFetchFiling_DomainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "013", "message": ""}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)
	require.Error(t, err)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "013", de.Code)
	assert.True(t, de.IsNoData())
	assert.Equal(t, "조회된 데이터가 없습니다.", de.Message)
}

func TestFetchFiling_UnknownStatusKeepsUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "777", "message": "custom"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "777", de.Code)
	assert.Equal(t, "custom", de.Message)
	assert.False(t, de.IsNoData())
}

func TestFetchFiling_HTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Error(), "502")
}

func TestFetchFiling_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestFetchFiling_ConnectionRefused(t *testing.T) {
	c := NewClient("test-key", WithBaseURL("http://127.0.0.1:1"))
	_, err := c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)

	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestFetchFiling_LimiterPacesRequests(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(sampleFiling))
	}))
	defer srv.Close()

	// 1 rps with burst 1: the second call must wait roughly a second.
	c := NewClient("test-key",
		WithBaseURL(srv.URL),
		WithLimiter(rate.NewLimiter(1, 1)),
	)

	start := time.Now()
	_, err := c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)
	require.NoError(t, err)
	_, err = c.FetchFiling(context.Background(), "00126380", "2023", model.ReportBusiness)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
}

func TestFetchFiling_LimiterFailureIsTransport(t *testing.T) {
	c := NewClient("test-key", WithLimiter(rate.NewLimiter(rate.Every(time.Hour), 0)))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchFiling(ctx, "00126380", "2023", model.ReportBusiness)
	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestBuildFiling_EmptyList(t *testing.T) {
	f := buildFiling("00126380", &apiResponse{Status: "000"}, "")
	assert.Equal(t, "00126380", f.CorpCode)
	assert.Empty(t, f.Items)
	assert.Empty(t, f.Info.FiscalYear)
}
