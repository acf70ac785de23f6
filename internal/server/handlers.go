package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/dart-analysis/internal/corpstore"
	"github.com/sells-group/dart-analysis/internal/financial"
	"github.com/sells-group/dart-analysis/internal/model"
)

type handler struct {
	corps corpstore.Store
	svc   *financial.Service
	log   *zap.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "API 서버가 정상적으로 동작 중입니다."})
}

func (h *handler) searchCorporations(w http.ResponseWriter, r *http.Request) {
	corps, err := h.corps.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, corps)
}

func (h *handler) countCorporations(w http.ResponseWriter, r *http.Request) {
	n, err := h.corps.Count(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *handler) getByCorpCode(w http.ResponseWriter, r *http.Request) {
	corp, err := h.corps.GetByCorpCode(r.Context(), chi.URLParam(r, "corpCode"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, corp)
}

func (h *handler) getByStockCode(w http.ResponseWriter, r *http.Request) {
	corps, err := h.corps.GetByStockCode(r.Context(), chi.URLParam(r, "stockCode"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, corps)
}

// filingParams reads the corp code path segment and the year/report query
// overrides. Defaults are applied by the service.
func filingParams(r *http.Request) financial.Params {
	return financial.Params{
		CorpCode: chi.URLParam(r, "corpCode"),
		Year:     r.URL.Query().Get("year"),
		Report:   model.ReportCode(r.URL.Query().Get("report")),
	}
}

func (h *handler) rawFinancial(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Raw(r.Context(), filingParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Summary(r.Context(), filingParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) analysis(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Analysis(r.Context(), filingParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) balanceStructure(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.BalanceStructure(r.Context(), filingParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) detailedAnalysis(w http.ResponseWriter, r *http.Request) {
	fsDiv := model.Consolidation(r.URL.Query().Get("fs_div"))
	out, err := h.svc.DetailedAnalysis(r.Context(), filingParams(r), fsDiv)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) aiAnalysis(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.AIAnalysis(r.Context(), filingParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) aiSummary(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.AISummary(r.Context(), filingParams(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
