package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/dart-analysis/internal/corpstore"
	"github.com/sells-group/dart-analysis/pkg/opendart"
)

// errorBody is the error response shape. Status carries the upstream DART
// status code when the failure came from the disclosure API.
type errorBody struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}

// writeError maps pipeline failures onto HTTP statuses: upstream domain
// statuses and malformed responses are the client's problem (400), an
// unknown corporation is 404, and transport failures or anything
// unclassified is 500.
func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		domainErr    *opendart.DomainError
		decodeErr    *opendart.DecodeError
		transportErr *opendart.TransportError
	)

	switch {
	case errors.As(err, &domainErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: domainErr.Message, Status: domainErr.Code})
	case errors.As(err, &decodeErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: decodeErr.Error()})
	case errors.Is(err, corpstore.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "기업을 찾을 수 없습니다."})
	case errors.As(err, &transportErr):
		h.log.Error("upstream transport failure", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: transportErr.Error()})
	default:
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}
