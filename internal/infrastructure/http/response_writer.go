package http

import (
	"encoding/json"
	"net/http"

	"dogweb/internal/domain"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func respondInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	errResp := domain.NewErrorResponse(domain.NewAppError(domain.ErrCodeInternal, "internal server error"))
	json.NewEncoder(w).Encode(errResp)
}
