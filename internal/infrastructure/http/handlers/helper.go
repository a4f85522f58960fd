package handlers

import (
	"encoding/json"
	"net/http"

	"dogweb/internal/domain"
)

func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func respondText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(body))
}

func respondError(w http.ResponseWriter, statusCode int, err *domain.AppError) {
	respondJSON(w, statusCode, domain.NewErrorResponse(err))
}
