package handlers

import (
	"context"
	"errors"
	"net/http"

	"dogweb/internal/domain"
	"dogweb/internal/infrastructure/logger"
)

type EntryService interface {
	GetName(ctx context.Context) (string, error)
}

type EntryHandler struct {
	service EntryService
	logger  logger.Logger
}

func NewEntryHandler(service EntryService, logger logger.Logger) *EntryHandler {
	return &EntryHandler{
		service: service,
		logger:  logger,
	}
}

// GET /
func (h *EntryHandler) GetName(w http.ResponseWriter, r *http.Request) {
	name, err := h.service.GetName(r.Context())
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			respondError(w, statusFromCode(appErr.Code), appErr)
			return
		}
		h.logger.Error("Internal error looking up entry", "error", err)
		respondError(w, http.StatusInternalServerError, domain.NewAppError(domain.ErrCodeInternal, "internal server error"))
		return
	}

	respondText(w, http.StatusOK, name)
}

func statusFromCode(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
