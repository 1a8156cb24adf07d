package summary

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pedidos-fdv/pedidos-fdv/internal/platform/httpx"
	"github.com/pedidos-fdv/pedidos-fdv/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// Get serves GET /orders/summary for the caller's company.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ident, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, shared.ErrCompanyUnresolved) {
			httpx.Fail(w, http.StatusBadRequest, "company not resolved", "")
			return
		}
		httpx.Fail(w, http.StatusUnauthorized, "not authenticated", "")
		return
	}

	counts, err := h.service.Cached(r.Context(), ident.CompanyID)
	if err != nil {
		h.logger.Error("load order summary failed", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "failed to load summary", err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, counts)
}
