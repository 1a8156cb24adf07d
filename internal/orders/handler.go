package orders

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pedidos-fdv/pedidos-fdv/internal/platform/httpx"
	"github.com/pedidos-fdv/pedidos-fdv/internal/shared"
)

// Header names for the offline-sync machine channel.
const (
	headerSyncKey   = "X-Sync-Key"
	headerCompanyID = "X-Company-Id"
	headerUserID    = "X-User-Id"
	headerUserName  = "X-User-Name"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
	syncKey *shared.SyncKeyVerifier
}

func NewHandler(logger *slog.Logger, service *Service, syncKey *shared.SyncKeyVerifier) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		syncKey: syncKey,
	}
}

// MountRoutes attaches the order-attempt endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
}

// List serves GET /orders?origin=&status=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ident, err := h.resolveIdentity(r)
	if err != nil {
		h.fail(w, "failed to resolve caller", err)
		return
	}

	req := ListOrdersRequest{CompanyID: ident.CompanyID}

	if v := r.URL.Query().Get("origin"); v != "" {
		origin := Origin(v)
		if !origin.Valid() {
			httpx.Fail(w, http.StatusBadRequest, "invalid origin filter", v)
			return
		}
		req.Origin = &origin
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := Status(v)
		if !status.Valid() {
			httpx.Fail(w, http.StatusBadRequest, "invalid status filter", v)
			return
		}
		req.Status = &status
	}

	records, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list order attempts failed", slog.Any("error", err))
		h.fail(w, "failed to load orders", err)
		return
	}

	httpx.JSON(w, http.StatusOK, records)
}

// Show serves GET /orders/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ident, err := h.resolveIdentity(r)
	if err != nil {
		h.fail(w, "failed to resolve caller", err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid order id", chi.URLParam(r, "id"))
		return
	}

	rec, err := h.service.Get(r.Context(), ident.CompanyID, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Error("get order attempt failed", slog.Any("error", err), slog.Int64("id", id))
		}
		h.fail(w, "failed to load order", err)
		return
	}

	httpx.JSON(w, http.StatusOK, rec)
}

// Create serves POST /orders. It records the outcome of a submission
// attempt performed elsewhere; it never calls the ERP.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := h.resolveIdentity(r)
	if err != nil {
		h.fail(w, "failed to resolve caller", err)
		return
	}

	var input RegisterOrderInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.service.Register(r.Context(), RegisterOrderRequest{
		RegisterOrderInput: input,
		CompanyID:          ident.CompanyID,
		UserID:             ident.UserID,
		UserName:           ident.UserName,
	})
	if err != nil {
		if !errors.Is(err, ErrValidation) {
			h.logger.Error("register order attempt failed", slog.Any("error", err))
		}
		h.fail(w, "failed to record order", err)
		return
	}

	httpx.JSON(w, http.StatusOK, RegisterOrderResponse{Success: true, ID: id})
}

// resolveIdentity prefers the session; the offline-sync agent authenticates
// with a static key and carries its identity in headers.
func (h *Handler) resolveIdentity(r *http.Request) (shared.Identity, error) {
	if key := r.Header.Get(headerSyncKey); key != "" {
		if !h.syncKey.Verify(key) {
			return shared.Identity{}, shared.ErrUnauthenticated
		}
		return identityFromHeaders(r)
	}
	return shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
}

func identityFromHeaders(r *http.Request) (shared.Identity, error) {
	userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
	if err != nil || userID <= 0 {
		return shared.Identity{}, shared.ErrUnauthenticated
	}
	companyID, err := strconv.ParseInt(r.Header.Get(headerCompanyID), 10, 64)
	if err != nil || companyID <= 0 {
		return shared.Identity{}, shared.ErrCompanyUnresolved
	}
	return shared.Identity{
		UserID:    userID,
		UserName:  r.Header.Get(headerUserName),
		CompanyID: companyID,
	}, nil
}

func (h *Handler) fail(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, shared.ErrUnauthenticated):
		httpx.Fail(w, http.StatusUnauthorized, "not authenticated", "")
	case errors.Is(err, shared.ErrCompanyUnresolved):
		httpx.Fail(w, http.StatusBadRequest, "company not resolved", "")
	case errors.Is(err, ErrCompanyRequired), errors.Is(err, ErrValidation):
		httpx.Fail(w, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, message, "")
	default:
		httpx.Fail(w, http.StatusInternalServerError, message, err.Error())
	}
}
