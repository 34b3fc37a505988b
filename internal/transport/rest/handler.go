// Package rest provides HTTP handlers for store-related operations.
package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	storeerrors "github.com/abgdnv/storehub/internal/errors"
	"github.com/abgdnv/storehub/internal/service"
	"github.com/abgdnv/storehub/internal/store"
	"github.com/abgdnv/storehub/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	service  service.StoreService
	apiToken string
	logger   *slog.Logger
}

// NewHandler creates a new instance of the store API with the provided service.
func NewHandler(service service.StoreService, apiToken string, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		apiToken: apiToken,
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the store service. Reads are
// open; mutating verbs sit behind the bearer token gate. The id segment only
// accepts decimal digits, so anything else falls through to the router's 404.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/stores", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id:[0-9]+}", h.Show)

		r.Group(func(r chi.Router) {
			r.Use(web.BearerAuth(h.apiToken, h.logger))
			r.Post("/", h.Create)
			r.Put("/{id:[0-9]+}", h.Update)
			r.Patch("/{id:[0-9]+}", h.Patch)
			r.Delete("/{id:[0-9]+}", h.Delete)
		})
	})
	r.Get("/healthz", h.HealthCheck)
}

// storeListDto is the list payload: a full-result snapshot with a pagination
// block whose total and per_page both equal the result count.
type storeListDto struct {
	Items      []service.StoreDto `json:"items"`
	Pagination paginationDto      `json:"pagination"`
}

type paginationDto struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// List retrieves all stores matching the query-string filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query()

	filters := make(map[string]any)
	if city := query.Get("city"); city != "" {
		filters["city"] = city
	}
	if country := query.Get("country"); country != "" {
		filters["country"] = country
	}
	if isActive := query.Get("is_active"); isActive != "" {
		value, err := strconv.ParseBool(isActive)
		if err != nil {
			web.RespondError(w, mLogger, http.StatusBadRequest, web.CodeValidationError, fmt.Sprintf("Invalid is_active value: %s", isActive))
			return
		}
		filters["is_active"] = value
	}

	var sort []store.SortKey
	if field := query.Get("sort"); field != "" {
		sort = append(sort, store.SortKey{Field: field, Direction: query.Get("direction")})
	}

	mLogger.DebugContext(r.Context(), "Received request to list stores", "filters", filters, "sort", sort)
	list, err := h.service.ListStores(r.Context(), filters, sort)
	if err != nil {
		if errors.Is(err, storeerrors.ErrInvalidField) {
			mLogger.WarnContext(r.Context(), "Rejected filter or sort field", "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, web.CodeValidationError, "Invalid filter or sort field")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving store list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, web.CodeInternalError, "Failed to fetch stores")
		return
	}

	mLogger.DebugContext(r.Context(), "Successfully retrieved store list", "count", len(list))
	web.RespondSuccess(w, mLogger, http.StatusOK, storeListDto{
		Items: list,
		Pagination: paginationDto{
			Total:       len(list),
			PerPage:     len(list),
			CurrentPage: 1,
			LastPage:    1,
		},
	})
}

// Show retrieves a store by its ID.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find store by ID", "ID", id)
	found, err := h.service.GetStore(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved store", slog.Int64("ID", found.ID))
	web.RespondSuccess(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new store.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.StoreCreateDto
	if !web.DecodeBody(w, r, mLogger, &dto) {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to create store", "email", dto.Email)
	created, err := h.service.CreateStore(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, 0)
		return
	}
	mLogger.InfoContext(r.Context(), "Store created successfully", slog.Int64("ID", created.ID))
	web.RespondSuccess(w, mLogger, http.StatusCreated, created)
}

// Update replaces every field of an existing store.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto service.StoreUpdateDto
	if !web.DecodeBody(w, r, mLogger, &dto) {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to update store", "ID", id)
	updated, err := h.service.UpdateStore(r.Context(), id, dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id)
		return
	}
	mLogger.InfoContext(r.Context(), "Store updated successfully", slog.Int64("ID", updated.ID))
	web.RespondSuccess(w, mLogger, http.StatusOK, updated)
}

// Patch applies only the fields present in the request body.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var patch service.StorePatchDto
	if !web.DecodeBody(w, r, mLogger, &patch) {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to patch store", "ID", id)
	patched, err := h.service.PatchStore(r.Context(), id, patch)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id)
		return
	}
	mLogger.InfoContext(r.Context(), "Store patched successfully", slog.Int64("ID", patched.ID))
	web.RespondSuccess(w, mLogger, http.StatusOK, patched)
}

// Delete removes a store by its ID. Success carries no body.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to delete store", "ID", id)
	if err := h.service.DeleteStore(r.Context(), id); err != nil {
		h.respondServiceError(w, r, mLogger, err, id)
		return
	}
	mLogger.InfoContext(r.Context(), "Store deleted successfully", slog.Int64("ID", id))
	web.RespondSuccess(w, mLogger, http.StatusNoContent, nil)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondServiceError maps service failures onto the envelope. Validation and
// not-found errors are expected and translated 1:1; everything else is logged
// with full context and returned as a generic internal error, never leaking
// storage error text.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error, id int64) {
	var validationErr *storeerrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		mLogger.WarnContext(r.Context(), "Validation error", "error", validationErr.Message)
		var details any
		if validationErr.Technical != "" {
			details = map[string]string{"technical": validationErr.Technical}
		}
		web.RespondErrorDetails(w, mLogger, http.StatusBadRequest, web.CodeValidationError, validationErr.Message, details)
	case errors.Is(err, storeerrors.ErrStoreNotFound):
		mLogger.WarnContext(r.Context(), "Store not found", "ID", id)
		web.RespondError(w, mLogger, http.StatusBadRequest, web.CodeValidationError, fmt.Sprintf("Store with ID %d not found", id))
	default:
		mLogger.ErrorContext(r.Context(), "Unexpected error", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, web.CodeInternalError, "Internal server error")
	}
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
