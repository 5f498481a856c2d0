package http

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// ViewsHandler serves the computed views with RFC 7807 errors
type ViewsHandler struct {
	service      ViewsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewViewsHandler creates a new views handler
func NewViewsHandler(service ViewsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ViewsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = apierrors.NewErrorHandler(logger, false)
	}
	return &ViewsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "views_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the view routes
func (h *ViewsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListViews)
	r.Route("/{view}", func(r chi.Router) {
		r.Use(h.ViewCtx)
		r.Get("/", h.GetView)
	})

	return r
}

// GeoRoutes returns the boundary document routes
func (h *ViewsHandler) GeoRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/departments", h.GetBoundaries)
	return r
}

// ViewCtx rejects unknown view names before the handler runs
func (h *ViewsHandler) ViewCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view := chi.URLParam(r, "view")
		if !slices.Contains(domain.ViewNames(), view) {
			h.errorHandler.HandleError(w, r, apierrors.ViewNotFoundError(view))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListViews handles GET /api/views
func (h *ViewsHandler) ListViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListViews(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   views,
		"count":  len(views),
	})
}

// GetView handles GET /api/views/{view}
func (h *ViewsHandler) GetView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "view")

	h.logger.DebugContext(r.Context(), "fetching view",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("view", name),
	)

	table, err := h.service.GetView(r.Context(), name)
	if err != nil {
		if apierrors.IsType(err, apierrors.ErrTypeNotFound) {
			h.errorHandler.HandleError(w, r, apierrors.ViewNotFoundError(name))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   table,
	})
}

// GetBoundaries handles GET /api/geo/departments
func (h *ViewsHandler) GetBoundaries(w http.ResponseWriter, r *http.Request) {
	raw, err := h.service.Boundaries(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write boundaries",
			slog.String("error", err.Error()))
	}
}
