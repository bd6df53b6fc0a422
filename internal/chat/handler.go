// srikarboske | 2026
// handler.go

package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the chat endpoints. The channel is open; an attached
// identity only influences the recorded sender role.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/chat/{propertyId}", func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/", h.List)
		r.Post("/", h.Post)
	})
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyId")

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	callerRole := middleware.GetUserRole(r.Context())

	m, err := h.service.Post(r.Context(), propertyID, req.Text, callerRole)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.CreatedData(w, ToMessageResponse(m))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyId")

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			core.BadRequest(w, "since must be an RFC 3339 timestamp")
			return
		}
		since = &t
	}

	messages, err := h.service.List(r.Context(), propertyID, since)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OKData(w, ToMessageResponseList(messages))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		core.JSONError(w, appErr)
		return
	}
	core.InternalServerError(w, err)
}
