// srikarboske | 2026
// handler.go

package customer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the customer endpoints. Admin manages records;
// tenants reach only their own row, resolved from the token email.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly, tenantOnly func(http.Handler) http.Handler,
) {
	r.Route("/customers", func(r chi.Router) {
		r.Use(authenticator)

		r.Group(func(r chi.Router) {
			r.Use(tenantOnly)
			r.Get("/me/record", h.GetMyRecord)
			r.Post("/me/mark-paid", h.MarkPaid)
		})

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
			r.Post("/{id}/set-due", h.SetDue)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("Email"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToCustomerResponse(c))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Customer")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCustomerResponse(c))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	includeDeleted := r.URL.Query().Get("includeDeleted") == "true"

	customers, err := h.service.List(r.Context(), includeDeleted)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCustomerResponseList(customers))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpsertCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "Customer")
		case errors.Is(err, core.ErrDuplicateKey):
			core.JSONError(w, core.DuplicateError("Email"))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToCustomerResponse(c))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Customer")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) SetDue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SetDueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.SetDue(r.Context(), id, req.DueAmount)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Customer")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCustomerResponse(c))
}

func (h *Handler) GetMyRecord(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if email == "" {
		core.Unauthorized(w, "")
		return
	}

	c, err := h.service.GetMyRecord(r.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Customer record")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCustomerResponse(c))
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if email == "" {
		core.Unauthorized(w, "")
		return
	}

	c, err := h.service.MarkPaid(r.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Customer record")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCustomerResponse(c))
}
