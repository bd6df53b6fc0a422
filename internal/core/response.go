// srikarboske | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MessageResponse is the error body shape consumed by the dashboards: a
// single human-readable message surfaced inline by forms.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(v)
}

// Envelope is the {ok,data} wrapper the chat and issue feeds respond with.
// Resource CRUD endpoints return the entity JSON directly instead.
type Envelope struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

func OK(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

func OKData(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, Envelope{OK: true, Data: v})
}

func CreatedData(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusCreated, Envelope{OK: true, Data: v})
}

func Created(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusCreated, v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "authentication required"
	}
	WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "insufficient permissions"
	}
	WriteJSON(w, http.StatusForbidden, MessageResponse{Message: message})
}

func NotFound(w http.ResponseWriter, resource string) {
	WriteJSON(w, http.StatusNotFound, MessageResponse{Message: resource + " not found"})
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	WriteJSON(
		w,
		http.StatusInternalServerError,
		MessageResponse{Message: "internal server error"},
	)
}

// JSONError renders an AppError with its own status, and anything else as a
// 500 without leaking internals.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		WriteJSON(w, appErr.Status, MessageResponse{Message: appErr.Message})
		return
	}

	InternalServerError(w, err)
}

// FormatValidationError turns the first validator failure into a message the
// client can show next to the offending field.
func FormatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request"
	}

	fe := validationErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gte", "gt":
		return fe.Field() + " must not be negative"
	default:
		return fe.Field() + " is invalid"
	}
}
