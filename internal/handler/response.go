package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"gameborrow/internal/models"
)

// Response is the envelope of every API result.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// WriteResponse writes the envelope with a matching HTTP status. 204 responses carry no body.
func WriteResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// WriteError maps err onto the envelope. Errors outside the domain taxonomy become 500.
func WriteError(w http.ResponseWriter, err error) {
	status, message, data := describeError(err)
	WriteResponse(w, status, message, data)
}

func describeError(err error) (int, string, any) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity, "Invalid input", fieldErrorsFrom(validationErrs)
	}

	var fieldErrs models.FieldErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusUnprocessableEntity, "Invalid input", []models.FieldError(fieldErrs)
	}

	switch {
	case errors.Is(err, models.ErrTokenExpired):
		return http.StatusPaymentRequired, "Token has expired.", nil
	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrUnauthenticated),
		errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error(), nil
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrNoChange),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrEmailNotVerified),
		errors.Is(err, models.ErrTokenNotYetExpired):
		return http.StatusUnprocessableEntity, err.Error(), nil
	case errors.Is(err, models.ErrNotFound):
		return http.StatusBadRequest, err.Error(), nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}

// StatusOf reports the HTTP status WriteError would use for err.
func StatusOf(err error) int {
	status, _, _ := describeError(err)
	return status
}
