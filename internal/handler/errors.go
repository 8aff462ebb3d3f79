package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// ErrorResponse is the JSON error envelope every non-2xx response carries.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is a machine-readable code plus a human-readable message.
// Redirect, when set, points the client at the page that resolves the
// failure (e.g. /profile for a missing payment method).
type ErrorDetail struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error envelope with the given status and code.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// serviceError maps a service-layer error onto the HTTP response. Sentinel
// errors map to stable codes; anything unrecognized is a 500 and gets logged,
// because unknown errors are bugs, not client mistakes.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "you do not own this resource")
	case errors.Is(err, domain.ErrNoPaymentMethod):
		writeJSON(w, http.StatusPaymentRequired, ErrorResponse{Error: ErrorDetail{
			Code:     "no_payment_method",
			Message:  "no saved payment method; add one before checking out",
			Redirect: "/profile",
		}})
	case errors.Is(err, domain.ErrDuplicateOperation):
		writeError(w, http.StatusConflict, "duplicate_operation", "this operation was already submitted")
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, "invalid_state", unwrapMessage(err))
	case errors.Is(err, domain.ErrCheckoutFailed):
		writeError(w, http.StatusBadGateway, "checkout_failed", "checkout could not be committed; it is safe to retry")
	default:
		s.log.ErrorContext(r.Context(), "unhandled service error", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// requestError writes a 422 for a request rejected before reaching the
// service layer (missing body, malformed JSON, bad path parameter).
func requestError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// unwrapMessage strips the call-site prefixes from a wrapped sentinel error,
// leaving the human-readable tail.
// e.g. "service.TripService.Update: trip is CONFIRMED: invalid state" keeps
// "trip is CONFIRMED: invalid state".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{"service.", "repo."} {
		if strings.HasPrefix(msg, prefix) {
			if _, rest, found := strings.Cut(msg, ": "); found {
				msg = rest
			}
		}
	}
	msg = strings.TrimPrefix(msg, domain.ErrValidation.Error()+": ")
	return msg
}
