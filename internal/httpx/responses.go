package httpx

import (
	"encoding/json"
	"net/http"

	"paperapi/internal/paper"

	"github.com/rs/zerolog"
)

const (
	CodeBadRequest  = "BAD_REQUEST"
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeInternal    = "INTERNAL_ERROR"
	CodeRateLimited = "RATE_LIMIT_EXCEEDED"
	CodeTooLarge    = "REQUEST_TOO_LARGE"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
)

// ErrorResponse is the body of every non-2xx JSON response. Message keeps the
// wording clients already display to users.
type ErrorResponse struct {
	Message   string             `json:"message"`
	Code      string             `json:"code"`
	Details   []paper.FieldError `json:"details,omitempty"`
	RequestID string             `json:"request_id,omitempty"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("encode response")
	}
}

func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string, details []paper.FieldError) {
	JSON(w, r, statusCode, ErrorResponse{
		Message:   message,
		Code:      code,
		Details:   details,
		RequestID: RequestIDFrom(r),
	})
}
