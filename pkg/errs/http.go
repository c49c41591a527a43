package errs

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func NewErrorResponse(msg string, now time.Time) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     msg,
		Timestamp: now.UTC().Format(TimestampLayout),
	}
}

// HTTPErrorResponse logs err and writes the fixed 500 body. Neither the
// message nor the kind of err is sent to the client.
func HTTPErrorResponse(w http.ResponseWriter, logger zerolog.Logger, err error) {
	code := http.StatusInternalServerError

	var kind Kind
	var e *Error
	if errors.As(err, &e) {
		kind = e.Kind
	}

	logger.Error().
		Err(err).
		Int("status", code).
		Str("kind", kind.String()).
		Strs("ops", OpStack(err)).
		Msg("request failed")

	WriteErrorResponse(w, code, http.StatusText(code))
}

// WriteErrorResponse writes {success:false, error, timestamp} with the
// given status code.
func WriteErrorResponse(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(NewErrorResponse(msg, time.Now()))
}
