package service

import (
	"time"

	"github.com/navikt/dbinfo-backend/pkg/errs"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision
const TimestampLayout = errs.TimestampLayout

const UnknownError = "Unknown error"

// Envelope is the outcome of a single service operation
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func Succeeded[T any](data T, now time.Time) *Envelope[T] {
	return &Envelope[T]{
		Success:   true,
		Data:      data,
		Timestamp: Timestamp(now),
	}
}

// Failed returns an envelope carrying the error message, or UnknownError if
// the error has no message.
func Failed[T any](err error, now time.Time) *Envelope[T] {
	msg := UnknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	return &Envelope[T]{
		Success:   false,
		Error:     msg,
		Timestamp: Timestamp(now),
	}
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
