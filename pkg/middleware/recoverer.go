package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/navikt/dbinfo-backend/pkg/errs"
	"github.com/rs/zerolog"
)

// Recoverer turns a panic in a handler into a logged 500 with the same JSON
// body as any other internal error.
func Recoverer(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}

				// Let the server abort the response
				if rvr == http.ErrAbortHandler { //nolint: errorlint,goerr113
					panic(rvr)
				}

				log := logger
				if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
					log = *l
				}

				log.Error().
					Str("panic", fmt.Sprintf("%v", rvr)).
					Str("method", r.Method).
					Str("url", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")

				errs.WriteErrorResponse(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
