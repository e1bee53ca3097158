package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/tuanvumaihuynh/inventory-hub/internal/http/apierr"
)

// Recoverer turns a handler panic into a logged error and, when nothing has
// been written yet, a 500 JSON envelope.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	body, err := json.Marshal(apierr.InternalServerErr)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				// aborting the response is the point of ErrAbortHandler
				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}

				log.ErrorContext(r.Context(), "panic in http handler",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("recover", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				// upgraded websocket connections are hijacked and take no response
				if ww.Status() != 0 || r.Header.Get("Upgrade") != "" {
					return
				}
				ww.Header().Set("Content-Type", "application/json")
				ww.WriteHeader(http.StatusInternalServerError)
				//nolint:errcheck
				ww.Write(body)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
