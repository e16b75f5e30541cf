package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/klueko/sheos/pkg/httputil"
)

// Recovery recovers from panics and answers with the generic 500 body instead
// of crashing the server.
func Recovery(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				l.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				httputil.WriteInternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
