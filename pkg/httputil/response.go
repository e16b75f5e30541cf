package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/klueko/sheos/pkg/errors"
	"github.com/klueko/sheos/pkg/logger"
)

// ErrorResponse is the error body shared by every endpoint: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, the error is logged but headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the error body for err. Not-found AppErrors keep their
// message; everything else is wrapped with apperrors.Internal, logged with
// its code and answered with the generic "Internal server error" body. It
// prefers the request-scoped logger from context (set by the RequestLogger
// middleware) over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() && fallback != nil {
		l = fallback
	}

	status := apperrors.HTTPStatus(err)
	if status == http.StatusNotFound {
		message := "Not found"
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
		WriteJSON(w, status, ErrorResponse{Error: message})
		return
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Status < http.StatusInternalServerError {
		appErr = apperrors.Internal(err)
	}

	l.ErrorContext(r.Context(), "internal error",
		slog.String("code", appErr.Code),
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	WriteJSON(w, appErr.Status, ErrorResponse{Error: apperrors.Internal(nil).Message})
}

// WriteInternalError writes the generic 500 body without logging. Used by
// recovery paths that have already logged.
func WriteInternalError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: apperrors.Internal(nil).Message})
}
