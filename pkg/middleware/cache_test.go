package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheControl(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	tests := []struct {
		name   string
		maxAge int
		method string
		want   string
	}{
		{name: "get", maxAge: 60, method: http.MethodGet, want: "public, max-age=60"},
		{name: "head", maxAge: 60, method: http.MethodHead, want: "public, max-age=60"},
		{name: "options untouched", maxAge: 60, method: http.MethodOptions, want: ""},
		{name: "disabled", maxAge: 0, method: http.MethodGet, want: ""},
		{name: "negative disabled", maxAge: -5, method: http.MethodGet, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			CacheControl(tc.maxAge)(ok).ServeHTTP(rec, httptest.NewRequest(tc.method, "/catalog", nil))
			assert.Equal(t, tc.want, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestCacheControl_SkipsErrorResponses(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		h := CacheControl(60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/missing", nil))

		assert.Equal(t, status, rec.Code)
		assert.Empty(t, rec.Header().Get("Cache-Control"), "status %d", status)
	}
}
