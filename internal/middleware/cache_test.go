package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	var calls int
	handler := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"n":1}`)) // nolint:errcheck
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"n":1}`, w.Body.String())
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	}

	// only the first request reached the handler
	assert.Equal(t, 1, calls)

	// a different uri is a different cache entry
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/v1/stats?x=1", nil))
	assert.Equal(t, 2, calls)
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	var calls int
	handler := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal error"}`)) // nolint:errcheck
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
	}

	assert.Equal(t, 2, calls)
}

func TestCached_Expiry(t *testing.T) {
	var calls int
	handler := Cached(10*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`)) // nolint:errcheck
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	time.Sleep(20 * time.Millisecond)
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/stats", nil))

	assert.Equal(t, 2, calls)
}
