package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/mcoot/cardbank/internal/testutil"
)

func TestLoggingCapturesStatusAndSize(t *testing.T) {
	logger, logs := testutil.BufferLogger()
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/latest", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, logs.String(), `"status":418`)
	assert.Contains(t, logs.String(), `"size":5`)
	assert.Contains(t, logs.String(), `"level":"INFO"`)
}

func TestLoggingHealthAtDebug(t *testing.T) {
	logger, logs := testutil.BufferLogger()
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, HealthPath, nil))

	assert.Contains(t, logs.String(), `"level":"DEBUG"`)
}

func TestRecoveryUsesDefaultHandler(t *testing.T) {
	logger, logs := testutil.BufferLogger()
	h := Recovery(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, logs.String(), "panic recovered")
	assert.Contains(t, logs.String(), "boom")
}

func TestRecoveryLogsSessionID(t *testing.T) {
	logger, logs := testutil.BufferLogger()
	r := mux.NewRouter()
	r.Use(Recovery(logger, nil))
	r.HandleFunc("/api/v1/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		panic("corrupt snapshot")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/K7QM2XHA9PZT", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, logs.String(), `"session_id":"K7QM2XHA9PZT"`)
	assert.Contains(t, logs.String(), `"response_started":false`)
}

func TestRecoveryLeavesStartedResponse(t *testing.T) {
	logger, logs := testutil.BufferLogger()
	called := false
	h := Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		called = true
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":`))
		panic("encoder failed")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/latest", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"id":`, rr.Body.String())
	assert.Contains(t, logs.String(), `"response_started":true`)
	assert.NotContains(t, logs.String(), "session_id")
}
