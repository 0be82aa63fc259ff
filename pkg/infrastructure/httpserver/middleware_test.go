package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/httpserver"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

func TestMiddlewares_PropagateRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zapAdapter.NewZapAppLoggerFrom(zap.New(core))

	router := chi.NewRouter()
	router.Use(httpserver.RequestID)
	router.Use(httpserver.RequestLogger(logger))
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)

	entries := logs.FilterMessage("request handled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["requestID"])
	assert.Equal(t, "/ping", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
}
