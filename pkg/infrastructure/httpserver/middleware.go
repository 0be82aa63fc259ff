package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mateusmacedo/go-ddd-events/pkg/application"
	zapAdapter "github.com/mateusmacedo/go-ddd-events/pkg/infrastructure/zaplogger/adapter"
)

// RequestID gera (ou reaproveita o header X-Request-Id) o identificador da
// requisição e o disponibiliza para o AppLogger.
func RequestID(next http.Handler) http.Handler {
	propagate := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := zapAdapter.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
	return middleware.RequestID(propagate)
}

// RequestLogger registra método, rota, status e duração de cada requisição.
func RequestLogger(logger application.AppLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			application.LogInfo(r.Context(), logger, "request handled", map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			})
		})
	}
}
