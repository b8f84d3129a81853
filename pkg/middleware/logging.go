package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/yossefJiy/agency-ops-api/pkg/log"
)

// slowRequestThreshold marca requisições que merecem um aviso de lentidão
const slowRequestThreshold = 500 * time.Millisecond

// statusRecorder captura o status code escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware registra início e fim de cada requisição HTTP com um
// ID de correlação propagado pelo contexto
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			started := time.Now()

			if log.IsDevelopment() {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(recorder, r)

			elapsed := time.Since(started)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    recorder.status,
				"duration_ms":    elapsed.Milliseconds(),
			})

			message := fmt.Sprintf("Requisição finalizada em %s", formatElapsed(elapsed))
			switch {
			case recorder.status >= 500:
				logger.Error(message)
			case recorder.status >= 400:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if elapsed > slowRequestThreshold {
				log.L.Warnf("Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, elapsed.Milliseconds())
			}
		})
	}
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// LogPanicMiddleware converte panics em 500 e registra o stack trace
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				stack := make([]byte, 4096)
				stackSize := runtime.Stack(stack, false)
				stackTrace := string(stack[:stackSize])

				logger := log.L.WithFields(log.Fields{
					"correlation_id": log.GetCorrelationID(r.Context()),
					"error":          fmt.Sprint(rec),
					"method":         r.Method,
					"path":           r.URL.Path,
				})
				logger.Error("Erro não tratado na aplicação")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n===================\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Stack trace do panic")
				}

				http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
