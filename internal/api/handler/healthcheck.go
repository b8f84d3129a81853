package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var startedAt = time.Now()

// HealthcheckHandler responde o status do processo para probes de liveness
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]any{
			"status":         "ok",
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
			"time":           time.Now().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
