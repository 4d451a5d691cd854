package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/monitor"
)

// SnapshotSource is the live telemetry pushed to dashboards
type SnapshotSource interface {
	Snapshot() monitor.Snapshot
	Subscribe(buffer int) (<-chan monitor.Snapshot, func())
}

// NewRouter builds the dashboard HTTP surface: a health probe and the
// snapshot WebSocket, wrapped with access logging and panic recovery
func NewRouter(source SnapshotSource, authn auth.Authenticator) http.Handler {
	ws := NewSnapshotServer(source, authn)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", healthHandler(source)).Methods(http.MethodGet)
	router.HandleFunc("/ws", ws.HandleWS).Methods(http.MethodGet)

	access := log.Logger.Level(zerolog.InfoLevel).With().Str("component", "http").Logger()
	logged := handlers.CombinedLoggingHandler(access, router)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(logged)
}

func healthHandler(source SnapshotSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := source.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "ok",
			"sequence": snap.Sequence,
			"online":   snap.Status.IsOnline,
		})
	}
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...any) {
	log.Error().Interface("panic", v).Msg("recovered from panic in HTTP handler")
}
