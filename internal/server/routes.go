package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voodo-app/voodo-server/internal/config"
	"github.com/voodo-app/voodo-server/internal/hangouts"
	"github.com/voodo-app/voodo-server/internal/match"
	"github.com/voodo-app/voodo-server/internal/webrtc"
	"github.com/voodo-app/voodo-server/internal/ws"
)

// Deps are the collaborators the HTTP layer wires together.
type Deps struct {
	Config  *config.Config
	Service *match.Service

	// DB is nil when no database is configured; the hangouts API then
	// responds 503 while the relay keeps working.
	DB     *pgxpool.Pool
	Logger *slog.Logger
}

// NewMux builds the full route table: websocket endpoint, hangouts API,
// webrtc config, stats, health, and metrics.
func NewMux(d Deps) *http.ServeMux {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", ws.ServeWS(d.Service, d.Config.WebSocket, d.Config.Server.AllowedOrigin, logger))

	if d.DB != nil {
		store := hangouts.NewPGStore(d.DB)
		hangouts.NewHandler(store, d.Config.Hangouts.ListLimit, logger).Register(mux)
	} else {
		mux.HandleFunc("/api/hangouts", unavailable)
		mux.HandleFunc("/api/hangouts/", unavailable)
	}

	mux.HandleFunc("GET /api/users/turnCredentials", webrtc.Handler(d.Config.WebRTC))
	mux.HandleFunc("GET /api/users/stats", statsHandler(d.Service))
	mux.HandleFunc("GET /health", healthHandler(d.DB, d.Service))
	mux.Handle(d.Config.Metrics.Path, promhttp.Handler())

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Voodo API is running"))
	})

	return mux
}

func statsHandler(svc *match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{
			"onlineUsers": svc.OnlineCount(),
		})
	}
}

func healthHandler(db *pgxpool.Pool, svc *match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string         `json:"status"`
			Components map[string]any `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]any),
		}

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				health.Status = "unhealthy"
				health.Components["postgres"] = map[string]string{
					"status": "disconnected",
					"error":  err.Error(),
				}
			} else {
				health.Components["postgres"] = "connected"
			}
		} else {
			health.Components["postgres"] = "disabled"
		}

		health.Components["hub"] = map[string]int{
			"online": svc.OnlineCount(),
		}

		status := http.StatusOK
		if health.Status == "unhealthy" {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, health)
	}
}

func unavailable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"message": "Hangouts storage is not configured",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
