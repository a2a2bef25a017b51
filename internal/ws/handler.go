package ws

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/voodo-app/voodo-server/internal/config"
	"github.com/voodo-app/voodo-server/internal/match"
)

// ServeWS returns the handler that upgrades HTTP requests to websocket
// sessions and attaches them to the matchmaking service.
func ServeWS(svc *match.Service, cfg config.WebSocketConfig, allowedOrigin string, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" || allowedOrigin == "*" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}

		id := match.ClientID(uuid.NewString())
		client := newClient(id, svc, conn, cfg, logger)

		svc.Connect(id, client)

		go client.writePump()
		go client.readPump()
	}
}
