package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/voodo-app/voodo-server/internal/config"
	"github.com/voodo-app/voodo-server/internal/match"
)

func testMux(t *testing.T) (*http.ServeMux, *match.Service) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Addr = ":0"
	cfg.WebSocket.SendBuffer = 16
	cfg.WebSocket.MaxMessageSize = 1024
	cfg.WebSocket.PongWait = 60 * time.Second
	cfg.WebSocket.PingInterval = 54 * time.Second
	cfg.WebSocket.WriteWait = 10 * time.Second
	cfg.WebRTC.STUNURLs = []string{"stun:stun.l.google.com:19302"}
	cfg.Hangouts.ListLimit = 20
	cfg.Metrics.Path = "/metrics"

	svc := match.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewMux(Deps{Config: cfg, Service: svc}), svc
}

func TestStatsEndpoint(t *testing.T) {
	mux, svc := testMux(t)

	svc.Connect("A", nopConn{})
	svc.Connect("B", nopConn{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/users/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var stats map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats["onlineUsers"] != 2 {
		t.Errorf("onlineUsers = %d, want 2", stats["onlineUsers"])
	}
}

func TestHealthWithoutDatabase(t *testing.T) {
	mux, _ := testMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var health struct {
		Status     string         `json:"status"`
		Components map[string]any `json:"components"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q, want healthy", health.Status)
	}
	if health.Components["postgres"] != "disabled" {
		t.Errorf("postgres = %v, want disabled", health.Components["postgres"])
	}
}

func TestHangoutsUnavailableWithoutDatabase(t *testing.T) {
	mux, _ := testMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/hangouts", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestTurnCredentialsEndpoint(t *testing.T) {
	mux, _ := testMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/users/turnCredentials", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var ice struct {
		ICEServers []any `json:"iceServers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &ice); err != nil {
		t.Fatalf("decode ice config: %v", err)
	}
	if len(ice.ICEServers) == 0 {
		t.Error("iceServers is empty")
	}
}

type nopConn struct{}

func (nopConn) Send(event string, payload any) bool { return true }
