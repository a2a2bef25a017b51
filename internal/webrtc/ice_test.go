package webrtc

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/voodo-app/voodo-server/internal/config"
)

func TestServers_WithTURN(t *testing.T) {
	cfg := config.WebRTCConfig{
		STUNURLs:       []string{"stun:stun.l.google.com:19302", "stun:stun1.l.google.com:19302"},
		TURNURL:        "turn:turn.example.com:3478",
		TURNUsername:   "voodo",
		TURNCredential: "hunter2",
	}

	ice := Servers(cfg)
	if len(ice.ICEServers) != 2 {
		t.Fatalf("len(ICEServers) = %d, want 2", len(ice.ICEServers))
	}
	if len(ice.ICEServers[0].URLs) != 2 {
		t.Errorf("STUN URLs = %v", ice.ICEServers[0].URLs)
	}
	turn := ice.ICEServers[1]
	if turn.URLs[0] != "turn:turn.example.com:3478" || turn.Username != "voodo" || turn.Credential != "hunter2" {
		t.Errorf("TURN entry = %+v", turn)
	}
}

func TestServers_STUNOnly(t *testing.T) {
	cfg := config.WebRTCConfig{STUNURLs: []string{"stun:stun.l.google.com:19302"}}

	ice := Servers(cfg)
	if len(ice.ICEServers) != 1 {
		t.Fatalf("len(ICEServers) = %d, want 1 (no TURN configured)", len(ice.ICEServers))
	}
}

func TestHandler(t *testing.T) {
	cfg := config.WebRTCConfig{
		STUNURLs: []string{"stun:stun.l.google.com:19302"},
		TURNURL:  "turn:turn.example.com:3478",
	}

	rec := httptest.NewRecorder()
	Handler(cfg)(rec, httptest.NewRequest("GET", "/api/users/turnCredentials", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var ice ICEConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &ice); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(ice.ICEServers) != 2 {
		t.Errorf("len(ICEServers) = %d, want 2", len(ice.ICEServers))
	}
	// Credentials omitted when empty, not serialized as empty strings.
	if rec.Body.String() == "" || json.Valid(rec.Body.Bytes()) == false {
		t.Error("invalid JSON body")
	}
}
