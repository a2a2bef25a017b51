package webrtc

import (
	"encoding/json"
	"net/http"

	"github.com/voodo-app/voodo-server/internal/config"
)

// ICEServer describes one STUN or TURN server in the shape RTCPeerConnection
// expects.
type ICEServer struct {
	URLs       []string `json:"urls"`
	Username   string   `json:"username,omitempty"`
	Credential string   `json:"credential,omitempty"`
}

// ICEConfig is the response body of the turnCredentials endpoint.
type ICEConfig struct {
	ICEServers []ICEServer `json:"iceServers"`
}

// Servers assembles the ICE server list from configuration. STUN servers
// are always present; the TURN entry is included only when configured.
func Servers(cfg config.WebRTCConfig) ICEConfig {
	ice := ICEConfig{
		ICEServers: []ICEServer{
			{URLs: cfg.STUNURLs},
		},
	}
	if cfg.TURNURL != "" {
		ice.ICEServers = append(ice.ICEServers, ICEServer{
			URLs:       []string{cfg.TURNURL},
			Username:   cfg.TURNUsername,
			Credential: cfg.TURNCredential,
		})
	}
	return ice
}

// Handler serves the ICE configuration.
func Handler(cfg config.WebRTCConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Servers(cfg))
	}
}
