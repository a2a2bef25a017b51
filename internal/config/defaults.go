package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultAddr           = ":5000"
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 10
	DefaultMinConns       = 2
	DefaultSendBuffer     = 256
	DefaultMaxMessageSize = 64 * 1024 // enough for WebRTC SDP payloads
	DefaultPongWait       = 60 * time.Second
	DefaultWriteWait      = 10 * time.Second
	DefaultSTUNURL        = "stun:stun.l.google.com:19302"
	DefaultListLimit      = 20
	DefaultMetricsPath    = "/metrics"
)

func (c *Config) applyDefaults() {
	// Server defaults
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}

	// Database defaults
	applyDBDefaults(&c.Database.Postgres)

	// WebSocket defaults
	if c.WebSocket.SendBuffer == 0 {
		c.WebSocket.SendBuffer = DefaultSendBuffer
	}
	if c.WebSocket.MaxMessageSize == 0 {
		c.WebSocket.MaxMessageSize = DefaultMaxMessageSize
	}
	if c.WebSocket.PongWait == 0 {
		c.WebSocket.PongWait = DefaultPongWait
	}
	if c.WebSocket.PingInterval == 0 {
		// Pings must arrive before the peer's pong deadline expires.
		c.WebSocket.PingInterval = c.WebSocket.PongWait * 9 / 10
	}
	if c.WebSocket.WriteWait == 0 {
		c.WebSocket.WriteWait = DefaultWriteWait
	}

	// WebRTC defaults
	if len(c.WebRTC.STUNURLs) == 0 {
		c.WebRTC.STUNURLs = []string{DefaultSTUNURL}
	}

	// Hangouts defaults
	if c.Hangouts.ListLimit == 0 {
		c.Hangouts.ListLimit = DefaultListLimit
	}

	// Metrics defaults
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
