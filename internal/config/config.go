package config

import "time"

// Config is the root configuration for a voodo server instance.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	WebRTC    WebRTCConfig    `yaml:"webrtc"`
	Hangouts  HangoutsConfig  `yaml:"hangouts"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// AllowedOrigin restricts websocket upgrades. Empty or "*" allows any
	// origin (development only).
	AllowedOrigin string `yaml:"allowed_origin"`
}

// DatabaseConfig holds the PostgreSQL connection for the hangouts store.
// The matchmaking core is in-memory only and never touches the database.
type DatabaseConfig struct {
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// Enabled reports whether a database was configured at all. The hangouts
// API is served only when it is; the relay core runs either way.
func (db DBConfig) Enabled() bool {
	return db.Host != ""
}

// WebSocketConfig holds per-connection transport settings.
type WebSocketConfig struct {
	SendBuffer     int           `yaml:"send_buffer"`
	MaxMessageSize int64         `yaml:"max_message_size"`
	PingInterval   time.Duration `yaml:"ping_interval"`
	PongWait       time.Duration `yaml:"pong_wait"`
	WriteWait      time.Duration `yaml:"write_wait"`
}

// WebRTCConfig holds the ICE servers handed to clients before signaling.
type WebRTCConfig struct {
	STUNURLs       []string `yaml:"stun_urls"`
	TURNURL        string   `yaml:"turn_url"`
	TURNUsername   string   `yaml:"turn_username"`
	TURNCredential string   `yaml:"turn_credential"`
}

// HangoutsConfig holds hangouts API settings.
type HangoutsConfig struct {
	ListLimit int `yaml:"list_limit"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Path string `yaml:"path"`
}
