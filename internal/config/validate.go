package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}

	if c.Database.Postgres.Enabled() {
		if err := c.Database.Postgres.validate("database.postgres"); err != nil {
			return err
		}
	}

	if c.WebSocket.SendBuffer < 1 {
		return errors.New("websocket.send_buffer must be >= 1")
	}
	if c.WebSocket.MaxMessageSize < 1 {
		return errors.New("websocket.max_message_size must be >= 1")
	}
	if c.WebSocket.PingInterval >= c.WebSocket.PongWait {
		return fmt.Errorf("websocket.ping_interval (%s) must be less than pong_wait (%s)",
			c.WebSocket.PingInterval, c.WebSocket.PongWait)
	}

	if c.Hangouts.ListLimit < 1 {
		return errors.New("hangouts.list_limit must be >= 1")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
