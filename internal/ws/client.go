package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/voodo-app/voodo-server/internal/config"
	"github.com/voodo-app/voodo-server/internal/match"
)

// Client wraps one websocket connection and implements match.Conn.
type Client struct {
	id     match.ClientID
	svc    *match.Service
	conn   *websocket.Conn
	cfg    config.WebSocketConfig
	logger *slog.Logger

	send      chan Message
	closeOnce sync.Once
}

func newClient(id match.ClientID, svc *match.Service, conn *websocket.Conn, cfg config.WebSocketConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		id:     id,
		svc:    svc,
		conn:   conn,
		cfg:    cfg,
		logger: logger,
		send:   make(chan Message, cfg.SendBuffer),
	}
}

// Send queues an event for the write pump. A nil payload produces an
// envelope with no payload field. Never blocks: a full buffer drops the
// event and reports false.
func (c *Client) Send(event string, payload any) bool {
	msg := Message{Type: event}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			c.logger.Warn("marshal outbound payload", "event", event, "error", err)
			return false
		}
		msg.Payload = data
	}

	select {
	case c.send <- msg:
		return true
	default:
		// Slow or closing client; drop rather than stall the core.
		return false
	}
}

// readPump pumps inbound envelopes from the connection into the
// matchmaking service. There is at most one reader per connection.
func (c *Client) readPump() {
	defer func() {
		c.svc.Disconnect(c.id)
		// After Disconnect no component can reach this Conn, so the send
		// channel can be closed to stop the write pump.
		c.closeOnce.Do(func() { close(c.send) })
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("read error", "client_id", c.id, "error", err)
			}
			return
		}
		c.dispatch(msg)
	}
}

// dispatch routes one inbound envelope to the matchmaking service.
// Malformed payloads and unknown types are dropped.
func (c *Client) dispatch(msg Message) {
	switch msg.Type {
	case typeFindPartner:
		c.svc.Seek(match.KindVideo, c.id)

	case typeCallUser:
		var p callUserPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.UserToCall == "" {
			c.logger.Debug("bad callUser payload", "client_id", c.id, "error", err)
			return
		}
		from := match.ClientID(p.From)
		if from == "" {
			from = c.id
		}
		c.svc.CallUser(match.ClientID(p.UserToCall), p.SignalData, from, p.Name)

	case typeAnswerCall:
		var p answerCallPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.To == "" {
			c.logger.Debug("bad answerCall payload", "client_id", c.id, "error", err)
			return
		}
		c.svc.AnswerCall(p.Signal, match.ClientID(p.To))

	case typeEndCall:
		c.svc.EndCall(c.id)

	case typeFindTextChat:
		c.svc.Seek(match.KindText, c.id)

	case typeSendMessage:
		c.svc.SendMessage(c.id, msg.Payload)

	case typeTyping:
		c.svc.Typing(c.id)

	default:
		c.logger.Debug("unknown message type", "client_id", c.id, "type", msg.Type)
	}
}

// writePump pumps queued envelopes to the connection and keeps it alive
// with pings. There is at most one writer per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
