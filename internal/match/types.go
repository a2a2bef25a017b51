package match

import "encoding/json"

// ClientID identifies one live connection. IDs are assigned by the
// transport layer on connect and are never reused across reconnects.
type ClientID string

// Conn is the transport handle for one connected client.
type Conn interface {
	// Send queues an event for delivery to the client. Best-effort: false
	// means the event was dropped (slow or closing connection). It must
	// never block.
	Send(event string, payload any) bool
}

// Kind selects which session type a client is seeking.
type Kind int

const (
	KindVideo Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Server-to-client event names. These mirror the protocol the web client
// already speaks.
const (
	EventPartnerFound     = "partnerFound"
	EventCallUser         = "callUser"
	EventCallAccepted     = "callAccepted"
	EventCallEnded        = "callEnded"
	EventChatConnected    = "chatConnected"
	EventReceiveMessage   = "receiveMessage"
	EventTyping           = "typing"
	EventChatDisconnected = "chatDisconnected"
	EventUserCount        = "updateUserCount"
)

// PartnerFoundPayload tells a waiting video client who to call.
type PartnerFoundPayload struct {
	PartnerID string `json:"partnerId"`
}

// IncomingCallPayload carries a call offer to its target.
type IncomingCallPayload struct {
	From   string          `json:"from"`
	Signal json.RawMessage `json:"signal"`
	Name   string          `json:"name"`
}
