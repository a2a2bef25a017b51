package ws

import "encoding/json"

// Message is the envelope for all client-to-server and server-to-client
// websocket traffic.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client-to-server event names.
const (
	typeFindPartner  = "findPartner"
	typeCallUser     = "callUser"
	typeAnswerCall   = "answerCall"
	typeEndCall      = "endCall"
	typeFindTextChat = "findTextChat"
	typeSendMessage  = "sendMessage"
	typeTyping       = "typing"
)

// callUserPayload is the inbound shape of a call offer.
type callUserPayload struct {
	UserToCall string          `json:"userToCall"`
	SignalData json.RawMessage `json:"signalData"`
	From       string          `json:"from"`
	Name       string          `json:"name"`
}

// answerCallPayload is the inbound shape of a call answer.
type answerCallPayload struct {
	Signal json.RawMessage `json:"signal"`
	To     string          `json:"to"`
}
