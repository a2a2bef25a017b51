// Package ws carries the session-event protocol over gorilla websockets.
//
// Each connection gets a uuid ClientID, a read pump that decodes inbound
// envelopes and dispatches them to the matchmaking service, and a write
// pump that drains a buffered send channel back to the peer. The send
// channel is what makes delivery best-effort: a full buffer drops the
// event instead of blocking the matchmaking lock on a slow client.
package ws
