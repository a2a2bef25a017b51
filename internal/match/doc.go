// Package match implements the matchmaking and relay core: FIFO waiting
// queues per session kind, pair bookkeeping for video calls and text chats,
// event relay between paired clients, and disconnect-triggered teardown.
//
// The package is transport-agnostic. Connected clients are represented by
// the Conn interface; the websocket layer plugs real connections in and
// tests plug in fakes. All shared matchmaking state is owned by a single
// Service instance and serialized behind one mutex, so a queue pop and the
// pair commit it leads to are always one atomic unit.
//
// Delivery is best-effort by design: relaying to an absent or slow peer is
// a silent no-op, never an error.
package match
