package match

// registry tracks the transport handle for every connected client.
//
// It is not safe for concurrent use on its own; the owning Service
// serializes all access behind its mutex.
type registry struct {
	conns map[ClientID]Conn
}

func newRegistry() *registry {
	return &registry{conns: make(map[ClientID]Conn)}
}

func (r *registry) register(id ClientID, conn Conn) {
	r.conns[id] = conn
}

func (r *registry) unregister(id ClientID) {
	delete(r.conns, id)
}

func (r *registry) contains(id ClientID) bool {
	_, ok := r.conns[id]
	return ok
}

func (r *registry) size() int {
	return len(r.conns)
}

// unicast delivers an event to one client. Sending to an absent id is a
// no-op returning false.
func (r *registry) unicast(id ClientID, event string, payload any) bool {
	conn, ok := r.conns[id]
	if !ok {
		return false
	}
	return conn.Send(event, payload)
}

// broadcast delivers an event to every connected client.
func (r *registry) broadcast(event string, payload any) {
	for _, conn := range r.conns {
		conn.Send(event, payload)
	}
}
