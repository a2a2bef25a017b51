package match

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Service owns all matchmaking state for one server process: the connection
// registry, both waiting queues, and both pair tables. Construct one per
// process and hand it to every connection handler.
//
// Every method takes the service mutex, so a queue pop and the pair commit
// that follows it are a single atomic unit. No two concurrent seeks can
// claim the same candidate or commit conflicting pairs. Sends go through
// non-blocking per-connection buffers, so nothing under the lock waits on
// the network.
type Service struct {
	mu     sync.Mutex
	logger *slog.Logger

	conns *registry

	videoQueue waitingQueue
	textQueue  waitingQueue

	calls *pairLinks
	chats *textSessions

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates an empty matchmaking service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger: logger,
		conns:  newRegistry(),
		calls:  newPairLinks(),
		chats:  newTextSessions(),
		now:    time.Now,
	}
}

// Connect registers a new client connection and announces the updated
// online count to everyone.
func (s *Service) Connect(id ClientID, conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conns.register(id, conn)
	s.logger.Info("client connected", "client_id", id, "online", s.conns.size())
	s.broadcastCountLocked()
}

// Disconnect tears down everything a client was involved in: pending queue
// entries, an active call, an active chat. Each step runs regardless of
// whether the others found anything, then the updated count is announced.
func (s *Service) Disconnect(id ClientID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.conns.contains(id) {
		return
	}
	s.conns.unregister(id)

	if s.videoQueue.remove(id) {
		waitingClients.WithLabelValues(KindVideo.String()).Dec()
	}
	if s.textQueue.remove(id) {
		waitingClients.WithLabelValues(KindText.String()).Dec()
	}

	// A queued client had no pair yet, so no one is notified for that.
	if partner, ok := s.calls.unlink(id); ok {
		s.conns.unicast(partner, EventCallEnded, nil)
	}
	if partner, ok := s.chats.end(id); ok {
		s.conns.unicast(partner, EventChatDisconnected, nil)
	}

	s.logger.Info("client disconnected", "client_id", id, "online", s.conns.size())
	s.broadcastCountLocked()
}

// Seek finds a partner of the given kind for id, or enqueues id if none is
// available. Matching is FIFO: the longest-waiting live client is taken
// first. Stale queue entries whose connection already ended are discarded
// until a live candidate is found or the queue is exhausted.
func (s *Service) Seek(kind Kind, id ClientID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.conns.contains(id) {
		return
	}

	// A client in an active session must end it before seeking again.
	if _, paired := s.calls.get(id); paired {
		return
	}
	if _, inSession := s.chats.get(id); inSession {
		return
	}

	queue := s.queueFor(kind)
	if queue.contains(id) {
		// Already waiting; keep the original queue position.
		return
	}

	for {
		candidate, ok := queue.pop()
		if !ok {
			queue.push(id)
			waitingClients.WithLabelValues(kind.String()).Inc()
			s.logger.Debug("client waiting", "kind", kind.String(), "client_id", id)
			return
		}
		if candidate == id || !s.conns.contains(candidate) {
			continue
		}
		waitingClients.WithLabelValues(kind.String()).Dec()
		s.commitLocked(kind, id, candidate)
		return
	}
}

// commitLocked pairs seeker with candidate. Caller holds the mutex.
func (s *Service) commitLocked(kind Kind, seeker, candidate ClientID) {
	switch kind {
	case KindVideo:
		s.calls.link(seeker, candidate)
		// The waiting side initiates the WebRTC offer.
		s.conns.unicast(candidate, EventPartnerFound, PartnerFoundPayload{PartnerID: string(seeker)})
	case KindText:
		s.chats.start(seeker, candidate, s.now())
		s.conns.unicast(seeker, EventChatConnected, nil)
		s.conns.unicast(candidate, EventChatConnected, nil)
	}

	matchesTotal.WithLabelValues(kind.String()).Inc()
	s.logger.Info("clients matched",
		"kind", kind.String(),
		"client_id", seeker,
		"partner_id", candidate,
	)
}

// CallUser relays a call offer to its target. The target is addressed
// directly, not through pair membership, since the caller learned the id
// from partnerFound. Dropped silently if the target is gone.
func (s *Service) CallUser(target ClientID, signal json.RawMessage, from ClientID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conns.unicast(target, EventCallUser, IncomingCallPayload{
		From:   string(from),
		Signal: signal,
		Name:   name,
	}) {
		relayedEventsTotal.WithLabelValues(EventCallUser).Inc()
	}
}

// AnswerCall relays a call answer back to the offerer. Dropped silently if
// the target is gone.
func (s *Service) AnswerCall(signal json.RawMessage, target ClientID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conns.unicast(target, EventCallAccepted, signal) {
		relayedEventsTotal.WithLabelValues(EventCallAccepted).Inc()
	}
}

// EndCall tears down caller's active video pair and notifies the partner.
// No-op if caller has no active pair.
func (s *Service) EndCall(caller ClientID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	partner, ok := s.calls.unlink(caller)
	if !ok {
		return
	}
	s.conns.unicast(partner, EventCallEnded, nil)
	s.logger.Info("call ended", "client_id", caller, "partner_id", partner)
}

// SendMessage relays a chat message to the sender's text partner. Dropped
// silently if the sender has no active session.
func (s *Service) SendMessage(sender ClientID, message json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	partner, ok := s.chats.get(sender)
	if !ok {
		return
	}
	if s.conns.unicast(partner, EventReceiveMessage, message) {
		relayedEventsTotal.WithLabelValues(EventReceiveMessage).Inc()
	}
}

// Typing relays a typing indicator to the sender's text partner. Dropped
// silently if the sender has no active session.
func (s *Service) Typing(sender ClientID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	partner, ok := s.chats.get(sender)
	if !ok {
		return
	}
	if s.conns.unicast(partner, EventTyping, nil) {
		relayedEventsTotal.WithLabelValues(EventTyping).Inc()
	}
}

// OnlineCount returns the number of currently connected clients.
func (s *Service) OnlineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conns.size()
}

func (s *Service) queueFor(kind Kind) *waitingQueue {
	if kind == KindText {
		return &s.textQueue
	}
	return &s.videoQueue
}

// broadcastCountLocked announces the online count to all clients. Caller
// holds the mutex.
func (s *Service) broadcastCountLocked() {
	count := s.conns.size()
	connectedClients.Set(float64(count))
	s.conns.broadcast(EventUserCount, count)
}
