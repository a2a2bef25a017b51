package match

import (
	"sort"
	"strings"
	"time"
)

// pairLinks holds active video pairings as a symmetric relation: if A maps
// to B then B maps to A, and both directions are inserted and removed
// together.
type pairLinks struct {
	partner map[ClientID]ClientID
}

func newPairLinks() *pairLinks {
	return &pairLinks{partner: make(map[ClientID]ClientID)}
}

func (p *pairLinks) link(a, b ClientID) {
	p.partner[a] = b
	p.partner[b] = a
}

func (p *pairLinks) get(id ClientID) (ClientID, bool) {
	partner, ok := p.partner[id]
	return partner, ok
}

// unlink removes both directions of id's pairing and returns the former
// partner. No-op if id has no active pair.
func (p *pairLinks) unlink(id ClientID) (ClientID, bool) {
	partner, ok := p.partner[id]
	if !ok {
		return "", false
	}
	delete(p.partner, id)
	delete(p.partner, partner)
	return partner, true
}

func (p *pairLinks) len() int {
	return len(p.partner)
}

// TextSession records one active text pairing.
type TextSession struct {
	Key       string
	StartedAt time.Time
}

// textSessions holds active text pairings. Partner resolution goes through
// a direct ClientID to partner map; the canonical sorted-pair key only
// indexes session metadata.
type textSessions struct {
	partner map[ClientID]ClientID
	byKey   map[string]TextSession
}

func newTextSessions() *textSessions {
	return &textSessions{
		partner: make(map[ClientID]ClientID),
		byKey:   make(map[string]TextSession),
	}
}

// pairKey derives the canonical, order-independent key for two clients.
func pairKey(a, b ClientID) string {
	ids := []string{string(a), string(b)}
	sort.Strings(ids)
	return strings.Join(ids, ":")
}

func (t *textSessions) start(a, b ClientID, now time.Time) {
	t.partner[a] = b
	t.partner[b] = a
	key := pairKey(a, b)
	t.byKey[key] = TextSession{Key: key, StartedAt: now}
}

func (t *textSessions) get(id ClientID) (ClientID, bool) {
	partner, ok := t.partner[id]
	return partner, ok
}

// end removes id's session and returns the former partner. No-op if id has
// no active session.
func (t *textSessions) end(id ClientID) (ClientID, bool) {
	partner, ok := t.partner[id]
	if !ok {
		return "", false
	}
	delete(t.partner, id)
	delete(t.partner, partner)
	delete(t.byKey, pairKey(id, partner))
	return partner, true
}

func (t *textSessions) session(a, b ClientID) (TextSession, bool) {
	s, ok := t.byKey[pairKey(a, b)]
	return s, ok
}

func (t *textSessions) len() int {
	return len(t.byKey)
}
