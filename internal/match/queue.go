package match

// waitingQueue is a FIFO of clients seeking a partner of one kind.
// The zero value is ready to use.
type waitingQueue struct {
	ids []ClientID
}

// push appends id to the tail.
func (q *waitingQueue) push(id ClientID) {
	q.ids = append(q.ids, id)
}

// pop removes and returns the head.
func (q *waitingQueue) pop() (ClientID, bool) {
	if len(q.ids) == 0 {
		return "", false
	}
	id := q.ids[0]
	q.ids = q.ids[1:]
	return id, true
}

// remove deletes id wherever it sits, preserving the order of the rest.
// It reports whether id was present.
func (q *waitingQueue) remove(id ClientID) bool {
	for i, v := range q.ids {
		if v == id {
			q.ids = append(q.ids[:i], q.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (q *waitingQueue) contains(id ClientID) bool {
	for _, v := range q.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (q *waitingQueue) len() int {
	return len(q.ids)
}
