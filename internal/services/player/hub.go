package player

import "sync"

const subscriptionBuffer = 8

// Hub fans player snapshots out to the live subscribers of each session
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

// Subscription receives the snapshots of one session until Close is called
type Subscription struct {
	C         <-chan State
	ch        chan State
	hub       *Hub
	sessionID string
	once      sync.Once
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registers a new subscriber for sessionID
func (h *Hub) Subscribe(sessionID string) *Subscription {
	ch := make(chan State, subscriptionBuffer)
	sub := &Subscription{C: ch, ch: ch, hub: h, sessionID: sessionID}

	h.mu.Lock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[*Subscription]struct{})
	}
	h.subs[sessionID][sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Publish delivers state to every subscriber of sessionID. A subscriber that
// fell behind loses its oldest pending snapshot, never the newest.
func (h *Hub) Publish(sessionID string, state State) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[sessionID] {
		for {
			select {
			case sub.ch <- state:
			default:
				select {
				case <-sub.ch:
				default:
				}
				continue
			}
			break
		}
	}
}

// Subscribers returns the number of live subscribers of sessionID
func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}

// Close unregisters the subscription and closes its channel
func (s *Subscription) Close() {
	s.once.Do(func() {
		h := s.hub
		h.mu.Lock()
		delete(h.subs[s.sessionID], s)
		if len(h.subs[s.sessionID]) == 0 {
			delete(h.subs, s.sessionID)
		}
		h.mu.Unlock()
		close(s.ch)
	})
}

// Close ends every subscription, used on shutdown
func (h *Hub) Close() {
	h.mu.RLock()
	var all []*Subscription
	for _, subs := range h.subs {
		for sub := range subs {
			all = append(all, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range all {
		sub.Close()
	}
}
