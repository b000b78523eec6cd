package events

import "sync"

// subscriberBuffer bounds how far a slow SSE client may fall behind
// before refresh and application events are dropped for it.
const subscriberBuffer = 10

// Hub fans engine events (job refreshes, received applications, poll
// activity) out to every connected SSE stream.
type Hub struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

// Publish delivers evt to every subscriber that still has buffer room;
// a full subscriber misses the event rather than stalling the engine.
func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
