// Package realtime fans slot-state change events out to connected watchers.
package realtime

import (
	"log/slog"
	"sync"
)

const subscriberBuffer = 16

// Subscription is one watcher's event feed. Events arrives on C; Cancel via
// the hub when the connection goes away.
type Subscription struct {
	C        chan Event
	expertID string
	id       uint64
}

// Hub is an explicit subscriber registry keyed by expert. Publish never
// blocks: a subscriber whose buffer is full misses the event, which is
// acceptable because delivery is best-effort and clients re-fetch on
// reconnect.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]*Subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]*Subscription)}
}

// Subscribe registers a watcher for one expert's slot events.
func (h *Hub) Subscribe(expertID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		C:        make(chan Event, subscriberBuffer),
		expertID: expertID,
		id:       h.nextID,
	}
	if h.subs[expertID] == nil {
		h.subs[expertID] = make(map[uint64]*Subscription)
	}
	h.subs[expertID][sub.id] = sub
	return sub
}

// Unsubscribe removes the watcher and closes its channel. Safe to call once
// per subscription.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.subs[sub.expertID]
	if !ok {
		return
	}
	if _, ok := group[sub.id]; !ok {
		return
	}
	delete(group, sub.id)
	if len(group) == 0 {
		delete(h.subs, sub.expertID)
	}
	close(sub.C)
}

// Publish delivers the event to every current watcher of the event's expert.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs[ev.ExpertID] {
		select {
		case sub.C <- ev:
		default:
			slog.Debug("dropping slot event for slow subscriber",
				"expert_id", ev.ExpertID, "type", ev.Type)
		}
	}
}

// SubscriberCount reports the current watcher count for an expert.
func (h *Hub) SubscriberCount(expertID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[expertID])
}
