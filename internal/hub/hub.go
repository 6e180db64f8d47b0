// Package hub maintains the live-update subscriber registries and fans out
// change events to every connection subscribed to a topic.
package hub

import (
	"sync"

	"plate-auction/utils"
)

// Topics clients can subscribe to.
const (
	TopicPlates = "plates"
	TopicBids   = "bids"
)

// Event actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event is the JSON message pushed to subscribers.
type Event struct {
	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	PlateID      int64  `json:"plate_id,omitempty"`
	Data         any    `json:"data"`
}

// Conn is the transport a subscriber is reached over. *websocket.Conn
// satisfies it; tests plug in fakes.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// subscriber wraps a connection with a write mutex: pushes for different
// events may run concurrently and the underlying transport does not allow
// concurrent writes.
type subscriber struct {
	id   string
	conn Conn
	mu   sync.Mutex
}

func (s *subscriber) send(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// Hub is the in-process subscriber registry. It is an injected singleton,
// safe for concurrent use.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[string]*subscriber
}

// NewHub creates a hub with empty registries for the known topics.
func NewHub() *Hub {
	return &Hub{topics: map[string]map[string]*subscriber{
		TopicPlates: {},
		TopicBids:   {},
	}}
}

// Subscribe registers conn on topic and returns its subscriber id.
func (h *Hub) Subscribe(topic string, conn Conn) string {
	id := utils.GenerateID()

	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[string]*subscriber)
		h.topics[topic] = subs
	}
	subs[id] = &subscriber{id: id, conn: conn}
	return id
}

// Unsubscribe removes a subscriber from a topic. Unknown ids are ignored.
func (h *Hub) Unsubscribe(topic, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.topics[topic], id)
}

// SubscriberCount returns the number of live subscribers on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Publish delivers event to every current subscriber of topic. Each push runs
// in its own goroutine with no registry lock held, so one slow or dead
// connection cannot stall the rest. A failed write prunes the subscriber and
// closes its connection. Publish returns once every push attempt finished.
func (h *Hub) Publish(topic string, event Event) {
	h.mu.RLock()
	snapshot := make([]*subscriber, 0, len(h.topics[topic]))
	for _, sub := range h.topics[topic] {
		snapshot = append(snapshot, sub)
	}
	h.mu.RUnlock()

	var wg sync.WaitGroup
	for _, sub := range snapshot {
		wg.Add(1)
		go func(sub *subscriber) {
			defer wg.Done()
			if err := sub.send(event); err != nil {
				h.Unsubscribe(topic, sub.id)
				_ = sub.conn.Close()
				utils.Warn("hub: pruned dead subscriber", map[string]any{
					"topic":         topic,
					"subscriber_id": sub.id,
					"error":         err.Error(),
				})
			}
		}(sub)
	}
	wg.Wait()
}
