package realtime

import (
	"strings"
	"sync"
	"time"
)

// Topics published by the services.
const (
	TopicPolicy   = "policy"
	TopicPresence = "presence"
	TopicMarkets  = "markets"

	accountTopicPrefix = "accounts/"
)

// AccountTopic is the topic carrying changes to one account's record.
func AccountTopic(accountID string) string {
	return accountTopicPrefix + accountID
}

// IsAccountTopic reports whether topic names an account record.
func IsAccountTopic(topic string) bool {
	return strings.HasPrefix(topic, accountTopicPrefix)
}

// Event tells a subscriber that something under Topic changed. It carries no payload:
// subscribers re-read the current state, so coalescing events loses nothing.
type Event struct {
	Topic string    `json:"topic"`
	At    time.Time `json:"at"`
}

// Publisher is the write side of the hub, as seen by the services.
type Publisher interface {
	Publish(topic string)
}

// Subscription receives events for its topics on C until it is unsubscribed.
type Subscription struct {
	C <-chan Event

	ch     chan Event
	topics map[string]struct{}
}

func (s *Subscription) wants(topic string) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[topic]
	return ok
}

// Hub is an in-process fan-out of change notifications.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

var _ Publisher = (*Hub)(nil)

// Subscribe registers a subscription for the given topics (all topics when none are
// given). buffer is the channel capacity; events for a full subscriber are dropped.
func (h *Hub) Subscribe(buffer int, topics ...string) *Subscription {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	sub := &Subscription{C: ch, ch: ch, topics: make(map[string]struct{}, len(topics))}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it twice is harmless.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
}

// Publish notifies every subscriber of topic without blocking.
func (h *Hub) Publish(topic string) {
	evt := Event{Topic: topic, At: time.Now()}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if !sub.wants(topic) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
