// Package connectivity reports whether the server is reachable and notifies
// subscribers when reachability changes.
package connectivity

import (
	"sync"
)

//go:generate moq -out observer_mock.go . Observer

// Observer exposes the current reachability and transition notifications.
type Observer interface {
	// IsConnected reports the last known reachability
	IsConnected() bool

	// Subscribe registers fn to be called on every transition.
	// fn вызывается синхронно в горутине, изменившей состояние, и не должен блокироваться.
	Subscribe(fn func(connected bool)) (unsubscribe func())
}

// notifier хранит состояние и подписчиков; общий для Manual и Prober
type notifier struct {
	subs      map[int]func(bool)
	mu        sync.Mutex
	next      int
	connected bool
}

func (n *notifier) IsConnected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.connected
}

func (n *notifier) Subscribe(fn func(connected bool)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func(bool))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

// set updates the state and notifies subscribers on a transition.
// Returns true when the state changed.
func (n *notifier) set(connected bool) bool {
	n.mu.Lock()
	if n.connected == connected {
		n.mu.Unlock()
		return false
	}
	n.connected = connected
	subs := make([]func(bool), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	// Вызываем подписчиков вне блокировки, чтобы они могли читать IsConnected
	for _, fn := range subs {
		fn(connected)
	}
	return true
}

// Manual is an Observer whose state is set explicitly (offline mode, tests)
type Manual struct {
	notifier
}

var _ Observer = (*Manual)(nil)

// NewManual creates a Manual observer with the given initial state
func NewManual(connected bool) *Manual {
	m := &Manual{}
	m.connected = connected
	return m
}

// SetConnected changes the state, notifying subscribers on a transition
func (m *Manual) SetConnected(connected bool) {
	m.set(connected)
}
