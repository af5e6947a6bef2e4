// Package sse is a minimal in-process fan-out hub for Server-Sent
// Events, keyed by run ID.
package sse

import "sync"

var (
	mu    sync.Mutex
	conns = map[string][]chan string{}
)

// Subscribe registers a listener for id and returns its channel
// together with an unsubscribe function. The channel is buffered;
// messages published while it is full are dropped for this listener.
func Subscribe(id string) (chan string, func()) {
	ch := make(chan string, 16)

	mu.Lock()
	conns[id] = append(conns[id], ch)
	mu.Unlock()

	cancel := func() {
		mu.Lock()
		defer mu.Unlock()
		list := conns[id]
		for i, c := range list {
			if c == ch {
				conns[id] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}

	return ch, cancel
}

// Publish sends msg to every current subscriber of id.
// The subscriber list is copied under the lock so a slow receiver
// cannot block registration of new listeners.
func Publish(id, msg string) {
	mu.Lock()
	list := append([]chan string(nil), conns[id]...)
	mu.Unlock()

	for _, ch := range list {
		select {
		case ch <- msg:
		default:
			// drop for this listener rather than block the run
		}
	}
}
