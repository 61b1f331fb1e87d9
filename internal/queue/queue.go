// Package queue provides the lockable buffer used to hand messages from an
// engine's IPC callback to the frame loop.
package queue

import "sync"

// Queue is an ordered buffer shared by one producer and one consumer.
// The consumer polls with Drain once per cycle; there is no blocking receive.
// The zero value is ready to use. A Queue must not be copied after first use.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item to the tail.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
}

// Drain removes and returns every buffered item in FIFO order.
// It returns nil when the queue is empty.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()
	return items
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
