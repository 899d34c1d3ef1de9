package queue

import (
	"fmt"
	"sync"
)

// ErrQueueFull is returned by Enqueue when the queue is at capacity.
type ErrQueueFull struct {
	Size int
}

func (e *ErrQueueFull) Error() string {
	return fmt.Sprintf("queue is full (size %d)", e.Size)
}

// InMemoryQueue implements Queue with a bounded slice.
type InMemoryQueue struct {
	lock  sync.Mutex
	items []interface{}
	size  int
}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue(size int) *InMemoryQueue {
	return &InMemoryQueue{
		items: make([]interface{}, 0, size),
		size:  size,
	}
}

// Enqueue adds an item to the end of the queue.
// It never blocks; a full queue returns ErrQueueFull.
func (q *InMemoryQueue) Enqueue(item interface{}) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	if len(q.items) >= q.size {
		return &ErrQueueFull{Size: q.size}
	}
	q.items = append(q.items, item)
	return nil
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue) ReadAllMessages() ([]interface{}, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.items) == 0 {
		return nil, nil
	}
	messages := q.items
	q.items = make([]interface{}, 0, q.size)
	return messages, nil
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.items)
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue) ClearQueue() error {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.items = make([]interface{}, 0, q.size)
	return nil
}
