package queue

// Queue is a FIFO buffer between the goroutine receiving messages and the
// goroutine applying them. Implementations must be thread-safe and preserve
// insertion order.
type Queue interface {
	// Enqueue adds an item to the end of the queue.
	Enqueue(item interface{}) error
	// ReadAllMessages removes and returns every pending item in order.
	ReadAllMessages() ([]interface{}, error)
	// Size returns the number of pending items.
	Size() int
	// ClearQueue drops every pending item.
	ClearQueue() error
}
