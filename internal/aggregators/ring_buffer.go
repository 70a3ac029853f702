package aggregators

// ringBuffer is a fixed-capacity FIFO that overwrites its oldest element once full.
// It is not safe for concurrent use; the owning aggregator holds the lock.
type ringBuffer[T any] struct {
	buffer []T
	start  int
	count  int
}

func newRingBuffer[T any](capacity int) *ringBuffer[T] {
	return &ringBuffer[T]{buffer: make([]T, capacity)}
}

// add appends item and reports whether the oldest element was evicted to make room.
func (rb *ringBuffer[T]) add(item T) (evicted bool) {
	size := len(rb.buffer)
	rb.buffer[(rb.start+rb.count)%size] = item
	if rb.count < size {
		rb.count++
		return false
	}
	rb.start = (rb.start + 1) % size
	return true
}

func (rb *ringBuffer[T]) len() int { return rb.count }

func (rb *ringBuffer[T]) capacity() int { return len(rb.buffer) }

// items returns a copy of the buffered elements, oldest first.
func (rb *ringBuffer[T]) items() []T {
	items := make([]T, rb.count)
	for i := range items {
		items[i] = rb.buffer[(rb.start+i)%len(rb.buffer)]
	}
	return items
}
