package containers

import (
	"errors"
	"sync"
)

// RingQueue is a fixed-capacity FIFO. The mesh library uses it to hand
// files discovered by the watcher over to the batch loop, so access is
// mutex guarded.
type RingQueue struct {
	mutex      sync.Mutex
	data       []string
	size       int
	readIndex  int
	writeIndex int
	count      int
}

// Create a new RingQueue
func NewRingQueue(size int) *RingQueue {
	return &RingQueue{
		data: make([]string, size),
		size: size,
	}
}

// Enqueue adds an element to the queue
func (rq *RingQueue) Enqueue(value string) error {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	if rq.count == rq.size {
		return errors.New("queue is full")
	}

	rq.data[rq.writeIndex] = value
	rq.writeIndex = (rq.writeIndex + 1) % rq.size
	rq.count++
	return nil
}

// Dequeue removes and returns the front element in the queue
func (rq *RingQueue) Dequeue() (string, bool) {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	if rq.count == 0 {
		return "", false
	}

	value := rq.data[rq.readIndex]
	rq.readIndex = (rq.readIndex + 1) % rq.size
	rq.count--
	return value, true
}

// Len returns the number of queued elements
func (rq *RingQueue) Len() int {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()
	return rq.count
}

// IsEmpty checks if the queue is empty
func (rq *RingQueue) IsEmpty() bool {
	return rq.Len() == 0
}
