package queue

import (
	"github.com/scusemua/collections/list"
)

// Fifo implements a first-in first-out (FIFO) queue on top of a doubly
// linked list, so both Enqueue and Dequeue are O(1) with no element
// shifting or slice growth.
//
// Fifo is not safe for concurrent use.
type Fifo[T any] struct {
	elements *list.List[T]
}

// NewFifo creates a new, empty Fifo and returns a pointer to it.
func NewFifo[T any]() *Fifo[T] {
	return &Fifo[T]{
		elements: list.New[T](),
	}
}

// Enqueue adds the specified element to the back of the queue.
func (q *Fifo[T]) Enqueue(elem T) {
	q.elements.PushBack(elem)
}

// Dequeue removes and returns the next element in the queue.
//
// If the queue is empty, Dequeue returns the zero value and false.
func (q *Fifo[T]) Dequeue() (T, bool) {
	return q.elements.PopFront()
}

// Peek returns but does not remove the next element in the queue.
//
// If the queue is empty, Peek returns the zero value and false.
func (q *Fifo[T]) Peek() (T, bool) {
	return q.elements.Front()
}

// Len returns the number of elements in the queue.
func (q *Fifo[T]) Len() int {
	return q.elements.Len()
}
