package heap

import (
	"golang.org/x/exp/constraints"
)

// Heap is a binary min-heap ordered by a caller-supplied less function.
//
// Heap is not safe for concurrent use.
type Heap[T any] struct {
	elements []T
	less     func(a, b T) bool
}

// New creates an empty Heap whose root is the element for which less reports
// true against every other element.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		elements: make([]T, 0),
		less:     less,
	}
}

// NewOrdered creates an empty min-heap over a naturally ordered type.
func NewOrdered[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.elements)
}

// Push adds x to the heap.
func (h *Heap[T]) Push(x T) {
	h.elements = append(h.elements, x)
	h.up(len(h.elements) - 1)
}

// Pop removes and returns the minimum element.
//
// If the heap is empty, Pop returns the zero value and false.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.elements) == 0 {
		var zero T
		return zero, false
	}

	n := len(h.elements) - 1
	h.elements[0], h.elements[n] = h.elements[n], h.elements[0]
	ret := h.elements[n]
	var zero T
	h.elements[n] = zero // avoid memory leak
	h.elements = h.elements[:n]

	if n > 0 {
		h.down(0)
	}
	return ret, true
}

// Peek returns but does not remove the minimum element.
//
// If the heap is empty, Peek returns the zero value and false.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.elements) == 0 {
		var zero T
		return zero, false
	}
	return h.elements[0], true
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.elements[i], h.elements[parent]) {
			break
		}
		h.elements[i], h.elements[parent] = h.elements[parent], h.elements[i]
		i = parent
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.elements)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.less(h.elements[right], h.elements[left]) {
			smallest = right
		}
		if !h.less(h.elements[smallest], h.elements[i]) {
			break
		}
		h.elements[i], h.elements[smallest] = h.elements[smallest], h.elements[i]
		i = smallest
	}
}
