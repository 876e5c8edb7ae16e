package list

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrSplitOutOfRange is the panic value of List.SplitOff when the split
	// index exceeds the length of the list.
	ErrSplitOutOfRange = errors.New("split index out of range")

	// ErrConcurrentModification is the panic value of an iterator that
	// observes a structural mutation of its list mid-iteration.
	ErrConcurrentModification = errors.New("list modified during iteration")
)

type node[T any] struct {
	next  *node[T]
	prev  *node[T]
	value T
}

// List is a doubly linked list with O(1) insertion and removal at both ends.
//
// The zero value is not usable; create lists with New. A List is not safe for
// concurrent use; callers that share a List across goroutines must provide
// their own synchronization.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int

	// version is incremented on every structural mutation so that live
	// iterators can detect the mutation and fail fast.
	version uint64
}

// New creates a new, empty List and returns a pointer to it.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty returns true if the list contains no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// PushFront inserts the specified value at the front of the list.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{next: l.head, value: v}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
	l.version++
}

// PushBack inserts the specified value at the back of the list.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{prev: l.tail, value: v}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.len++
	l.version++
}

// PopFront removes and returns the value at the front of the list.
//
// If the list is empty, PopFront returns the zero value and false.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}

	// Sever the detached node's links so it cannot pin the chain.
	n.next = nil
	l.len--
	l.version++

	return n.value, true
}

// PopBack removes and returns the value at the back of the list.
//
// If the list is empty, PopBack returns the zero value and false.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}

	n.prev = nil
	l.len--
	l.version++

	return n.value, true
}

// Front returns but does not remove the value at the front of the list.
//
// If the list is empty, Front returns the zero value and false.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns but does not remove the value at the back of the list.
//
// If the list is empty, Back returns the zero value and false.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// FrontRef returns a pointer to the value at the front of the list, enabling
// in-place mutation of the element, or nil if the list is empty.
//
// The pointer is valid until the element is removed from the list.
func (l *List[T]) FrontRef() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// BackRef returns a pointer to the value at the back of the list, enabling
// in-place mutation of the element, or nil if the list is empty.
func (l *List[T]) BackRef() *T {
	if l.tail == nil {
		return nil
	}
	return &l.tail.value
}

// ContainsFunc returns true if pred returns true for any element of the list,
// scanning front to back and returning on the first match.
func (l *List[T]) ContainsFunc(pred func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			return true
		}
	}
	return false
}

// Contains returns true if the list contains an element equal to v.
func Contains[T comparable](l *List[T], v T) bool {
	return l.ContainsFunc(func(x T) bool { return x == v })
}

// Clear removes all elements from the list.
//
// The chain is unlinked iteratively, front to back, so teardown uses constant
// stack space regardless of length and no unlinked node keeps the rest of the
// chain reachable.
func (l *List[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}

	l.head = nil
	l.tail = nil
	l.len = 0
	l.version++
}

// Append moves all elements of other to the back of l in O(1) by splicing the
// two chains together. After Append returns, other is empty and retains no
// reference to the moved nodes.
func (l *List[T]) Append(other *List[T]) {
	if other.head != nil {
		if l.tail != nil {
			l.tail.next = other.head
			other.head.prev = l.tail
		} else {
			l.head = other.head
		}
		l.tail = other.tail
		l.len += other.len

		other.head = nil
		other.tail = nil
		other.len = 0
		other.version++
	}
	l.version++
}

// SplitOff detaches and returns the suffix [at, Len()) as a new list, leaving
// the prefix [0, at) in l. Locating the boundary is O(n); relinking is O(1).
//
// SplitOff(0) moves every element into the returned list; SplitOff(Len())
// returns a new empty list. An index greater than Len() is a caller bug and
// panics with ErrSplitOutOfRange rather than clamping silently.
func (l *List[T]) SplitOff(at int) *List[T] {
	if at < 0 || at > l.len {
		panic(errors.WithMessagef(ErrSplitOutOfRange, "index %d with length %d", at, l.len))
	}

	suffix := New[T]()
	if at == l.len {
		l.version++
		return suffix
	}
	if at == 0 {
		suffix.head = l.head
		suffix.tail = l.tail
		suffix.len = l.len

		l.head = nil
		l.tail = nil
		l.len = 0
		l.version++
		return suffix
	}

	// Walk to the first node of the suffix from whichever end is nearer.
	var boundary *node[T]
	if at <= l.len/2 {
		boundary = l.head
		for i := 0; i < at; i++ {
			boundary = boundary.next
		}
	} else {
		boundary = l.tail
		for i := l.len - 1; i > at; i-- {
			boundary = boundary.prev
		}
	}

	suffix.head = boundary
	suffix.tail = l.tail
	suffix.len = l.len - at

	l.tail = boundary.prev
	l.tail.next = nil
	boundary.prev = nil
	l.len = at
	l.version++

	return suffix
}

// Values returns an iterator over the values of the list, front to back. The
// returned sequence is lazy and restartable: each range over it walks the
// chain anew.
//
// Structurally mutating the list while ranging (push, pop, Clear, Append,
// SplitOff) panics with ErrConcurrentModification on the next step.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := l.version
		for n := l.head; n != nil; n = n.next {
			if l.version != version {
				panic(ErrConcurrentModification)
			}
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs returns an iterator over pointers to the values of the list, front to
// back, for in-place mutation of each element. Mutating elements through the
// yielded pointers is not a structural mutation and is always permitted.
func (l *List[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		version := l.version
		for n := l.head; n != nil; n = n.next {
			if l.version != version {
				panic(ErrConcurrentModification)
			}
			if !yield(&n.value) {
				return
			}
		}
	}
}
