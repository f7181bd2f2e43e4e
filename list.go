// Package sll provides a generic singly linked list with stack-like
// push/pop semantics at the head, value lookup, tail-relative indexed
// access, an in-place quicksort, and diagnostic layout reporting.
//
// Lists are not safe for concurrent use: mutating operations require
// exclusive access, and callers are responsible for their own
// synchronization.
package sll

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/tychoish/sll/ers"
)

// ErrIndexOutOfBounds is returned (wrapped with the largest index
// observed during traversal) by indexed operations when the requested
// position is not in the list.
const ErrIndexOutOfBounds ers.Error = ers.Error("index out of bounds")

type node[T any] struct {
	value T
	next  *node[T]
	id    uint64
}

// List is a singly linked list. The list owns the head node and each
// node owns its successor. The zero value is an empty list ready to
// use.
type List[T cmp.Ordered] struct {
	head   *node[T]
	size   int
	nextID uint64
}

// New returns an empty list.
func New[T cmp.Ordered]() *List[T] { return &List[T]{} }

// NewFromSlice builds a list by pushing each item in order, so the
// last item of the slice becomes the head.
func NewFromSlice[T cmp.Ordered](items []T) *List[T] { return New[T]().Append(items...) }

// NewFromSeq builds a list by pushing each item produced by the
// sequence in order.
func NewFromSeq[T cmp.Ordered](seq iter.Seq[T]) *List[T] { return New[T]().Extend(seq) }

// Append pushes a variadic sequence of items onto the list.
func (l *List[T]) Append(items ...T) *List[T] {
	for _, it := range items {
		l.Push(it)
	}
	return l
}

// Extend pushes every item in the sequence onto the list.
func (l *List[T]) Extend(seq iter.Seq[T]) *List[T] {
	for it := range seq {
		l.Push(it)
	}
	return l
}

// Push adds a value at the head of the list. O(1).
func (l *List[T]) Push(value T) {
	l.nextID++
	l.head = &node[T]{value: value, next: l.head, id: l.nextID}
	l.size++
}

// Pop detaches the head of the list and returns its value. When the
// list is empty, Pop returns the zero value and false.
func (l *List[T]) Pop() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	out := l.head
	l.head = out.next
	out.next = nil
	l.size--

	return out.value, true
}

// Head returns the most recently pushed value without removing it.
func (l *List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Clear releases every node in the list.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.size = 0
}

// Len returns the number of elements in the list. Because lists track
// their own size, this is an O(1) operation.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Exists reports whether any element equals value, returning at the
// first match.
func (l *List[T]) Exists(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}
	return false
}

// Get returns a pointer to the element equal to value. Get walks the
// entire list and keeps the last match, so when duplicates are
// present the result is the occurrence nearest the tail (the earliest
// pushed), unlike Exists which stops at the first match.
func (l *List[T]) Get(value T) (*T, bool) {
	var out *T
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			out = &n.value
		}
	}
	return out, out != nil
}

// Index returns the value at the tail-relative position idx: the head
// is at position Len() and the tail at position 1. Positions outside
// that range produce an error that wraps ErrIndexOutOfBounds.
func (l *List[T]) Index(idx int) (T, error) {
	n, err := l.seek(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Ref is the mutable form of Index, returning a pointer to the value
// stored at idx.
func (l *List[T]) Ref(idx int) (*T, error) {
	n, err := l.seek(idx)
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

// Set replaces the value stored at idx.
func (l *List[T]) Set(idx int, value T) error {
	n, err := l.seek(idx)
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

// MustIndex is Index for callers that have already validated idx
// against Len(): it panics with the Index error rather than returning
// it.
func (l *List[T]) MustIndex(idx int) T {
	v, err := l.Index(idx)
	if err != nil {
		panic(err)
	}
	return v
}

func (l *List[T]) seek(idx int) (*node[T], error) {
	pos := l.size
	for n := l.head; n != nil; n = n.next {
		if pos < idx {
			break
		}
		if pos == idx {
			return n, nil
		}
		pos--
	}

	return nil, ers.Wrapf(ErrIndexOutOfBounds, "index %d, max is %d", idx, pos)
}

// ElementType returns the name of the list's element type, for
// diagnostics.
func (l *List[T]) ElementType() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Slice returns the values of the list, head to tail, in a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for v := range l.Iterator() {
		out = append(out, v)
	}
	return out
}

// Clone returns a copy of the list with the same elements in the same
// order. The copy does not share nodes with the original.
func (l *List[T]) Clone() *List[T] {
	items := l.Slice()
	out := New[T]()
	for i := len(items) - 1; i >= 0; i-- {
		out.Push(items[i])
	}
	return out
}

// Validate walks the list and checks that the cached size matches
// the number of reachable nodes.
func (l *List[T]) Validate() error {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}

	if count != l.size {
		return ers.NewInvariantViolation("list size is %d, but %d nodes are reachable", l.size, count)
	}
	return nil
}
