package sll

import "iter"

// Iterator returns a native go iterator over the values in the list,
// from head (most recently pushed) to tail. Each call produces a new,
// independent iteration.
func (l *List[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Iter returns a pull-style cursor positioned before the head of the
// list.
func (l *List[T]) Iter() *Cursor[T] { return &Cursor[T]{next: l.head} }

// Cursor reads a list from head to tail, one value per call to Next.
// Cursors never modify the list, and any number of cursors may read
// the same list. Mutating the list while a cursor is open produces
// undefined (but memory safe) results.
type Cursor[T any] struct {
	next  *node[T]
	value T
}

// Next advances the cursor, returning false once the tail has been
// passed.
func (c *Cursor[T]) Next() bool {
	if c.next == nil {
		return false
	}
	c.value = c.next.value
	c.next = c.next.next
	return true
}

// Value returns the value at the cursor's current position.
func (c *Cursor[T]) Value() T { return c.value }
