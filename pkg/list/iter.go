package list

import (
	"iter"
	"slices"

	"github.com/elves/linkedlist/pkg/errs"
)

// Iterator is a cursor over the elements of a list. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
type Iterator[T any] struct {
	cur *List[T]
}

// Iterator returns an iterator positioned at the first element of l.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l}
}

// HasElem returns whether the iterator is pointing to an element.
func (it *Iterator[T]) HasElem() bool {
	return it.cur.first() != nil
}

// Elem returns the element at the current position. It panics with
// [errs.ErrIteratorExhausted] if HasElem returns false.
func (it *Iterator[T]) Elem() T {
	return it.mustCell().head
}

// Next moves the iterator to the next position. It panics with
// [errs.ErrIteratorExhausted] if HasElem returns false.
func (it *Iterator[T]) Next() {
	it.cur = &it.mustCell().tail
}

func (it *Iterator[T]) mustCell() *node[T] {
	n := it.cur.first()
	if n == nil {
		panic(errs.ErrIteratorExhausted)
	}
	return n
}

// Rest returns the sub-list starting at the current position.
func (it *Iterator[T]) Rest() *List[T] {
	return it.cur
}

// Values returns an iterator over the elements of l.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := l
		for {
			head, rest, ok := cur.First()
			if !ok || !yield(head) {
				return
			}
			cur = rest
		}
	}
}

// All returns an iterator over the index-element pairs of l.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range l.Values() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Ptrs returns an iterator over pointers to the elements of l, which can be
// used to modify the elements in place.
func (l *List[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		cur := l
		for {
			// Advance past the current cell before handing out its element.
			head, rest, ok := cur.FirstPtr()
			if !ok {
				return
			}
			cur = rest
			if !yield(head) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes the elements of l and yields them in
// order. The elements are moved out of l when the iteration starts, so l is
// empty afterwards even if the iteration stops early.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		owned := List[T]{l.take()}
		for {
			v, ok := owned.PopFront()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromSeq returns a list containing the values of seq in the same order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	// Prepending reverses the order, so do it twice.
	var reversed List[T]
	for v := range seq {
		reversed.Prepend(v)
	}
	l := &List[T]{}
	for v := range reversed.Drain() {
		l.Prepend(v)
	}
	return l
}

// FromSlice returns a list containing the elements of s in the same order.
func FromSlice[T any](s []T) *List[T] {
	return FromSeq(slices.Values(s))
}
