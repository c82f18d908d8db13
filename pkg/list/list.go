// Package list implements a generic singly-linked list.
//
// A List is either empty or a node that holds a head element and owns the
// rest of the list. Every cell belongs to exactly one list: operations that
// take another list, like PushNext and Replace, move its cells and leave it
// empty instead of sharing them.
//
// The sub-lists returned by First, Get, Rest and their variants are views into
// the enclosing list; mutating a sub-list mutates the enclosing list. A view
// stays valid as long as the cell it lives in is still part of the list.
package list

import (
	"github.com/elves/linkedlist/pkg/errs"
)

// List is a singly-linked list of values of type T. The zero value is an empty
// list. Read-only methods accept a nil *List and treat it as empty; methods
// that modify the list panic with [errs.ErrNilList] on a nil receiver.
type List[T any] struct {
	node *node[T]
}

type node[T any] struct {
	head T
	tail List[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list containing vs in the same order.
func Of[T any](vs ...T) *List[T] {
	l := &List[T]{}
	for i := len(vs) - 1; i >= 0; i-- {
		l.Prepend(vs[i])
	}
	return l
}

func (l *List[T]) first() *node[T] {
	if l == nil {
		return nil
	}
	return l.node
}

// take moves all cells out of l, leaving it empty.
func (l *List[T]) take() *node[T] {
	if l == nil {
		return nil
	}
	n := l.node
	l.node = nil
	return n
}

func (l *List[T]) mustBeNonNil() {
	if l == nil {
		panic(errs.ErrNilList)
	}
}

// lastCellOf returns the last cell of sub, or nil if sub is empty. It panics
// with [errs.ErrCyclicSplice] if l is the tail of one of the cells of sub,
// since moving those cells into l would link the chain back to itself.
func (l *List[T]) lastCellOf(sub *List[T]) *node[T] {
	var last *node[T]
	for n := sub.first(); n != nil; n = n.tail.node {
		if &n.tail == l {
			panic(errs.ErrCyclicSplice)
		}
		last = n
	}
	return last
}

// cell returns the i-th cell, or nil if there is no such cell.
func (l *List[T]) cell(i int) *node[T] {
	if i < 0 {
		return nil
	}
	n := l.first()
	for ; n != nil && i > 0; i-- {
		n = n.tail.node
	}
	return n
}

// Len returns the number of elements in the list. It takes O(n) time.
func (l *List[T]) Len() int {
	n := 0
	for c := l.first(); c != nil; c = c.tail.node {
		n++
	}
	return n
}

// IsEmpty returns whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.first() == nil
}

// Prepend adds v to the front of the list.
func (l *List[T]) Prepend(v T) {
	l.mustBeNonNil()
	l.node = &node[T]{head: v, tail: List[T]{l.take()}}
}

// PopFront removes the first element and returns it. If the list is empty, it
// returns the zero value and false.
func (l *List[T]) PopFront() (T, bool) {
	n := l.first()
	if n == nil {
		var zero T
		return zero, false
	}
	l.node = n.tail.take()
	return n.head, true
}

// First returns the first element and the rest of the list. The last return
// value is false if the list is empty.
func (l *List[T]) First() (T, *List[T], bool) {
	n := l.first()
	if n == nil {
		var zero T
		return zero, nil, false
	}
	return n.head, &n.tail, true
}

// FirstPtr is like First, but returns a pointer to the first element so that
// it can be modified in place.
func (l *List[T]) FirstPtr() (*T, *List[T], bool) {
	n := l.first()
	if n == nil {
		return nil, nil, false
	}
	return &n.head, &n.tail, true
}

// Get returns the element at index i and the part of the list after it. The
// last return value is false if i is negative or not less than the length of
// the list.
func (l *List[T]) Get(i int) (T, *List[T], bool) {
	n := l.cell(i)
	if n == nil {
		var zero T
		return zero, nil, false
	}
	return n.head, &n.tail, true
}

// GetPtr is like Get, but returns a pointer to the element.
func (l *List[T]) GetPtr(i int) (*T, *List[T], bool) {
	n := l.cell(i)
	if n == nil {
		return nil, nil, false
	}
	return &n.head, &n.tail, true
}

// Index returns the element at index i. It panics with an [errs.OutOfRange]
// if there is no such element; use Get to probe instead.
func (l *List[T]) Index(i int) T {
	n := l.cell(i)
	if n == nil {
		panic(errs.IndexOutOfRange(i, l.Len()))
	}
	return n.head
}

// Set replaces the element at index i with v. It panics with an
// [errs.OutOfRange] if there is no such element.
func (l *List[T]) Set(i int, v T) {
	n := l.cell(i)
	if n == nil {
		panic(errs.IndexOutOfRange(i, l.Len()))
	}
	n.head = v
}

// PushNext moves all elements of sub to the position right after the first
// element of l:
//
//	l = [h r0 r1], sub = [a b]  =>  l = [h a b r0 r1], sub = []
//
// If l is empty, it takes the elements of sub outright. It takes time
// proportional to the length of sub. It panics with [errs.ErrCyclicSplice] if
// l is a sub-list of sub other than sub itself; both lists are then left
// unchanged.
func (l *List[T]) PushNext(sub *List[T]) {
	l.mustBeNonNil()
	last := l.lastCellOf(sub)
	if last == nil {
		return
	}
	moved := sub.take()
	if l.node == nil {
		l.node = moved
		return
	}
	last.tail.node = l.node.tail.take()
	l.node.tail.node = moved
}

// Rest returns the sub-list starting at index from. If from is not positive,
// it returns l itself. If from is at least the length of the list, it returns
// the empty sub-list at the end of l, so that replacing it appends to l.
func (l *List[T]) Rest(from int) *List[T] {
	if l == nil {
		return nil
	}
	cur := l
	for ; from > 0 && cur.node != nil; from-- {
		cur = &cur.node.tail
	}
	return cur
}

// Replace discards the elements of l and moves the elements of sub into it,
// leaving sub empty. Combined with Rest, it replaces the tail of a list from
// some index. It takes time proportional to the length of sub, and panics with
// [errs.ErrCyclicSplice] like PushNext.
func (l *List[T]) Replace(sub *List[T]) {
	l.mustBeNonNil()
	l.lastCellOf(sub)
	l.node = sub.take()
}

// SetRest is equivalent to l.Rest(from).Replace(sub).
func (l *List[T]) SetRest(from int, sub *List[T]) {
	l.Rest(from).Replace(sub)
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.mustBeNonNil()
	l.node = nil
}

// Clone returns a list with the same elements. The elements themselves are
// copied by assignment.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	dst := c
	for n := l.first(); n != nil; n = n.tail.node {
		dst.node = &node[T]{head: n.head}
		dst = &dst.node.tail
	}
	return c
}

// Slice returns the elements of the list in a new slice. It returns nil for an
// empty list.
func (l *List[T]) Slice() []T {
	var s []T
	for n := l.first(); n != nil; n = n.tail.node {
		s = append(s, n.head)
	}
	return s
}
