// Package errs declares the error types raised by the list package.
package errs

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrCyclicSplice is raised when a list is spliced into one of its own
	// tails, which would link a cell back to itself.
	ErrCyclicSplice = errors.New("cannot splice a list into its own tail")
	// ErrNilList is raised when a method that modifies a list is called on a
	// nil *List.
	ErrNilList = errors.New("cannot modify a nil list")
	// ErrIteratorExhausted is raised when Elem or Next is called on an
	// iterator that has no element.
	ErrIteratorExhausted = errors.New("iterator has no element")
)

// OutOfRange encodes an error where a value is not in its valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf(
			"out of range: %v has no valid value, but is %v", e.What, e.Actual)
	}
	return fmt.Sprintf(
		"out of range: %s must be from %d to %d, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// IndexOutOfRange returns an OutOfRange error for an index i into a sequence
// of length n.
func IndexOutOfRange(i, n int) OutOfRange {
	return OutOfRange{
		What:     "index",
		ValidLow: 0, ValidHigh: n - 1, Actual: strconv.Itoa(i)}
}
