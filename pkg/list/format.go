package list

import (
	"fmt"
	"strings"
)

// String returns the representation of l in the form List [v0, v1, Nil].
// Elements are formatted with the %v verb.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("List [")
	for v := range l.Values() {
		fmt.Fprintf(&b, "%v, ", v)
	}
	b.WriteString("Nil]")
	return b.String()
}

// GoString returns the structural representation of l, such as
// Cons(1, Cons(2, Nil)). It is used by the %#v verb.
func (l *List[T]) GoString() string {
	var b strings.Builder
	depth := 0
	for v := range l.Values() {
		fmt.Fprintf(&b, "Cons(%#v, ", v)
		depth++
	}
	b.WriteString("Nil")
	b.WriteString(strings.Repeat(")", depth))
	return b.String()
}
