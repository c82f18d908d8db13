package list

// Equal returns whether two lists have the same length and equal elements in
// the same order. A nil list is equal to an empty list.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for na, nb := a.first(), b.first(); na != nil; na, nb = na.tail.node, nb.tail.node {
		if !eq(na.head, nb.head) {
			return false
		}
	}
	return true
}
