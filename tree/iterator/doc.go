// Package iterator provides tree iterators for use
// by tree implementations.
package iterator

// Iterator describes the common interface for the forward-only
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}
