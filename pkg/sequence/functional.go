package sequence

import (
	"iter"
	"sort"
)

// Iterator is a generic, immutable, chainable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator from a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// FromMap creates a new Iterator over the values of a map. Iteration order
// follows Go map order and is not deterministic.
func FromMap[T any, K comparable](data map[K]T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Seq returns the underlying sequence function for the iterator.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Pull pulls the next element from the iterator and returns it along with a
// boolean indicating whether the element was valid.
func (i *Iterator[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(i.Seq())
}

// Collect drains the iterator into a slice.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Sort returns a new Iterator with elements sorted according to less.
func (i *Iterator[T]) Sort(less func(a, b T) bool) *Iterator[T] {
	data := i.Collect()
	sort.SliceStable(data, func(a, b int) bool {
		return less(data[a], data[b])
	})
	return From(data)
}

// Each applies the action to every element as it flows through, passing the
// element downstream unchanged.
func (i *Iterator[T]) Each(action func(T)) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			i.seq(func(v T) bool {
				action(v)
				return yield(v)
			})
		},
	}
}

// Filter returns a new Iterator containing only elements that satisfy the
// predicate.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			i.seq(func(v T) bool {
				if pred(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Count drains the iterator and returns the number of elements.
func (i *Iterator[T]) Count() int {
	n := 0
	i.seq(func(T) bool {
		n++
		return true
	})
	return n
}

// ToArray maps every element through callback into a new slice.
func ToArray[T any, S any](it *Iterator[T], callback func(T) S) []S {
	var out []S
	it.seq(func(v T) bool {
		out = append(out, callback(v))
		return true
	})
	return out
}
