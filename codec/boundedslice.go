package codec

// BoundedSlice is a slice with a fixed maximum length, pre-allocated once
// at construction so that parsing a frame never grows a container past the
// caps the wire format allows. Go has no const-generic array length, so
// this plays the role InlineVec<T, const N: usize> plays on the Rust side
// via a single capacity-bounded allocation instead of an inline array.
type BoundedSlice[T any] struct {
	items []T
	max   int
}

// NewBoundedSlice returns an empty BoundedSlice that rejects pushes once it
// holds max elements.
func NewBoundedSlice[T any](max int) BoundedSlice[T] {
	return BoundedSlice[T]{items: make([]T, 0, max), max: max}
}

// Push appends v. It returns false without modifying the slice if the
// slice is already at capacity.
func (b *BoundedSlice[T]) Push(v T) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, v)
	return true
}

// Len returns the number of elements currently held.
func (b *BoundedSlice[T]) Len() int {
	return len(b.items)
}

// Slice returns the underlying elements. The returned slice aliases b's
// storage and must not be retained past b's mutation.
func (b *BoundedSlice[T]) Slice() []T {
	return b.items
}
