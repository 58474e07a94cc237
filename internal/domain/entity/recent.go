package entity

// RecentList keeps the most recent items up to a fixed capacity.
// Pushing past capacity evicts the oldest item.
type RecentList[T any] struct {
	items []T
	limit int
}

// NewRecentList creates a list holding at most limit items.
// Panics if limit is not positive.
func NewRecentList[T any](limit int) RecentList[T] {
	if limit <= 0 {
		panic("entity: recent list limit must be positive")
	}
	return RecentList[T]{items: make([]T, 0, limit), limit: limit}
}

// Push appends v, evicting the oldest item when full
func (l *RecentList[T]) Push(v T) {
	if len(l.items) == l.limit {
		copy(l.items, l.items[1:])
		l.items = l.items[:len(l.items)-1]
	}
	l.items = append(l.items, v)
}

// Items returns the items oldest first. The slice is only valid until the next Push.
func (l *RecentList[T]) Items() []T { return l.items }

// Len returns the number of items
func (l *RecentList[T]) Len() int { return len(l.items) }

// Limit returns the capacity
func (l *RecentList[T]) Limit() int { return l.limit }

// Empty returns true if the list has no items
func (l *RecentList[T]) Empty() bool { return len(l.items) == 0 }

// First returns the oldest item
func (l *RecentList[T]) First() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	return l.items[0], true
}

// Clear removes every item
func (l *RecentList[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}
