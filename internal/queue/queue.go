package queue

import "fmt"

// Queue is an ordered, mutable collection of pending items with stable
// identity. Position in the queue is the semantic compose order of the
// output document. One generic implementation backs both tools.
//
// Queue is not safe for concurrent use: all mutation happens on the UI
// event goroutine, and mutation controls are disabled while a conversion
// run walks the queue.
type Queue[T any] struct {
	items    []T
	id       func(T) string
	released func(T) // fired once per item leaving the queue
	changed  func()  // fired after every membership or order mutation
}

// New creates an empty queue. The id function must yield a stable, unique
// identifier per item.
func New[T any](id func(T) string) *Queue[T] {
	return &Queue[T]{id: id}
}

// OnRelease registers a hook fired for each item removed from the queue,
// so owned resources (preview handles) are released with their item.
func (q *Queue[T]) OnRelease(fn func(T)) {
	q.released = fn
}

// OnChange registers a hook fired after every mutation that changes
// membership or order. Tool views use it to invalidate a previously
// produced output document, which no longer reflects the queue.
func (q *Queue[T]) OnChange(fn func()) {
	q.changed = fn
}

// Append adds items to the tail, preserving their relative order. A
// duplicate id is an error; insertion never silently overwrites.
func (q *Queue[T]) Append(items ...T) error {
	seen := make(map[string]bool, len(q.items)+len(items))
	for _, existing := range q.items {
		seen[q.id(existing)] = true
	}
	for _, item := range items {
		id := q.id(item)
		if seen[id] {
			return fmt.Errorf("queue: duplicate item id %q", id)
		}
		seen[id] = true
	}

	q.items = append(q.items, items...)
	if len(items) > 0 {
		q.notifyChanged()
	}
	return nil
}

// RemoveByID removes the matching item and fires the release hook for it.
// Returns false without firing any hook when the id is absent.
func (q *Queue[T]) RemoveByID(id string) bool {
	for i, item := range q.items {
		if q.id(item) == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			q.notifyReleased(item)
			q.notifyChanged()
			return true
		}
	}
	return false
}

// Clear removes all items, firing the release hook for each.
func (q *Queue[T]) Clear() {
	if len(q.items) == 0 {
		return
	}
	removed := q.items
	q.items = nil
	for _, item := range removed {
		q.notifyReleased(item)
	}
	q.notifyChanged()
}

// MoveTo relocates the item at from to position to, shifting intervening
// items. Returns false without mutating when the indices are equal or
// either is out of bounds.
func (q *Queue[T]) MoveTo(from, to int) bool {
	if from == to || from < 0 || from >= len(q.items) || to < 0 || to >= len(q.items) {
		return false
	}

	item := q.items[from]
	q.items = append(q.items[:from], q.items[from+1:]...)

	rest := make([]T, 0, len(q.items)+1)
	rest = append(rest, q.items[:to]...)
	rest = append(rest, item)
	rest = append(rest, q.items[to:]...)
	q.items = rest

	q.notifyChanged()
	return true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Get returns the item at index i.
func (q *Queue[T]) Get(i int) T {
	return q.items[i]
}

// IndexOf returns the current position of the item with the given id, or
// -1 when absent.
func (q *Queue[T]) IndexOf(id string) int {
	for i, item := range q.items {
		if q.id(item) == id {
			return i
		}
	}
	return -1
}

// Items returns a snapshot copy of the queue in order. Conversion runs
// iterate the snapshot so a caller cannot mutate the slice under them.
func (q *Queue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue[T]) notifyReleased(item T) {
	if q.released != nil {
		q.released(item)
	}
}

func (q *Queue[T]) notifyChanged() {
	if q.changed != nil {
		q.changed()
	}
}
