package reorder

// Package reorder implements the drag-reorder state machine for the queue
// list, independent of any particular pointer or gesture API so it can be
// tested without simulating input events.
