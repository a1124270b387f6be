package queue

// Package queue implements the ordered item queue shared by both tools:
// append, removal by id, full clear, and positional reordering, with hooks
// for releasing per-item resources and invalidating stale output.
