package handle

// Package handle manages the lifecycle of temporary blob files: preview
// thumbnails owned by queued items and the single finished output document
// per tool. Acquire and Release are the only mutation points; release is
// idempotent.
