package intake

// Package intake filters incoming files by type and enforces per-tool
// capacity before items are admitted to the queue. The historical behavior
// split between the two tools (whole-batch rejection vs partial admission,
// capped vs unbounded) is unified here: both tools admit partially and both
// are capped.
