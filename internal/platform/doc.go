package platform

// Package platform contains OS integration glue: filesystem helpers and
// opening or revealing produced documents with the system file manager and
// default viewer.
