package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires the file queue, admission gate, conversion services
// and blob registry into two tool screens plus a landing page, and renders
// settings and notices. All UI strings are localized via Localization.
