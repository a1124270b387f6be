package ui

import "time"

// Window sizing
const (
	// WindowWidth is the default application window width
	WindowWidth = 820
	// WindowHeight is the default application window height
	WindowHeight = 600
)

// Item row sizing
const (
	// RowMinWidth is the minimum width for a queued file row
	RowMinWidth = 560
	// RowMinHeight is the minimum height for a queued file row
	RowMinHeight = 48
	// RowThumbnailSize is the side length of the square image preview
	RowThumbnailSize = 40
	// RowSizeLabelWidth is the fixed width reserved for the size column
	RowSizeLabelWidth = 80
)

// Notice timing
const (
	// NoticeDuration is how long transient status messages stay visible
	NoticeDuration = 4 * time.Second
)

// Output naming
const (
	// OutputDateFormat is the date stamp appended to suggested file names
	OutputDateFormat = "2006-01-02"
)
