package convert

import "github.com/docdesk/docdesk/internal/model"

// Progress is invoked after each fully processed item, with done strictly
// increasing from 1 to total within one run.
type Progress func(done, total int)

// Builder turns an ordered snapshot of queued items into one output
// document. A builder is stateless across runs; any failure aborts the
// whole run and nothing is kept.
type Builder interface {
	// MinItems is the smallest queue size the builder accepts.
	MinItems() int

	// OutputExt is the file extension of the produced document.
	OutputExt() string

	// Build processes items strictly in slice order and returns the
	// serialized output document.
	Build(items []*model.Item, progress Progress) ([]byte, error)
}
