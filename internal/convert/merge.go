package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/model"
)

// Merge constants
const (
	MergeMinItems  = 2
	MergeOutputExt = ".pdf"
)

// Merger concatenates the pages of every queued PDF, in queue order, into
// one output document.
type Merger struct {
	conf *pdfmodel.Configuration
}

// NewMerger creates a merger with relaxed validation, so slightly
// off-spec documents from consumer scanners still merge.
func NewMerger() *Merger {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	return &Merger{conf: conf}
}

// MinItems returns the merge precondition: at least two documents.
func (m *Merger) MinItems() int { return MergeMinItems }

// OutputExt returns the output file extension.
func (m *Merger) OutputExt() string { return MergeOutputExt }

// Build reads and validates each source in order, reporting progress per
// item, then serializes the concatenation. Page order in the output is the
// concatenation of the inputs' internal page orders, in queue order.
func (m *Merger) Build(items []*model.Item, progress Progress) ([]byte, error) {
	if len(items) < m.MinItems() {
		return nil, intake.ErrTooFewItems
	}

	total := len(items)
	sources := make([]io.ReadSeeker, 0, total)
	for i, item := range items {
		data, err := os.ReadFile(item.Path)
		if err != nil {
			return nil, fmt.Errorf("convert: reading %s: %w", item.Name, err)
		}

		ctx, err := api.ReadContext(bytes.NewReader(data), m.conf)
		if err != nil {
			return nil, fmt.Errorf("convert: parsing %s: %w", item.Name, err)
		}
		if err := api.ValidateContext(ctx); err != nil {
			return nil, fmt.Errorf("convert: validating %s: %w", item.Name, err)
		}

		sources = append(sources, bytes.NewReader(data))
		if progress != nil {
			progress(i+1, total)
		}
	}

	var out bytes.Buffer
	if err := api.MergeRaw(sources, &out, false, m.conf); err != nil {
		return nil, fmt.Errorf("convert: merging: %w", err)
	}
	return out.Bytes(), nil
}

// PageCount reports the number of pages in a serialized PDF document.
func PageCount(data []byte) (int, error) {
	ctx, err := api.ReadContext(bytes.NewReader(data), pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("convert: reading document: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return 0, fmt.Errorf("convert: validating document: %w", err)
	}
	return ctx.PageCount, nil
}
