package intake

import (
	"errors"
	"path/filepath"
	"strings"
)

// Capacity limits per tool
const (
	MaxPDFItems   = 15
	MaxImageItems = 50
)

// Validation errors surfaced inline by the UI. They abort only the
// triggering action, never the tool instance.
var (
	// ErrNoValidFiles means nothing in an incoming batch passed the type filter
	ErrNoValidFiles = errors.New("intake: no valid files in selection")

	// ErrCapacityReached means the queue is full and nothing was admitted
	ErrCapacityReached = errors.New("intake: maximum number of files reached")

	// ErrTooFewItems means a conversion was triggered below the tool's minimum
	ErrTooFewItems = errors.New("intake: not enough files queued")
)

// Candidate is an incoming file before admission: the raw handle metadata
// the picker or the drop event supplies.
type Candidate struct {
	Path string
	Name string
	Size int64
	MIME string // declared content type, may be empty for dropped files
}

// Policy fixes the allow-list and capacity of one tool's gate.
type Policy struct {
	Exts     []string // lowercase, with leading dot
	MIMEs    []string
	MaxItems int
}

// PDFPolicy admits PDF documents, capped at MaxPDFItems.
var PDFPolicy = Policy{
	Exts:     []string{".pdf"},
	MIMEs:    []string{"application/pdf"},
	MaxItems: MaxPDFItems,
}

// ImagePolicy admits JPEG and PNG images, capped at MaxImageItems. Both
// tools use the same partial-admission behavior.
var ImagePolicy = Policy{
	Exts:     []string{".jpg", ".jpeg", ".png"},
	MIMEs:    []string{"image/jpeg", "image/jpg", "image/png"},
	MaxItems: MaxImageItems,
}

// Admission is the outcome of filtering one incoming batch.
type Admission struct {
	Accepted     []Candidate
	RejectedType int  // candidates dropped by the type filter
	Overflow     int  // valid candidates dropped because the queue was full
	AtCapacity   bool // queue was already full, nothing admitted
}

// Err maps the admission outcome onto the validation error taxonomy, or
// nil when at least one file was admitted without loss.
func (a Admission) Err() error {
	switch {
	case a.AtCapacity:
		return ErrCapacityReached
	case len(a.Accepted) == 0:
		return ErrNoValidFiles
	default:
		return nil
	}
}

// Matches reports whether a candidate passes the policy's type filter, by
// declared content type or by filename suffix.
func (p Policy) Matches(c Candidate) bool {
	mime := strings.ToLower(c.MIME)
	for _, m := range p.MIMEs {
		if mime == m {
			return true
		}
	}
	ext := strings.ToLower(filepath.Ext(c.Name))
	for _, e := range p.Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Admit filters an incoming batch against the policy and the queue's
// current size. Valid files fill the remaining capacity in input order;
// the rest are counted as overflow.
func (p Policy) Admit(candidates []Candidate, current int) Admission {
	var a Admission

	free := p.MaxItems - current
	if free <= 0 {
		a.AtCapacity = true
		return a
	}

	for _, c := range candidates {
		if !p.Matches(c) {
			a.RejectedType++
			continue
		}
		if len(a.Accepted) >= free {
			a.Overflow++
			continue
		}
		a.Accepted = append(a.Accepted, c)
	}
	return a
}
