package model

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Item ID constants
const (
	ItemIDPrefix     = "item-"
	ItemIDNameLimit  = 24
	ItemIDNameFiller = "file"
)

// Item represents a single queued input file. The queue position of an Item
// is the authoritative compose order of the output document; there is no
// auxiliary sort key.
type Item struct {
	ID        string
	Path      string // source file, owned by the item until it is removed
	Name      string // original filename, for display
	Size      int64  // size in bytes
	SizeLabel string // human readable size, computed once at admission
	Preview   string // preview blob file path, empty when the tool has no previews
}

// NewItem builds an Item for an input file. The id is unique per call; the
// trailing filename fragment only aids debugging.
func NewItem(path string, size int64) *Item {
	name := filepath.Base(path)
	return &Item{
		ID:        ItemIDPrefix + uuid.NewString() + "-" + idNameFragment(name),
		Path:      path,
		Name:      name,
		Size:      size,
		SizeLabel: humanize.IBytes(uint64(size)),
	}
}

// idNameFragment sanitizes a filename for embedding into an item id.
func idNameFragment(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
		if b.Len() >= ItemIDNameLimit {
			break
		}
	}
	if b.Len() == 0 {
		return ItemIDNameFiller
	}
	return b.String()
}
