package convert

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/model"
)

// Image composition constants
const (
	ImagesMinItems  = 1
	ImagesOutputExt = ".pdf"

	// PxToMM converts pixel dimensions at 96 dpi to millimeters, so a page
	// exactly fits its image at natural size.
	PxToMM = 25.4 / 96.0

	pdfUnit           = "mm"
	orientLandscape   = "L"
	orientPortrait    = "P"
	imageTypePNG      = "PNG"
	imageTypeJPEG     = "JPG"
	defaultPageFormat = "A4"
)

// ImageBuilder composes one PDF page per queued image, sized to the image
// itself.
type ImageBuilder struct{}

// NewImageBuilder creates an image-to-PDF builder.
func NewImageBuilder() *ImageBuilder {
	return &ImageBuilder{}
}

// MinItems returns the conversion precondition: at least one image.
func (b *ImageBuilder) MinItems() int { return ImagesMinItems }

// OutputExt returns the output file extension.
func (b *ImageBuilder) OutputExt() string { return ImagesOutputExt }

// Build decodes each image's dimensions, appends a page of exactly that
// size (landscape when the converted width is >= height) and places the
// image to fill it, strictly in queue order.
func (b *ImageBuilder) Build(items []*model.Item, progress Progress) ([]byte, error) {
	if len(items) < b.MinItems() {
		return nil, intake.ErrTooFewItems
	}

	pdf := gofpdf.New(orientPortrait, pdfUnit, defaultPageFormat, "")
	total := len(items)

	for i, item := range items {
		data, err := os.ReadFile(item.Path)
		if err != nil {
			return nil, fmt.Errorf("convert: reading %s: %w", item.Name, err)
		}

		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("convert: decoding %s: %w", item.Name, err)
		}

		w := float64(cfg.Width) * PxToMM
		h := float64(cfg.Height) * PxToMM

		// gofpdf expects the page size in portrait form and swaps it for
		// landscape pages itself.
		orientation := orientPortrait
		size := gofpdf.SizeType{Wd: w, Ht: h}
		if w >= h {
			orientation = orientLandscape
			size = gofpdf.SizeType{Wd: h, Ht: w}
		}
		pdf.AddPageFormat(orientation, size)

		opts := gofpdf.ImageOptions{ImageType: imageTypeFor(item.Name), ReadDpi: false}
		pdf.RegisterImageOptionsReader(item.ID, opts, bytes.NewReader(data))
		pdf.ImageOptions(item.ID, 0, 0, w, h, false, opts, 0, "")

		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("convert: placing %s: %w", item.Name, err)
		}
		if progress != nil {
			progress(i+1, total)
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("convert: serializing: %w", err)
	}
	return out.Bytes(), nil
}

// imageTypeFor maps a filename to the image type tag gofpdf expects.
func imageTypeFor(name string) string {
	if strings.ToLower(filepath.Ext(name)) == ".png" {
		return imageTypePNG
	}
	return imageTypeJPEG
}
