package convert

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/model"
)

// writeImage encodes a solid-color image of the given pixel size into dir
// and returns a queue item for it. The format follows the file extension.
func writeImage(t *testing.T, dir, name string, w, h int) *model.Item {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	var err error
	if filepath.Ext(name) == ".png" {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}
	return model.NewItem(path, int64(buf.Len()))
}

func TestImageBuilder_Build(t *testing.T) {
	dir := t.TempDir()
	items := []*model.Item{
		writeImage(t, dir, "wide.png", 200, 100),  // landscape page
		writeImage(t, dir, "tall.jpg", 80, 160),   // portrait page
		writeImage(t, dir, "square.png", 96, 96),  // width == height -> landscape
	}

	var progress [][2]int
	out, err := NewImageBuilder().Build(items, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	pages, err := PageCount(out)
	if err != nil {
		t.Fatalf("Output is not a readable PDF: %v", err)
	}
	if pages != 3 {
		t.Errorf("Expected 3 pages (one per image), got %d", pages)
	}

	if len(progress) != 3 {
		t.Fatalf("Expected 3 progress updates, got %d", len(progress))
	}
	for i, p := range progress {
		if p[0] != i+1 || p[1] != 3 {
			t.Errorf("Progress update %d = %d/%d, expected %d/3", i, p[0], p[1], i+1)
		}
	}
}

func TestImageBuilder_Build_Empty(t *testing.T) {
	if _, err := NewImageBuilder().Build(nil, nil); err != intake.ErrTooFewItems {
		t.Errorf("Expected ErrTooFewItems, got %v", err)
	}
}

func TestImageBuilder_Build_AbortsOnBadImage(t *testing.T) {
	dir := t.TempDir()

	badPath := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(badPath, []byte("this is not a png"), 0600); err != nil {
		t.Fatalf("Failed to write corrupt image: %v", err)
	}

	items := []*model.Item{
		writeImage(t, dir, "ok.png", 50, 50),
		model.NewItem(badPath, 17),
		writeImage(t, dir, "never.png", 50, 50),
	}

	var progress []int
	out, err := NewImageBuilder().Build(items, func(done, total int) {
		progress = append(progress, done)
	})

	if err == nil {
		t.Fatal("Expected error for corrupt image, got nil")
	}
	if out != nil {
		t.Error("Expected no output after aborted run")
	}
	if len(progress) != 1 {
		t.Errorf("Expected the run to stop after 1 item, got progress %v", progress)
	}
}

func TestPxToMM(t *testing.T) {
	// 96 px at 96 dpi is one inch
	if mm := 96 * PxToMM; mm < 25.39 || mm > 25.41 {
		t.Errorf("Expected 96 px to convert to 25.4 mm, got %f", mm)
	}
}
