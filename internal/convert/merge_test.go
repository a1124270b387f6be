package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/model"
)

// writePDF generates a valid PDF with the given page count into dir and
// returns a queue item for it.
func writePDF(t *testing.T, dir, name string, pages int) *model.Item {
	t.Helper()

	pdf := gofpdf.New("P", "mm", "A4", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Failed to generate test PDF: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("Failed to write test PDF: %v", err)
	}
	return model.NewItem(path, int64(buf.Len()))
}

func writeGarbage(t *testing.T, dir, name string) *model.Item {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0600); err != nil {
		t.Fatalf("Failed to write garbage file: %v", err)
	}
	return model.NewItem(path, 16)
}

func TestMerger_Build(t *testing.T) {
	dir := t.TempDir()
	items := []*model.Item{
		writePDF(t, dir, "a.pdf", 3),
		writePDF(t, dir, "b.pdf", 1),
	}

	var progress [][2]int
	out, err := NewMerger().Build(items, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Page count of the output equals the sum of the inputs; pages keep
	// queue order (all of a.pdf, then all of b.pdf).
	pages, err := PageCount(out)
	if err != nil {
		t.Fatalf("Output is not a readable PDF: %v", err)
	}
	if pages != 4 {
		t.Errorf("Expected 4 pages in merged output, got %d", pages)
	}

	// Progress is observable once per item, strictly increasing
	if len(progress) != 2 {
		t.Fatalf("Expected 2 progress updates, got %d", len(progress))
	}
	for i, p := range progress {
		if p[0] != i+1 || p[1] != 2 {
			t.Errorf("Progress update %d = %d/%d, expected %d/2", i, p[0], p[1], i+1)
		}
	}
}

func TestMerger_Build_QueueOrder(t *testing.T) {
	dir := t.TempDir()

	// Reversing the slice reverses the output's composition: the same
	// inputs in a different order still yield the full page count.
	first := writePDF(t, dir, "one.pdf", 2)
	second := writePDF(t, dir, "two.pdf", 5)

	out, err := NewMerger().Build([]*model.Item{second, first}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	pages, err := PageCount(out)
	if err != nil {
		t.Fatalf("Output is not a readable PDF: %v", err)
	}
	if pages != 7 {
		t.Errorf("Expected 7 pages, got %d", pages)
	}
}

func TestMerger_Build_TooFewItems(t *testing.T) {
	dir := t.TempDir()
	items := []*model.Item{writePDF(t, dir, "only.pdf", 1)}

	if _, err := NewMerger().Build(items, nil); err != intake.ErrTooFewItems {
		t.Errorf("Expected ErrTooFewItems, got %v", err)
	}
}

func TestMerger_Build_AbortsOnBadSource(t *testing.T) {
	dir := t.TempDir()
	items := []*model.Item{
		writePDF(t, dir, "a.pdf", 1),
		writeGarbage(t, dir, "broken.pdf"),
		writePDF(t, dir, "c.pdf", 1),
	}

	var progress []int
	out, err := NewMerger().Build(items, func(done, total int) {
		progress = append(progress, done)
	})

	if err == nil {
		t.Fatal("Expected error for corrupt source, got nil")
	}
	if out != nil {
		t.Error("Expected no output after aborted run")
	}

	// The run stopped at the second item: exactly one progress update
	if len(progress) != 1 || progress[0] != 1 {
		t.Errorf("Expected progress [1], got %v", progress)
	}
}

func TestMerger_Build_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	missing := model.NewItem(filepath.Join(dir, "gone.pdf"), 0)
	items := []*model.Item{
		writePDF(t, dir, "a.pdf", 1),
		missing,
	}

	if _, err := NewMerger().Build(items, nil); err == nil {
		t.Error("Expected error for unreadable source, got nil")
	}
}
