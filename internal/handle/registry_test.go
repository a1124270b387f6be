package handle

import (
	"os"
	"testing"
)

func TestAcquireRelease(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer r.Close()

	h, err := r.Acquire([]byte("blob"), ".pdf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if h.ID == "" || h.Path == "" {
		t.Error("Expected non-empty handle id and path")
	}

	data, err := os.ReadFile(h.Path)
	if err != nil {
		t.Fatalf("Expected blob file to exist: %v", err)
	}
	if string(data) != "blob" {
		t.Errorf("Expected blob content 'blob', got %q", data)
	}

	r.Release(h.ID)

	if _, err := os.Stat(h.Path); !os.IsNotExist(err) {
		t.Error("Expected blob file to be removed on release")
	}
	if r.Count() != 0 {
		t.Errorf("Expected 0 live handles, got %d", r.Count())
	}
}

func TestRelease_Idempotent(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer r.Close()

	h, err := r.Acquire([]byte("x"), ".png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	r.Release(h.ID)
	r.Release(h.ID)          // second release of the same handle
	r.Release("blob-nobody") // unknown handle

	if r.Count() != 0 {
		t.Errorf("Expected 0 live handles, got %d", r.Count())
	}
}

func TestReleaseAll(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer r.Close()

	var paths []string
	for i := 0; i < 3; i++ {
		h, err := r.Acquire([]byte{byte(i)}, ".bin")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		paths = append(paths, h.Path)
	}

	r.ReleaseAll()

	if r.Count() != 0 {
		t.Errorf("Expected 0 live handles after ReleaseAll, got %d", r.Count())
	}
	for _, p := range paths {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("Expected %s to be removed", p)
		}
	}
}

func TestPath(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer r.Close()

	h, _ := r.Acquire([]byte("y"), ".jpg")

	if r.Path(h.ID) != h.Path {
		t.Errorf("Expected Path to return %s, got %s", h.Path, r.Path(h.ID))
	}

	r.Release(h.ID)
	if r.Path(h.ID) != "" {
		t.Error("Expected empty path for released handle")
	}
}
