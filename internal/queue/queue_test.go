package queue

import (
	"fmt"
	"math/rand"
	"testing"
)

type testItem struct {
	id string
}

func newQueue() *Queue[testItem] {
	return New(func(it testItem) string { return it.id })
}

func ids(q *Queue[testItem]) []string {
	var out []string
	for _, it := range q.Items() {
		out = append(out, it.id)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAppend(t *testing.T) {
	q := newQueue()

	if err := q.Append(testItem{"a"}, testItem{"b"}, testItem{"c"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !equalIDs(ids(q), []string{"a", "b", "c"}) {
		t.Errorf("Expected order [a b c], got %v", ids(q))
	}
}

func TestAppend_DuplicateID(t *testing.T) {
	q := newQueue()

	if err := q.Append(testItem{"a"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := q.Append(testItem{"a"}); err == nil {
		t.Error("Expected error for duplicate id, got nil")
	}

	// The duplicate within one batch must also be rejected
	if err := q.Append(testItem{"b"}, testItem{"b"}); err == nil {
		t.Error("Expected error for duplicate id within batch, got nil")
	}
}

func TestRemoveByID(t *testing.T) {
	q := newQueue()
	q.Append(testItem{"a"}, testItem{"b"}, testItem{"c"})

	var released []string
	q.OnRelease(func(it testItem) { released = append(released, it.id) })

	if !q.RemoveByID("b") {
		t.Error("Expected RemoveByID to report true for present id")
	}

	if !equalIDs(ids(q), []string{"a", "c"}) {
		t.Errorf("Expected order [a c], got %v", ids(q))
	}

	if len(released) != 1 || released[0] != "b" {
		t.Errorf("Expected release hook for b, got %v", released)
	}

	// Absent id is a no-op
	if q.RemoveByID("zz") {
		t.Error("Expected RemoveByID to report false for absent id")
	}
	if len(released) != 1 {
		t.Errorf("Expected no extra release, got %v", released)
	}
}

func TestClear(t *testing.T) {
	q := newQueue()
	q.Append(testItem{"a"}, testItem{"b"})

	var released []string
	q.OnRelease(func(it testItem) { released = append(released, it.id) })

	changed := 0
	q.OnChange(func() { changed++ })

	q.Clear()

	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d items", q.Len())
	}
	if len(released) != 2 {
		t.Errorf("Expected 2 releases, got %d", len(released))
	}
	if changed != 1 {
		t.Errorf("Expected exactly one change notification, got %d", changed)
	}

	// Clearing an empty queue notifies nobody
	q.Clear()
	if changed != 1 || len(released) != 2 {
		t.Error("Expected clearing an empty queue to be a no-op")
	}
}

func TestMoveTo(t *testing.T) {
	tests := []struct {
		from     int
		to       int
		ok       bool
		expected []string
	}{
		{0, 2, true, []string{"y", "z", "x"}},
		{2, 0, true, []string{"z", "x", "y"}},
		{1, 1, false, []string{"x", "y", "z"}},
		{-1, 1, false, []string{"x", "y", "z"}},
		{0, 3, false, []string{"x", "y", "z"}},
	}

	for _, test := range tests {
		q := newQueue()
		q.Append(testItem{"x"}, testItem{"y"}, testItem{"z"})

		ok := q.MoveTo(test.from, test.to)
		if ok != test.ok {
			t.Errorf("MoveTo(%d, %d) = %v, expected %v", test.from, test.to, ok, test.ok)
		}
		if !equalIDs(ids(q), test.expected) {
			t.Errorf("MoveTo(%d, %d) order = %v, expected %v", test.from, test.to, ids(q), test.expected)
		}
	}
}

func TestOnChange_FiredPerMutation(t *testing.T) {
	q := newQueue()

	changed := 0
	q.OnChange(func() { changed++ })

	q.Append(testItem{"a"}, testItem{"b"})
	q.MoveTo(0, 1)
	q.RemoveByID("a")

	if changed != 3 {
		t.Errorf("Expected 3 change notifications, got %d", changed)
	}

	// Failed mutations do not notify
	q.MoveTo(5, 0)
	q.RemoveByID("absent")
	if changed != 3 {
		t.Errorf("Expected no notification for no-op mutations, got %d", changed)
	}
}

// TestReplay drives the queue with random admit/remove/reorder sequences and
// checks the final order against a plain slice reference model.
func TestReplay(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		q := newQueue()
		var ref []string
		next := 0

		for op := 0; op < 40; op++ {
			switch rng.Intn(3) {
			case 0: // append a small batch
				n := 1 + rng.Intn(3)
				var batch []testItem
				for i := 0; i < n; i++ {
					id := fmt.Sprintf("f%d", next)
					next++
					batch = append(batch, testItem{id})
					ref = append(ref, id)
				}
				if err := q.Append(batch...); err != nil {
					t.Fatalf("Round %d: unexpected append error: %v", round, err)
				}
			case 1: // remove a random element
				if len(ref) == 0 {
					continue
				}
				i := rng.Intn(len(ref))
				q.RemoveByID(ref[i])
				ref = append(ref[:i], ref[i+1:]...)
			case 2: // move a random element
				if len(ref) < 2 {
					continue
				}
				from := rng.Intn(len(ref))
				to := rng.Intn(len(ref))
				q.MoveTo(from, to)
				if from != to {
					id := ref[from]
					ref = append(ref[:from], ref[from+1:]...)
					rest := make([]string, 0, len(ref)+1)
					rest = append(rest, ref[:to]...)
					rest = append(rest, id)
					rest = append(rest, ref[to:]...)
					ref = rest
				}
			}
		}

		if !equalIDs(ids(q), ref) {
			t.Fatalf("Round %d: queue order %v diverged from reference %v", round, ids(q), ref)
		}
	}
}
