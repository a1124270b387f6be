package convert

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/model"
)

// stubBuilder lets tests control run duration and outcome.
type stubBuilder struct {
	min     int
	fail    error
	started chan struct{}
	release chan struct{}
}

func (b *stubBuilder) MinItems() int     { return b.min }
func (b *stubBuilder) OutputExt() string { return ".pdf" }

func (b *stubBuilder) Build(items []*model.Item, progress Progress) ([]byte, error) {
	if b.started != nil {
		close(b.started)
	}
	if b.release != nil {
		<-b.release
	}
	for i := range items {
		if progress != nil {
			progress(i+1, len(items))
		}
	}
	if b.fail != nil {
		return nil, b.fail
	}
	return []byte("output"), nil
}

func stubItems(n int) []*model.Item {
	var out []*model.Item
	for i := 0; i < n; i++ {
		out = append(out, &model.Item{ID: string(rune('a' + i))})
	}
	return out
}

func TestService_Start_TooFewItems(t *testing.T) {
	s := NewService(&stubBuilder{min: 2})

	err := s.Start(stubItems(1), nil)
	if err == nil {
		t.Fatal("Expected error below the minimum, got nil")
	}
	if !errors.Is(err, intake.ErrTooFewItems) {
		t.Errorf("Expected ErrTooFewItems in chain, got %v", err)
	}
}

func TestService_Start_RefusesSecondRun(t *testing.T) {
	b := &stubBuilder{min: 1, started: make(chan struct{}), release: make(chan struct{})}
	s := NewService(b)

	finished := make(chan []byte, 1)
	if err := s.Start(stubItems(1), func(out []byte) { finished <- out }); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	<-b.started
	if !s.Running() {
		t.Error("Expected Running to report true mid-run")
	}

	if err := s.Start(stubItems(1), nil); err != ErrRunInFlight {
		t.Errorf("Expected ErrRunInFlight for a second trigger, got %v", err)
	}

	close(b.release)
	select {
	case out := <-finished:
		if string(out) != "output" {
			t.Errorf("Expected output bytes, got %q", out)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not finish")
	}

	// A finished run frees the slot for the next one
	for i := 0; i < 50 && s.Running(); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if s.Running() {
		t.Error("Expected Running to report false after completion")
	}
}

func TestService_PublishesProgressPerItem(t *testing.T) {
	s := NewService(&stubBuilder{min: 1})

	var mu sync.Mutex
	var states []model.RunState
	s.SetUpdateCallback(func(st *model.RunState) {
		mu.Lock()
		states = append(states, *st)
		mu.Unlock()
	})

	finished := make(chan []byte, 1)
	if err := s.Start(stubItems(3), func(out []byte) { finished <- out }); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not finish")
	}

	mu.Lock()
	defer mu.Unlock()

	// Initial Running state, one update per item, final Done state
	if len(states) != 5 {
		t.Fatalf("Expected 5 state updates, got %d", len(states))
	}
	if states[0].Status != model.RunStatusRunning || states[0].Current != 0 {
		t.Errorf("Expected initial Running 0/3, got %s %d", states[0].Status, states[0].Current)
	}
	for i := 1; i <= 3; i++ {
		if states[i].Current != i {
			t.Errorf("Update %d: expected Current=%d, got %d", i, i, states[i].Current)
		}
	}
	last := states[len(states)-1]
	if last.Status != model.RunStatusDone {
		t.Errorf("Expected final status Done, got %s", last.Status)
	}
}

func TestService_NotRunningWhenTerminalStatePublished(t *testing.T) {
	cases := []struct {
		name string
		fail error
	}{
		{"done", nil},
		{"failed", errors.New("decode failed")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewService(&stubBuilder{min: 1, fail: tc.fail})

			var mu sync.Mutex
			var runningAtTerminal *bool
			s.SetUpdateCallback(func(st *model.RunState) {
				if !st.Status.IsFinished() {
					return
				}
				r := s.Running()
				mu.Lock()
				runningAtTerminal = &r
				mu.Unlock()
			})

			finished := make(chan []byte, 1)
			if err := s.Start(stubItems(1), func(out []byte) { finished <- out }); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			select {
			case <-finished:
			case <-time.After(2 * time.Second):
				t.Fatal("Run did not finish")
			}

			mu.Lock()
			defer mu.Unlock()
			if runningAtTerminal == nil {
				t.Fatal("Expected a terminal state update, got none")
			}
			// Controls re-enabled on the terminal update consult Running()
			if *runningAtTerminal {
				t.Error("Expected Running to report false when the terminal state is published")
			}
		})
	}
}

func TestService_FailedRunPublishesFailure(t *testing.T) {
	runErr := errors.New("decode failed")
	s := NewService(&stubBuilder{min: 1, fail: runErr})

	var mu sync.Mutex
	var last model.RunState
	s.SetUpdateCallback(func(st *model.RunState) {
		mu.Lock()
		last = *st
		mu.Unlock()
	})

	finished := make(chan []byte, 1)
	if err := s.Start(stubItems(2), func(out []byte) { finished <- out }); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case out := <-finished:
		if out != nil {
			t.Error("Expected nil output for failed run")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	if last.Status != model.RunStatusFailed {
		t.Errorf("Expected final status Failed, got %s", last.Status)
	}
	if last.LastError == "" {
		t.Error("Expected LastError to be populated")
	}
}
