package convert

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/model"
)

// Run id prefix
const (
	RunIDPrefix = "run-"
)

// ErrRunInFlight means a conversion was triggered while one was already
// running for the same tool.
var ErrRunInFlight = fmt.Errorf("convert: a run is already in progress")

// Service drives conversion runs for one tool instance. At most one run is
// in flight at a time; the UI additionally disables the trigger control for
// the duration. Each run walks a queue snapshot strictly in order and
// publishes an updated RunState after every completed item.
type Service struct {
	builder  Builder
	mu       sync.Mutex
	running  bool
	onUpdate func(*model.RunState) // callback for UI updates
}

// NewService creates a conversion service around a builder.
func NewService(builder Builder) *Service {
	return &Service{builder: builder}
}

// Builder returns the service's builder.
func (s *Service) Builder() Builder {
	return s.builder
}

// SetUpdateCallback sets the callback function for run state updates. The
// callback fires on the run goroutine; UI code must marshal to its own
// thread.
func (s *Service) SetUpdateCallback(callback func(*model.RunState)) {
	s.onUpdate = callback
}

// Running reports whether a run is currently in flight.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start triggers a run over the given queue snapshot. It returns
// ErrRunInFlight when one is already running, or the builder's
// precondition error for an undersized queue, before any work begins. The
// run itself executes on a new goroutine; done receives the output
// document on success or nil on failure, after the final state was
// published.
func (s *Service) Start(items []*model.Item, done func(output []byte)) error {
	if len(items) < s.builder.MinItems() {
		return fmt.Errorf("convert: need at least %d files: %w", s.builder.MinItems(), intake.ErrTooFewItems)
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunInFlight
	}
	s.running = true
	s.mu.Unlock()

	state := &model.RunState{
		ID:     RunIDPrefix + uuid.NewString(),
		Status: model.RunStatusRunning,
		Total:  len(items),
	}
	s.notifyUpdate(state)

	go func() {
		output, err := s.builder.Build(items, func(doneItems, total int) {
			state.Current = doneItems
			state.Total = total
			s.notifyUpdate(state)
		})

		// The run slot must be free before the terminal state goes out, so
		// observers that consult Running() on a finished run see false.
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()

		if err != nil {
			// All-or-nothing: partial output is dropped, the queue is untouched
			log.Printf("Run %s failed after %d/%d items: %v", state.ID, state.Current, state.Total, err)
			state.Status = model.RunStatusFailed
			state.LastError = err.Error()
			s.notifyUpdate(state)
			if done != nil {
				done(nil)
			}
			return
		}

		log.Printf("Run %s completed: %d items, %d output bytes", state.ID, state.Total, len(output))
		state.Status = model.RunStatusDone
		s.notifyUpdate(state)
		if done != nil {
			done(output)
		}
	}()

	return nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(state *model.RunState) {
	if s.onUpdate != nil {
		s.onUpdate(state)
	}
}
