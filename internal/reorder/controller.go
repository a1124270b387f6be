package reorder

// dragState enumerates the controller states
type dragState int

const (
	stateIdle dragState = iota
	stateDragging
)

// Controller translates a single pointer drag into one queue reposition.
// Only one drag is active at a time; all calls happen on the UI event
// goroutine.
type Controller struct {
	state  dragState
	source int
	length func() int // current queue length, for bounds checks at drop time
}

// NewController creates an idle controller. length reports the queue's
// current size; it is consulted at drop time because the queue may shrink
// while a drag is in flight.
func NewController(length func() int) *Controller {
	return &Controller{length: length}
}

// Begin starts a drag from the given source index. Beginning while already
// dragging rebases the drag onto the new source (single-pointer assumption).
func (c *Controller) Begin(index int) {
	c.state = stateDragging
	c.source = index
}

// Over reports the index currently hovered. It never changes state; it
// exists so drag-over handlers have an explicit hook.
func (c *Controller) Over(index int) {}

// Dragging returns the source index of the active drag, or -1 when idle.
func (c *Controller) Dragging() int {
	if c.state != stateDragging {
		return -1
	}
	return c.source
}

// Drop ends the drag. It returns the move to apply; ok is false, and no
// move must be applied, when no drag was active, the indices are equal, or
// either index is out of the queue's current bounds. A stale target after a
// mid-drag removal therefore degrades to a no-op instead of corrupting the
// queue.
func (c *Controller) Drop(target int) (from, to int, ok bool) {
	if c.state != stateDragging {
		return 0, 0, false
	}
	from = c.source
	c.state = stateIdle

	n := c.length()
	if from == target || from < 0 || from >= n || target < 0 || target >= n {
		return 0, 0, false
	}
	return from, target, true
}

// Cancel aborts an active drag without a drop.
func (c *Controller) Cancel() {
	c.state = stateIdle
}
