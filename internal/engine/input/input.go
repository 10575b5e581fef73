// Package input defines the viewer's input events and the field-of-view zoom state.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventScroll
	EventKeyDown
)

// Key is a backend-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyScreenshot
	KeySpin
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	// ScrollY is the signed vertical wheel delta; positive away from the user.
	ScrollY float64
}

// Queue collects events during a backend's poll phase. The frame loop drains it
// between frames on the same thread, so it needs no locking.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the queued events and empties the queue.
// The returned slice is only valid until the next Push.
func (q *Queue) Drain() []Event {
	events := q.events
	q.events = q.events[:0]
	return events
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
