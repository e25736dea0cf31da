package events

// EventQueue is a FIFO buffer of match events
// Single owner: pushed during a tick or input dispatch, consumed by the game loop
type EventQueue struct {
	events []MatchEvent
}

// NewEventQueue creates an empty queue with the given initial capacity
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{events: make([]MatchEvent, 0, capacity)}
}

// Push appends an event
func (eq *EventQueue) Push(event MatchEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []MatchEvent {
	if len(eq.events) == 0 {
		return nil
	}
	result := make([]MatchEvent, len(eq.events))
	copy(result, eq.events)
	eq.events = eq.events[:0]
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
