package core

// EventKind tags an Event.
type EventKind uint8

const (
	EventTargetReached EventKind = iota + 1
	EventResetRequested
	EventNextLevelRequested
	EventPathCheckRequested
	EventGameOver
	EventLevelLoaded
	EventTrailDeposited
	EventTurned
)

func (k EventKind) String() string {
	switch k {
	case EventTargetReached:
		return "target_reached"
	case EventResetRequested:
		return "reset_requested"
	case EventNextLevelRequested:
		return "next_level_requested"
	case EventPathCheckRequested:
		return "path_check_requested"
	case EventGameOver:
		return "game_over"
	case EventLevelLoaded:
		return "level_loaded"
	case EventTrailDeposited:
		return "trail_deposited"
	case EventTurned:
		return "turned"
	default:
		return "unknown"
	}
}

// Event is something that happened during a tick.
type Event struct {
	Kind  EventKind
	Cell  Cell
	Level int
	Dir   Dir
}

// EventQueue passes events between the stages of one tick.
//
// Stages consume pending events with Take. Every pushed event is also kept in
// order until Flush, which ends the tick and drops anything left pending.
type EventQueue struct {
	pending []Event
	log     []Event
}

// Push raises an event.
func (q *EventQueue) Push(e Event) {
	q.pending = append(q.pending, e)
	q.log = append(q.log, e)
}

// Take removes and returns the oldest pending event of the given kind.
func (q *EventQueue) Take(kind EventKind) (Event, bool) {
	for i, e := range q.pending {
		if e.Kind == kind {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return e, true
		}
	}
	return Event{}, false
}

// TakeAll removes all pending events of the given kind and reports whether
// there were any.
func (q *EventQueue) TakeAll(kind EventKind) bool {
	found := false
	for {
		if _, ok := q.Take(kind); !ok {
			return found
		}
		found = true
	}
}

// Pending returns the number of events not yet consumed.
func (q *EventQueue) Pending() int {
	return len(q.pending)
}

// Flush ends the tick and returns every event raised during it.
func (q *EventQueue) Flush() []Event {
	out := q.log
	q.pending = nil
	q.log = nil
	return out
}
