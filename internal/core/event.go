package core

// EventKind identifies something noteworthy that happened during a tick.
// Platforms use events for sound and logging; games never depend on them.
type EventKind int

const (
	EventNone EventKind = iota
	// EventLifeLost fires when a ball touches a growing capture line.
	EventLifeLost
	// EventCaptureCommitted fires when a capture line reaches both edges
	// of its region and the region is split.
	EventCaptureCommitted
	// EventGoalReached fires once when the captured fraction meets the goal.
	EventGoalReached
	// EventLevelAdvance fires when the next level starts.
	EventLevelAdvance
	// EventGameOver fires once when the game ends.
	EventGameOver
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventLifeLost:
		return "life_lost"
	case EventCaptureCommitted:
		return "capture"
	case EventGoalReached:
		return "goal_reached"
	case EventLevelAdvance:
		return "level_advance"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Event is a single occurrence reported by a game step.
type Event struct {
	Kind  EventKind
	Level int // Level the event happened on
	Lives int // Lives remaining after the event
	Area  int // Captured area, for EventCaptureCommitted
}
