package ecs

// EventKind identifies a gameplay event
type EventKind int

const (
	EventCoinCollected EventKind = iota
	EventEnemyStomped
	EventSideHit
	EventFellOut
	EventGoalReached
	EventTimeUp
	EventGameOver
	EventRestart
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin_collected"
	case EventEnemyStomped:
		return "enemy_stomped"
	case EventSideHit:
		return "side_hit"
	case EventFellOut:
		return "fell_out"
	case EventGoalReached:
		return "goal_reached"
	case EventTimeUp:
		return "time_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is raised by systems so the host can log or react without the
// simulation doing I/O
type Event struct {
	Kind   EventKind
	Frame  uint64
	Entity EntityID
	Lives  int
	Coins  int
}

// emit records an event stamped with the current frame and stage counters
func (w *World) emit(kind EventKind, id EntityID) {
	e := Event{Kind: kind, Frame: w.frame, Entity: id}
	if s, ok := w.StageState.Get(w.StageID); ok {
		e.Lives = s.Lives
		e.Coins = s.Coins
	}
	w.events = append(w.events, e)
}

// DrainEvents returns and clears the pending events
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = nil
	return out
}
