package core

// EventKind classifies something that happened during a frame.
type EventKind int

const (
	EventBlockHit EventKind = iota
	EventBlockDestroyed
	EventBallLost
	EventLifeLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBlockHit:
		return "block_hit"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventBallLost:
		return "ball_lost"
	case EventLifeLost:
		return "life_lost"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation so the platform can react (log, etc.)
// without the game depending on it.
type Event struct {
	Kind  EventKind
	Pos   Vec2 // Where it happened, in world units
	Score int  // Score after the event
	Lives int  // Lives after the event
}
