package collision

import (
	"github.com/vova616/collision/vect"
)

type EventKind uint8

const (
	// Emitted before a resolution mutates either body.
	EventKind_PreCollision = EventKind(iota)
	// Emitted after the resolution has been applied.
	EventKind_PostCollision
)

func (k EventKind) String() string {
	switch k {
	case EventKind_PreCollision:
		return "precollision"
	case EventKind_PostCollision:
		return "postcollision"
	default:
		return "unknown"
	}
}

// CollisionEvent is delivered to the Handler of Self.
type CollisionEvent struct {
	Kind  EventKind
	Self  *Collider
	Other *Collider
	Side  Side
	Mtv   vect.Vect
}

type CollisionHandler interface {
	PreCollision(ev CollisionEvent)
	PostCollision(ev CollisionEvent)
}

// CollisionHandlerFuncs adapts plain functions to a CollisionHandler.
// Nil fields are skipped.
type CollisionHandlerFuncs struct {
	Pre  func(ev CollisionEvent)
	Post func(ev CollisionEvent)
}

func (h CollisionHandlerFuncs) PreCollision(ev CollisionEvent) {
	if h.Pre != nil {
		h.Pre(ev)
	}
}

func (h CollisionHandlerFuncs) PostCollision(ev CollisionEvent) {
	if h.Post != nil {
		h.Post(ev)
	}
}

// mirroredEvents returns the event for a as seen with side and v, followed
// by the event for b with the opposite side and the negated vector.
func mirroredEvents(kind EventKind, a, b *Collider, side Side, v vect.Vect) [2]CollisionEvent {
	return [2]CollisionEvent{
		{Kind: kind, Self: a, Other: b, Side: side, Mtv: v},
		{Kind: kind, Self: b, Other: a, Side: side.Opposite(), Mtv: vect.Neg(v)},
	}
}
