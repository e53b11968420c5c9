package collision

import (
	"fmt"
	"strings"

	"github.com/vova616/collision/vect"
)

// CollisionType is the kinematic class of a body.
type CollisionType uint8

const (
	// Fully simulated, exchanges impulses and absorbs positional correction.
	CollisionType_Active = CollisionType(iota)
	// Detected for events only, never moved by a resolution.
	CollisionType_Passive
	// Infinite mass and inertia. Moves only if something else moves it.
	CollisionType_Fixed
)

func (ct CollisionType) String() string {
	switch ct {
	case CollisionType_Active:
		return "Active"
	case CollisionType_Passive:
		return "Passive"
	case CollisionType_Fixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// Strategy selects how a contact is resolved.
type Strategy uint8

const (
	// Positional push-out with velocity cancellation, no mass weighting.
	Strategy_Box = Strategy(iota)
	// Impulse response with restitution, friction and optional rotation.
	Strategy_RigidBody
)

func (s Strategy) String() string {
	switch s {
	case Strategy_Box:
		return "box"
	case Strategy_RigidBody:
		return "rigidbody"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	switch s {
	case Strategy_Box, Strategy_RigidBody:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
}

func (s *Strategy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "box":
		*s = Strategy_Box
	case "rigidbody", "rigid_body", "rigid-body":
		*s = Strategy_RigidBody
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, text)
	}
	return nil
}

// Side is the qualitative side of a contact, used only in event payloads.
type Side uint8

const (
	Side_None = Side(iota)
	Side_Top
	Side_Bottom
	Side_Left
	Side_Right
)

func (side Side) String() string {
	switch side {
	case Side_Top:
		return "Top"
	case Side_Bottom:
		return "Bottom"
	case Side_Left:
		return "Left"
	case Side_Right:
		return "Right"
	default:
		return "None"
	}
}

func (side Side) Opposite() Side {
	switch side {
	case Side_Top:
		return Side_Bottom
	case Side_Bottom:
		return Side_Top
	case Side_Left:
		return Side_Right
	case Side_Right:
		return Side_Left
	default:
		return Side_None
	}
}

var sideDirections = [...]struct {
	dir  vect.Vect
	side Side
}{
	{vect.Left, Side_Left},
	{vect.Right, Side_Right},
	{vect.Up, Side_Top},
	{vect.Down, Side_Bottom},
}

// SideFromDirection returns the side whose direction has the largest dot
// product with v. Ties go to the first of Left, Right, Top, Bottom.
func SideFromDirection(v vect.Vect) Side {
	if v.IsZero() {
		return Side_None
	}
	best := Side_None
	max := vect.FInf(-1)
	for _, sd := range sideDirections {
		if d := vect.Dot(sd.dir, v); d > max {
			max = d
			best = sd.side
		}
	}
	return best
}
