package collision

import (
	"github.com/vova616/collision/transform"
	"github.com/vova616/collision/vect"
)

type Group int
type Layer int

// Collider is the geometry and material record of one participant.
type Collider struct {
	DefaultHash

	// The collision area owned by this collider.
	Area Area

	body *Body

	/// Mass of the collider. Must be positive.
	m vect.Float
	/// Moment of inertia, cached by Recalc.
	i vect.Float

	/// Coefficient of restitution. (elasticity)
	e vect.Float
	/// Coefficient of friction.
	u vect.Float

	// Group of this collider. Colliders in the same non-zero group don't collide.
	Group Group
	// Layer bitmask. Colliders only collide if the bitwise and of their layers is non-zero.
	Layer Layer

	// Receives the pre and post collision events of this collider.
	Handler CollisionHandler

	/// User definable data pointer.
	UserData interface{}
}

// NewCollider attaches area to a new collider with the given mass.
// Call SetBody before the collider takes part in a resolution.
func NewCollider(area Area, mass vect.Float) *Collider {
	c := &Collider{Area: area, e: 0.5, u: 0.5, Layer: -1}
	c.SetMass(mass)
	area.Attach(c)
	return c
}

// SetBody links the collider and the body both ways and refreshes the area.
func (c *Collider) SetBody(body *Body) {
	if c.body != nil {
		c.body.collider = nil
	}
	c.body = body
	if body != nil {
		body.collider = c
	}
	c.Recalc()
}

func (c *Collider) Body() *Body {
	return c.body
}

func (c *Collider) Type() CollisionType {
	if c.body == nil {
		return CollisionType_Passive
	}
	return c.body.Type
}

func (c *Collider) SetMass(mass vect.Float) {
	if mass <= 0 {
		panic("Mass must be positive and non-zero.")
	}
	c.m = mass
	c.i = c.Area.MomentOfInertia(mass)
}

func (c *Collider) Mass() vect.Float {
	return c.m
}

func (c *Collider) Inertia() vect.Float {
	return c.i
}

// InvMass is zero for Fixed bodies.
func (c *Collider) InvMass() vect.Float {
	if c.Type() == CollisionType_Fixed {
		return 0
	}
	return 1 / c.m
}

// InvInertia is zero for Fixed bodies.
func (c *Collider) InvInertia() vect.Float {
	if c.Type() == CollisionType_Fixed {
		return 0
	}
	return 1 / c.i
}

func (c *Collider) Restitution() vect.Float {
	return c.e
}

func (c *Collider) SetRestitution(e vect.Float) {
	c.e = e
}

func (c *Collider) Friction() vect.Float {
	return c.u
}

func (c *Collider) SetFriction(friction vect.Float) {
	c.u = friction
}

// Center of the area in world space, valid after Recalc.
func (c *Collider) Center() vect.Vect {
	return c.Area.Center()
}

func (c *Collider) Bounds() AABB {
	return c.Area.Bounds()
}

// Recalc refreshes the area against the body transform and caches the
// moment of inertia. It must run after any transform or geometry change.
func (c *Collider) Recalc() {
	xf := transform.Identity()
	if c.body != nil {
		xf = c.body.Transform()
	}
	c.Area.Recalc(xf)
	c.i = c.Area.MomentOfInertia(c.m)
}

// CanCollide filters pairs before the narrow-phase runs.
func (c *Collider) CanCollide(other *Collider) bool {
	if c == other || c.body == nil || other.body == nil || c.body == other.body {
		return false
	}
	if c.Group != 0 && c.Group == other.Group {
		return false
	}
	if c.Layer&other.Layer == 0 {
		return false
	}
	return !(c.Type() == CollisionType_Fixed && other.Type() == CollisionType_Fixed)
}

// Collide runs the narrow-phase test between the two areas.
func (c *Collider) Collide(other *Collider) *Contact {
	return c.Area.Collide(other.Area)
}

func (c *Collider) emit(ev CollisionEvent) {
	if c.Handler == nil {
		return
	}
	switch ev.Kind {
	case EventKind_PreCollision:
		c.Handler.PreCollision(ev)
	case EventKind_PostCollision:
		c.Handler.PostCollision(ev)
	}
}
