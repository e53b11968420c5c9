package collision

import (
	"github.com/vova616/collision/transform"
	"github.com/vova616/collision/vect"
)

type CircleArea struct {
	AreaOwner
	// Center of the circle relative to the body. Call Recalc if changed.
	Position vect.Vect
	// Radius of the circle. Call Recalc if changed.
	Radius vect.Float
	// Global center of the circle. Do not touch!
	Tc vect.Vect
}

// Creates a new CircleArea with the given center and radius.
func NewCircle(pos vect.Vect, radius vect.Float) *CircleArea {
	return &CircleArea{
		Position: pos,
		Radius:   radius,
		Tc:       pos,
	}
}

// Returns AreaType_Circle. Needed to implement the Area interface.
func (circle *CircleArea) AreaType() AreaType {
	return AreaType_Circle
}

func (circle *CircleArea) MomentOfInertia(mass vect.Float) vect.Float {
	return mass * (0.5*(circle.Radius*circle.Radius) + vect.LengthSqr(circle.Position))
}

// Recalculates the global center of the circle.
func (circle *CircleArea) Recalc(xf transform.Transform) {
	circle.Tc = xf.TransformVect(circle.Position)
}

func (circle *CircleArea) Center() vect.Vect {
	return circle.Tc
}

func (circle *CircleArea) Bounds() AABB {
	rv := vect.Vect{X: circle.Radius, Y: circle.Radius}
	return AABB{
		vect.Sub(circle.Tc, rv),
		vect.Add(circle.Tc, rv),
	}
}

// Circles have no flat faces.
func (circle *CircleArea) Axes() []vect.Vect {
	return nil
}

func (circle *CircleArea) FurthestPoint(dir vect.Vect) vect.Vect {
	return vect.Add(circle.Tc, vect.Mult(vect.Normalize(dir), circle.Radius))
}

func (circle *CircleArea) Collide(other Area) *Contact {
	return collide(circle, other)
}

// Returns true if the given point is located inside the circle.
func (circle *CircleArea) Contains(point vect.Vect) bool {
	d := vect.Sub(point, circle.Tc)

	return vect.Dot(d, d) <= circle.Radius*circle.Radius
}

func (circle *CircleArea) RayCast(ray Ray, maxDistance vect.Float) (vect.Vect, bool) {
	// |pos + t*dir - c|^2 = r^2 with a unit dir.
	m := vect.Sub(ray.Pos, circle.Tc)
	b := vect.Dot(m, ray.Dir)
	c := vect.Dot(m, m) - circle.Radius*circle.Radius
	if c > 0 && b > 0 {
		return vect.Vect{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return vect.Vect{}, false
	}
	sq := vect.FSqrt(disc)
	t := -b - sq
	if t < 0 {
		// Starting inside, the boundary is ahead.
		t = -b + sq
	}
	if !withinRange(t, maxDistance) {
		return vect.Vect{}, false
	}
	return ray.At(t), true
}

func (circle *CircleArea) Project(axis vect.Vect) Projection {
	d := vect.Dot(circle.Tc, axis)
	r := circle.Radius * vect.Length(axis)
	return Projection{Min: d - r, Max: d + r}
}
