package collision

import (
	"github.com/vova616/collision/transform"
	"github.com/vova616/collision/vect"
)

type AreaType int

const (
	AreaType_Circle  = 0
	AreaType_Edge    = 1
	AreaType_Polygon = 2
	numAreas         = iota
)

func (at AreaType) String() string {
	switch at {
	case AreaType_Circle:
		return "Circle"
	case AreaType_Edge:
		return "Edge"
	case AreaType_Polygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Area is the geometry contract every collidable shape satisfies.
// Cached values are only refreshed by Recalc; queries made after a transform
// or geometry change and before Recalc see stale data.
type Area interface {
	AreaType() AreaType
	// The collider owning this area.
	Owner() *Collider
	Attach(c *Collider)

	// Centroid in world space.
	Center() vect.Vect
	// Support mapping: the point furthest along dir.
	FurthestPoint(dir vect.Vect) vect.Vect
	// World space bounding box, exact for the convex primitives.
	Bounds() AABB
	// Candidate separating axes. Empty for shapes without flat faces.
	Axes() []vect.Vect
	// Moment of inertia about the body origin for the given mass.
	MomentOfInertia(mass vect.Float) vect.Float

	// Narrow-phase test. Returns nil when the areas do not overlap.
	Collide(other Area) *Contact
	// Returns true if point is inside the area or on its boundary.
	Contains(point vect.Vect) bool
	// First boundary hit along the ray. maxDistance <= 0 means unbounded.
	RayCast(ray Ray, maxDistance vect.Float) (vect.Vect, bool)
	// Scalar projection of the area onto axis.
	Project(axis vect.Vect) Projection

	// Recompute cached world space data for the transform.
	Recalc(xf transform.Transform)
}

// AreaOwner implements Owner and Attach; concrete areas embed it.
type AreaOwner struct {
	owner *Collider
}

func (ao *AreaOwner) Owner() *Collider {
	return ao.owner
}

func (ao *AreaOwner) Attach(c *Collider) {
	ao.owner = c
}

// Projection is the interval an area covers on an axis.
type Projection struct {
	Min, Max vect.Float
}

func (p Projection) Overlaps(other Projection) bool {
	return p.Max >= other.Min && other.Max >= p.Min
}

// Overlap returns the length of the shared interval, negative if separated.
func (p Projection) Overlap(other Projection) vect.Float {
	return vect.FMin(p.Max, other.Max) - vect.FMax(p.Min, other.Min)
}

func (p Projection) Contains(other Projection) bool {
	return p.Min <= other.Min && p.Max >= other.Max
}

type Ray struct {
	Pos vect.Vect
	// Unit direction.
	Dir vect.Vect
}

func NewRay(pos, dir vect.Vect) Ray {
	return Ray{Pos: pos, Dir: vect.Normalize(dir)}
}

func (r Ray) At(t vect.Float) vect.Vect {
	return vect.Add(r.Pos, vect.Mult(r.Dir, t))
}

// IntersectSegment returns the ray parameter of the hit with segment a-b.
func (r Ray) IntersectSegment(a, b vect.Vect) (vect.Float, bool) {
	e := vect.Sub(b, a)
	den := vect.Cross(r.Dir, e)
	if den == 0 {
		return 0, false
	}
	ap := vect.Sub(a, r.Pos)
	t := vect.Cross(ap, e) / den
	u := vect.Cross(ap, r.Dir) / den
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

func withinRange(t, maxDistance vect.Float) bool {
	return maxDistance <= 0 || t <= maxDistance
}
