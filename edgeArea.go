package collision

import (
	"github.com/vova616/collision/transform"
	"github.com/vova616/collision/vect"
)

// Tolerance for points lying on a zero radius edge.
const edgeEpsilon = 1e-5

// Call Recalc for changes to A, B and Radius to take effect.
type EdgeArea struct {
	AreaOwner
	//start/end points of the edge.
	A, B vect.Vect
	//radius of the edge.
	Radius vect.Float

	//local normal. Do not touch!
	N vect.Vect
	//transformed normal. Do not touch!
	Tn vect.Vect
	//transformed start/end points. Do not touch!
	Ta, Tb vect.Vect

	tNormals [1]vect.Vect
}

// Creates a new EdgeArea with the given points and radius.
func NewEdge(a, b vect.Vect, r vect.Float) *EdgeArea {
	edge := &EdgeArea{
		A:      a,
		B:      b,
		Radius: r,
	}
	edge.Recalc(transform.Identity())
	return edge
}

// Returns AreaType_Edge. Needed to implement the Area interface.
func (edge *EdgeArea) AreaType() AreaType {
	return AreaType_Edge
}

func (edge *EdgeArea) MomentOfInertia(mass vect.Float) vect.Float {
	offset := vect.Mult(vect.Add(edge.A, edge.B), 0.5)

	return mass * (vect.DistSqr(edge.B, edge.A)/12.0 + vect.LengthSqr(offset))
}

// Called to update N, Tn, Ta and Tb.
func (edge *EdgeArea) Recalc(xf transform.Transform) {
	edge.Ta = xf.TransformVect(edge.A)
	edge.Tb = xf.TransformVect(edge.B)
	edge.N = vect.Perp(vect.Normalize(vect.Sub(edge.B, edge.A)))
	edge.Tn = xf.RotateVect(edge.N)
	edge.tNormals[0] = edge.Tn
}

func (edge *EdgeArea) Center() vect.Vect {
	return vect.Mult(vect.Add(edge.Ta, edge.Tb), 0.5)
}

func (edge *EdgeArea) Bounds() AABB {
	rv := vect.Vect{X: edge.Radius, Y: edge.Radius}

	min := vect.Min(edge.Ta, edge.Tb)
	min.Sub(rv)

	max := vect.Max(edge.Ta, edge.Tb)
	max.Add(rv)

	return AABB{
		min,
		max,
	}
}

func (edge *EdgeArea) Axes() []vect.Vect {
	return edge.tNormals[:]
}

func (edge *EdgeArea) FurthestPoint(dir vect.Vect) vect.Vect {
	p := edge.Ta
	if vect.Dot(edge.Tb, dir) > vect.Dot(edge.Ta, dir) {
		p = edge.Tb
	}
	return vect.Add(p, vect.Mult(vect.Normalize(dir), edge.Radius))
}

func (edge *EdgeArea) Collide(other Area) *Contact {
	return collide(edge, other)
}

// Closest point on the transformed edge to p.
func (edge *EdgeArea) ClosestPoint(p vect.Vect) vect.Vect {
	ab := vect.Sub(edge.Tb, edge.Ta)
	l := vect.Dot(ab, ab)
	if l == 0 {
		return edge.Ta
	}
	t := vect.FClamp(vect.Dot(vect.Sub(p, edge.Ta), ab)/l, 0, 1)
	return vect.Add(edge.Ta, vect.Mult(ab, t))
}

func (edge *EdgeArea) Contains(point vect.Vect) bool {
	r := edge.Radius + edgeEpsilon
	return vect.DistSqr(point, edge.ClosestPoint(point)) <= r*r
}

// The radius is ignored, the ray is tested against the center line.
func (edge *EdgeArea) RayCast(ray Ray, maxDistance vect.Float) (vect.Vect, bool) {
	t, ok := ray.IntersectSegment(edge.Ta, edge.Tb)
	if !ok || !withinRange(t, maxDistance) {
		return vect.Vect{}, false
	}
	return ray.At(t), true
}

func (edge *EdgeArea) Project(axis vect.Vect) Projection {
	a := vect.Dot(edge.Ta, axis)
	b := vect.Dot(edge.Tb, axis)
	r := edge.Radius * vect.Length(axis)
	return Projection{Min: vect.FMin(a, b) - r, Max: vect.FMax(a, b) + r}
}
