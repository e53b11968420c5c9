package collision

import (
	"github.com/vova616/collision/transform"
	"github.com/vova616/collision/vect"
)

type PolygonAxis struct {
	// The axis normal.
	N vect.Vect
	D vect.Float
}

type PolygonArea struct {
	AreaOwner
	// The raw vertices of the polygon. Do not touch!
	// Use polygon.SetVerts() to change this.
	Verts Vertices
	// The transformed vertices. Do not touch!
	TVerts Vertices
	// The axes of the polygon. Do not touch!
	LocalAxes []PolygonAxis
	// The transformed axes of the polygon Do not touch!
	TAxes []PolygonAxis
	// The number of vertices. Do not touch!
	NumVerts int

	centroid  vect.Vect
	tCentroid vect.Vect
	tNormals  []vect.Vect
	bb        AABB
}

// Creates a new PolygonArea with the given convex vertices offset by offset.
// Either winding is accepted.
func NewPolygon(verts Vertices, offset vect.Vect) *PolygonArea {
	poly := &PolygonArea{}
	poly.SetVerts(verts, offset)
	return poly
}

// Sets the vertices offset by the offset and calculates the PolygonAxes.
// Recalc must run before the next query.
func (poly *PolygonArea) SetVerts(verts Vertices, offset vect.Vect) {
	if len(verts) < 3 {
		panic("Polygon needs at least 3 vertices.")
	}
	if verts.SignedArea() > 0 {
		verts = verts.reversed()
	}
	if !verts.ValidatePolygon() {
		logger.Warn("polygon vertices are not convex", "verts", len(verts))
	}

	numVerts := len(verts)
	poly.NumVerts = numVerts
	poly.Verts = make(Vertices, numVerts)
	poly.TVerts = make(Vertices, numVerts)
	poly.LocalAxes = make([]PolygonAxis, numVerts)
	poly.TAxes = make([]PolygonAxis, numVerts)
	poly.tNormals = make([]vect.Vect, numVerts)

	for i := 0; i < numVerts; i++ {
		a := vect.Add(offset, verts[i])
		b := vect.Add(offset, verts[(i+1)%numVerts])
		n := vect.Normalize(vect.Perp(vect.Sub(b, a)))

		poly.Verts[i] = a
		poly.LocalAxes[i].N = n
		poly.LocalAxes[i].D = vect.Dot(n, a)
	}
	poly.centroid = poly.Verts.Centroid()
	poly.Recalc(transform.Identity())
}

// Returns AreaType_Polygon. Needed to implement the Area interface.
func (poly *PolygonArea) AreaType() AreaType {
	return AreaType_Polygon
}

func (poly *PolygonArea) MomentOfInertia(mass vect.Float) vect.Float {
	return poly.Verts.Moment(mass)
}

// Calculates the transformed vertices and axes and the bounding box.
func (poly *PolygonArea) Recalc(xf transform.Transform) {
	for i := 0; i < poly.NumVerts; i++ {
		n := xf.RotateVect(poly.LocalAxes[i].N)
		poly.TAxes[i].N = n
		poly.TAxes[i].D = vect.Dot(xf.Position, n) + poly.LocalAxes[i].D
		poly.tNormals[i] = n
	}

	aabb := emptyAABB()
	for i := 0; i < poly.NumVerts; i++ {
		v := xf.TransformVect(poly.Verts[i])
		poly.TVerts[i] = v
		aabb = Expand(aabb, v)
	}
	poly.bb = aabb
	poly.tCentroid = xf.TransformVect(poly.centroid)
}

func (poly *PolygonArea) Center() vect.Vect {
	return poly.tCentroid
}

func (poly *PolygonArea) Bounds() AABB {
	return poly.bb
}

// Outward face normals in world space. The slice is owned by the polygon.
func (poly *PolygonArea) Axes() []vect.Vect {
	return poly.tNormals
}

func (poly *PolygonArea) FurthestPoint(dir vect.Vect) vect.Vect {
	best := poly.TVerts[0]
	max := vect.Dot(best, dir)
	for _, v := range poly.TVerts[1:] {
		if d := vect.Dot(v, dir); d > max {
			max = d
			best = v
		}
	}
	return best
}

func (poly *PolygonArea) Collide(other Area) *Contact {
	return collide(poly, other)
}

// Returns true if the given point is located inside the polygon.
func (poly *PolygonArea) Contains(point vect.Vect) bool {
	return poly.ContainsVert(point)
}

func (poly *PolygonArea) ContainsVert(v vect.Vect) bool {
	for _, axis := range poly.TAxes {
		dist := vect.Dot(axis.N, v) - axis.D
		if dist > 0.0 {
			return false
		}
	}

	return true
}

func (poly *PolygonArea) ContainsVertPartial(v, n vect.Vect) bool {
	for _, axis := range poly.TAxes {
		if vect.Dot(axis.N, n) < 0.0 {
			continue
		}
		dist := vect.Dot(axis.N, v) - axis.D
		if dist > 0.0 {
			return false
		}
	}

	return true
}

func (poly *PolygonArea) RayCast(ray Ray, maxDistance vect.Float) (vect.Vect, bool) {
	best := vect.FInf(1)
	for i := 0; i < poly.NumVerts; i++ {
		t, ok := ray.IntersectSegment(poly.TVerts[i], poly.TVerts[(i+1)%poly.NumVerts])
		if ok && t < best {
			best = t
		}
	}
	if vect.FIsInf(best) || !withinRange(best, maxDistance) {
		return vect.Vect{}, false
	}
	return ray.At(best), true
}

func (poly *PolygonArea) Project(axis vect.Vect) Projection {
	p := Projection{Min: vect.FInf(1), Max: vect.FInf(-1)}
	for _, v := range poly.TVerts {
		d := vect.Dot(v, axis)
		p.Min = vect.FMin(p.Min, d)
		p.Max = vect.FMax(p.Max, d)
	}
	return p
}

// Smallest signed distance of the vertices past the plane n.v = d.
func (poly *PolygonArea) ValueOnAxis(n vect.Vect, d vect.Float) vect.Float {
	verts := poly.TVerts
	min := vect.Dot(n, verts[0])

	for i := 1; i < poly.NumVerts; i++ {
		min = vect.FMin(min, vect.Dot(n, verts[i]))
	}

	return min - d
}
