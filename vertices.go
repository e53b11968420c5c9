package collision

import (
	"github.com/vova616/collision/vect"
)

// Wrapper around []vect.Vect.
type Vertices []vect.Vect

// Checks if verts forms a valid polygon.
// The vertices must be convex and winded clockwise.
func (verts Vertices) ValidatePolygon() bool {
	numVerts := len(verts)
	if numVerts < 3 {
		return false
	}
	for i := 0; i < numVerts; i++ {
		a := verts[i]
		b := verts[(i+1)%numVerts]
		c := verts[(i+2)%numVerts]

		if vect.Cross(vect.Sub(b, a), vect.Sub(c, b)) > 0.0 {
			return false
		}
	}

	return true
}

// Signed area, negative for clockwise winding.
func (verts Vertices) SignedArea() vect.Float {
	var sum vect.Float
	for i, a := range verts {
		sum += vect.Cross(a, verts[(i+1)%len(verts)])
	}
	return sum / 2
}

// Area weighted centroid. Degenerate polygons fall back to the vertex average.
func (verts Vertices) Centroid() vect.Vect {
	var sum vect.Vect
	var area vect.Float
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		c := vect.Cross(a, b)
		area += c
		sum.Add(vect.Mult(vect.Add(a, b), c))
	}
	if area == 0 {
		var avg vect.Vect
		for _, v := range verts {
			avg.Add(v)
		}
		return vect.Mult(avg, 1/vect.Float(len(verts)))
	}
	return vect.Mult(sum, 1/(3*area))
}

// Moment of inertia of the solid polygon about the origin.
func (verts Vertices) Moment(mass vect.Float) vect.Float {
	var num, den vect.Float
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		c := vect.Cross(a, b)
		num += c * (vect.Dot(a, a) + vect.Dot(a, b) + vect.Dot(b, b))
		den += c
	}
	if den == 0 {
		return 0
	}
	return mass * num / (6 * den)
}

func (verts Vertices) reversed() Vertices {
	out := make(Vertices, len(verts))
	for i, v := range verts {
		out[len(verts)-1-i] = v
	}
	return out
}
