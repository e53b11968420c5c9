package collision

import (
	"github.com/vova616/collision/vect"
)

// Creates a w by h rectangle centered on pos, relative to the body.
func NewBox(pos vect.Vect, w, h vect.Float) *PolygonArea {
	hw := vect.FAbs(w / 2.0)
	hh := vect.FAbs(h / 2.0)

	verts := Vertices{
		{X: -hw, Y: -hh},
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
		{X: hw, Y: -hh},
	}

	return NewPolygon(verts, pos)
}

// Creates a polygon covering bb, relative to the body.
func NewBoxFromAABB(bb AABB) *PolygonArea {
	return NewBox(bb.Center(), bb.Width(), bb.Height())
}
