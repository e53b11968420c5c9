package collision

import (
	"github.com/vova616/collision/vect"
)

// axis aligned bounding box.
type AABB struct {
	Lower, //l t (y grows downwards)
	Upper vect.Vect // r b
}

func NewAABB(l, t, r, b vect.Float) AABB {
	return AABB{vect.Vect{X: l, Y: t}, vect.Vect{X: r, Y: b}}
}

// Returns an inverted box that Expand grows from.
func emptyAABB() AABB {
	inf := vect.FInf(1)
	return AABB{
		Lower: vect.Vect{X: inf, Y: inf},
		Upper: vect.Vect{X: -inf, Y: -inf},
	}
}

func (aabb AABB) Valid() bool {
	return aabb.Lower.X <= aabb.Upper.X && aabb.Lower.Y <= aabb.Upper.Y
}

// returns the center of the aabb
func (aabb AABB) Center() vect.Vect {
	return vect.Mult(vect.Add(aabb.Lower, aabb.Upper), 0.5)
}

func (aabb AABB) Extents() vect.Vect {
	return vect.Mult(vect.Sub(aabb.Upper, aabb.Lower), .5)
}

func (aabb AABB) Width() vect.Float {
	return aabb.Upper.X - aabb.Lower.X
}

func (aabb AABB) Height() vect.Float {
	return aabb.Upper.Y - aabb.Lower.Y
}

// returns if other is contained inside this aabb.
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Lower.X <= other.Lower.X &&
		aabb.Upper.X >= other.Upper.X &&
		aabb.Lower.Y <= other.Lower.Y &&
		aabb.Upper.Y >= other.Upper.Y
}

// returns if v is contained inside this aabb.
func (aabb AABB) ContainsVect(v vect.Vect) bool {
	return aabb.Lower.X <= v.X &&
		aabb.Upper.X >= v.X &&
		aabb.Lower.Y <= v.Y &&
		aabb.Upper.Y >= v.Y
}

// returns an AABB that holds both a and b.
func Combine(a, b AABB) AABB {
	return AABB{
		vect.Min(a.Lower, b.Lower),
		vect.Max(a.Upper, b.Upper),
	}
}

// returns an AABB that holds both a and v.
func Expand(a AABB, v vect.Vect) AABB {
	return AABB{
		vect.Min(a.Lower, v),
		vect.Max(a.Upper, v),
	}
}

func TestOverlap(a, b AABB) bool {
	return (a.Lower.X <= b.Upper.X && b.Lower.X <= a.Upper.X && a.Lower.Y <= b.Upper.Y && b.Lower.Y <= a.Upper.Y)
}

// RayCast reports whether the ray enters the box within maxDistance
// (slab test). maxDistance <= 0 means unbounded.
func (aabb AABB) RayCast(ray Ray, maxDistance vect.Float) bool {
	tmin := vect.FInf(-1)
	tmax := vect.FInf(1)

	slab := func(pos, dir, lo, hi vect.Float) bool {
		if dir == 0 {
			return pos >= lo && pos <= hi
		}
		t1 := (lo - pos) / dir
		t2 := (hi - pos) / dir
		tmin = vect.FMax(tmin, vect.FMin(t1, t2))
		tmax = vect.FMin(tmax, vect.FMax(t1, t2))
		return true
	}
	if !slab(ray.Pos.X, ray.Dir.X, aabb.Lower.X, aabb.Upper.X) ||
		!slab(ray.Pos.Y, ray.Dir.Y, aabb.Lower.Y, aabb.Upper.Y) {
		return false
	}
	if tmax < 0 || tmin > tmax {
		return false
	}
	return withinRange(vect.FMax(tmin, 0), maxDistance)
}
