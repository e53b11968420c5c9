package vect

import (
	"github.com/chewxy/math32"
)

type Float float32

var (
	Vector_Zero = Vect{0, 0}

	// Screen directions, y grows downwards.
	Left  = Vect{-1, 0}
	Right = Vect{1, 0}
	Up    = Vect{0, -1}
	Down  = Vect{0, 1}
)

func FMin(a, b Float) Float {
	if a > b {
		return b
	}
	return a
}

func FAbs(a Float) Float {
	return Float(math32.Abs(float32(a)))
}

func FMax(a, b Float) Float {
	if a > b {
		return a
	}
	return b
}

func FClamp(val, min, max Float) Float {
	if val < min {
		return min
	} else if val > max {
		return max
	}
	return val
}

func FSqrt(a Float) Float {
	return Float(math32.Sqrt(float32(a)))
}

// FInf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func FInf(sign int) Float {
	return Float(math32.Inf(sign))
}

func FIsInf(a Float) bool {
	return math32.IsInf(float32(a), 0)
}

//basic 2d vector.
type Vect struct {
	X, Y Float
}

//adds v2 to the given vector.
func (v1 *Vect) Add(v2 Vect) {
	v1.X += v2.X
	v1.Y += v2.Y
}

//subtracts v2 rom the given vector.
func (v1 *Vect) Sub(v2 Vect) {
	v1.X -= v2.X
	v1.Y -= v2.Y
}

//returns the squared length of the vector.
func (v Vect) LengthSqr() Float {
	return Dot(v, v)
}

//returns the length of the vector.
func (v Vect) Length() Float {
	return FSqrt(Dot(v, v))
}

//multiplies the vector by the scalar.
func (v *Vect) Mult(s Float) {
	v.X *= s
	v.Y *= s
}

// Normalizes the vector to a length of 1. The zero vector stays zero.
func (v *Vect) Normalize() {
	*v = Normalize(*v)
}

func (v Vect) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

//compare two vectors by value.
func Equals(v1, v2 Vect) bool {
	return v1.X == v2.X && v1.Y == v2.Y
}

//adds the input vectors and returns the result.
func Add(v1, v2 Vect) Vect {
	return Vect{v1.X + v2.X, v1.Y + v2.Y}
}

//subtracts the input vectors and returns the result.
func Sub(v1, v2 Vect) Vect {
	return Vect{v1.X - v2.X, v1.Y - v2.Y}
}

//multiplies a vector by a scalar and returns the result.
func Mult(v1 Vect, s Float) Vect {
	return Vect{v1.X * s, v1.Y * s}
}

//returns the vector pointing the other way.
func Neg(v Vect) Vect {
	return Vect{-v.X, -v.Y}
}

//returns the square distance between two vectors.
func DistSqr(v1, v2 Vect) Float {
	return (v1.X-v2.X)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v1.Y-v2.Y)
}

//returns the distance between two vectors.
func Dist(v1, v2 Vect) Float {
	return FSqrt(DistSqr(v1, v2))
}

//returns the squared length of the vector.
func LengthSqr(v Vect) Float {
	return Dot(v, v)
}

//returns the length of the vector.
func Length(v Vect) Float {
	return FSqrt(Dot(v, v))
}

//returns a new vector with its x/y values set to the smaller one from the two input values.
//e.g. Min({2, 10}, {8, 3}) would return {2, 3}
func Min(v1, v2 Vect) Vect {
	return Vect{FMin(v1.X, v2.X), FMin(v1.Y, v2.Y)}
}

//returns a new vector with its x/y values set to the bigger one from the two input values.
//e.g. Max({2, 10}, {8, 3}) would return {8, 10}
func Max(v1, v2 Vect) Vect {
	return Vect{FMax(v1.X, v2.X), FMax(v1.Y, v2.Y)}
}

// Normalize returns the input vector scaled to length 1.
// The zero vector is returned unchanged instead of NaN.
func Normalize(v Vect) Vect {
	l := Length(v)
	if l == 0 {
		return Vect{}
	}
	f := 1.0 / l
	return Vect{v.X * f, v.Y * f}
}

//dot product between two vectors.
func Dot(v1, v2 Vect) Float {
	return (v1.X * v2.X) + (v1.Y * v2.Y)
}

//same as CrossVV.
func Cross(a, b Vect) Float {
	return (a.X * b.Y) - (a.Y * b.X)
}

func Clamp(v Vect, l Float) Vect {
	if Dot(v, v) > l*l {
		return Mult(Normalize(v), l)
	}
	return v
}

//cross product of two vectors.
func CrossVV(a, b Vect) Float {
	return (a.X * b.Y) - (a.Y * b.X)
}

//cross product between a vector and a scalar.
//result = {s * a.Y, -s * a.X}
func CrossVF(a Vect, s Float) Vect {
	return Vect{s * a.Y, -s * a.X}
}

//cross product between a scalar and a vector.
//Not the same as CrossVF
//result = {-s * a.Y, s * a.X}
func CrossFV(s Float, a Vect) Vect {
	return Vect{-s * a.Y, s * a.X}
}

//linear interpolation between two vectors by the given scalar
func Lerp(v1, v2 Vect, s Float) Vect {
	return Vect{
		v1.X + (v2.X-v1.X)*s,
		v1.Y + (v2.Y-v1.Y)*s,
	}
}

//Returns v rotated by 90 degrees
func Perp(v Vect) Vect {
	return Vect{-v.Y, v.X}
}

// Returns v rotated by -90 degrees and normalized, {y, -x}.
func Normal(v Vect) Vect {
	return Normalize(Vect{v.Y, -v.X})
}

// Scalar projection of v onto axis.
func ScalarProject(v, axis Vect) Float {
	l := Length(axis)
	if l == 0 {
		return 0
	}
	return Dot(v, axis) / l
}

// Vector projection of v onto axis.
func Project(v, axis Vect) Vect {
	d := Dot(axis, axis)
	if d == 0 {
		return Vect{}
	}
	return Mult(axis, Dot(v, axis)/d)
}

func FromAngle(angle Float) Vect {
	return Vect{Float(math32.Cos(float32(angle))), Float(math32.Sin(float32(angle)))}
}
