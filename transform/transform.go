package transform

import (
	"github.com/chewxy/math32"
	"github.com/vova616/collision/vect"
)

type Rotation struct {
	//sine and cosine.
	C, S vect.Float
}

func NewRotation(angle vect.Float) Rotation {
	return Rotation{
		C: vect.Float(math32.Cos(float32(angle))),
		S: vect.Float(math32.Sin(float32(angle))),
	}
}

func (rot *Rotation) SetIdentity() {
	rot.S = 0
	rot.C = 1
}

func (rot *Rotation) SetAngle(angle vect.Float) {
	*rot = NewRotation(angle)
}

func (rot Rotation) Angle() vect.Float {
	return vect.Float(math32.Atan2(float32(rot.S), float32(rot.C)))
}

//rotates the input vector.
func (rot Rotation) RotateVect(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) - (v.Y * rot.S),
		Y: (v.X * rot.S) + (v.Y * rot.C),
	}
}

func (rot Rotation) RotateVectInv(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) + (v.Y * rot.S),
		Y: (-v.X * rot.S) + (v.Y * rot.C),
	}
}

type Transform struct {
	Position vect.Vect
	Rotation
}

func NewTransform(pos vect.Vect, angle vect.Float) Transform {
	return Transform{
		Position: pos,
		Rotation: NewRotation(angle),
	}
}

func Identity() Transform {
	return Transform{Rotation: Rotation{C: 1}}
}

func (xf *Transform) Set(pos vect.Vect, rot vect.Float) {
	xf.Position = pos
	xf.SetAngle(rot)
}

//moves and rotates the input vector.
func (xf Transform) TransformVect(v vect.Vect) vect.Vect {
	return vect.Add(xf.Position, xf.RotateVect(v))
}

//undoes TransformVect.
func (xf Transform) TransformVectInv(v vect.Vect) vect.Vect {
	return xf.RotateVectInv(vect.Sub(v, xf.Position))
}
