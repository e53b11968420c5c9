package collision

import (
	"github.com/vova616/collision/transform"
	. "github.com/vova616/collision/vect"
)

// Body is the kinematic record of one participant.
type Body struct {
	/// Position of the body's origin.
	p Vect
	/// Velocity of the body.
	v Vect

	/// Rotation of the body around its origin in radians.
	a Float
	/// Angular velocity of the body in radians/second.
	w Float

	/// Kinematic class of the body.
	Type CollisionType

	/// Minimum translation accumulated by the contacts resolved this step.
	/// Added to the position and cleared by ApplyMtv.
	totalMtv Vect

	collider *Collider

	/// User definable data pointer.
	UserData interface{}
}

func NewBody(pos Vect, ct CollisionType) *Body {
	return &Body{p: pos, Type: ct}
}

// Collider returns the collider attached with Collider.SetBody, or nil.
func (body *Body) Collider() *Collider {
	return body.collider
}

func (body *Body) Position() Vect {
	return body.p
}

func (body *Body) SetPosition(pos Vect) {
	body.p = pos
}

func (body *Body) Velocity() Vect {
	return body.v
}

func (body *Body) SetVelocity(v Vect) {
	body.v = v
}

func (body *Body) AddVelocity(dv Vect) {
	body.v.Add(dv)
}

func (body *Body) Angle() Float {
	return body.a
}

func (body *Body) SetAngle(angle Float) {
	body.a = angle
}

func (body *Body) AngularVelocity() Float {
	return body.w
}

func (body *Body) SetAngularVelocity(w Float) {
	body.w = w
}

func (body *Body) AddAngularVelocity(dw Float) {
	body.w += dw
}

func (body *Body) Transform() transform.Transform {
	return transform.NewTransform(body.p, body.a)
}

// AddMtv accumulates a positional correction. Several contacts sharing the
// body add up, none overwrites another.
func (body *Body) AddMtv(mtv Vect) {
	body.totalMtv.Add(mtv)
}

func (body *Body) TotalMtv() Vect {
	return body.totalMtv
}

// ApplyMtv moves the body by the accumulated correction and clears it.
func (body *Body) ApplyMtv() {
	body.p.Add(body.totalMtv)
	body.totalMtv = Vector_Zero
}

// Integrate advances an Active body by dt. Other classes are left alone.
func (body *Body) Integrate(gravity Vect, dt Float) {
	if body.Type != CollisionType_Active {
		return
	}
	body.v = Add(body.v, Mult(gravity, dt))
	body.p = Add(body.p, Mult(body.v, dt))
	body.a += body.w * dt
}

func (body *Body) KineticEnergy() Float {
	c := body.collider
	if c == nil || body.Type == CollisionType_Fixed {
		return 0
	}
	return 0.5 * (Dot(body.v, body.v)*c.Mass() + body.w*body.w*c.Inertia())
}
