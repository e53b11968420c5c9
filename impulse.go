package collision

import (
	. "github.com/vova616/collision/vect"
)

// Effective inverse mass of the pair along a direction, where ca and cb are
// the cross terms r x dir of each body.
func kScalar(invMassA, invMassB, invMoiA, invMoiB, ca, cb Float) Float {
	return invMassA + invMassB + invMoiA*ca*ca + invMoiB*cb*cb
}

// Velocity of b relative to a at the contact offsets ra and rb, spin included.
func relativeVelocity(a, b *Body, ra, rb Vect) Vect {
	vb := Add(b.v, CrossVF(rb, -b.w))
	va := Sub(a.v, CrossVF(ra, a.w))
	return Sub(vb, va)
}

// Delta is the additive change a resolution makes to one body.
type Delta struct {
	// Moved immediately (Box strategy).
	Position Vect
	// Accumulated with AddMtv and applied by Body.ApplyMtv (RigidBody strategy).
	Mtv             Vect
	Velocity        Vect
	AngularVelocity Float
}

func (d Delta) IsZero() bool {
	return d.Position.IsZero() && d.Mtv.IsZero() && d.Velocity.IsZero() && d.AngularVelocity == 0
}

func (d Delta) apply(body *Body) {
	if body == nil {
		return
	}
	body.p.Add(d.Position)
	body.AddMtv(d.Mtv)
	body.v.Add(d.Velocity)
	body.w += d.AngularVelocity
}
