package collision

import (
	"fmt"

	. "github.com/vova616/collision/vect"
)

// Resolution is the outcome of solving one contact: per body deltas and the
// events in dispatch order.
type Resolution struct {
	A, B   Delta
	Events []CollisionEvent

	bodyA, bodyB *Body
}

// Apply adds the deltas to the bodies.
func (res *Resolution) Apply() {
	res.A.apply(res.bodyA)
	res.B.apply(res.bodyB)
}

// Dispatch delivers the events of the given kind to their Self handlers.
func (res *Resolution) Dispatch(kind EventKind) {
	for _, ev := range res.Events {
		if ev.Kind == kind {
			ev.Self.emit(ev)
		}
	}
}

// Resolve solves the contact and applies it: pre collision events, then the
// body mutations, then post collision events.
func (con *Contact) Resolve(cfg Config) error {
	res, err := con.Solve(cfg)
	if err != nil {
		return err
	}
	res.Dispatch(EventKind_PreCollision)
	res.Apply()
	res.Dispatch(EventKind_PostCollision)
	return nil
}

// Solve computes the resolution without touching the bodies.
// An unknown strategy is an error and yields an empty resolution.
func (con *Contact) Solve(cfg Config) (Resolution, error) {
	res := Resolution{}
	if cfg.Strategy != Strategy_Box && cfg.Strategy != Strategy_RigidBody {
		return res, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
	}

	bodyA := con.ColliderA.Body()
	bodyB := con.ColliderB.Body()
	// A body never resolves against itself.
	if bodyA == nil || bodyB == nil || bodyA == bodyB {
		return res, nil
	}
	res.bodyA, res.bodyB = bodyA, bodyB

	if cfg.Strategy == Strategy_Box {
		con.solveBox(&res)
	} else {
		con.solveRigidBody(&res, cfg.AllowRotation)
	}
	return res, nil
}

func (con *Contact) solveBox(res *Resolution) {
	a, b := con.ColliderA, con.ColliderB
	side := SideFromDirection(con.mtv)
	// A is pushed away from B.
	mtv := Neg(con.mtv)

	pre := mirroredEvents(EventKind_PreCollision, a, b, side, mtv)
	res.Events = append(res.Events, pre[:]...)

	res.A = boxImpulse(a, b, mtv, &res.Events)
	res.B = boxImpulse(b, a, Neg(mtv), &res.Events)
}

// boxImpulse moves self by mtv and cancels the part of its velocity that
// points against mtv. Only Active bodies facing a non Passive one move.
func boxImpulse(self, other *Collider, mtv Vect, events *[]CollisionEvent) (d Delta) {
	if self.Type() != CollisionType_Active || other.Type() == CollisionType_Passive {
		return
	}
	if other.Type() == CollisionType_Active {
		// split overlaps if both are Active
		mtv = Mult(mtv, 0.5)
	}
	d.Position = mtv

	dir := Normalize(mtv)
	if along := Dot(dir, self.Body().Velocity()); along < 0 {
		d.Velocity = Mult(dir, -along)
	}

	*events = append(*events, CollisionEvent{
		Kind:  EventKind_PostCollision,
		Self:  self,
		Other: other,
		Side:  SideFromDirection(mtv),
		Mtv:   mtv,
	})
	return
}

func (con *Contact) solveRigidBody(res *Resolution, allowRotation bool) {
	a, b := con.ColliderA, con.ColliderB
	side := SideFromDirection(con.mtv)

	pre := mirroredEvents(EventKind_PreCollision, a, b, side, con.mtv)
	res.Events = append(res.Events, pre[:]...)

	// Passive bodies get events but never exchange impulses.
	if a.Type() != CollisionType_Passive && b.Type() != CollisionType_Passive {
		res.A, res.B = con.rigidBodyDeltas(allowRotation)
	}

	post := mirroredEvents(EventKind_PostCollision, a, b, side, con.mtv)
	res.Events = append(res.Events, post[:]...)
}

func (con *Contact) rigidBodyDeltas(allowRotation bool) (da, db Delta) {
	a, b := con.ColliderA, con.ColliderB
	bodyA, bodyB := a.Body(), b.Body()
	fixedA := a.Type() == CollisionType_Fixed
	fixedB := b.Type() == CollisionType_Fixed
	if fixedA && fixedB {
		return
	}

	invMassA, invMassB := a.InvMass(), b.InvMass()
	invMoiA, invMoiB := a.InvInertia(), b.InvInertia()

	// The less bouncy and the less rough surface dominate.
	restitution := FMin(a.Restitution(), b.Restitution())
	friction := FMin(a.Friction(), b.Friction())

	normal := Normalize(con.normal)
	tangent := Normal(normal)

	ra := Sub(con.point, a.Center())
	rb := Sub(con.point, b.Center())

	rv := relativeVelocity(bodyA, bodyB, ra, rb)
	rvNormal := Dot(rv, normal)
	rvTangent := Dot(rv, tangent)

	raTangent := Dot(ra, tangent)
	raNormal := Dot(ra, normal)
	rbTangent := Dot(rb, tangent)
	rbNormal := Dot(rb, normal)

	// Separating already.
	if rvNormal > 0 {
		return
	}

	k := kScalar(invMassA, invMassB, invMoiA, invMoiB, raTangent, rbTangent)
	if k == 0 {
		logger.Warn("unsolvable collision", "contact", con.id)
		return
	}
	impulse := -(1 + restitution) * rvNormal / k

	switch {
	case fixedA:
		db.Velocity = Mult(normal, impulse*invMassB)
		if allowRotation {
			db.AngularVelocity = impulse * invMoiB * Cross(rb, normal)
		}
		db.Mtv = con.mtv
	case fixedB:
		da.Velocity = Mult(normal, -impulse*invMassA)
		if allowRotation {
			da.AngularVelocity = -impulse * invMoiA * Cross(ra, normal)
		}
		da.Mtv = Neg(con.mtv)
	default:
		db.Velocity = Mult(normal, impulse*invMassB)
		da.Velocity = Mult(normal, -impulse*invMassA)
		if allowRotation {
			db.AngularVelocity = impulse * invMoiB * Cross(rb, normal)
			da.AngularVelocity = -impulse * invMoiA * Cross(ra, normal)
		}
		// Split the mtv in half for the two bodies.
		db.Mtv = Mult(con.mtv, 0.5)
		da.Mtv = Mult(con.mtv, -0.5)
	}

	if friction == 0 || rvTangent == 0 {
		return
	}

	// Coulomb friction along the tangential relative velocity.
	t := Normalize(Sub(rv, Mult(normal, Dot(rv, normal))))
	kt := kScalar(invMassA, invMassB, invMoiA, invMoiB, raNormal, rbNormal)
	jt := Dot(rv, t) / kt

	var frictionImpulse Vect
	if maxFriction := impulse * friction; FAbs(jt) <= maxFriction {
		frictionImpulse = Neg(Mult(t, jt))
	} else {
		frictionImpulse = Mult(t, -maxFriction)
	}
	ft := Dot(frictionImpulse, t)

	switch {
	case fixedA:
		db.Velocity.Add(Mult(frictionImpulse, invMassB))
		if allowRotation {
			db.AngularVelocity += ft * invMoiB * Cross(rb, t)
		}
	case fixedB:
		da.Velocity.Sub(Mult(frictionImpulse, invMassA))
		if allowRotation {
			da.AngularVelocity -= ft * invMoiA * Cross(ra, t)
		}
	default:
		db.Velocity.Add(Mult(frictionImpulse, invMassB))
		da.Velocity.Sub(Mult(frictionImpulse, invMassA))
		if allowRotation {
			db.AngularVelocity += ft * invMoiB * Cross(rb, t)
			da.AngularVelocity -= ft * invMoiA * Cross(ra, t)
		}
	}
	return
}
