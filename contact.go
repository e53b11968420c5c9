package collision

import (
	. "github.com/vova616/collision/vect"
)

// Contact is the single point result of a successful narrow-phase test.
// A and B are ordered: mtv and normal point away from A.
type Contact struct {
	id HashPair

	ColliderA, ColliderB *Collider

	// Shortest translation separating B from A.
	mtv Vect
	// Representative contact point in world space.
	point Vect
	// Surface normal pointing away from A.
	normal Vect
}

func NewContact(a, b *Collider, mtv, point, normal Vect) *Contact {
	con := &Contact{ColliderA: a, ColliderB: b, mtv: mtv, point: point, normal: normal}
	if a != nil && b != nil {
		con.id = newPair(a.Hash(), b.Hash())
	}
	return con
}

// Identity of the pair, the same regardless of A/B order.
func (con *Contact) ID() HashPair {
	return con.id
}

func (con *Contact) Mtv() Vect {
	return con.mtv
}

func (con *Contact) Point() Vect {
	return con.point
}

func (con *Contact) Normal() Vect {
	return con.normal
}

// flip swaps A and B and negates the directions.
func (con *Contact) flip() *Contact {
	con.ColliderA, con.ColliderB = con.ColliderB, con.ColliderA
	con.mtv = Neg(con.mtv)
	con.normal = Neg(con.normal)
	return con
}
