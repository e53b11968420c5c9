package collision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vova616/collision/vect"
)

// eventLog records the events delivered to the colliders it watches along
// with the velocity Self had at delivery.
type eventLog struct {
	events     []CollisionEvent
	velocities []vect.Vect
}

func (l *eventLog) PreCollision(ev CollisionEvent)  { l.record(ev) }
func (l *eventLog) PostCollision(ev CollisionEvent) { l.record(ev) }

func (l *eventLog) record(ev CollisionEvent) {
	l.events = append(l.events, ev)
	l.velocities = append(l.velocities, ev.Self.Body().Velocity())
}

func (l *eventLog) watch(colliders ...*Collider) *eventLog {
	for _, c := range colliders {
		c.Handler = l
	}
	return l
}

func (l *eventLog) kinds() []EventKind {
	kinds := make([]EventKind, len(l.events))
	for i, ev := range l.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

type bodyState struct {
	p, v, mtv vect.Vect
	a, w      vect.Float
}

func stateOf(b *Body) bodyState {
	return bodyState{p: b.p, v: b.v, mtv: b.totalMtv, a: b.a, w: b.w}
}

// headOn returns two unit circles overlapping by 0.5 along x.
func headOn(ta, tb CollisionType) (a, b *Collider, con *Contact) {
	a = attach(NewCircle(vect.Vect{}, 1), vect.Vect{}, ta)
	b = attach(NewCircle(vect.Vect{}, 1), vect.Vect{X: 1.5, Y: 0}, tb)
	return a, b, a.Collide(b)
}

func elastic(colliders ...*Collider) {
	for _, c := range colliders {
		c.SetRestitution(1)
		c.SetFriction(0)
	}
}

func TestResolvePassive(t *testing.T) {
	a, b, con := headOn(CollisionType_Active, CollisionType_Passive)
	require.NotNil(t, con)
	a.Body().SetVelocity(vect.Vect{X: 1, Y: 0})
	b.Body().SetVelocity(vect.Vect{X: -1, Y: 0})
	sa, sb := stateOf(a.Body()), stateOf(b.Body())
	log := new(eventLog).watch(a, b)

	require.NoError(t, con.Resolve(DefaultConfig()))

	assert.Equal(t, sa, stateOf(a.Body()))
	assert.Equal(t, sb, stateOf(b.Body()))
	require.Equal(t, []EventKind{EventKind_PreCollision, EventKind_PreCollision,
		EventKind_PostCollision, EventKind_PostCollision}, log.kinds())

	pre := log.events[0]
	assert.Equal(t, a, pre.Self)
	assert.Equal(t, b, pre.Other)
	assert.Equal(t, Side_Right, pre.Side)
	assertVect(t, vect.Vect{X: 0.5, Y: 0}, pre.Mtv)

	mirror := log.events[1]
	assert.Equal(t, b, mirror.Self)
	assert.Equal(t, Side_Left, mirror.Side)
	assertVect(t, vect.Vect{X: -0.5, Y: 0}, mirror.Mtv)
}

func TestResolveFixedActive(t *testing.T) {
	floor := attach(NewBox(vect.Vect{}, 2, 2), vect.Vect{}, CollisionType_Fixed)
	ball := attach(NewCircle(vect.Vect{}, 1), vect.Vect{X: 0, Y: -1.8}, CollisionType_Active)
	con := floor.Collide(ball)
	require.NotNil(t, con)
	require.Equal(t, floor, con.ColliderA)

	floor.Body().SetVelocity(vect.Vect{X: 1, Y: 0})
	ball.Body().SetVelocity(vect.Vect{X: 0, Y: 3})
	before := stateOf(floor.Body())

	require.NoError(t, con.Resolve(DefaultConfig()))

	assert.Equal(t, before, stateOf(floor.Body()), "Fixed bodies never change")
	assertVect(t, con.Mtv(), ball.Body().TotalMtv(), "the whole mtv goes to the Active body")
	// e = 0.5 against a normal speed of 3.
	assertFloat(t, -1.5, ball.Body().Velocity().Y)
}

func TestResolveInelastic(t *testing.T) {
	a := attach(NewBox(vect.Vect{}, 2, 2), vect.Vect{}, CollisionType_Active)
	b := attach(NewBox(vect.Vect{}, 2, 2), vect.Vect{X: 1.5, Y: 1}, CollisionType_Active)
	for _, c := range []*Collider{a, b} {
		c.SetRestitution(0)
		c.SetFriction(0)
	}
	con := a.Collide(b)
	require.NotNil(t, con)

	ra := vect.Sub(con.Point(), a.Center())
	rb := vect.Sub(con.Point(), b.Center())
	require.NotZero(t, vect.Cross(ra, con.Normal()), "contact must be off center")

	a.Body().SetVelocity(vect.Vect{X: 1, Y: 0})
	b.Body().SetVelocity(vect.Vect{X: -1, Y: 0.5})
	b.Body().SetAngularVelocity(0.2)
	require.Less(t, vect.Dot(relativeVelocity(a.Body(), b.Body(), ra, rb), con.Normal()), vect.Float(0))

	require.NoError(t, con.Resolve(DefaultConfig()))

	rv := relativeVelocity(a.Body(), b.Body(), ra, rb)
	assertFloat(t, 0, vect.Dot(rv, con.Normal()))
	assert.NotZero(t, a.Body().AngularVelocity())
	assertVect(t, vect.Mult(con.Mtv(), 0.5), b.Body().TotalMtv())
	assertVect(t, vect.Mult(con.Mtv(), -0.5), a.Body().TotalMtv())
}

func TestResolveElasticSwap(t *testing.T) {
	a, b, con := headOn(CollisionType_Active, CollisionType_Active)
	require.NotNil(t, con)
	elastic(a, b)
	a.Body().SetVelocity(vect.Vect{X: 2, Y: 0})
	b.Body().SetVelocity(vect.Vect{X: -1, Y: 0})

	require.NoError(t, con.Resolve(Config{Strategy: Strategy_RigidBody}))

	assertVect(t, vect.Vect{X: -1, Y: 0}, a.Body().Velocity())
	assertVect(t, vect.Vect{X: 2, Y: 0}, b.Body().Velocity())
	assert.Zero(t, a.Body().AngularVelocity())
	assert.Zero(t, b.Body().AngularVelocity())
}

func TestResolveSeparating(t *testing.T) {
	a, b, con := headOn(CollisionType_Active, CollisionType_Active)
	require.NotNil(t, con)
	a.Body().SetVelocity(vect.Vect{X: -1, Y: 0})
	b.Body().SetVelocity(vect.Vect{X: 1, Y: 0})
	sa, sb := stateOf(a.Body()), stateOf(b.Body())
	log := new(eventLog).watch(a, b)

	require.NoError(t, con.Resolve(DefaultConfig()))
	assert.Equal(t, sa, stateOf(a.Body()))
	assert.Equal(t, sb, stateOf(b.Body()))
	// No impulse, but the pair was still resolved.
	assert.Equal(t, []EventKind{EventKind_PreCollision, EventKind_PreCollision,
		EventKind_PostCollision, EventKind_PostCollision}, log.kinds())
}

func TestResolveFrictionCone(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	rf := func(lo, hi float32) vect.Float {
		return vect.Float(lo + r.Float32()*(hi-lo))
	}

	for i := 0; i < 200; i++ {
		floor := attach(NewBox(vect.Vect{}, 20, 2), vect.Vect{}, CollisionType_Fixed)
		ball := attach(NewCircle(vect.Vect{}, 1), vect.Vect{X: 0, Y: -1.9}, CollisionType_Active)
		u := rf(0, 1)
		ball.SetFriction(u)
		floor.SetFriction(1)
		ball.SetRestitution(rf(0, 1))

		con := floor.Collide(ball)
		require.NotNil(t, con)

		v0 := vect.Vect{X: rf(-5, 5), Y: rf(0.1, 5)}
		ball.Body().SetVelocity(v0)
		require.NoError(t, con.Resolve(DefaultConfig()))

		dv := vect.Sub(ball.Body().Velocity(), v0)
		n := con.Normal()
		jn := vect.Dot(dv, n)
		jt := vect.FAbs(vect.Dot(dv, vect.Normal(n)))
		assert.GreaterOrEqual(t, jn, vect.Float(0), "iteration %d", i)
		assert.LessOrEqual(t, jt, u*jn+eps, "iteration %d: u=%v v0=%v", i, u, v0)
	}
}

func TestResolveBoxStrategy(t *testing.T) {
	cfg := Config{Strategy: Strategy_Box}

	t.Run("both active", func(t *testing.T) {
		a, b, con := headOn(CollisionType_Active, CollisionType_Active)
		require.NotNil(t, con)
		a.Body().SetVelocity(vect.Vect{X: 1, Y: 1})
		b.Body().SetVelocity(vect.Vect{X: -2, Y: 3})
		log := new(eventLog).watch(a, b)

		require.NoError(t, con.Resolve(cfg))

		assertVect(t, vect.Vect{X: -0.25, Y: 0}, a.Body().Position())
		assertVect(t, vect.Vect{X: 1.75, Y: 0}, b.Body().Position())
		assertVect(t, vect.Vect{X: 0, Y: 1}, a.Body().Velocity())
		assertVect(t, vect.Vect{X: 0, Y: 3}, b.Body().Velocity())
		assert.True(t, a.Body().TotalMtv().IsZero())

		require.Len(t, log.events, 4)
		post := log.events[2:]
		assert.Equal(t, a, post[0].Self)
		assert.Equal(t, Side_Left, post[0].Side)
		assertVect(t, vect.Vect{X: -0.25, Y: 0}, post[0].Mtv)
		assert.Equal(t, b, post[1].Self)
		assert.Equal(t, Side_Right, post[1].Side)
	})

	t.Run("fixed", func(t *testing.T) {
		a, b, con := headOn(CollisionType_Fixed, CollisionType_Active)
		require.NotNil(t, con)
		sa := stateOf(a.Body())
		b.Body().SetVelocity(vect.Vect{X: 1, Y: 0})

		require.NoError(t, con.Resolve(cfg))

		assert.Equal(t, sa, stateOf(a.Body()))
		assertVect(t, vect.Vect{X: 2, Y: 0}, b.Body().Position())
		assertVect(t, vect.Vect{X: 1, Y: 0}, b.Body().Velocity(), "moving away keeps its velocity")
	})

	t.Run("passive", func(t *testing.T) {
		a, b, con := headOn(CollisionType_Active, CollisionType_Passive)
		require.NotNil(t, con)
		sa, sb := stateOf(a.Body()), stateOf(b.Body())
		log := new(eventLog).watch(a, b)

		require.NoError(t, con.Resolve(cfg))

		assert.Equal(t, sa, stateOf(a.Body()))
		assert.Equal(t, sb, stateOf(b.Body()))
		assert.Equal(t, []EventKind{EventKind_PreCollision, EventKind_PreCollision}, log.kinds())
	})
}

func TestResolveBothFixed(t *testing.T) {
	a, b, con := headOn(CollisionType_Fixed, CollisionType_Fixed)
	require.NotNil(t, con)
	sa, sb := stateOf(a.Body()), stateOf(b.Body())
	log := new(eventLog).watch(a, b)

	require.NoError(t, con.Resolve(DefaultConfig()))
	assert.Equal(t, sa, stateOf(a.Body()))
	assert.Equal(t, sb, stateOf(b.Body()))
	assert.Len(t, log.events, 4)
}

func TestResolveAccumulatesMtv(t *testing.T) {
	floor := attach(NewCircle(vect.Vect{}, 1), vect.Vect{X: 0, Y: 1.5}, CollisionType_Fixed)
	wall := attach(NewCircle(vect.Vect{}, 1), vect.Vect{X: -1.5, Y: 0}, CollisionType_Fixed)
	ball := attach(NewCircle(vect.Vect{}, 1), vect.Vect{}, CollisionType_Active)

	for _, other := range []*Collider{floor, wall} {
		con := other.Collide(ball)
		require.NotNil(t, con)
		require.NoError(t, con.Resolve(DefaultConfig()))
	}

	assertVect(t, vect.Vect{X: 0.5, Y: -0.5}, ball.Body().TotalMtv())
	assertVect(t, vect.Vect{}, ball.Body().Position(), "positions move only on ApplyMtv")

	ball.Body().ApplyMtv()
	assertVect(t, vect.Vect{X: 0.5, Y: -0.5}, ball.Body().Position())
	assert.True(t, ball.Body().TotalMtv().IsZero())
}

func TestResolveOrderIndependent(t *testing.T) {
	scene := func() ([]*Contact, []*Body) {
		a, b, ab := headOn(CollisionType_Active, CollisionType_Active)
		c := attach(NewBox(vect.Vect{}, 2, 2), vect.Vect{X: 10, Y: 0}, CollisionType_Fixed)
		d := attach(NewCircle(vect.Vect{}, 1), vect.Vect{X: 10, Y: -1.8}, CollisionType_Active)
		a.Body().SetVelocity(vect.Vect{X: 3, Y: 1})
		d.Body().SetVelocity(vect.Vect{X: -1, Y: 4})
		return []*Contact{ab, c.Collide(d)}, []*Body{a.Body(), b.Body(), c.Body(), d.Body()}
	}

	forward, fb := scene()
	backward, bb := scene()
	for _, cfg := range []Config{DefaultConfig(), {Strategy: Strategy_Box}} {
		for _, con := range forward {
			require.NoError(t, con.Resolve(cfg))
		}
		for i := len(backward) - 1; i >= 0; i-- {
			require.NoError(t, backward[i].Resolve(cfg))
		}
	}
	for i := range fb {
		assert.Equal(t, stateOf(fb[i]), stateOf(bb[i]), "body %d", i)
	}
}

func TestResolveSelfPair(t *testing.T) {
	body := NewBody(vect.Vect{}, CollisionType_Active)
	body.SetVelocity(vect.Vect{X: 1, Y: 2})
	c1 := NewCollider(NewCircle(vect.Vect{}, 1), 1)
	c1.SetBody(body)
	c2 := NewCollider(NewCircle(vect.Vect{X: 0.5, Y: 0}, 1), 1)
	c2.SetBody(body)
	require.Equal(t, c1.Body(), c2.Body())

	con := c1.Collide(c2)
	require.NotNil(t, con)
	before := stateOf(body)
	log := new(eventLog).watch(c1, c2)

	for _, cfg := range []Config{DefaultConfig(), {Strategy: Strategy_Box}} {
		require.NoError(t, con.Resolve(cfg))
	}
	assert.Equal(t, before, stateOf(body))
	assert.Empty(t, log.events)
}

func TestResolveUnknownStrategy(t *testing.T) {
	a, b, con := headOn(CollisionType_Active, CollisionType_Active)
	require.NotNil(t, con)
	a.Body().SetVelocity(vect.Vect{X: 1, Y: 0})
	sa, sb := stateOf(a.Body()), stateOf(b.Body())
	log := new(eventLog).watch(a, b)

	err := con.Resolve(Config{Strategy: Strategy(9)})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, sa, stateOf(a.Body()))
	assert.Equal(t, sb, stateOf(b.Body()))
	assert.Empty(t, log.events)
}

func TestResolveEventOrder(t *testing.T) {
	a, b, con := headOn(CollisionType_Active, CollisionType_Active)
	require.NotNil(t, con)
	elastic(a, b)
	a.Body().SetVelocity(vect.Vect{X: 2, Y: 0})
	b.Body().SetVelocity(vect.Vect{X: -1, Y: 0})
	log := new(eventLog).watch(a, b)

	require.NoError(t, con.Resolve(DefaultConfig()))

	require.Len(t, log.events, 4)
	assertVect(t, vect.Vect{X: 2, Y: 0}, log.velocities[0], "pre events see the old state")
	assertVect(t, vect.Vect{X: -1, Y: 0}, log.velocities[1])
	assertVect(t, vect.Vect{X: -1, Y: 0}, log.velocities[2], "post events see the new state")
	assertVect(t, vect.Vect{X: 2, Y: 0}, log.velocities[3])
}

func TestSolveIsPure(t *testing.T) {
	a, b, con := headOn(CollisionType_Active, CollisionType_Active)
	require.NotNil(t, con)
	a.Body().SetVelocity(vect.Vect{X: 2, Y: 0})
	sa, sb := stateOf(a.Body()), stateOf(b.Body())
	log := new(eventLog).watch(a, b)
	cfg := DefaultConfig()

	res, err := con.Solve(cfg)
	require.NoError(t, err)
	assert.Equal(t, sa, stateOf(a.Body()))
	assert.Equal(t, sb, stateOf(b.Body()))
	assert.Empty(t, log.events)
	assert.Len(t, res.Events, 4)
	assert.False(t, res.A.IsZero())
	assert.Equal(t, DefaultConfig(), cfg)

	res.Apply()
	assertVect(t, vect.Add(sa.v, res.A.Velocity), a.Body().Velocity())
	assertVect(t, res.B.Mtv, b.Body().TotalMtv())
}

func TestCollisionHandlerFuncs(t *testing.T) {
	a, b, con := headOn(CollisionType_Active, CollisionType_Active)
	require.NotNil(t, con)
	var pre, post int
	a.Handler = CollisionHandlerFuncs{
		Pre:  func(ev CollisionEvent) { pre++ },
		Post: func(ev CollisionEvent) { post++ },
	}
	b.Handler = CollisionHandlerFuncs{}

	require.NoError(t, con.Resolve(DefaultConfig()))
	assert.Equal(t, 1, pre)
	assert.Equal(t, 1, post)
}
