package collision

import (
	"errors"
	"fmt"
	"time"

	"github.com/vova616/collision/vect"
)

var ErrColliderWithoutBody = errors.New("collision: collider has no body")

// Space drives one simulation tick: it integrates the bodies, finds the
// overlapping pairs and resolves them in order.
type Space struct {
	/// Gravity applied to Active bodies when integrating.
	Gravity vect.Vect

	/// Physics configuration used by every resolution.
	Config Config

	Colliders []*Collider

	contacts []*Contact

	StepTime time.Duration
}

func NewSpace(cfg Config) (space *Space) {
	space = &Space{Config: cfg}
	space.Colliders = make([]*Collider, 0)
	space.contacts = make([]*Contact, 0)
	return
}

func (space *Space) AddCollider(c *Collider) (*Collider, error) {
	if c.Body() == nil {
		return nil, ErrColliderWithoutBody
	}
	space.Colliders = append(space.Colliders, c)
	return c, nil
}

func (space *Space) RemoveCollider(c *Collider) {
	for i, other := range space.Colliders {
		if other == c {
			space.Colliders = append(space.Colliders[:i], space.Colliders[i+1:]...)
			return
		}
	}
}

// Contacts found by the last Step.
func (space *Space) Contacts() []*Contact {
	return space.contacts
}

// Step advances the space by dt and resolves every contact found.
// A resolution error aborts the step.
func (space *Space) Step(dt vect.Float) error {
	// don't step if the timestep is 0!
	if dt == 0 {
		return nil
	}
	if err := space.Config.Validate(); err != nil {
		return err
	}

	stepStart := time.Now()

	for _, c := range space.Colliders {
		c.Body().Integrate(space.Gravity, dt)
	}
	space.recalc()

	space.contacts = space.contacts[:0]
	for i, a := range space.Colliders {
		for _, b := range space.Colliders[i+1:] {
			if !a.CanCollide(b) || !TestOverlap(a.Bounds(), b.Bounds()) {
				continue
			}
			if con := a.Collide(b); con != nil {
				space.contacts = append(space.contacts, con)
			}
		}
	}

	for _, con := range space.contacts {
		if err := con.Resolve(space.Config); err != nil {
			return fmt.Errorf("resolve %v: %w", con.ID(), err)
		}
	}

	for _, c := range space.Colliders {
		c.Body().ApplyMtv()
	}
	space.recalc()

	space.StepTime = time.Since(stepStart)
	logger.Debug("space step",
		"colliders", len(space.Colliders),
		"contacts", len(space.contacts),
		"took", space.StepTime)
	return nil
}

func (space *Space) recalc() {
	for _, c := range space.Colliders {
		c.Recalc()
	}
}

// PointQuery returns the colliders containing point that pass the layer and
// group filter.
func (space *Space) PointQuery(point vect.Vect, layers Layer, group Group) (colliders []*Collider) {
	for _, c := range space.Colliders {
		if c.Layer&layers == 0 || (group != 0 && c.Group == group) {
			continue
		}
		if c.Bounds().ContainsVect(point) && c.Area.Contains(point) {
			colliders = append(colliders, c)
		}
	}
	return
}

// RayCast returns the closest collider hit by the ray.
func (space *Space) RayCast(ray Ray, maxDistance vect.Float) (hit *Collider, point vect.Vect, ok bool) {
	best := vect.FInf(1)
	for _, c := range space.Colliders {
		if !c.Bounds().RayCast(ray, maxDistance) {
			continue
		}
		p, found := c.Area.RayCast(ray, maxDistance)
		if !found {
			continue
		}
		if d := vect.Dist(ray.Pos, p); d < best {
			best, hit, point, ok = d, c, p, true
		}
	}
	return
}
