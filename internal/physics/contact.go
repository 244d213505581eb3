package physics

import (
	"github.com/chewxy/math32"

	"github.com/fenderz/fenderz/internal/mathx"
)

// contact is one axis-aligned boundary plane. Normal points into the allowed region.
type contact struct {
	Axis mathx.Axis
	// Sign is +1 when the allowed region lies on the positive side of Plane.
	Sign  float32
	Plane float32
	// Tangents are the two axes perturbed on bounce, in draw order.
	Tangents [2]mathx.Axis
}

func (c contact) normal() mathx.Vec3 {
	return mathx.Unit(c.Axis, c.Sign)
}

// penetrating reports whether b's face on the contact side lies beyond the plane.
func (c contact) penetrating(b *Box) bool {
	face := b.Position.Component(c.Axis) - c.Sign*b.HalfSize()
	return c.Sign*(face-c.Plane) < 0
}

// boundaries returns the six planes grouped the way they are checked each step: the ground
// alone, then each wall pair as low-else-high.
func boundaries(cfg Config) [3][]contact {
	return [3][]contact{
		{{Axis: mathx.AxisY, Sign: 1, Plane: cfg.GroundY, Tangents: [2]mathx.Axis{mathx.AxisX, mathx.AxisZ}}},
		{
			{Axis: mathx.AxisX, Sign: 1, Plane: -cfg.Bound, Tangents: [2]mathx.Axis{mathx.AxisY, mathx.AxisZ}},
			{Axis: mathx.AxisX, Sign: -1, Plane: cfg.Bound, Tangents: [2]mathx.Axis{mathx.AxisY, mathx.AxisZ}},
		},
		{
			{Axis: mathx.AxisZ, Sign: 1, Plane: -cfg.Bound, Tangents: [2]mathx.Axis{mathx.AxisX, mathx.AxisY}},
			{Axis: mathx.AxisZ, Sign: -1, Plane: cfg.Bound, Tangents: [2]mathx.Axis{mathx.AxisX, mathx.AxisY}},
		},
	}
}

// resolveContact clamps b against c and reflects its velocity if b penetrates c.
// Reports whether a contact was resolved.
//
// Random draws: two tangential perturbations, then three spin components if the impact
// speed exceeds the rest threshold.
func resolveContact(b *Box, c contact, cfg Config, rng Rand) bool {
	if !c.penetrating(b) {
		return false
	}
	b.Position = b.Position.WithComponent(c.Axis, c.Plane+c.Sign*b.HalfSize())

	n := c.normal()
	var perturb mathx.Vec3
	for _, t := range c.Tangents {
		perturb = perturb.WithComponent(t, Uniform(rng, -cfg.PerturbRange, cfg.PerturbRange))
	}
	dir := n.Add(perturb).Normalize()

	speed := b.Velocity.Dot(n)
	reflected := dir.Scale(-speed * cfg.BounceFactor)
	tangential := b.Velocity.Sub(n.Scale(speed)).Scale(cfg.FrictionFactor)
	b.Velocity = reflected.Add(tangential)

	if math32.Abs(speed) > cfg.RestThreshold {
		b.AngularVelocity = mathx.V3(
			Uniform(rng, -cfg.SpinRange, cfg.SpinRange),
			Uniform(rng, -cfg.SpinRange, cfg.SpinRange),
			Uniform(rng, -cfg.SpinRange, cfg.SpinRange),
		)
	}
	return true
}
