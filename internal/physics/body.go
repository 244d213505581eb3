package physics

import "github.com/fenderz/fenderz/internal/mathx"

// Box is one simulated cube. Rotation and AngularVelocity are in degrees and degrees/second
// and only affect drawing; collisions treat the box as an axis-aligned cube of edge Size.
type Box struct {
	Position        mathx.Vec3
	Velocity        mathx.Vec3
	AngularVelocity mathx.Vec3
	Rotation        mathx.Vec3
	Color           mathx.Vec3
	Size            float32
	// Resting is re-derived every step. When true, Velocity and AngularVelocity are zero.
	Resting bool
}

// HalfSize returns half the edge length.
func (b Box) HalfSize() float32 {
	return b.Size / 2
}

// Bottom returns the Y coordinate of the bottom face.
func (b Box) Bottom() float32 {
	return b.Position.Y - b.HalfSize()
}

// spawnBox places box i of a fresh population. Draws, in order: color R, G, B, spawn height.
func spawnBox(i int, cfg Config, rng Rand) Box {
	w := cfg.GridWidth
	half := float32(w) / 2
	spacing := cfg.CubeSize * 2

	col := float32(i % w)
	row := float32((i / w) % w)
	layer := float32(i / (w * w))

	b := Box{Size: cfg.CubeSize}
	b.Color = mathx.V3(Uniform(rng, 0, 1), Uniform(rng, 0, 1), Uniform(rng, 0, 1))
	b.Position = mathx.V3(
		(col-half)*spacing,
		layer*spacing+Uniform(rng, cfg.SpawnHeightMin, cfg.SpawnHeightMax),
		(row-half)*spacing,
	)
	return b
}
