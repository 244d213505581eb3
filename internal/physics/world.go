package physics

import (
	"fmt"

	"github.com/fenderz/fenderz/internal/mathx"
)

// fullTurn is the rotation wrap modulus in degrees.
const fullTurn = 360

// World owns a fixed-size population of boxes and the simulation timers.
// It is not safe for concurrent use: Step mutates it in place, and readers should take a
// Snapshot between steps.
type World struct {
	cfg   Config
	rng   Rand
	boxes []Box
	walls [3][]contact

	// SecondTimer accumulates toward the next whole simulated second; Seconds counts them.
	SecondTimer float32
	Seconds     int
	// FPSTimer and FrameCount sample the frame rate; see RecordFrame.
	FPSTimer   float32
	FrameCount int
	// ResetTimer is the simulated time since the population was last (re)spawned.
	ResetTimer float32
}

// StepReport describes what happened during one Step.
type StepReport struct {
	// Reset is true when the periodic reset fired at the start of this step.
	Reset bool
	// SecondElapsed is true when Seconds advanced during this step.
	SecondElapsed bool
	// Resting counts boxes classified resting after this step.
	Resting int
}

// New validates cfg and returns a world with a freshly spawned population.
func New(cfg Config, rng Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("physics: nil random source")
	}
	w := &World{cfg: cfg, rng: rng, walls: boundaries(cfg)}
	w.Reset()
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Len returns the population size. It never changes over the life of the world.
func (w *World) Len() int {
	return len(w.boxes)
}

// Box returns a copy of box i.
func (w *World) Box(i int) Box {
	return w.boxes[i]
}

// Boxes returns a copy of the population.
func (w *World) Boxes() []Box {
	out := make([]Box, len(w.boxes))
	copy(out, w.boxes)
	return out
}

// SetBox overwrites box i. Meant for staging scenarios; the stepper re-derives Resting.
func (w *World) SetBox(i int, b Box) {
	w.boxes[i] = b
}

// Reset replaces the population with a freshly spawned one of the same size and zeroes
// every timer.
func (w *World) Reset() {
	boxes := make([]Box, w.cfg.Population)
	for i := range boxes {
		boxes[i] = spawnBox(i, w.cfg, w.rng)
	}
	w.boxes = boxes
	w.SecondTimer = 0
	w.Seconds = 0
	w.FPSTimer = 0
	w.FrameCount = 0
	w.ResetTimer = 0
}

// Step advances the simulation by dt seconds. dt is used as given: zero freezes motion,
// negative runs it backward and a large dt can push boxes deep past a boundary before they
// are clamped.
func (w *World) Step(dt float32) StepReport {
	var rep StepReport

	w.SecondTimer += dt
	if w.SecondTimer >= w.cfg.SecondInterval {
		w.Seconds++
		w.SecondTimer = 0
		rep.SecondElapsed = true
	}

	w.ResetTimer += dt
	if w.ResetTimer >= w.cfg.ResetInterval {
		w.Reset()
		rep.Reset = true
	}

	for i := range w.boxes {
		b := &w.boxes[i]
		integrate(b, w.cfg.Gravity, dt)
		for _, group := range w.walls {
			// at most one plane per group: the wall pairs are low-else-high
			for _, c := range group {
				if resolveContact(b, c, w.cfg, w.rng) {
					break
				}
			}
		}
		if classifyRest(b, w.cfg) {
			rep.Resting++
		}
	}
	return rep
}

// RecordFrame counts one rendered frame of length dt. Every FPSSampleInterval seconds it
// returns the average frame rate over the interval and starts a new sample.
func (w *World) RecordFrame(dt float32) (fps float32, sampled bool) {
	w.FrameCount++
	w.FPSTimer += dt
	if w.FPSTimer < w.cfg.FPSSampleInterval {
		return 0, false
	}
	fps = float32(w.FrameCount) / w.FPSTimer
	w.FrameCount = 0
	w.FPSTimer = 0
	return fps, true
}

// integrate applies gravity, then moves and spins b by dt (semi-implicit Euler).
func integrate(b *Box, gravity, dt float32) {
	b.Velocity.Y -= gravity * dt
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Rotation = b.Rotation.Add(b.AngularVelocity.Scale(dt)).Mod(fullTurn)
}

// classifyRest marks b resting when it is slow, barely spinning and on the ground, and
// snaps its motion to zero. Reports the new Resting value.
func classifyRest(b *Box, cfg Config) bool {
	b.Resting = b.Velocity.Length() < cfg.RestThreshold &&
		b.AngularVelocity.Length() < cfg.RestThreshold*10 &&
		b.Bottom() <= cfg.GroundY+cfg.RestThreshold
	if b.Resting {
		b.Velocity = mathx.Vec3{}
		b.AngularVelocity = mathx.Vec3{}
	}
	return b.Resting
}
