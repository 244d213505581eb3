package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fenderz/fenderz/internal/engineconfig"
	"github.com/fenderz/fenderz/internal/physics"
	"github.com/fenderz/fenderz/internal/primitives"
)

const fovy = 45

// Scene holds the 3D camera and draws a physics snapshot. The camera orbits the origin
// about Y at a fixed height and distance.
type Scene struct {
	Camera rl.Camera3D

	// angle is the orbit angle in degrees, kept in (-360, 360).
	angle    float32
	speed    float32
	height   float32
	distance float32
	cube     *primitives.Cube
}

// New returns a scene looking at the origin from the configured height and distance.
func New(prefs engineconfig.EnginePrefs) *Scene {
	s := &Scene{
		speed:    prefs.AutoRotateSpeed,
		height:   prefs.CameraHeight,
		distance: prefs.CameraDistance,
		cube:     primitives.NewCube(),
	}
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.placeCamera()
	return s
}

// Update advances the orbit by dt seconds.
func (s *Scene) Update(dt float32) {
	s.angle = math32.Mod(s.angle+s.speed*dt, 360)
	s.placeCamera()
}

// placeCamera puts the camera where a fixed camera would see the world turned by angle.
func (s *Scene) placeCamera() {
	rad := s.angle * rl.Deg2rad
	s.Camera.Position = rl.NewVector3(-s.distance*math32.Sin(rad), s.height, s.distance*math32.Cos(rad))
}

// Draw renders every box in snap. Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw(snap *physics.Snapshot) {
	pos := s.Camera.Position
	s.cube.SetView([3]float32{pos.X, pos.Y, pos.Z})
	rl.BeginMode3D(s.Camera)
	for i := range snap.Boxes {
		b := &snap.Boxes[i]
		s.cube.Draw(b.Position, b.Rotation, b.Color, b.Size)
	}
	rl.EndMode3D()
}

// Unload frees GPU resources held by the scene.
func (s *Scene) Unload() {
	s.cube.Unload()
}
