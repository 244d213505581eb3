package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fenderz/fenderz/internal/mathx"
)

// checkerSize is the edge, in texels, of the black/white cube texture (one texel per check).
const checkerSize = 4

// GPU release calls, replaced in tests that run without a window.
var (
	unloadTexture = rl.UnloadTexture
	unloadMesh    = rl.UnloadMesh
	unloadShader  = rl.UnloadShader
)

// Cube draws checker-textured unit cubes with a per-draw tint. GPU resources are created on
// first Draw so that they are allocated after the window/OpenGL context exists.
type Cube struct {
	mesh    rl.Mesh
	mtl     rl.Material
	tex     rl.Texture2D
	loaded  bool
	viewPos [3]float32

	// ownShader is set when mtl.Shader is the lit shader loaded here rather than raylib's default.
	ownShader bool
}

// NewCube returns a Cube with nothing loaded yet.
func NewCube() *Cube {
	return &Cube{}
}

// SetView sets the camera position used for specular lighting this frame.
func (c *Cube) SetView(viewPos [3]float32) {
	c.viewPos = viewPos
}

func (c *Cube) ensureLoaded() {
	if c.loaded {
		return
	}
	img := rl.GenImageChecked(checkerSize, checkerSize, 1, 1, rl.White, rl.Black)
	c.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureWrap(c.tex, rl.WrapRepeat)
	rl.SetTextureFilter(c.tex, rl.FilterBilinear)

	c.mesh = rl.GenMeshCube(1, 1, 1)
	c.mtl = rl.LoadMaterialDefault()
	if shader := loadLitTexturedShader(); rl.IsShaderValid(shader) {
		c.mtl.Shader = shader
		c.ownShader = true
	}
	rl.SetMaterialTexture(&c.mtl, rl.MapAlbedo, c.tex)
	c.loaded = true
}

// Transform builds the model matrix for a cube of edge size centered at position, with the
// rotation angles (degrees) composed as Rx·Ry·Rz.
func Transform(position, rotation mathx.Vec3, size float32) rl.Matrix {
	m := rl.MatrixScale(size, size, size)
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(rotation.Z*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(rotation.Y*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(rotation.X*rl.Deg2rad))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position.X, position.Y, position.Z))
}

// Tint converts an RGB color in [0,1] to an opaque raylib color.
func Tint(rgb mathx.Vec3) color.RGBA {
	return rl.NewColor(channel(rgb.X), channel(rgb.Y), channel(rgb.Z), 255)
}

func channel(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// Draw draws one cube. Call between BeginMode3D and EndMode3D.
func (c *Cube) Draw(position, rotation, rgb mathx.Vec3, size float32) {
	c.ensureLoaded()
	setLightUniforms(c.mtl.Shader, c.viewPos)
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = Tint(rgb)
	}
	rl.DrawMesh(c.mesh, c.mtl, Transform(position, rotation, size))
}

// Unload frees GPU resources. Safe to call when nothing was loaded.
func (c *Cube) Unload() {
	if !c.loaded {
		return
	}
	unloadTexture(c.tex)
	unloadMesh(&c.mesh)
	if c.ownShader {
		unloadShader(c.mtl.Shader)
		c.ownShader = false
	}
	c.loaded = false
}
