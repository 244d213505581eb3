package primitives

import (
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fenderz/fenderz/internal/mathx"
)

// stubRelease swaps the GPU release calls for recorders and restores them on cleanup.
func stubRelease(t *testing.T) *[]string {
	t.Helper()
	var calls []string
	tex, mesh, shader := unloadTexture, unloadMesh, unloadShader
	unloadTexture = func(rl.Texture2D) { calls = append(calls, "texture") }
	unloadMesh = func(*rl.Mesh) { calls = append(calls, "mesh") }
	unloadShader = func(rl.Shader) { calls = append(calls, "shader") }
	t.Cleanup(func() { unloadTexture, unloadMesh, unloadShader = tex, mesh, shader })
	return &calls
}

func TestCubeUnload(t *testing.T) {
	tests := []struct {
		name      string
		cube      Cube
		wantCalls []string
	}{
		{"never loaded", Cube{}, nil},
		{"default shader", Cube{loaded: true}, []string{"texture", "mesh"}},
		{"lit shader", Cube{loaded: true, ownShader: true}, []string{"texture", "mesh", "shader"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := stubRelease(t)
			c := tt.cube
			c.Unload()
			c.Unload()
			if len(*calls) != len(tt.wantCalls) {
				t.Fatalf("release calls = %v, want %v", *calls, tt.wantCalls)
			}
			for i := range tt.wantCalls {
				if (*calls)[i] != tt.wantCalls[i] {
					t.Errorf("release calls = %v, want %v", *calls, tt.wantCalls)
				}
			}
			if c.loaded || c.ownShader {
				t.Errorf("cube still holds resources after Unload: loaded=%v ownShader=%v", c.loaded, c.ownShader)
			}
		})
	}
}

func TestTint(t *testing.T) {
	got := Tint(mathx.V3(-1, 0.5, 2))
	want := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	if got != want {
		t.Errorf("Tint = %v, want %v", got, want)
	}
}
