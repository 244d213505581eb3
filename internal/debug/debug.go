package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/fenderz/fenderz/internal/physics"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
)

// Debug draws the top-right overlay: sampled FPS, simulated seconds, resting boxes and heap.
// Text is rebuilt only when a new FPS sample arrives to limit per-frame allocations.
type Debug struct {
	ShowFPS bool

	fpsText   string
	statsText string
	memText   string
	memStats  runtime.MemStats
}

// New returns an overlay; nothing is drawn unless ShowFPS is set.
func New(show bool) *Debug {
	return &Debug{ShowFPS: show}
}

// Sample records a new FPS reading together with the snapshot it was taken with.
func (d *Debug) Sample(fps float32, snap *physics.Snapshot) {
	d.fpsText = fmt.Sprintf("FPS: %.2f", fps)
	d.statsText = fmt.Sprintf("t=%ds  resting %d/%d", snap.Seconds, snap.Resting(), len(snap.Boxes))
	runtime.ReadMemStats(&d.memStats)
	d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
}

// Draw renders the overlay. Call after the scene in the draw loop.
func (d *Debug) Draw() {
	if !d.ShowFPS || d.fpsText == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range []string{d.fpsText, d.statsText, d.memText} {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
