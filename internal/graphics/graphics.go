package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Title string
	VSync bool
	// TargetFPS caps the frame rate when > 0.
	TargetFPS int32
	// OnClose runs after the loop ends, while the window and GL context still exist.
	OnClose func()
}

// Run opens a fullscreen window and runs the main loop. Each frame it calls update with the
// last frame's duration in seconds, then clears the screen to black and calls draw.
// The loop ends on any key press or when the window is closed.
func Run(opts Options, update func(dt float32), draw func()) {
	flags := uint32(rl.FlagFullscreenMode)
	if opts.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	defer rl.CloseWindow()
	if opts.OnClose != nil {
		defer opts.OnClose()
	}

	rl.SetExitKey(rl.KeyNull) // any key quits, checked below
	rl.HideCursor()
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		if rl.GetKeyPressed() != 0 {
			return
		}
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
