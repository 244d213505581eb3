package physics

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Snapshot is a detached copy of the world between two steps. Renderers draw from it and
// never touch the World directly, so a frame can be drawn while the next step runs.
type Snapshot struct {
	Boxes      []Box
	Seconds    int
	ResetTimer float32
}

// Resting returns the number of resting boxes in the snapshot.
func (s *Snapshot) Resting() int {
	n := 0
	for i := range s.Boxes {
		if s.Boxes[i].Resting {
			n++
		}
	}
	return n
}

// Snapshot deep-copies the current state into dst, reusing dst's backing storage.
func (w *World) Snapshot(dst *Snapshot) error {
	src := Snapshot{
		Boxes:      w.boxes,
		Seconds:    w.Seconds,
		ResetTimer: w.ResetTimer,
	}
	dst.Boxes = dst.Boxes[:0]
	if err := copier.CopyWithOption(dst, &src, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("snapshot world: %w", err)
	}
	return nil
}
