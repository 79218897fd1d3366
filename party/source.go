package party

import (
	"slices"

	"github.com/milk9111/playerbox/overlay"
)

// Snapshot is the party state for a single frame. Viewer is nil when there is
// no active session.
type Snapshot struct {
	Viewer  *overlay.Viewer
	Members []overlay.Entity
}

// Clone returns a deep copy so callers can hold it past the next update.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Members: slices.Clone(s.Members)}
	if s.Viewer != nil {
		v := *s.Viewer
		out.Viewer = &v
	}
	return out
}

// Source supplies party snapshots to the host loop.
type Source interface {
	Snapshot() Snapshot
}
