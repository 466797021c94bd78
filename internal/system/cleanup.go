package system

import (
	"time"

	coresys "github.com/lgs/server/internal/core/system"
	"github.com/lgs/server/internal/world"
)

// CleanupSystem destroys entities despawned during the tick.
// Phase 3 (Cleanup).
type CleanupSystem struct {
	world *world.State
}

func NewCleanupSystem(w *world.State) *CleanupSystem {
	return &CleanupSystem{world: w}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.Cleanup()
}
