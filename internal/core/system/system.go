package system

import "time"

// Phase orders systems within a tick.
type Phase int

const (
	PhaseScript  Phase = iota // 0: script hooks (onTick)
	PhaseUpdate               // 1: game logic
	PhaseOutput               // 2: drain character outboxes
	PhaseCleanup              // 3: destroy queued entities
)

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
