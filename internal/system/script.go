package system

import (
	"time"

	coresys "github.com/lgs/server/internal/core/system"
	"github.com/lgs/server/internal/scripting"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// TickHook is the global Lua function called once per tick.
const TickHook = "onTick"

// ScriptSystem drives per-tick script hooks. Phase 0 (Script).
type ScriptSystem struct {
	engine *scripting.Engine
	tick   uint64
	log    *zap.Logger
}

func NewScriptSystem(engine *scripting.Engine, log *zap.Logger) *ScriptSystem {
	return &ScriptSystem{engine: engine, log: log}
}

func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhaseScript }

func (s *ScriptSystem) Update(_ time.Duration) {
	s.tick++
	if err := s.engine.CallHook(TickHook, lua.LNumber(s.tick)); err != nil {
		// a broken script must not stop the loop
		s.log.Error("lua tick hook failed", zap.Uint64("tick", s.tick), zap.Error(err))
	}
}
