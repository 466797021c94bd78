package system

import (
	"encoding/hex"
	"time"

	"github.com/lgs/server/internal/component"
	"github.com/lgs/server/internal/core/ecs"
	coresys "github.com/lgs/server/internal/core/system"
	"github.com/lgs/server/internal/net/packet"
	"github.com/lgs/server/internal/world"
	"go.uber.org/zap"
)

// Sink receives packets drained from character outboxes.
type Sink interface {
	Deliver(charID uint32, name string, p packet.Packet)
}

// OutputSystem drains every character outbox into the sink, oldest packet
// first. Phase 2 (Output).
type OutputSystem struct {
	world *world.State
	sink  Sink
}

func NewOutputSystem(w *world.State, sink Sink) *OutputSystem {
	return &OutputSystem{world: w, sink: sink}
}

func (s *OutputSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *OutputSystem) Update(_ time.Duration) {
	s.world.Characters(func(_ ecs.EntityID, c *component.Character) {
		for _, p := range c.Outbox.Drain() {
			s.sink.Deliver(c.Base.ID, c.Base.Name, p)
		}
	})
}

// LogSink writes each delivered packet to the log at debug level.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(charID uint32, name string, p packet.Packet) {
	if ce := s.log.Check(zap.DebugLevel, "packet out"); ce != nil {
		ce.Write(
			zap.Uint32("char_id", charID),
			zap.String("char", name),
			zap.String("opcode", packet.OpcodeName(p.Opcode())),
			zap.String("data", hex.EncodeToString(p.Bytes())),
		)
	}
}
