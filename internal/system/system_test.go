package system

import (
	"testing"
	"time"

	"github.com/lgs/server/internal/component"
	coresys "github.com/lgs/server/internal/core/system"
	"github.com/lgs/server/internal/net/packet"
	"github.com/lgs/server/internal/scripting"
	"github.com/lgs/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type delivery struct {
	charID uint32
	name   string
	p      packet.Packet
}

type recordingSink struct {
	got []delivery
}

func (s *recordingSink) Deliver(charID uint32, name string, p packet.Packet) {
	s.got = append(s.got, delivery{charID, name, p})
}

func TestOutputSystemDrainsCharacterOutboxes(t *testing.T) {
	w := world.NewState()
	a, _ := w.SpawnCharacter("A", 1, 0)
	b, _ := w.SpawnCharacter("B", 2, 0)
	w.SpawnEntity(component.KindNPC, "N", 3)

	ca, _ := w.Character(a)
	cb, _ := w.Character(b)
	first := &packet.CharEmotion{Emote: 1}
	second := &packet.CharEmotion{Emote: 2}
	ca.Outbox.Push(first)
	ca.Outbox.Push(second)

	sink := &recordingSink{}
	NewOutputSystem(w, sink).Update(time.Millisecond)

	if len(sink.got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(sink.got))
	}
	if sink.got[0].p != first || sink.got[1].p != second || sink.got[0].charID != 1 || sink.got[0].name != "A" {
		t.Fatalf("unexpected deliveries %+v", sink.got)
	}
	if ca.Outbox.Len() != 0 || cb.Outbox.Len() != 0 {
		t.Fatalf("outboxes not drained")
	}
}

func TestLogSinkWritesDebugEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewLogSink(zap.New(core)).Deliver(7, "Loxley", &packet.CharEmotion{ActorID: 7, Emote: packet.EmoteLogging})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["opcode"] != "CHAR_EMOTION" || fields["char"] != "Loxley" || fields["data"] == "" {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestScriptSystemCallsTickHook(t *testing.T) {
	engine, err := scripting.NewEngine(t.TempDir(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	defer engine.Close()
	if err := engine.DoString(`last = 0; function onTick(n) last = n end`); err != nil {
		t.Fatalf("define: %v", err)
	}

	s := NewScriptSystem(engine, zaptest.NewLogger(t))
	s.Update(0)
	s.Update(0)
	if err := engine.DoString(`assert(last == 2, "tick " .. last)`); err != nil {
		t.Fatalf("tick count: %v", err)
	}
}

func TestScriptSystemLogsHookErrors(t *testing.T) {
	engine, err := scripting.NewEngine(t.TempDir(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	defer engine.Close()
	if err := engine.DoString(`function onTick() error("bad") end`); err != nil {
		t.Fatalf("define: %v", err)
	}
	core, logs := observer.New(zapcore.ErrorLevel)
	s := NewScriptSystem(engine, zap.New(core))
	s.Update(0)
	s.Update(0)
	if logs.Len() != 2 {
		t.Fatalf("expected an error entry per tick, got %d", logs.Len())
	}
}

func TestCleanupSystemRunsInCleanupPhase(t *testing.T) {
	w := world.NewState()
	h, _ := w.SpawnEntity(component.KindMob, "Crab", 1)
	w.Despawn(h)

	r := coresys.NewRunner()
	r.Register(NewCleanupSystem(w))
	r.TickPhase(coresys.PhaseOutput, 0)
	if _, ok := w.Base(h); !ok {
		t.Fatalf("cleanup ran in the wrong phase")
	}
	r.TickPhase(coresys.PhaseCleanup, 0)
	if _, ok := w.Base(h); ok {
		t.Fatalf("entity not destroyed")
	}
}
