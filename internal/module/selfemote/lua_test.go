package selfemote

import (
	"strings"
	"testing"

	"github.com/lgs/server/internal/component"
	"github.com/lgs/server/internal/data"
	"github.com/lgs/server/internal/module"
	"github.com/lgs/server/internal/module/baseentity"
	"github.com/lgs/server/internal/net/packet"
	"github.com/lgs/server/internal/scripting"
	"github.com/lgs/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testEmotes = `
emotes:
  - { name: LOGGING, id: 40 }
  - { name: EXCAVATION, id: 41 }
modes:
  - { name: MOTION, id: 2 }
`

type luaFixture struct {
	w      *world.State
	engine *scripting.Engine
	logs   *observer.ObservedLogs
}

func newLuaFixture(t *testing.T) luaFixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	w := world.NewState()
	if _, err := w.SpawnCharacter("Loxley", 1001, 4); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if _, err := w.SpawnEntity(component.KindNPC, "Oak", 42); err != nil {
		t.Fatalf("spawn: %v", err)
	}

	engine, err := scripting.NewEngine(t.TempDir(), log)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	t.Cleanup(engine.Close)

	emotes, err := data.ParseEmoteTable([]byte(testEmotes))
	if err != nil {
		t.Fatalf("emotes: %v", err)
	}

	reg := module.NewRegistry()
	reg.Add(baseentity.New())
	reg.Add(New())
	if err := reg.InitAll(&module.Host{World: w, Engine: engine, Emotes: emotes, Log: log}); err != nil {
		t.Fatalf("init: %v", err)
	}
	logs.TakeAll()
	return luaFixture{w: w, engine: engine, logs: logs}
}

func (f luaFixture) drain(t *testing.T, name string) []packet.Packet {
	t.Helper()
	h, ok := f.w.FindByName(name)
	if !ok {
		t.Fatalf("%s not spawned", name)
	}
	c, ok := f.w.Character(h)
	if !ok {
		t.Fatalf("%s is not a character", name)
	}
	return c.Outbox.Drain()
}

func TestModuleRegistersMethod(t *testing.T) {
	f := newLuaFixture(t)
	if !f.engine.HasMethod(scripting.BaseEntityClass, MethodName) {
		t.Fatalf("selfEmote not registered on %s", scripting.BaseEntityClass)
	}
}

func TestLuaSelfEmoteQueuesPacket(t *testing.T) {
	f := newLuaFixture(t)
	err := f.engine.DoString(`
local player = GetEntityByName("Loxley")
local tree = GetEntityByName("Oak")
player:selfEmote(tree, xi.emote.LOGGING, xi.emoteMode.MOTION)
`)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	pkts := f.drain(t, "Loxley")
	if len(pkts) != 1 {
		t.Fatalf("expected 1 packet, got %d", len(pkts))
	}
	p := pkts[0].(*packet.CharEmotion)
	if p.ActorID != 1001 || p.TargetID != 42 || p.Emote != packet.EmoteLogging || p.Mode != packet.EmoteModeMotion || p.Extra != 0 {
		t.Fatalf("unexpected packet %+v", *p)
	}
	if f.logs.Len() != 0 {
		t.Fatalf("dispatch must not log, got %v", f.logs.All())
	}
}

func TestLuaSelfEmoteSilentNoOps(t *testing.T) {
	f := newLuaFixture(t)
	err := f.engine.DoString(`
local player = GetEntityByName("Loxley")
local tree = GetEntityByName("Oak")
player:selfEmote(nil, 5, 2)        -- no target
tree:selfEmote(player, 3, 1)       -- actor is not a player
player:selfEmote("Oak", 5, 2)      -- target is not an entity handle
`)
	if err != nil {
		t.Fatalf("no-op paths must not raise: %v", err)
	}
	if pkts := f.drain(t, "Loxley"); len(pkts) != 0 {
		t.Fatalf("expected no packets, got %d", len(pkts))
	}
	if f.logs.Len() != 0 {
		t.Fatalf("no-op paths must not log, got %v", f.logs.All())
	}
}

func TestLuaSelfEmoteStaleTarget(t *testing.T) {
	f := newLuaFixture(t)
	if err := f.engine.DoString(`tree = GetEntityByName("Oak")`); err != nil {
		t.Fatalf("script: %v", err)
	}
	h, _ := f.w.FindByName("Oak")
	f.w.Despawn(h)
	f.w.Cleanup()

	err := f.engine.DoString(`
GetEntityByName("Loxley"):selfEmote(tree, 5, 2)
alive = tree:isAlive()
`)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	if pkts := f.drain(t, "Loxley"); len(pkts) != 0 {
		t.Fatalf("stale target must not produce a packet")
	}
}

func TestLuaSelfEmoteNarrowsToByte(t *testing.T) {
	f := newLuaFixture(t)
	err := f.engine.DoString(`
local player = GetEntityByName("Loxley")
local tree = GetEntityByName("Oak")
player:selfEmote(tree, 255, 0)
player:selfEmote(tree, 256, -1)
`)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	pkts := f.drain(t, "Loxley")
	if len(pkts) != 2 {
		t.Fatalf("expected 2 packets, got %d", len(pkts))
	}
	first := pkts[0].(*packet.CharEmotion)
	second := pkts[1].(*packet.CharEmotion)
	if first.Emote != 255 || first.Mode != 0 {
		t.Fatalf("first = %+v", *first)
	}
	if second.Emote != 0 || second.Mode != 255 {
		t.Fatalf("second = %+v", *second)
	}
}

func TestLuaSelfEmoteRequiresEntityReceiver(t *testing.T) {
	f := newLuaFixture(t)
	err := f.engine.DoString(`
local tree = GetEntityByName("Oak")
local m = getmetatable(tree).__index.selfEmote
m("Loxley", tree, 1, 1)
`)
	if err == nil || !strings.Contains(err.Error(), scripting.BaseEntityClass+" expected") {
		t.Fatalf("expected receiver type error, got %v", err)
	}
}
