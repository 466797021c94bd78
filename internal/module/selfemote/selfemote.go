// Package selfemote adds CBaseEntity:selfEmote, which lets gathering scripts
// play an emote animation for the acting player only. The packet goes to
// the actor's own outbox and is not broadcast to nearby players.
package selfemote

import (
	"github.com/lgs/server/internal/component"
	"github.com/lgs/server/internal/core/ecs"
	"github.com/lgs/server/internal/module"
	"github.com/lgs/server/internal/net/packet"
	"github.com/lgs/server/internal/scripting"
	lua "github.com/yuin/gopher-lua"
)

const MethodName = "selfEmote"

// EntityView is the part of the entity model the adapter reads.
type EntityView interface {
	Base(h ecs.EntityID) (*component.Entity, bool)
	Character(h ecs.EntityID) (*component.Character, bool)
}

// Dispatch queues a CharEmotion on acting's outbox, aimed at target.
// A zero target, a non-player actor, or a target that no longer resolves
// all result in nothing being queued. Codes are forwarded unvalidated.
func Dispatch(v EntityView, acting, target ecs.EntityID, emID, emMode uint8) {
	if target.IsZero() {
		return
	}
	pc, ok := v.Character(acting)
	if !ok {
		return
	}
	tgt, ok := v.Base(target)
	if !ok {
		return
	}
	pc.Outbox.Push(&packet.CharEmotion{
		ActorID:      pc.Base.ID,
		ActorTargID:  pc.Base.TargID,
		TargetID:     tgt.ID,
		TargetTargID: tgt.TargID,
		Emote:        packet.Emote(emID),
		Mode:         packet.EmoteMode(emMode),
		Extra:        0,
	})
}

// Module registers selfEmote on the CBaseEntity class.
type Module struct{}

func New() *Module { return &Module{} }

func (*Module) Name() string { return "selfemote" }

func (*Module) OnInit(h *module.Host) error {
	return h.Engine.RegisterMethod(scripting.BaseEntityClass, MethodName, luaSelfEmote(h.World))
}

// luaSelfEmote implements entity:selfEmote(target, emoteID, emoteMode).
// target may be nil; numeric codes are truncated to a byte.
func luaSelfEmote(v EntityView) lua.LGFunction {
	return func(L *lua.LState) int {
		acting := scripting.CheckEntity(L, 1)
		target, _ := scripting.OptEntity(L, 2)
		emID := uint8(L.CheckInt(3))
		emMode := uint8(L.CheckInt(4))
		Dispatch(v, acting, target, emID, emMode)
		return 0
	}
}
