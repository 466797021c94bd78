// Package baseentity provides the CBaseEntity accessors gathering scripts
// rely on: identity, kind checks and lookup by name. Handles whose entity
// has despawned answer nil / false instead of raising.
package baseentity

import (
	"github.com/lgs/server/internal/component"
	"github.com/lgs/server/internal/module"
	"github.com/lgs/server/internal/scripting"
	"github.com/lgs/server/internal/world"
	lua "github.com/yuin/gopher-lua"
)

type Module struct{}

func New() *Module { return &Module{} }

func (*Module) Name() string { return "baseentity" }

func (*Module) OnInit(h *module.Host) error {
	w := h.World
	methods := map[string]lua.LGFunction{
		"getID": func(L *lua.LState) int {
			e, ok := w.Base(scripting.CheckEntity(L, 1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LNumber(e.ID))
			return 1
		},
		"getTargID": func(L *lua.LState) int {
			e, ok := w.Base(scripting.CheckEntity(L, 1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LNumber(e.TargID))
			return 1
		},
		"getName": func(L *lua.LState) int {
			e, ok := w.Base(scripting.CheckEntity(L, 1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(e.Name))
			return 1
		},
		"isPC": func(L *lua.LState) int {
			e, ok := w.Base(scripting.CheckEntity(L, 1))
			L.Push(lua.LBool(ok && e.Kind == component.KindPC))
			return 1
		},
		"isAlive": func(L *lua.LState) int {
			_, ok := w.Base(scripting.CheckEntity(L, 1))
			L.Push(lua.LBool(ok))
			return 1
		},
	}
	for name, fn := range methods {
		if err := h.Engine.RegisterMethod(scripting.BaseEntityClass, name, fn); err != nil {
			return err
		}
	}

	h.Engine.RegisterGlobal("GetEntityByName", getEntityByName(w))

	if h.Emotes != nil {
		h.Engine.SetConstants("emote", h.Emotes.Emotes())
		h.Engine.SetConstants("emoteMode", h.Emotes.Modes())
	}
	return nil
}

func getEntityByName(w *world.State) lua.LGFunction {
	return func(L *lua.LState) int {
		id, ok := w.FindByName(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		scripting.PushEntity(L, id)
		return 1
	}
}
