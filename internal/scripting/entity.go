package scripting

import (
	"github.com/lgs/server/internal/core/ecs"
	lua "github.com/yuin/gopher-lua"
)

// entityRef is the opaque value stored in a CBaseEntity userdata. It holds
// only the generational id; resolving it to an entity is the world's job.
type entityRef struct {
	id ecs.EntityID
}

func newEntity(L *lua.LState, id ecs.EntityID) lua.LValue {
	ud := L.NewUserData()
	ud.Value = entityRef{id: id}
	L.SetMetatable(ud, L.GetTypeMetatable(BaseEntityClass))
	return ud
}

// PushEntity pushes a CBaseEntity handle, or nil for the zero id.
func PushEntity(L *lua.LState, id ecs.EntityID) {
	if id.IsZero() {
		L.Push(lua.LNil)
		return
	}
	L.Push(newEntity(L, id))
}

func toEntity(v lua.LValue) (ecs.EntityID, bool) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return 0, false
	}
	ref, ok := ud.Value.(entityRef)
	if !ok {
		return 0, false
	}
	return ref.id, true
}

// CheckEntity returns the entity handle at stack index n, raising a Lua
// argument error when the value is not a CBaseEntity.
func CheckEntity(L *lua.LState, n int) ecs.EntityID {
	id, ok := toEntity(L.Get(n))
	if !ok {
		L.ArgError(n, BaseEntityClass+" expected")
		return 0
	}
	return id
}

// OptEntity returns the entity handle at stack index n. ok is false when
// the argument is missing, nil, or not an entity handle.
func OptEntity(L *lua.LState, n int) (ecs.EntityID, bool) {
	return toEntity(L.Get(n))
}

func entityEq(L *lua.LState) int {
	a, okA := toEntity(L.Get(1))
	b, okB := toEntity(L.Get(2))
	L.Push(lua.LBool(okA && okB && a == b))
	return 1
}
