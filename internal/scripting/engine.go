package scripting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lgs/server/internal/core/ecs"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// BaseEntityClass is the Lua class every entity handle belongs to.
const BaseEntityClass = "CBaseEntity"

// ErrUnknownClass is returned when registering on a class that was never defined.
var ErrUnknownClass = errors.New("unknown lua class")

// scriptDirs are loaded in this order before loose files in the root.
var scriptDirs = []string{"core", "globals", "zones"}

// Engine wraps a single gopher-lua VM for game logic execution.
// Single-goroutine access only (game loop).
type Engine struct {
	vm         *lua.LState
	scriptsDir string
	classes    map[string]*lua.LTable // class name → method table
	log        *zap.Logger
}

// NewEngine creates the VM and the CBaseEntity class. Scripts are not
// loaded until LoadScripts, so modules can register methods first.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{
		vm:         vm,
		scriptsDir: scriptsDir,
		classes:    make(map[string]*lua.LTable, 2),
		log:        log,
	}
	if err := e.DefineClass(BaseEntityClass); err != nil {
		vm.Close()
		return nil, err
	}
	return e, nil
}

// DefineClass creates a userdata class whose methods live in a shared
// table, so methods registered later are visible to existing handles.
func (e *Engine) DefineClass(name string) error {
	if _, ok := e.classes[name]; ok {
		return fmt.Errorf("define class %s: already defined", name)
	}
	methods := e.vm.NewTable()
	mt := e.vm.NewTypeMetatable(name)
	e.vm.SetField(mt, "__index", methods)
	e.vm.SetField(mt, "__eq", e.vm.NewFunction(entityEq))
	e.vm.SetField(mt, "__tostring", e.vm.NewFunction(func(L *lua.LState) int {
		id, _ := toEntity(L.Get(1))
		L.Push(lua.LString(fmt.Sprintf("%s(%d:%d)", name, id.Index(), id.Generation())))
		return 1
	}))
	e.classes[name] = methods
	return nil
}

// RegisterMethod exposes fn as class:name(...). Re-registering a name
// replaces the previous function.
func (e *Engine) RegisterMethod(class, name string, fn lua.LGFunction) error {
	methods, ok := e.classes[class]
	if !ok {
		return fmt.Errorf("register %s:%s: %w", class, name, ErrUnknownClass)
	}
	methods.RawSetString(name, e.vm.NewFunction(fn))
	e.log.Debug("registered lua method", zap.String("class", class), zap.String("method", name))
	return nil
}

// HasMethod reports whether class:name is registered.
func (e *Engine) HasMethod(class, name string) bool {
	methods, ok := e.classes[class]
	if !ok {
		return false
	}
	return methods.RawGetString(name) != lua.LNil
}

// RegisterGlobal exposes fn as a global function.
func (e *Engine) RegisterGlobal(name string, fn lua.LGFunction) {
	e.vm.SetGlobal(name, e.vm.NewFunction(fn))
}

// SetConstants publishes consts as xi.<group>.<NAME>.
func (e *Engine) SetConstants(group string, consts map[string]int) {
	xi, ok := e.vm.GetGlobal("xi").(*lua.LTable)
	if !ok {
		xi = e.vm.NewTable()
		e.vm.SetGlobal("xi", xi)
	}
	t := e.vm.NewTable()
	for k, v := range consts {
		t.RawSetString(k, lua.LNumber(v))
	}
	xi.RawSetString(group, t)
}

// LoadScripts runs every .lua file under the scripts dir. Subdirectories
// in scriptDirs come first; missing dirs are skipped.
func (e *Engine) LoadScripts() (int, error) {
	total := 0
	for _, sub := range scriptDirs {
		n, err := e.loadDir(filepath.Join(e.scriptsDir, sub))
		if err != nil {
			return total, fmt.Errorf("load %s scripts: %w", sub, err)
		}
		total += n
	}
	n, err := e.loadDir(e.scriptsDir)
	if err != nil {
		return total, fmt.Errorf("load scripts: %w", err)
	}
	return total + n, nil
}

// loadDir loads all .lua files in a directory in name order.
func (e *Engine) loadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	n := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return n, fmt.Errorf("load %s: %w", path, err)
		}
		n++
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return n, nil
}

// DoString runs a chunk of Lua source.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// CallHook calls the global function name if a script defined one.
// A missing hook is not an error.
func (e *Engine) CallHook(name string, args ...lua.LValue) error {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return nil
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		return fmt.Errorf("lua hook %s: %w", name, err)
	}
	return nil
}

// NewEntity wraps id in a CBaseEntity handle.
func (e *Engine) NewEntity(id ecs.EntityID) lua.LValue {
	return newEntity(e.vm, id)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
