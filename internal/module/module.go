// Package module holds the plugin lifecycle: every native extension to the
// scripting layer is a Module whose OnInit runs once, in configured order,
// before any script is loaded.
package module

import (
	"errors"
	"fmt"

	"github.com/lgs/server/internal/data"
	"github.com/lgs/server/internal/scripting"
	"github.com/lgs/server/internal/world"
	"go.uber.org/zap"
)

var (
	ErrAlreadyInitialized = errors.New("modules already initialized")
	ErrDuplicateModule    = errors.New("duplicate module")
	ErrUnknownModule      = errors.New("unknown module")
)

// Module is a native extension to the scripting layer.
type Module interface {
	Name() string
	OnInit(h *Host) error
}

// Host is what a module may touch during OnInit.
type Host struct {
	World  *world.State
	Engine *scripting.Engine
	Emotes *data.EmoteTable // may be nil
	Log    *zap.Logger
}

// Registry keeps modules in the order they were added and initializes
// each exactly once.
type Registry struct {
	modules     []Module
	byName      map[string]Module
	initialized bool
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Module, 4)}
}

func (r *Registry) Add(m Module) error {
	if _, dup := r.byName[m.Name()]; dup {
		return fmt.Errorf("add %s: %w", m.Name(), ErrDuplicateModule)
	}
	r.modules = append(r.modules, m)
	r.byName[m.Name()] = m
	return nil
}

// Enable keeps only the named modules, in the order given.
func (r *Registry) Enable(names []string) error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	enabled := make([]Module, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		m, ok := r.byName[n]
		if !ok {
			return fmt.Errorf("enable %s: %w", n, ErrUnknownModule)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		enabled = append(enabled, m)
	}
	r.modules = enabled
	r.byName = make(map[string]Module, len(enabled))
	for _, m := range enabled {
		r.byName[m.Name()] = m
	}
	return nil
}

// InitAll calls OnInit on every module in order. It fails on the first
// module error and refuses to run twice.
func (r *Registry) InitAll(h *Host) error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	r.initialized = true
	for _, m := range r.modules {
		log := h.Log.With(zap.String("module", m.Name()))
		if err := m.OnInit(&Host{World: h.World, Engine: h.Engine, Emotes: h.Emotes, Log: log}); err != nil {
			return fmt.Errorf("init module %s: %w", m.Name(), err)
		}
		log.Info("module initialized")
	}
	return nil
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.Name()
	}
	return names
}
