package world

import (
	"fmt"

	"github.com/lgs/server/internal/component"
	"github.com/lgs/server/internal/core/ecs"
	"github.com/lgs/server/internal/net/packet"
)

// State is the in-memory entity model. Accessed only from the game loop
// goroutine; no locks.
type State struct {
	ecs        *ecs.World
	entities   *ecs.PtrComponentStore[component.Entity]
	characters *ecs.PtrComponentStore[component.Character]

	byName  map[string]ecs.EntityID
	targIDs *targIDAllocator
}

func NewState() *State {
	w := ecs.NewWorld()
	s := &State{
		ecs:        w,
		entities:   ecs.NewPtrComponentStore[component.Entity](),
		characters: ecs.NewPtrComponentStore[component.Character](),
		byName:     make(map[string]ecs.EntityID),
		targIDs:    newTargIDAllocator(),
	}
	w.Registry().Register(s.entities)
	w.Registry().Register(s.characters)
	return s
}

// SpawnCharacter creates a player-controlled entity with its own outbox.
func (s *State) SpawnCharacter(name string, id uint32, outboxCap int) (ecs.EntityID, error) {
	h, base, err := s.spawn(component.KindPC, name, id)
	if err != nil {
		return 0, err
	}
	s.characters.Set(h, &component.Character{
		Base:   base,
		Outbox: packet.NewOutbox(outboxCap),
	})
	return h, nil
}

// SpawnEntity creates a non-player entity. Use SpawnCharacter for KindPC.
func (s *State) SpawnEntity(kind component.Kind, name string, id uint32) (ecs.EntityID, error) {
	if kind == component.KindPC {
		return 0, fmt.Errorf("spawn %q: player characters need SpawnCharacter", name)
	}
	h, _, err := s.spawn(kind, name, id)
	return h, err
}

func (s *State) spawn(kind component.Kind, name string, id uint32) (ecs.EntityID, *component.Entity, error) {
	if name != "" {
		if _, taken := s.byName[name]; taken {
			return 0, nil, fmt.Errorf("spawn %q: name already in use", name)
		}
	}
	targ, ok := s.targIDs.Acquire()
	if !ok {
		return 0, nil, fmt.Errorf("spawn %q: no free targ id", name)
	}
	h := s.ecs.CreateEntity()
	base := &component.Entity{ID: id, TargID: targ, Name: name, Kind: kind}
	s.entities.Set(h, base)
	if name != "" {
		s.byName[name] = h
	}
	return h, base, nil
}

// Despawn queues h for removal at the end of the tick. The handle keeps
// resolving until Cleanup runs.
func (s *State) Despawn(h ecs.EntityID) {
	if s.ecs.Alive(h) {
		s.ecs.MarkForDestruction(h)
	}
}

// Cleanup destroys despawned entities and returns their TargIDs to the pool.
func (s *State) Cleanup() {
	s.ecs.FlushDestroyQueue(func(h ecs.EntityID) {
		if e, ok := s.entities.Get(h); ok {
			s.targIDs.Release(e.TargID)
			if s.byName[e.Name] == h {
				delete(s.byName, e.Name)
			}
		}
	})
}

// Base resolves a handle to its entity. Stale handles return ok=false.
func (s *State) Base(h ecs.EntityID) (*component.Entity, bool) {
	if !s.ecs.Alive(h) {
		return nil, false
	}
	return s.entities.Get(h)
}

// Character narrows a handle to its player-character view. ok is false
// for non-player entities and stale handles.
func (s *State) Character(h ecs.EntityID) (*component.Character, bool) {
	if !s.ecs.Alive(h) {
		return nil, false
	}
	return s.characters.Get(h)
}

func (s *State) FindByName(name string) (ecs.EntityID, bool) {
	h, ok := s.byName[name]
	if !ok || !s.ecs.Alive(h) {
		return 0, false
	}
	return h, true
}

// Characters visits every live player character.
func (s *State) Characters(fn func(ecs.EntityID, *component.Character)) {
	ecs.Each2(s.entities, s.characters, func(h ecs.EntityID, _ *component.Entity, c *component.Character) {
		fn(h, c)
	})
}

func (s *State) Count() int { return s.entities.Len() }
