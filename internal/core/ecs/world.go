package ecs

// World owns the entity pool, the component registry and the deferred
// destroy queue. Entities marked during a tick stay resolvable until
// FlushDestroyQueue runs in the cleanup phase.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 16),
	}
}

func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID { return w.pool.Create() }

func (w *World) Alive(id EntityID) bool { return w.pool.Alive(id) }

// MarkForDestruction queues an entity for end-of-tick cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending reports how many entities are waiting for cleanup.
func (w *World) Pending() int { return len(w.destroyQueue) }

// FlushDestroyQueue destroys every queued entity. beforeRemove, when non-nil,
// sees each live entity while its components are still attached.
func (w *World) FlushDestroyQueue(beforeRemove func(EntityID)) {
	for _, id := range w.destroyQueue {
		if !w.pool.Alive(id) {
			continue // queued twice
		}
		if beforeRemove != nil {
			beforeRemove(id)
		}
		w.registry.RemoveAll(id)
		w.pool.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}
