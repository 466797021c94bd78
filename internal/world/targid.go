package world

// targIDAllocator hands out the short per-session ids clients use to refer
// to nearby objects. 0 is never issued.
type targIDAllocator struct {
	next  uint16
	inUse map[uint16]struct{}
}

func newTargIDAllocator() *targIDAllocator {
	return &targIDAllocator{next: 1, inUse: make(map[uint16]struct{}, 64)}
}

func (a *targIDAllocator) Acquire() (uint16, bool) {
	if len(a.inUse) >= 0xFFFF {
		return 0, false
	}
	for {
		id := a.next
		a.next++
		if a.next == 0 {
			a.next = 1
		}
		if _, taken := a.inUse[id]; !taken {
			a.inUse[id] = struct{}{}
			return id, true
		}
	}
}

func (a *targIDAllocator) Release(id uint16) {
	delete(a.inUse, id)
}
