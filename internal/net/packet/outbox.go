package packet

// Outbox buffers packets for one character until the output phase drains
// them. Game-loop goroutine only; no locking.
type Outbox struct {
	buf []Packet
}

// NewOutbox preallocates room for capHint packets.
func NewOutbox(capHint int) *Outbox {
	if capHint < 0 {
		capHint = 0
	}
	return &Outbox{buf: make([]Packet, 0, capHint)}
}

// Push appends p. It never blocks and never drops.
func (o *Outbox) Push(p Packet) {
	o.buf = append(o.buf, p)
}

func (o *Outbox) Len() int { return len(o.buf) }

// Peek returns the queued packets without removing them.
func (o *Outbox) Peek() []Packet { return o.buf }

// Drain removes and returns everything queued, oldest first.
func (o *Outbox) Drain() []Packet {
	if len(o.buf) == 0 {
		return nil
	}
	out := o.buf
	o.buf = make([]Packet, 0, cap(out))
	return out
}
