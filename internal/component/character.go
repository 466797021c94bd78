package component

import "github.com/lgs/server/internal/net/packet"

// Kind is the closed set of entity variants the world knows about.
type Kind uint8

const (
	KindPC Kind = iota
	KindNPC
	KindMob
	KindPet
	KindTrust
)

func (k Kind) String() string {
	switch k {
	case KindPC:
		return "pc"
	case KindNPC:
		return "npc"
	case KindMob:
		return "mob"
	case KindPet:
		return "pet"
	case KindTrust:
		return "trust"
	default:
		return "unknown"
	}
}

// Entity is the base view every spawned object carries.
// Pure data; the world owns allocation of ID and TargID.
type Entity struct {
	ID     uint32 // persistent id, sent as the object id in packets
	TargID uint16 // per-session short index
	Name   string
	Kind   Kind
}

// Character is attached only to player-controlled entities.
type Character struct {
	Base   *Entity
	Outbox *packet.Outbox
}
