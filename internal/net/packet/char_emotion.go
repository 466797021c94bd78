package packet

import "fmt"

// Packet is an outbound message queued on a character's Outbox.
type Packet interface {
	Opcode() byte
	Bytes() []byte
}

// CharEmotion tells the client to play an emote from the actor toward a target.
//
// Layout: [C 0x5A][DU actorID][DU targetID][H actorTargID][H targetTargID][C emote][C mode][H extra]
type CharEmotion struct {
	ActorID      uint32
	ActorTargID  uint16
	TargetID     uint32
	TargetTargID uint16
	Emote        Emote
	Mode         EmoteMode
	Extra        uint16
}

func (p *CharEmotion) Opcode() byte { return S_OPCODE_CHAR_EMOTION }

func (p *CharEmotion) Bytes() []byte {
	w := NewWriterWithOpcode(S_OPCODE_CHAR_EMOTION)
	w.WriteDU(p.ActorID)
	w.WriteDU(p.TargetID)
	w.WriteH(p.ActorTargID)
	w.WriteH(p.TargetTargID)
	w.WriteC(byte(p.Emote))
	w.WriteC(byte(p.Mode))
	w.WriteH(p.Extra)
	return w.Bytes()
}

// charEmotionSize is the unpadded encoded length.
const charEmotionSize = 17

// ParseCharEmotion decodes the output of CharEmotion.Bytes.
func ParseCharEmotion(data []byte) (*CharEmotion, error) {
	r := NewReader(data)
	if r.Opcode() != S_OPCODE_CHAR_EMOTION {
		return nil, fmt.Errorf("char emotion: unexpected opcode %s", OpcodeName(r.Opcode()))
	}
	if len(data) < charEmotionSize {
		return nil, fmt.Errorf("char emotion: short packet (%d bytes)", len(data))
	}
	p := &CharEmotion{}
	p.ActorID = r.ReadDU()
	p.TargetID = r.ReadDU()
	p.ActorTargID = r.ReadH()
	p.TargetTargID = r.ReadH()
	p.Emote = Emote(r.ReadC())
	p.Mode = EmoteMode(r.ReadC())
	p.Extra = r.ReadH()
	return p, nil
}
