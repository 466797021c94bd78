package packet

import "fmt"

// Server → client opcodes produced by this host.
const (
	S_OPCODE_CHAR_EMOTION byte = 0x5A
)

// OpcodeName is used for log output only.
func OpcodeName(op byte) string {
	switch op {
	case S_OPCODE_CHAR_EMOTION:
		return "CHAR_EMOTION"
	default:
		return fmt.Sprintf("0x%02X", op)
	}
}
