package cpu

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the instruction name of opcode, or "???" if the opcode
// matches no known instruction. It is used for trace logging.
func Mnemonic(opcode uint16) string {
	opcodes := chip8.Opcodes[int(opcode>>12)]
	for _, op := range opcodes {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return "???"
}
