package debug

import (
	"fmt"
	"strings"

	"github.com/valerio/go-dmgcore/dmg/bit"
	"github.com/valerio/go-dmgcore/dmg/cpu"
)

// DisasmLine represents a single disassembled instruction.
type DisasmLine struct {
	Address     uint16
	Instruction string
	Length      int
	IsCurrent   bool
}

func isRelativeJump(opcode uint8) bool {
	switch opcode {
	case 0x18, 0x20, 0x28, 0x30, 0x38:
		return true
	}
	return false
}

// DisassembleAt decodes the instruction at pc, filling in its operands.
// Operands running past the end of the address space read as zero.
func DisassembleAt(mem MemoryReader, pc uint16) DisasmLine {
	opcode := mem.Read(pc)
	length := cpu.Length(opcode)

	operand := func(offset uint16) uint8 {
		if uint32(pc)+uint32(offset) > 0xFFFF {
			return 0
		}
		return mem.Read(pc + offset)
	}

	var instruction string
	switch {
	case opcode == 0xCB:
		instruction = cpu.Name(bit.Combine(0xCB, operand(1)))
	case length == 3:
		nn := bit.Combine(operand(2), operand(1))
		instruction = strings.Replace(cpu.Name(uint16(opcode)), "nn", fmt.Sprintf("$%04X", nn), 1)
	case length == 2 && isRelativeJump(opcode):
		target := bit.AddSigned(pc+2, operand(1))
		instruction = strings.Replace(cpu.Name(uint16(opcode)), "n", fmt.Sprintf("$%04X", target), 1)
	case length == 2:
		instruction = strings.Replace(cpu.Name(uint16(opcode)), "n", fmt.Sprintf("$%02X", operand(1)), 1)
	default:
		instruction = cpu.Name(uint16(opcode))
	}

	return DisasmLine{
		Address:     pc,
		Instruction: instruction,
		Length:      length,
	}
}

// DisassembleRange disassembles count instructions starting from start,
// stopping early at the end of the address space.
func DisassembleRange(mem MemoryReader, start uint16, count int) []DisasmLine {
	lines := make([]DisasmLine, 0, count)
	pc := uint32(start)

	for len(lines) < count && pc <= 0xFFFF {
		line := DisassembleAt(mem, uint16(pc))
		lines = append(lines, line)
		pc += uint32(line.Length)
	}

	return lines
}

// DisassembleAround returns up to before instructions leading to pc, the one
// at pc (marked current) and after more.
//
// The instruction set has variable length, so going backwards is a guess:
// the earliest start address within 3*before bytes that decodes into pc is
// used.
func DisassembleAround(mem MemoryReader, pc uint16, before, after int) []DisasmLine {
	start := pc
	for offset := min(before*3, int(pc)); offset > 0; offset-- {
		candidate := pc - uint16(offset)
		lines := DisassembleRange(mem, candidate, before*3)
		if reaches(lines, pc) {
			start = candidate
			break
		}
	}

	var prefix []DisasmLine
	for _, line := range DisassembleRange(mem, start, before*3+1) {
		if line.Address >= pc {
			break
		}
		prefix = append(prefix, line)
	}
	if len(prefix) > before {
		prefix = prefix[len(prefix)-before:]
	}

	lines := append(prefix, DisassembleRange(mem, pc, after+1)...)
	for i := range lines {
		lines[i].IsCurrent = lines[i].Address == pc
	}
	return lines
}

func reaches(lines []DisasmLine, pc uint16) bool {
	for _, line := range lines {
		if line.Address == pc {
			return true
		}
		if line.Address > pc {
			return false
		}
	}
	return false
}

// String formats the line for display, marking the current instruction.
func (l DisasmLine) String() string {
	prefix := " "
	if l.IsCurrent {
		prefix = ">"
	}
	return fmt.Sprintf("%s0x%04X: %s", prefix, l.Address, l.Instruction)
}
