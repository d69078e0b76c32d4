package debug

import (
	"fmt"
	"strings"

	"github.com/valerio/go-dmgcore/dmg/cpu"
)

// stackWindow is how many bytes below the top of HRAM the dump shows.
const stackWindow = 6

// MemoryReader provides read-only access to emulator memory for debug tools.
type MemoryReader interface {
	Read(address uint16) uint8
}

// StackEntry is one byte of the stack dump.
type StackEntry struct {
	Address uint16
	Value   uint8
}

// CPUState contains all CPU register information for debugging.
type CPUState struct {
	NextOpcode   uint8
	Instructions uint64
	Cycles       uint64

	AF uint16
	BC uint16
	DE uint16
	HL uint16
	SP uint16
	PC uint16

	IME   bool
	State cpu.State

	Zero, Subtraction, HalfCarry, Carry bool

	Stack [stackWindow]StackEntry
}

// CaptureCPU takes a snapshot of c. Memory is read through mem, so the boot
// ROM overlay is honored the same way the CPU sees it.
func CaptureCPU(c *cpu.CPU, mem MemoryReader) CPUState {
	s := CPUState{
		NextOpcode:   mem.Read(c.PC()),
		Instructions: c.Instructions(),
		Cycles:       c.Cycles(),
		AF:           c.AF(),
		BC:           c.BC(),
		DE:           c.DE(),
		HL:           c.HL(),
		SP:           c.SP(),
		PC:           c.PC(),
		IME:          c.IME(),
		State:        c.State(),
		Zero:         c.Zero(),
		Subtraction:  c.Subtraction(),
		HalfCarry:    c.HalfCarry(),
		Carry:        c.Carry(),
	}

	for i := 0; i < stackWindow; i++ {
		address := uint16(0xFFFE - i)
		s.Stack[i] = StackEntry{Address: address, Value: mem.Read(address)}
	}
	return s
}

func flagDigit(set bool) int {
	if set {
		return 1
	}
	return 0
}

// String formats the state as a multi-line dump.
func (s CPUState) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Next Instr: %02X\n", s.NextOpcode)
	fmt.Fprintf(&b, "Total Instrs: %d\n", s.Instructions)
	fmt.Fprintf(&b, "Cycles Taken: %d\n", s.Cycles)
	fmt.Fprintf(&b, "AF: %04X\n", s.AF)
	fmt.Fprintf(&b, "BC: %04X\n", s.BC)
	fmt.Fprintf(&b, "DE: %04X\n", s.DE)
	fmt.Fprintf(&b, "HL: %04X\n", s.HL)
	fmt.Fprintf(&b, "SP: %04X\n", s.SP)
	fmt.Fprintf(&b, "PC: %04X\n", s.PC)
	b.WriteString("Stack:\n")
	for _, e := range s.Stack {
		fmt.Fprintf(&b, "%02X@%04X\n", e.Value, e.Address)
	}
	fmt.Fprintf(&b, "Z: %d N: %d H: %d C: %d",
		flagDigit(s.Zero), flagDigit(s.Subtraction), flagDigit(s.HalfCarry), flagDigit(s.Carry))

	return b.String()
}

// Line formats the registers on a single line, for trace logs.
func (s CPUState) Line() string {
	return fmt.Sprintf("PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IME=%t %s",
		s.PC, s.SP, s.AF, s.BC, s.DE, s.HL, s.IME, s.State)
}
