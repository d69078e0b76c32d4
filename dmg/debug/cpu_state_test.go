package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmgcore/dmg/cpu"
	"github.com/valerio/go-dmgcore/dmg/memory"
)

func newTestMachine(t *testing.T, program ...byte) (*cpu.CPU, *memory.MMU) {
	t.Helper()

	mmu, err := memory.New(nil, nil)
	require.NoError(t, err)
	for i, b := range program {
		mmu.Write(0xC000+uint16(i), b)
	}

	c := cpu.New(mmu)
	c.SetPC(0xC000)
	c.SetSP(0xFFFE)
	return c, mmu
}

func TestCaptureCPU(t *testing.T) {
	c, mmu := newTestMachine(t, 0x00, 0x3E, 0x42)
	c.SetAF(0x12B0)
	c.SetBC(0x3456)
	c.SetDE(0x789A)
	c.SetHL(0xBCDE)
	for i := uint16(0); i < uint16(6); i++ {
		mmu.Write(0xFFF9+i, byte(0xA0+i))
	}
	c.Tick()

	s := CaptureCPU(c, mmu)
	assert.Equal(t, uint8(0x3E), s.NextOpcode)
	assert.Equal(t, uint64(1), s.Instructions)
	assert.Equal(t, uint64(1), s.Cycles)
	assert.Equal(t, uint16(0x12B0), s.AF)
	assert.Equal(t, uint16(0xC001), s.PC)
	assert.Equal(t, cpu.Running, s.State)
	assert.True(t, s.Zero)
	assert.False(t, s.Subtraction)
	assert.True(t, s.HalfCarry)
	assert.True(t, s.Carry)

	assert.Equal(t, StackEntry{Address: 0xFFFE, Value: 0xA5}, s.Stack[0])
	assert.Equal(t, StackEntry{Address: 0xFFF9, Value: 0xA0}, s.Stack[5])
}

func TestCPUStateString(t *testing.T) {
	c, mmu := newTestMachine(t, 0x00, 0x3E, 0x42)
	c.SetAF(0x12B0)
	c.Tick()

	out := CaptureCPU(c, mmu).String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 17)

	assert.Equal(t, "Next Instr: 3E", lines[0])
	assert.Equal(t, "Total Instrs: 1", lines[1])
	assert.Equal(t, "Cycles Taken: 1", lines[2])
	assert.Equal(t, "AF: 12B0", lines[3])
	assert.Equal(t, "PC: C001", lines[8])
	assert.Equal(t, "Stack:", lines[9])
	assert.Equal(t, "00@FFFE", lines[10])
	assert.Equal(t, "00@FFF9", lines[15])
	assert.Equal(t, "Z: 1 N: 0 H: 1 C: 1", lines[16])
}

func TestCPUStateLine(t *testing.T) {
	c, mmu := newTestMachine(t)
	c.SetHL(0x8000)

	line := CaptureCPU(c, mmu).Line()
	assert.Equal(t, "PC=C000 SP=FFFE AF=0000 BC=0000 DE=0000 HL=8000 IME=false running", line)
}
