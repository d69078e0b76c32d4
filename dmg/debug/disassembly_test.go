package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProgram = []byte{
	0x00,       // C000 NOP
	0x3E, 0x42, // C001 LD A, $42
	0xC3, 0x50, 0x01, // C003 JP $0150
	0x18, 0xFE, // C006 JR $C006
	0xCB, 0x7C, // C008 BIT 7, H
	0x20, 0x05, // C00A JR NZ, $C011
	0xEA, 0x00, 0xC1, // C00C LD ($C100), A
}

func TestDisassembleRange(t *testing.T) {
	_, mmu := newTestMachine(t, testProgram...)

	lines := DisassembleRange(mmu, 0xC000, 7)
	require.Len(t, lines, 7)

	expected := []struct {
		address     uint16
		instruction string
		length      int
	}{
		{0xC000, "NOP", 1},
		{0xC001, "LD A, $42", 2},
		{0xC003, "JP $0150", 3},
		{0xC006, "JR $C006", 2},
		{0xC008, "BIT 7, H", 2},
		{0xC00A, "JR NZ, $C011", 2},
		{0xC00C, "LD ($C100), A", 3},
	}
	for i, want := range expected {
		assert.Equal(t, want.address, lines[i].Address)
		assert.Equal(t, want.instruction, lines[i].Instruction)
		assert.Equal(t, want.length, lines[i].Length)
	}
}

func TestDisassembleEndOfAddressSpace(t *testing.T) {
	_, mmu := newTestMachine(t)
	mmu.Write(0xFFFE, 0x00)
	mmu.Write(0xFFFF, 0xC3)

	line := DisassembleAt(mmu, 0xFFFF)
	assert.Equal(t, "JP $0000", line.Instruction)
	assert.Equal(t, 3, line.Length)

	lines := DisassembleRange(mmu, 0xFFFE, 5)
	assert.Len(t, lines, 2)
}

func TestDisassembleAround(t *testing.T) {
	_, mmu := newTestMachine(t, testProgram...)

	lines := DisassembleAround(mmu, 0xC008, 2, 1)
	require.Len(t, lines, 4)
	assert.Equal(t, uint16(0xC003), lines[0].Address)
	assert.Equal(t, uint16(0xC006), lines[1].Address)
	assert.Equal(t, uint16(0xC008), lines[2].Address)
	assert.Equal(t, uint16(0xC00A), lines[3].Address)

	assert.False(t, lines[1].IsCurrent)
	assert.True(t, lines[2].IsCurrent)

	assert.Equal(t, ">0xC008: BIT 7, H", lines[2].String())
	assert.Equal(t, " 0xC00A: JR NZ, $C011", lines[3].String())
}

func TestDisassembleAroundStart(t *testing.T) {
	_, mmu := newTestMachine(t)

	lines := DisassembleAround(mmu, 0x0000, 3, 2)
	require.Len(t, lines, 3)
	assert.True(t, lines[0].IsCurrent)
	assert.Equal(t, uint16(0x0000), lines[0].Address)
}
