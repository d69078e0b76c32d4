package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestALUFlags(t *testing.T) {
	testCases := []struct {
		desc    string
		op      byte // operates on A and B
		a, b    uint8
		carryIn bool
		want    uint8
		flags   string
	}{
		{"ADD half carry", 0x80, 0x0F, 0x01, false, 0x10, "--H-"},
		{"ADD carry and zero", 0x80, 0xFF, 0x01, false, 0x00, "Z-HC"},
		{"ADD carry without half carry", 0x80, 0x80, 0x80, false, 0x00, "Z--C"},
		{"ADD ignores carry in", 0x80, 0x01, 0x01, true, 0x02, "----"},
		{"ADC adds carry", 0x88, 0x0E, 0x01, true, 0x10, "--H-"},
		{"ADC carry and zero", 0x88, 0xFF, 0x00, true, 0x00, "Z-HC"},
		{"SUB borrow", 0x90, 0x00, 0x01, false, 0xFF, "-NHC"},
		{"SUB half borrow", 0x90, 0x10, 0x01, false, 0x0F, "-NH-"},
		{"SUB zero", 0x90, 0x42, 0x42, false, 0x00, "ZN--"},
		{"SBC subtracts carry", 0x98, 0x10, 0x0F, true, 0x00, "ZNH-"},
		{"SBC borrow from carry only", 0x98, 0x00, 0x00, true, 0xFF, "-NHC"},
		{"AND zero", 0xA0, 0xF0, 0x0F, true, 0x00, "Z-H-"},
		{"AND", 0xA0, 0xFF, 0x81, false, 0x81, "--H-"},
		{"XOR self", 0xA8, 0xFF, 0xFF, true, 0x00, "Z---"},
		{"XOR", 0xA8, 0xF0, 0x0F, false, 0xFF, "----"},
		{"OR zero", 0xB0, 0x00, 0x00, true, 0x00, "Z---"},
		{"OR", 0xB0, 0x10, 0x01, false, 0x11, "----"},
		{"CP equal", 0xB8, 0x42, 0x42, false, 0x42, "ZN--"},
		{"CP less", 0xB8, 0x00, 0x01, false, 0x00, "-NHC"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu, _ := newTestCPU(t, tC.op)
			cpu.SetA(tC.a)
			cpu.SetB(tC.b)
			cpu.SetCarry(tC.carryIn)

			assert.Equal(t, 1, cpu.Tick())
			assert.Equal(t, tC.want, cpu.A())
			assert.Equal(t, tC.flags, cpu.FlagString())
		})
	}
}

func TestALUImmediateAndIndirect(t *testing.T) {
	cpu, mmu := newTestCPU(t, 0xC6, 0x05, 0x86) // ADD A, 5; ADD A, (HL)
	cpu.SetA(0x10)
	cpu.SetHL(0xC100)
	mmu.Write(0xC100, 0x20)

	assert.Equal(t, 2, cpu.Tick())
	assert.Equal(t, uint8(0x15), cpu.A())
	assert.Equal(t, 2, cpu.Tick())
	assert.Equal(t, uint8(0x35), cpu.A())
}

func TestIncDec(t *testing.T) {
	testCases := []struct {
		desc    string
		op      byte // operates on B
		value   uint8
		carryIn bool
		want    uint8
		flags   string
	}{
		{"INC half carry keeps C", 0x04, 0x0F, true, 0x10, "--HC"},
		{"INC wraps to zero", 0x04, 0xFF, false, 0x00, "Z-H-"},
		{"INC", 0x04, 0x41, false, 0x42, "----"},
		{"DEC to zero", 0x05, 0x01, false, 0x00, "ZN--"},
		{"DEC half borrow", 0x05, 0x10, true, 0x0F, "-NHC"},
		{"DEC wraps", 0x05, 0x00, false, 0xFF, "-NH-"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu, _ := newTestCPU(t, tC.op)
			cpu.SetB(tC.value)
			cpu.SetCarry(tC.carryIn)

			cpu.Tick()
			assert.Equal(t, tC.want, cpu.B())
			assert.Equal(t, tC.flags, cpu.FlagString())
		})
	}
}

func TestIncDecIndirect(t *testing.T) {
	cpu, mmu := newTestCPU(t, 0x34, 0x35, 0x35) // INC (HL); DEC (HL); DEC (HL)
	cpu.SetHL(0xC100)
	mmu.Write(0xC100, 0xFF)

	assert.Equal(t, 3, cpu.Tick())
	assert.Equal(t, uint8(0x00), mmu.Read(0xC100))
	assert.Equal(t, "Z-H-", cpu.FlagString())

	cpu.Tick()
	cpu.Tick()
	assert.Equal(t, uint8(0xFE), mmu.Read(0xC100))
	assert.Equal(t, "-N--", cpu.FlagString())
}

func TestSixteenBitIncDecLeaveFlags(t *testing.T) {
	for _, op := range []byte{0x03, 0x13, 0x23, 0x33, 0x0B, 0x1B, 0x2B, 0x3B} {
		cpu, _ := newTestCPU(t, op)
		cpu.SetBC(0xFFFF)
		cpu.SetDE(0x0000)
		cpu.SetHL(0x0FFF)
		cpu.SetSP(0x1000)
		cpu.SetF(0xA0)

		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint8(0xA0), cpu.F(), "opcode 0x%02X", op)
	}

	cpu, _ := newTestCPU(t, 0x23, 0x0B)
	cpu.SetHL(0x0FFF)
	cpu.Tick()
	cpu.Tick()
	assert.Equal(t, uint16(0x1000), cpu.HL())
	assert.Equal(t, uint16(0xFFFF), cpu.BC())
}

func TestAddHL(t *testing.T) {
	testCases := []struct {
		desc  string
		hl    uint16
		bc    uint16
		zero  bool
		want  uint16
		flags string
	}{
		{"half carry from bit 11", 0x0FFF, 0x0001, true, 0x1000, "Z-H-"},
		{"carry", 0xFFFF, 0x0001, false, 0x0000, "--HC"},
		{"carry without half carry", 0x8000, 0x8000, false, 0x0000, "---C"},
		{"no carry", 0x1234, 0x0101, false, 0x1335, "----"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu, _ := newTestCPU(t, 0x09)
			cpu.SetHL(tC.hl)
			cpu.SetBC(tC.bc)
			cpu.SetZero(tC.zero)
			cpu.SetSubtraction(true)

			assert.Equal(t, 2, cpu.Tick())
			assert.Equal(t, tC.want, cpu.HL())
			assert.Equal(t, tC.flags, cpu.FlagString())
		})
	}
}

func TestSPSignedOffset(t *testing.T) {
	testCases := []struct {
		desc   string
		sp     uint16
		offset uint8
		want   uint16
		flags  string
	}{
		{"carry from low byte", 0x00FF, 0x01, 0x0100, "--HC"},
		{"negative offset", 0x0001, 0xFF, 0x0000, "--HC"},
		{"negative no carry", 0x1000, 0xF0, 0x0FF0, "----"},
		{"positive", 0xFFF0, 0x08, 0xFFF8, "----"},
		{"half carry only", 0x000F, 0x01, 0x0010, "--H-"},
	}
	for _, tC := range testCases {
		t.Run("ADD SP "+tC.desc, func(t *testing.T) {
			cpu, _ := newTestCPU(t, 0xE8, tC.offset)
			cpu.SetSP(tC.sp)
			cpu.SetF(0xC0)

			assert.Equal(t, 4, cpu.Tick())
			assert.Equal(t, tC.want, cpu.SP())
			assert.Equal(t, tC.flags, cpu.FlagString())
		})
		t.Run("LD HL,SP+e "+tC.desc, func(t *testing.T) {
			cpu, _ := newTestCPU(t, 0xF8, tC.offset)
			cpu.SetSP(tC.sp)
			cpu.SetF(0xC0)

			assert.Equal(t, 3, cpu.Tick())
			assert.Equal(t, tC.want, cpu.HL())
			assert.Equal(t, tC.sp, cpu.SP())
			assert.Equal(t, tC.flags, cpu.FlagString())
		})
	}
}

func TestRotatesAndShifts(t *testing.T) {
	testCases := []struct {
		desc    string
		program []byte // operates on A
		value   uint8
		carryIn bool
		want    uint8
		flags   string
	}{
		{"RLCA", []byte{0x07}, 0x80, false, 0x01, "---C"},
		{"RLCA never sets Z", []byte{0x07}, 0x00, false, 0x00, "----"},
		{"RLA through carry", []byte{0x17}, 0x80, false, 0x00, "---C"},
		{"RLA carry in", []byte{0x17}, 0x01, true, 0x03, "----"},
		{"RRCA", []byte{0x0F}, 0x01, false, 0x80, "---C"},
		{"RRA carry in", []byte{0x1F}, 0x01, true, 0x80, "---C"},
		{"RLC A sets Z", []byte{0xCB, 0x07}, 0x00, true, 0x00, "Z---"},
		{"RL A sets Z", []byte{0xCB, 0x17}, 0x80, false, 0x00, "Z--C"},
		{"RRC A", []byte{0xCB, 0x0F}, 0x01, false, 0x80, "---C"},
		{"RR A", []byte{0xCB, 0x1F}, 0x01, false, 0x00, "Z--C"},
		{"SLA A", []byte{0xCB, 0x27}, 0x80, false, 0x00, "Z--C"},
		{"SRA A keeps bit 7", []byte{0xCB, 0x2F}, 0x81, false, 0xC0, "---C"},
		{"SWAP A", []byte{0xCB, 0x37}, 0xF0, true, 0x0F, "----"},
		{"SWAP zero", []byte{0xCB, 0x37}, 0x00, false, 0x00, "Z---"},
		{"SRL A", []byte{0xCB, 0x3F}, 0x01, false, 0x00, "Z--C"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu, _ := newTestCPU(t, tC.program...)
			cpu.SetA(tC.value)
			cpu.SetCarry(tC.carryIn)
			cpu.SetZero(true)

			cpu.Tick()
			assert.Equal(t, tC.want, cpu.A())
			assert.Equal(t, tC.flags, cpu.FlagString())
		})
	}
}

func TestBitResSet(t *testing.T) {
	cpu, mmu := newTestCPU(t,
		0xCB, 0x7F, // BIT 7, A
		0xCB, 0x47, // BIT 0, A
		0xCB, 0xDE, // SET 3, (HL)
		0xCB, 0x86, // RES 0, (HL)
		0xCB, 0x46, // BIT 0, (HL)
	)
	cpu.SetA(0x7F)
	cpu.SetHL(0xC100)
	mmu.Write(0xC100, 0x01)
	cpu.SetCarry(true)

	assert.Equal(t, 2, cpu.Tick())
	assert.Equal(t, "Z-HC", cpu.FlagString())

	assert.Equal(t, 2, cpu.Tick())
	assert.Equal(t, "--HC", cpu.FlagString())

	assert.Equal(t, 4, cpu.Tick())
	assert.Equal(t, uint8(0x09), mmu.Read(0xC100))
	assert.Equal(t, "--HC", cpu.FlagString())

	assert.Equal(t, 4, cpu.Tick())
	assert.Equal(t, uint8(0x08), mmu.Read(0xC100))

	assert.Equal(t, 3, cpu.Tick())
	assert.Equal(t, "Z-HC", cpu.FlagString())
}

func toBCD(n int) uint8 {
	return uint8(n/10<<4 | n%10)
}

func TestDAA(t *testing.T) {
	cpu, mmu := newTestCPU(t, 0x80, 0x27) // ADD A, B; DAA
	mmu.Write(0xC010, 0x90)               // SUB B
	mmu.Write(0xC011, 0x27)               // DAA

	for x := 0; x < 100; x++ {
		for y := 0; y < 100; y++ {
			cpu.SetPC(programStart)
			cpu.SetA(toBCD(x))
			cpu.SetB(toBCD(y))
			cpu.Tick()
			cpu.Tick()

			sum := x + y
			if cpu.A() != toBCD(sum%100) || cpu.Carry() != (sum >= 100) || cpu.Zero() != (sum%100 == 0) {
				t.Fatalf("%d + %d: got A=0x%02X flags %s", x, y, cpu.A(), cpu.FlagString())
			}

			cpu.SetPC(0xC010)
			cpu.SetA(toBCD(x))
			cpu.SetB(toBCD(y))
			cpu.Tick()
			cpu.Tick()

			diff := (x - y + 100) % 100
			if cpu.A() != toBCD(diff) || cpu.Carry() != (x < y) || cpu.HalfCarry() {
				t.Fatalf("%d - %d: got A=0x%02X flags %s", x, y, cpu.A(), cpu.FlagString())
			}
		}
	}
}

func TestMiscFlagOps(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x2F, 0x37, 0x3F, 0x3F) // CPL; SCF; CCF; CCF
	cpu.SetA(0x35)
	cpu.SetF(0x80)

	cpu.Tick()
	assert.Equal(t, uint8(0xCA), cpu.A())
	assert.Equal(t, "ZNH-", cpu.FlagString())

	cpu.Tick()
	assert.Equal(t, "Z--C", cpu.FlagString())

	cpu.Tick()
	assert.Equal(t, "Z---", cpu.FlagString())

	cpu.Tick()
	assert.Equal(t, "Z--C", cpu.FlagString())
}

func TestLoads(t *testing.T) {
	t.Run("LD (nn), SP stores low byte first", func(t *testing.T) {
		cpu, mmu := newTestCPU(t, 0x08, 0x00, 0xC1)
		cpu.SetSP(0xBEEF)

		assert.Equal(t, 5, cpu.Tick())
		assert.Equal(t, uint8(0xEF), mmu.Read(0xC100))
		assert.Equal(t, uint8(0xBE), mmu.Read(0xC101))
	})

	t.Run("HL post increment and decrement", func(t *testing.T) {
		cpu, mmu := newTestCPU(t, 0x22, 0x32, 0x2A) // LD (HL+),A; LD (HL-),A; LD A,(HL+)
		cpu.SetA(0x11)
		cpu.SetHL(0xC100)

		cpu.Tick()
		assert.Equal(t, uint16(0xC101), cpu.HL())
		cpu.Tick()
		assert.Equal(t, uint16(0xC100), cpu.HL())
		assert.Equal(t, uint8(0x11), mmu.Read(0xC101))

		mmu.Write(0xC100, 0x77)
		cpu.Tick()
		assert.Equal(t, uint8(0x77), cpu.A())
		assert.Equal(t, uint16(0xC101), cpu.HL())
	})

	t.Run("high page", func(t *testing.T) {
		cpu, mmu := newTestCPU(t, 0xE0, 0x80, 0xE2, 0xF0, 0x81) // LDH (0x80),A; LD (C),A; LDH A,(0x81)
		cpu.SetA(0x5A)
		cpu.SetC(0x81)

		assert.Equal(t, 3, cpu.Tick())
		assert.Equal(t, uint8(0x5A), mmu.Read(0xFF80))

		cpu.SetA(0xA5)
		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint8(0xA5), mmu.Read(0xFF81))

		cpu.SetA(0)
		assert.Equal(t, 3, cpu.Tick())
		assert.Equal(t, uint8(0xA5), cpu.A())
	})

	t.Run("register to register", func(t *testing.T) {
		cpu, mmu := newTestCPU(t, 0x78, 0x70, 0x5E) // LD A,B; LD (HL),B; LD E,(HL)
		cpu.SetB(0x42)
		cpu.SetHL(0xC100)

		assert.Equal(t, 1, cpu.Tick())
		assert.Equal(t, uint8(0x42), cpu.A())
		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint8(0x42), mmu.Read(0xC100))
		assert.Equal(t, 2, cpu.Tick())
		assert.Equal(t, uint8(0x42), cpu.E())
	})
}

func TestStack(t *testing.T) {
	cpu, mmu := newTestCPU(t, 0xC5, 0xF1) // PUSH BC; POP AF
	cpu.SetBC(0x12FF)

	assert.Equal(t, 4, cpu.Tick())
	assert.Equal(t, uint16(0xFFFC), cpu.SP())
	assert.Equal(t, uint8(0x12), mmu.Read(0xFFFD))
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFFFC))

	assert.Equal(t, 3, cpu.Tick())
	assert.Equal(t, uint16(0x12F0), cpu.AF())
	assert.Equal(t, uint16(0xFFFE), cpu.SP())
}

func TestControlFlow(t *testing.T) {
	t.Run("JR backwards", func(t *testing.T) {
		cpu, _ := newTestCPU(t, 0x00, 0x18, 0xFD) // NOP; JR -3
		cpu.Tick()
		assert.Equal(t, 3, cpu.Tick())
		assert.Equal(t, uint16(programStart), cpu.PC())
	})

	t.Run("CALL and RET", func(t *testing.T) {
		// CALL 0xC100, which holds a RET
		cpu, mmu := newTestCPU(t, 0xCD, 0x00, 0xC1)
		mmu.Write(0xC100, 0xC9)

		assert.Equal(t, 6, cpu.Tick())
		assert.Equal(t, uint16(0xC100), cpu.PC())
		assert.Equal(t, 4, cpu.Tick())
		assert.Equal(t, uint16(programStart+3), cpu.PC())
	})

	t.Run("RST", func(t *testing.T) {
		cpu, _ := newTestCPU(t, 0xEF) // RST 28H
		assert.Equal(t, 4, cpu.Tick())
		assert.Equal(t, uint16(0x28), cpu.PC())
		assert.Equal(t, uint16(programStart+1), cpu.popStack())
	})

	t.Run("JP (HL)", func(t *testing.T) {
		cpu, _ := newTestCPU(t, 0xE9)
		cpu.SetHL(0x1234)
		assert.Equal(t, 1, cpu.Tick())
		assert.Equal(t, uint16(0x1234), cpu.PC())
	})
}
