package cpu

import "github.com/valerio/go-dmgcore/dmg/bit"

// Flag is one of the 4 possible flags used in the flag register (low part of AF)
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// Registers is the register file. Each pair is stored once as a 16-bit value,
// the 8-bit registers are views over its high (first-named) and low bytes.
type Registers struct {
	af uint16
	bc uint16
	de uint16
	hl uint16
	sp uint16
	pc uint16
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

func (r *Registers) A() uint8 { return bit.High(r.af) }
func (r *Registers) F() uint8 { return bit.Low(r.af) }
func (r *Registers) B() uint8 { return bit.High(r.bc) }
func (r *Registers) C() uint8 { return bit.Low(r.bc) }
func (r *Registers) D() uint8 { return bit.High(r.de) }
func (r *Registers) E() uint8 { return bit.Low(r.de) }
func (r *Registers) H() uint8 { return bit.High(r.hl) }
func (r *Registers) L() uint8 { return bit.Low(r.hl) }

func (r *Registers) SetA(value uint8) { r.af = bit.Combine(value, bit.Low(r.af)) }

// SetF writes the flag register. The low nibble is always zero.
func (r *Registers) SetF(value uint8) { r.af = bit.Combine(bit.High(r.af), value&0xF0) }

func (r *Registers) SetB(value uint8) { r.bc = bit.Combine(value, bit.Low(r.bc)) }
func (r *Registers) SetC(value uint8) { r.bc = bit.Combine(bit.High(r.bc), value) }
func (r *Registers) SetD(value uint8) { r.de = bit.Combine(value, bit.Low(r.de)) }
func (r *Registers) SetE(value uint8) { r.de = bit.Combine(bit.High(r.de), value) }
func (r *Registers) SetH(value uint8) { r.hl = bit.Combine(value, bit.Low(r.hl)) }
func (r *Registers) SetL(value uint8) { r.hl = bit.Combine(bit.High(r.hl), value) }

func (r *Registers) AF() uint16 { return r.af }
func (r *Registers) BC() uint16 { return r.bc }
func (r *Registers) DE() uint16 { return r.de }
func (r *Registers) HL() uint16 { return r.hl }
func (r *Registers) SP() uint16 { return r.sp }
func (r *Registers) PC() uint16 { return r.pc }

// SetAF writes A and F, masking the unused low nibble of F.
func (r *Registers) SetAF(value uint16) { r.af = value & 0xFFF0 }

func (r *Registers) SetBC(value uint16) { r.bc = value }
func (r *Registers) SetDE(value uint16) { r.de = value }
func (r *Registers) SetHL(value uint16) { r.hl = value }
func (r *Registers) SetSP(value uint16) { r.sp = value }
func (r *Registers) SetPC(value uint16) { r.pc = value }

func (r *Registers) Zero() bool        { return r.isSetFlag(zeroFlag) }
func (r *Registers) Subtraction() bool { return r.isSetFlag(subFlag) }
func (r *Registers) HalfCarry() bool   { return r.isSetFlag(halfCarryFlag) }
func (r *Registers) Carry() bool       { return r.isSetFlag(carryFlag) }

func (r *Registers) SetZero(on bool)        { r.setFlagToCondition(zeroFlag, on) }
func (r *Registers) SetSubtraction(on bool) { r.setFlagToCondition(subFlag, on) }
func (r *Registers) SetHalfCarry(on bool)   { r.setFlagToCondition(halfCarryFlag, on) }
func (r *Registers) SetCarry(on bool)       { r.setFlagToCondition(carryFlag, on) }

func (r *Registers) setFlag(flag Flag) {
	r.af |= uint16(flag)
}

func (r *Registers) resetFlag(flag Flag) {
	r.af &^= uint16(flag)
}

func (r *Registers) isSetFlag(flag Flag) bool {
	return r.af&uint16(flag) != 0
}

// flagToBit will return 1 if the passed flag is set, 0 otherwise
func (r *Registers) flagToBit(flag Flag) uint8 {
	if r.isSetFlag(flag) {
		return 1
	}

	return 0
}

func (r *Registers) setFlagToCondition(flag Flag, condition bool) {
	if !condition {
		r.resetFlag(flag)
		return
	}

	r.setFlag(flag)
}

// FlagString returns a human-readable representation of the flag register,
// e.g. "Z-H-".
func (r *Registers) FlagString() string {
	flags := []byte("ZNHC")
	for i, flag := range []Flag{zeroFlag, subFlag, halfCarryFlag, carryFlag} {
		if !r.isSetFlag(flag) {
			flags[i] = '-'
		}
	}
	return string(flags)
}
