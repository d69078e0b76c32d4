package cpu

import "github.com/valerio/go-dmgcore/dmg/bit"

// operand is an 8-bit instruction operand, numbered the way opcodes encode
// them in their low three bits. opHL is the byte at the address in HL.
type operand uint8

const (
	opB operand = iota
	opC
	opD
	opE
	opH
	opL
	opHL
	opA
)

var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (c *CPU) read8(op operand) uint8 {
	switch op {
	case opB:
		return c.B()
	case opC:
		return c.C()
	case opD:
		return c.D()
	case opE:
		return c.E()
	case opH:
		return c.H()
	case opL:
		return c.L()
	case opHL:
		return c.bus.Read(c.hl)
	case opA:
		return c.A()
	}
	panic("invalid operand")
}

func (c *CPU) write8(op operand, value uint8) {
	switch op {
	case opB:
		c.SetB(value)
	case opC:
		c.SetC(value)
	case opD:
		c.SetD(value)
	case opE:
		c.SetE(value)
	case opH:
		c.SetH(value)
	case opL:
		c.SetL(value)
	case opHL:
		c.bus.Write(c.hl, value)
	case opA:
		c.SetA(value)
	default:
		panic("invalid operand")
	}
}

func (c *CPU) inc(value uint8) uint8 {
	result := value + 1

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlagToCondition(halfCarryFlag, value&0xF == 0xF)
	c.resetFlag(subFlag)

	return result
}

func (c *CPU) dec(value uint8) uint8 {
	result := value - 1

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlagToCondition(halfCarryFlag, value&0xF == 0)
	c.setFlag(subFlag)

	return result
}

// addToA sets the result of adding value to A, while setting all relevant flags.
func (c *CPU) addToA(value uint8) {
	c.adc(value, 0)
}

// adc adds value and carry to A.
func (c *CPU) adc(value, carry uint8) {
	a := c.A()
	result := uint16(a) + uint16(value) + uint16(carry)

	c.setFlagToCondition(zeroFlag, uint8(result) == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0xF)+(value&0xF)+carry > 0xF)
	c.setFlagToCondition(carryFlag, result > 0xFF)

	c.SetA(uint8(result))
}

// sub will subtract the value from register A and set all relevant flags.
func (c *CPU) sub(value uint8) {
	c.SetA(c.subtract(value, 0))
}

func (c *CPU) sbc(value, carry uint8) {
	c.SetA(c.subtract(value, carry))
}

// cp compares A with value: a subtraction that only keeps the flags.
func (c *CPU) cp(value uint8) {
	c.subtract(value, 0)
}

func (c *CPU) subtract(value, carry uint8) uint8 {
	a := c.A()
	result := int(a) - int(value) - int(carry)

	c.setFlagToCondition(zeroFlag, uint8(result) == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, int(a&0xF)-int(value&0xF)-int(carry) < 0)
	c.setFlagToCondition(carryFlag, result < 0)

	return uint8(result)
}

func (c *CPU) and(value uint8) {
	result := c.A() & value
	c.SetA(result)

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) or(value uint8) {
	result := c.A() | value
	c.SetA(result)

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) xor(value uint8) {
	result := c.A() ^ value
	c.SetA(result)

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

// addToHL sets the result of adding a 16 bit value to HL. Z is not affected.
func (c *CPU) addToHL(value uint16) {
	hl := c.hl
	result := uint32(hl) + uint32(value)

	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.setFlagToCondition(carryFlag, result > 0xFFFF)

	c.hl = uint16(result)
}

// addSPSigned returns SP plus the signed offset. Half carry and carry come
// from the unsigned addition of the low byte of SP and the offset; Z and N
// are cleared. Shared by ADD SP,e8 and LD HL,SP+e8.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	sp := c.sp

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (sp&0x0F)+uint16(offset&0x0F) > 0x0F)
	c.setFlagToCondition(carryFlag, (sp&0xFF)+uint16(offset) > 0xFF)

	return bit.AddSigned(sp, offset)
}

// daa adjusts A to a valid BCD number after an addition or subtraction,
// based on N, H and C left by that operation.
func (c *CPU) daa() {
	a := c.A()

	if !c.isSetFlag(subFlag) {
		if c.isSetFlag(carryFlag) || a > 0x99 {
			a += 0x60
			c.setFlag(carryFlag)
		}
		if c.isSetFlag(halfCarryFlag) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if c.isSetFlag(carryFlag) {
			a -= 0x60
		}
		if c.isSetFlag(halfCarryFlag) {
			a -= 0x06
		}
	}

	c.SetA(a)
	c.setFlagToCondition(zeroFlag, a == 0)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) cpl() {
	c.SetA(^c.A())
	c.setFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

func (c *CPU) scf() {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlag(carryFlag)
}

func (c *CPU) ccf() {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, !c.isSetFlag(carryFlag))
}

// shiftFlags sets Z from result, clears N and H and sets C to carry.
func (c *CPU) shiftFlags(result uint8, carry bool) {
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry)
}

// rlc rotates left, bit 7 goes to both carry and bit 0.
func (c *CPU) rlc(value uint8) uint8 {
	result := value<<1 | value>>7
	c.shiftFlags(result, value > 0x7F)
	return result
}

// rl rotates left through the carry flag.
func (c *CPU) rl(value uint8) uint8 {
	result := value<<1 | c.flagToBit(carryFlag)
	c.shiftFlags(result, value > 0x7F)
	return result
}

// rrc rotates right, bit 0 goes to both carry and bit 7.
func (c *CPU) rrc(value uint8) uint8 {
	result := value>>1 | value<<7
	c.shiftFlags(result, value&1 == 1)
	return result
}

// rr rotates right through the carry flag.
func (c *CPU) rr(value uint8) uint8 {
	result := value>>1 | c.flagToBit(carryFlag)<<7
	c.shiftFlags(result, value&1 == 1)
	return result
}

func (c *CPU) sla(value uint8) uint8 {
	result := value << 1
	c.shiftFlags(result, value > 0x7F)
	return result
}

// sra shifts right keeping bit 7.
func (c *CPU) sra(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.shiftFlags(result, value&1 == 1)
	return result
}

func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1
	c.shiftFlags(result, value&1 == 1)
	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.shiftFlags(result, false)
	return result
}

// bit tests bit n of value: Z is set when it is clear. C is not affected.
func (c *CPU) bit(n uint8, value uint8) {
	c.setFlagToCondition(zeroFlag, !bit.IsSet(n, value))
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// jr reads a signed offset and jumps relative to the next instruction if
// condition holds.
func (c *CPU) jr(condition bool) int {
	offset := c.readImmediate()
	if !condition {
		return 2
	}

	c.pc = bit.AddSigned(c.pc, offset)
	return 3
}

// jp reads an address and jumps to it if condition holds.
func (c *CPU) jp(condition bool) int {
	address := c.readImmediateWord()
	if !condition {
		return 3
	}

	c.pc = address
	return 4
}

// call reads an address and, if condition holds, pushes PC and jumps to it.
func (c *CPU) call(condition bool) int {
	address := c.readImmediateWord()
	if !condition {
		return 3
	}

	c.pushStack(c.pc)
	c.pc = address
	return 6
}

// retIf pops PC if condition holds.
func (c *CPU) retIf(condition bool) int {
	if !condition {
		return 2
	}

	c.pc = c.popStack()
	return 5
}

func (c *CPU) rst(vector uint16) int {
	c.pushStack(c.pc)
	c.pc = vector
	return 4
}
