package cpu

import "github.com/valerio/go-dmgcore/dmg/bit"

// The prefixed set is fully regular: bits 7-6 select the operation group,
// bits 5-3 the shift kind or bit index and bits 2-0 the operand.
//
//	00 kkk rrr  RLC/RRC/RL/RR/SLA/SRA/SWAP/SRL r
//	01 nnn rrr  BIT n, r
//	10 nnn rrr  RES n, r
//	11 nnn rrr  SET n, r
var opcodesCB = buildCBTable()

var cbShifts = [8]func(*CPU, uint8) uint8{
	(*CPU).rlc, (*CPU).rrc, (*CPU).rl, (*CPU).rr,
	(*CPU).sla, (*CPU).sra, (*CPU).swap, (*CPU).srl,
}

func buildCBTable() [256]Opcode {
	var table [256]Opcode
	for i := range table {
		table[i] = cbOpcode(uint8(i))
	}
	return table
}

// cbCycles is the cost of a prefixed instruction, prefix fetch included.
func cbCycles(op uint8) int {
	if operand(op&0x07) != opHL {
		return 2
	}
	if op>>6 == 1 {
		// BIT n, (HL) only reads memory
		return 3
	}
	return 4
}

func cbOpcode(op uint8) Opcode {
	target := operand(op & 0x07)
	n := (op >> 3) & 0x07
	cycles := cbCycles(op)

	switch op >> 6 {
	case 0:
		shift := cbShifts[n]
		return func(c *CPU) int {
			c.write8(target, shift(c, c.read8(target)))
			return cycles
		}
	case 1:
		return func(c *CPU) int {
			c.bit(n, c.read8(target))
			return cycles
		}
	case 2:
		return func(c *CPU) int {
			c.write8(target, bit.Reset(n, c.read8(target)))
			return cycles
		}
	default:
		return func(c *CPU) int {
			c.write8(target, bit.Set(n, c.read8(target)))
			return cycles
		}
	}
}
