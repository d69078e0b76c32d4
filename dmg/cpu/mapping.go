package cpu

import "fmt"

// Opcode represents a function that executes an opcode and returns the
// machine cycles it took.
type Opcode func(*CPU) int

var opcodes = [256]Opcode{
	opcode0x00, opcode0x01, opcode0x02, opcode0x03, opcode0x04, opcode0x05, opcode0x06, opcode0x07, opcode0x08, opcode0x09, opcode0x0A, opcode0x0B, opcode0x0C, opcode0x0D, opcode0x0E, opcode0x0F,
	opcode0x10, opcode0x11, opcode0x12, opcode0x13, opcode0x14, opcode0x15, opcode0x16, opcode0x17, opcode0x18, opcode0x19, opcode0x1A, opcode0x1B, opcode0x1C, opcode0x1D, opcode0x1E, opcode0x1F,
	opcode0x20, opcode0x21, opcode0x22, opcode0x23, opcode0x24, opcode0x25, opcode0x26, opcode0x27, opcode0x28, opcode0x29, opcode0x2A, opcode0x2B, opcode0x2C, opcode0x2D, opcode0x2E, opcode0x2F,
	opcode0x30, opcode0x31, opcode0x32, opcode0x33, opcode0x34, opcode0x35, opcode0x36, opcode0x37, opcode0x38, opcode0x39, opcode0x3A, opcode0x3B, opcode0x3C, opcode0x3D, opcode0x3E, opcode0x3F,
	opcode0x40, opcode0x41, opcode0x42, opcode0x43, opcode0x44, opcode0x45, opcode0x46, opcode0x47, opcode0x48, opcode0x49, opcode0x4A, opcode0x4B, opcode0x4C, opcode0x4D, opcode0x4E, opcode0x4F,
	opcode0x50, opcode0x51, opcode0x52, opcode0x53, opcode0x54, opcode0x55, opcode0x56, opcode0x57, opcode0x58, opcode0x59, opcode0x5A, opcode0x5B, opcode0x5C, opcode0x5D, opcode0x5E, opcode0x5F,
	opcode0x60, opcode0x61, opcode0x62, opcode0x63, opcode0x64, opcode0x65, opcode0x66, opcode0x67, opcode0x68, opcode0x69, opcode0x6A, opcode0x6B, opcode0x6C, opcode0x6D, opcode0x6E, opcode0x6F,
	opcode0x70, opcode0x71, opcode0x72, opcode0x73, opcode0x74, opcode0x75, opcode0x76, opcode0x77, opcode0x78, opcode0x79, opcode0x7A, opcode0x7B, opcode0x7C, opcode0x7D, opcode0x7E, opcode0x7F,
	opcode0x80, opcode0x81, opcode0x82, opcode0x83, opcode0x84, opcode0x85, opcode0x86, opcode0x87, opcode0x88, opcode0x89, opcode0x8A, opcode0x8B, opcode0x8C, opcode0x8D, opcode0x8E, opcode0x8F,
	opcode0x90, opcode0x91, opcode0x92, opcode0x93, opcode0x94, opcode0x95, opcode0x96, opcode0x97, opcode0x98, opcode0x99, opcode0x9A, opcode0x9B, opcode0x9C, opcode0x9D, opcode0x9E, opcode0x9F,
	opcode0xA0, opcode0xA1, opcode0xA2, opcode0xA3, opcode0xA4, opcode0xA5, opcode0xA6, opcode0xA7, opcode0xA8, opcode0xA9, opcode0xAA, opcode0xAB, opcode0xAC, opcode0xAD, opcode0xAE, opcode0xAF,
	opcode0xB0, opcode0xB1, opcode0xB2, opcode0xB3, opcode0xB4, opcode0xB5, opcode0xB6, opcode0xB7, opcode0xB8, opcode0xB9, opcode0xBA, opcode0xBB, opcode0xBC, opcode0xBD, opcode0xBE, opcode0xBF,
	opcode0xC0, opcode0xC1, opcode0xC2, opcode0xC3, opcode0xC4, opcode0xC5, opcode0xC6, opcode0xC7, opcode0xC8, opcode0xC9, opcode0xCA, opcode0xCB, opcode0xCC, opcode0xCD, opcode0xCE, opcode0xCF,
	opcode0xD0, opcode0xD1, opcode0xD2, opcode0xD3, opcode0xD4, opcode0xD5, opcode0xD6, opcode0xD7, opcode0xD8, opcode0xD9, opcode0xDA, opcode0xDB, opcode0xDC, opcode0xDD, opcode0xDE, opcode0xDF,
	opcode0xE0, opcode0xE1, opcode0xE2, opcode0xE3, opcode0xE4, opcode0xE5, opcode0xE6, opcode0xE7, opcode0xE8, opcode0xE9, opcode0xEA, opcode0xEB, opcode0xEC, opcode0xED, opcode0xEE, opcode0xEF,
	opcode0xF0, opcode0xF1, opcode0xF2, opcode0xF3, opcode0xF4, opcode0xF5, opcode0xF6, opcode0xF7, opcode0xF8, opcode0xF9, opcode0xFA, opcode0xFB, opcode0xFC, opcode0xFD, opcode0xFE, opcode0xFF,
}

// cycleTable holds the machine cycles of each unprefixed opcode. Conditional
// branches list the cost when the branch is not taken; 0xCB lists the
// cheapest prefixed instruction.
var cycleTable = [256]int{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 2, 3, 6, 2, 4,
	2, 3, 3, 1, 3, 4, 2, 4, 2, 4, 3, 1, 3, 1, 2, 4,
	3, 3, 2, 1, 1, 4, 2, 4, 4, 1, 4, 1, 1, 1, 2, 4,
	3, 3, 2, 1, 1, 4, 2, 4, 3, 2, 4, 1, 1, 1, 2, 4,
}

// opcodeLengths is the size in bytes of each unprefixed instruction.
var opcodeLengths = [256]uint8{
	1, 3, 1, 1, 1, 1, 2, 1, 3, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 3, 3, 3, 1, 2, 1, 1, 1, 3, 2, 3, 3, 2, 1,
	1, 1, 3, 1, 3, 1, 2, 1, 1, 1, 3, 1, 3, 1, 2, 1,
	2, 1, 1, 1, 1, 1, 2, 1, 2, 1, 3, 1, 1, 1, 2, 1,
	2, 1, 1, 1, 1, 1, 2, 1, 2, 1, 3, 1, 1, 1, 2, 1,
}

var opcodeNames = [256]string{
	"NOP",
	"LD BC, nn",
	"LD (BC), A",
	"INC BC",
	"INC B",
	"DEC B",
	"LD B, n",
	"RLCA",
	"LD (nn), SP",
	"ADD HL, BC",
	"LD A, (BC)",
	"DEC BC",
	"INC C",
	"DEC C",
	"LD C, n",
	"RRCA",
	"STOP",
	"LD DE, nn",
	"LD (DE), A",
	"INC DE",
	"INC D",
	"DEC D",
	"LD D, n",
	"RLA",
	"JR n",
	"ADD HL, DE",
	"LD A, (DE)",
	"DEC DE",
	"INC E",
	"DEC E",
	"LD E, n",
	"RRA",
	"JR NZ, n",
	"LD HL, nn",
	"LD (HL+), A",
	"INC HL",
	"INC H",
	"DEC H",
	"LD H, n",
	"DAA",
	"JR Z, n",
	"ADD HL, HL",
	"LD A, (HL+)",
	"DEC HL",
	"INC L",
	"DEC L",
	"LD L, n",
	"CPL",
	"JR NC, n",
	"LD SP, nn",
	"LD (HL-), A",
	"INC SP",
	"INC (HL)",
	"DEC (HL)",
	"LD (HL), n",
	"SCF",
	"JR C, n",
	"ADD HL, SP",
	"LD A, (HL-)",
	"DEC SP",
	"INC A",
	"DEC A",
	"LD A, n",
	"CCF",
	"LD B, B",
	"LD B, C",
	"LD B, D",
	"LD B, E",
	"LD B, H",
	"LD B, L",
	"LD B, (HL)",
	"LD B, A",
	"LD C, B",
	"LD C, C",
	"LD C, D",
	"LD C, E",
	"LD C, H",
	"LD C, L",
	"LD C, (HL)",
	"LD C, A",
	"LD D, B",
	"LD D, C",
	"LD D, D",
	"LD D, E",
	"LD D, H",
	"LD D, L",
	"LD D, (HL)",
	"LD D, A",
	"LD E, B",
	"LD E, C",
	"LD E, D",
	"LD E, E",
	"LD E, H",
	"LD E, L",
	"LD E, (HL)",
	"LD E, A",
	"LD H, B",
	"LD H, C",
	"LD H, D",
	"LD H, E",
	"LD H, H",
	"LD H, L",
	"LD H, (HL)",
	"LD H, A",
	"LD L, B",
	"LD L, C",
	"LD L, D",
	"LD L, E",
	"LD L, H",
	"LD L, L",
	"LD L, (HL)",
	"LD L, A",
	"LD (HL), B",
	"LD (HL), C",
	"LD (HL), D",
	"LD (HL), E",
	"LD (HL), H",
	"LD (HL), L",
	"HALT",
	"LD (HL), A",
	"LD A, B",
	"LD A, C",
	"LD A, D",
	"LD A, E",
	"LD A, H",
	"LD A, L",
	"LD A, (HL)",
	"LD A, A",
	"ADD A, B",
	"ADD A, C",
	"ADD A, D",
	"ADD A, E",
	"ADD A, H",
	"ADD A, L",
	"ADD A, (HL)",
	"ADD A, A",
	"ADC A, B",
	"ADC A, C",
	"ADC A, D",
	"ADC A, E",
	"ADC A, H",
	"ADC A, L",
	"ADC A, (HL)",
	"ADC A, A",
	"SUB B",
	"SUB C",
	"SUB D",
	"SUB E",
	"SUB H",
	"SUB L",
	"SUB (HL)",
	"SUB A",
	"SBC A, B",
	"SBC A, C",
	"SBC A, D",
	"SBC A, E",
	"SBC A, H",
	"SBC A, L",
	"SBC A, (HL)",
	"SBC A, A",
	"AND B",
	"AND C",
	"AND D",
	"AND E",
	"AND H",
	"AND L",
	"AND (HL)",
	"AND A",
	"XOR B",
	"XOR C",
	"XOR D",
	"XOR E",
	"XOR H",
	"XOR L",
	"XOR (HL)",
	"XOR A",
	"OR B",
	"OR C",
	"OR D",
	"OR E",
	"OR H",
	"OR L",
	"OR (HL)",
	"OR A",
	"CP B",
	"CP C",
	"CP D",
	"CP E",
	"CP H",
	"CP L",
	"CP (HL)",
	"CP A",
	"RET NZ",
	"POP BC",
	"JP NZ, nn",
	"JP nn",
	"CALL NZ, nn",
	"PUSH BC",
	"ADD A, n",
	"RST 00H",
	"RET Z",
	"RET",
	"JP Z, nn",
	"PREFIX CB",
	"CALL Z, nn",
	"CALL nn",
	"ADC A, n",
	"RST 08H",
	"RET NC",
	"POP DE",
	"JP NC, nn",
	"ILLEGAL",
	"CALL NC, nn",
	"PUSH DE",
	"SUB n",
	"RST 10H",
	"RET C",
	"RETI",
	"JP C, nn",
	"ILLEGAL",
	"CALL C, nn",
	"ILLEGAL",
	"SBC A, n",
	"RST 18H",
	"LDH (n), A",
	"POP HL",
	"LD (C), A",
	"ILLEGAL",
	"ILLEGAL",
	"PUSH HL",
	"AND n",
	"RST 20H",
	"ADD SP, n",
	"JP (HL)",
	"LD (nn), A",
	"ILLEGAL",
	"ILLEGAL",
	"ILLEGAL",
	"XOR n",
	"RST 28H",
	"LDH A, (n)",
	"POP AF",
	"LD A, (C)",
	"DI",
	"ILLEGAL",
	"PUSH AF",
	"OR n",
	"RST 30H",
	"LD HL, SP+n",
	"LD SP, HL",
	"LD A, (nn)",
	"EI",
	"ILLEGAL",
	"ILLEGAL",
	"CP n",
	"RST 38H",
}

var cbShiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// Name returns the mnemonic of an opcode, 0xCBxx for the prefixed set.
func Name(opcode uint16) string {
	if opcode>>8 != 0xCB {
		return opcodeNames[uint8(opcode)]
	}

	op := uint8(opcode)
	target := operandNames[op&0x07]
	n := (op >> 3) & 0x07
	switch op >> 6 {
	case 0:
		return cbShiftNames[n] + " " + target
	case 1:
		return fmt.Sprintf("BIT %d, %s", n, target)
	case 2:
		return fmt.Sprintf("RES %d, %s", n, target)
	default:
		return fmt.Sprintf("SET %d, %s", n, target)
	}
}

// Length returns the size in bytes of the instruction starting with opcode
// (the prefix byte 0xCB has length 2).
func Length(opcode uint8) int {
	return int(opcodeLengths[opcode])
}

// Cycles returns the documented machine cycles of an opcode (0xCBxx for the
// prefixed set, including the prefix fetch). Conditional branches report the
// not-taken cost.
func Cycles(opcode uint16) int {
	if opcode>>8 == 0xCB {
		return cbCycles(uint8(opcode))
	}
	return cycleTable[uint8(opcode)]
}
