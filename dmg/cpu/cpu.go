package cpu

import (
	"log/slog"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
)

// Bus is the CPU's view of the address space.
type Bus interface {
	// Fetch reads a byte, with the boot ROM overlaid on the first 256 bytes
	// when inBios is set.
	Fetch(address uint16, inBios bool) byte
	Read(address uint16) byte
	Write(address uint16, value byte)
	// InBios reports whether the boot ROM overlay is still active.
	InBios() bool
}

// State is the execution state of the CPU.
type State uint8

const (
	// Boot means the CPU is running code from the boot ROM overlay.
	Boot State = iota
	// Running means the CPU is running cartridge (or RAM) code.
	Running
	// Halted means instruction fetch is suspended until an interrupt is pending.
	Halted
	// Stopped means the CPU is suspended until a joypad interrupt is requested.
	Stopped
)

func (s State) String() string {
	switch s {
	case Boot:
		return "boot"
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Tracer is called before each instruction with its address and opcode
// (0xCBxx for prefixed instructions).
type Tracer func(pc uint16, opcode uint16)

// CPU holds the processor state. All timing is expressed in machine cycles.
type CPU struct {
	Registers

	// interrupt master enable
	ime bool
	// EI delay: IME is set after the instruction following EI
	eiPending bool

	halted  bool
	stopped bool

	currentOpcode uint16
	cycles        uint64
	instructions  uint64

	tracer Tracer
	logger *slog.Logger
	bus    Bus
}

// New returns a CPU in its power-on state, attached to bus.
func New(bus Bus) *CPU {
	c := &CPU{
		bus:    bus,
		logger: slog.Default(),
	}
	c.Reset()
	return c
}

// Reset zeroes all registers, so execution starts at 0x0000 (the boot ROM
// entry point) with interrupts disabled.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.ime = false
	c.eiPending = false
	c.halted = false
	c.stopped = false
	c.currentOpcode = 0
	c.cycles = 0
	c.instructions = 0
}

// ResetPostBoot puts the registers in the state the DMG boot ROM leaves them
// in when it hands over to the cartridge at 0x0100.
func (c *CPU) ResetPostBoot() {
	c.Reset()
	c.SetAF(0x01B0)
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.SetSP(0xFFFE)
	c.SetPC(0x0100)
}

// SetTracer installs a function called before each instruction executes.
func (c *CPU) SetTracer(t Tracer) {
	c.tracer = t
}

// SetLogger replaces the logger used to report illegal opcodes.
func (c *CPU) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Tick executes one instruction, services one interrupt or idles for one
// cycle while halted. Returns the machine cycles taken.
func (c *CPU) Tick() int {
	cycles := c.step()
	c.cycles += uint64(cycles)
	return cycles
}

func (c *CPU) step() int {
	pending := c.PendingInterrupts()

	// any enabled and requested interrupt ends HALT, even with IME off
	if pending != 0 {
		c.halted = false
	}
	if c.stopped && c.bus.Read(addr.IF)&uint8(addr.JoypadInterrupt) != 0 {
		c.stopped = false
	}

	if c.ime && pending != 0 {
		return c.serviceInterrupt(pending)
	}

	if c.halted || c.stopped {
		return 1
	}

	pc := c.pc
	opcode := c.readImmediate()
	c.currentOpcode = uint16(opcode)
	if opcode == 0xCB {
		c.currentOpcode = bit.Combine(0xCB, c.peekImmediate())
	}

	if c.tracer != nil {
		c.tracer(pc, c.currentOpcode)
	}

	enableIME := c.eiPending
	cycles := opcodes[opcode](c)
	c.instructions++

	// EI takes effect once the instruction after it has completed, unless
	// that instruction was DI
	if enableIME && c.eiPending {
		c.eiPending = false
		c.ime = true
	}

	return cycles
}

// serviceInterrupt dispatches the highest priority pending interrupt
// (lowest bit first): PC is pushed, IME cleared and the IF bit acknowledged.
func (c *CPU) serviceInterrupt(pending uint8) int {
	for i := uint8(0); i < 5; i++ {
		if !bit.IsSet(i, pending) {
			continue
		}

		interrupt := addr.Interrupt(1 << i)
		c.bus.Write(addr.IF, bit.Reset(i, c.bus.Read(addr.IF)))
		c.ime = false
		c.eiPending = false

		c.pushStack(c.pc)
		c.pc = interrupt.Vector()
		return 5
	}

	return 0
}

// PendingInterrupts returns which interrupts are both enabled and requested.
func (c *CPU) PendingInterrupts() uint8 {
	return c.bus.Read(addr.IE) & c.bus.Read(addr.IF) & addr.InterruptMask
}

// peekImmediate returns the byte at the memory address pointed by the PC
// this value is known as immediate ('n' in mnemonics), some opcodes use it as a parameter
func (c *CPU) peekImmediate() uint8 {
	return c.bus.Fetch(c.pc, c.bus.InBios())
}

// readImmediate acts similarly as its peek counterpart, but increments the PC once after reading
func (c *CPU) readImmediate() uint8 {
	n := c.peekImmediate()
	c.pc++
	return n
}

// readImmediateWord reads a little-endian word at PC and increments the PC twice
func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return bit.Combine(high, low)
}

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.bus.Write(c.sp, bit.High(value))
	c.sp--
	c.bus.Write(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.bus.Read(c.sp)
	c.sp++
	high := c.bus.Read(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

// illegal handles the opcodes that have no instruction assigned: they do
// nothing and take one cycle.
func (c *CPU) illegal() int {
	c.logger.Debug("illegal opcode", "opcode", Name(c.currentOpcode), "pc", c.pc-1)
	return 1
}

// State reports the current execution state.
func (c *CPU) State() State {
	switch {
	case c.halted:
		return Halted
	case c.stopped:
		return Stopped
	case c.bus.InBios():
		return Boot
	}
	return Running
}

// IME reports whether the interrupt master enable flag is set.
func (c *CPU) IME() bool { return c.ime }

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool { return c.halted }

// Cycles is the total number of machine cycles run since the last reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Instructions is the number of instructions executed since the last reset.
func (c *CPU) Instructions() uint64 { return c.instructions }

// CurrentOpcode is the last opcode fetched (0xCBxx for prefixed ones).
func (c *CPU) CurrentOpcode() uint16 { return c.currentOpcode }
