// Package dmg wires the CPU, memory map and PPU into a complete machine
// driven in lockstep, one instruction at a time.
package dmg

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
	"github.com/valerio/go-dmgcore/dmg/cpu"
	"github.com/valerio/go-dmgcore/dmg/memory"
	"github.com/valerio/go-dmgcore/dmg/serial"
	"github.com/valerio/go-dmgcore/dmg/timing"
	"github.com/valerio/go-dmgcore/dmg/video"
)

// CyclesPerFrame is the length of a full frame (154 lines of 114 cycles).
const CyclesPerFrame = timing.CyclesPerFrame

// ErrStepLimit is returned by RunUntilHalt when the CPU did not halt within
// the given number of steps.
var ErrStepLimit = errors.New("step limit reached before HALT")

type config struct {
	sink      video.ScanlineSink
	input     memory.InputProvider
	serial    memory.SerialPort
	serialLog []serial.LogSinkOption
	logger    *slog.Logger
	skipBoot  bool
}

// Option configures an Emulator.
type Option func(*config)

// WithSink sets where rendered scanlines go.
func WithSink(sink video.ScanlineSink) Option {
	return func(c *config) { c.sink = sink }
}

// WithInput sets the joypad state provider, sampled once per frame by
// RunUntilFrame.
func WithInput(input memory.InputProvider) Option {
	return func(c *config) { c.input = input }
}

// WithSerial attaches a device to SB/SC instead of the default log sink.
func WithSerial(port memory.SerialPort) Option {
	return func(c *config) { c.serial = port }
}

// WithSerialLog configures the default serial log sink.
func WithSerialLog(opts ...serial.LogSinkOption) Option {
	return func(c *config) { c.serialLog = opts }
}

// WithLogger sets the logger used by all parts of the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithSkipBoot ignores the boot image and starts from the cartridge entry
// point with the registers the boot ROM leaves behind.
func WithSkipBoot() Option {
	return func(c *config) { c.skipBoot = true }
}

// Emulator is a complete machine. Each instance owns all of its parts.
type Emulator struct {
	cpu *cpu.CPU
	mmu *memory.MMU
	ppu *video.PPU

	skipBoot bool
	logger   *slog.Logger
}

// New builds a machine from a boot image (exactly 256 bytes) and a cartridge
// image (at most 32KiB). A nil boot image implies WithSkipBoot.
func New(boot, rom []byte, opts ...Option) (*Emulator, error) {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if boot != nil && len(boot) != memory.BootROMSize {
		return nil, fmt.Errorf("%w: got %d bytes", memory.ErrBootROMSize, len(boot))
	}
	if boot == nil {
		cfg.skipBoot = true
	}
	if cfg.skipBoot {
		boot = nil
	}

	mmu, err := memory.New(boot, rom)
	if err != nil {
		return nil, err
	}
	mmu.SetLogger(cfg.logger)

	switch {
	case cfg.serial != nil:
		mmu.SetSerial(cfg.serial)
	case cfg.serialLog != nil:
		opts := append([]serial.LogSinkOption{serial.WithLogger(cfg.logger)}, cfg.serialLog...)
		mmu.SetSerial(serial.NewLogSink(func() { mmu.RequestInterrupt(addr.SerialInterrupt) }, opts...))
	}
	if cfg.input != nil {
		mmu.SetInputProvider(cfg.input)
	}

	c := cpu.New(mmu)
	c.SetLogger(cfg.logger)

	e := &Emulator{
		cpu:      c,
		mmu:      mmu,
		ppu:      video.New(mmu, cfg.sink),
		skipBoot: cfg.skipBoot,
		logger:   cfg.logger,
	}
	e.Reset()

	cart := mmu.Cartridge()
	e.logger.Info("machine ready", "title", cart.Title(), "rom_bytes", cart.Size(), "skip_boot", e.skipBoot)
	return e, nil
}

// Reset returns every part to its power-on state. Without a boot image the
// registers the boot ROM would leave behind are loaded instead.
func (e *Emulator) Reset() {
	e.mmu.Reset()
	e.cpu.Reset()
	e.ppu.Reset()

	if e.skipBoot {
		e.cpu.ResetPostBoot()
		e.mmu.Write(addr.LCDC, 0x91)
		e.mmu.Write(addr.BGP, 0xFC)
	}
}

// Tick executes one CPU step (an instruction, an interrupt dispatch or one
// idle cycle while halted) and returns the machine cycles it took. No other
// part is advanced.
func (e *Emulator) Tick() int {
	return e.cpu.Tick()
}

// TickPPU advances the PPU by the given machine cycles.
func (e *Emulator) TickPPU(cycles int) {
	e.ppu.Tick(cycles)
}

// TickTimer advances the timer by the given machine cycles.
func (e *Emulator) TickTimer(cycles int) {
	e.mmu.TickTimer(cycles)
}

// Step runs one CPU step and advances timer, serial and PPU by the same
// number of cycles.
func (e *Emulator) Step() int {
	cycles := e.cpu.Tick()
	e.mmu.Tick(cycles)
	e.ppu.Tick(cycles)
	return cycles
}

func (e *Emulator) lcdOn() bool {
	return bit.IsSet(7, e.mmu.Read(addr.LCDC))
}

// RunUntilFrame samples input, then steps until the PPU completes a frame and
// returns the cycles run. With the LCD off no frame ever completes, so it
// returns after a frame's worth of cycles instead.
func (e *Emulator) RunUntilFrame() int {
	e.mmu.RefreshInput()

	start := e.ppu.Frame()
	total := 0
	for e.ppu.Frame() == start {
		total += e.Step()
		if total >= CyclesPerFrame && !e.lcdOn() {
			break
		}
	}
	return total
}

// RunUntilHalt steps until the CPU halts and returns the number of steps.
// It gives up with ErrStepLimit after limit steps.
func (e *Emulator) RunUntilHalt(limit int) (int, error) {
	for steps := 0; steps < limit; steps++ {
		if e.cpu.Halted() {
			return steps, nil
		}
		e.Step()
	}
	if e.cpu.Halted() {
		return limit, nil
	}
	return limit, ErrStepLimit
}

// Read returns the byte at address as the CPU sees it.
func (e *Emulator) Read(address uint16) byte {
	return e.mmu.Read(address)
}

// Write stores value at address as if written by the CPU.
func (e *Emulator) Write(address uint16, value byte) {
	e.mmu.Write(address, value)
}

func (e *Emulator) CPU() *cpu.CPU             { return e.cpu }
func (e *Emulator) MMU() *memory.MMU          { return e.mmu }
func (e *Emulator) PPU() *video.PPU           { return e.ppu }
func (e *Emulator) Serial() memory.SerialPort { return e.mmu.Serial() }
