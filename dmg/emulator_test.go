package dmg

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/cpu"
	"github.com/valerio/go-dmgcore/dmg/memory"
	"github.com/valerio/go-dmgcore/dmg/serial"
	"github.com/valerio/go-dmgcore/dmg/video"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// romWith returns a 32KiB cartridge image with program at the entry point.
func romWith(program ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], program)
	return rom
}

func newTestEmulator(t *testing.T, program []byte, opts ...Option) *Emulator {
	t.Helper()
	e, err := New(nil, romWith(program...), append([]Option{WithLogger(quietLogger)}, opts...)...)
	require.NoError(t, err)
	return e
}

func TestNewErrors(t *testing.T) {
	_, err := New(make([]byte, 100), nil, WithLogger(quietLogger))
	assert.ErrorIs(t, err, memory.ErrBootROMSize)

	_, err = New(nil, make([]byte, 0x8001), WithLogger(quietLogger))
	assert.ErrorIs(t, err, memory.ErrCartridgeSize)

	// skipping boot does not hide a malformed boot image
	_, err = New(make([]byte, 100), nil, WithLogger(quietLogger), WithSkipBoot())
	assert.ErrorIs(t, err, memory.ErrBootROMSize)

	e, err := New(make([]byte, memory.BootROMSize), nil, WithLogger(quietLogger), WithSkipBoot())
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0100), e.CPU().PC())
}

func TestPostBootState(t *testing.T) {
	e := newTestEmulator(t, nil)

	c := e.CPU()
	assert.Equal(t, uint16(0x01B0), c.AF())
	assert.Equal(t, uint16(0x0013), c.BC())
	assert.Equal(t, uint16(0x00D8), c.DE())
	assert.Equal(t, uint16(0x014D), c.HL())
	assert.Equal(t, uint16(0xFFFE), c.SP())
	assert.Equal(t, uint16(0x0100), c.PC())
	assert.Equal(t, cpu.Running, c.State())
	assert.Equal(t, byte(0x91), e.Read(addr.LCDC))
	assert.Equal(t, byte(0xFC), e.Read(addr.BGP))
	assert.Equal(t, byte(0x02), e.Read(addr.STAT)&0x03, "OAM search on line 0")
}

func TestStoreAndHalt(t *testing.T) {
	e := newTestEmulator(t, []byte{
		0x3E, 0x42, // LD A, 0x42
		0xEA, 0x00, 0xC0, // LD (0xC000), A
		0x76, // HALT
	})

	steps, err := e.RunUntilHalt(10)
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
	assert.Equal(t, byte(0x42), e.Read(0xC000))
	assert.Equal(t, uint8(0x42), e.CPU().A())
	assert.Equal(t, cpu.Halted, e.CPU().State())
	assert.Equal(t, uint64(2+4+1), e.CPU().Cycles())
}

func TestIncrementLeavesFlags(t *testing.T) {
	e := newTestEmulator(t, []byte{
		0x21, 0xFF, 0x0F, // LD HL, 0x0FFF
		0x23, // INC HL
		0x76, // HALT
	})

	_, err := e.RunUntilHalt(10)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1000), e.CPU().HL())
	assert.Equal(t, uint8(0xB0), e.CPU().F())
}

func TestDMAFromProgram(t *testing.T) {
	e := newTestEmulator(t, []byte{
		0x3E, 0xC0, // LD A, 0xC0
		0xE0, 0x46, // LDH (0x46), A
		0x76, // HALT
	})
	for i := uint16(0); i < uint16(160); i++ {
		e.Write(0xC000+i, byte(i))
	}

	_, err := e.RunUntilHalt(10)
	require.NoError(t, err)
	for i := uint16(0); i < uint16(160); i++ {
		require.Equal(t, byte(i), e.Read(addr.OAMStart+i), "OAM byte %d", i)
	}
}

func TestRunUntilHaltLimit(t *testing.T) {
	e := newTestEmulator(t, []byte{0x18, 0xFE}) // JR -2

	steps, err := e.RunUntilHalt(50)
	assert.ErrorIs(t, err, ErrStepLimit)
	assert.Equal(t, 50, steps)
	assert.Equal(t, uint64(50), e.CPU().Instructions())
}

func TestBootOverlay(t *testing.T) {
	boot := make([]byte, memory.BootROMSize)
	copy(boot, []byte{
		0x3E, 0x01, // LD A, 1
		0xE0, 0x50, // LDH (0x50), A
	})
	rom := make([]byte, 0x8000)
	rom[0x0004] = 0x76 // HALT, only reachable once the boot ROM is unmapped

	e, err := New(boot, rom, WithLogger(quietLogger))
	require.NoError(t, err)
	assert.Equal(t, cpu.Boot, e.CPU().State())
	assert.Equal(t, uint16(0x0000), e.CPU().PC())
	assert.Equal(t, byte(0x3E), e.Read(0x0000))

	steps, err := e.RunUntilHalt(10)
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
	assert.Equal(t, uint16(0x0005), e.CPU().PC())
	assert.False(t, e.MMU().InBios())
	assert.Equal(t, byte(0x00), e.Read(0x0000))

	e.Reset()
	assert.True(t, e.MMU().InBios())
	assert.Equal(t, uint16(0x0000), e.CPU().PC())
}

func TestRunUntilFrame(t *testing.T) {
	fb := video.NewFrameBuffer()
	e := newTestEmulator(t, []byte{0x18, 0xFE}, WithSink(fb))

	cycles := e.RunUntilFrame()
	assert.GreaterOrEqual(t, cycles, CyclesPerFrame)
	assert.LessOrEqual(t, cycles, CyclesPerFrame+2)
	assert.Equal(t, uint64(1), fb.Frames())
	assert.Equal(t, uint64(1), e.PPU().Frame())

	// VBlank requested, but IME is off
	assert.Equal(t, byte(0x01), e.Read(addr.IF)&0x01)
	assert.Equal(t, uint16(0x0100), e.CPU().PC())

	e.RunUntilFrame()
	assert.Equal(t, uint64(2), fb.Frames())
}

func TestRunUntilFrameLCDOff(t *testing.T) {
	fb := video.NewFrameBuffer()
	e := newTestEmulator(t, []byte{0x18, 0xFE}, WithSink(fb))
	e.Write(addr.LCDC, 0x00)

	cycles := e.RunUntilFrame()
	assert.GreaterOrEqual(t, cycles, CyclesPerFrame)
	assert.Equal(t, uint64(0), fb.Frames())
	assert.Equal(t, 0, e.PPU().Line())
}

func TestVBlankInterruptDispatch(t *testing.T) {
	rom := romWith(
		0x3E, 0x01, // LD A, 1
		0xE0, 0xFF, // LDH (0xFF), A: IE = vblank
		0xFB,       // EI
		0x76,       // HALT
		0x18, 0xFD, // JR -3
	)
	rom[0x40] = 0x3C // INC A
	rom[0x41] = 0xD9 // RETI

	e, err := New(nil, rom, WithLogger(quietLogger))
	require.NoError(t, err)

	e.RunUntilFrame()
	e.RunUntilFrame()
	e.RunUntilFrame()
	assert.GreaterOrEqual(t, e.CPU().A(), uint8(3))
}

func TestInputSampledPerFrame(t *testing.T) {
	e := newTestEmulator(t, []byte{0x18, 0xFE},
		WithInput(memory.NoInput.Press(memory.JoypadStart)))

	e.Write(addr.P1, 0x10) // select buttons
	assert.Equal(t, byte(0xDF), e.Read(addr.P1))

	e.RunUntilFrame()
	assert.Equal(t, byte(0xD7), e.Read(addr.P1))
	assert.Equal(t, byte(0x10), e.Read(addr.IF)&0x10)
}

func TestSerialLog(t *testing.T) {
	var program []byte
	for _, ch := range []byte("Hi\n") {
		program = append(program,
			0x3E, ch, // LD A, ch
			0xE0, 0x01, // LDH (SB), A
			0x3E, 0x81, // LD A, 0x81
			0xE0, 0x02, // LDH (SC), A
		)
	}
	program = append(program, 0x76)

	e := newTestEmulator(t, program, WithSerialLog())
	_, err := e.RunUntilHalt(100)
	require.NoError(t, err)

	sink, ok := e.Serial().(*serial.LogSink)
	require.True(t, ok)
	assert.Equal(t, "Hi\n", sink.Output())
	assert.Equal(t, byte(0x08), e.Read(addr.IF)&0x08)
}

type recordingPort struct {
	writes map[uint16]byte
	ticks  int
}

func (p *recordingPort) Write(address uint16, value byte) { p.writes[address] = value }
func (p *recordingPort) Read(address uint16) byte         { return p.writes[address] }
func (p *recordingPort) Tick(cycles int)                  { p.ticks += cycles }
func (p *recordingPort) Reset()                           {}

func TestCustomSerialPort(t *testing.T) {
	port := &recordingPort{writes: map[uint16]byte{}}
	e := newTestEmulator(t, []byte{0x00, 0x00}, WithSerial(port))

	e.Write(addr.SB, 0x55)
	assert.Equal(t, byte(0x55), e.Read(addr.SB))

	e.Step()
	e.Step()
	assert.Equal(t, 2, port.ticks)
}

func TestSeparateTicks(t *testing.T) {
	e := newTestEmulator(t, []byte{0x00})

	assert.Equal(t, 1, e.Tick())
	assert.Equal(t, 0, e.PPU().Line())

	e.TickPPU(114)
	assert.Equal(t, 1, e.PPU().Line())

	before := e.Read(addr.DIV)
	e.TickTimer(64)
	assert.Equal(t, before+1, e.Read(addr.DIV))
}
