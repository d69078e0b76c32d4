package memory

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
	"github.com/valerio/go-dmgcore/dmg/serial"
)

// SerialPort is the minimal interface for a serial device connected to SB/SC.
// Implementations only ever see reads/writes to addr.SB and addr.SC.
type SerialPort interface {
	Write(address uint16, value byte)
	Read(address uint16) byte
	Tick(cycles int)
	Reset()
}

// MMU maps the 64KB address space onto its backing regions and I/O registers.
type MMU struct {
	boot    [BootROMSize]byte
	hasBoot bool
	inBios  bool
	cart    *Cartridge

	vram [addr.VRAMEnd - addr.VRAMStart]byte
	eram [addr.ExtRAMEnd - addr.ExtRAMStart]byte
	wram [addr.WRAMEnd - addr.WRAMStart]byte
	oam  [addr.OAMEnd - addr.OAMStart]byte
	hram [addr.HRAMEnd - addr.HRAMStart]byte

	// I/O registers
	interruptEnable byte
	interruptFlag   byte
	lcdc            byte
	stat            byte
	scy, scx        byte
	ly, lyc         byte
	dma             byte
	bgp, obp0, obp1 byte
	wy, wx          byte

	joypad Joypad
	timer  Timer
	serial SerialPort

	logger *slog.Logger
}

// New creates a memory map with the given boot image and cartridge data.
// A nil boot image means there is no overlay and execution starts straight
// from the cartridge. rom may be empty (no cartridge inserted).
func New(boot, rom []byte) (*MMU, error) {
	if boot != nil && len(boot) != BootROMSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBootROMSize, len(boot))
	}

	cart, err := NewCartridge(rom)
	if err != nil {
		return nil, err
	}

	m := &MMU{
		cart:    cart,
		hasBoot: boot != nil,
		logger:  slog.Default(),
	}
	copy(m.boot[:], boot)

	m.timer.InterruptHandler = func() { m.RequestInterrupt(addr.TimerInterrupt) }
	m.serial = serial.NewLogSink(func() { m.RequestInterrupt(addr.SerialInterrupt) })
	m.Reset()

	return m, nil
}

// Reset puts memory in its power-on state: boot overlay mapped (if any),
// VRAM and WRAM filled with 0xFF, I/O registers cleared and P1 reading 0xFF.
func (m *MMU) Reset() {
	m.inBios = m.hasBoot

	fill(m.vram[:], 0xFF)
	fill(m.wram[:], 0xFF)
	fill(m.eram[:], 0x00)
	fill(m.oam[:], 0x00)
	fill(m.hram[:], 0x00)

	m.interruptEnable = 0
	m.interruptFlag = 0
	m.lcdc, m.stat = 0, 0
	m.scy, m.scx = 0, 0
	m.ly, m.lyc = 0, 0
	m.dma = 0
	m.bgp, m.obp0, m.obp1 = 0, 0, 0
	m.wy, m.wx = 0, 0

	m.joypad.Reset()
	m.timer.Reset()
	if m.serial != nil {
		m.serial.Reset()
	}
}

func fill(b []byte, value byte) {
	for i := range b {
		b[i] = value
	}
}

// SetLogger replaces the logger used for memory events.
func (m *MMU) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

// SetSerial attaches a serial device to SB/SC.
func (m *MMU) SetSerial(port SerialPort) {
	m.serial = port
}

// Serial returns the device attached to SB/SC, nil if none.
func (m *MMU) Serial() SerialPort {
	return m.serial
}

// SetInputProvider attaches the joypad state provider.
func (m *MMU) SetInputProvider(p InputProvider) {
	m.joypad.provider = p
}

// RefreshInput samples the input provider into P1, requesting the joypad
// interrupt when a selected line is pulled low.
func (m *MMU) RefreshInput() {
	if m.joypad.Refresh() {
		m.RequestInterrupt(addr.JoypadInterrupt)
	}
}

// InBios reports whether the boot ROM is still overlaid on 0x0000-0x00FF.
func (m *MMU) InBios() bool {
	return m.inBios
}

// Cartridge returns the loaded cartridge.
func (m *MMU) Cartridge() *Cartridge {
	return m.cart
}

// Timer exposes the timer for inspection.
func (m *MMU) Timer() *Timer {
	return &m.timer
}

// TickTimer advances the timer by the given machine cycles.
func (m *MMU) TickTimer(cycles int) {
	m.timer.Tick(cycles)
}

// Tick advances the timer and the serial device.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	if m.serial != nil {
		m.serial.Tick(cycles)
	}
}

// RequestInterrupt sets the interrupt flag (IF register) of the chosen interrupt to 1.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	m.interruptFlag |= uint8(interrupt) & addr.InterruptMask
}

// SetLY is used by the PPU to publish the current scanline.
func (m *MMU) SetLY(line uint8) {
	m.ly = line
}

// SetSTATMode is used by the PPU to publish the mode (bits 1-0) and the
// LY=LYC coincidence flag (bit 2) of STAT.
func (m *MMU) SetSTATMode(mode uint8, coincidence bool) {
	m.stat = (m.stat & 0x78) | (mode & 0x03)
	m.stat = bit.SetTo(2, m.stat, coincidence)
}

// Read returns the byte at address as seen by the CPU right now.
func (m *MMU) Read(address uint16) byte {
	return m.Fetch(address, m.inBios)
}

// Fetch returns the byte at address. When inBios is set the boot ROM is
// visible on the first 256 bytes instead of the cartridge.
func (m *MMU) Fetch(address uint16, inBios bool) byte {
	switch {
	case inBios && m.hasBoot && address < BootROMSize:
		return m.boot[address]
	case address < addr.ROMEnd:
		return m.cart.Read(address)
	case address < addr.VRAMEnd:
		return m.vram[address-addr.VRAMStart]
	case address < addr.ExtRAMEnd:
		return m.eram[address-addr.ExtRAMStart]
	case address < addr.WRAMEnd:
		return m.wram[address-addr.WRAMStart]
	case address < addr.EchoEnd:
		return m.wram[address-addr.EchoStart]
	case address >= addr.OAMStart && address < addr.OAMEnd:
		return m.oam[address-addr.OAMStart]
	case address >= addr.HRAMStart && address < addr.HRAMEnd:
		return m.hram[address-addr.HRAMStart]
	}

	return m.readIO(address)
}

func (m *MMU) readIO(address uint16) byte {
	switch address {
	case addr.P1:
		return m.joypad.Read()
	case addr.SB, addr.SC:
		if m.serial == nil {
			return 0
		}
		return m.serial.Read(address)
	case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
		return m.timer.Read(address)
	case addr.IF:
		// upper 3 bits are unused and always read as 1
		return m.interruptFlag | 0xE0
	case addr.LCDC:
		return m.lcdc
	case addr.STAT:
		return m.stat | 0x80
	case addr.SCY:
		return m.scy
	case addr.SCX:
		return m.scx
	case addr.LY:
		return m.ly
	case addr.LYC:
		return m.lyc
	case addr.DMA:
		return m.dma
	case addr.BGP:
		return m.bgp
	case addr.OBP0:
		return m.obp0
	case addr.OBP1:
		return m.obp1
	case addr.WY:
		return m.wy
	case addr.WX:
		return m.wx
	case addr.IE:
		return m.interruptEnable
	}

	// unusable (0xFEA0-0xFEFF) or unimplemented I/O
	return 0
}

// Write stores value at address. Writes to ROM and to unmapped addresses are
// ignored.
func (m *MMU) Write(address uint16, value byte) {
	switch {
	case address < addr.ROMEnd:
		return
	case address < addr.VRAMEnd:
		m.vram[address-addr.VRAMStart] = value
	case address < addr.ExtRAMEnd:
		m.eram[address-addr.ExtRAMStart] = value
	case address < addr.WRAMEnd:
		m.wram[address-addr.WRAMStart] = value
	case address < addr.EchoEnd:
		m.wram[address-addr.EchoStart] = value
	case address >= addr.OAMStart && address < addr.OAMEnd:
		m.oam[address-addr.OAMStart] = value
	case address >= addr.HRAMStart && address < addr.HRAMEnd:
		m.hram[address-addr.HRAMStart] = value
	default:
		m.writeIO(address, value)
	}
}

func (m *MMU) writeIO(address uint16, value byte) {
	switch address {
	case addr.P1:
		m.joypad.Write(value)
	case addr.SB, addr.SC:
		if m.serial != nil {
			m.serial.Write(address, value)
		}
	case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
		m.timer.Write(address, value)
	case addr.IF:
		m.interruptFlag = value & addr.InterruptMask
	case addr.LCDC:
		m.lcdc = value
	case addr.STAT:
		// only the interrupt source selection bits are writable
		m.stat = (m.stat & 0x07) | (value & 0x78)
	case addr.SCY:
		m.scy = value
	case addr.SCX:
		m.scx = value
	case addr.LY:
		// read-only
	case addr.LYC:
		m.lyc = value
	case addr.DMA:
		m.dma = value
		m.transferOAM(value)
	case addr.BGP:
		m.bgp = value
	case addr.OBP0:
		m.obp0 = value
	case addr.OBP1:
		m.obp1 = value
	case addr.WY:
		m.wy = value
	case addr.WX:
		m.wx = value
	case addr.BOOT:
		if value != 0 && m.inBios {
			m.inBios = false
			m.logger.Debug("boot ROM unmapped")
		}
	case addr.IE:
		m.interruptEnable = value
	}
}

// transferOAM copies 160 bytes from (page << 8) into OAM. The copy happens
// synchronously, before the write that triggered it returns.
func (m *MMU) transferOAM(page byte) {
	source := uint16(page) << 8
	m.logger.Debug("OAM DMA", "source", fmt.Sprintf("0x%04X", source))

	for i := uint16(0); i < uint16(len(m.oam)); i++ {
		m.oam[i] = m.Read(source + i)
	}
}
