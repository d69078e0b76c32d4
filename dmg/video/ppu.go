package video

import (
	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
)

// Mode is the PPU mode, numbered as in STAT bits 1-0.
type Mode uint8

const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	PixelTransfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "hblank"
	case VBlank:
		return "vblank"
	case OAMSearch:
		return "oam"
	case PixelTransfer:
		return "transfer"
	}
	return "unknown"
}

// Mode lengths in machine cycles. A full line takes 114 cycles.
const (
	oamCycles      = 20
	transferCycles = 43
	hblankCycles   = 51
	lineCycles     = oamCycles + transferCycles + hblankCycles

	visibleLines = ScreenHeight
	totalLines   = 154
)

// LCDC (LCD Control) Register bit values
// Bit 7 - LCD Display Enable (0=Off, 1=On)
// Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 5 - Window Display Enable (0=Off, 1=On)
// Bit 4 - BG & Window Tile Data Select (0=8800-97FF, 1=8000-8FFF)
// Bit 3 - BG Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 2 - OBJ (Sprite) Size (0=8x8, 1=8x16)
// Bit 1 - OBJ (Sprite) Display Enable (0=Off, 1=On)
// Bit 0 - BG Display (0=Off, 1=On)
const (
	lcdDisplayEnable       uint8 = 7
	windowTileMapSelect    uint8 = 6
	windowDisplayEnable    uint8 = 5
	bgWindowTileDataSelect uint8 = 4
	bgTileMapDisplaySelect uint8 = 3
	spriteSize             uint8 = 2
	spriteDisplayEnable    uint8 = 1
	bgDisplay              uint8 = 0
)

// STAT interrupt source selection bits.
const (
	statHBlankInterrupt uint8 = 3
	statVBlankInterrupt uint8 = 4
	statOAMInterrupt    uint8 = 5
	statLYCInterrupt    uint8 = 6
)

// Bus is what the PPU needs from the memory map: register and VRAM/OAM
// reads, and the hooks to publish LY and STAT.
type Bus interface {
	Read(address uint16) byte
	SetLY(line uint8)
	SetSTATMode(mode uint8, coincidence bool)
	RequestInterrupt(interrupt addr.Interrupt)
}

// PPU is the mode state machine: OAM search, pixel transfer and HBlank for
// each of the 144 visible lines, then 10 lines of VBlank. A line is rendered
// and handed to the sink when pixel transfer ends.
type PPU struct {
	bus  Bus
	sink ScanlineSink

	mode   Mode
	cycles int // cycles spent in the current mode
	line   int
	lcdOn  bool

	// window rows drawn so far this frame
	windowLine int
	frame      uint64

	pixels  [ScreenWidth]uint8
	bgIndex [ScreenWidth]uint8 // raw BG/window color index, for sprite priority
	sprites [maxSpritesPerLine]Sprite
}

// New creates a PPU. sink may be nil, in which case lines are rendered and
// discarded.
func New(bus Bus, sink ScanlineSink) *PPU {
	p := &PPU{bus: bus, sink: sink}
	p.Reset()
	return p
}

// SetSink replaces the scanline sink.
func (p *PPU) SetSink(sink ScanlineSink) {
	p.sink = sink
}

// Reset puts the PPU at the start of OAM search on line 0.
func (p *PPU) Reset() {
	p.mode = OAMSearch
	p.cycles = 0
	p.line = 0
	p.lcdOn = true
	p.windowLine = 0
	p.frame = 0

	p.bus.SetLY(0)
	p.bus.SetSTATMode(uint8(OAMSearch), p.coincidence())
}

// Tick advances the state machine by the given machine cycles. Cycles left
// over after a mode change count towards the next mode.
func (p *PPU) Tick(cycles int) {
	if !bit.IsSet(lcdDisplayEnable, p.bus.Read(addr.LCDC)) {
		if p.lcdOn {
			p.turnOff()
		}
		return
	}

	if !p.lcdOn {
		p.lcdOn = true
		p.line = 0
		p.cycles = 0
		p.windowLine = 0
		p.enterMode(OAMSearch)
		p.compareLYC()
	}

	p.cycles += cycles
	for p.cycles >= p.modeCycles() {
		p.cycles -= p.modeCycles()
		p.advance()
	}
}

// turnOff holds the PPU on line 0 in HBlank while the LCD is disabled.
func (p *PPU) turnOff() {
	p.lcdOn = false
	p.mode = HBlank
	p.cycles = 0
	p.line = 0
	p.windowLine = 0
	p.bus.SetLY(0)
	p.bus.SetSTATMode(uint8(HBlank), false)
}

func (p *PPU) modeCycles() int {
	switch p.mode {
	case OAMSearch:
		return oamCycles
	case PixelTransfer:
		return transferCycles
	case HBlank:
		return hblankCycles
	default:
		return lineCycles
	}
}

func (p *PPU) advance() {
	switch p.mode {
	case OAMSearch:
		p.enterMode(PixelTransfer)

	case PixelTransfer:
		p.renderScanline()
		p.enterMode(HBlank)

	case HBlank:
		p.line++
		if p.line == visibleLines {
			p.enterMode(VBlank)
			p.bus.RequestInterrupt(addr.VBlankInterrupt)
		} else {
			p.enterMode(OAMSearch)
		}
		p.compareLYC()

	case VBlank:
		p.line++
		if p.line == totalLines {
			p.line = 0
			p.windowLine = 0
			p.frame++
			if fs, ok := p.sink.(FrameSink); ok {
				fs.FrameDone()
			}
			p.enterMode(OAMSearch)
		}
		p.compareLYC()
	}
}

// enterMode switches mode, publishes it to STAT and raises the STAT
// interrupt when the mode's source is selected.
func (p *PPU) enterMode(mode Mode) {
	p.mode = mode
	p.bus.SetSTATMode(uint8(mode), p.coincidence())

	var source uint8
	switch mode {
	case HBlank:
		source = statHBlankInterrupt
	case VBlank:
		source = statVBlankInterrupt
	case OAMSearch:
		source = statOAMInterrupt
	default:
		return
	}
	if bit.IsSet(source, p.bus.Read(addr.STAT)) {
		p.bus.RequestInterrupt(addr.LCDSTATInterrupt)
	}
}

func (p *PPU) coincidence() bool {
	return uint8(p.line) == p.bus.Read(addr.LYC)
}

// compareLYC publishes LY and the coincidence flag, raising the STAT
// interrupt on a match when selected.
func (p *PPU) compareLYC() {
	p.bus.SetLY(uint8(p.line))

	match := p.coincidence()
	p.bus.SetSTATMode(uint8(p.mode), match)
	if match && bit.IsSet(statLYCInterrupt, p.bus.Read(addr.STAT)) {
		p.bus.RequestInterrupt(addr.LCDSTATInterrupt)
	}
}

func (p *PPU) renderScanline() {
	lcdc := p.bus.Read(addr.LCDC)

	for x := 0; x < ScreenWidth; x++ {
		p.pixels[x] = 0
		p.bgIndex[x] = 0
	}

	if bit.IsSet(bgDisplay, lcdc) {
		bgp := Palette(p.bus.Read(addr.BGP))
		p.renderBackground(lcdc, bgp)
		if bit.IsSet(windowDisplayEnable, lcdc) {
			p.renderWindow(lcdc, bgp)
		}
	}

	if bit.IsSet(spriteDisplayEnable, lcdc) {
		p.renderSprites(lcdc)
	}

	if p.sink != nil {
		p.sink.DrawScanline(p.line, &p.pixels)
	}
}

// tileDataAddress returns where tile number n starts, for background and
// window tiles. With LCDC bit 4 clear, n is signed and relative to 0x9000.
func tileDataAddress(lcdc, n uint8) uint16 {
	if bit.IsSet(bgWindowTileDataSelect, lcdc) {
		return addr.TileData0 + uint16(n)*16
	}
	return uint16(int(addr.TileData2) + int(int8(n))*16)
}

func (p *PPU) renderBackground(lcdc uint8, bgp Palette) {
	tileMap := addr.TileMap0
	if bit.IsSet(bgTileMapDisplaySelect, lcdc) {
		tileMap = addr.TileMap1
	}

	scx := p.bus.Read(addr.SCX)
	y := uint8(p.line) + p.bus.Read(addr.SCY)
	mapRow := tileMap + uint16(y/8)*32

	var row TileRow
	for x := 0; x < ScreenWidth; x++ {
		// the map is 32x32 tiles and wraps around horizontally
		bgX := uint8(x) + scx
		if x == 0 || bgX%8 == 0 {
			n := p.bus.Read(mapRow + uint16(bgX/8))
			row = FetchTileRow(p.bus, tileDataAddress(lcdc, n), int(y%8))
		}

		index := row.GetPixel(int(bgX % 8))
		p.bgIndex[x] = index
		p.pixels[x] = bgp.Shade(index)
	}
}

func (p *PPU) renderWindow(lcdc uint8, bgp Palette) {
	wy := int(p.bus.Read(addr.WY))
	wx := int(p.bus.Read(addr.WX)) - 7
	if p.line < wy || wx >= ScreenWidth {
		return
	}

	tileMap := addr.TileMap0
	if bit.IsSet(windowTileMapSelect, lcdc) {
		tileMap = addr.TileMap1
	}

	y := p.windowLine
	mapRow := tileMap + uint16(y/8)*32

	var row TileRow
	for x := max(wx, 0); x < ScreenWidth; x++ {
		winX := x - wx
		if x == max(wx, 0) || winX%8 == 0 {
			n := p.bus.Read(mapRow + uint16(winX/8))
			row = FetchTileRow(p.bus, tileDataAddress(lcdc, n), y%8)
		}

		index := row.GetPixel(winX % 8)
		p.bgIndex[x] = index
		p.pixels[x] = bgp.Shade(index)
	}

	p.windowLine++
}

func (p *PPU) spriteHeight(lcdc uint8) int {
	if bit.IsSet(spriteSize, lcdc) {
		return 16
	}
	return 8
}

// renderSprites draws the line's sprites front to back: the first sprite
// with an opaque pixel in a column owns it, even when it is hidden behind
// the background there.
func (p *PPU) renderSprites(lcdc uint8) {
	height := p.spriteHeight(lcdc)
	sprites := spritesForLine(p.bus, p.line, height, p.sprites[:])

	obp := [2]Palette{
		Palette(p.bus.Read(addr.OBP0)),
		Palette(p.bus.Read(addr.OBP1)),
	}

	var owned [ScreenWidth]bool
	for _, s := range sprites {
		row := p.line - s.Y
		if s.FlipY {
			row = height - 1 - row
		}

		tile := s.TileIndex
		if height == 16 {
			// 8x16 sprites use an even/odd tile pair
			tile &^= 1
		}
		// both tiles of a pair are contiguous, so rows 8-15 run into the second
		tileRow := FetchTileRow(p.bus, addr.TileData0+uint16(tile)*16, row)

		palette := obp[0]
		if s.PaletteOBP1 {
			palette = obp[1]
		}

		for px := 0; px < 8; px++ {
			x := s.X + px
			if x < 0 || x >= ScreenWidth || owned[x] {
				continue
			}

			var index uint8
			if s.FlipX {
				index = tileRow.GetPixelFlipped(px)
			} else {
				index = tileRow.GetPixel(px)
			}
			if index == 0 {
				// transparent
				continue
			}

			owned[x] = true
			if s.BehindBG && p.bgIndex[x] != 0 {
				continue
			}
			p.pixels[x] = palette.Shade(index)
		}
	}
}

// Mode returns the current mode.
func (p *PPU) Mode() Mode { return p.mode }

// Line returns the current scanline (LY).
func (p *PPU) Line() int { return p.line }

// WindowLine returns the internal window line counter.
func (p *PPU) WindowLine() int { return p.windowLine }

// Frame returns the number of frames completed since reset.
func (p *PPU) Frame() uint64 { return p.frame }

// Sprites returns the sprites that would be drawn on line, in priority order.
func (p *PPU) Sprites(line int) []Sprite {
	height := p.spriteHeight(p.bus.Read(addr.LCDC))
	return spritesForLine(p.bus, line, height, make([]Sprite, 0, maxSpritesPerLine))
}
