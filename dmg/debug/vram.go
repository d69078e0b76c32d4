package debug

import (
	"fmt"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
	"github.com/valerio/go-dmgcore/dmg/video"
)

const (
	TileDataSize     = 16
	TilePatternCount = 384
	TilesPerRow      = 16
	TileRows         = 24
)

// TilePattern is one decoded tile of the 0x8000-0x97FF area.
type TilePattern struct {
	Index int
	Tile  video.Tile
}

// Pixels returns the tile's color indexes (0-3), row by row.
func (p *TilePattern) Pixels() [8][8]uint8 {
	var pixels [8][8]uint8
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pixels[y][x] = p.Tile.GetPixel(x, y)
		}
	}
	return pixels
}

type TilemapInfo struct {
	BackgroundActive bool
	WindowActive     bool
	BackgroundMap    uint16
	WindowMap        uint16
	LCDCValue        uint8
}

type VRAMData struct {
	TilePatterns []TilePattern
	TilemapInfo  TilemapInfo
}

// ExtractVRAMData decodes all 384 tiles and the tile map selection from LCDC.
func ExtractVRAMData(reader MemoryReader) *VRAMData {
	data := &VRAMData{
		TilePatterns: make([]TilePattern, TilePatternCount),
	}

	for i := 0; i < TilePatternCount; i++ {
		base := addr.TileData0 + uint16(i*TileDataSize)
		data.TilePatterns[i] = TilePattern{Index: i, Tile: video.FetchTile(reader, base)}
	}

	lcdc := reader.Read(addr.LCDC)
	data.TilemapInfo = TilemapInfo{
		BackgroundActive: bit.IsSet(0, lcdc),
		WindowActive:     bit.IsSet(5, lcdc),
		BackgroundMap:    addr.TileMap0,
		WindowMap:        addr.TileMap0,
		LCDCValue:        lcdc,
	}
	if bit.IsSet(3, lcdc) {
		data.TilemapInfo.BackgroundMap = addr.TileMap1
	}
	if bit.IsSet(6, lcdc) {
		data.TilemapInfo.WindowMap = addr.TileMap1
	}

	return data
}

// GetTileGrid arranges the tiles 16 per row, the usual tile viewer layout.
func (data *VRAMData) GetTileGrid() [][]TilePattern {
	grid := make([][]TilePattern, TileRows)
	for row := 0; row < TileRows; row++ {
		start := row * TilesPerRow
		grid[row] = data.TilePatterns[start : start+TilesPerRow]
	}
	return grid
}

func (info *TilemapInfo) FormatSummary() string {
	bgStatus := "INACTIVE"
	if info.BackgroundActive {
		bgStatus = "ACTIVE"
	}

	winStatus := "INACTIVE"
	if info.WindowActive {
		winStatus = "ACTIVE"
	}

	return fmt.Sprintf("Background Map: 0x%04X [%s] | Window Map: 0x%04X [%s] | LCDC: 0x%02X",
		info.BackgroundMap, bgStatus, info.WindowMap, winStatus, info.LCDCValue)
}
