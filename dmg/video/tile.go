package video

import "github.com/valerio/go-dmgcore/dmg/bit"

// TileRow represents one row of a tile pattern (8 pixels).
//
// Tiles are 8x8 pixels, with 2 bits per pixel allowing 4 colors.
// Each tile row uses 2 bytes in a bit-plane format:
//
//	Byte 1 (Low):  Bit plane 0 - provides bit 0 of each pixel's color
//	Byte 2 (High): Bit plane 1 - provides bit 1 of each pixel's color
//
// Bit 7 represents the leftmost pixel, bit 0 the rightmost:
//
//	Low  (0x3C): 0 0 1 1 1 1 0 0
//	High (0x7E): 0 1 1 1 1 1 1 0
//	            -----------------
//	Colors:      0 2 3 3 3 3 2 0
//
// The result is a color index (0-3), turned into a shade by a palette.
type TileRow struct {
	Low  byte
	High byte
}

// GetPixel extracts a pixel color index (0-3) from the tile row.
// pixelX should be 0-7, where 0 is the leftmost pixel.
func (t TileRow) GetPixel(pixelX int) uint8 {
	return t.pixelAt(uint8(7 - pixelX))
}

// GetPixelFlipped extracts a pixel color index with horizontal flip.
func (t TileRow) GetPixelFlipped(pixelX int) uint8 {
	return t.pixelAt(uint8(pixelX))
}

func (t TileRow) pixelAt(bitIndex uint8) uint8 {
	return bit.Value(bitIndex, t.High)<<1 | bit.Value(bitIndex, t.Low)
}

// Tile is a complete 8x8 tile pattern, 16 bytes in VRAM.
type Tile struct {
	Rows [8]TileRow
}

// GetPixel returns the color index (0-3) for a pixel at (x, y).
func (t *Tile) GetPixel(x, y int) uint8 {
	if y < 0 || y >= 8 || x < 0 || x >= 8 {
		return 0
	}
	return t.Rows[y].GetPixel(x)
}

// MemoryReader is the read side of the address space.
type MemoryReader interface {
	Read(address uint16) byte
}

// FetchTileRow reads the two bytes of one row starting at baseAddr.
func FetchTileRow(memory MemoryReader, baseAddr uint16, row int) TileRow {
	address := baseAddr + uint16(row*2)
	return TileRow{
		Low:  memory.Read(address),
		High: memory.Read(address + 1),
	}
}

// FetchTile reads a complete tile from memory at the given address.
func FetchTile(memory MemoryReader, baseAddr uint16) Tile {
	var tile Tile
	for row := 0; row < 8; row++ {
		tile.Rows[row] = FetchTileRow(memory, baseAddr, row)
	}
	return tile
}
