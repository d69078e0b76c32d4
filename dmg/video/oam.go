package video

import (
	"cmp"
	"slices"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
)

const (
	spriteCount       = 40
	maxSpritesPerLine = 10
)

// Sprite represents a single object in OAM (0xFE00-0xFE9F), 4 bytes each.
type Sprite struct {
	Y         int   // screen Y of the top row (raw Y - 16)
	X         int   // screen X of the leftmost column (raw X - 8)
	TileIndex uint8 // tile number, always in the 0x8000 area
	Flags     uint8 // attribute byte
	OAMIndex  int   // 0-39

	// parsed attribute flags
	PaletteOBP1 bool // false = OBP0, true = OBP1
	FlipX       bool
	FlipY       bool
	BehindBG    bool // drawn only over background color 0
}

func (s *Sprite) parseFlags() {
	s.PaletteOBP1 = bit.IsSet(4, s.Flags)
	s.FlipX = bit.IsSet(5, s.Flags)
	s.FlipY = bit.IsSet(6, s.Flags)
	s.BehindBG = bit.IsSet(7, s.Flags)
}

// ReadSprite decodes OAM entry index (0-39).
func ReadSprite(memory MemoryReader, index int) Sprite {
	base := addr.OAMStart + uint16(index*4)

	s := Sprite{
		Y:         int(memory.Read(base)) - 16,
		X:         int(memory.Read(base+1)) - 8,
		TileIndex: memory.Read(base + 2),
		Flags:     memory.Read(base + 3),
		OAMIndex:  index,
	}
	s.parseFlags()
	return s
}

// spritesForLine appends to buf the sprites drawn on line, in drawing
// priority order.
//
// Selection scans OAM in order and keeps the first 10 sprites whose rows
// cover the line. Priority between overlapping sprites is then by X
// coordinate, lower wins, and on equal X the lower OAM index wins.
func spritesForLine(memory MemoryReader, line, height int, buf []Sprite) []Sprite {
	sprites := buf[:0]
	for i := 0; i < spriteCount; i++ {
		y := int(memory.Read(addr.OAMStart+uint16(i*4))) - 16
		if line < y || line >= y+height {
			continue
		}

		sprites = append(sprites, ReadSprite(memory, i))
		if len(sprites) == maxSpritesPerLine {
			break
		}
	}

	// stable, so equal X keeps OAM order
	slices.SortStableFunc(sprites, func(a, b Sprite) int {
		return cmp.Compare(a.X, b.X)
	})
	return sprites
}
