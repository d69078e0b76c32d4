package debug

import (
	"fmt"

	"github.com/valerio/go-dmgcore/dmg/video"
)

const (
	OAMSpriteCount    = 40
	MaxSpritesPerLine = 10
)

// SpriteInfo is one OAM entry plus whether it covers the inspected line.
type SpriteInfo struct {
	video.Sprite
	IsVisible bool
}

// OAMData is a decoded copy of OAM as seen from one scanline.
type OAMData struct {
	Sprites       []SpriteInfo
	CurrentLine   int
	ActiveSprites int
	SpriteHeight  int
}

// ExtractOAMData decodes all 40 OAM entries. ActiveSprites counts the
// entries covering currentLine, before the per-line limit is applied.
func ExtractOAMData(reader MemoryReader, currentLine int, spriteHeight int) *OAMData {
	data := &OAMData{
		Sprites:      make([]SpriteInfo, OAMSpriteCount),
		CurrentLine:  currentLine,
		SpriteHeight: spriteHeight,
	}

	for i := 0; i < OAMSpriteCount; i++ {
		s := video.ReadSprite(reader, i)
		visible := s.Y <= currentLine && currentLine < s.Y+spriteHeight
		if visible {
			data.ActiveSprites++
		}
		data.Sprites[i] = SpriteInfo{Sprite: s, IsVisible: visible}
	}

	return data
}

func (s *SpriteInfo) String() string {
	status := "OFF"
	if s.IsVisible {
		status = "ACTIVE"
	}
	return fmt.Sprintf("Sprite %2d: Y=%3d X=%3d  Tile=0x%02X Flags=0x%02X [%s]",
		s.OAMIndex, s.Y, s.X, s.TileIndex, s.Flags, status)
}

// GetVisibleSprites returns the entries covering the current line, in OAM order.
func (data *OAMData) GetVisibleSprites() []SpriteInfo {
	visible := make([]SpriteInfo, 0, data.ActiveSprites)
	for _, sprite := range data.Sprites {
		if sprite.IsVisible {
			visible = append(visible, sprite)
		}
	}
	return visible
}

func (data *OAMData) FormatSummary() string {
	return fmt.Sprintf("Current Line: %d | Active Sprites: %d/%d | Height: %dpx",
		data.CurrentLine, data.ActiveSprites, MaxSpritesPerLine, data.SpriteHeight)
}
