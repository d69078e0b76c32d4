package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-dmgcore/dmg/addr"
)

func TestExtractOAMData(t *testing.T) {
	_, mmu := newTestMachine(t)

	mmu.Write(addr.OAMStart, 16+50)  // Y position (adjusted = 50)
	mmu.Write(addr.OAMStart+1, 8+30) // X position (adjusted = 30)
	mmu.Write(addr.OAMStart+2, 0x42) // Tile index
	mmu.Write(addr.OAMStart+3, 0x80) // Attributes (background priority set)

	mmu.Write(addr.OAMStart+4, 16+60)
	mmu.Write(addr.OAMStart+5, 8+40)
	mmu.Write(addr.OAMStart+6, 0x24)
	mmu.Write(addr.OAMStart+7, 0x00)

	oamData := ExtractOAMData(mmu, 55, 8)

	assert.Len(t, oamData.Sprites, OAMSpriteCount)
	assert.Equal(t, 55, oamData.CurrentLine)
	assert.Equal(t, 8, oamData.SpriteHeight)

	sprite0 := oamData.Sprites[0]
	assert.Equal(t, 0, sprite0.OAMIndex)
	assert.Equal(t, 50, sprite0.Y)
	assert.Equal(t, 30, sprite0.X)
	assert.Equal(t, uint8(0x42), sprite0.TileIndex)
	assert.True(t, sprite0.BehindBG)
	assert.True(t, sprite0.IsVisible) // 50 <= 55 < 58

	sprite1 := oamData.Sprites[1]
	assert.Equal(t, 1, sprite1.OAMIndex)
	assert.Equal(t, 60, sprite1.Y)
	assert.False(t, sprite1.IsVisible)

	assert.Equal(t, 1, oamData.ActiveSprites)
	assert.Len(t, oamData.GetVisibleSprites(), 1)

	// taller sprites reach further down
	oamData = ExtractOAMData(mmu, 65, 16)
	assert.Equal(t, 2, oamData.ActiveSprites)
}

func TestOAMFormatting(t *testing.T) {
	_, mmu := newTestMachine(t)
	mmu.Write(addr.OAMStart, 16+10)
	mmu.Write(addr.OAMStart+1, 8+20)
	mmu.Write(addr.OAMStart+2, 0x05)
	mmu.Write(addr.OAMStart+3, 0x20)

	oamData := ExtractOAMData(mmu, 12, 8)

	assert.Equal(t, "Sprite  0: Y= 10 X= 20  Tile=0x05 Flags=0x20 [ACTIVE]", oamData.Sprites[0].String())
	assert.Equal(t, "Sprite  1: Y=-16 X= -8  Tile=0x00 Flags=0x00 [OFF]", oamData.Sprites[1].String())
	assert.Equal(t, "Current Line: 12 | Active Sprites: 1/10 | Height: 8px", oamData.FormatSummary())
}
