package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/video"
	"golang.org/x/image/bmp"
)

func testFrame() *video.FrameBuffer {
	fb := video.NewFrameBuffer()
	var line [video.ScreenWidth]uint8
	for x := range line {
		line[x] = uint8(x % 4)
	}
	fb.DrawScanline(0, &line)
	return fb
}

func TestShadeChar(t *testing.T) {
	assert.Equal(t, '░', ShadeChar(0))
	assert.Equal(t, '▒', ShadeChar(1))
	assert.Equal(t, '▓', ShadeChar(2))
	assert.Equal(t, '█', ShadeChar(3))
}

func TestWriteFrameText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrameText(&buf, testFrame(), 7, 1234))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5+video.ScreenHeight)
	assert.Equal(t, "# Frame: 7, Instructions: 1234", lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "░▒▓█░"))
	assert.Equal(t, strings.Repeat("░", video.ScreenWidth), lines[6])
}

func TestSaveFrameBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	require.NoError(t, SaveFrameBMP(testFrame(), path, 2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, video.ScreenWidth*2, img.Bounds().Dx())
	assert.Equal(t, video.ScreenHeight*2, img.Bounds().Dy())

	r, g, b, _ := img.At(7, 0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b}) // pixel 3 is black
	r, _, _, _ = img.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
}

func TestSaveFrameBMPBadPath(t *testing.T) {
	err := SaveFrameBMP(testFrame(), filepath.Join(t.TempDir(), "missing", "frame.bmp"), 1)
	assert.Error(t, err)
}

func TestTileSheet(t *testing.T) {
	_, mmu := newTestMachine(t)
	mmu.Write(addr.BGP, 0xE4)
	for i := uint16(0); i < uint16(16); i++ {
		mmu.Write(addr.TileData0+16+i, 0x00) // tile 1 blank, the rest of VRAM is 0xFF
	}

	img := TileSheet(mmu)
	assert.Equal(t, TilesPerRow*8, img.Bounds().Dx())
	assert.Equal(t, TileRows*8, img.Bounds().Dy())
	assert.Equal(t, video.ShadeToColor(3).NRGBA(), img.NRGBAAt(0, 0))
	assert.Equal(t, video.ShadeToColor(0).NRGBA(), img.NRGBAAt(8, 7))
	assert.Equal(t, video.ShadeToColor(3).NRGBA(), img.NRGBAAt(16, 0))

	path := filepath.Join(t.TempDir(), "tiles.bmp")
	require.NoError(t, SaveTileSheetBMP(mmu, path, 2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, TilesPerRow*16, decoded.Bounds().Dx())
}
