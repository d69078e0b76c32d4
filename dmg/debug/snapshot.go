package debug

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/video"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ShadeChars maps darkness (0 black .. 3 white) to a block character.
var ShadeChars = [4]rune{'█', '▓', '▒', '░'}

// ShadeChar returns the character for a shade (0 white .. 3 black).
func ShadeChar(shade uint8) rune {
	return ShadeChars[3-shade&0x03]
}

// ScaleFrame renders the frame at scale times its size, nearest neighbor.
func ScaleFrame(fb *video.FrameBuffer, scale int) image.Image {
	return scaleImage(fb.Image(), scale)
}

func scaleImage(src *image.NRGBA, scale int) image.Image {
	if scale <= 1 {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SaveFrameBMP writes the frame to path as a BMP image.
func SaveFrameBMP(fb *video.FrameBuffer, path string, scale int) error {
	return writeBMP(path, ScaleFrame(fb, scale))
}

// TileSheet draws the 384 tiles of VRAM, 16 per row, through the
// background palette.
func TileSheet(mem MemoryReader) *image.NRGBA {
	data := ExtractVRAMData(mem)
	bgp := video.Palette(mem.Read(addr.BGP))

	img := image.NewNRGBA(image.Rect(0, 0, TilesPerRow*8, TileRows*8))
	for row, tiles := range data.GetTileGrid() {
		for col, tile := range tiles {
			pixels := tile.Pixels()
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					c := video.ShadeToColor(bgp.Shade(pixels[y][x])).NRGBA()
					img.SetNRGBA(col*8+x, row*8+y, c)
				}
			}
		}
	}
	return img
}

// SaveTileSheetBMP writes the tile sheet of mem to path as a BMP image.
func SaveTileSheetBMP(mem MemoryReader, path string, scale int) error {
	return writeBMP(path, scaleImage(TileSheet(mem), scale))
}

func writeBMP(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}

	if err := bmp.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode BMP: %w", err)
	}
	return file.Close()
}

// WriteFrameText writes the frame as block characters, one line per
// scanline, after a commented header.
func WriteFrameText(w io.Writer, fb *video.FrameBuffer, frame uint64, instructions uint64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Frame Snapshot\n")
	fmt.Fprintf(bw, "# Frame: %d, Instructions: %d\n", frame, instructions)
	fmt.Fprintf(bw, "# Resolution: %dx%d pixels\n", video.ScreenWidth, video.ScreenHeight)
	fmt.Fprintf(bw, "# Hash: %016x\n", fb.Hash())
	fmt.Fprintf(bw, "#\n")

	for y := 0; y < video.ScreenHeight; y++ {
		for x := 0; x < video.ScreenWidth; x++ {
			bw.WriteRune(ShadeChar(fb.Shade(x, y)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
