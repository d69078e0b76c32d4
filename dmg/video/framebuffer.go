package video

import (
	"image"

	"github.com/cespare/xxhash"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// ScanlineSink receives every rendered line, as shades (0-3). The call
// blocks the PPU: the core does not go past line N until it returns.
type ScanlineSink interface {
	DrawScanline(line int, pixels *[ScreenWidth]uint8)
}

// FrameSink is optionally implemented by a ScanlineSink that wants to know
// when the last line of a frame has been drawn (start of line 0 after VBlank).
type FrameSink interface {
	FrameDone()
}

// FrameBuffer collects scanlines into a full frame of shades.
type FrameBuffer struct {
	pixels [ScreenWidth * ScreenHeight]uint8
	frames uint64
}

// NewFrameBuffer creates an all-white frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

func (fb *FrameBuffer) DrawScanline(line int, pixels *[ScreenWidth]uint8) {
	if line < 0 || line >= ScreenHeight {
		return
	}
	copy(fb.pixels[line*ScreenWidth:], pixels[:])
}

func (fb *FrameBuffer) FrameDone() {
	fb.frames++
}

// Shade returns the shade (0-3) at (x, y).
func (fb *FrameBuffer) Shade(x, y int) uint8 {
	return fb.pixels[y*ScreenWidth+x]
}

// Pixels returns the frame in row-major order. The slice aliases the buffer.
func (fb *FrameBuffer) Pixels() []uint8 {
	return fb.pixels[:]
}

// Frames is the number of completed frames.
func (fb *FrameBuffer) Frames() uint64 {
	return fb.frames
}

// Hash returns a digest of the current frame, used to compare frames
// across runs.
func (fb *FrameBuffer) Hash() uint64 {
	return xxhash.Sum64(fb.pixels[:])
}

// Image renders the frame with the default shade colors.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			img.SetNRGBA(x, y, ShadeToColor(fb.Shade(x, y)).NRGBA())
		}
	}
	return img
}
