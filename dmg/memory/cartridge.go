package memory

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxROMSize is the largest cartridge image the flat mapping can hold.
const MaxROMSize = 0x8000

// BootROMSize is the exact size of a DMG boot image.
const BootROMSize = 0x100

const (
	titleAddress  = 0x134
	titleLength   = 16
	cartTypeAddr  = 0x147
	headerEndAddr = 0x150
)

var (
	// ErrBootROMSize is returned when a boot image is not exactly 256 bytes.
	ErrBootROMSize = errors.New("boot ROM must be exactly 256 bytes")
	// ErrCartridgeSize is returned when a cartridge image does not fit the flat ROM mapping.
	ErrCartridgeSize = errors.New("cartridge ROM must be at most 32KiB")
)

// Cartridge is a flat-mapped ROM image (no memory bank controller).
// Bytes past the end of the image read as 0xFF, like an open bus.
type Cartridge struct {
	rom      [MaxROMSize]byte
	size     int
	title    string
	cartType uint8
}

// NewCartridge copies data into a cartridge. An empty image is valid and
// is equivalent to turning the console on with no cartridge in.
func NewCartridge(data []byte) (*Cartridge, error) {
	if len(data) > MaxROMSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrCartridgeSize, len(data))
	}

	c := &Cartridge{size: len(data)}
	for i := range c.rom {
		c.rom[i] = 0xFF
	}
	copy(c.rom[:], data)

	if len(data) >= headerEndAddr {
		c.title = cleanTitle(data[titleAddress : titleAddress+titleLength])
		c.cartType = data[cartTypeAddr]
	}

	return c, nil
}

// Read returns the byte at address, which must be below MaxROMSize.
func (c *Cartridge) Read(address uint16) byte {
	return c.rom[address]
}

// Title is the cleaned header title, empty if the image has no header.
func (c *Cartridge) Title() string { return c.title }

// Size is the length of the loaded image in bytes.
func (c *Cartridge) Size() int { return c.size }

// Type is the raw cartridge type byte from the header (0x00 for ROM only).
func (c *Cartridge) Type() uint8 { return c.cartType }

// cleanTitle turns the raw header title into printable text: NUL padding is
// dropped and anything unprintable becomes '?'.
func cleanTitle(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		if r == 0 {
			r = ' '
		} else if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			r = '?'
		}
		runes = append(runes, r)
	}
	return strings.TrimSpace(string(runes))
}
