package memory

import "github.com/valerio/go-dmgcore/dmg/bit"

// JoypadKey is the bit position of a button in the byte returned by an
// InputProvider.
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// InputProvider reports the state of the 8 buttons, active-low:
// a 0 bit means the button at that JoypadKey position is held down.
type InputProvider interface {
	Buttons() uint8
}

// StaticInput is an InputProvider with a fixed, settable state.
type StaticInput uint8

// NoInput is the provider state with every button released.
const NoInput StaticInput = 0xFF

func (s StaticInput) Buttons() uint8 { return uint8(s) }

// Press returns the state with key held down.
func (s StaticInput) Press(key JoypadKey) StaticInput {
	return StaticInput(bit.Reset(uint8(key), uint8(s)))
}

// Release returns the state with key released.
func (s StaticInput) Release(key JoypadKey) StaticInput {
	return StaticInput(bit.Set(uint8(key), uint8(s)))
}

// Joypad models the P1/JOYP register.
//
// In real hw, this register is actually just a selector (bits 5-4) that control
// to which set of buttons the low bits (0-3) are mapped to:
//   - if bit 4 is clear, bits 0-3 are mapped to the 4 d-pad directions
//   - if bit 5 is clear, bits 0-3 are mapped to A, B, Select, Start
//   - if both are clear, hw does an AND of both button sets
//   - if neither are, the low bits read 0x0F
//
// Bits 6-7 are unused, they always read as 1.
type Joypad struct {
	selectBits uint8 // bits 5-4 as last written
	state      uint8 // sampled provider state, active-low
	provider   InputProvider
}

// Reset releases all buttons and deselects both groups, so P1 reads 0xFF.
func (j *Joypad) Reset() {
	j.selectBits = 0x30
	j.state = 0xFF
}

// Read returns the current P1 value.
func (j *Joypad) Read() uint8 {
	return 0xC0 | j.selectBits | j.lines()
}

// Write updates the selection bits, the only writable part of P1.
func (j *Joypad) Write(value uint8) {
	j.selectBits = value & 0x30
}

// Refresh samples the provider and reports whether any selected line went
// from high to low, which is the joypad interrupt condition.
func (j *Joypad) Refresh() bool {
	if j.provider == nil {
		return false
	}
	before := j.lines()
	j.state = j.provider.Buttons()
	after := j.lines()

	return before&^after != 0
}

func (j *Joypad) lines() uint8 {
	dpad := j.state & 0x0F
	buttons := j.state >> 4

	selectDpad := !bit.IsSet(4, j.selectBits)
	selectButtons := !bit.IsSet(5, j.selectBits)

	switch {
	case selectButtons && selectDpad:
		return buttons & dpad
	case selectButtons:
		return buttons
	case selectDpad:
		return dpad
	default:
		return 0x0F
	}
}
