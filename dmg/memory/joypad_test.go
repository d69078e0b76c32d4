package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoypadSelection(t *testing.T) {
	input := NoInput.Press(JoypadA).Press(JoypadDown)

	testCases := []struct {
		desc       string
		selectBits uint8
		want       uint8
	}{
		{"nothing selected", 0x30, 0xFF},
		{"d-pad", 0x20, 0xE7},
		{"buttons", 0x10, 0xDE},
		{"both", 0x00, 0xC6},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var j Joypad
			j.Reset()
			j.provider = input
			j.Write(tC.selectBits)
			j.Refresh()

			assert.Equal(t, tC.want, j.Read())
		})
	}
}

func TestJoypadInterruptOnPress(t *testing.T) {
	var j Joypad
	j.Reset()
	input := NoInput
	j.provider = &input
	j.Write(0x20)

	assert.False(t, j.Refresh())

	input = input.Press(JoypadLeft)
	assert.True(t, j.Refresh(), "press on a selected line")
	assert.False(t, j.Refresh(), "held button does not retrigger")

	input = input.Press(JoypadB)
	assert.False(t, j.Refresh(), "button group is not selected")
}

func TestJoypadWriteOnlyKeepsSelectBits(t *testing.T) {
	var j Joypad
	j.Reset()

	j.Write(0xCF)
	assert.Equal(t, byte(0xCF), j.Read())
}
