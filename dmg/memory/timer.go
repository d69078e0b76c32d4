package memory

import (
	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
)

// The timer runs off a base clock that ticks once every 4 machine cycles
// (262144 Hz). DIV increments every 16 base ticks, TIMA every N base ticks
// where N is selected by TAC bits 1-0:
//
//	00 -> 64 (4096 Hz)
//	01 -> 1  (262144 Hz)
//	10 -> 4  (65536 Hz)
//	11 -> 16 (16384 Hz)
const (
	baseClockCycles = 4
	divThreshold    = 16
)

var tacThresholds = [4]int{64, 1, 4, 16}

// Timer encapsulates the DIV/TIMA/TMA/TAC behavior at machine-cycle granularity.
type Timer struct {
	internalClock int // machine cycles not yet folded into a base tick
	divClock      int // base ticks since the last DIV increment
	baseClock     int // base ticks since the last TIMA increment

	div  byte
	tima byte
	tma  byte
	tac  byte

	// InterruptHandler is called when TIMA overflows.
	InterruptHandler func()
}

// Reset puts the timer back to its power-on state.
func (t *Timer) Reset() {
	handler := t.InterruptHandler
	*t = Timer{InterruptHandler: handler}
}

// Enabled reports whether TAC bit 2 is set.
func (t *Timer) Enabled() bool {
	return bit.IsSet(2, t.tac)
}

// Tick advances the timer by the given amount of machine cycles.
func (t *Timer) Tick(cycles int) {
	t.internalClock += cycles

	for t.internalClock >= baseClockCycles {
		t.internalClock -= baseClockCycles

		// DIV is always counting, regardless of TAC
		t.divClock++
		if t.divClock == divThreshold {
			t.divClock = 0
			t.div++
		}

		if !t.Enabled() {
			continue
		}

		t.baseClock++
		if t.baseClock >= tacThresholds[t.tac&0x03] {
			t.baseClock = 0
			t.incrementTIMA()
		}
	}
}

func (t *Timer) incrementTIMA() {
	if t.tima != 0xFF {
		t.tima++
		return
	}

	t.tima = t.tma
	if t.InterruptHandler != nil {
		t.InterruptHandler()
	}
}

func (t *Timer) Read(address uint16) byte {
	switch address {
	case addr.DIV:
		return t.div
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		// upper 5 bits are unused and read as 1
		return t.tac | 0xF8
	default:
		return 0
	}
}

func (t *Timer) Write(address uint16, value byte) {
	switch address {
	case addr.DIV:
		// any write resets the whole divider chain
		t.div = 0
		t.internalClock = 0
		t.divClock = 0
		t.baseClock = 0
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		if (value^t.tac)&0x03 != 0 {
			t.baseClock = 0
		}
		t.tac = value & 0x07
	}
}
