// Package serial holds serial port devices that plug into the SB/SC registers.
package serial

import (
	"log/slog"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
)

// transferCycles is how long a byte takes on the internal clock (8192 Hz bit
// clock), in machine cycles.
const transferCycles = 1024

const (
	scStart         = 7
	scInternalClock = 0
)

// LogSink is a serial device with no peer that logs outgoing bytes as text.
// Handy for test ROMs that report their results over serial.
type LogSink struct {
	data    byte
	control byte

	// remaining cycles of the transfer in flight, 0 when idle
	pending int
	timed   bool
	idleRX  byte

	irq   func()
	lines lineLogger
	sent  []byte
}

type LogSinkOption func(*LogSink)

// WithFixedTiming completes transfers after the hardware transfer time
// instead of immediately.
func WithFixedTiming() LogSinkOption { return func(s *LogSink) { s.timed = true } }

// WithLogger sets the logger lines are written to.
func WithLogger(logger *slog.Logger) LogSinkOption {
	return func(s *LogSink) { s.lines.logger = logger }
}

// NewLogSink creates a new logging serial device.
// irq is called when a transfer completes and should request the serial interrupt.
func NewLogSink(irq func(), opts ...LogSinkOption) *LogSink {
	s := &LogSink{
		irq:    irq,
		idleRX: 0xFF,
		lines:  lineLogger{logger: slog.Default()},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

func (s *LogSink) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		s.data = value
	case addr.SC:
		s.control = value
		if s.pending == 0 && bit.IsSet(scStart, value) && bit.IsSet(scInternalClock, value) {
			s.send()
		}
	}
}

func (s *LogSink) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return s.data
	case addr.SC:
		// bits 6-1 are unused
		return s.control | 0x7E
	}
	return 0
}

// Tick advances a pending transfer by the given machine cycles.
func (s *LogSink) Tick(cycles int) {
	if s.pending == 0 {
		return
	}
	s.pending -= cycles
	if s.pending <= 0 {
		s.finish()
	}
}

func (s *LogSink) Reset() {
	s.data, s.control = 0, 0
	s.pending = 0
	s.lines.buf = s.lines.buf[:0]
	s.sent = s.sent[:0]
}

// Output returns every byte sent so far.
func (s *LogSink) Output() string {
	return string(s.sent)
}

func (s *LogSink) send() {
	s.sent = append(s.sent, s.data)
	s.lines.put(s.data)

	if !s.timed {
		s.finish()
		return
	}
	s.pending = transferCycles
}

func (s *LogSink) finish() {
	s.pending = 0
	s.data = s.idleRX
	s.control = bit.Reset(scStart, s.control)
	if s.irq != nil {
		s.irq()
	}
}

// lineLogger collects text until a line terminator and logs whole lines.
type lineLogger struct {
	logger *slog.Logger
	buf    []byte
}

func (l *lineLogger) put(b byte) {
	switch b {
	case 0, '\n', '\r':
		if len(l.buf) > 0 {
			l.logger.Info("serial", "line", string(l.buf))
			l.buf = l.buf[:0]
		}
	default:
		l.buf = append(l.buf, b)
	}
}
