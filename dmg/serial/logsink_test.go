package serial

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-dmgcore/dmg/addr"
)

func TestLogSinkImmediateTransfer(t *testing.T) {
	irqs := 0
	s := NewLogSink(func() { irqs++ })

	for _, b := range []byte("ok\n") {
		s.Write(addr.SB, b)
		s.Write(addr.SC, 0x81)
	}

	assert.Equal(t, 3, irqs)
	assert.Equal(t, "ok\n", s.Output())
	assert.Equal(t, byte(0xFF), s.Read(addr.SB))
	assert.False(t, s.Read(addr.SC)&0x80 != 0, "start bit should be cleared")
}

func TestLogSinkExternalClockDoesNotStart(t *testing.T) {
	irqs := 0
	s := NewLogSink(func() { irqs++ })

	s.Write(addr.SB, 'x')
	s.Write(addr.SC, 0x80)

	assert.Equal(t, 0, irqs)
	assert.Empty(t, s.Output())
}

func TestLogSinkFixedTiming(t *testing.T) {
	irqs := 0
	s := NewLogSink(func() { irqs++ }, WithFixedTiming())

	s.Write(addr.SB, 'a')
	s.Write(addr.SC, 0x81)

	s.Tick(transferCycles - 1)
	assert.Equal(t, 0, irqs)
	assert.Equal(t, byte('a'), s.Read(addr.SB))

	s.Tick(1)
	assert.Equal(t, 1, irqs)
	assert.Equal(t, byte(0xFF), s.Read(addr.SB))
}

func TestLogSinkLogsWholeLines(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	s := NewLogSink(nil, WithLogger(logger))

	for _, b := range []byte("Passed\r\n\nnext") {
		s.Write(addr.SB, b)
		s.Write(addr.SC, 0x81)
	}

	assert.Equal(t, 1, strings.Count(logs.String(), "line="))
	assert.Contains(t, logs.String(), "line=Passed")
	assert.NotContains(t, logs.String(), "next")

	s.Reset()
	assert.Empty(t, s.Output())
	assert.Equal(t, byte(0x7E), s.Read(addr.SC))
}
