package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-dmgcore/dmg"
	"github.com/valerio/go-dmgcore/dmg/debug"
	"github.com/valerio/go-dmgcore/dmg/memory"
	"github.com/valerio/go-dmgcore/dmg/timing"
	"github.com/valerio/go-dmgcore/dmg/video"
)

// terminals report key presses only, so a key counts as held for a while
// after its last repeat
const keyHoldTime = 150 * time.Millisecond

var keyBindings = map[tcell.Key]memory.JoypadKey{
	tcell.KeyEnter: memory.JoypadStart,
	tcell.KeyRight: memory.JoypadRight,
	tcell.KeyLeft:  memory.JoypadLeft,
	tcell.KeyUp:    memory.JoypadUp,
	tcell.KeyDown:  memory.JoypadDown,
}

var runeBindings = map[rune]memory.JoypadKey{
	'a': memory.JoypadA,
	's': memory.JoypadB,
	'q': memory.JoypadSelect,
}

// Terminal draws scanlines on a tcell screen and maps key presses to the
// joypad. It is both the video sink and the input provider of the machine.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style

	mu      sync.Mutex
	pressed [8]time.Time
	now     func() time.Time

	quit chan struct{}
	once sync.Once
}

// NewTerminal initializes the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return newTerminalWithScreen(screen)
}

func newTerminalWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	screen.SetStyle(style)
	screen.Clear()

	return &Terminal{
		screen: screen,
		style:  style,
		now:    time.Now,
		quit:   make(chan struct{}),
	}, nil
}

// DrawScanline implements video.ScanlineSink.
func (t *Terminal) DrawScanline(line int, pixels *[video.ScreenWidth]uint8) {
	for x, shade := range pixels {
		t.screen.SetContent(x, line, debug.ShadeChar(shade), nil, t.style)
	}
}

// FrameDone implements video.FrameSink.
func (t *Terminal) FrameDone() {
	t.screen.Show()
}

// Buttons implements memory.InputProvider.
func (t *Terminal) Buttons() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := memory.NoInput
	now := t.now()
	for key, at := range t.pressed {
		if !at.IsZero() && now.Sub(at) < keyHoldTime {
			state = state.Press(memory.JoypadKey(key))
		}
	}
	return state.Buttons()
}

func (t *Terminal) press(key memory.JoypadKey) {
	t.mu.Lock()
	t.pressed[key] = t.now()
	t.mu.Unlock()
}

// handleEvent applies one terminal event and reports whether the user asked
// to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if key, ok := runeBindings[ev.Rune()]; ok {
				t.press(key)
			}
		default:
			if key, ok := keyBindings[ev.Key()]; ok {
				t.press(key)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) handleInput() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		if t.handleEvent(ev) {
			t.stop()
			return
		}
	}
}

func (t *Terminal) stop() {
	t.once.Do(func() { close(t.quit) })
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.stop()
	t.screen.Fini()
}

// Run emulates one frame per display refresh until the user quits.
func (t *Terminal) Run(emu *dmg.Emulator) error {
	defer func() {
		slog.Info("Finishing terminal")
		t.Close()
	}()

	go t.handleInput()

	limiter := timing.NewLimiter()
	defer limiter.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case <-limiter.C():
			emu.RunUntilFrame()
		case <-t.quit:
			return nil
		case <-signals:
			slog.Info("Received signal to stop")
			return nil
		}
	}
}
