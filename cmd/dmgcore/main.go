package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"
	"github.com/valerio/go-dmgcore/dmg"
	"github.com/valerio/go-dmgcore/dmg/debug"
	"github.com/valerio/go-dmgcore/dmg/romfile"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "dmgcore"
	app.Description = "A machine-cycle DMG emulator core"
	app.Usage = "dmgcore [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file (.gb, .gz, .zip or .7z)",
		},
		cli.StringFlag{
			Name:  "boot",
			Usage: "Path to a 256 byte boot ROM; without it the machine starts at 0x0100",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a terminal interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.IntFlag{
			Name:  "snapshot-scale",
			Usage: "Scale factor of BMP snapshots",
			Value: 2,
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction (implies debug logging)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
			Value: "info",
		},
		cli.BoolFlag{
			Name:  "serial-log",
			Usage: "Log text sent over the serial port",
		},
	}
	app.Action = runEmulator
	return app
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func setupLogging(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	if c.Bool("trace") {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func romPath(c *cli.Context) (string, error) {
	if path := c.String("rom"); path != "" {
		return path, nil
	}
	if c.NArg() > 0 {
		return c.Args().Get(0), nil
	}
	cli.ShowAppHelp(c)
	return "", errors.New("no ROM path provided")
}

// romName strips the directory and every extension: roms/tetris.gb.gz is
// "tetris".
func romName(path string) string {
	name := filepath.Base(path)
	for ext := filepath.Ext(name); ext != "" && ext != name; ext = filepath.Ext(name) {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func runEmulator(c *cli.Context) error {
	if err := setupLogging(c); err != nil {
		return err
	}

	path, err := romPath(c)
	if err != nil {
		return err
	}
	rom, err := romfile.Load(path)
	if err != nil {
		return err
	}
	slog.Info("Loaded ROM", "path", path, "bytes", len(rom))

	var boot []byte
	if bootPath := c.String("boot"); bootPath != "" {
		if boot, err = romfile.Load(bootPath); err != nil {
			return err
		}
	}

	opts := []dmg.Option{dmg.WithLogger(slog.Default())}
	if c.Bool("serial-log") {
		opts = append(opts, dmg.WithSerialLog())
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}

		return runHeadless(boot, rom, opts, headlessConfig{
			name:             romName(path),
			frames:           frames,
			snapshotInterval: c.Int("snapshot-interval"),
			snapshotDir:      c.String("snapshot-dir"),
			snapshotScale:    c.Int("snapshot-scale"),
			trace:            c.Bool("trace"),
		})
	}

	term, err := NewTerminal()
	if err != nil {
		return err
	}
	opts = append(opts, dmg.WithSink(term), dmg.WithInput(term))

	emu, err := dmg.New(boot, rom, opts...)
	if err != nil {
		term.Close()
		return err
	}
	if c.Bool("trace") {
		enableTrace(emu)
	}
	return term.Run(emu)
}

// enableTrace logs every instruction with its disassembly at debug level.
func enableTrace(emu *dmg.Emulator) {
	emu.CPU().SetTracer(func(pc uint16, opcode uint16) {
		line := debug.DisassembleAt(emu.MMU(), pc)
		slog.Debug("exec", "pc", fmt.Sprintf("0x%04X", pc), "op", fmt.Sprintf("0x%02X", opcode), "instr", line.Instruction)
	})
}
