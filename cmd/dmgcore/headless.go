package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/valerio/go-dmgcore/dmg"
	"github.com/valerio/go-dmgcore/dmg/debug"
	"github.com/valerio/go-dmgcore/dmg/video"
)

type headlessConfig struct {
	name             string
	frames           int
	snapshotInterval int
	snapshotDir      string
	snapshotScale    int
	trace            bool
}

// runHeadless runs a fixed number of frames into a frame buffer, logging a
// digest of every frame and saving snapshots at the configured interval.
func runHeadless(boot, rom []byte, opts []dmg.Option, cfg headlessConfig) error {
	fb := video.NewFrameBuffer()
	emu, err := dmg.New(boot, rom, append(opts, dmg.WithSink(fb))...)
	if err != nil {
		return err
	}
	if cfg.trace {
		enableTrace(emu)
	}

	if cfg.snapshotInterval > 0 {
		dir, err := prepareSnapshotDir(cfg.snapshotDir)
		if err != nil {
			return err
		}
		cfg.snapshotDir = dir
	}

	slog.Info("Running headless mode", "frames", cfg.frames, "snapshot_interval", cfg.snapshotInterval, "snapshot_dir", cfg.snapshotDir)

	for i := 1; i <= cfg.frames; i++ {
		emu.RunUntilFrame()
		slog.Debug("Frame", "frame", i, "hash", fmt.Sprintf("%016x", fb.Hash()))

		if cfg.snapshotInterval > 0 && i%cfg.snapshotInterval == 0 {
			if err := saveSnapshot(emu, fb, cfg, i); err != nil {
				slog.Error("Failed to save snapshot", "frame", i, "error", err)
			}
		}

		if i%60 == 0 {
			slog.Info("Frame progress", "completed", i, "total", cfg.frames)
		}
	}

	state := debug.CaptureCPU(emu.CPU(), emu.MMU())
	slog.Info("Headless execution completed",
		"frames", cfg.frames,
		"hash", fmt.Sprintf("%016x", fb.Hash()),
		"cpu", state.Line())
	return nil
}

func prepareSnapshotDir(dir string) (string, error) {
	if dir == "" {
		tempDir, err := os.MkdirTemp("", "dmgcore-snapshots-*")
		if err != nil {
			return "", fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		return tempDir, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return dir, nil
}

// saveSnapshot writes the frame as <name>_frame_<n>.bmp, the VRAM tiles as
// <name>_frame_<n>_tiles.bmp and a text rendering followed by the machine
// state as <name>_frame_<n>.txt.
func saveSnapshot(emu *dmg.Emulator, fb *video.FrameBuffer, cfg headlessConfig, frame int) error {
	base := filepath.Join(cfg.snapshotDir, fmt.Sprintf("%s_frame_%d", cfg.name, frame))

	if err := debug.SaveFrameBMP(fb, base+".bmp", cfg.snapshotScale); err != nil {
		return err
	}
	if err := debug.SaveTileSheetBMP(emu.MMU(), base+"_tiles.bmp", cfg.snapshotScale); err != nil {
		return err
	}

	file, err := os.Create(base + ".txt")
	if err != nil {
		return err
	}
	if err := writeSnapshotText(file, emu, fb); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	slog.Info("Saved frame snapshot", "frame", frame, "path", base+".bmp")
	return nil
}

func writeSnapshotText(w io.Writer, emu *dmg.Emulator, fb *video.FrameBuffer) error {
	if err := debug.WriteFrameText(w, fb, emu.PPU().Frame(), emu.CPU().Instructions()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	// snapshots are taken at VBlank, so sprites are listed for the top line
	// of the next frame
	return debug.WriteMachineState(w, emu.CPU(), emu.PPU(), emu.MMU(), 0)
}
