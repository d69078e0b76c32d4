package dmg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valerio/go-dmgcore/dmg/romfile"
	"github.com/valerio/go-dmgcore/dmg/serial"
)

// blarggMaxFrames bounds each cpu_instrs run (about 50 seconds of emulated time).
const blarggMaxFrames = 3000

// testROMDir is where the cpu_instrs individual ROMs are looked up,
// DMGCORE_TEST_ROMS overrides it.
func testROMDir() string {
	if dir := os.Getenv("DMGCORE_TEST_ROMS"); dir != "" {
		return dir
	}
	return filepath.Join("..", "test-roms", "blargg", "cpu_instrs", "individual")
}

func TestBlarggCPUInstrs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ROM tests in short mode")
	}

	names := []string{
		"01-special",
		"02-interrupts",
		"03-op sp,hl",
		"04-op r,imm",
		"05-op rp",
		"06-ld r,r",
		"07-jr,jp,call,ret,rst",
		"08-misc instrs",
		"09-op r,r",
		"10-bit ops",
		"11-op a,(hl)",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(testROMDir(), name+".gb")
			rom, err := romfile.Load(path)
			if errors.Is(err, os.ErrNotExist) {
				t.Skipf("ROM file not found: %s", path)
			}
			require.NoError(t, err)

			e, err := New(nil, rom, WithLogger(quietLogger), WithSerialLog())
			require.NoError(t, err)
			sink := e.Serial().(*serial.LogSink)

			for rangeIdx := 0; rangeIdx < blarggMaxFrames; rangeIdx++ {
				e.RunUntilFrame()

				out := sink.Output()
				if strings.Contains(out, "Passed") {
					return
				}
				if strings.Contains(out, "Failed") {
					t.Fatalf("test ROM reported failure:\n%s", out)
				}
			}
			t.Fatalf("no result after %d frames, serial output:\n%s", blarggMaxFrames, sink.Output())
		})
	}
}
