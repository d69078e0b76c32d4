package debug

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valerio/go-dmgcore/dmg/addr"
	"github.com/valerio/go-dmgcore/dmg/bit"
	"github.com/valerio/go-dmgcore/dmg/cpu"
	"github.com/valerio/go-dmgcore/dmg/video"
)

// WriteMachineState dumps the CPU with its stack, the code around PC, the
// sprites covering line and the tile maps in use.
func WriteMachineState(w io.Writer, c *cpu.CPU, p *video.PPU, mem MemoryReader, line int) error {
	bw := bufio.NewWriter(w)

	state := CaptureCPU(c, mem)
	fmt.Fprintf(bw, "# CPU (%s, IME=%t)\n%s\n", state.State, state.IME, state.String())

	bw.WriteString("\n# Code\n")
	for _, l := range DisassembleAround(mem, state.PC, 4, 4) {
		fmt.Fprintln(bw, l)
	}

	height := 8
	if bit.IsSet(2, mem.Read(addr.LCDC)) {
		height = 16
	}
	oam := ExtractOAMData(mem, line, height)
	fmt.Fprintf(bw, "\n# OAM\n%s\n", oam.FormatSummary())
	for _, s := range oam.GetVisibleSprites() {
		fmt.Fprintln(bw, s.String())
	}

	order := []string{"-"}
	if drawn := p.Sprites(line); len(drawn) > 0 {
		order = order[:0]
		for _, s := range drawn {
			order = append(order, strconv.Itoa(s.OAMIndex))
		}
	}
	fmt.Fprintf(bw, "Draw order: %s\n", strings.Join(order, " "))

	vram := ExtractVRAMData(mem)
	fmt.Fprintf(bw, "\n# VRAM\n%s\n", vram.TilemapInfo.FormatSummary())

	return bw.Flush()
}
