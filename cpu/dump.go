package cpu

import (
	"fmt"
	"os"
	"strings"
)

// DumpRegisters renders A, X, Y, S, PC and the status byte in a single line,
// the form the run command prints once a program halts.
func (c *Cpu) DumpRegisters() string {
	return fmt.Sprintf(
		"A:%02X X:%02X Y:%02X S:%02X PC:%04X P:%02X",
		c.A, c.X, c.Y, c.S, c.PC, c.Flags.Byte(false),
	)
}

// DumpMemory renders the inclusive byte range [lo, hi] as 16 bytes per line,
// each line prefixed with its starting address; zero bytes print as ".." so
// sparsely populated pages stay readable. The loop counters are widened
// beyond uint16 so a full 0x0000-0xFFFF dump (hi == 0xFFFF) terminates
// instead of wrapping back past lo forever.
func (c *Cpu) DumpMemory(lo, hi uint16) string {
	var b strings.Builder
	for addr := uint32(lo); addr <= uint32(hi); addr += 16 {
		fmt.Fprintf(&b, "0x%04X  ", addr)
		for i := uint32(0); i < 16 && addr+i <= uint32(hi); i++ {
			v := c.Read(uint16(addr + i))
			if v == 0 {
				b.WriteString(".. ")
			} else {
				fmt.Fprintf(&b, "%02X ", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DumpMemoryToFile writes DumpMemory(lo, hi) to path, truncating any
// existing file. Used by the integration-test harness to produce one .memdump
// file per test program in its output directory.
func (c *Cpu) DumpMemoryToFile(lo, hi uint16, path string) error {
	return os.WriteFile(path, []byte(c.DumpMemory(lo, hi)), 0644)
}
