package cpu

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// hexProgram turns a space-separated hex dump, the form test ROMs are
// written in throughout this package, into raw bytes.
func hexProgram(t *testing.T, s string) []byte {
	t.Helper()
	fields := strings.Fields(s)
	out := make([]byte, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			t.Fatalf("hexProgram: %v", err)
		}
		out[i] = byte(v)
	}
	return out
}

func TestNewCpuLoadsProgramAndSeedsPCFromResetVector(t *testing.T) {
	c := NewCpu(hexProgram(t, "A2 0A 8E 00 00"))
	assert.Equal(t, byte(0xA2), c.Read(0x8000))
	assert.Equal(t, byte(0x0A), c.Read(0x8001))
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, "LDX", Opcodes[c.Read(c.PC)].Name)
}

func TestResetIsIdempotent(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 42"))
	c.A, c.X, c.Y = 1, 2, 3
	c.Flags.Carry = true
	c.Reset()
	first := *c
	c.Reset()
	assert.Equal(t, first.A, c.A)
	assert.Equal(t, first.X, c.X)
	assert.Equal(t, first.Y, c.Y)
	assert.Equal(t, first.S, c.S)
	assert.Equal(t, first.PC, c.PC)
	assert.Equal(t, first.Flags, c.Flags)
	assert.Equal(t, byte(0xFF), c.S)
	assert.Equal(t, Flags{}, c.Flags)
}

func TestStepAdvancesPCByOperandLength(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 42 8D 00 02"))
	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.Equal(t, byte(0x42), c.A)

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8005), c.PC)
	assert.Equal(t, byte(0x42), c.Read(0x0200))
}

func TestUnknownOpcodeAdvancesPCByOneAndReturnsError(t *testing.T) {
	c := NewCpu([]byte{0xFF})
	err := c.Step()
	var unkErr *UnknownOpcodeError
	assert.ErrorAs(t, err, &unkErr)
	assert.Equal(t, byte(0xFF), unkErr.Opcode)
	assert.Equal(t, uint16(0x8001), c.PC)
}

func TestLDASetsZeroAndNegativeFlags(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 00 A9 80 A9 01"))
	c.Step()
	assert.True(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)

	c.Step()
	assert.False(t, c.Flags.Zero)
	assert.True(t, c.Flags.Negative)

	c.Step()
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	// 0x7F + 0x01 overflows into negative territory: signed overflow, no carry.
	c := NewCpu(hexProgram(t, "A9 7F 69 01"))
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Negative)
}

func TestSBCBorrows(t *testing.T) {
	// carry clear on entry means an extra 1 is borrowed: 0x00 - 0x01 - 1 = 0xFE.
	c := NewCpu(hexProgram(t, "A9 00 E9 01"))
	c.Step()
	c.Step()
	assert.Equal(t, byte(0xFE), c.A)
	assert.False(t, c.Flags.Carry)
}

func TestASLShiftsByExactlyOneBit(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 40 0A"))
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x80), c.A)
	assert.False(t, c.Flags.Carry)
}

func TestLSRAlwaysClearsNegative(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 01 4A"))
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.Negative)
	assert.True(t, c.Flags.Zero)
}

func TestPHAPLARoundTrip(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 55 48 A9 00 68"))
	startS := c.S
	c.Step() // LDA #$55
	c.Step() // PHA
	assert.Equal(t, startS-1, c.S)
	c.Step() // LDA #$00
	c.Step() // PLA
	assert.Equal(t, startS, c.S)
	assert.Equal(t, byte(0x55), c.A)
}

func TestJSRPushesPCMinusOneAndRTSRestoresNextInstruction(t *testing.T) {
	// JSR $8005; at $8005: LDA #$01; at $8003 (after RTS): LDX #$02
	program := hexProgram(t, "20 05 80 A2 02 A9 01 60")
	c := NewCpu(program)
	assert.NoError(t, c.Step()) // JSR $8005
	assert.Equal(t, uint16(0x8005), c.PC)

	assert.NoError(t, c.Step()) // LDA #$01 at subroutine
	assert.Equal(t, byte(0x01), c.A)

	assert.NoError(t, c.Step()) // RTS
	assert.Equal(t, uint16(0x8003), c.PC)

	assert.NoError(t, c.Step()) // LDX #$02
	assert.Equal(t, byte(0x02), c.X)
}

func TestIndirectJMPReproducesPageBoundaryBug(t *testing.T) {
	c := NewCpu(hexProgram(t, "6C FF 02"))
	c.Write(0x02FF, 0x00)
	c.Write(0x0200, 0x04) // wraps to start of page instead of 0x0300
	c.Write(0x0300, 0xFF) // would be picked up only without the bug
	c.Step()
	assert.Equal(t, uint16(0x0400), c.PC)
}

func TestBranchTakenSkipsInstruction(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 01 D0 02 A9 00"))
	c.Step() // LDA #$01, Zero clear
	c.Step() // BNE +2, taken since Zero is clear
	assert.Equal(t, byte(0x01), c.A)
}

func TestBRKHaltsRun(t *testing.T) {
	c := NewCpu(hexProgram(t, "A9 01 00 A9 02"))
	c.Run()
	assert.Equal(t, byte(0x01), c.A)
}

func TestMultiplyByRepeatedAddition(t *testing.T) {
	// Multiplies 10 by 3 via repeated addition, leaving A=30, X=3, Y=0 and
	// the three operands in zero page, then spins on three NOPs and a BRK.
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"
	c := NewCpu(hexProgram(t, program))

	assert.Equal(t, "LDX", Opcodes[c.Read(c.PC)].Name)

	for _, want := range []struct {
		M, A, X, Y byte
		InstName   string
	}{
		{M: 0xa, A: 0, X: 0xa, Y: 0, InstName: "STX"},
		{M: 0xa, A: 0, X: 0xa, Y: 0, InstName: "LDX"},
		{M: 3, A: 0, X: 3, Y: 0, InstName: "STX"},
		{M: 3, A: 0, X: 3, Y: 0, InstName: "LDY"},
		{M: 0xa, A: 0, X: 3, Y: 0xa, InstName: "LDA"},
		{M: 0, A: 0, X: 3, Y: 0xa, InstName: "CLC"},
		{M: 0, A: 0, X: 3, Y: 0xa, InstName: "ADC"},
	} {
		err := c.Step()
		assert.NoError(t, err)
		currInst := Opcodes[c.Read(c.PC)].Name
		assert.Equal(t, want.M, c.M, "incorrect M before %s", currInst)
		assert.Equal(t, want.A, c.A, "incorrect A before %s", currInst)
		assert.Equal(t, want.X, c.X, "incorrect X before %s", currInst)
		assert.Equal(t, want.Y, c.Y, "incorrect Y before %s", currInst)
	}

	c.Run()
	assert.Equal(t, byte(30), c.A)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(10), c.Read(0))
	assert.Equal(t, byte(3), c.Read(1))
	assert.Equal(t, byte(30), c.Read(2))
}
