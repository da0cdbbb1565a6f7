package cpu

// An AddressingMode tells the Cpu where to find the operand for a given
// instruction. There are 13 possible modes; most can index the full 64 KiB
// range of memory, the exception being ZeroPage and its indexed variants,
// which are confined to the first 256 bytes.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand
	Accumulator                       // operand is register A

	Immediate // operand is the byte immediately after the opcode
	Relative  // signed 8-bit displacement, used by branches

	ZeroPage  // 0x0000-0x00ff
	ZeroPageX // (operand + X) mod 256
	ZeroPageY // (operand + Y) mod 256, used only by LDX/STX

	Absolute  // 16-bit little-endian operand
	AbsoluteX // absolute + X, wraps mod 2^16
	AbsoluteY // absolute + Y, wraps mod 2^16

	Indirect  // JMP only; reproduces the page-boundary hardware bug
	IndirectX // zero-page pointer table, indexed before the read
	IndirectY // zero-page pointer table, indexed after the read
)

// operandLength reports how many bytes, beyond the opcode itself, each mode
// consumes.
func operandLength(mode AddressingMode) uint16 {
	switch mode {
	case Implied, Accumulator:
		return 0
	case Immediate, Relative, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

// resolve computes the effective address (or immediate operand address) for
// mode, reading any operand bytes at the current PC (which already points
// past the opcode byte). It populates c.AbsAddress for every mode except
// Implied and Accumulator, and c.M for every mode except Implied, Relative and Indirect
// (store instructions included), and returns the operand length so Step can
// advance PC once the instruction has run.
func (c *Cpu) resolve(mode AddressingMode) uint16 {
	switch mode {
	case Implied:
		return 0

	case Accumulator:
		c.M = c.A
		return 0

	case Immediate:
		c.AbsAddress = c.PC
		c.M = c.Read(c.AbsAddress)
		return 1

	case Relative:
		// The branch target is relative to the address of the byte
		// following the 2-byte branch instruction (opcode + operand),
		// which is PC+1 from here since PC currently points at the
		// operand byte itself.
		offset := int8(c.Read(c.PC))
		c.AbsAddress = c.PC + 1 + uint16(offset)
		return 1

	case ZeroPage:
		c.AbsAddress = uint16(c.Read(c.PC))
		c.M = c.Read(c.AbsAddress)
		return 1

	case ZeroPageX:
		c.AbsAddress = uint16(c.Read(c.PC)+c.X) & 0x00FF
		c.M = c.Read(c.AbsAddress)
		return 1

	case ZeroPageY:
		c.AbsAddress = uint16(c.Read(c.PC)+c.Y) & 0x00FF
		c.M = c.Read(c.AbsAddress)
		return 1

	case Absolute:
		c.AbsAddress = c.Bus.Read16(c.PC)
		c.M = c.Read(c.AbsAddress)
		return 2

	case AbsoluteX:
		c.AbsAddress = c.Bus.Read16(c.PC) + uint16(c.X)
		c.M = c.Read(c.AbsAddress)
		return 2

	case AbsoluteY:
		c.AbsAddress = c.Bus.Read16(c.PC) + uint16(c.Y)
		c.M = c.Read(c.AbsAddress)
		return 2

	case Indirect:
		ptr := c.Bus.Read16(c.PC)
		lo := c.Read(ptr)
		// http://www.6502.org/tutorials/6502opcodes.html#JMP
		// If the pointer's low byte is 0xff, the high byte wraps back
		// to the start of the same page instead of crossing into the
		// next one. This is a real hardware bug, reproduced here.
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.Read(hiAddr)
		c.AbsAddress = uint16(lo) | uint16(hi)<<8
		return 2

	case IndirectX:
		zp := uint16(c.Read(c.PC)+c.X) & 0x00FF
		lo := c.Read(zp)
		hi := c.Read((zp + 1) & 0x00FF)
		c.AbsAddress = uint16(lo) | uint16(hi)<<8
		c.M = c.Read(c.AbsAddress)
		return 1

	case IndirectY:
		zp := uint16(c.Read(c.PC))
		lo := c.Read(zp)
		hi := c.Read((zp + 1) & 0x00FF)
		base := uint16(lo) | uint16(hi)<<8
		c.AbsAddress = base + uint16(c.Y)
		c.M = c.Read(c.AbsAddress)
		return 1
	}

	return 0
}

// readOperand returns the value an instruction should act on: register A in
// Accumulator mode, or the resolved c.M for every other mode. Instructions
// never case-analyze the mode themselves.
func (c *Cpu) readOperand(mode AddressingMode) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.M
}

// writeOperand stores v back to wherever mode says the operand lives:
// register A in Accumulator mode, or memory at the resolved AbsAddress
// otherwise.
func (c *Cpu) writeOperand(mode AddressingMode, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.Write(c.AbsAddress, v)
	c.M = v
}
