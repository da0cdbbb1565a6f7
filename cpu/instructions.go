package cpu

// Each instruction function receives the Cpu and the AddressingMode the
// opcode table resolved for it. Instructions read their operand through
// c.readOperand(mode) and write it back through c.writeOperand(mode, v); they
// never branch on mode directly, and never touch c.PC except via c.jump,
// which also marks pcWritten so Step skips its generic advance.

// setZN sets the Zero and Negative flags from v, the pattern almost every
// instruction that loads or computes a result follows.
func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// push decrements S and writes v to the stack page at the new S.
func (c *Cpu) push(v byte) {
	c.S--
	c.Write(0x0100|uint16(c.S), v)
}

// pull reads the byte S points at on the stack page, then increments S.
func (c *Cpu) pull() byte {
	v := c.Read(0x0100 | uint16(c.S))
	c.S++
	return v
}

func (c *Cpu) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return lo | hi<<8
}

func adc(c *Cpu, mode AddressingMode) {
	m := c.readOperand(mode)
	a := c.A
	var carry uint16
	if c.Flags.Carry {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + carry
	c.Flags.Carry = sum > 0xFF
	result := byte(sum)
	// Overflow: the two operands share a sign, but the result's sign differs.
	c.Flags.Overflow = (a^m)&0x80 == 0 && (a^result)&0x80 != 0
	c.A = result
	c.setZN(c.A)
}

func and(c *Cpu, mode AddressingMode) {
	c.A &= c.readOperand(mode)
	c.setZN(c.A)
}

func asl(c *Cpu, mode AddressingMode) {
	v := c.readOperand(mode)
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	c.writeOperand(mode, v)
	c.setZN(v)
}

func branchIf(c *Cpu, cond bool) {
	if cond {
		c.jump(c.AbsAddress)
	}
}

func bcc(c *Cpu, mode AddressingMode) { branchIf(c, !c.Flags.Carry) }
func bcs(c *Cpu, mode AddressingMode) { branchIf(c, c.Flags.Carry) }
func beq(c *Cpu, mode AddressingMode) { branchIf(c, c.Flags.Zero) }
func bmi(c *Cpu, mode AddressingMode) { branchIf(c, c.Flags.Negative) }
func bne(c *Cpu, mode AddressingMode) { branchIf(c, !c.Flags.Zero) }
func bpl(c *Cpu, mode AddressingMode) { branchIf(c, !c.Flags.Negative) }
func bvc(c *Cpu, mode AddressingMode) { branchIf(c, !c.Flags.Overflow) }
func bvs(c *Cpu, mode AddressingMode) { branchIf(c, c.Flags.Overflow) }

func bit(c *Cpu, mode AddressingMode) {
	m := c.readOperand(mode)
	c.Flags.Zero = c.A&m == 0
	c.Flags.Overflow = m&flagOverflow != 0
	c.Flags.Negative = m&flagNegative != 0
}

// brk pushes PC+1 and the status byte with B set, and disables further
// interrupts, matching the state a real interrupt push would leave. The run
// loop (not this function) is what actually halts on a BRK opcode byte; a
// future host wiring a real interrupt vector can call this unmodified.
func brk(c *Cpu, mode AddressingMode) {
	c.push16(c.PC + 1)
	c.push(c.Flags.Byte(true))
	c.Flags.DisableInterrupt = true
}

func clc(c *Cpu, mode AddressingMode) { c.Flags.Carry = false }
func cld(c *Cpu, mode AddressingMode) { c.Flags.Decimal = false }
func cli(c *Cpu, mode AddressingMode) { c.Flags.DisableInterrupt = false }
func clv(c *Cpu, mode AddressingMode) { c.Flags.Overflow = false }

func compare(c *Cpu, reg byte, m byte) {
	c.Flags.Carry = reg >= m
	c.setZN(reg - m)
}

func cmp(c *Cpu, mode AddressingMode) { compare(c, c.A, c.readOperand(mode)) }
func cpx(c *Cpu, mode AddressingMode) { compare(c, c.X, c.readOperand(mode)) }
func cpy(c *Cpu, mode AddressingMode) { compare(c, c.Y, c.readOperand(mode)) }

func dec(c *Cpu, mode AddressingMode) {
	v := c.readOperand(mode) - 1
	c.writeOperand(mode, v)
	c.setZN(v)
}

func dex(c *Cpu, mode AddressingMode) { c.X--; c.setZN(c.X) }
func dey(c *Cpu, mode AddressingMode) { c.Y--; c.setZN(c.Y) }

func eor(c *Cpu, mode AddressingMode) {
	c.A ^= c.readOperand(mode)
	c.setZN(c.A)
}

func inc(c *Cpu, mode AddressingMode) {
	v := c.readOperand(mode) + 1
	c.writeOperand(mode, v)
	c.setZN(v)
}

func inx(c *Cpu, mode AddressingMode) { c.X++; c.setZN(c.X) }
func iny(c *Cpu, mode AddressingMode) { c.Y++; c.setZN(c.Y) }

func jmp(c *Cpu, mode AddressingMode) { c.jump(c.AbsAddress) }

// jsr pushes the address of the last byte of the JSR instruction (PC+1, since
// PC still points at the first of the 2 operand bytes), not the address of
// the next instruction; rts adds the 1 back.
func jsr(c *Cpu, mode AddressingMode) {
	c.push16(c.PC + 1)
	c.jump(c.AbsAddress)
}

func lda(c *Cpu, mode AddressingMode) { c.A = c.readOperand(mode); c.setZN(c.A) }
func ldx(c *Cpu, mode AddressingMode) { c.X = c.readOperand(mode); c.setZN(c.X) }
func ldy(c *Cpu, mode AddressingMode) { c.Y = c.readOperand(mode); c.setZN(c.Y) }

// lsr always clears Negative: the bit shifted into bit 7 is 0, never set.
func lsr(c *Cpu, mode AddressingMode) {
	v := c.readOperand(mode)
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	c.writeOperand(mode, v)
	c.Flags.Zero = v == 0
	c.Flags.Negative = false
}

func nop(c *Cpu, mode AddressingMode) {}

func ora(c *Cpu, mode AddressingMode) {
	c.A |= c.readOperand(mode)
	c.setZN(c.A)
}

func pha(c *Cpu, mode AddressingMode) { c.push(c.A) }
func php(c *Cpu, mode AddressingMode) { c.push(c.Flags.Byte(true)) }

func pla(c *Cpu, mode AddressingMode) {
	c.A = c.pull()
	c.setZN(c.A)
}

func plp(c *Cpu, mode AddressingMode) { c.Flags.SetByte(c.pull()) }

func rol(c *Cpu, mode AddressingMode) {
	v := c.readOperand(mode)
	carryIn := byte(0)
	if c.Flags.Carry {
		carryIn = 1
	}
	c.Flags.Carry = v&0x80 != 0
	v = (v << 1) | carryIn
	c.writeOperand(mode, v)
	c.setZN(v)
}

func ror(c *Cpu, mode AddressingMode) {
	v := c.readOperand(mode)
	carryIn := byte(0)
	if c.Flags.Carry {
		carryIn = 0x80
	}
	c.Flags.Carry = v&0x01 != 0
	v = (v >> 1) | carryIn
	c.writeOperand(mode, v)
	c.setZN(v)
}

// rti pops the status byte, then the PC, with no +1 adjustment: unlike JSR,
// the pushed PC during a real interrupt is already the address to resume at.
func rti(c *Cpu, mode AddressingMode) {
	c.Flags.SetByte(c.pull())
	c.jump(c.pull16())
}

// rts pops PC and adds 1, undoing JSR's PC-1 push.
func rts(c *Cpu, mode AddressingMode) {
	c.jump(c.pull16() + 1)
}

func sbc(c *Cpu, mode AddressingMode) {
	m := c.readOperand(mode)
	a := c.A
	var borrow uint16
	if !c.Flags.Carry {
		borrow = 1
	}
	diff := uint16(a) - uint16(m) - borrow
	c.Flags.Carry = uint16(a) >= uint16(m)+borrow
	result := byte(diff)
	// Overflow: the operands differ in sign and the result's sign doesn't
	// match the accumulator's.
	c.Flags.Overflow = (a^m)&0x80 != 0 && (a^result)&0x80 != 0
	c.A = result
	c.setZN(c.A)
}

func sec(c *Cpu, mode AddressingMode) { c.Flags.Carry = true }
func sed(c *Cpu, mode AddressingMode) { c.Flags.Decimal = true }
func sei(c *Cpu, mode AddressingMode) { c.Flags.DisableInterrupt = true }

func sta(c *Cpu, mode AddressingMode) { c.writeOperand(mode, c.A) }
func stx(c *Cpu, mode AddressingMode) { c.writeOperand(mode, c.X) }
func sty(c *Cpu, mode AddressingMode) { c.writeOperand(mode, c.Y) }

func tax(c *Cpu, mode AddressingMode) { c.X = c.A; c.setZN(c.X) }
func tay(c *Cpu, mode AddressingMode) { c.Y = c.A; c.setZN(c.Y) }
func tsx(c *Cpu, mode AddressingMode) { c.X = c.S; c.setZN(c.X) }
func txa(c *Cpu, mode AddressingMode) { c.A = c.X; c.setZN(c.A) }
func txs(c *Cpu, mode AddressingMode) { c.S = c.X }
func tya(c *Cpu, mode AddressingMode) { c.A = c.Y; c.setZN(c.A) }
