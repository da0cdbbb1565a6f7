package cpu

// An Opcode associates a byte value (0x00-0xff) with the AddressingMode its
// operand uses and the Instruction implementation to dispatch to. Multiple
// opcodes may share an Instruction, differing only in addressing mode; the
// Cpu resolves the mode before calling the Instruction, so the Instruction
// itself never inspects the raw opcode byte.
type Opcode struct {
	Mode        AddressingMode
	Instruction func(c *Cpu, mode AddressingMode)
	Name        string // for the disassembler and debugger
}

// Opcodes lists all 151 byte values the Cpu recognizes, mapped to 56 unique
// instructions. Byte values with no entry here are undefined opcodes; Step
// logs and skips them.
//
// http://www.6502.org/tutorials/6502opcodes.html
// https://www.nesdev.org/obelisk-6502-guide/reference.html
var Opcodes = map[byte]Opcode{
	0x69: {Instruction: adc, Name: "ADC", Mode: Immediate},
	0x65: {Instruction: adc, Name: "ADC", Mode: ZeroPage},
	0x75: {Instruction: adc, Name: "ADC", Mode: ZeroPageX},
	0x6D: {Instruction: adc, Name: "ADC", Mode: Absolute},
	0x7D: {Instruction: adc, Name: "ADC", Mode: AbsoluteX},
	0x79: {Instruction: adc, Name: "ADC", Mode: AbsoluteY},
	0x61: {Instruction: adc, Name: "ADC", Mode: IndirectX},
	0x71: {Instruction: adc, Name: "ADC", Mode: IndirectY},

	0x29: {Instruction: and, Name: "AND", Mode: Immediate},
	0x25: {Instruction: and, Name: "AND", Mode: ZeroPage},
	0x35: {Instruction: and, Name: "AND", Mode: ZeroPageX},
	0x2D: {Instruction: and, Name: "AND", Mode: Absolute},
	0x3D: {Instruction: and, Name: "AND", Mode: AbsoluteX},
	0x39: {Instruction: and, Name: "AND", Mode: AbsoluteY},
	0x21: {Instruction: and, Name: "AND", Mode: IndirectX},
	0x31: {Instruction: and, Name: "AND", Mode: IndirectY},

	0x0A: {Instruction: asl, Name: "ASL", Mode: Accumulator},
	0x06: {Instruction: asl, Name: "ASL", Mode: ZeroPage},
	0x16: {Instruction: asl, Name: "ASL", Mode: ZeroPageX},
	0x0E: {Instruction: asl, Name: "ASL", Mode: Absolute},
	0x1E: {Instruction: asl, Name: "ASL", Mode: AbsoluteX},

	0x90: {Instruction: bcc, Name: "BCC", Mode: Relative},
	0xB0: {Instruction: bcs, Name: "BCS", Mode: Relative},
	0xF0: {Instruction: beq, Name: "BEQ", Mode: Relative},

	0x24: {Instruction: bit, Name: "BIT", Mode: ZeroPage},
	0x2C: {Instruction: bit, Name: "BIT", Mode: Absolute},

	0x30: {Instruction: bmi, Name: "BMI", Mode: Relative},
	0xD0: {Instruction: bne, Name: "BNE", Mode: Relative},
	0x10: {Instruction: bpl, Name: "BPL", Mode: Relative},

	0x00: {Instruction: brk, Name: "BRK", Mode: Implied},

	0x50: {Instruction: bvc, Name: "BVC", Mode: Relative},
	0x70: {Instruction: bvs, Name: "BVS", Mode: Relative},

	0x18: {Instruction: clc, Name: "CLC", Mode: Implied},
	0xD8: {Instruction: cld, Name: "CLD", Mode: Implied},
	0x58: {Instruction: cli, Name: "CLI", Mode: Implied},
	0xB8: {Instruction: clv, Name: "CLV", Mode: Implied},

	0xC9: {Instruction: cmp, Name: "CMP", Mode: Immediate},
	0xC5: {Instruction: cmp, Name: "CMP", Mode: ZeroPage},
	0xD5: {Instruction: cmp, Name: "CMP", Mode: ZeroPageX},
	0xCD: {Instruction: cmp, Name: "CMP", Mode: Absolute},
	0xDD: {Instruction: cmp, Name: "CMP", Mode: AbsoluteX},
	0xD9: {Instruction: cmp, Name: "CMP", Mode: AbsoluteY},
	0xC1: {Instruction: cmp, Name: "CMP", Mode: IndirectX},
	0xD1: {Instruction: cmp, Name: "CMP", Mode: IndirectY},

	0xE0: {Instruction: cpx, Name: "CPX", Mode: Immediate},
	0xE4: {Instruction: cpx, Name: "CPX", Mode: ZeroPage},
	0xEC: {Instruction: cpx, Name: "CPX", Mode: Absolute},

	0xC0: {Instruction: cpy, Name: "CPY", Mode: Immediate},
	0xC4: {Instruction: cpy, Name: "CPY", Mode: ZeroPage},
	0xCC: {Instruction: cpy, Name: "CPY", Mode: Absolute},

	0xC6: {Instruction: dec, Name: "DEC", Mode: ZeroPage},
	0xD6: {Instruction: dec, Name: "DEC", Mode: ZeroPageX},
	0xCE: {Instruction: dec, Name: "DEC", Mode: Absolute},
	0xDE: {Instruction: dec, Name: "DEC", Mode: AbsoluteX},

	0xCA: {Instruction: dex, Name: "DEX", Mode: Implied},
	0x88: {Instruction: dey, Name: "DEY", Mode: Implied},

	0x49: {Instruction: eor, Name: "EOR", Mode: Immediate},
	0x45: {Instruction: eor, Name: "EOR", Mode: ZeroPage},
	0x55: {Instruction: eor, Name: "EOR", Mode: ZeroPageX},
	0x4D: {Instruction: eor, Name: "EOR", Mode: Absolute},
	0x5D: {Instruction: eor, Name: "EOR", Mode: AbsoluteX},
	0x59: {Instruction: eor, Name: "EOR", Mode: AbsoluteY},
	0x41: {Instruction: eor, Name: "EOR", Mode: IndirectX},
	0x51: {Instruction: eor, Name: "EOR", Mode: IndirectY},

	0xE6: {Instruction: inc, Name: "INC", Mode: ZeroPage},
	0xF6: {Instruction: inc, Name: "INC", Mode: ZeroPageX},
	0xEE: {Instruction: inc, Name: "INC", Mode: Absolute},
	0xFE: {Instruction: inc, Name: "INC", Mode: AbsoluteX},

	0xE8: {Instruction: inx, Name: "INX", Mode: Implied},
	0xC8: {Instruction: iny, Name: "INY", Mode: Implied},

	0x4C: {Instruction: jmp, Name: "JMP", Mode: Absolute},
	0x6C: {Instruction: jmp, Name: "JMP", Mode: Indirect},

	0x20: {Instruction: jsr, Name: "JSR", Mode: Absolute},

	0xA9: {Instruction: lda, Name: "LDA", Mode: Immediate},
	0xA5: {Instruction: lda, Name: "LDA", Mode: ZeroPage},
	0xB5: {Instruction: lda, Name: "LDA", Mode: ZeroPageX},
	0xAD: {Instruction: lda, Name: "LDA", Mode: Absolute},
	0xBD: {Instruction: lda, Name: "LDA", Mode: AbsoluteX},
	0xB9: {Instruction: lda, Name: "LDA", Mode: AbsoluteY},
	0xA1: {Instruction: lda, Name: "LDA", Mode: IndirectX},
	0xB1: {Instruction: lda, Name: "LDA", Mode: IndirectY},

	0xA2: {Instruction: ldx, Name: "LDX", Mode: Immediate},
	0xA6: {Instruction: ldx, Name: "LDX", Mode: ZeroPage},
	0xB6: {Instruction: ldx, Name: "LDX", Mode: ZeroPageY},
	0xAE: {Instruction: ldx, Name: "LDX", Mode: Absolute},
	0xBE: {Instruction: ldx, Name: "LDX", Mode: AbsoluteY},

	0xA0: {Instruction: ldy, Name: "LDY", Mode: Immediate},
	0xA4: {Instruction: ldy, Name: "LDY", Mode: ZeroPage},
	0xB4: {Instruction: ldy, Name: "LDY", Mode: ZeroPageX},
	0xAC: {Instruction: ldy, Name: "LDY", Mode: Absolute},
	0xBC: {Instruction: ldy, Name: "LDY", Mode: AbsoluteX},

	0x4A: {Instruction: lsr, Name: "LSR", Mode: Accumulator},
	0x46: {Instruction: lsr, Name: "LSR", Mode: ZeroPage},
	0x56: {Instruction: lsr, Name: "LSR", Mode: ZeroPageX},
	0x4E: {Instruction: lsr, Name: "LSR", Mode: Absolute},
	0x5E: {Instruction: lsr, Name: "LSR", Mode: AbsoluteX},

	0xEA: {Instruction: nop, Name: "NOP", Mode: Implied},

	0x09: {Instruction: ora, Name: "ORA", Mode: Immediate},
	0x05: {Instruction: ora, Name: "ORA", Mode: ZeroPage},
	0x15: {Instruction: ora, Name: "ORA", Mode: ZeroPageX},
	0x0D: {Instruction: ora, Name: "ORA", Mode: Absolute},
	0x1D: {Instruction: ora, Name: "ORA", Mode: AbsoluteX},
	0x19: {Instruction: ora, Name: "ORA", Mode: AbsoluteY},
	0x01: {Instruction: ora, Name: "ORA", Mode: IndirectX},
	0x11: {Instruction: ora, Name: "ORA", Mode: IndirectY},

	0x48: {Instruction: pha, Name: "PHA", Mode: Implied},
	0x08: {Instruction: php, Name: "PHP", Mode: Implied},
	0x68: {Instruction: pla, Name: "PLA", Mode: Implied},
	0x28: {Instruction: plp, Name: "PLP", Mode: Implied},

	0x2A: {Instruction: rol, Name: "ROL", Mode: Accumulator},
	0x26: {Instruction: rol, Name: "ROL", Mode: ZeroPage},
	0x36: {Instruction: rol, Name: "ROL", Mode: ZeroPageX},
	0x2E: {Instruction: rol, Name: "ROL", Mode: Absolute},
	0x3E: {Instruction: rol, Name: "ROL", Mode: AbsoluteX},

	0x6A: {Instruction: ror, Name: "ROR", Mode: Accumulator},
	0x66: {Instruction: ror, Name: "ROR", Mode: ZeroPage},
	0x76: {Instruction: ror, Name: "ROR", Mode: ZeroPageX},
	0x6E: {Instruction: ror, Name: "ROR", Mode: Absolute},
	0x7E: {Instruction: ror, Name: "ROR", Mode: AbsoluteX},

	0x40: {Instruction: rti, Name: "RTI", Mode: Implied},
	0x60: {Instruction: rts, Name: "RTS", Mode: Implied},

	0xE9: {Instruction: sbc, Name: "SBC", Mode: Immediate},
	0xE5: {Instruction: sbc, Name: "SBC", Mode: ZeroPage},
	0xF5: {Instruction: sbc, Name: "SBC", Mode: ZeroPageX},
	0xED: {Instruction: sbc, Name: "SBC", Mode: Absolute},
	0xFD: {Instruction: sbc, Name: "SBC", Mode: AbsoluteX},
	0xF9: {Instruction: sbc, Name: "SBC", Mode: AbsoluteY},
	0xE1: {Instruction: sbc, Name: "SBC", Mode: IndirectX},
	0xF1: {Instruction: sbc, Name: "SBC", Mode: IndirectY},

	0x38: {Instruction: sec, Name: "SEC", Mode: Implied},
	0xF8: {Instruction: sed, Name: "SED", Mode: Implied},
	0x78: {Instruction: sei, Name: "SEI", Mode: Implied},

	0x85: {Instruction: sta, Name: "STA", Mode: ZeroPage},
	0x95: {Instruction: sta, Name: "STA", Mode: ZeroPageX},
	0x8D: {Instruction: sta, Name: "STA", Mode: Absolute},
	0x9D: {Instruction: sta, Name: "STA", Mode: AbsoluteX},
	0x99: {Instruction: sta, Name: "STA", Mode: AbsoluteY},
	0x81: {Instruction: sta, Name: "STA", Mode: IndirectX},
	0x91: {Instruction: sta, Name: "STA", Mode: IndirectY},

	0x86: {Instruction: stx, Name: "STX", Mode: ZeroPage},
	0x96: {Instruction: stx, Name: "STX", Mode: ZeroPageY},
	0x8E: {Instruction: stx, Name: "STX", Mode: Absolute},

	0x84: {Instruction: sty, Name: "STY", Mode: ZeroPage},
	0x94: {Instruction: sty, Name: "STY", Mode: ZeroPageX},
	0x8C: {Instruction: sty, Name: "STY", Mode: Absolute},

	0xAA: {Instruction: tax, Name: "TAX", Mode: Implied},
	0xA8: {Instruction: tay, Name: "TAY", Mode: Implied},
	0xBA: {Instruction: tsx, Name: "TSX", Mode: Implied},
	0x8A: {Instruction: txa, Name: "TXA", Mode: Implied},
	0x9A: {Instruction: txs, Name: "TXS", Mode: Implied},
	0x98: {Instruction: tya, Name: "TYA", Mode: Implied},
}
