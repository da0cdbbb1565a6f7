package cpu

import "fmt"

// Disassemble formats the instruction at addr as "MNEMONIC operand", reading
// bytes directly off the bus without touching any Cpu register; it is safe
// to call at any point, including mid-Step from the debugger.
func Disassemble(c *Cpu, addr uint16) string {
	raw := c.Read(addr)
	op, ok := Opcodes[raw]
	if !ok {
		return fmt.Sprintf(".byte $%02X", raw)
	}

	operand := addr + 1
	switch op.Mode {
	case Implied:
		return op.Name
	case Accumulator:
		return op.Name + " A"
	case Immediate:
		return fmt.Sprintf("%s #$%02X", op.Name, c.Read(operand))
	case Relative:
		offset := int8(c.Read(operand))
		target := operand + 1 + uint16(offset)
		return fmt.Sprintf("%s $%04X", op.Name, target)
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", op.Name, c.Read(operand))
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", op.Name, c.Read(operand))
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", op.Name, c.Read(operand))
	case Absolute:
		return fmt.Sprintf("%s $%04X", op.Name, c.Bus.Read16(operand))
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", op.Name, c.Bus.Read16(operand))
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", op.Name, c.Bus.Read16(operand))
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", op.Name, c.Bus.Read16(operand))
	case IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", op.Name, c.Read(operand))
	case IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", op.Name, c.Read(operand))
	default:
		return op.Name
	}
}
