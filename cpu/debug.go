package cpu

import "fmt"

// formatOp renders the operand of entry for logging, assuming
// resolveOperand has already run for this instruction.
func (c *CPU) formatOp(entry *opcodeEntry) string {
	switch entry.mode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02X", c.memory[c.operandAddr])
	case ZeroPage:
		return fmt.Sprintf("$%02X", c.rawAddr)
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", c.rawAddr)
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", c.rawAddr)
	case Absolute:
		return fmt.Sprintf("$%04X", c.rawAddr)
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X", c.rawAddr)
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y", c.rawAddr)
	case Indirect:
		return fmt.Sprintf("($%04X)", c.rawAddr)
	case IndirectX:
		return fmt.Sprintf("($%02X,X)", c.rawAddr)
	case IndirectY:
		return fmt.Sprintf("($%02X),Y", c.rawAddr)
	case Relative:
		return fmt.Sprintf("*%+d", int8(c.memory[c.operandAddr]))
	default:
		return "?"
	}
}

// formatRegisters renders the register file, including a verbose expansion
// of the status flags, for logging.
func (c *CPU) formatRegisters() string {
	out := fmt.Sprintf("[A:%02X X:%02X Y:%02X SR:%02X SP:%02X [", c.A, c.X, c.Y, c.SR, c.SP)

	bit := func(f Flag, ch string) string {
		if c.flagSet(f) {
			return ch
		}
		return "-"
	}

	out += bit(FlagN, "N")
	out += bit(FlagV, "V")
	out += "1" // bit 5 is always shown set, whatever SR actually holds
	out += bit(FlagB, "B")
	out += bit(FlagD, "D")
	out += bit(FlagI, "I")
	out += bit(FlagZ, "Z")
	out += bit(FlagC, "C")
	out += "]"
	return out
}

// logOp prints one line describing the instruction at instrAddr.
func (c *CPU) logOp(instrAddr uint16, opcode byte, entry *opcodeEntry) {
	fmt.Printf("%s [0x%04X] 0x%02X %s %s\n",
		c.formatRegisters(), instrAddr, opcode, entry.mnemonic, c.formatOp(entry))
}
