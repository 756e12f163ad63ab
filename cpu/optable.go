package cpu

// opcodeEntry describes one entry of the 256-slot dispatch table: the
// mnemonic (for debug output and for nsf's RTS detection), its addressing
// mode, and the function that performs it. Slots with exec == nil are gaps
// in the official opcode matrix (after dropping the undocumented opcodes)
// and make Step return an UnknownOpcodeError.
type opcodeEntry struct {
	mnemonic string
	mode     AddressingMode
	exec     func(*CPU)
}

// opcodeTable is a plain array, not a map, so every one of the 256 byte
// values has a slot whether or not it's filled - opcode 0x00 (BRK) is a
// first-class entry rather than falling out of a zero-value map lookup.
var opcodeTable [256]opcodeEntry

func reg(op byte, mnemonic string, mode AddressingMode, exec func(*CPU)) {
	opcodeTable[op] = opcodeEntry{mnemonic: mnemonic, mode: mode, exec: exec}
}

func init() {
	reg(0x69, "ADC", Immediate, opADC)
	reg(0x65, "ADC", ZeroPage, opADC)
	reg(0x75, "ADC", ZeroPageX, opADC)
	reg(0x6D, "ADC", Absolute, opADC)
	reg(0x7D, "ADC", AbsoluteX, opADC)
	reg(0x79, "ADC", AbsoluteY, opADC)
	reg(0x61, "ADC", IndirectX, opADC)
	reg(0x71, "ADC", IndirectY, opADC)

	reg(0x29, "AND", Immediate, opAND)
	reg(0x25, "AND", ZeroPage, opAND)
	reg(0x35, "AND", ZeroPageX, opAND)
	reg(0x2D, "AND", Absolute, opAND)
	reg(0x3D, "AND", AbsoluteX, opAND)
	reg(0x39, "AND", AbsoluteY, opAND)
	reg(0x21, "AND", IndirectX, opAND)
	reg(0x31, "AND", IndirectY, opAND)

	reg(0x0A, "ASL", Accumulator, opASLAcc)
	reg(0x06, "ASL", ZeroPage, opASL)
	reg(0x16, "ASL", ZeroPageX, opASL)
	reg(0x0E, "ASL", Absolute, opASL)
	reg(0x1E, "ASL", AbsoluteX, opASL)

	reg(0x90, "BCC", Relative, opBCC)
	reg(0xB0, "BCS", Relative, opBCS)
	reg(0xF0, "BEQ", Relative, opBEQ)

	reg(0x24, "BIT", ZeroPage, opBIT)
	reg(0x2C, "BIT", Absolute, opBIT)

	reg(0x30, "BMI", Relative, opBMI)
	reg(0xD0, "BNE", Relative, opBNE)
	reg(0x10, "BPL", Relative, opBPL)

	reg(0x00, "BRK", Implied, opBRK)

	reg(0x50, "BVC", Relative, opBVC)
	reg(0x70, "BVS", Relative, opBVS)

	reg(0x18, "CLC", Implied, opCLC)
	reg(0xD8, "CLD", Implied, opCLD)
	reg(0x58, "CLI", Implied, opCLI)
	reg(0xB8, "CLV", Implied, opCLV)

	reg(0xC9, "CMP", Immediate, opCMP)
	reg(0xC5, "CMP", ZeroPage, opCMP)
	reg(0xD5, "CMP", ZeroPageX, opCMP)
	reg(0xCD, "CMP", Absolute, opCMP)
	reg(0xDD, "CMP", AbsoluteX, opCMP)
	reg(0xD9, "CMP", AbsoluteY, opCMP)
	reg(0xC1, "CMP", IndirectX, opCMP)
	reg(0xD1, "CMP", IndirectY, opCMP)

	reg(0xE0, "CPX", Immediate, opCPX)
	reg(0xE4, "CPX", ZeroPage, opCPX)
	reg(0xEC, "CPX", Absolute, opCPX)

	reg(0xC0, "CPY", Immediate, opCPY)
	reg(0xC4, "CPY", ZeroPage, opCPY)
	reg(0xCC, "CPY", Absolute, opCPY)

	reg(0xC6, "DEC", ZeroPage, opDEC)
	reg(0xD6, "DEC", ZeroPageX, opDEC)
	reg(0xCE, "DEC", Absolute, opDEC)
	reg(0xDE, "DEC", AbsoluteX, opDEC)

	reg(0xCA, "DEX", Implied, opDEX)
	reg(0x88, "DEY", Implied, opDEY)

	reg(0x49, "EOR", Immediate, opEOR)
	reg(0x45, "EOR", ZeroPage, opEOR)
	reg(0x55, "EOR", ZeroPageX, opEOR)
	reg(0x4D, "EOR", Absolute, opEOR)
	reg(0x5D, "EOR", AbsoluteX, opEOR)
	reg(0x59, "EOR", AbsoluteY, opEOR)
	reg(0x41, "EOR", IndirectX, opEOR)
	reg(0x51, "EOR", IndirectY, opEOR)

	reg(0xE6, "INC", ZeroPage, opINC)
	reg(0xF6, "INC", ZeroPageX, opINC)
	reg(0xEE, "INC", Absolute, opINC)
	reg(0xFE, "INC", AbsoluteX, opINC)

	reg(0xE8, "INX", Implied, opINX)
	reg(0xC8, "INY", Implied, opINY)

	reg(0x4C, "JMP", Absolute, opJMP)
	reg(0x6C, "JMP", Indirect, opJMP)

	reg(0x20, "JSR", Absolute, opJSR)

	reg(0xA9, "LDA", Immediate, opLDA)
	reg(0xA5, "LDA", ZeroPage, opLDA)
	reg(0xB5, "LDA", ZeroPageX, opLDA)
	reg(0xAD, "LDA", Absolute, opLDA)
	reg(0xBD, "LDA", AbsoluteX, opLDA)
	reg(0xB9, "LDA", AbsoluteY, opLDA)
	reg(0xA1, "LDA", IndirectX, opLDA)
	reg(0xB1, "LDA", IndirectY, opLDA)

	reg(0xA2, "LDX", Immediate, opLDX)
	reg(0xA6, "LDX", ZeroPage, opLDX)
	reg(0xB6, "LDX", ZeroPageY, opLDX)
	reg(0xAE, "LDX", Absolute, opLDX)
	reg(0xBE, "LDX", AbsoluteY, opLDX)

	reg(0xA0, "LDY", Immediate, opLDY)
	reg(0xA4, "LDY", ZeroPage, opLDY)
	reg(0xB4, "LDY", ZeroPageX, opLDY)
	reg(0xAC, "LDY", Absolute, opLDY)
	reg(0xBC, "LDY", AbsoluteX, opLDY)

	reg(0x4A, "LSR", Accumulator, opLSRAcc)
	reg(0x46, "LSR", ZeroPage, opLSR)
	reg(0x56, "LSR", ZeroPageX, opLSR)
	reg(0x4E, "LSR", Absolute, opLSR)
	reg(0x5E, "LSR", AbsoluteX, opLSR)

	reg(0xEA, "NOP", Implied, opNOP)

	reg(0x09, "ORA", Immediate, opORA)
	reg(0x05, "ORA", ZeroPage, opORA)
	reg(0x15, "ORA", ZeroPageX, opORA)
	reg(0x0D, "ORA", Absolute, opORA)
	reg(0x1D, "ORA", AbsoluteX, opORA)
	reg(0x19, "ORA", AbsoluteY, opORA)
	reg(0x01, "ORA", IndirectX, opORA)
	reg(0x11, "ORA", IndirectY, opORA)

	reg(0x48, "PHA", Implied, opPHA)
	reg(0x08, "PHP", Implied, opPHP)
	reg(0x68, "PLA", Implied, opPLA)
	reg(0x28, "PLP", Implied, opPLP)

	reg(0x2A, "ROL", Accumulator, opROLAcc)
	reg(0x26, "ROL", ZeroPage, opROL)
	reg(0x36, "ROL", ZeroPageX, opROL)
	reg(0x2E, "ROL", Absolute, opROL)
	reg(0x3E, "ROL", AbsoluteX, opROL)

	reg(0x6A, "ROR", Accumulator, opRORAcc)
	reg(0x66, "ROR", ZeroPage, opROR)
	reg(0x76, "ROR", ZeroPageX, opROR)
	reg(0x6E, "ROR", Absolute, opROR)
	reg(0x7E, "ROR", AbsoluteX, opROR)

	reg(0x40, "RTI", Implied, opRTI)
	reg(0x60, "RTS", Implied, opRTS)

	reg(0xE9, "SBC", Immediate, opSBC)
	reg(0xE5, "SBC", ZeroPage, opSBC)
	reg(0xF5, "SBC", ZeroPageX, opSBC)
	reg(0xED, "SBC", Absolute, opSBC)
	reg(0xFD, "SBC", AbsoluteX, opSBC)
	reg(0xF9, "SBC", AbsoluteY, opSBC)
	reg(0xE1, "SBC", IndirectX, opSBC)
	reg(0xF1, "SBC", IndirectY, opSBC)

	reg(0x38, "SEC", Implied, opSEC)
	reg(0xF8, "SED", Implied, opSED)
	reg(0x78, "SEI", Implied, opSEI)

	reg(0x85, "STA", ZeroPage, opSTA)
	reg(0x95, "STA", ZeroPageX, opSTA)
	reg(0x8D, "STA", Absolute, opSTA)
	reg(0x9D, "STA", AbsoluteX, opSTA)
	reg(0x99, "STA", AbsoluteY, opSTA)
	reg(0x81, "STA", IndirectX, opSTA)
	reg(0x91, "STA", IndirectY, opSTA)

	reg(0x86, "STX", ZeroPage, opSTX)
	reg(0x96, "STX", ZeroPageY, opSTX)
	reg(0x8E, "STX", Absolute, opSTX)

	reg(0x84, "STY", ZeroPage, opSTY)
	reg(0x94, "STY", ZeroPageX, opSTY)
	reg(0x8C, "STY", Absolute, opSTY)

	reg(0xAA, "TAX", Implied, opTAX)
	reg(0xA8, "TAY", Implied, opTAY)
	reg(0xBA, "TSX", Implied, opTSX)
	reg(0x8A, "TXA", Implied, opTXA)
	reg(0x9A, "TXS", Implied, opTXS)
	reg(0x98, "TYA", Implied, opTYA)
}
