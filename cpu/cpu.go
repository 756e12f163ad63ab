// Package cpu implements the MOS 6502 instruction core: registers, the 13
// addressing modes, and the 256-entry opcode table. It owns its own flat
// 64KB address space directly rather than dispatching through a bus, since
// nothing above it needs memory-mapped I/O.
package cpu

import "fmt"

// Registers is an immutable snapshot of CPU state handed to observers. It
// never aliases the live CPU, so a callback can't mutate the interpreter.
type Registers struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	SR uint8
}

// Observer is called once per completed instruction, in subscription order.
type Observer func(Registers)

type observerEntry struct {
	id int
	cb Observer
}

// CPU is the complete interpreter: registers, memory and instruction count
// in one aggregate, exclusively owned by the caller that constructs it. A
// CPU is not safe for concurrent use; Step and the Read8/Write8/Fill family
// must all be called from one goroutine.
type CPU struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	SR uint8

	memory [65536]byte

	// operandAddr/rawAddr are scratch state set by resolveOperand for the
	// instruction currently executing; rawAddr is the pre-index address,
	// kept only so debug output can show "$12,X" instead of the resolved
	// target.
	operandAddr uint16
	rawAddr     uint16

	instructionCount uint64

	// Debug, when true, makes Step print one line per instruction via
	// formatRegisters/formatOp.
	Debug bool

	lastMnemonic string

	observers      []observerEntry
	nextObserverID int
}

// New returns a CPU with all registers and memory zeroed and SP at 0xFF,
// exactly the state described for construction.
func New() *CPU {
	return &CPU{SP: 0xFF}
}

// Registers returns a snapshot of the current register file.
func (c *CPU) Registers() Registers {
	return Registers{PC: c.PC, A: c.A, X: c.X, Y: c.Y, SP: c.SP, SR: c.SR}
}

// InstructionCount returns the number of instructions executed via Step
// since construction.
func (c *CPU) InstructionCount() uint64 {
	return c.instructionCount
}

// LastMnemonic returns the mnemonic of the most recently executed
// instruction, or "" if Step has never been called. Used by the nsf loader
// to recognize the first RTS after init without the cpu package knowing
// anything about NSF.
func (c *CPU) LastMnemonic() string {
	return c.lastMnemonic
}

// Subscribe registers cb to be called with a Registers snapshot after every
// completed Step, in the order subscriptions were made. It returns an id
// that can be passed to Unsubscribe.
func (c *CPU) Subscribe(cb Observer) int {
	id := c.nextObserverID
	c.nextObserverID++
	c.observers = append(c.observers, observerEntry{id: id, cb: cb})
	return id
}

// Unsubscribe removes a previously registered observer. Unsubscribing an
// unknown id is a no-op.
func (c *CPU) Unsubscribe(id int) {
	for i, o := range c.observers {
		if o.id == id {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

func (c *CPU) notify() {
	if len(c.observers) == 0 {
		return
	}
	regs := c.Registers()
	for _, o := range c.observers {
		o.cb(regs)
	}
}

// Read8 reads one byte from the CPU's address space.
func (c *CPU) Read8(addr uint16) uint8 {
	return c.memory[addr]
}

// Write8 writes one byte to the CPU's address space.
func (c *CPU) Write8(addr uint16, v uint8) {
	c.memory[addr] = v
}

// WriteBytes copies data into memory starting at dest, wrapping past 0xFFFF.
func (c *CPU) WriteBytes(data []byte, dest uint16) {
	addr := dest
	for _, b := range data {
		c.memory[addr] = b
		addr++
	}
}

// Fill sets every byte in [start, end) to v. end may be 0x10000 to reach the
// top of the address space.
func (c *CPU) Fill(start, end uint32, v uint8) {
	for a := start; a < end; a++ {
		c.memory[uint16(a)] = v
	}
}

func (c *CPU) fetchPC8() uint8 {
	v := c.memory[c.PC]
	c.PC++
	return v
}

func (c *CPU) push(v uint8) {
	c.memory[0x0100|uint16(c.SP)] = v
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.memory[0x0100|uint16(c.SP)]
}

func (c *CPU) pushWord(w uint16) {
	c.push(uint8(w >> 8))
	c.push(uint8(w))
}

func (c *CPU) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// UnknownOpcodeError is returned by Step when the byte at PC has no entry in
// the opcode table (undocumented opcodes and the handful of true gaps in the
// official matrix).
type UnknownOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// Step executes exactly one instruction: fetch the opcode at PC, resolve its
// operand address per the addressing mode, run the semantic operation, and
// notify subscribers. It returns an *UnknownOpcodeError rather than panicking
// when the opcode has no table entry, leaving the CPU's PC past the opcode
// byte and everything else untouched.
func (c *CPU) Step() error {
	instrAddr := c.PC
	opcode := c.fetchPC8()
	entry := opcodeTable[opcode]
	if entry.exec == nil {
		return &UnknownOpcodeError{Opcode: opcode, PC: instrAddr}
	}

	c.resolveOperand(entry.mode)

	if c.Debug {
		c.logOp(instrAddr, opcode, &entry)
	}

	c.lastMnemonic = entry.mnemonic
	entry.exec(c)
	c.instructionCount++
	c.notify()
	return nil
}
