package nsf

import "nsf6502/cpu"

// Player wires a parsed Header to a cpu.CPU and keeps the small amount of
// state needed to turn init/play, which are entered via synthetic JMP
// rather than JSR, into a continuous call-init-then-play-forever sequence.
type Player struct {
	CPU    *cpu.CPU
	Header *Header

	// callDepth counts JSRs executed since the last synthetic JMP into
	// init or play that have not yet been matched by a RTS. init/play
	// themselves were entered by JMP, so nothing pushed a return address
	// for them: a RTS seen at depth 0 is their own return, not a nested
	// subroutine's, and is what triggers the next synthetic JMP rather
	// than whatever garbage address the RTS itself popped.
	callDepth int
}

// Load parses data as an NSF file and arms a fresh CPU to begin running its
// init routine. It returns ErrBadMagic (via ParseHeader) if data does not
// look like an NSF file; the CPU is not touched until the header validates.
func Load(data []byte) (*Player, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	p := &Player{CPU: cpu.New(), Header: h}
	p.arm(data[HeaderSize:])
	return p, nil
}

func (p *Player) arm(body []byte) {
	c := p.CPU

	c.Fill(0x0000, 0x0800, 0)
	c.Fill(0x6000, 0x8000, 0)
	c.Fill(0x4000, 0x4014, 0)
	c.Write8(0x4015, 0x0F)
	c.Write8(0x4017, 0x40)

	if p.Header.Bankswitched() {
		for i, b := range p.Header.BankInit {
			c.Write8(0x5FF8+uint16(i), b)
		}
	}

	c.WriteBytes(body, p.Header.LoadAddr)

	if p.Header.PAL() {
		c.X = 1
	} else {
		c.X = 0
	}
	c.A = p.Header.StartingSong - 1

	c.PC = p.Header.InitAddr
	p.callDepth = 0
}

// Step executes one instruction and applies the init/play trampoline: the
// first RTS that returns from init, and every RTS that subsequently returns
// from play, redirects PC to the play address instead of whatever address
// the RTS actually popped.
func (p *Player) Step() error {
	if err := p.CPU.Step(); err != nil {
		return err
	}

	switch p.CPU.LastMnemonic() {
	case "JSR":
		p.callDepth++
	case "RTS":
		if p.callDepth > 0 {
			p.callDepth--
			return nil
		}
		p.CPU.PC = p.Header.PlayAddr
	}
	return nil
}
