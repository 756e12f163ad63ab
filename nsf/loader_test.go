package nsf

import (
	"testing"

	"nsf6502/cpu"
)

// buildNSF assembles a minimal but complete NSF file: a header plus a body
// whose init routine is a bare RTS and whose play routine increments a
// counter byte in RAM and returns.
func buildNSF(t *testing.T, mutateHeader func([]byte)) []byte {
	t.Helper()

	var (
		loadAddr uint16 = 0x8000
		initAddr uint16 = 0x8000 // body offset 0: RTS
		playAddr uint16 = 0x8003 // body offset 3: INC $10; RTS
	)

	header := make([]byte, HeaderSize)
	copy(header[0:5], []byte("NESM\x1A"))
	header[0x06] = 1
	header[0x07] = 1
	header[0x08] = byte(loadAddr)
	header[0x09] = byte(loadAddr >> 8)
	header[0x0A] = byte(initAddr)
	header[0x0B] = byte(initAddr >> 8)
	header[0x0C] = byte(playAddr)
	header[0x0D] = byte(playAddr >> 8)
	if mutateHeader != nil {
		mutateHeader(header)
	}

	body := []byte{
		0x60,       // 0x8000: RTS  (init)
		0xEA, 0xEA, // padding
		0xE6, 0x10, // 0x8003: INC $10 (play)
		0x60, // 0x8005: RTS
	}

	return append(header, body...)
}

func TestLoadArmsCPU(t *testing.T) {
	data := buildNSF(t, nil)
	p, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}

	if p.CPU.PC != p.Header.InitAddr {
		t.Fatalf("PC = %#04x, want init addr %#04x", p.CPU.PC, p.Header.InitAddr)
	}
	if p.CPU.X != 0 {
		t.Fatalf("X = %d, want 0 for NTSC", p.CPU.X)
	}
	if p.CPU.A != 0 {
		t.Fatalf("A = %d, want starting-song-1 = 0", p.CPU.A)
	}
	if p.CPU.Read8(0x4015) != 0x0F {
		t.Fatalf("$4015 = %#02x, want 0x0F", p.CPU.Read8(0x4015))
	}
	if p.CPU.Read8(0x4017) != 0x40 {
		t.Fatalf("$4017 = %#02x, want 0x40", p.CPU.Read8(0x4017))
	}
	if p.CPU.Read8(0x8000) != 0x60 {
		t.Fatal("body was not copied to the load address")
	}
}

func TestLoadZerosRAMRegions(t *testing.T) {
	data := buildNSF(t, nil)
	h, err := ParseHeader(data)
	if err != nil {
		t.Fatal(err)
	}

	p := &Player{CPU: cpu.New(), Header: h}
	poisoned := []uint16{0x0000, 0x07FF, 0x6000, 0x7FFF, 0x4000, 0x4013}
	for _, addr := range poisoned {
		p.CPU.Write8(addr, 0xFF)
	}
	p.arm(data[HeaderSize:])

	for _, addr := range poisoned {
		if p.CPU.Read8(addr) != 0 {
			t.Fatalf("addr %#04x = %#02x, want 0", addr, p.CPU.Read8(addr))
		}
	}
}

func TestLoadSetsXForPAL(t *testing.T) {
	data := buildNSF(t, func(h []byte) { h[0x7A] = 0x01 })
	p, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if p.CPU.X != 1 {
		t.Fatalf("X = %d, want 1 for PAL", p.CPU.X)
	}
}

func TestLoadWritesBankSwitchRegisters(t *testing.T) {
	data := buildNSF(t, func(h []byte) {
		h[0x70] = 0x01
		h[0x71] = 0x02
	})
	p, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if p.CPU.Read8(0x5FF8) != 0x01 || p.CPU.Read8(0x5FF9) != 0x02 {
		t.Fatalf("bank registers = %#02x/%#02x, want 0x01/0x02",
			p.CPU.Read8(0x5FF8), p.CPU.Read8(0x5FF9))
	}
}

func TestLoadBadMagic(t *testing.T) {
	data := buildNSF(t, func(h []byte) { copy(h[0:4], []byte("NOPE")) })
	_, err := Load(data)
	if err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestPlayerTrampolineToPlay(t *testing.T) {
	data := buildNSF(t, nil)
	p, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}

	// init is a bare RTS: the very first Step should trigger the
	// trampoline into play instead of following whatever garbage
	// address the RTS actually popped off an empty-ish stack.
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if p.CPU.PC != p.Header.PlayAddr {
		t.Fatalf("PC = %#04x, want play addr %#04x", p.CPU.PC, p.Header.PlayAddr)
	}
}

func TestPlayerRepeatsPlayForever(t *testing.T) {
	data := buildNSF(t, nil)
	p, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}

	// Step through init's RTS, then three full play cycles (INC, RTS).
	for i := 0; i < 1+3*2; i++ {
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}

	if got := p.CPU.Read8(0x0010); got != 3 {
		t.Fatalf("counter = %d, want 3 after three play cycles", got)
	}
	if p.CPU.PC != p.Header.PlayAddr {
		t.Fatalf("PC = %#04x, want play addr %#04x between cycles", p.CPU.PC, p.Header.PlayAddr)
	}
}

func TestPlayerNestedJSRIsNotTrampolined(t *testing.T) {
	// play calls a subroutine before returning; the subroutine's own RTS
	// must return to play, not jump to the play address early.
	header := make([]byte, HeaderSize)
	copy(header[0:5], []byte("NESM\x1A"))
	header[0x08], header[0x09] = 0x00, 0x80 // load 0x8000
	header[0x0A], header[0x0B] = 0x00, 0x80 // init 0x8000
	header[0x0C], header[0x0D] = 0x03, 0x80 // play 0x8003

	body := []byte{
		0x60,       // 0x8000: RTS (init)
		0xEA, 0xEA, // padding
		0x20, 0x08, 0x80, // 0x8003: JSR $8008
		0x60, // 0x8006: RTS (play's own return)
		0xEA, // 0x8007: padding
		0xE6, 0x10, // 0x8008: INC $10 (subroutine)
		0x60, // 0x800A: RTS (subroutine's return)
	}

	p, err := Load(append(header, body...))
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Step(); err != nil { // init's RTS -> trampoline to play
		t.Fatal(err)
	}
	if err := p.Step(); err != nil { // JSR into subroutine
		t.Fatal(err)
	}
	if err := p.Step(); err != nil { // INC $10
		t.Fatal(err)
	}
	if got := p.CPU.Read8(0x0010); got != 1 {
		t.Fatalf("counter = %d, want 1", got)
	}
	if err := p.Step(); err != nil { // subroutine's RTS -> back into play, not the trampoline
		t.Fatal(err)
	}
	if p.CPU.PC != 0x8006 {
		t.Fatalf("PC = %#04x, want 0x8006 (back in play after the nested call)", p.CPU.PC)
	}
	if err := p.Step(); err != nil { // play's own RTS -> trampoline to play again
		t.Fatal(err)
	}
	if p.CPU.PC != p.Header.PlayAddr {
		t.Fatalf("PC = %#04x, want play addr %#04x", p.CPU.PC, p.Header.PlayAddr)
	}
}
