package wrapper

import "github.com/veandco/go-sdl2/sdl"

// The driver-level controls a host UI exposes over the interpreter, per the
// external interface's "driver controls": step once, run/pause, adjust the
// auto-step rate, and quit.
const (
	ControlStep = iota
	ControlPause
	ControlSpeedUp
	ControlSpeedDown
	ControlQuit
)

var keyMapping = map[sdl.Keycode]int{
	sdl.K_SPACE:  ControlStep,
	sdl.K_p:      ControlPause,
	sdl.K_EQUALS: ControlSpeedUp,
	sdl.K_MINUS:  ControlSpeedDown,
	sdl.K_q:      ControlQuit,
}

// Controls tracks which driver controls are currently held down, and which
// were pressed since the last poll (for edge-triggered controls like
// pausing or single-stepping, where holding the key shouldn't repeat).
type Controls struct {
	held    map[int]bool
	pressed map[int]bool
}

// NewControls creates a Controls with everything released.
func NewControls() *Controls {
	return &Controls{held: make(map[int]bool), pressed: make(map[int]bool)}
}

// Poll drains pending SDL events and updates control state. Call once per
// driver loop iteration before reading Pressed/Held.
func (c *Controls) Poll() {
	c.pressed = make(map[int]bool)
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyDownEvent:
			if key, ok := keyMapping[t.Keysym.Sym]; ok {
				if !c.held[key] {
					c.pressed[key] = true
				}
				c.held[key] = true
			}
		case *sdl.KeyUpEvent:
			if key, ok := keyMapping[t.Keysym.Sym]; ok {
				c.held[key] = false
			}
		}
	}
}

// Pressed reports whether control was newly pressed during the most recent
// Poll (true for exactly one Poll per key press, regardless of how long the
// key is held).
func (c *Controls) Pressed(control int) bool {
	return c.pressed[control]
}

// Held reports whether control is currently held down.
func (c *Controls) Held(control int) bool {
	return c.held[control]
}
