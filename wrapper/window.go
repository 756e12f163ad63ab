// Package wrapper wraps SDL2 behind a small shim used by the driver binary
// to show a live view of CPU state while it steps an NSF player.
package wrapper

import (
	"reflect"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Init brings up SDL for a single window. Must be called once, from the
// goroutine that will drive the event loop.
func Init() {
	// SDL needs to run its event loop on the thread it was initialized on.
	runtime.LockOSThread()
	sdl.Init(sdl.INIT_EVERYTHING)
}

// Window is a pixel-addressable grid used to render a byte-level view of
// CPU memory: one pixel per byte, intensity proportional to the byte value.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// Height and Width are in grid cells, not screen pixels; each cell is
	// magnified onto the screen by the window's actual size.
	Height int
	Width  int

	lockedPixels []byte
}

// SetPixel sets the (x,y)-th cell to a grayscale intensity v: a single byte
// value rendered as (v,v,v).
func (w *Window) SetPixel(x, y int, v byte) {
	base := 4 * (y*w.Width + x)
	w.lockedPixels[base] = v
	w.lockedPixels[base+1] = v
	w.lockedPixels[base+2] = v
	w.lockedPixels[base+3] = 0
}

// SetPixelRGB sets the (x,y)-th cell to an explicit color rather than a
// grayscale intensity. The nsfplay driver's memory grid uses only SetPixel.
func (w *Window) SetPixelRGB(x, y int, r, g, b byte) {
	base := 4 * (y*w.Width + x)
	w.lockedPixels[base] = b
	w.lockedPixels[base+1] = g
	w.lockedPixels[base+2] = r
	w.lockedPixels[base+3] = 0
}

func (w *Window) lockTexture() {
	var pixels unsafe.Pointer
	var pitch int

	if err := w.texture.Lock(nil, &pixels, &pitch); err != nil {
		panic(err)
	}

	length := 4 * w.Height * w.Width
	sliceHeader := (*reflect.SliceHeader)(unsafe.Pointer(&w.lockedPixels))
	sliceHeader.Cap = length
	sliceHeader.Len = length
	sliceHeader.Data = uintptr(pixels)
}

// Blit makes pixels written via SetPixel/SetPixelRGB since the last call
// visible on screen.
func (w *Window) Blit() {
	w.texture.Unlock()
	w.renderer.Copy(w.texture, nil, nil)
	w.renderer.Present()
	w.lockTexture()
}

// NewWindow opens a window of the given cell grid size, scaled up for
// visibility, with the given title.
func NewWindow(height, width int, title string) *Window {
	w := &Window{Height: height, Width: width}

	var err error
	w.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(4*width),
		int32(4*height),
		sdl.WINDOW_SHOWN)
	if err != nil {
		panic(err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "nearest")
	w.renderer, err = sdl.CreateRenderer(w.window, -1, 0)
	if err != nil {
		panic(err)
	}

	w.texture, err = w.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height))
	if err != nil {
		panic(err)
	}

	w.lockTexture()
	return w
}
