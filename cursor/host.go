package cursor

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host is the slice of the environment the engine consumes: pointer
// position, focus, viewport geometry, input profile, and the native
// cursor toggle. The engine never produces events back into the host.
type Host interface {
	// PointerPosition returns the pointer location in screen
	// coordinates. inside is false while the pointer is outside the
	// viewport (or the host has never observed it).
	PointerPosition() (x, y float64, inside bool)
	// Focused reports whether the host window has input focus.
	Focused() bool
	// ViewportSize returns the current viewport in pixels.
	ViewportSize() (w, h int)
	// TouchCapable reports whether the environment has touch input.
	TouchCapable() bool
	// Platform returns the platform identification string.
	Platform() string
	// SetNativeCursorHidden shows or hides the platform pointer glyph.
	SetNativeCursorHidden(hidden bool)
}

// EbitenHost adapts the Ebiten runtime to the Host interface.
type EbitenHost struct {
	// touchSeen goes sticky after the first observed touch, so a
	// convertible laptop keeps classifying as touch-capable between
	// touches.
	touchSeen bool
	touchBuf  []ebiten.TouchID
}

func NewEbitenHost() *EbitenHost {
	return &EbitenHost{}
}

func (h *EbitenHost) PointerPosition() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	w, hh := h.ViewportSize()
	inside := x >= 0 && y >= 0 && x < w && y < hh
	return float64(x), float64(y), inside
}

func (h *EbitenHost) Focused() bool {
	return ebiten.IsFocused()
}

func (h *EbitenHost) ViewportSize() (int, int) {
	return ebiten.WindowSize()
}

func (h *EbitenHost) TouchCapable() bool {
	if h.touchSeen {
		return true
	}
	h.touchBuf = ebiten.AppendTouchIDs(h.touchBuf[:0])
	if len(h.touchBuf) > 0 {
		h.touchSeen = true
	}
	return h.touchSeen
}

func (h *EbitenHost) Platform() string {
	return runtime.GOOS
}

func (h *EbitenHost) SetNativeCursorHidden(hidden bool) {
	if hidden {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
