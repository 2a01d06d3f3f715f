package cursor

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/cursortrail/common"
	"github.com/milk9111/cursortrail/surface"
)

// Draw renders the layers onto screen in Z order. It is a pure
// function of the snapshots and positions the last Update wrote; an
// inactive engine has no layers and draws nothing.
func (e *Engine) Draw(screen *ebiten.Image) {
	layers := make([]*surface.Node, 0, 3)
	for _, n := range []*surface.Node{e.primary, e.dot, e.center} {
		if n != nil {
			layers = append(layers, n)
		}
	}
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].Style.Z < layers[j].Style.Z
	})

	for _, n := range layers {
		drawLayer(screen, n)
	}
}

func drawLayer(screen *ebiten.Image, n *surface.Node) {
	s := n.Style
	if s.Opacity <= 0 || s.Size <= 0 {
		return
	}
	r := float32(s.Size * s.Scale / 2)
	if r <= 0 {
		return
	}
	clr := withOpacity(s.Color, s.Opacity)
	cx, cy := float32(n.X), float32(n.Y)
	if s.BorderWidth > 0 {
		vector.StrokeCircle(screen, cx, cy, r, float32(s.BorderWidth), clr, true)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
}

// withOpacity premultiplies the color by the layer opacity.
func withOpacity(c color.RGBA, opacity float64) color.RGBA {
	opacity = common.Clamp(opacity, 0, 1)
	if opacity == 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
