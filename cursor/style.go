package cursor

import (
	"image/color"

	"github.com/mazznoer/csscolorparser"

	"github.com/milk9111/cursortrail/surface"
)

// Z order for the layers; high enough to sit above anything the host
// application draws through the same tree.
const (
	zPrimary = 1000
	zDot     = 1001
)

// palette holds the configuration's colors resolved to RGBA. Colors
// re-resolve on every configuration change; a string that fails to
// parse keeps the previously resolved value instead of erroring.
type palette struct {
	base color.RGBA

	hover    color.RGBA
	hasHover bool

	effect    color.RGBA
	hasEffect bool

	centerDot    color.RGBA
	hasCenterDot bool

	centerDotHover    color.RGBA
	hasCenterDotHover bool
}

func resolvePalette(cfg Config, prev palette) palette {
	p := palette{
		base: parseColor(cfg.Color, prev.base),
	}
	if cfg.HoverColor != "" {
		p.hover = parseColor(cfg.HoverColor, prev.hover)
		p.hasHover = true
	}
	if cfg.HoverEffect != nil && cfg.HoverEffect.Color != "" {
		p.effect = parseColor(cfg.HoverEffect.Color, prev.effect)
		p.hasEffect = true
	}
	if cfg.CenterDotColor != "" {
		p.centerDot = parseColor(cfg.CenterDotColor, prev.centerDot)
		p.hasCenterDot = true
	}
	if cfg.CenterDotHoverColor != "" {
		p.centerDotHover = parseColor(cfg.CenterDotHoverColor, prev.centerDotHover)
		p.hasCenterDotHover = true
	}
	return p
}

func parseColor(s string, fallback color.RGBA) color.RGBA {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return fallback
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// restyle recomputes the full style snapshot for every existing layer
// and writes it. Layers that do not exist in the current mode are
// skipped, never an error.
func (e *Engine) restyle() {
	visible := e.visible()

	opacity := e.cfg.Opacity
	if e.hover && e.cfg.HoverEffect != nil && e.cfg.HoverEffect.Opacity != nil {
		opacity = *e.cfg.HoverEffect.Opacity
	}
	if !visible {
		opacity = 0
	}

	if e.primary != nil {
		s := surface.Style{
			Size:    e.cfg.Size,
			Color:   e.primaryColor(),
			Opacity: opacity,
			Scale:   1,
			Z:       zPrimary,
		}
		if e.cfg.Outline {
			s.BorderWidth = e.cfg.OutlineWidth
		} else if e.hover {
			// Hover scaling is a size effect, and only in filled mode;
			// outline mode expresses hover through speed and color.
			s.Scale = e.cfg.hoverScale()
		}
		e.primary.ApplyStyle(s)
	}

	dotStyle := surface.Style{
		Size:    e.cfg.CenterDotSize,
		Color:   e.dotColor(),
		Opacity: opacity,
		Scale:   1,
		Z:       zDot,
	}
	if e.dot != nil {
		e.dot.ApplyStyle(dotStyle)
	}
	if e.center != nil {
		e.center.ApplyStyle(dotStyle)
	}
}

// primaryColor resolves the primary layer's color: hover color, then
// hover-effect override, then base.
func (e *Engine) primaryColor() color.RGBA {
	if e.hover {
		if e.colors.hasHover {
			return e.colors.hover
		}
		if e.colors.hasEffect {
			return e.colors.effect
		}
	}
	return e.colors.base
}

// dotColor resolves the dot layers' color with the same precedence,
// with the dot's own hover color layered before the shared one.
func (e *Engine) dotColor() color.RGBA {
	if e.hover {
		if e.colors.hasCenterDotHover {
			return e.colors.centerDotHover
		}
		if e.colors.hasHover {
			return e.colors.hover
		}
		if e.colors.hasEffect {
			return e.colors.effect
		}
	}
	if e.colors.hasCenterDot {
		return e.colors.centerDot
	}
	return e.colors.base
}
