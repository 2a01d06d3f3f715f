package cursor

// FollowMode selects how the primary layer chases the pointer.
type FollowMode string

const (
	// FollowLerp interpolates a fixed fraction of the remaining
	// distance each tick, with adaptive speed-up on large jumps.
	FollowLerp FollowMode = "lerp"
	// FollowSpring drives each axis with a damped spring instead of a
	// fixed fraction.
	FollowSpring FollowMode = "spring"
)

// HoverEffect is an optional style override bundle applied while the
// pointer is over an interactive element.
type HoverEffect struct {
	// Color overrides the base color while hovering. Empty means no
	// override.
	Color string
	// Opacity overrides the base opacity while hovering. Nil means no
	// override.
	Opacity *float64
	// Scale multiplies the rendered size while hovering. Zero falls
	// back to the default hover scale.
	Scale float64
}

// Config is the engine's full configuration. Zero-valued numeric and
// string fields mean "unset" and fall back to defaults; out-of-range
// values are accepted as-is and simply look unusual.
type Config struct {
	// Size is the primary layer's diameter in pixels.
	Size float64
	// Color is any css color string ("#000000", "rebeccapurple", ...).
	Color   string
	Opacity float64
	// Speed is the per-tick follow coefficient in (0, 1].
	Speed float64
	// HideNativeCursor suppresses the platform pointer glyph while the
	// engine is active.
	HideNativeCursor bool
	// ExtraClass is an additional marker class stamped on every layer.
	ExtraClass string
	// InteractiveOnly hides the layers except over interactive elements.
	InteractiveOnly bool
	// Outline renders the primary layer as a ring with an inner dot
	// that snaps to the exact pointer position.
	Outline      bool
	OutlineWidth float64
	// CenterDot adds an exact-position dot in filled (non-outline) mode.
	CenterDot           bool
	CenterDotSize       float64
	CenterDotColor      string
	CenterDotHoverColor string
	// HoverColor recolors the primary layer over interactive elements.
	HoverColor  string
	HoverEffect *HoverEffect

	Follow          FollowMode
	SpringFrequency float64
	SpringDamping   float64
}

const (
	defaultSize            = 20
	defaultColor           = "#000000"
	defaultOpacity         = 0.5
	defaultSpeed           = 0.3
	defaultOutlineWidth    = 2
	defaultCenterDotSize   = 3
	defaultHoverScale      = 1.5
	defaultSpringFrequency = 6.0
	defaultSpringDamping   = 0.9
)

// withDefaults fills unset fields. Each field defaults independently;
// the result is never partially invalid.
func withDefaults(c Config) Config {
	if c.Size == 0 {
		c.Size = defaultSize
	}
	if c.Color == "" {
		c.Color = defaultColor
	}
	if c.Opacity == 0 {
		c.Opacity = defaultOpacity
	}
	if c.Speed == 0 {
		c.Speed = defaultSpeed
	}
	if c.OutlineWidth == 0 {
		c.OutlineWidth = defaultOutlineWidth
	}
	if c.CenterDotSize == 0 {
		c.CenterDotSize = defaultCenterDotSize
	}
	if c.Follow == "" {
		c.Follow = FollowLerp
	}
	if c.SpringFrequency == 0 {
		c.SpringFrequency = defaultSpringFrequency
	}
	if c.SpringDamping == 0 {
		c.SpringDamping = defaultSpringDamping
	}
	return c
}

// hoverScale returns the size multiplier used while hovering.
func (c Config) hoverScale() float64 {
	if c.HoverEffect != nil && c.HoverEffect.Scale != 0 {
		return c.HoverEffect.Scale
	}
	return defaultHoverScale
}

// Patch is a partial configuration for Reconfigure. Nil fields carry
// the prior value forward.
type Patch struct {
	Size                *float64
	Color               *string
	Opacity             *float64
	Speed               *float64
	HideNativeCursor    *bool
	ExtraClass          *string
	InteractiveOnly     *bool
	Outline             *bool
	OutlineWidth        *float64
	CenterDot           *bool
	CenterDotSize       *float64
	CenterDotColor      *string
	CenterDotHoverColor *string
	HoverColor          *string
	// HoverEffect replaces the whole bundle when non-nil.
	HoverEffect     *HoverEffect
	Follow          *FollowMode
	SpringFrequency *float64
	SpringDamping   *float64
}

// merge applies p on top of c field-by-field and re-defaults, so a
// patch that sets a field back to zero lands on the default rather
// than an invalid blank.
func merge(c Config, p Patch) Config {
	if p.Size != nil {
		c.Size = *p.Size
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Opacity != nil {
		c.Opacity = *p.Opacity
	}
	if p.Speed != nil {
		c.Speed = *p.Speed
	}
	if p.HideNativeCursor != nil {
		c.HideNativeCursor = *p.HideNativeCursor
	}
	if p.ExtraClass != nil {
		c.ExtraClass = *p.ExtraClass
	}
	if p.InteractiveOnly != nil {
		c.InteractiveOnly = *p.InteractiveOnly
	}
	if p.Outline != nil {
		c.Outline = *p.Outline
	}
	if p.OutlineWidth != nil {
		c.OutlineWidth = *p.OutlineWidth
	}
	if p.CenterDot != nil {
		c.CenterDot = *p.CenterDot
	}
	if p.CenterDotSize != nil {
		c.CenterDotSize = *p.CenterDotSize
	}
	if p.CenterDotColor != nil {
		c.CenterDotColor = *p.CenterDotColor
	}
	if p.CenterDotHoverColor != nil {
		c.CenterDotHoverColor = *p.CenterDotHoverColor
	}
	if p.HoverColor != nil {
		c.HoverColor = *p.HoverColor
	}
	if p.HoverEffect != nil {
		he := *p.HoverEffect
		c.HoverEffect = &he
	}
	if p.Follow != nil {
		c.Follow = *p.Follow
	}
	if p.SpringFrequency != nil {
		c.SpringFrequency = *p.SpringFrequency
	}
	if p.SpringDamping != nil {
		c.SpringDamping = *p.SpringDamping
	}
	return withDefaults(c)
}

// structural reports whether moving from prev to next requires layers
// to be added or removed (as opposed to a restyle of existing layers).
func structural(prev, next Config) bool {
	return prev.Outline != next.Outline ||
		prev.CenterDot != next.CenterDot ||
		prev.HideNativeCursor != next.HideNativeCursor
}
