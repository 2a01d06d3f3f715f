package cursor

import (
	"strings"

	"github.com/milk9111/cursortrail/surface"
)

// Marker classes stamped on every layer the engine creates. Start
// sweeps nodes carrying ClassLayer before creating fresh ones, so a
// previous instance that never cleaned up cannot leave duplicates.
const (
	ClassLayer     = "cursortrail__layer"
	ClassCircle    = "cursortrail__circle"
	ClassDot       = "cursortrail__dot"
	ClassCenterDot = "cursortrail__center-dot"
)

// Engine owns the pointer-following layers: their lifecycle, per-frame
// motion, interactive-element classification, and styling. One engine
// drives one surface tree; instances share nothing.
type Engine struct {
	tree *surface.Tree
	host Host

	cfg    Config
	colors palette

	active      bool
	autoStopped bool
	hover       bool
	inWindow    bool
	focused     bool
	// seen flips on the first qualifying pointer move after Start;
	// until then every layer renders fully transparent.
	seen bool

	// lastX/lastY persist across Stop/Start so recreated layers seed
	// from the last observed pointer instead of jumping from center.
	lastX, lastY float64
	hasLast      bool

	targetX, targetY float64
	posX, posY       float64
	dotX, dotY       float64

	springs *springPair

	primary *surface.Node
	dot     *surface.Node
	center  *surface.Node

	lastW, lastH int

	cache         map[*surface.Node]bool
	hookInstalled bool
}

// New validates and defaults cfg and returns an inactive engine. It
// touches neither the host nor the tree.
func New(tree *surface.Tree, host Host, cfg Config) *Engine {
	cfg = withDefaults(cfg)
	return &Engine{
		tree:    tree,
		host:    host,
		cfg:     cfg,
		colors:  resolvePalette(cfg, palette{}),
		focused: true,
		cache:   make(map[*surface.Node]bool),
	}
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Active reports whether the engine is running.
func (e *Engine) Active() bool {
	return e.active
}

// Start creates the layers, seeds positions, and begins reacting to
// Update ticks. It is a no-op when already active, when no rendering
// surface exists, or when the input profile classifies as mobile.
func (e *Engine) Start() {
	if e.active || e.tree == nil || e.host == nil {
		return
	}
	if e.isMobile() {
		return
	}

	e.sweepStrayLayers()
	e.createLayers()

	if !e.hookInstalled {
		e.tree.OnRemove(func(n *surface.Node) {
			delete(e.cache, n)
		})
		e.hookInstalled = true
	}

	x, y := e.seedPosition()
	e.targetX, e.targetY = x, y
	e.posX, e.posY = x, y
	e.dotX, e.dotY = x, y
	e.springs = nil

	e.lastW, e.lastH = e.host.ViewportSize()
	e.seen = false
	e.inWindow = false
	e.hover = false
	e.focused = e.host.Focused()
	e.active = true
	e.autoStopped = false

	if e.cfg.HideNativeCursor {
		e.setSuppression(true)
	}

	e.restyle()
}

// Stop tears down everything Start built: layers removed, native
// cursor restored, classifier cache dropped. Safe to call repeatedly
// and without a prior Start.
func (e *Engine) Stop() {
	e.stop(false)
}

func (e *Engine) stop(auto bool) {
	if !e.active {
		return
	}
	e.active = false
	e.autoStopped = auto

	e.removeLayers()
	if e.cfg.HideNativeCursor {
		e.setSuppression(false)
	}
	e.invalidateCache()
}

// Reconfigure merges p into the configuration. Structural changes
// (outline, center dot, native-cursor hiding) rebuild the affected
// layers; anything else only restyles. Tolerates racing a Stop: on an
// inactive engine the new configuration is stored for the next Start.
func (e *Engine) Reconfigure(p Patch) {
	old := e.cfg
	e.cfg = merge(e.cfg, p)
	e.colors = resolvePalette(e.cfg, e.colors)

	if old.Follow != e.cfg.Follow || old.SpringFrequency != e.cfg.SpringFrequency || old.SpringDamping != e.cfg.SpringDamping {
		e.springs = nil
	}

	if !e.active {
		return
	}
	if structural(old, e.cfg) {
		if old.HideNativeCursor != e.cfg.HideNativeCursor {
			e.setSuppression(e.cfg.HideNativeCursor)
		}
		e.rebuildLayers()
	}
	e.restyle()
}

// Update is the engine's frame tick, called once per host frame. While
// inactive it only watches for the input profile crossing back to
// desktop after an automatic stop; all other work is gated on active,
// so Stop synchronously cancels future side effects.
func (e *Engine) Update() {
	if e.host == nil {
		return
	}

	mobile := e.isMobile()
	if e.active && mobile {
		e.stop(true)
		return
	}
	if !e.active {
		if e.autoStopped && !mobile {
			e.Start()
		}
		if !e.active {
			return
		}
	}

	if w, h := e.host.ViewportSize(); w != e.lastW || h != e.lastH {
		e.lastW, e.lastH = w, h
	}

	if f := e.host.Focused(); f != e.focused {
		e.focused = f
		e.restyle()
	}

	x, y, inside := e.host.PointerPosition()
	switch {
	case inside:
		if !e.hasLast || x != e.lastX || y != e.lastY {
			e.pointerMoved(x, y)
		} else if !e.inWindow {
			// Re-entered without a coordinate change; still a
			// qualifying event for visibility.
			e.inWindow = true
			e.restyle()
		}
	case e.inWindow:
		e.inWindow = false
		e.restyle()
	}

	e.advance()
	e.place()
}

func (e *Engine) pointerMoved(x, y float64) {
	e.lastX, e.lastY = x, y
	e.hasLast = true
	e.targetX, e.targetY = x, y
	// The dot layer snaps to the exact pointer position on every move.
	e.dotX, e.dotY = x, y

	wasVisible := e.visible()
	e.seen = true
	e.inWindow = true

	hover := e.isInteractive(e.tree.HitTest(x, y))
	changed := hover != e.hover
	e.hover = hover
	if changed || e.visible() != wasVisible {
		e.restyle()
	}
}

// visible reports whether the layers should render at configured
// opacity rather than be hidden outright.
func (e *Engine) visible() bool {
	if !e.active || !e.seen || !e.inWindow || !e.focused {
		return false
	}
	if e.cfg.InteractiveOnly && !e.hover {
		return false
	}
	return true
}

// place writes the integrated positions onto the layers.
func (e *Engine) place() {
	if e.primary != nil {
		e.primary.X, e.primary.Y = e.posX, e.posY
	}
	if e.dot != nil {
		e.dot.X, e.dot.Y = e.dotX, e.dotY
	}
	if e.center != nil {
		e.center.X, e.center.Y = e.dotX, e.dotY
	}
}

func (e *Engine) seedPosition() (float64, float64) {
	if e.hasLast {
		return e.lastX, e.lastY
	}
	w, h := e.host.ViewportSize()
	return float64(w) / 2, float64(h) / 2
}

func (e *Engine) sweepStrayLayers() {
	for _, n := range e.tree.FindByClass(ClassLayer) {
		e.tree.Remove(n)
	}
}

func (e *Engine) createLayers() {
	e.primary = e.newLayer(ClassCircle)
	if e.cfg.Outline {
		e.dot = e.newLayer(ClassDot)
	}
	if e.cfg.CenterDot && !e.cfg.Outline {
		e.center = e.newLayer(ClassCenterDot)
	}
}

func (e *Engine) newLayer(class string) *surface.Node {
	n := surface.NewNode("div")
	n.AddClass(ClassLayer)
	n.AddClass(class)
	n.AddClass(e.cfg.ExtraClass)
	e.tree.Append(nil, n)
	return n
}

func (e *Engine) removeLayers() {
	for _, n := range []*surface.Node{e.primary, e.dot, e.center} {
		if n != nil {
			e.tree.Remove(n)
		}
	}
	e.primary, e.dot, e.center = nil, nil, nil
}

// rebuildLayers reconciles layer existence with the configuration
// without disturbing positions.
func (e *Engine) rebuildLayers() {
	wantDot := e.cfg.Outline
	wantCenter := e.cfg.CenterDot && !e.cfg.Outline

	if wantDot && e.dot == nil {
		e.dot = e.newLayer(ClassDot)
	} else if !wantDot && e.dot != nil {
		e.tree.Remove(e.dot)
		e.dot = nil
	}
	if wantCenter && e.center == nil {
		e.center = e.newLayer(ClassCenterDot)
	} else if !wantCenter && e.center != nil {
		e.tree.Remove(e.center)
		e.center = nil
	}
	// Follow-mode and speed semantics changed shape; drop any spring
	// state so it rebuilds from the new configuration.
	e.springs = nil
	e.place()
}

// setSuppression toggles the native cursor and the tree's global
// suppression together, then drops the classifier cache: computed
// cursor reads mean something different in the new suppression epoch.
func (e *Engine) setSuppression(hidden bool) {
	e.host.SetNativeCursorHidden(hidden)
	e.tree.SetSuppressed(hidden)
	e.invalidateCache()
}

func (e *Engine) invalidateCache() {
	clear(e.cache)
}

var mobilePlatforms = []string{
	"android", "ios", "iphone", "ipad", "ipod", "mobile", "webos", "blackberry", "windows phone",
}

const smallViewport = 768

// isMobile classifies the input profile: any touch capability, or a
// small viewport combined with a mobile platform signature.
func (e *Engine) isMobile() bool {
	if e.host.TouchCapable() {
		return true
	}
	w, _ := e.host.ViewportSize()
	if w >= smallViewport {
		return false
	}
	ident := strings.ToLower(e.host.Platform())
	for _, p := range mobilePlatforms {
		if strings.Contains(ident, p) {
			return true
		}
	}
	return false
}
