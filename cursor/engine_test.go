package cursor

import (
	"testing"

	"github.com/milk9111/cursortrail/surface"
)

// fakeHost is a scriptable Host for engine tests; no display needed.
type fakeHost struct {
	x, y     float64
	inside   bool
	focused  bool
	w, h     int
	touch    bool
	platform string

	hiddenSet []bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		focused:  true,
		w:        1280,
		h:        720,
		platform: "linux",
	}
}

func (h *fakeHost) PointerPosition() (float64, float64, bool) { return h.x, h.y, h.inside }
func (h *fakeHost) Focused() bool                             { return h.focused }
func (h *fakeHost) ViewportSize() (int, int)                  { return h.w, h.h }
func (h *fakeHost) TouchCapable() bool                        { return h.touch }
func (h *fakeHost) Platform() string                          { return h.platform }
func (h *fakeHost) SetNativeCursorHidden(hidden bool)         { h.hiddenSet = append(h.hiddenSet, hidden) }

func (h *fakeHost) moveTo(x, y float64) {
	h.x, h.y = x, y
	h.inside = true
}

func TestStartIsIdempotent(t *testing.T) {
	tree := surface.NewTree()
	e := New(tree, newFakeHost(), Config{})

	for i := 0; i < 3; i++ {
		e.Start()
	}

	if got := len(tree.FindByClass(ClassCircle)); got != 1 {
		t.Fatalf("expected exactly 1 primary layer after repeated Start, got %d", got)
	}
}

func TestStartSweepsStrayLayers(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()

	stale := New(tree, host, Config{})
	stale.Start()

	fresh := New(tree, host, Config{})
	fresh.Start()

	if got := len(tree.FindByClass(ClassCircle)); got != 1 {
		t.Fatalf("expected stray layers swept, got %d primary layers", got)
	}
}

func TestStopRemovesAllLayers(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"filled", Config{}},
		{"outline", Config{Outline: true}},
		{"center_dot", Config{CenterDot: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := surface.NewTree()
			e := New(tree, newFakeHost(), c.cfg)
			e.Start()
			if len(tree.FindByClass(ClassLayer)) == 0 {
				t.Fatalf("expected layers after Start")
			}
			e.Stop()
			if got := len(tree.FindByClass(ClassLayer)); got != 0 {
				t.Fatalf("expected no layers after Stop, got %d", got)
			}
			// Safe to call again.
			e.Stop()
		})
	}
}

func TestStopWithoutStart(t *testing.T) {
	e := New(surface.NewTree(), newFakeHost(), Config{})
	e.Stop()
	e.Stop()
	if e.Active() {
		t.Fatalf("engine should not be active")
	}
}

func TestStopCancelsTicks(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	e := New(tree, host, Config{})
	e.Start()
	host.moveTo(100, 100)
	e.Update()
	e.Stop()

	host.moveTo(200, 200)
	e.Update()

	if e.Active() {
		t.Fatalf("Update revived a stopped engine")
	}
	if got := len(tree.FindByClass(ClassLayer)); got != 0 {
		t.Fatalf("tick after Stop produced layers: %d", got)
	}
}

func TestTouchEnvironmentStartNoops(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	host.touch = true

	e := New(tree, host, Config{})
	e.Start()

	if e.Active() {
		t.Fatalf("Start should no-op on a touch-capable host")
	}
	if got := len(tree.FindByClass(ClassLayer)); got != 0 {
		t.Fatalf("expected no layers on touch host, got %d", got)
	}
}

func TestMobileSmallViewportSignature(t *testing.T) {
	cases := []struct {
		name     string
		w        int
		platform string
		mobile   bool
	}{
		{"small_android", 400, "android", true},
		{"small_desktop", 400, "linux", false},
		{"large_android", 1280, "android", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			host := newFakeHost()
			host.w = c.w
			host.platform = c.platform
			e := New(surface.NewTree(), host, Config{})
			e.Start()
			if e.Active() == c.mobile {
				t.Fatalf("platform %q width %d: active = %v", c.platform, c.w, e.Active())
			}
		})
	}
}

func TestProfileCrossingStopsAndRestarts(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	e := New(tree, host, Config{})
	e.Start()
	if !e.Active() {
		t.Fatalf("expected engine active on desktop profile")
	}

	host.touch = true
	e.Update()
	if e.Active() {
		t.Fatalf("expected auto-stop when profile turns mobile")
	}
	if got := len(tree.FindByClass(ClassLayer)); got != 0 {
		t.Fatalf("expected layers removed on auto-stop, got %d", got)
	}

	host.touch = false
	e.Update()
	if !e.Active() {
		t.Fatalf("expected auto-restart when profile returns to desktop")
	}
}

func TestExplicitStopSurvivesProfileFlapping(t *testing.T) {
	host := newFakeHost()
	e := New(surface.NewTree(), host, Config{})
	e.Start()
	e.Stop()

	host.touch = true
	e.Update()
	host.touch = false
	e.Update()

	if e.Active() {
		t.Fatalf("explicitly stopped engine must not self-start")
	}
}

func TestVisibilityRevealsOnFirstMove(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	e := New(tree, host, Config{})
	e.Start()

	primary := tree.FindByClass(ClassCircle)[0]
	if got := primary.Style.Opacity; got != 0 {
		t.Fatalf("opacity before first move = %v, want 0", got)
	}
	if got := primary.Style.Size; got != 20 {
		t.Fatalf("default size = %v, want 20", got)
	}

	host.moveTo(300, 300)
	e.Update()

	if got := primary.Style.Opacity; got != 0.5 {
		t.Fatalf("opacity after first move = %v, want 0.5", got)
	}
}

func TestVisibilityHidesOnLeaveAndBlur(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	e := New(tree, host, Config{})
	e.Start()
	host.moveTo(300, 300)
	e.Update()

	primary := tree.FindByClass(ClassCircle)[0]

	host.inside = false
	e.Update()
	if got := primary.Style.Opacity; got != 0 {
		t.Fatalf("opacity after pointer left window = %v, want 0", got)
	}

	host.moveTo(310, 300)
	e.Update()
	if got := primary.Style.Opacity; got != 0.5 {
		t.Fatalf("opacity after re-entry move = %v, want 0.5", got)
	}

	host.focused = false
	e.Update()
	if got := primary.Style.Opacity; got != 0 {
		t.Fatalf("opacity after blur = %v, want 0", got)
	}

	host.focused = true
	e.Update()
	if got := primary.Style.Opacity; got != 0.5 {
		t.Fatalf("opacity after focus regained = %v, want 0.5", got)
	}
}

func TestReconfigureRestyles(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	e := New(tree, host, Config{})
	e.Start()
	host.moveTo(300, 300)
	e.Update()

	size := 40.0
	clr := "#ff0000"
	e.Reconfigure(Patch{Size: &size, Color: &clr})

	primary := tree.FindByClass(ClassCircle)[0]
	if got := primary.Style.Size; got != 40 {
		t.Fatalf("size after reconfigure = %v, want 40", got)
	}
	c := primary.Style.Color
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("color after reconfigure = %v, want rgb(255,0,0)", c)
	}
}

func TestReconfigureStructuralRebuildsLayers(t *testing.T) {
	tree := surface.NewTree()
	e := New(tree, newFakeHost(), Config{})
	e.Start()

	if got := len(tree.FindByClass(ClassDot)); got != 0 {
		t.Fatalf("filled mode should have no dot layer, got %d", got)
	}

	outline := true
	e.Reconfigure(Patch{Outline: &outline})
	if got := len(tree.FindByClass(ClassDot)); got != 1 {
		t.Fatalf("outline mode should have 1 dot layer, got %d", got)
	}

	outline = false
	e.Reconfigure(Patch{Outline: &outline})
	if got := len(tree.FindByClass(ClassDot)); got != 0 {
		t.Fatalf("dot layer should be removed when outline turns off, got %d", got)
	}
}

func TestReconfigureOnStoppedEngine(t *testing.T) {
	e := New(surface.NewTree(), newFakeHost(), Config{})
	size := 40.0
	e.Reconfigure(Patch{Size: &size})
	if got := e.Config().Size; got != 40 {
		t.Fatalf("config size = %v, want 40 stored while inactive", got)
	}
}

func TestHideNativeCursorToggle(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	e := New(tree, host, Config{HideNativeCursor: true})
	e.Start()

	if !tree.Suppressed() {
		t.Fatalf("tree should be suppressed while native cursor hidden")
	}
	if len(host.hiddenSet) == 0 || !host.hiddenSet[0] {
		t.Fatalf("host should have been told to hide the native cursor")
	}

	e.Stop()
	if tree.Suppressed() {
		t.Fatalf("suppression should be lifted on Stop")
	}
	if last := host.hiddenSet[len(host.hiddenSet)-1]; last {
		t.Fatalf("native cursor should be restored on Stop")
	}
}

func TestSeedsFromLastPointerAcrossRestart(t *testing.T) {
	tree := surface.NewTree()
	host := newFakeHost()
	e := New(tree, host, Config{})
	e.Start()
	host.moveTo(222, 111)
	e.Update()
	e.Stop()

	e.Start()
	if e.posX != 222 || e.posY != 111 {
		t.Fatalf("restart seeded at (%v, %v), want last pointer (222, 111)", e.posX, e.posY)
	}
}
