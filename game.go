package main

import (
	"errors"
	"image/color"
	"log"
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cursortrail/cursor"
	"github.com/milk9111/cursortrail/surface"
	"github.com/milk9111/cursortrail/theme"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// region is a demo rectangle mirrored into the surface tree so the
// engine can classify it.
type region struct {
	node  *surface.Node
	label string
	fill  color.RGBA
}

type Game struct {
	tree   *surface.Tree
	engine *cursor.Engine

	ui          *ebitenui.UI
	clipboardOK bool

	watcher *theme.Watcher

	regions []*region
	clicks  int
}

func NewGame(themePath string, outline bool) (*Game, error) {
	g := &Game{
		tree: surface.NewTree(),
	}
	g.buildRegions()

	th := theme.Default()
	if themePath != "" {
		loaded, err := theme.Load(themePath)
		switch {
		case err == nil:
			th = loaded
		case errors.Is(err, theme.ErrNoTheme):
			log.Printf("theme %s not found, using defaults", themePath)
		default:
			return nil, err
		}
	}

	cfg := th.Config()
	if outline {
		cfg.Outline = true
	}

	g.engine = cursor.New(g.tree, cursor.NewEbitenHost(), cfg)
	g.engine.Start()

	if themePath != "" {
		w, err := theme.NewWatcher(themePath)
		if err != nil {
			log.Printf("theme watcher: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = newPanelUI(g)
	return g, nil
}

// Close releases the theme watcher. The engine's own teardown happens
// through Stop, which the window close path does not need.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) buildRegions() {
	add := func(tag string, bounds surface.Rect, label string, fill color.RGBA, shape func(*surface.Node)) *region {
		n := surface.NewNode(tag)
		n.SetBounds(bounds)
		if shape != nil {
			shape(n)
		}
		g.tree.Append(nil, n)
		r := &region{node: n, label: label, fill: fill}
		g.regions = append(g.regions, r)
		return r
	}

	add("a", surface.Rect{X: 80, Y: 120, W: 220, H: 60}, "link", colornames.Steelblue, nil)
	add("button", surface.Rect{X: 80, Y: 220, W: 220, H: 60}, "button", colornames.Seagreen, func(n *surface.Node) {
		n.OnClick = func() { g.clicks++ }
	})
	add("div", surface.Rect{X: 80, Y: 320, W: 220, H: 60}, "role=button", colornames.Darkorange, func(n *surface.Node) {
		n.Role = "button"
	})
	add("div", surface.Rect{X: 80, Y: 420, W: 220, H: 60}, "cursor: pointer", colornames.Mediumpurple, func(n *surface.Node) {
		n.SetCursor(surface.CursorPointer)
	})
	add("input", surface.Rect{X: 80, Y: 520, W: 220, H: 60}, "checkbox", colornames.Goldenrod, func(n *surface.Node) {
		n.InputType = "checkbox"
	})
	add("div", surface.Rect{X: 380, Y: 120, W: 220, H: 460}, "plain", colornames.Dimgray, nil)

	// The control panel area reports a pointer cursor so the overlay
	// reacts to it like any other clickable surface.
	panel := surface.NewNode("div")
	panel.SetBounds(surface.Rect{X: baseWidth - panelWidth, Y: 0, W: panelWidth, H: panelHeight})
	panel.SetCursor(surface.CursorPointer)
	g.tree.Append(nil, panel)
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case path, ok := <-g.watcher.Events:
			if ok {
				g.reloadTheme(path)
			}
		default:
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.dispatchClick(float64(mx), float64(my))
	}

	g.ui.Update()
	g.engine.Update()
	return nil
}

func (g *Game) reloadTheme(path string) {
	th, err := theme.Load(path)
	if err != nil {
		log.Printf("reload theme: %v", err)
		return
	}
	g.engine.Reconfigure(th.Patch())
}

// dispatchClick runs the nearest ancestor click handler under (x, y).
func (g *Game) dispatchClick(x, y float64) {
	for n := g.tree.HitTest(x, y); n != nil; n = n.Parent() {
		if n.OnClick != nil {
			n.OnClick()
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Whitesmoke)

	for _, r := range g.regions {
		b, ok := r.node.Bounds()
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), r.fill, false)
		ebitenutil.DebugPrintAt(screen, r.label, int(b.X)+8, int(b.Y)+8)
	}

	ebitenutil.DebugPrintAt(screen, "clicks: "+strconv.Itoa(g.clicks), 80, 80)

	g.ui.Draw(screen)

	// The overlay draws last so the trailing circle sits above
	// everything, including the panel.
	g.engine.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
