package main

import (
	"image/color"
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/cursortrail/cursor"
	"github.com/milk9111/cursortrail/theme"
)

const (
	panelWidth  = 220
	panelHeight = 320
)

// newPanelUI builds the control panel: reconfigure buttons and a theme
// export. Buttons use colored nine-slices and the built-in basic font,
// so no theme fonts need loading.
func newPanelUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("cursortrail", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 15, Bottom: 15, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, panelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(title)
	panel.AddChild(button("Toggle outline", func() {
		outline := !g.engine.Config().Outline
		g.engine.Reconfigure(cursor.Patch{Outline: &outline})
	}))
	panel.AddChild(button("Toggle OS cursor", func() {
		hide := !g.engine.Config().HideNativeCursor
		g.engine.Reconfigure(cursor.Patch{HideNativeCursor: &hide})
	}))
	panel.AddChild(button("Red / black", func() {
		next := "#ff0000"
		if g.engine.Config().Color == "#ff0000" {
			next = "#000000"
		}
		g.engine.Reconfigure(cursor.Patch{Color: &next})
	}))
	panel.AddChild(button("Grow / shrink", func() {
		next := 40.0
		if g.engine.Config().Size == 40 {
			next = 20
		}
		g.engine.Reconfigure(cursor.Patch{Size: &next})
	}))
	panel.AddChild(button("Restart engine", func() {
		g.engine.Stop()
		g.engine.Start()
	}))
	panel.AddChild(button("Copy theme", func() {
		if !g.clipboardOK {
			return
		}
		b, err := theme.FromConfig(g.engine.Config()).Encode()
		if err != nil {
			log.Printf("encode theme: %v", err)
			return
		}
		clipboard.Write(clipboard.FmtText, b)
	}))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
