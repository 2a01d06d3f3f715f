package surface

import "image/color"

// CursorShape is the pointer glyph a node requests from the host,
// mirroring the shapes a computed style can report.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorPointer
	CursorText
	CursorNone
)

// Rect is an axis-aligned region in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Style is the full visual snapshot a node renders with. The engine's
// style projector overwrites it wholesale; renderers only read it.
type Style struct {
	// Size is the diameter of a circular node, in pixels.
	Size float64
	// Color is the fill (or border, in outline mode) color.
	Color color.RGBA
	Opacity float64
	// Scale multiplies Size at draw time.
	Scale float64
	// BorderWidth > 0 renders the node as a ring instead of a disc.
	BorderWidth float64
	// Z orders overlapping nodes; higher draws later.
	Z int
	// Shadow and Decoration are explicit resets against host default
	// styling; the projector always writes false.
	Shadow     bool
	Decoration bool
}

// Node is one element of a surface tree: a clickable region, a label,
// or one of the engine's own visual layers.
type Node struct {
	// Tag and Role classify the node the way markup would ("a",
	// "button", "input", "div"; role "button").
	Tag  string
	Role string
	// InputType qualifies Tag == "input" ("range", "color", "checkbox").
	InputType string
	// OnClick, when non-nil, marks the node as having a native click
	// handler attached.
	OnClick func()

	// X, Y is the node's placement (center point for circular layers).
	X, Y float64

	Style Style

	cursor    CursorShape
	cursorSet bool
	bounds    Rect
	hasBounds bool
	classes   []string

	parent   *Node
	children []*Node
	tree     *Tree
}

// NewNode returns a detached node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// SetCursor gives the node an explicit cursor shape, as a style rule
// would. Descendants without their own shape inherit it.
func (n *Node) SetCursor(s CursorShape) {
	n.cursor = s
	n.cursorSet = true
}

// ClearCursor removes the node's explicit cursor shape.
func (n *Node) ClearCursor() {
	n.cursor = CursorDefault
	n.cursorSet = false
}

// SetBounds makes the node hit-testable within r.
func (n *Node) SetBounds(r Rect) {
	n.bounds = r
	n.hasBounds = true
}

// Bounds returns the node's hit region and whether one is set.
func (n *Node) Bounds() (Rect, bool) {
	return n.bounds, n.hasBounds
}

func (n *Node) AddClass(c string) {
	if c == "" || n.HasClass(c) {
		return
	}
	n.classes = append(n.classes, c)
}

func (n *Node) HasClass(c string) bool {
	for _, have := range n.classes {
		if have == c {
			return true
		}
	}
	return false
}

// Parent returns the node's parent, nil for a detached node or the body.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in attach order (last is topmost).
func (n *Node) Children() []*Node {
	return n.children
}

// ComputedCursor resolves the cursor shape the host would report for
// this node: CursorNone while the tree globally suppresses the native
// cursor, otherwise the nearest ancestor-or-self explicit shape,
// otherwise CursorDefault.
func (n *Node) ComputedCursor() CursorShape {
	if n.tree != nil && n.tree.suppressed {
		return CursorNone
	}
	for a := n; a != nil; a = a.parent {
		if a.cursorSet {
			return a.cursor
		}
	}
	return CursorDefault
}

// ApplyStyle overwrites the node's visual snapshot.
func (n *Node) ApplyStyle(s Style) {
	n.Style = s
}
