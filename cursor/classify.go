package cursor

import "github.com/milk9111/cursortrail/surface"

var interactiveInputTypes = map[string]bool{
	"range":    true,
	"color":    true,
	"checkbox": true,
}

// isInteractive classifies the element under the pointer as clickable.
// Two independent passes: a memoized ancestor walk over computed
// cursor shapes, then an uncached walk over the interactive selector
// set (anchors, buttons, button roles, click handlers, certain inputs).
func (e *Engine) isInteractive(n *surface.Node) bool {
	if n == nil {
		return false
	}
	body := e.tree.Body()

	for a := n; a != nil && a != body; a = a.Parent() {
		v, ok := e.cache[a]
		if !ok {
			v = e.computedPointer(a)
			e.cache[a] = v
		}
		if v {
			return true
		}
	}

	for a := n; a != nil && a != body; a = a.Parent() {
		if matchesInteractive(a) {
			return true
		}
	}
	return false
}

// computedPointer reads whether a node's computed cursor shape is the
// pointer hand. While the native cursor is globally suppressed every
// computed read reports CursorNone, so the suppression is lifted for
// the read and reapplied — otherwise the classifier would be blind for
// the whole suppression epoch.
func (e *Engine) computedPointer(n *surface.Node) bool {
	if e.tree.Suppressed() {
		e.tree.SetSuppressed(false)
		defer e.tree.SetSuppressed(true)
	}
	return n.ComputedCursor() == surface.CursorPointer
}

func matchesInteractive(n *surface.Node) bool {
	switch {
	case n.Tag == "a", n.Tag == "button":
		return true
	case n.Role == "button":
		return true
	case n.OnClick != nil:
		return true
	case n.Tag == "input" && interactiveInputTypes[n.InputType]:
		return true
	}
	return false
}
