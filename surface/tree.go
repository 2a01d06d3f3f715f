package surface

// Tree is a retained tree of nodes rooted at a body node. It stands in
// for the host's widget tree: hit testing, computed cursor shapes, and
// the global native-cursor suppression flag all live here.
type Tree struct {
	body       *Node
	suppressed bool
	removeFns  []func(*Node)
}

// NewTree returns a tree containing only a body node.
func NewTree() *Tree {
	t := &Tree{body: NewNode("body")}
	t.body.tree = t
	return t
}

// Body returns the root node. Ancestor walks stop here.
func (t *Tree) Body() *Node {
	return t.body
}

// Append attaches child under parent. A nil parent means the body.
// Appending a node that is already attached moves it.
func (t *Tree) Append(parent, child *Node) {
	if child == nil || child == t.body {
		return
	}
	if parent == nil {
		parent = t.body
	}
	if child.parent != nil {
		child.parent.children = detach(child.parent.children, child)
	}
	child.parent = parent
	child.tree = t
	parent.children = append(parent.children, child)
}

// Remove detaches n and fires every removal hook for n and each of its
// descendants, depth-first. Hooks let caches keyed by node identity
// evict immediately instead of waiting for reclamation.
func (t *Tree) Remove(n *Node) {
	if n == nil || n == t.body || n.tree != t {
		return
	}
	if n.parent != nil {
		n.parent.children = detach(n.parent.children, n)
		n.parent = nil
	}
	t.fireRemoved(n)
}

func (t *Tree) fireRemoved(n *Node) {
	for _, c := range n.children {
		t.fireRemoved(c)
	}
	n.tree = nil
	for _, fn := range t.removeFns {
		fn(n)
	}
}

// OnRemove registers fn to run for every node removed from the tree.
func (t *Tree) OnRemove(fn func(*Node)) {
	if fn != nil {
		t.removeFns = append(t.removeFns, fn)
	}
}

// SetSuppressed toggles global native-cursor suppression. While set,
// ComputedCursor reports CursorNone for every node, exactly like a
// wildcard cursor:none style rule.
func (t *Tree) SetSuppressed(b bool) {
	t.suppressed = b
}

func (t *Tree) Suppressed() bool {
	return t.suppressed
}

// HitTest returns the topmost node whose bounds contain (x, y). Later
// siblings and deeper descendants win. The body is returned when no
// other node matches: the pointer is always over something.
func (t *Tree) HitTest(x, y float64) *Node {
	if hit := hitTest(t.body, x, y); hit != nil {
		return hit
	}
	return t.body
}

func hitTest(n *Node, x, y float64) *Node {
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTest(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	if n.hasBounds && n.bounds.Contains(x, y) {
		return n
	}
	return nil
}

// FindByClass returns every attached node carrying class c, in
// depth-first order.
func (t *Tree) FindByClass(c string) []*Node {
	var found []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.HasClass(c) {
			found = append(found, n)
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(t.body)
	return found
}

func detach(nodes []*Node, n *Node) []*Node {
	for i, have := range nodes {
		if have == n {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}
