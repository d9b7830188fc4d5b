package bubble

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// ClickContext carries click event data.
type ClickContext struct {
	Node      *Node
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
}

// nodeIDCounter is a plain counter (no atomic, the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element every widget part is built from. A single
// flat struct covers containers, rects and text.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). X, Y place the pivot inside the parent.
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Size of the node's rect in local units. Sprites fill it, text nodes
	// report their measured size here after layout.
	Width, Height float64

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Sprite fields (NodeTypeSprite)
	Color Color
	image *ebiten.Image

	// Text fields (NodeTypeText)
	Text *TextBlock

	// Hit testing
	HitShape HitShape

	// Callbacks (nil by default)
	OnClick  func(ClickContext)
	OnUpdate func(dt float64)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a solid-color rect of the given size, pivoted at its
// center.
func NewSprite(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite}
	nodeDefaults(n)
	n.Color = c
	n.SetSize(w, h)
	return n
}

// NewText creates a text node with the given content, font and size.
func NewText(name string, content string, font Font, size float64) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		Text: &TextBlock{
			Content: content,
			Font:    font,
			Size:    size,
			Color:   ColorWhite,
			dirty:   true,
		},
	}
	nodeDefaults(n)
	n.layoutText()
	return n
}

// SetSize sets Width and Height and keeps the pivot centered.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
	n.PivotX = w / 2
	n.PivotY = h / 2
}

// SetImage sets an image to draw instead of the solid color rect.
func (n *Node) SetImage(img *ebiten.Image) {
	n.image = img
}

// Image returns the custom image, or nil if not set.
func (n *Node) Image() *ebiten.Image {
	return n.image
}

// --- Activation ---

// SetActive shows or hides the node and its subtree. Inactive nodes are not
// drawn, updated or hit-tested.
func (n *Node) SetActive(active bool) {
	n.Visible = active
}

// ActiveSelf reports the node's own Visible flag.
func (n *Node) ActiveSelf() bool {
	return n.Visible
}

// ActiveInHierarchy reports whether the node and all of its ancestors are
// visible.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("bubble: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("bubble: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("bubble: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.Text = nil
	n.image = nil
	n.OnClick = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
