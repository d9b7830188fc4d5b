package bubble

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxPointers bounds tracked pointers: 0 = mouse, 1..9 = touch.
const maxPointers = 10

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitAll accepts every point. Used by full-screen blockers.
type HitAll struct{}

// Contains always reports true.
func (HitAll) Contains(x, y float64) bool { return true }

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	hitNode *Node
	button  MouseButton
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's Width x Height rect.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes to buf. Invisible subtrees are skipped.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable && (n.HitShape != nil || n.OnClick != nil) {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		m := n.worldTransform()
		if isSingular(m) {
			// Scaled to nothing, e.g. the first frame of a scale-in.
			continue
		}
		lx, ly := transformPoint(invertAffine(m), worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Tick. The node tree is a screen-space
// overlay, so pointer coordinates are used as-is. Injected events take
// priority over real devices for the frame they are consumed on.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.readDevices {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9). Slots are assigned
// on press and freed on release.
func (s *Scene) processTouchPointers() {
	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		slot := s.freeTouchSlot()
		if slot < 0 {
			continue
		}
		s.touchSlots[slot] = id
		s.touchUsed[slot] = true
		x, y := ebiten.TouchPosition(id)
		s.processPointer(slot, float64(x), float64(y), true, MouseButtonLeft)
	}

	for slot := 1; slot < maxPointers; slot++ {
		if !s.touchUsed[slot] {
			continue
		}
		id := s.touchSlots[slot]
		if !inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.processPointer(slot, float64(x), float64(y), false, MouseButtonLeft)
		s.touchUsed[slot] = false
	}
}

func (s *Scene) freeTouchSlot() int {
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for a single pointer.
// A click fires when press and release land on the same node.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = s.hitTest(wx, wy)
	case !pressed && ps.down:
		target := s.hitTest(wx, wy)
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, pointerID, wx, wy, ps.button)
		}
		ps.down = false
		ps.hitNode = nil
	}
}

func (s *Scene) fireClick(node *Node, pointerID int, wx, wy float64, button MouseButton) {
	if node.OnClick == nil {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	node.OnClick(ClickContext{
		Node:      node,
		GlobalX:   wx,
		GlobalY:   wy,
		LocalX:    lx,
		LocalY:    ly,
		Button:    button,
		PointerID: pointerID,
	})
}
