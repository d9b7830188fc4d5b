package bubble

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the overlay node tree, the camera
// used for world/viewport conversion, input state and the screen size.
//
// The node tree is screen-space: a node at (x, y) with no transformed
// ancestors draws at screen pixel (x, y).
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	camera        *Camera
	defaultCamera bool
	screenW       float64
	screenH       float64

	updateFunc func() error

	// Input state
	readDevices bool
	pointers    [maxPointers]pointerState
	hitBuf      []*Node
	touchBuf    []ebiten.TouchID
	touchSlots  [maxPointers]ebiten.TouchID
	touchUsed   [maxPointers]bool
	injectQueue []syntheticPointerEvent

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir   string
	screenshotQueue []string
	script          *ScriptRunner

	updateBuf []*Node
	pixel     *ebiten.Image
}

// NewScene creates a new scene with a pre-created root container and a
// default camera that maps world coordinates 1:1 onto the screen.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		camera:        NewCamera(Rect{}),
		defaultCamera: true,
		readDevices:   true,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene's primary camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetCamera replaces the primary camera. The scene stops resizing it on
// layout changes.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
	s.defaultCamera = false
}

// ScreenSize returns the current screen size in pixels.
func (s *Scene) ScreenSize() (w, h float64) {
	return s.screenW, s.screenH
}

// SetScreenSize records the screen size. Run calls it from Layout; tests call
// it directly.
func (s *Scene) SetScreenSize(w, h float64) {
	if w == s.screenW && h == s.screenH {
		return
	}
	s.screenW, s.screenH = w, h
	if s.defaultCamera {
		s.camera = NewCamera(Rect{Width: w, Height: h})
	}
}

// SetUpdateFunc registers a callback invoked once per Tick after nodes update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDeviceInput enables or disables reading the real mouse and touch
// devices. Injected events are always processed.
func (s *Scene) SetDeviceInput(enabled bool) {
	s.readDevices = enabled
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and diagnostics are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Update advances the scene by one Ebitengine tick.
func (s *Scene) Update() error {
	return s.Tick(1.0 / float64(ebiten.TPS()))
}

// Tick steps the attached script, processes input, then runs OnUpdate for
// every active node, then the scene update func.
func (s *Scene) Tick(dt float64) error {
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()

	// Collect first: hooks may reparent or deactivate nodes.
	s.updateBuf = collectUpdatable(s.root, s.updateBuf[:0])
	for _, n := range s.updateBuf {
		if n.OnUpdate != nil && !n.disposed {
			n.OnUpdate(dt)
		}
	}

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

func collectUpdatable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.OnUpdate != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectUpdatable(child, buf)
	}
	return buf
}

// Draw renders the active node tree to screen in painter order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.nrgba(1))
	}
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(ColorWhite.nrgba(1))
	}
	s.drawNode(screen, s.root, identityTransform, 1)
	s.flushScreenshots(screen)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64) {
	if !n.Visible {
		return
	}
	world := multiplyAffine(parent, computeLocalTransform(n))
	alpha := parentAlpha * n.Alpha

	switch n.Type {
	case NodeTypeSprite:
		s.drawSprite(dst, n, world, alpha)
	case NodeTypeText:
		drawText(dst, n, world, alpha)
	}

	for _, child := range n.children {
		s.drawNode(dst, child, world, alpha)
	}
}

func (s *Scene) drawSprite(dst *ebiten.Image, n *Node, world [6]float64, alpha float64) {
	img := n.image
	sx, sy := n.Width, n.Height
	if img != nil {
		b := img.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			return
		}
		sx /= float64(b.Dx())
		sy /= float64(b.Dy())
	} else {
		img = s.pixel
	}
	if sx == 0 || sy == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	var g ebiten.GeoM
	g.SetElement(0, 0, world[0])
	g.SetElement(1, 0, world[1])
	g.SetElement(0, 1, world[2])
	g.SetElement(1, 1, world[3])
	g.SetElement(0, 2, world[4])
	g.SetElement(1, 2, world[5])
	op.GeoM.Concat(g)
	op.ColorScale.ScaleWithColor(n.Color.nrgba(alpha))
	dst.DrawImage(img, op)
}
