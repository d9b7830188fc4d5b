package bubble

import (
	"errors"
	"testing"
)

func TestNewSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root() should not be nil")
	}
	if s.Camera() == nil {
		t.Fatal("Camera() should not be nil")
	}
}

func TestTickRunsOnUpdateForActiveNodes(t *testing.T) {
	s := newInputScene()
	var activeDt float64
	hiddenCalls := 0

	active := NewContainer("active")
	active.OnUpdate = func(dt float64) { activeDt = dt }
	s.Root().AddChild(active)

	parent := NewContainer("parent")
	hidden := NewContainer("hidden")
	hidden.OnUpdate = func(float64) { hiddenCalls++ }
	parent.AddChild(hidden)
	s.Root().AddChild(parent)
	parent.SetActive(false)

	if err := s.Tick(0.5); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if activeDt != 0.5 {
		t.Errorf("active dt = %v, want 0.5", activeDt)
	}
	if hiddenCalls != 0 {
		t.Errorf("hidden node updated %d times", hiddenCalls)
	}
}

func TestTickSkipsNodeDisposedByEarlierHook(t *testing.T) {
	s := newInputScene()
	victim := NewContainer("victim")
	calls := 0
	victim.OnUpdate = func(float64) { calls++ }

	killer := NewContainer("killer")
	killer.OnUpdate = func(float64) { victim.Dispose() }

	s.Root().AddChild(killer)
	s.Root().AddChild(victim)

	_ = s.Tick(0.1)
	if calls != 0 {
		t.Errorf("disposed node updated %d times", calls)
	}
}

func TestTickUpdateFuncError(t *testing.T) {
	s := newInputScene()
	want := errors.New("stop")
	order := []string{}

	n := NewContainer("n")
	n.OnUpdate = func(float64) { order = append(order, "node") }
	s.Root().AddChild(n)
	s.SetUpdateFunc(func() error {
		order = append(order, "scene")
		return want
	})

	if err := s.Tick(0.1); !errors.Is(err, want) {
		t.Errorf("Tick err = %v, want %v", err, want)
	}
	if len(order) != 2 || order[0] != "node" || order[1] != "scene" {
		t.Errorf("order = %v, want [node scene]", order)
	}
}

func TestSetScreenSizeUpdatesDefaultCamera(t *testing.T) {
	s := NewScene()
	s.SetScreenSize(1280, 720)

	w, h := s.ScreenSize()
	if w != 1280 || h != 720 {
		t.Errorf("ScreenSize = (%v, %v), want (1280, 720)", w, h)
	}
	vp := s.Camera().Viewport
	if vp.Width != 1280 || vp.Height != 720 {
		t.Errorf("viewport = %+v, want 1280x720", vp)
	}
	sx, sy := s.Camera().WorldToScreen(10, 20)
	if !approxEqual(sx, 10) || !approxEqual(sy, 20) {
		t.Errorf("default camera maps (10, 20) to (%v, %v)", sx, sy)
	}
}

func TestSetCameraStopsAutoResize(t *testing.T) {
	s := NewScene()
	cam := NewCamera(Rect{Width: 100, Height: 100})
	s.SetCamera(cam)
	s.SetScreenSize(640, 480)

	if s.Camera() != cam {
		t.Fatal("custom camera was replaced")
	}
	if cam.Viewport.Width != 100 {
		t.Errorf("custom viewport resized to %v", cam.Viewport.Width)
	}
}

func TestSetDebugModeSetsGlobal(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	if !globalDebug {
		t.Error("globalDebug should follow the scene flag")
	}
}
