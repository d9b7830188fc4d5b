package bubble

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewContainer("scale")

	g := TweenScale(node, 2.0, 3.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.ScaleX-2.0) > 0.01 {
		t.Errorf("ScaleX = %f, want ~2.0", node.ScaleX)
	}
	if math.Abs(node.ScaleY-3.0) > 0.01 {
		t.Errorf("ScaleY = %f, want ~3.0", node.ScaleY)
	}
}

func TestTweenColorAlphaLeavesNodeAlpha(t *testing.T) {
	node := NewSprite("shade", 10, 10, Color{A: 0})

	g := TweenColorAlpha(node, 0.5, 0.5, ease.Linear)
	g.Update(0.5)

	if math.Abs(node.Color.A-0.5) > 0.01 {
		t.Errorf("Color.A = %f, want ~0.5", node.Color.A)
	}
	if node.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", node.Alpha)
	}
}

func TestTweenGroupOnCompleteRunsOnce(t *testing.T) {
	node := NewContainer("complete")
	g := TweenScale(node, 0, 0, 0.5, ease.Linear)

	calls := 0
	g.OnComplete = func() { calls++ }

	g.Update(0.25)
	if calls != 0 {
		t.Fatalf("OnComplete ran before the end (%d calls)", calls)
	}
	g.Update(0.25)
	g.Update(0.25)
	if calls != 1 {
		t.Errorf("OnComplete calls = %d, want 1", calls)
	}
}

func TestTweenGroupCancel(t *testing.T) {
	node := NewContainer("cancel")
	g := TweenScale(node, 0, 0, 1.0, ease.Linear)

	completed := false
	g.OnComplete = func() { completed = true }

	g.Update(0.5)
	sx := node.ScaleX
	g.Cancel()
	g.Update(1.0)

	if completed {
		t.Error("cancelled group ran OnComplete")
	}
	if !g.Done || !g.Cancelled() {
		t.Errorf("Done = %v, Cancelled = %v, want both true", g.Done, g.Cancelled())
	}
	if node.ScaleX != sx {
		t.Errorf("ScaleX moved after cancel: %f -> %f", sx, node.ScaleX)
	}
}

func TestTweenGroupCancelNilAndFinished(t *testing.T) {
	var g *TweenGroup
	g.Cancel() // must not panic

	node := NewContainer("finished")
	g = TweenScale(node, 2, 2, 0.25, ease.Linear)
	g.Update(0.25)
	g.Cancel()
	if g.Cancelled() {
		t.Error("finished group should not report Cancelled")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("disposed")
	g := TweenScale(node, 3, 3, 1.0, ease.Linear)

	completed := false
	g.OnComplete = func() { completed = true }

	node.Dispose()
	g.Update(1.0)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if completed {
		t.Error("OnComplete should not run for a disposed target")
	}
	if node.ScaleX != 1 {
		t.Errorf("ScaleX changed to %f on disposed node", node.ScaleX)
	}
}

func TestTweenSetPrunesFinished(t *testing.T) {
	var s tweenSet
	a := NewContainer("a")
	b := NewContainer("b")
	s.add(TweenScale(a, 2, 2, 0.25, ease.Linear))
	s.add(TweenScale(b, 2, 2, 0.5, ease.Linear))

	s.update(0.25)
	if s.len() != 1 {
		t.Fatalf("len = %d after first finishes, want 1", s.len())
	}
	s.update(0.25)
	if s.len() != 0 {
		t.Errorf("len = %d after both finish, want 0", s.len())
	}
}

func TestTweenSetCancelAllFromCallback(t *testing.T) {
	var s tweenSet
	a := NewContainer("a")
	b := NewContainer("b")

	first := s.add(TweenScale(a, 2, 2, 0.25, ease.Linear))
	second := s.add(TweenScale(b, 2, 2, 0.25, ease.Linear))

	secondRan := false
	first.OnComplete = func() { s.cancelAll() }
	second.OnComplete = func() { secondRan = true }

	s.update(0.25)

	if secondRan {
		t.Error("group cancelled by a sibling's callback still completed")
	}
	if s.len() != 0 {
		t.Errorf("len = %d, want 0", s.len())
	}
}

func TestTweenSetKeepsGroupsAddedFromCallback(t *testing.T) {
	var s tweenSet
	a := NewContainer("a")

	first := s.add(TweenScale(a, 2, 2, 0.25, ease.Linear))
	var follow *TweenGroup
	first.OnComplete = func() {
		follow = s.add(TweenScale(a, 1, 1, 0.25, ease.Linear))
	}

	s.update(0.25)
	if s.len() != 1 {
		t.Fatalf("len = %d, want the follow-up group", s.len())
	}
	s.update(0.25)
	if !follow.Done {
		t.Error("follow-up group did not run")
	}
}
