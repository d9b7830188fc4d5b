package bubble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via TweenScale or TweenColorAlpha and call Update(dt) each
// frame.
//
// OnComplete runs once, on the frame the last tween finishes. A cancelled
// group never runs it. If the target node is disposed, the group stops
// without completing.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node

	OnComplete func()
	Done       bool
	cancelled  bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		g.cancelled = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && g.OnComplete != nil {
		fn := g.OnComplete
		g.OnComplete = nil
		fn()
	}
}

// Cancel stops the group where it is. Fields keep their current values and
// OnComplete is dropped. Safe to call on a nil or finished group.
func (g *TweenGroup) Cancel() {
	if g == nil || g.Done {
		return
	}
	g.Done = true
	g.cancelled = true
	g.OnComplete = nil
}

// Cancelled reports whether the group was stopped before finishing.
func (g *TweenGroup) Cancelled() bool {
	return g.cancelled
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenColorAlpha animates only node.Color.A, leaving node.Alpha (and so the
// subtree) alone. Used for image fades.
func TweenColorAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Color.A), float32(to), duration, fn)
	g.fields[0] = &node.Color.A
	return g
}

// tweenSet is a small owner for live groups. Finished groups are pruned on
// each update.
type tweenSet struct {
	groups   []*TweenGroup
	inFlight []*TweenGroup
}

func (s *tweenSet) add(g *TweenGroup) *TweenGroup {
	s.groups = append(s.groups, g)
	return g
}

func (s *tweenSet) update(dt float32) {
	// Completion callbacks may add or cancel groups, so walk a snapshot.
	live := s.groups
	s.groups = nil
	s.inFlight = live
	for _, g := range live {
		g.Update(dt)
	}
	s.inFlight = nil

	added := s.groups
	s.groups = live[:0]
	for _, g := range live {
		if !g.Done {
			s.groups = append(s.groups, g)
		}
	}
	for _, g := range added {
		if !g.Done {
			s.groups = append(s.groups, g)
		}
	}
}

func (s *tweenSet) cancelAll() {
	for _, g := range s.inFlight {
		g.Cancel()
	}
	for _, g := range s.groups {
		g.Cancel()
	}
	s.groups = s.groups[:0]
}

func (s *tweenSet) len() int {
	return len(s.groups)
}
