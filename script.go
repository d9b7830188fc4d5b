package bubble

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a scenario script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`

	// Widget steps.
	Text        string  `yaml:"text,omitempty"`
	Orientation string  `yaml:"orientation,omitempty"`
	TextSize    float64 `yaml:"textSize,omitempty"`
	Viewport    bool    `yaml:"viewport,omitempty"`
	World       bool    `yaml:"world,omitempty"`
	Shadow      bool    `yaml:"shadow,omitempty"`
	Stage       string  `yaml:"stage,omitempty"`

	orientation Orientation
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner plays a scenario one step per frame: injected clicks, waits,
// screenshots, and calls on a bound TextBubble. Attach it with
// Scene.SetScript.
//
// Scripts are YAML (JSON also parses):
//
//	steps:
//	  - {action: show, orientation: down, x: 0.5, y: 0.3, viewport: true, text: "Hi!"}
//	  - {action: wait, frames: 30}
//	  - {action: screenshot, label: shown}
//	  - {action: click, x: 10, y: 10}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	bubble *TextBubble
	drops  DropSource
}

// LoadScript parses and validates a scenario script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc scriptFile
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("bubble: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("bubble: parse script: no steps")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		switch st.Action {
		case "screenshot", "click", "wait", "message", "reward", "hide", "forceHide":
		case "show":
			o, err := ParseOrientation(st.Orientation)
			if err != nil {
				return nil, fmt.Errorf("bubble: parse script: step %d: %w", i, err)
			}
			st.orientation = o
		default:
			return nil, fmt.Errorf("bubble: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Bind connects widget steps to b. drops resolves reward step stages and may
// be nil when the script has none.
func (r *ScriptRunner) Bind(b *TextBubble, drops DropSource) {
	r.bubble = b
	r.drops = drops
}

// SetScript attaches a runner to the scene. Its step runs at the start of
// every Tick, before input.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Tick.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		r.widgetStep(st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) widgetStep(st scriptStep) {
	b := r.bubble
	if b == nil {
		debugf("script: %s step skipped, no bubble bound", st.Action)
		return
	}
	anchor := Vec2{st.X, st.Y}
	switch st.Action {
	case "show":
		b.Show(st.orientation, anchor, st.Text, ShowOptions{
			TextSize:     st.TextSize,
			FromViewport: st.Viewport,
			Shadow:       st.Shadow,
		})
	case "message":
		b.ShowMessageOverlay(st.Text, st.Shadow)
	case "reward":
		if r.drops == nil {
			debugf("script: reward step skipped, no drop source bound")
			return
		}
		stage, ok := r.drops.Stage(st.Stage)
		if !ok {
			debugf("script: unknown stage %q", st.Stage)
			return
		}
		b.ShowCurrencyBubble(stage, anchor, RewardOptions{FromWorld: st.World, Shadow: st.Shadow})
	case "hide":
		b.Hide()
	case "forceHide":
		b.ForceHide()
	}
}
