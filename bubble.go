package bubble

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Presentation is one of the widget's mutually exclusive visual modes.
type Presentation uint8

const (
	PresentationNone    Presentation = iota // nothing shown
	PresentationText                        // text bubble with arrow
	PresentationReward                      // reward breakdown
	PresentationMessage                     // transient message overlay
)

func (p Presentation) String() string {
	switch p {
	case PresentationNone:
		return "None"
	case PresentationText:
		return "Text"
	case PresentationReward:
		return "Reward"
	case PresentationMessage:
		return "Message"
	default:
		return fmt.Sprintf("Presentation(%d)", uint8(p))
	}
}

// Phase is where the current presentation is in its show/hide cycle.
type Phase uint8

const (
	PhaseIdle    Phase = iota // no presentation
	PhaseShowing              // scale-in running
	PhaseShown                // fully visible
	PhaseHiding               // scale-out running
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseShowing:
		return "Showing"
	case PhaseShown:
		return "Shown"
	case PhaseHiding:
		return "Hiding"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// ShowOptions tunes a text bubble.
type ShowOptions struct {
	// TextSize is the label size; zero uses Config.DefaultTextSize.
	TextSize float64
	// Parent, when set, receives the bubble instead of the widget's default
	// container until the bubble hides.
	Parent *Node
	// Offset is added to the anchor after conversion to screen space.
	Offset Vec2
	// FromViewport treats the anchor as a normalized viewport point.
	FromViewport bool
	// Shadow dims the screen behind the bubble.
	Shadow bool
}

// RewardOptions tunes a reward bubble.
type RewardOptions struct {
	Offset Vec2
	// FromWorld treats the anchor as a world point seen by the scene camera.
	FromWorld bool
	Shadow    bool
}

const messagePadding = 40

// TextBubble is the speech-bubble overlay. It shows one presentation at a
// time and routes close requests to whichever is current. Create it with
// NewTextBubble and hand the pointer to the code that needs it.
type TextBubble struct {
	scene  *Scene
	cfg    Config
	easeFn ease.TweenFunc

	root          *Node
	shadow        *Node
	closeButton   *Node
	defaultParent *Node

	textBubble  *Node
	body        *Node
	bodyBg      *Node
	bubbleLabel *Node
	arrow       *Node

	rewardBubble *Node
	rewardBg     *Node
	rewardRows   []*rewardRow

	messageGroup *Node
	messageBg    *Node
	messageLabel *Node

	current     *Node
	kind        Presentation
	phase       Phase
	tweens      tweenSet
	timers      Scheduler
	autoDismiss *Timer
}

// NewTextBubble builds the widget under scene's root. It starts inactive.
// cfg is validated; an invalid config panics, since it is a programming
// error rather than a runtime condition. Use ParseConfig for untrusted input.
func NewTextBubble(scene *Scene, font Font, cfg Config) *TextBubble {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	easeFn, _ := cfg.EaseFunc()

	b := &TextBubble{scene: scene, cfg: cfg, easeFn: easeFn}

	b.root = NewContainer("textBubbleWidget")
	b.root.OnUpdate = b.update

	b.shadow = NewSprite("shadow", 0, 0, ColorBlack)
	b.shadow.Color.A = 0
	b.closeButton = NewContainer("closeButton")
	b.closeButton.Interactable = true
	b.closeButton.HitShape = HitAll{}
	b.closeButton.OnClick = func(ClickContext) { b.onCloseButtonClick() }
	b.defaultParent = NewContainer("bubbles")

	b.root.AddChild(b.shadow)
	b.root.AddChild(b.closeButton)
	b.root.AddChild(b.defaultParent)

	// Text bubble: arrow stays on the anchor, the body slides to stay on screen.
	b.textBubble = NewContainer("textBubble")
	b.body = NewContainer("basicBubble")
	b.bodyBg = NewSprite("background", 0, 0, ColorWhite)
	b.bubbleLabel = NewText("label", "", font, cfg.DefaultTextSize)
	b.bubbleLabel.Text.Color = Color{R: 0.12, G: 0.12, B: 0.16, A: 1}
	b.arrow = NewContainer("arrow")
	notch := NewSprite("notch", cfg.ArrowSize, cfg.ArrowSize, ColorWhite)
	notch.Rotation = math.Pi / 4
	b.arrow.AddChild(notch)
	half := cfg.ArrowSize / 2
	b.arrow.HitShape = HitRect{X: -half, Y: -half, Width: cfg.ArrowSize, Height: cfg.ArrowSize}
	b.body.AddChild(b.bodyBg)
	b.body.AddChild(b.bubbleLabel)
	b.textBubble.AddChild(b.arrow)
	b.textBubble.AddChild(b.body)

	// Reward bubble.
	b.rewardBubble = NewContainer("rewardBubblePoint")
	rowHeight := cfg.RewardTextSize * 1.4
	height := float64(cfg.RewardRows)*rowHeight + 2*rewardPadding
	b.rewardBubble.SetSize(rewardBubbleWidth, height)
	b.rewardBg = NewSprite("background", rewardBubbleWidth, height, Color{R: 0.15, G: 0.17, B: 0.22, A: 0.95})
	b.rewardBg.SetPosition(rewardBubbleWidth/2, height/2)
	b.rewardBubble.AddChild(b.rewardBg)
	for i := 0; i < cfg.RewardRows; i++ {
		row := newRewardRow(i, font, cfg.RewardTextSize, rowHeight)
		row.node.SetPosition(rewardBubbleWidth/2, rewardPadding+rowHeight*(float64(i)+0.5))
		row.node.SetActive(false)
		b.rewardRows = append(b.rewardRows, row)
		b.rewardBubble.AddChild(row.node)
	}

	// Message overlay.
	b.messageGroup = NewContainer("messageGroup")
	b.messageBg = NewSprite("background", 0, 0, Color{R: 0.05, G: 0.05, B: 0.08, A: 0.85})
	b.messageLabel = NewText("message", "", font, cfg.MessageTextSize)
	b.messageGroup.AddChild(b.messageBg)
	b.messageGroup.AddChild(b.messageLabel)

	for _, n := range []*Node{b.textBubble, b.rewardBubble, b.messageGroup} {
		n.SetActive(false)
		b.defaultParent.AddChild(n)
	}

	// Taps on a bubble land here and stop; the close button only sees taps
	// outside every bubble.
	for _, n := range []*Node{b.bodyBg, b.arrow, b.rewardBg, b.messageBg} {
		n.Interactable = true
		n.OnClick = func(ClickContext) {}
	}

	b.root.SetActive(false)
	b.shadow.SetActive(false)
	scene.Root().AddChild(b.root)
	return b
}

// Root returns the widget's root node.
func (b *TextBubble) Root() *Node {
	return b.root
}

// Current returns the active presentation.
func (b *TextBubble) Current() Presentation {
	return b.kind
}

// Phase returns where the active presentation is in its show/hide cycle.
func (b *TextBubble) Phase() Phase {
	return b.phase
}

// update advances the widget's tweens and timers. It runs only while the
// widget is active.
func (b *TextBubble) update(dt float64) {
	b.tweens.update(float32(dt))
	b.timers.Update(dt)
}

// Show displays the text bubble with message, pointing at anchor. An unknown
// orientation skips the arrow and clamping update (logged in debug mode).
// Clamping also waits for a known screen width, so a bubble shown before the
// first Layout stays centered on its anchor.
func (b *TextBubble) Show(o Orientation, anchor Vec2, message string, opts ShowOptions) {
	size := opts.TextSize
	if size <= 0 {
		size = b.cfg.DefaultTextSize
	}

	b.present(b.textBubble, PresentationText, opts.Shadow)
	b.setText(message, size)

	screenW, _ := b.scene.ScreenSize()
	anchorX := anchor.X
	if !opts.FromViewport && screenW > 0 {
		anchorX = anchor.X / screenW
	}

	placement, err := ArrowPlacementFor(o, b.textBubble.Height)
	if err != nil {
		debugError(err)
	} else {
		b.arrow.SetPosition(b.textBubble.Width/2, b.textBubble.Height/2+placement.Y)
		b.arrow.SetRotation(placement.Rotation)
		if screenW > 0 {
			b.changeBubblePosition(anchorX, screenW)
		}
	}

	if opts.Parent != nil {
		opts.Parent.AddChild(b.textBubble)
	}

	pos := anchor
	if opts.FromViewport {
		pos.X, pos.Y = b.scene.Camera().ViewportToScreen(anchor.X, anchor.Y)
	}
	pos = pos.Add(opts.Offset)
	b.textBubble.SetWorldPosition(pos.X, pos.Y)
}

// changeBubblePosition slides the body horizontally so the bubble stays on
// screen.
func (b *TextBubble) changeBubblePosition(anchorX, screenW float64) {
	off := ClampOffset(anchorX, b.textBubble.Width, screenW, b.cfg.BubbleLeftMargin)
	b.body.X = b.textBubble.Width/2 + off
}

// setText sets the label and resizes the bubble around it.
func (b *TextBubble) setText(message string, size float64) {
	b.bubbleLabel.SetText(message, size)
	w := b.bubbleLabel.Width + b.cfg.TextPadding
	h := b.bubbleLabel.Height + b.cfg.TextPadding

	b.textBubble.SetSize(w, h)
	b.body.SetSize(w, h)
	b.body.SetPosition(w/2, h/2)
	b.bodyBg.SetSize(w, h)
	b.bodyBg.SetPosition(w/2, h/2)
	b.bubbleLabel.SetPosition(w/2, h/2)
}

// ShowCurrencyBubble displays the reward breakdown for stage at anchor.
func (b *TextBubble) ShowCurrencyBubble(stage *StageData, anchor Vec2, opts RewardOptions) {
	b.present(b.rewardBubble, PresentationReward, opts.Shadow)

	pos := anchor
	if opts.FromWorld {
		pos.X, pos.Y = b.scene.Camera().WorldToScreen(anchor.X, anchor.Y)
	}
	pos = pos.Add(opts.Offset)
	b.rewardBubble.SetWorldPosition(pos.X, pos.Y)

	refreshRewardRows(b.rewardRows, stage)
}

// ShowMessageOverlay displays message across the middle of the screen. It
// closes itself after Config.MessageOverlayDelay unless something else
// happens first.
func (b *TextBubble) ShowMessageOverlay(message string, shadow bool) {
	b.present(b.messageGroup, PresentationMessage, shadow)

	b.messageLabel.SetText(message, b.cfg.MessageTextSize)
	screenW, screenH := b.scene.ScreenSize()
	h := b.messageLabel.Height + messagePadding
	b.messageGroup.SetSize(screenW, h)
	b.messageBg.SetSize(screenW, h)
	b.messageBg.SetPosition(screenW/2, h/2)
	b.messageLabel.SetPosition(screenW/2, h/2)
	b.messageGroup.SetWorldPosition(screenW/2, screenH/2)

	b.autoDismiss = b.timers.After(b.cfg.MessageOverlayDelay, func() {
		b.autoDismiss = nil
		if b.current == b.messageGroup && b.phase == PhaseShown {
			b.onCloseButtonClick()
		}
	})
}

// present makes target the current presentation and scales it in. Anything
// still shown or hiding is reset first, so a new request always wins.
func (b *TextBubble) present(target *Node, kind Presentation, shadow bool) {
	b.cancelTransitions()
	if b.current != nil {
		debugf("%v preempts %v (%v)", kind, b.kind, b.phase)
		b.reset(b.current)
	}

	b.root.SetActive(true)
	target.SetActive(true)
	b.current = target
	b.kind = kind
	b.phase = PhaseShowing

	duration := float32(b.cfg.AnimationDuration)
	if shadow {
		w, h := b.scene.ScreenSize()
		b.shadow.SetSize(w, h)
		b.shadow.SetPosition(w/2, h/2)
		if !b.shadow.Visible {
			b.shadow.Color.A = 0
		}
		b.shadow.SetActive(true)
		b.tweens.add(TweenColorAlpha(b.shadow, b.cfg.ShadowAlpha, duration, b.easeFn))
	} else {
		b.shadow.SetActive(false)
		b.shadow.Color.A = 0
	}

	target.SetScale(0, 0)
	g := b.tweens.add(TweenScale(target, 1, 1, duration, b.easeFn))
	g.OnComplete = func() {
		b.phase = PhaseShown
	}
}

// Hide scales the current presentation out and resets it. No-op when nothing
// is shown or a hide is already running.
func (b *TextBubble) Hide() {
	if b.current == nil || b.phase == PhaseHiding {
		return
	}
	b.cancelTransitions()
	b.phase = PhaseHiding

	duration := float32(b.cfg.AnimationDuration)
	if b.shadow.Visible {
		fade := b.tweens.add(TweenColorAlpha(b.shadow, 0, duration, b.easeFn))
		fade.OnComplete = func() {
			b.shadow.SetActive(false)
		}
	}

	target := b.current
	g := b.tweens.add(TweenScale(target, 0, 0, duration, b.easeFn))
	g.OnComplete = func() {
		b.root.SetActive(false)
		b.reset(target)
		b.clearCurrent()
	}
}

// ForceHide deactivates the widget at once, with no animation.
func (b *TextBubble) ForceHide() {
	b.cancelTransitions()
	if b.current != nil {
		b.reset(b.current)
	}
	b.clearCurrent()
	b.shadow.SetActive(false)
	b.shadow.Color.A = 0
	b.root.SetActive(false)
}

func (b *TextBubble) onCloseButtonClick() {
	b.Hide()
}

// cancelTransitions stops in-flight tweens and the pending auto-dismiss
// before any state change.
func (b *TextBubble) cancelTransitions() {
	b.tweens.cancelAll()
	b.timers.CancelAll()
	b.autoDismiss = nil
}

// reset puts a presentation back where it started: inactive, under the
// default parent, at zero offset.
func (b *TextBubble) reset(n *Node) {
	n.SetActive(false)
	if n.Parent != b.defaultParent {
		b.defaultParent.AddChild(n)
	}
	n.SetPosition(0, 0)
}

func (b *TextBubble) clearCurrent() {
	b.current = nil
	b.kind = PresentationNone
	b.phase = PhaseIdle
}
