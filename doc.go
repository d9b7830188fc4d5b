// Package bubble is a speech-bubble overlay widget for [Ebitengine] games.
//
// A [TextBubble] shows one presentation at a time over the game:
//
//   - a text bubble with a pointer arrow, anchored to a screen, world or
//     viewport point and slid horizontally to stay on screen
//   - a reward bubble listing a stage's coins and item drops
//   - a message overlay across the middle of the screen that closes itself
//
// Every presentation scales in and out, optionally over a dimming shadow.
// Tapping outside an open bubble closes it.
//
// # Quick start
//
//	scene := bubble.NewScene()
//	font, _ := bubble.LoadTTFFont(goregular.TTF)
//	widget := bubble.NewTextBubble(scene, font, bubble.DefaultConfig())
//
//	widget.Show(bubble.OrientationUp, bubble.Vec2{X: 400, Y: 300}, "Hello!", bubble.ShowOptions{})
//
//	bubble.Run(scene, bubble.RunConfig{Title: "Demo", Width: 800, Height: 480})
//
// The widget has no global instance. Create it once and pass the pointer to
// the code that shows bubbles. Calls that arrive while another presentation
// is running win: the old one is reset and its pending animations and timers
// are cancelled.
//
// # Scene graph
//
// Widgets are built from [Node] values in a small screen-space tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha. Game
// objects living in world space reach the widget through [Scene.Camera].
//
// # Configuration
//
// Layout constants, timings and the easing curve live in [Config], loadable
// from YAML with [LoadConfig]. Stage rewards come from a [DropSource], such as
// a [DropTable] loaded with [LoadDropTable].
//
// # Testing
//
// [Scene.Tick] advances the scene by an explicit step, [Scene.InjectClick]
// feeds synthetic input, and [ScriptRunner] plays scripted scenarios with
// screenshots.
//
// [Ebitengine]: https://ebitengine.org
package bubble
