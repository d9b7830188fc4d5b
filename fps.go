package bubble

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a node that shows the current FPS and TPS in its
// top-left corner, refreshed about twice a second. Add it last so it draws
// over the bubble.
func NewFPSWidget() *Node {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	img := ebiten.NewImage(100, 32)

	node := NewSprite("fps", 100, 32, ColorWhite)
	node.SetImage(img)
	node.PivotX, node.PivotY = 0, 0

	var elapsed float64
	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < 0.5 {
			return
		}
		elapsed = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
