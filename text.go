package bubble

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement. Sizes are in pixels.
type Font interface {
	MeasureString(s string, size float64) (width, height float64)
}

// faceFont is implemented by fonts that can also draw through text/v2.
type faceFont interface {
	Font
	Face(size float64) text.Face
	LineHeight(size float64) float64
}

// --- TextBlock ---

// TextBlock holds text content, formatting, and the cached measurement.
type TextBlock struct {
	Content string
	Font    Font
	Size    float64
	Color   Color

	dirty     bool
	measuredW float64
	measuredH float64
}

// Measured returns the rendered size of the current content. It is the Go
// counterpart of asking a text mesh for its rendered values after a forced
// update.
func (tb *TextBlock) Measured() (w, h float64) {
	tb.measure()
	return tb.measuredW, tb.measuredH
}

func (tb *TextBlock) measure() {
	if !tb.dirty {
		return
	}
	tb.dirty = false
	if tb.Font == nil || tb.Content == "" {
		tb.measuredW, tb.measuredH = 0, 0
		return
	}
	tb.measuredW, tb.measuredH = tb.Font.MeasureString(tb.Content, tb.Size)
}

// SetText replaces the content and size of a text node and re-measures it.
// The node's Width and Height follow the measured size.
func (n *Node) SetText(content string, size float64) {
	if n.Text == nil {
		return
	}
	n.Text.Content = content
	n.Text.Size = size
	n.Text.dirty = true
	n.layoutText()
}

func (n *Node) layoutText() {
	w, h := n.Text.Measured()
	n.SetSize(w, h)
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering. Faces are
// created lazily per size.
type TTFFont struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data.
func LoadTTFFont(ttfData []byte) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("bubble: failed to parse TTF data: %w", err)
	}
	return &TTFFont{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the face for the given size.
func (f *TTFFont) Face(size float64) text.Face {
	return f.goFace(size)
}

func (f *TTFFont) goFace(size float64) *text.GoTextFace {
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// LineHeight returns the vertical distance between baselines at size.
func (f *TTFFont) LineHeight(size float64) float64 {
	m := f.goFace(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string, size float64) (width, height float64) {
	return text.Measure(s, f.goFace(size), f.LineHeight(size))
}

// drawText renders a text node centered on its pivot. Fonts that cannot draw
// (measurement-only fonts in tests) are skipped.
func drawText(dst *ebiten.Image, n *Node, world [6]float64, alpha float64) {
	tb := n.Text
	ff, ok := tb.Font.(faceFont)
	if !ok || tb.Content == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = ff.LineHeight(tb.Size)
	op.GeoM.SetElement(0, 0, world[0])
	op.GeoM.SetElement(1, 0, world[1])
	op.GeoM.SetElement(0, 1, world[2])
	op.GeoM.SetElement(1, 1, world[3])
	op.GeoM.SetElement(0, 2, world[4])
	op.GeoM.SetElement(1, 2, world[5])
	op.ColorScale.ScaleWithColor(tb.Color.nrgba(alpha))
	text.Draw(dst, tb.Content, ff.Face(tb.Size), op)
}
