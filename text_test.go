package bubble

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadTTFFont_InvalidData(t *testing.T) {
	_, err := LoadTTFFont([]byte("not a TTF file"))
	if err == nil {
		t.Error("expected error for invalid TTF data, got nil")
	}
}

func TestTTFFontMeasure(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}

	w1, h1 := f.MeasureString("Hi", 20)
	w2, _ := f.MeasureString("Hi there", 20)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("MeasureString = (%v, %v), want positive", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer text measured %v, not wider than %v", w2, w1)
	}

	w3, h3 := f.MeasureString("Hi", 40)
	if w3 <= w1 || h3 <= h1 {
		t.Errorf("size 40 = (%v, %v), want larger than size 20 (%v, %v)", w3, h3, w1, h1)
	}
	if f.Face(20) != f.Face(20) {
		t.Error("faces should be cached per size")
	}
}

func TestSetTextRemeasures(t *testing.T) {
	n := NewText("label", "ab", fixedFont{}, 10)
	if n.Width != 10 || n.Height != 10 {
		t.Fatalf("size = (%v, %v), want (10, 10)", n.Width, n.Height)
	}

	n.SetText("abcd", 20)
	if n.Width != 40 || n.Height != 20 {
		t.Errorf("size = (%v, %v), want (40, 20)", n.Width, n.Height)
	}
	if n.PivotX != 20 || n.PivotY != 10 {
		t.Errorf("pivot = (%v, %v), want centered", n.PivotX, n.PivotY)
	}

	n.SetText("", 20)
	if w, h := n.Text.Measured(); w != 0 || h != 0 {
		t.Errorf("empty text measured (%v, %v)", w, h)
	}
}

func TestSetTextOnNonTextNode(t *testing.T) {
	n := NewContainer("c")
	n.SetText("ignored", 10) // must not panic
	if n.Width != 0 {
		t.Errorf("Width = %v, want 0", n.Width)
	}
}
