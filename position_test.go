package bubble

import (
	"errors"
	"math"
	"testing"
)

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name        string
		anchorX     float64
		width       float64
		screenWidth float64
		margin      float64
		want        float64
	}{
		{"centered", 0.5, 300, 1000, 50, 0},
		{"right overflow", 0.9, 300, 1000, 50, -100},
		{"right overflow no margin", 0.9, 300, 1000, 0, -50},
		{"left overflow", 0.05, 300, 1000, 50, 100},
		{"left edge exact", 0.15, 300, 1000, 50, 0},
		{"right edge exact", 0.85, 300, 1000, 50, 0},
		{"anchor at zero", 0, 200, 1000, 50, 100},
		{"anchor at one", 1, 200, 1000, 50, -150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampOffset(tt.anchorX, tt.width, tt.screenWidth, tt.margin)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ClampOffset(%v, %v, %v, %v) = %v, want %v",
					tt.anchorX, tt.width, tt.screenWidth, tt.margin, got, tt.want)
			}
		})
	}
}

func TestClampOffsetKeepsBubbleOnScreen(t *testing.T) {
	const screenW, width = 800.0, 240.0
	for i := 0; i <= 20; i++ {
		anchorX := float64(i) / 20
		center := anchorX*screenW + ClampOffset(anchorX, width, screenW, 0)
		if center-width/2 < -1e-9 || center+width/2 > screenW+1e-9 {
			t.Errorf("anchorX %v: bubble spans [%v, %v]", anchorX, center-width/2, center+width/2)
		}
	}
}

func TestArrowPlacementFor(t *testing.T) {
	up, err := ArrowPlacementFor(OrientationUp, 100)
	if err != nil {
		t.Fatalf("Up: %v", err)
	}
	if up.Y != -50 || up.Rotation != 0 {
		t.Errorf("Up = %+v, want {Y:-50 Rotation:0}", up)
	}

	down, err := ArrowPlacementFor(OrientationDown, 100)
	if err != nil {
		t.Fatalf("Down: %v", err)
	}
	if down.Y != 50 || down.Rotation != math.Pi {
		t.Errorf("Down = %+v, want {Y:50 Rotation:Pi}", down)
	}
}

func TestArrowPlacementForUnknown(t *testing.T) {
	_, err := ArrowPlacementFor(Orientation(9), 100)
	if !errors.Is(err, ErrUnknownOrientation) {
		t.Fatalf("err = %v, want ErrUnknownOrientation", err)
	}
}

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{OrientationUp, "Up"},
		{OrientationDown, "Down"},
		{Orientation(5), "Orientation(5)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	for in, want := range map[string]Orientation{"up": OrientationUp, "Down": OrientationDown} {
		got, err := ParseOrientation(in)
		if err != nil || got != want {
			t.Errorf("ParseOrientation(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseOrientation("sideways"); !errors.Is(err, ErrUnknownOrientation) {
		t.Errorf("err = %v, want ErrUnknownOrientation", err)
	}
}
