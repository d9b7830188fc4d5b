package bubble

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Orientation selects which side of the anchor a text bubble opens on.
type Orientation uint8

const (
	OrientationUp   Orientation = iota // arrow on top, pointing at an anchor above
	OrientationDown                    // arrow at the bottom
)

func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "Up"
	case OrientationDown:
		return "Down"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// ErrUnknownOrientation is returned for Orientation values outside the
// declared constants.
var ErrUnknownOrientation = errors.New("bubble: unknown orientation")

// ParseOrientation maps "up" or "down" (any case) to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "up":
		return OrientationUp, nil
	case "down":
		return OrientationDown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
	}
}

// ClampOffset returns the horizontal correction that keeps a bubble of the
// given width, centered on anchorX (normalized 0..1 across the screen),
// inside [0, screenWidth]. Right-edge overflow is corrected by the overflow
// plus margin; left-edge overflow by the overflow alone.
func ClampOffset(anchorX, width, screenWidth, margin float64) float64 {
	center := anchorX * screenWidth
	right := center + width/2
	left := center - width/2

	switch {
	case right > screenWidth:
		return -(right - screenWidth) - margin
	case left < 0:
		return -left
	default:
		return 0
	}
}

// ArrowPlacement is where the pointer arrow sits relative to the bubble
// center, and its rotation in radians.
type ArrowPlacement struct {
	Y        float64
	Rotation float64
}

// ArrowPlacementFor maps an orientation to the arrow placement for a bubble of
// the given height.
func ArrowPlacementFor(o Orientation, height float64) (ArrowPlacement, error) {
	switch o {
	case OrientationUp:
		return ArrowPlacement{Y: -height / 2, Rotation: 0}, nil
	case OrientationDown:
		return ArrowPlacement{Y: height / 2, Rotation: math.Pi}, nil
	default:
		return ArrowPlacement{}, fmt.Errorf("%w: %v", ErrUnknownOrientation, o)
	}
}
