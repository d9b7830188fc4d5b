package bubble

import (
	"errors"
	"fmt"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Config holds the widget's tunables. Fields missing from a YAML file keep
// their defaults.
type Config struct {
	// TextPadding is added to the measured label size on both axes.
	TextPadding float64 `yaml:"textPadding"`
	// BubbleLeftMargin is the extra shift applied when a bubble overflows the
	// right edge of the screen.
	BubbleLeftMargin float64 `yaml:"bubbleLeftMargin"`
	// AnimationDuration is the show/hide scale and fade time in seconds.
	AnimationDuration float64 `yaml:"animationDuration"`
	// ShadowAlpha is the dimming overlay's target opacity.
	ShadowAlpha float64 `yaml:"shadowAlpha"`
	// MessageOverlayDelay is how long a message overlay stays before it
	// closes itself, in seconds.
	MessageOverlayDelay float64 `yaml:"messageOverlayDelay"`
	// DefaultTextSize is used by Show when ShowOptions.TextSize is zero.
	DefaultTextSize float64 `yaml:"defaultTextSize"`
	// MessageTextSize and RewardTextSize size the overlay and reward labels.
	MessageTextSize float64 `yaml:"messageTextSize"`
	RewardTextSize  float64 `yaml:"rewardTextSize"`
	// RewardRows is the number of rows in the reward bubble. Row 0 shows coins.
	RewardRows int `yaml:"rewardRows"`
	// ArrowSize is the side of the pointer arrow square.
	ArrowSize float64 `yaml:"arrowSize"`
	// Ease names the easing curve for all transitions, e.g. "outQuad".
	Ease string `yaml:"ease"`
}

// DefaultConfig returns the stock widget settings.
func DefaultConfig() Config {
	return Config{
		TextPadding:         80,
		BubbleLeftMargin:    50,
		AnimationDuration:   0.25,
		ShadowAlpha:         0.5,
		MessageOverlayDelay: 1.2,
		DefaultTextSize:     35,
		MessageTextSize:     40,
		RewardTextSize:      28,
		RewardRows:          4,
		ArrowSize:           24,
		Ease:                "outQuad",
	}
}

var easeFuncs = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

// ErrUnknownEase is returned when Config.Ease names no known curve.
var ErrUnknownEase = errors.New("unknown ease")

// EaseFunc resolves Config.Ease. An empty name means linear.
func (c Config) EaseFunc() (ease.TweenFunc, error) {
	if c.Ease == "" {
		return ease.Linear, nil
	}
	fn, ok := easeFuncs[c.Ease]
	if !ok {
		return nil, fmt.Errorf("bubble: %w %q", ErrUnknownEase, c.Ease)
	}
	return fn, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.TextPadding < 0:
		return fmt.Errorf("bubble: textPadding must be >= 0, got %v", c.TextPadding)
	case c.BubbleLeftMargin < 0:
		return fmt.Errorf("bubble: bubbleLeftMargin must be >= 0, got %v", c.BubbleLeftMargin)
	case c.AnimationDuration < 0:
		return fmt.Errorf("bubble: animationDuration must be >= 0, got %v", c.AnimationDuration)
	case c.ShadowAlpha < 0 || c.ShadowAlpha > 1:
		return fmt.Errorf("bubble: shadowAlpha must be in [0, 1], got %v", c.ShadowAlpha)
	case c.MessageOverlayDelay < 0:
		return fmt.Errorf("bubble: messageOverlayDelay must be >= 0, got %v", c.MessageOverlayDelay)
	case c.DefaultTextSize <= 0 || c.MessageTextSize <= 0 || c.RewardTextSize <= 0:
		return fmt.Errorf("bubble: text sizes must be > 0")
	case c.RewardRows < 1:
		return fmt.Errorf("bubble: rewardRows must be >= 1, got %d", c.RewardRows)
	}
	_, err := c.EaseFunc()
	return err
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bubble: failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bubble: failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
