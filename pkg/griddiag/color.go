package griddiag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plotkit/plotkit/pkg/errors"
)

// intBase is the integer channel maximum for 8-bit color components.
const intBase = 255

// namedColors maps well-known color names to their web form.
var namedColors = map[string]string{
	"black": "#000000",
	"blue":  "#0000FF",
	"green": "#00FF00",
	"red":   "#FF0000",
	"white": "#FFFFFF",
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	Red     float64
	Green   float64
	Blue    float64
	Opacity float64
}

// RGB creates a color from 8-bit integer channels (0-255).
func RGB(red, green, blue, opacity int) (Color, error) {
	for _, c := range []int{red, green, blue, opacity} {
		if c < 0 || c > intBase {
			return Color{}, errors.New(errors.ErrCodeInvalidColor,
				"channel value %d outside [0, %d]", c, intBase)
		}
	}
	return Color{
		Red:     float64(red) / intBase,
		Green:   float64(green) / intBase,
		Blue:    float64(blue) / intBase,
		Opacity: float64(opacity) / intBase,
	}, nil
}

// FromWeb parses a "#RRGGBB" or "#RGB" web color (leading '#' optional,
// case insensitive). Opacity is 1.
func FromWeb(s string) (Color, error) {
	hexs := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")

	switch len(hexs) {
	case 3:
		// Short form: each digit doubles (#f0a == #ff00aa)
		hexs = string([]byte{hexs[0], hexs[0], hexs[1], hexs[1], hexs[2], hexs[2]})
	case 6:
	default:
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid web color %q", s)
	}

	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hexs[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid web color %q", s)
		}
		ch[i] = int(v)
	}
	return RGB(ch[0], ch[1], ch[2], intBase)
}

// FromName resolves a named color (black, blue, green, red, white).
func FromName(name string) (Color, error) {
	web, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "unknown color name %q", name)
	}
	return FromWeb(web)
}

// ParseColor accepts either a named color or a web color.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "#") {
		return FromWeb(s)
	}
	if c, err := FromName(s); err == nil {
		return c, nil
	}
	// Bare hex without '#' is accepted as a fallback
	if c, err := FromWeb(s); err == nil {
		return c, nil
	}
	return Color{}, errors.New(errors.ErrCodeInvalidColor, "cannot parse color %q", s)
}

// Web returns the "#RRGGBB" form of the color. Opacity is not encoded.
func (c Color) Web() string {
	return fmt.Sprintf("#%02X%02X%02X",
		int(c.Red*intBase+0.5), int(c.Green*intBase+0.5), int(c.Blue*intBase+0.5))
}

// RGBA returns the 8-bit integer channels of the color.
func (c Color) RGBA() (r, g, b, a int) {
	return int(c.Red*intBase + 0.5), int(c.Green*intBase + 0.5),
		int(c.Blue*intBase + 0.5), int(c.Opacity*intBase + 0.5)
}
