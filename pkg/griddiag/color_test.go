package griddiag

import (
	"testing"

	"github.com/plotkit/plotkit/pkg/errors"
)

func TestRGB(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a int
		want       Color
	}{
		{"black transparent", 0, 0, 0, 0, Color{0, 0, 0, 0}},
		{"white opaque", 255, 255, 255, 255, Color{1, 1, 1, 1}},
		{"pure red", 255, 0, 0, 255, Color{1, 0, 0, 1}},
		{"mid gray", 51, 51, 51, 255, Color{0.2, 0.2, 0.2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RGB(tt.r, tt.g, tt.b, tt.a)
			if err != nil {
				t.Fatalf("RGB() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RGB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBOutOfRange(t *testing.T) {
	for _, args := range [][4]int{
		{-1, 0, 0, 255},
		{0, 256, 0, 255},
		{0, 0, 300, 255},
		{0, 0, 0, -5},
	} {
		_, err := RGB(args[0], args[1], args[2], args[3])
		if err == nil {
			t.Errorf("RGB(%v) expected error", args)
			continue
		}
		if errors.GetCode(err) != errors.ErrCodeInvalidColor {
			t.Errorf("RGB(%v) code = %s, want %s", args, errors.GetCode(err), errors.ErrCodeInvalidColor)
		}
	}
}

func TestFromWeb(t *testing.T) {
	tests := []struct {
		in   string
		want string // round-tripped via Web()
	}{
		{"#FF0000", "#FF0000"},
		{"#ff0000", "#FF0000"},
		{"00FF00", "#00FF00"},
		{"#fff", "#FFFFFF"},
		{"#f0a", "#FF00AA"},
		{"  #0000FF  ", "#0000FF"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := FromWeb(tt.in)
			if err != nil {
				t.Fatalf("FromWeb(%q) error = %v", tt.in, err)
			}
			if got := c.Web(); got != tt.want {
				t.Errorf("FromWeb(%q).Web() = %q, want %q", tt.in, got, tt.want)
			}
			if c.Opacity != 1 {
				t.Errorf("FromWeb(%q).Opacity = %v, want 1", tt.in, c.Opacity)
			}
		})
	}
}

func TestFromWebInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "#GGGGGG", "not-a-color"} {
		if _, err := FromWeb(in); err == nil {
			t.Errorf("FromWeb(%q) expected error", in)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"black", "#000000"},
		{"Red", "#FF0000"},
		{"WHITE", "#FFFFFF"},
		{" green ", "#00FF00"},
	}

	for _, tt := range tests {
		c, err := FromName(tt.name)
		if err != nil {
			t.Fatalf("FromName(%q) error = %v", tt.name, err)
		}
		if got := c.Web(); got != tt.want {
			t.Errorf("FromName(%q).Web() = %q, want %q", tt.name, got, tt.want)
		}
	}

	if _, err := FromName("mauve"); err == nil {
		t.Error("FromName(mauve) expected error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"blue", "#0000FF"},
		{"#123456", "#123456"},
		{"ABCDEF", "#ABCDEF"}, // bare hex fallback
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
		}
		if got := c.Web(); got != tt.want {
			t.Errorf("ParseColor(%q).Web() = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor(chartreuse) expected error")
	}
}

func TestColorRGBA(t *testing.T) {
	c, err := RGB(18, 52, 86, 255)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := c.RGBA()
	if r != 18 || g != 52 || b != 86 || a != 255 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (18, 52, 86, 255)", r, g, b, a)
	}
}
