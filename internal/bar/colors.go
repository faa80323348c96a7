package bar

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color. It is stored as "#rrggbb" in tags and config files.
type RGB struct {
	R, G, B uint8
}

var (
	// DefaultActiveColor is SlateBlue
	DefaultActiveColor = RGB{R: 0x6a, G: 0x5a, B: 0xcd}
	// DefaultInactiveColor is LightGray
	DefaultInactiveColor = RGB{R: 0xd3, G: 0xd3, B: 0xd3}
)

// ParseRGB parses a "#rrggbb" hex string
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats c as "#rrggbb"
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

func (c RGB) String() string { return c.Hex() }

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c RGB) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

func (c *RGB) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Colors holds the two colors a bar is painted with
type Colors struct {
	Active   RGB
	Inactive RGB
}

// DefaultColors returns SlateBlue on LightGray
func DefaultColors() Colors {
	return Colors{Active: DefaultActiveColor, Inactive: DefaultInactiveColor}
}

// For returns the color assigned to role
func (c Colors) For(role ColorRole) (RGB, error) {
	switch role {
	case RoleActive:
		return c.Active, nil
	case RoleInactive:
		return c.Inactive, nil
	default:
		return RGB{}, fmt.Errorf("%w %q", ErrUnknownColorRole, role)
	}
}
