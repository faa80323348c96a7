package bar

import "fmt"

// Edge identifies one side of a slide
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// EdgeOption is the state of one alignment toggle
type EdgeOption struct {
	Available bool `yaml:"available"`
	Selected  bool `yaml:"selected"`
}

// PositionOptions is the resolved alignment of a bar.
//
// Top/Bottom chooses the slide edge a horizontal bar sits on; Left/Right then chooses
// the end the active part grows from. With only Left or Right selected the bar runs
// vertically along that edge and grows downward.
type PositionOptions struct {
	Top    EdgeOption `yaml:"top"`
	Bottom EdgeOption `yaml:"bottom"`
	Left   EdgeOption `yaml:"left"`
	Right  EdgeOption `yaml:"right"`
}

// Constraints lists the edges a theme can be aligned to
type Constraints struct {
	Top, Right, Bottom, Left bool
}

// AllEdges allows every alignment
var AllEdges = Constraints{Top: true, Right: true, Bottom: true, Left: true}

// Toggles are the raw user alignment choices
type Toggles struct {
	Top, Right, Bottom, Left bool
}

// ResolvePosition combines theme constraints with user toggles.
// At most one toggle per axis may be set; a conflict is reported, not repaired.
func ResolvePosition(c Constraints, t Toggles) (PositionOptions, error) {
	if t.Top && t.Bottom {
		return PositionOptions{}, fmt.Errorf("%w: top and bottom both selected", ErrInvalidPosition)
	}
	if t.Left && t.Right {
		return PositionOptions{}, fmt.Errorf("%w: left and right both selected", ErrInvalidPosition)
	}

	return PositionOptions{
		Top:    EdgeOption{Available: c.Top, Selected: t.Top && c.Top},
		Bottom: EdgeOption{Available: c.Bottom, Selected: t.Bottom && c.Bottom},
		Left:   EdgeOption{Available: c.Left, Selected: t.Left && c.Left},
		Right:  EdgeOption{Available: c.Right, Selected: t.Right && c.Right},
	}, nil
}

// DefaultPosition is bottom edge, filling from the left, clamped to c
func DefaultPosition(c Constraints) PositionOptions {
	p, _ := ResolvePosition(c, Toggles{Bottom: true, Left: true})
	return p
}

// Toggles returns the selection part of p
func (p PositionOptions) Toggles() Toggles {
	return Toggles{
		Top:    p.Top.Selected,
		Right:  p.Right.Selected,
		Bottom: p.Bottom.Selected,
		Left:   p.Left.Selected,
	}
}

// Validate checks the one-per-axis and selected-implies-available invariants
func (p PositionOptions) Validate() error {
	if p.Top.Selected && p.Bottom.Selected {
		return fmt.Errorf("%w: top and bottom both selected", ErrInvalidPosition)
	}
	if p.Left.Selected && p.Right.Selected {
		return fmt.Errorf("%w: left and right both selected", ErrInvalidPosition)
	}
	for _, o := range []struct {
		edge Edge
		opt  EdgeOption
	}{{EdgeTop, p.Top}, {EdgeRight, p.Right}, {EdgeBottom, p.Bottom}, {EdgeLeft, p.Left}} {
		if o.opt.Selected && !o.opt.Available {
			return fmt.Errorf("%w: %s selected but not available", ErrInvalidPosition, o.edge)
		}
	}
	return nil
}

// ParseEdges turns "bottom,left" into toggles
func ParseEdges(names []string) (Toggles, error) {
	var t Toggles
	for _, n := range names {
		switch n {
		case "top":
			t.Top = true
		case "bottom":
			t.Bottom = true
		case "left":
			t.Left = true
		case "right":
			t.Right = true
		case "":
		default:
			return Toggles{}, fmt.Errorf("%w: unknown edge %q", ErrInvalidPosition, n)
		}
	}
	return t, nil
}
