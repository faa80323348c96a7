package bar

import "math"

// layout is the full bar rectangle and the direction progress grows in
type layout struct {
	rect       Shape
	horizontal bool
	reverse    bool // horizontal bars only: grow from the right
}

func newLayout(info PresentationInfo) layout {
	p := info.Position
	size := float64(info.UserSize)

	vertical := !p.Top.Selected && !p.Bottom.Selected && (p.Left.Selected || p.Right.Selected)
	if vertical {
		thickness := math.Min(size, info.Width)
		left := 0.0
		if p.Right.Selected {
			left = info.Width - thickness
		}
		return layout{
			rect: Shape{Left: left, Top: 0, Width: thickness, Height: info.Height},
		}
	}

	thickness := math.Min(size, info.Height)
	top := info.Height - thickness
	if p.Top.Selected {
		top = 0
	}
	return layout{
		rect:       Shape{Left: 0, Top: top, Width: info.Width, Height: thickness},
		horizontal: true,
		reverse:    p.Right.Selected,
	}
}

func (l layout) length() float64 {
	if l.horizontal {
		return l.rect.Width
	}
	return l.rect.Height
}

// span cuts the piece of the bar between from and to, measured from the growing end
func (l layout) span(from, to float64, role ColorRole, kind ShapeKind) Shape {
	s := l.rect
	s.Kind = kind
	s.Role = role
	switch {
	case l.horizontal && l.reverse:
		s.Left = l.rect.Right() - to
		s.Width = to - from
	case l.horizontal:
		s.Left = l.rect.Left + from
		s.Width = to - from
	default:
		s.Top = l.rect.Top + from
		s.Height = to - from
	}
	return s
}

// split returns one active and one inactive piece covering the bar
func (l layout) split(fraction float64, kind ShapeKind) []Shape {
	length := l.length()
	cut := length * clamp01(fraction)
	return []Shape{
		l.span(0, cut, RoleActive, kind),
		l.span(cut, length, RoleInactive, kind),
	}
}

// cells divides the bar into equal cells, the first reached of them active.
// A role with no cells still gets a zero-length shape at the boundary.
func (l layout) cells(count, reached int, kind ShapeKind) []Shape {
	if count < 1 {
		count = 1
		reached = 0
	}
	if reached < 0 {
		reached = 0
	}
	if reached > count {
		reached = count
	}

	length := l.length()
	edge := func(i int) float64 { return length * float64(i) / float64(count) }

	shapes := make([]Shape, 0, count+1)
	if reached == 0 {
		shapes = append(shapes, l.span(0, 0, RoleActive, kind))
	}
	for i := 0; i < count; i++ {
		role := RoleInactive
		if i < reached {
			role = RoleActive
		}
		shapes = append(shapes, l.span(edge(i), edge(i+1), role, kind))
	}
	if reached == count {
		shapes = append(shapes, l.span(length, length, RoleInactive, kind))
	}
	return shapes
}
