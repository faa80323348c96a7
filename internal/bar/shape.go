package bar

import "fmt"

// ColorRole selects which of the two configured colors a shape receives
type ColorRole int

const (
	RoleActive ColorRole = iota + 1
	RoleInactive
)

func (r ColorRole) String() string {
	switch r {
	case RoleActive:
		return "Active"
	case RoleInactive:
		return "Inactive"
	default:
		return fmt.Sprintf("ColorRole(%d)", int(r))
	}
}

// Valid reports whether r is Active or Inactive
func (r ColorRole) Valid() bool {
	return r == RoleActive || r == RoleInactive
}

// ShapeKind is the geometric primitive the host should create
type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindOval
)

func (k ShapeKind) String() string {
	if k == KindOval {
		return "oval"
	}
	return "rectangle"
}

// Shape is a positioned primitive tagged with its color role.
// Coordinates are in presentation units (points for PDF, pixels for images).
type Shape struct {
	Kind   ShapeKind
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Role   ColorRole
}

// Right returns the x coordinate of the right edge
func (s Shape) Right() float64 { return s.Left + s.Width }

// Bottom returns the y coordinate of the bottom edge
func (s Shape) Bottom() float64 { return s.Top + s.Height }

// ValidateShapes checks every shape for a known role and non-negative size
func ValidateShapes(shapes []Shape) error {
	for i, s := range shapes {
		if !s.Role.Valid() {
			return fmt.Errorf("shape %d: %w %q", i, ErrUnknownColorRole, s.Role)
		}
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("shape %d (%.2fx%.2f): %w", i, s.Width, s.Height, ErrNegativeDimension)
		}
	}
	return nil
}
