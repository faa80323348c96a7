package bar

// Info describes a theme for pickers
type Info struct {
	FriendlyName string
	Icon         string
}

// Theme is a bar style. Render must be a pure function of its arguments.
type Theme interface {
	Key() string
	Info() Info
	Constraints() Constraints
	Render(slide int, info PresentationInfo) ([]Shape, error)
}

// DottedBar draws one dot per counted slide along a horizontal edge
type DottedBar struct{}

func (DottedBar) Key() string { return "dotted" }

func (DottedBar) Info() Info { return Info{FriendlyName: "Dotted", Icon: "dotted.png"} }

// Dots always run left to right along the top or bottom edge
func (DottedBar) Constraints() Constraints {
	return Constraints{Top: true, Bottom: true}
}

func (b DottedBar) Render(slide int, info PresentationInfo) ([]Shape, error) {
	if err := info.validate(slide); err != nil {
		return nil, err
	}
	info.Position = restrict(info.Position, b.Constraints())
	l := newLayout(info)
	return l.cells(info.countedSlides(), info.reachedSlides(slide), KindOval), nil
}

// StripedBar draws one stripe per counted slide
type StripedBar struct{}

func (StripedBar) Key() string { return "striped" }

func (StripedBar) Info() Info { return Info{FriendlyName: "Striped", Icon: "striped.png"} }

func (StripedBar) Constraints() Constraints { return AllEdges }

func (StripedBar) Render(slide int, info PresentationInfo) ([]Shape, error) {
	if err := info.validate(slide); err != nil {
		return nil, err
	}
	l := newLayout(info)
	return l.cells(info.countedSlides(), info.reachedSlides(slide), KindRectangle), nil
}

// SolidBar is a continuous fill
type SolidBar struct{}

func (SolidBar) Key() string { return "solid" }

func (SolidBar) Info() Info { return Info{FriendlyName: "Solid", Icon: "solid.png"} }

func (SolidBar) Constraints() Constraints { return AllEdges }

func (SolidBar) Render(slide int, info PresentationInfo) ([]Shape, error) {
	if err := info.validate(slide); err != nil {
		return nil, err
	}
	return newLayout(info).split(Progress(slide, info), KindRectangle), nil
}

// restrict drops selections the constraints do not allow
func restrict(p PositionOptions, c Constraints) PositionOptions {
	r, err := ResolvePosition(c, p.Toggles())
	if err != nil {
		return DefaultPosition(c)
	}
	return r
}
