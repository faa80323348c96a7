package bar

import "fmt"

// PresentationInfo is the per-render snapshot of the slide sequence.
// Width and Height are in presentation units; UserSize is the bar thickness in the same units.
type PresentationInfo struct {
	SlidesCount         int
	Width               float64
	Height              float64
	UserSize            int
	DisableOnFirstSlide bool
	Position            PositionOptions
}

func (p PresentationInfo) validate(slide int) error {
	if p.SlidesCount < 1 || slide < 1 || slide > p.SlidesCount {
		return fmt.Errorf("%w: slide %d of %d", ErrInvalidSlide, slide, p.SlidesCount)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: presentation is %.2fx%.2f", ErrInvalidSlide, p.Width, p.Height)
	}
	if p.UserSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, p.UserSize)
	}
	return p.Position.Validate()
}

// countedSlides is the number of slides the bar spans
func (p PresentationInfo) countedSlides() int {
	if p.DisableOnFirstSlide {
		return p.SlidesCount - 1
	}
	return p.SlidesCount
}

// reachedSlides is how many counted slides are complete on slide (1-based)
func (p PresentationInfo) reachedSlides(slide int) int {
	if p.DisableOnFirstSlide {
		return slide - 1
	}
	return slide
}

// Progress returns the active fraction for slide.
//
//	first slide counted:  slide / n
//	first slide skipped:  (slide-1) / (n-1), and 0 for a single slide
func Progress(slide int, info PresentationInfo) float64 {
	n := info.countedSlides()
	if n <= 0 {
		return 0
	}
	return clamp01(float64(info.reachedSlides(slide)) / float64(n))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
