package overlay

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/slidebar/internal/analyzer"
	"github.com/ivlev/slidebar/internal/bar"
	"github.com/ivlev/slidebar/internal/source"
	"github.com/ivlev/slidebar/internal/system"
)

// Handle is one materialized shape
type Handle struct {
	Name  string
	Frame int
	Role  bar.ColorRole
	Path  string
}

type Options struct {
	OutputDir string
	DPI       int
	Workers   int
	Namer     ShapeNamer
	// Checker warns when the bar covers slide content. Nil disables the check.
	Checker *analyzer.OcclusionChecker
}

// View materializes bar events as slide images with the bar painted on.
// Every visible slide is written to OutputDir as slide-NNN.png.
type View struct {
	deck    *source.Deck
	opts    Options
	pool    *system.ImagePool
	handles []Handle
	hasBar  bool
}

func NewView(deck *source.Deck, opts Options) *View {
	if opts.DPI <= 0 {
		opts.DPI = 150
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Namer.Prefix == "" {
		opts.Namer = DefaultNamer
	}
	return &View{deck: deck, opts: opts, pool: system.NewImagePool()}
}

// Register subscribes the view to the model's lifecycle events
func (v *View) Register(m *bar.Model) {
	m.Subscribe(bar.EventBarCreated, func(ev bar.Event) error {
		return v.Materialize(*ev.Bar)
	})
	m.Subscribe(bar.EventThemeChanged, func(ev bar.Event) error {
		return v.Materialize(*ev.Bar)
	})
	m.Subscribe(bar.EventBarRemoved, func(bar.Event) error {
		return v.Clear()
	})
	m.Subscribe(bar.EventBarDetected, func(ev bar.Event) error {
		return v.Adopt(*ev.Bar)
	})
}

// HasBar reports whether shapes are currently materialized
func (v *View) HasBar() bool { return v.hasBar }

// AddedShapes lists the materialized shapes
func (v *View) AddedShapes() []Handle {
	out := make([]Handle, len(v.handles))
	copy(out, v.handles)
	return out
}

// FramePath is where the slide with the given 1-based number is written
func (v *View) FramePath(number int) string {
	return filepath.Join(v.opts.OutputDir, fmt.Sprintf("slide-%03d.png", number))
}

// Materialize replaces any previous shapes with ab on every visible slide. Slides are
// drawn in parallel; it returns once all are written. Written slides are tracked even
// when another slide fails.
func (v *View) Materialize(ab bar.ActiveBar) error {
	if err := v.Clear(); err != nil {
		return err
	}
	frames, info, err := v.layout(ab)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(v.opts.OutputDir, 0755); err != nil {
		return err
	}

	results := make([][]Handle, len(frames))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(v.opts.Workers)

	for i, fr := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			handles, err := v.drawFrame(ab, fr, info)
			if err != nil {
				return fmt.Errorf("slide %d: %w", fr.Number, err)
			}
			results[i] = handles
			fmt.Printf("[>] Ready: %d/%d\n", fr.Number, len(frames))
			return nil
		})
	}
	err = g.Wait()

	for _, hs := range results {
		v.handles = append(v.handles, hs...)
	}
	if len(v.handles) > 0 {
		v.hasBar = true
	}
	return err
}

// Adopt records the slides already on disk for ab without drawing them again
func (v *View) Adopt(ab bar.ActiveBar) error {
	frames, info, err := v.layout(ab)
	if err != nil {
		return err
	}
	v.handles = nil
	for _, fr := range frames {
		path := v.FramePath(fr.Number)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		shapes, err := ab.Theme.Render(fr.Number, info)
		if err != nil {
			return err
		}
		for _, s := range shapes {
			v.handles = append(v.handles, Handle{Name: v.opts.Namer.Name(s.Role), Frame: fr.Number, Role: s.Role, Path: path})
		}
	}
	v.hasBar = len(v.handles) > 0
	return nil
}

// Clear deletes every materialized slide
func (v *View) Clear() error {
	var errs []error
	seen := make(map[string]bool)
	for _, h := range v.handles {
		if seen[h.Path] {
			continue
		}
		seen[h.Path] = true
		if err := os.Remove(h.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	v.handles = nil
	v.hasBar = false
	return errors.Join(errs...)
}

// SlidesChanged removes the bar once the deck has no slides left
func (v *View) SlidesChanged(c *bar.Controller) error {
	if c.Model().HasBar() && !v.deck.HasFrames() {
		log.Printf("[!] В презентации не осталось слайдов, прогресс-бар удален")
		return c.RemoveBarClicked()
	}
	return nil
}

func (v *View) layout(ab bar.ActiveBar) ([]source.Frame, bar.PresentationInfo, error) {
	frames, err := v.deck.VisibleFrames()
	if err != nil {
		return nil, bar.PresentationInfo{}, err
	}
	if len(frames) == 0 {
		return nil, bar.PresentationInfo{}, bar.ErrNoFrames
	}
	w, h, err := v.deck.FrameSequenceSize()
	if err != nil {
		return nil, bar.PresentationInfo{}, err
	}
	return frames, ab.PresentationInfo(len(frames), w, h), nil
}

func (v *View) drawFrame(ab bar.ActiveBar, fr source.Frame, info bar.PresentationInfo) ([]Handle, error) {
	shapes, err := ab.Theme.Render(fr.Number, info)
	if err != nil {
		return nil, err
	}
	if err := bar.ValidateShapes(shapes); err != nil {
		return nil, err
	}

	page, err := v.deck.Source().RenderPage(fr.Index, v.opts.DPI)
	if err != nil {
		return nil, err
	}
	b := page.Bounds()
	canvas := v.pool.Get(image.Rect(0, 0, b.Dx(), b.Dy()))
	defer v.pool.Put(canvas)
	draw.Draw(canvas, canvas.Bounds(), page, b.Min, draw.Src)

	sx := float64(b.Dx()) / info.Width
	sy := float64(b.Dy()) / info.Height
	path := v.FramePath(fr.Number)

	if v.opts.Checker != nil {
		if area := pixelBounds(shapes, sx, sy); v.opts.Checker.Covers(canvas, area) {
			log.Printf("[!] Слайд %d: прогресс-бар перекрывает содержимое %v", fr.Number, area)
		}
	}

	handles := make([]Handle, 0, len(shapes))
	for _, s := range shapes {
		c, err := ab.Colors.For(s.Role)
		if err != nil {
			return nil, err
		}
		fillShape(canvas, s, sx, sy, c)
		handles = append(handles, Handle{Name: v.opts.Namer.Name(s.Role), Frame: fr.Number, Role: s.Role, Path: path})
	}

	if err := writePNG(path, canvas); err != nil {
		return nil, err
	}
	return handles, nil
}

// pixelBounds is the pixel rectangle the shapes cover together
func pixelBounds(shapes []bar.Shape, sx, sy float64) image.Rectangle {
	var r image.Rectangle
	for _, s := range shapes {
		px := image.Rect(
			int(math.Floor(s.Left*sx)), int(math.Floor(s.Top*sy)),
			int(math.Ceil(s.Right()*sx)), int(math.Ceil(s.Bottom()*sy)),
		)
		r = r.Union(px)
	}
	return r
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
