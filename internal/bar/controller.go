package bar

import (
	"errors"
	"fmt"
)

// TagStore persists the bar between sessions. Load returns nil, nil when nothing is stored.
type TagStore interface {
	Load() (*Tag, error)
	Save(Tag) error
}

// FrameCounter reports whether the presentation has any slides to draw on
type FrameCounter interface {
	HasFrames() bool
}

// Controller turns user intents into model calls and persistence
type Controller struct {
	model  *Model
	store  TagStore
	frames FrameCounter
}

func NewController(model *Model, store TagStore) *Controller {
	return &Controller{model: model, store: store}
}

// SetFrames makes AddBarClicked refuse presentations without slides
func (c *Controller) SetFrames(f FrameCounter) {
	c.frames = f
}

func (c *Controller) Model() *Model { return c.model }

func (c *Controller) AddBarClicked(key string) error {
	if c.frames != nil && !c.frames.HasFrames() {
		return ErrNoFrames
	}
	return c.model.Add(key)
}

func (c *Controller) RemoveBarClicked() error {
	return c.model.Remove()
}

func (c *Controller) ChangeThemeClicked(key string) error {
	return c.model.ChangeTheme(key)
}

// ChangeSizeClicked selects a size and redraws the bar with it
func (c *Controller) ChangeSizeClicked(size int) error {
	if err := c.model.SetSize(size); err != nil {
		return err
	}
	return c.refresh()
}

// PositionOptionsChanged resolves the alignment toggles against the current theme
// (or the first registered theme when no bar is shown) and redraws.
func (c *Controller) PositionOptionsChanged(top, right, bottom, left bool) error {
	constraints, err := c.constraints()
	if err != nil {
		return err
	}
	opts, err := ResolvePosition(constraints, Toggles{Top: top, Right: right, Bottom: bottom, Left: left})
	if err != nil {
		return err
	}
	if err := c.model.SetPositionOptions(opts); err != nil {
		return err
	}
	return c.refresh()
}

func (c *Controller) ColorsChanged(colors Colors) error {
	if err := c.model.SetColors(colors); err != nil {
		return err
	}
	return c.refresh()
}

func (c *Controller) SkipFirstChanged(skip bool) error {
	if err := c.model.SetSkipFirst(skip); err != nil {
		return err
	}
	return c.refresh()
}

// BarDetected restores a stored bar without drawing it again
func (c *Controller) BarDetected(tag Tag) error {
	return c.model.Detect(tag)
}

// LoadBarFromMetadata restores the stored bar, reporting whether one was found
func (c *Controller) LoadBarFromMetadata() (bool, error) {
	if c.store == nil {
		return false, nil
	}
	tag, err := c.store.Load()
	if err != nil {
		return false, fmt.Errorf("load bar tag: %w", err)
	}
	if tag == nil {
		return false, nil
	}
	return true, c.BarDetected(*tag)
}

// SaveBarToMetadata stores the current bar
func (c *Controller) SaveBarToMetadata() error {
	tag, err := c.model.Tag()
	if err != nil {
		return err
	}
	if c.store == nil {
		return errors.New("save bar tag: no tag store configured")
	}
	if err := c.store.Save(tag); err != nil {
		return fmt.Errorf("save bar tag: %w", err)
	}
	return nil
}

func (c *Controller) SetupColors() error { return c.model.PublishColors() }

func (c *Controller) SetupSizes() error { return c.model.PublishSizes() }

func (c *Controller) SetupRegisteredBars() error { return c.model.PublishRegisteredBars() }

// refresh redraws the current bar by removing and adding it again.
// Listener failures on removal do not stop the re-add.
func (c *Controller) refresh() error {
	ab, err := c.model.CurrentBar()
	if errors.Is(err, ErrNoActiveBar) {
		return nil
	}

	var dispatch *DispatchError
	removeErr := c.model.Remove()
	if removeErr != nil && !errors.As(removeErr, &dispatch) {
		return removeErr
	}
	return errors.Join(removeErr, c.model.Add(ab.Theme.Key()))
}

func (c *Controller) constraints() (Constraints, error) {
	if ab, err := c.model.CurrentBar(); err == nil {
		return ab.Theme.Constraints(), nil
	}
	themes, err := c.model.RegisteredBars()
	if err != nil {
		return Constraints{}, err
	}
	return themes[0].Constraints(), nil
}
