package bar

import "fmt"

// ActiveBar is the state committed while a bar is shown
type ActiveBar struct {
	Theme     Theme
	Position  PositionOptions
	Size      int
	Colors    Colors
	SkipFirst bool
}

// Model owns the current bar and the style settings the next bar is built from.
// It is not safe for concurrent use; the host serializes calls.
type Model struct {
	catalog *Catalog
	bus     Bus
	current *ActiveBar

	position  PositionOptions
	size      int
	colors    Colors
	skipFirst bool
}

func NewModel(catalog *Catalog) *Model {
	return &Model{
		catalog: catalog,
		size:    DefaultSize(),
		colors:  DefaultColors(),
	}
}

// Subscribe registers a listener for one event kind
func (m *Model) Subscribe(kind EventKind, l Listener) {
	m.bus.Subscribe(kind, l)
}

// SubscribeAll registers a listener for every event
func (m *Model) SubscribeAll(l Listener) {
	m.bus.SubscribeAll(l)
}

// Add shows a bar with the given theme, replacing any current bar
func (m *Model) Add(key string) error {
	theme, err := m.catalog.Lookup(key)
	if err != nil {
		return err
	}

	ab := m.snapshot(theme)
	m.current = &ab
	m.position = ab.Position

	return m.publish(Event{Kind: EventBarCreated, Bar: m.currentCopy()})
}

// ChangeTheme swaps the theme of the current bar, keeping its other attributes
func (m *Model) ChangeTheme(key string) error {
	if m.current == nil {
		return ErrNoActiveBar
	}
	theme, err := m.catalog.Lookup(key)
	if err != nil {
		return err
	}

	m.current.Theme = theme
	m.current.Position = positionFor(m.current.Position, theme)
	m.position = m.current.Position

	return m.publish(Event{Kind: EventThemeChanged, Bar: m.currentCopy()})
}

// Remove drops the current bar. Without a bar it does nothing and emits no event.
func (m *Model) Remove() error {
	if m.current == nil {
		return nil
	}
	m.current = nil
	return m.publish(Event{Kind: EventBarRemoved})
}

// Detect restores a bar found in stored metadata. Listeners receive
// EventBarDetected instead of EventBarCreated: the shapes already exist.
func (m *Model) Detect(tag Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}
	theme, err := tag.theme(m.catalog)
	if err != nil {
		return err
	}

	size := tag.Size
	if size == 0 {
		size = Sizes()[tag.SizeIndex]
	}

	m.colors = Colors{Active: tag.ActiveColor, Inactive: tag.InactiveColor}
	m.size = size
	m.skipFirst = tag.DisableOnFirstFrame
	m.position = positionFor(tag.PositionOptions, theme)

	ab := m.snapshot(theme)
	m.current = &ab

	stored := tag
	return m.publish(Event{Kind: EventBarDetected, Bar: m.currentCopy(), Tag: &stored})
}

// SetColors selects the colors used by the next Add
func (m *Model) SetColors(c Colors) error {
	m.colors = c
	return m.publish(Event{Kind: EventColorsSet, Colors: c})
}

// SetSize selects the thickness used by the next Add
func (m *Model) SetSize(size int) error {
	if SizeIndex(size) < 0 {
		return fmt.Errorf("%w: %d not in %d..%d", ErrInvalidSize, size, minSize, maxSize)
	}
	m.size = size
	return m.publish(Event{Kind: EventSizeSelected, Size: size})
}

// SetSkipFirst selects whether the next Add leaves the first slide out of the count
func (m *Model) SetSkipFirst(skip bool) error {
	m.skipFirst = skip
	return m.publish(Event{Kind: EventSkipFirstChanged, SkipFirst: skip})
}

// SetPositionOptions stores validated options for the next Add
func (m *Model) SetPositionOptions(p PositionOptions) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.position = p
	return m.publish(Event{Kind: EventPositionChanged, Position: p})
}

// Resize would change the thickness of materialized shapes in place.
// Remove followed by Add is the supported path.
func (m *Model) Resize(int) error {
	return fmt.Errorf("resize: %w", ErrNotImplemented)
}

// Reposition would move materialized shapes in place.
// Remove followed by Add is the supported path.
func (m *Model) Reposition(PositionOptions) error {
	return fmt.Errorf("reposition: %w", ErrNotImplemented)
}

// PublishSizes announces the size catalog and its default
func (m *Model) PublishSizes() error {
	if err := m.publish(Event{Kind: EventSizesSet, Sizes: Sizes()}); err != nil {
		return err
	}
	return m.publish(Event{Kind: EventDefaultSizeSet, Size: m.size})
}

func (m *Model) PublishColors() error {
	return m.publish(Event{Kind: EventColorsSet, Colors: m.colors})
}

func (m *Model) PublishRegisteredBars() error {
	themes, err := m.catalog.Themes()
	if err != nil {
		return err
	}
	return m.publish(Event{Kind: EventBarsRegistered, Themes: themes})
}

// CurrentBar returns the active bar or ErrNoActiveBar
func (m *Model) CurrentBar() (ActiveBar, error) {
	if m.current == nil {
		return ActiveBar{}, ErrNoActiveBar
	}
	return *m.current, nil
}

func (m *Model) HasBar() bool { return m.current != nil }

func (m *Model) RegisteredBars() ([]Theme, error) { return m.catalog.Themes() }

func (m *Model) Catalog() *Catalog { return m.catalog }

func (m *Model) Sizes() []int { return Sizes() }

func (m *Model) DefaultSize() int { return DefaultSize() }

func (m *Model) Colors() Colors { return m.colors }

func (m *Model) Size() int { return m.size }

func (m *Model) SkipFirst() bool { return m.skipFirst }

func (m *Model) Position() PositionOptions { return m.position }

// PresentationInfo builds the render snapshot for the current bar
func (m *Model) PresentationInfo(slides int, width, height float64) (PresentationInfo, error) {
	ab, err := m.CurrentBar()
	if err != nil {
		return PresentationInfo{}, err
	}
	return ab.PresentationInfo(slides, width, height), nil
}

// PresentationInfo builds the render snapshot for this bar
func (ab ActiveBar) PresentationInfo(slides int, width, height float64) PresentationInfo {
	return PresentationInfo{
		SlidesCount:         slides,
		Width:               width,
		Height:              height,
		UserSize:            ab.Size,
		DisableOnFirstSlide: ab.SkipFirst,
		Position:            ab.Position,
	}
}

// Tag snapshots the current bar for storage
func (m *Model) Tag() (Tag, error) {
	ab, err := m.CurrentBar()
	if err != nil {
		return Tag{}, err
	}
	themeIndex, err := m.catalog.Index(ab.Theme.Key())
	if err != nil {
		return Tag{}, err
	}
	return Tag{
		Version:             TagVersion,
		BarKey:              ab.Theme.Key(),
		ActiveColor:         ab.Colors.Active,
		InactiveColor:       ab.Colors.Inactive,
		Size:                ab.Size,
		SizeIndex:           SizeIndex(ab.Size),
		ThemeIndex:          themeIndex,
		DisableOnFirstFrame: ab.SkipFirst,
		PositionOptions:     ab.Position,
	}, nil
}

func (m *Model) snapshot(theme Theme) ActiveBar {
	return ActiveBar{
		Theme:     theme,
		Position:  positionFor(m.position, theme),
		Size:      m.size,
		Colors:    m.colors,
		SkipFirst: m.skipFirst,
	}
}

func (m *Model) currentCopy() *ActiveBar {
	if m.current == nil {
		return nil
	}
	ab := *m.current
	return &ab
}

func (m *Model) publish(ev Event) error {
	return m.bus.Publish(ev)
}

// positionFor re-resolves p against the theme; no selection means the default
func positionFor(p PositionOptions, theme Theme) PositionOptions {
	r := restrict(p, theme.Constraints())
	if r.Toggles() == (Toggles{}) {
		return DefaultPosition(theme.Constraints())
	}
	return r
}
