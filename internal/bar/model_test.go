package bar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every event the model emits
type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func newTestModel() (*Model, *recorder) {
	m := NewModel(NewBuiltinCatalog())
	rec := &recorder{}
	m.SubscribeAll(rec.listen)
	return m, rec
}

func TestModel_InitialState(t *testing.T) {
	m, rec := newTestModel()

	assert.False(t, m.HasBar())
	_, err := m.CurrentBar()
	assert.ErrorIs(t, err, ErrNoActiveBar)
	assert.Equal(t, 8, m.Size())
	assert.Equal(t, DefaultColors(), m.Colors())
	assert.Empty(t, rec.events)
}

func TestModel_AddChangeRemove(t *testing.T) {
	m, rec := newTestModel()

	require.NoError(t, m.Add("dotted"))
	assert.True(t, m.HasBar())
	ab, err := m.CurrentBar()
	require.NoError(t, err)
	assert.Equal(t, "dotted", ab.Theme.Key())
	assert.True(t, ab.Position.Bottom.Selected)

	require.NoError(t, m.ChangeTheme("striped"))
	ab, err = m.CurrentBar()
	require.NoError(t, err)
	assert.Equal(t, "striped", ab.Theme.Key())
	assert.Equal(t, 8, ab.Size)

	require.NoError(t, m.Remove())
	assert.False(t, m.HasBar())

	assert.Equal(t, []EventKind{EventBarCreated, EventThemeChanged, EventBarRemoved}, rec.kinds())
	assert.Equal(t, "dotted", rec.events[0].Bar.Theme.Key())
}

func TestModel_RemoveWithoutBarEmitsNothing(t *testing.T) {
	m, rec := newTestModel()
	require.NoError(t, m.Remove())
	assert.Empty(t, rec.events)
}

func TestModel_ChangeThemeNeedsBar(t *testing.T) {
	m, rec := newTestModel()
	assert.ErrorIs(t, m.ChangeTheme("striped"), ErrNoActiveBar)
	assert.Empty(t, rec.events)
}

func TestModel_UnknownThemeLeavesStateAlone(t *testing.T) {
	m, rec := newTestModel()
	assert.ErrorIs(t, m.Add("neon"), ErrUnknownTheme)
	assert.False(t, m.HasBar())
	assert.Empty(t, rec.events)
}

func TestModel_ResizeAndRepositionAreNotImplemented(t *testing.T) {
	m, _ := newTestModel()
	require.NoError(t, m.Add("solid"))

	assert.ErrorIs(t, m.Resize(12), ErrNotImplemented)
	assert.ErrorIs(t, m.Reposition(PositionOptions{}), ErrNotImplemented)
}

func TestModel_SettingsApplyToNextBar(t *testing.T) {
	m, rec := newTestModel()

	colors := Colors{Active: RGB{R: 255}, Inactive: RGB{B: 255}}
	pos, err := ResolvePosition(AllEdges, Toggles{Top: true, Right: true})
	require.NoError(t, err)

	require.NoError(t, m.SetColors(colors))
	require.NoError(t, m.SetSize(20))
	require.NoError(t, m.SetSkipFirst(true))
	require.NoError(t, m.SetPositionOptions(pos))
	assert.ErrorIs(t, m.SetSize(31), ErrInvalidSize)

	require.NoError(t, m.Add("solid"))
	ab, err := m.CurrentBar()
	require.NoError(t, err)
	assert.Equal(t, colors, ab.Colors)
	assert.Equal(t, 20, ab.Size)
	assert.True(t, ab.SkipFirst)
	assert.Equal(t, pos, ab.Position)

	assert.Equal(t, []EventKind{
		EventColorsSet, EventSizeSelected, EventSkipFirstChanged, EventPositionChanged, EventBarCreated,
	}, rec.kinds())

	info, err := m.PresentationInfo(5, 720, 540)
	require.NoError(t, err)
	assert.Equal(t, 20, info.UserSize)
	assert.True(t, info.DisableOnFirstSlide)
	assert.Equal(t, 5, info.SlidesCount)
}

func TestModel_ThemeConstraintsClampPosition(t *testing.T) {
	m, _ := newTestModel()
	pos, err := ResolvePosition(AllEdges, Toggles{Top: true, Right: true})
	require.NoError(t, err)
	require.NoError(t, m.SetPositionOptions(pos))

	require.NoError(t, m.Add("dotted"))
	ab, err := m.CurrentBar()
	require.NoError(t, err)
	assert.True(t, ab.Position.Top.Selected)
	assert.False(t, ab.Position.Right.Selected)
	assert.False(t, ab.Position.Right.Available)
}

func TestModel_ListenerFailureKeepsCommittedState(t *testing.T) {
	m := NewModel(NewBuiltinCatalog())
	failure := errors.New("shape creation failed")
	var after []bool

	m.Subscribe(EventBarCreated, func(Event) error { return failure })
	m.Subscribe(EventBarCreated, func(Event) error { after = append(after, m.HasBar()); return nil })

	err := m.Add("striped")
	require.ErrorIs(t, err, failure)
	assert.True(t, m.HasBar())
	assert.Equal(t, []bool{true}, after)
}

func TestModel_BootstrapEvents(t *testing.T) {
	m, rec := newTestModel()

	require.NoError(t, m.PublishSizes())
	require.NoError(t, m.PublishColors())
	require.NoError(t, m.PublishRegisteredBars())

	require.Equal(t, []EventKind{EventSizesSet, EventDefaultSizeSet, EventColorsSet, EventBarsRegistered}, rec.kinds())
	assert.Len(t, rec.events[0].Sizes, 30)
	assert.Equal(t, 8, rec.events[1].Size)
	assert.Len(t, rec.events[3].Themes, 3)

	empty := NewModel(RegisterThemes())
	assert.ErrorIs(t, empty.PublishRegisteredBars(), ErrNoRegisteredTheme)
}
