package bar

import (
	"fmt"
)

// EventKind identifies a model event
type EventKind int

const (
	EventBarCreated EventKind = iota + 1
	EventBarRemoved
	EventThemeChanged
	EventBarDetected
	EventPositionChanged
	EventColorsSet
	EventSizeSelected
	EventSkipFirstChanged
	EventSizesSet
	EventDefaultSizeSet
	EventBarsRegistered
)

var eventNames = map[EventKind]string{
	EventBarCreated:       "bar-created",
	EventBarRemoved:       "bar-removed",
	EventThemeChanged:     "theme-changed",
	EventBarDetected:      "bar-detected",
	EventPositionChanged:  "position-changed",
	EventColorsSet:        "colors-set",
	EventSizeSelected:     "size-selected",
	EventSkipFirstChanged: "skip-first-changed",
	EventSizesSet:         "sizes-set",
	EventDefaultSizeSet:   "default-size-set",
	EventBarsRegistered:   "bars-registered",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a notification emitted after a model transition has committed.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Bar       *ActiveBar
	Position  PositionOptions
	Colors    Colors
	Size      int
	SkipFirst bool
	Sizes     []int
	Themes    []Theme
	Tag       *Tag
}

// Listener handles an event. A returned error is reported to the mutator's caller.
type Listener func(Event) error

type subscription struct {
	kind     EventKind // 0 matches every kind
	listener Listener
}

// Bus delivers events synchronously in subscription order
type Bus struct {
	subs []subscription
}

// Subscribe registers l for kind
func (b *Bus) Subscribe(kind EventKind, l Listener) {
	b.subs = append(b.subs, subscription{kind: kind, listener: l})
}

// SubscribeAll registers l for every kind
func (b *Bus) SubscribeAll(l Listener) {
	b.subs = append(b.subs, subscription{listener: l})
}

// Publish runs every matching listener, even after one fails, and returns their
// errors as a *DispatchError. A panicking listener is reported as an error.
func (b *Bus) Publish(ev Event) error {
	var errs []error
	for _, s := range b.subs {
		if s.kind != 0 && s.kind != ev.Kind {
			continue
		}
		if err := deliver(s.listener, ev); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &DispatchError{Kind: ev.Kind, Errors: errs}
}

func deliver(l Listener, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panic on %s: %v", ev.Kind, r)
		}
	}()
	return l(ev)
}
