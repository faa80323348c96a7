package bar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoRegisteredTheme is returned when the theme catalog is read before bootstrap
	ErrNoRegisteredTheme = errors.New("no registered themes: themes must be registered before use")
	// ErrNoActiveBar is returned by accessors that need an active bar
	ErrNoActiveBar = errors.New("no active bar")
	// ErrUnknownColorRole means a theme produced a shape with a role other than Active/Inactive
	ErrUnknownColorRole = errors.New("unknown color role")
	// ErrNotImplemented marks in-place resize/reposition; use remove then add instead
	ErrNotImplemented = errors.New("not implemented")

	ErrUnknownTheme      = errors.New("unknown theme")
	ErrInvalidPosition   = errors.New("invalid position toggles")
	ErrInvalidSlide      = errors.New("invalid slide")
	ErrInvalidSize       = errors.New("invalid bar size")
	ErrNegativeDimension = errors.New("negative shape dimension")
	ErrNoFrames          = errors.New("presentation has no slides")
)

// DispatchError collects the failures of event listeners.
// The mutation that emitted the event has already been committed.
type DispatchError struct {
	Kind   EventKind
	Errors []error
}

func (e *DispatchError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d listener(s) failed on %s: %s", len(e.Errors), e.Kind, strings.Join(msgs, "; "))
}

func (e *DispatchError) Unwrap() error {
	return errors.Join(e.Errors...)
}
