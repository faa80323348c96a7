package bar

import "fmt"

// Catalog is the ordered list of themes available to a process.
// It is built once by RegisterThemes and read-only afterwards.
type Catalog struct {
	themes []Theme
}

// RegisterThemes builds a catalog from themes in the given order.
// Duplicate keys are kept; Lookup returns the first.
func RegisterThemes(themes ...Theme) *Catalog {
	c := &Catalog{themes: make([]Theme, 0, len(themes))}
	c.themes = append(c.themes, themes...)
	return c
}

// NewBuiltinCatalog registers the themes shipped with slidebar
func NewBuiltinCatalog() *Catalog {
	return RegisterThemes(DottedBar{}, StripedBar{}, SolidBar{})
}

// Themes returns the registered themes, failing if none were registered
func (c *Catalog) Themes() ([]Theme, error) {
	if c == nil || len(c.themes) == 0 {
		return nil, ErrNoRegisteredTheme
	}
	out := make([]Theme, len(c.themes))
	copy(out, c.themes)
	return out, nil
}

// Lookup returns the first theme registered under key
func (c *Catalog) Lookup(key string) (Theme, error) {
	i, err := c.Index(key)
	if err != nil {
		return nil, err
	}
	return c.themes[i], nil
}

// Index returns the position of the first theme with key
func (c *Catalog) Index(key string) (int, error) {
	themes, err := c.Themes()
	if err != nil {
		return -1, err
	}
	for i, t := range themes {
		if t.Key() == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownTheme, key)
}

// At returns the theme at index i
func (c *Catalog) At(i int) (Theme, error) {
	themes, err := c.Themes()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(themes) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownTheme, i)
	}
	return themes[i], nil
}

// Keys lists theme keys in registration order
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.themes))
	for _, t := range c.themes {
		keys = append(keys, t.Key())
	}
	return keys
}
