package bar

import "fmt"

// TagVersion is the current layout of Tag
const TagVersion = 1

// Tag is the stored form of a bar, enough to restore it when a deck is reopened.
// BarKey and Size are authoritative; the indexes are kept for older tags that only
// carried positions in the pickers.
type Tag struct {
	Version             int             `yaml:"version"`
	BarKey              string          `yaml:"bar_key"`
	ActiveColor         RGB             `yaml:"active_color"`
	InactiveColor       RGB             `yaml:"inactive_color"`
	Size                int             `yaml:"size,omitempty"`
	SizeIndex           int             `yaml:"size_index"`
	ThemeIndex          int             `yaml:"theme_index"`
	DisableOnFirstFrame bool            `yaml:"disable_on_first_frame"`
	PositionOptions     PositionOptions `yaml:"position_options"`
}

func (t Tag) Validate() error {
	if t.BarKey == "" && t.ThemeIndex < 0 {
		return fmt.Errorf("tag: %w: no key and index %d", ErrUnknownTheme, t.ThemeIndex)
	}
	if t.Size != 0 {
		if SizeIndex(t.Size) < 0 {
			return fmt.Errorf("tag: %w: %d", ErrInvalidSize, t.Size)
		}
	} else if t.SizeIndex < 0 || t.SizeIndex >= len(Sizes()) {
		return fmt.Errorf("tag: %w: index %d", ErrInvalidSize, t.SizeIndex)
	}
	return t.PositionOptions.Validate()
}

// theme resolves the tag's theme by key, falling back to the index
func (t Tag) theme(c *Catalog) (Theme, error) {
	if t.BarKey != "" {
		return c.Lookup(t.BarKey)
	}
	return c.At(t.ThemeIndex)
}
