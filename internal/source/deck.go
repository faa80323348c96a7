package source

import (
	"errors"
	"fmt"
	"sort"
)

// Frame is one visible slide. Number is 1-based among visible slides;
// Index is the page index in the underlying Source.
type Frame struct {
	Number int
	Index  int
	Width  float64
	Height float64
}

// Deck is the slide sequence a bar is drawn across: a Source minus hidden pages
type Deck struct {
	src    Source
	hidden map[int]bool
}

// NewDeck wraps src. hidden lists 1-based page numbers that are skipped.
func NewDeck(src Source, hidden []int) *Deck {
	h := make(map[int]bool, len(hidden))
	for _, n := range hidden {
		h[n-1] = true
	}
	return &Deck{src: src, hidden: h}
}

func (d *Deck) Source() Source { return d.src }

func (d *Deck) visibleIndexes() []int {
	var idx []int
	for i := 0; i < d.src.PageCount(); i++ {
		if !d.hidden[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func (d *Deck) HasFrames() bool {
	return len(d.visibleIndexes()) > 0
}

// VisibleFrames lists the visible slides in order
func (d *Deck) VisibleFrames() ([]Frame, error) {
	idx := d.visibleIndexes()
	frames := make([]Frame, 0, len(idx))
	for n, i := range idx {
		w, h, err := d.src.GetPageDimensions(i)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		frames = append(frames, Frame{Number: n + 1, Index: i, Width: w, Height: h})
	}
	return frames, nil
}

// FrameSequenceSize is the size of the first visible slide; the bar is laid out on it
func (d *Deck) FrameSequenceSize() (width, height float64, err error) {
	idx := d.visibleIndexes()
	if len(idx) == 0 {
		return 0, 0, errors.New("deck has no visible slides")
	}
	return d.src.GetPageDimensions(idx[0])
}

// HiddenPages returns the skipped 1-based page numbers, sorted
func (d *Deck) HiddenPages() []int {
	pages := make([]int, 0, len(d.hidden))
	for i := range d.hidden {
		pages = append(pages, i+1)
	}
	sort.Ints(pages)
	return pages
}
