package bar

const (
	minSize = 1
	maxSize = 30
)

// Sizes returns the selectable bar thicknesses, 1..30
func Sizes() []int {
	sizes := make([]int, 0, maxSize-minSize+1)
	for s := minSize; s <= maxSize; s++ {
		sizes = append(sizes, s)
	}
	return sizes
}

// DefaultSize is the element at a quarter of the size list (8).
// Stored tags depend on this value.
func DefaultSize() int {
	sizes := Sizes()
	return sizes[len(sizes)/4]
}

// SizeIndex returns the position of size in Sizes, or -1
func SizeIndex(size int) int {
	if size < minSize || size > maxSize {
		return -1
	}
	return size - minSize
}
