package compression

import (
	"fmt"
	"io"
	"strings"

	"github.com/boljen/go-bitmap"
)

// LiteralMap records which positions of an image had to be stored as literals.
type LiteralMap struct {
	bits bitmap.Bitmap
	size int
}

// NewLiteralMap creates an empty map covering `size` input positions.
func NewLiteralMap(size int) LiteralMap {
	return LiteralMap{bits: bitmap.New(size), size: size}
}

// Len returns the number of positions the map covers.
func (m LiteralMap) Len() int {
	return m.size
}

// Mark flags `position` as a literal. Positions outside the map, e.g. padding
// bytes, are ignored.
func (m LiteralMap) Mark(position int) {
	if position < 0 || position >= m.size {
		return
	}
	m.bits.Set(position, true)
}

// IsLiteral reports whether the byte at `position` was stored as a literal.
func (m LiteralMap) IsLiteral(position int) bool {
	if position < 0 || position >= m.size {
		return false
	}
	return m.bits.Get(position)
}

// Count returns the number of positions marked as literals.
func (m LiteralMap) Count() int {
	count := 0
	for i := 0; i < m.size; i++ {
		if m.bits.Get(i) {
			count++
		}
	}
	return count
}

// Render draws the map as text, `width` positions per line. Each line starts
// with the offset of its first position, followed by `L` for literals and `.`
// for everything else.
func (m LiteralMap) Render(output io.Writer, width int) error {
	if width <= 0 {
		return fmt.Errorf("invalid literal map width: %d", width)
	}

	var line strings.Builder
	for start := 0; start < m.size; start += width {
		line.Reset()
		fmt.Fprintf(&line, "%04x  ", start)
		for i := start; i < start+width && i < m.size; i++ {
			if m.bits.Get(i) {
				line.WriteByte('L')
			} else {
				line.WriteByte('.')
			}
		}
		line.WriteByte('\n')

		_, err := io.WriteString(output, line.String())
		if err != nil {
			return fmt.Errorf("failed to write literal map: %w", err)
		}
	}
	return nil
}
