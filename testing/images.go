package testing

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LogoTiles is the 48-byte logo bitmap every cartridge header carries, a small
// real-world sample of 1bpp tile data.
var LogoTiles = []byte{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0c, 0x00, 0x0d, 0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
	0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99, 0xbb, 0xbb, 0x67, 0x63,
	0x6e, 0x0e, 0xec, 0xcc, 0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}

// NewImageStream returns a stream over a copy of `image`, so tests can read it
// like a file without the original being modified.
//
//   - Writes to the stream do not affect `image`.
//   - While the stream can be written to, its size is fixed to `len(image)`.
//     Attempting to write past the end of this buffer will trigger an error.
func NewImageStream(t *testing.T, image []byte) io.ReadWriteSeeker {
	imageCopy := make([]byte, len(image))
	copy(imageCopy, image)
	stream := bytesextra.NewReadWriteSeeker(imageCopy)
	require.NotNil(t, stream, "failed to create image stream")
	return stream
}

// CreateRandomImage creates an image of the given size filled with random bytes.
// It is guaranteed to either return a valid slice or fail the test and abort.
func CreateRandomImage(t *testing.T, size int) []byte {
	image := make([]byte, size)
	_, err := rand.Read(image)
	require.NoErrorf(t, err, "failed to initialize %d random bytes", size)
	return image
}

// CreateTileImage creates an image in which every row is derived from the one
// before it by the same shifts the PB12 predictions model, with occasional
// unpredictable rows mixed in. `seed` picks the starting row.
func CreateTileImage(size int, seed byte) []byte {
	image := make([]byte, size)
	row := seed | 1
	for i := range image {
		switch i % 7 {
		case 0, 3:
			row |= row << 1
		case 1:
			row |= row >> 1
		case 2:
			row &= row >> 1
		case 4:
			// Repeat
		case 5:
			row = row*37 + byte(i)
		case 6:
			row &= row << 1
		}
		if row == 0 {
			row = seed ^ byte(i)
		}
		image[i] = row
	}
	return image
}
