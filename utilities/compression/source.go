package compression

import (
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/bootpack"
)

// MaxSourceSize is the largest image that can be encoded, the size of the
// memory region the boot ROM decompresses into.
const MaxSourceSize = 0x4000

// SourceBuffer holds one image to be encoded. It owns its storage, so the
// contents can't change out from under an encoding pass.
type SourceBuffer struct {
	data [MaxSourceSize]byte
	size int
}

// NewSourceBuffer copies `data` into a new [SourceBuffer]. It fails with
// [bootpack.ErrSourceTooLarge] if `data` is longer than [MaxSourceSize].
func NewSourceBuffer(data []byte) (*SourceBuffer, error) {
	if len(data) > MaxSourceSize {
		return nil, bootpack.ErrSourceTooLarge.WithMessage(
			fmt.Sprintf("%d bytes, limit is %d", len(data), MaxSourceSize))
	}
	buffer := &SourceBuffer{size: len(data)}
	copy(buffer.data[:], data)
	return buffer, nil
}

// ReadSourceBuffer reads the entire input stream into a new [SourceBuffer].
//
// If the stream holds more than [MaxSourceSize] bytes, nothing is returned and
// the error wraps [bootpack.ErrSourceTooLarge]. Read failures wrap
// [bootpack.ErrIOFailed].
func ReadSourceBuffer(input io.Reader) (*SourceBuffer, error) {
	buffer := &SourceBuffer{}

	n, err := io.ReadFull(input, buffer.data[:])
	buffer.size = n
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Short read, the whole image fit.
			return buffer, nil
		}
		return nil, bootpack.ErrIOFailed.Wrap(err)
	}

	// The buffer is full. Make sure that's the end of the stream.
	var probe [1]byte
	for {
		n, err = input.Read(probe[:])
		if n > 0 {
			return nil, bootpack.ErrSourceTooLarge.WithMessage(
				fmt.Sprintf("input exceeds %d bytes", MaxSourceSize))
		}
		if errors.Is(err, io.EOF) {
			return buffer, nil
		}
		if err != nil {
			return nil, bootpack.ErrIOFailed.Wrap(err)
		}
	}
}

// Len returns the number of bytes in the image, including trailing nulls.
func (buffer *SourceBuffer) Len() int {
	return buffer.size
}

// Bytes returns the full image. The slice aliases the buffer's storage and must
// not be modified.
func (buffer *SourceBuffer) Bytes() []byte {
	return buffer.data[:buffer.size]
}

// Trimmed returns the image with trailing null bytes removed. See
// [TrimTrailingZeros].
func (buffer *SourceBuffer) Trimmed() []byte {
	return TrimTrailingZeros(buffer.Bytes())
}

// TrimTrailingZeros returns the longest prefix of `data` that doesn't end with a
// null byte. If `data` consists only of nulls, the result is empty.
//
// The target memory is zeroed before decompression, so trailing nulls never
// need to be encoded.
func TrimTrailingZeros(data []byte) []byte {
	size := len(data)
	for size > 0 && data[size-1] == 0 {
		size--
	}
	return data[:size]
}
