package compression_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/dargueta/bootpack"
	bt "github.com/dargueta/bootpack/testing"
	c "github.com/dargueta/bootpack/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TrimTestCase struct {
	Input    []byte
	Expected []byte
	Name     string
}

func TestTrimTrailingZeros__Basic(t *testing.T) {
	tests := []TrimTestCase{
		{[]byte{}, []byte{}, "empty"},
		{[]byte{0}, []byte{}, "single null"},
		{make([]byte, 512), []byte{}, "all nulls"},
		{[]byte{1, 2, 3}, []byte{1, 2, 3}, "no trailing nulls"},
		{[]byte{0, 0, 7}, []byte{0, 0, 7}, "leading nulls kept"},
		{[]byte{9, 0, 4, 0, 0}, []byte{9, 0, 4}, "interior null kept"},
		{[]byte{0xff, 0}, []byte{0xff}, "one trailing null"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				trimmed := c.TrimTrailingZeros(test.Input)
				assert.Equal(t, test.Expected, trimmed)
				assert.Equal(
					t, trimmed, c.TrimTrailingZeros(trimmed), "trimming isn't idempotent")
			},
		)
	}
}

func TestTrimTrailingZeros__NoTrailingNullsIsNoOp(t *testing.T) {
	image := bt.CreateRandomImage(t, c.MaxSourceSize)
	image[len(image)-1] |= 0x80
	assert.Equal(t, image, c.TrimTrailingZeros(image))
}

func TestNewSourceBuffer(t *testing.T) {
	buffer, err := c.NewSourceBuffer([]byte{5, 6, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, buffer.Len())
	assert.Equal(t, []byte{5, 6, 0}, buffer.Bytes())
	assert.Equal(t, []byte{5, 6}, buffer.Trimmed())
}

func TestNewSourceBuffer__OwnsItsData(t *testing.T) {
	data := []byte{1, 2, 3}
	buffer, err := c.NewSourceBuffer(data)
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, []byte{1, 2, 3}, buffer.Bytes(), "buffer shares storage with its input")
}

func TestNewSourceBuffer__TooLarge(t *testing.T) {
	_, err := c.NewSourceBuffer(make([]byte, c.MaxSourceSize+1))
	assert.ErrorIs(t, err, bootpack.ErrSourceTooLarge)
}

func TestReadSourceBuffer__Sizes(t *testing.T) {
	for _, size := range []int{0, 1, 48, c.MaxSourceSize - 1, c.MaxSourceSize} {
		image := bt.CreateRandomImage(t, size)
		buffer, err := c.ReadSourceBuffer(bt.NewImageStream(t, image))
		require.NoErrorf(t, err, "failed to read image of %d bytes", size)
		assert.Equalf(t, image, buffer.Bytes(), "image of %d bytes read wrong", size)
	}
}

func TestReadSourceBuffer__OneByteTooLarge(t *testing.T) {
	image := bytes.Repeat([]byte{0xaa}, c.MaxSourceSize+1)
	_, err := c.ReadSourceBuffer(bt.NewImageStream(t, image))
	assert.ErrorIs(t, err, bootpack.ErrSourceTooLarge)
}

func TestReadSourceBuffer__SlowReader(t *testing.T) {
	image := bt.CreateRandomImage(t, 1000)
	buffer, err := c.ReadSourceBuffer(iotest.OneByteReader(bytes.NewReader(image)))
	require.NoError(t, err)
	assert.Equal(t, image, buffer.Bytes())
}

func TestReadSourceBuffer__ReadError(t *testing.T) {
	readErr := errors.New("sector not found")
	_, err := c.ReadSourceBuffer(iotest.ErrReader(readErr))
	assert.ErrorIs(t, err, bootpack.ErrIOFailed)
	assert.ErrorIs(t, err, readErr)
}
