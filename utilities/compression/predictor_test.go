package compression_test

import (
	"fmt"
	"testing"

	c "github.com/dargueta/bootpack/utilities/compression"
	"github.com/stretchr/testify/assert"
)

func TestPredictedOptions(t *testing.T) {
	tests := []struct {
		Previous byte
		Expected [4]byte
	}{
		{0x00, [4]byte{0x00, 0x00, 0x00, 0x00}},
		{0x3c, [4]byte{0x7c, 0x38, 0x3e, 0x1c}},
		{0x81, [4]byte{0x83, 0x00, 0xc1, 0x00}},
		{0xff, [4]byte{0xff, 0xfe, 0xff, 0x7f}},
		{0x80, [4]byte{0x80, 0x00, 0xc0, 0x00}},
	}

	for _, test := range tests {
		t.Run(
			fmt.Sprintf("%02x", test.Previous),
			func(t *testing.T) {
				assert.Equal(t, test.Expected, c.PredictedOptions(test.Previous))
			},
		)
	}
}

func TestPredictedOptions__AllBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		options := c.PredictedOptions(b)
		assert.Equal(t, byte((i|i<<1)&0xff), options[0])
		assert.Equal(t, byte((i&(i<<1))&0xff), options[1])
		assert.Equal(t, byte(i|i>>1), options[2])
		assert.Equal(t, byte(i&(i>>1)), options[3])
	}
}
