package testing

import (
	"testing"

	"github.com/dargueta/bootpack/utilities/compression"
	"github.com/stretchr/testify/require"
)

// DecodePB12 expands a PB12 stream the same way the boot ROM does, so tests can
// check encoder output for round-trip correctness. It fails the test if the
// stream is malformed, or if anything follows the terminator.
//
// The result includes the null bytes the encoder appended as padding.
func DecodePB12(t *testing.T, stream []byte) []byte {
	output := []byte{}
	prev := [2]int{-1, -1}
	position := 0

	next := func() byte {
		require.Lessf(t, position, len(stream), "stream ended without a terminator")
		value := stream[position]
		position++
		return value
	}

	for {
		control := next()
		if control == compression.EndOfStream {
			break
		}

		for shift := 6; shift >= 0; shift -= 2 {
			var value byte

			switch (control >> shift) & 0b11 {
			case 0b00:
				value = next()
			case 0b01:
				require.GreaterOrEqualf(
					t, prev[1], 0, "prediction at offset %d before any byte", len(output))
				// The index may continue in the next control byte.
				if shift == 0 {
					control = next()
					shift = 8
				}
				shift -= 2
				index := (control >> shift) & 0b11
				value = compression.PredictedOptions(byte(prev[1]))[index]
			case 0b10:
				require.GreaterOrEqualf(
					t, prev[0], 0, "repeat of prev0 at offset %d before it's set", len(output))
				value = byte(prev[0])
			case 0b11:
				require.GreaterOrEqualf(
					t, prev[1], 0, "repeat of prev1 at offset %d before it's set", len(output))
				value = byte(prev[1])
			}

			output = append(output, value)
			prev[0], prev[1] = prev[1], int(value)
		}
	}

	require.Equalf(
		t, len(stream), position, "%d bytes follow the terminator", len(stream)-position)
	return output
}
