package compression

import (
	"errors"
	"io"
)

// MaxLRERunLength is the longest run a single LRE pair can describe.
const MaxLRERunLength = 255

// CompressLRE reads bytes from the input and writes them run-length encoded to
// the output until the input is exhausted. Each run becomes a (count, byte)
// pair, runs longer than [MaxLRERunLength] are split, and the stream ends with a
// null count. The return value is the number of bytes written, only valid if no
// error occurred.
func CompressLRE(input io.Reader, output io.Writer) (int64, error) {
	grouper := NewRunLengthGrouper(input)

	totalBytesWritten := int64(0)
	for {
		run, getRunErr := grouper.GetNextRun()
		if getRunErr != nil && !errors.Is(getRunErr, io.EOF) {
			// An error was encountered and it's *not* EOF.
			return totalBytesWritten, getRunErr
		}

		for run.RunLength > 0 {
			count := min(run.RunLength, MaxLRERunLength)
			n, err := output.Write([]byte{byte(count), run.Byte})
			totalBytesWritten += int64(n)
			if err != nil {
				return totalBytesWritten, err
			}
			run.RunLength -= count
		}

		// We bail at the beginning of the loop if an error occurred and it's
		// *not* EOF, so if the error here is non-nil then that means it *must*
		// be EOF. All that's left is the terminator.
		if getRunErr != nil {
			n, err := output.Write([]byte{0})
			totalBytesWritten += int64(n)
			return totalBytesWritten, err
		}
	}
}
