package compression

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// CompressImage reads an entire boot image from the input and writes it to the
// output as a PB12 stream, trailing null bytes removed.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used. Images
// larger than [MaxSourceSize] fail with [bootpack.ErrSourceTooLarge] before
// anything is written.
func CompressImage(input io.Reader, output io.Writer) (int64, error) {
	source, err := ReadSourceBuffer(input)
	if err != nil {
		return 0, err
	}
	return EncodePB12(source.Bytes(), output)
}

// CompressImageGzip works like [CompressImage] but wraps the PB12 stream in gzip
// using the highest compression available. Useful for archiving images; the
// boot ROM itself can only read the bare stream.
//
// The returned int64 is the size of the PB12 stream, i.e. before gzip.
func CompressImageGzip(input io.Reader, output io.Writer) (int64, error) {
	gzWriter, err := gzip.NewWriterLevel(output, gzip.BestCompression)
	if err != nil {
		return 0, err
	}

	n, err := CompressImage(input, gzWriter)
	if err != nil {
		gzWriter.Close()
		return n, err
	}
	return n, gzWriter.Close()
}
