package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/gocarina/gocsv"
)

// Report summarizes one PB12 encoding pass.
type Report struct {
	// SourceSize is the size of the image before trailing nulls were removed.
	SourceSize int
	// TrimmedSize is the number of bytes actually encoded, not counting padding.
	TrimmedSize int
	// OutputSize is the size of the encoded stream, terminator included.
	OutputSize   int64
	ControlBytes int

	Literals     int
	RepeatsPrev0 int
	RepeatsPrev1 int
	// Predictions counts predicted bytes by prediction index.
	Predictions [4]int
	// Demoted counts literals that matched a prediction but had to be stored
	// verbatim to keep the reserved byte out of the control stream.
	Demoted int
	// PaddingBytes counts the implicit nulls encoded after the input ended.
	PaddingBytes int

	// SourceDigest is the xxHash64 of the trimmed image.
	SourceDigest uint64
}

// Ratio returns the encoded size as a fraction of the original size. An empty
// source has a ratio of 0.
func (r Report) Ratio() float64 {
	if r.SourceSize == 0 {
		return 0
	}
	return float64(r.OutputSize) / float64(r.SourceSize)
}

func (r *Report) count(event Event) {
	if event.Padding {
		r.PaddingBytes++
	}
	if event.Demoted {
		r.Demoted++
	}

	switch event.Kind {
	case Literal:
		r.Literals++
	case Predicted:
		r.Predictions[event.Index]++
	case RepeatPrev0:
		r.RepeatsPrev0++
	case RepeatPrev1:
		r.RepeatsPrev1++
	}
}

// Analysis is the result of encoding an image with every event recorded.
type Analysis struct {
	Report     Report
	Events     []Event
	LiteralMap LiteralMap
	// Output is the encoded stream, identical to what [EncodePB12] writes.
	Output []byte
}

// Analyze encodes the image in `source` and records how each byte was encoded.
func Analyze(source *SourceBuffer) *Analysis {
	trimmed := source.Trimmed()
	analysis := &Analysis{
		Report: Report{
			SourceSize:   source.Len(),
			TrimmedSize:  len(trimmed),
			SourceDigest: xxhash.Sum64(trimmed),
		},
		LiteralMap: NewLiteralMap(len(trimmed)),
	}

	var output bytes.Buffer
	encoder := NewEncoder(&output)
	encoder.SetEventHandler(func(event Event) {
		analysis.Events = append(analysis.Events, event)
		analysis.Report.count(event)
		if event.Kind == Literal && !event.Padding {
			analysis.LiteralMap.Mark(event.Position)
		}
	})

	// Writes to a bytes.Buffer can't fail.
	n, _ := encoder.Encode(trimmed)

	analysis.Output = output.Bytes()
	analysis.Report.OutputSize = n
	// Everything but the terminator is either a control byte or a literal.
	analysis.Report.ControlBytes = len(analysis.Output) - 1 - analysis.Report.Literals
	return analysis
}

// WriteEventsCSV writes one CSV row per event, with a header row.
func WriteEventsCSV(events []Event, output io.Writer) error {
	err := gocsv.Marshal(&events, output)
	if err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}
	return nil
}
