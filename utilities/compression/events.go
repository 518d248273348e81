package compression

import "fmt"

// EventKind identifies how a single byte was encoded.
type EventKind int

const (
	// Literal bytes are copied verbatim after their control byte.
	Literal EventKind = iota
	// Predicted bytes are one of the [PredictedOptions] of the previous byte.
	Predicted
	// RepeatPrev0 bytes repeat the byte before the previous one.
	RepeatPrev0
	// RepeatPrev1 bytes repeat the previous byte.
	RepeatPrev1
)

func (kind EventKind) String() string {
	switch kind {
	case Literal:
		return "literal"
	case Predicted:
		return "predicted"
	case RepeatPrev0:
		return "repeat-prev0"
	case RepeatPrev1:
		return "repeat-prev1"
	default:
		return fmt.Sprintf("EventKind(%d)", int(kind))
	}
}

// MarshalCSV implements gocsv's TypeMarshaller.
func (kind EventKind) MarshalCSV() (string, error) {
	return kind.String(), nil
}

// controlCode returns the control bits for an event and how many there are.
func (kind EventKind) controlCode(index int) (uint16, uint) {
	switch kind {
	case Literal:
		return 0b00, 2
	case Predicted:
		return 0b0100 | uint16(index&0b11), 4
	case RepeatPrev0:
		return 0b10, 2
	case RepeatPrev1:
		return 0b11, 2
	default:
		panic(fmt.Sprintf("invalid event kind %d", int(kind)))
	}
}

// Event describes how one byte was encoded.
type Event struct {
	// Position is the byte's offset in the trimmed input. Padding bytes continue
	// counting past the end.
	Position int `csv:"position"`
	// Value is the byte that was encoded.
	Value byte `csv:"value"`
	// Kind tells how the byte was encoded.
	Kind EventKind `csv:"kind"`
	// Index is the prediction index for [Predicted] events, -1 otherwise.
	Index int `csv:"index"`
	// Padding is true for the implicit null bytes encoded after the end of the
	// input to complete the last control byte.
	Padding bool `csv:"padding"`
	// ControlByte is the ordinal of the control byte holding this event's
	// code. If a prediction's code spans two control bytes, it's the first one.
	ControlByte int `csv:"control_byte"`
	// Demoted is true for literals that matched a prediction but would have
	// completed a reserved control byte.
	Demoted bool `csv:"demoted"`
}

// EventHandler receives every [Event] produced by an [Encoder], in input order.
type EventHandler func(event Event)
