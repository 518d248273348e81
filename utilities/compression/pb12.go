package compression

import (
	"bytes"
	"fmt"
	"io"
)

// EndOfStream is the byte terminating every PB12 stream. It's reserved, so the
// encoder never emits it as a control byte.
const EndOfStream byte = 0x01

// maxQueuedLiterals is the most literals that can be waiting for a control byte.
//
// Literal codes are two bits wide, and the number of pending control bits is
// always even, so a literal's code never straddles two control bytes. A control
// byte thus holds at most four literal codes, and the queue is emptied every
// time one is written.
const maxQueuedLiterals = 4

type literalQueue struct {
	values [maxQueuedLiterals]byte
	size   int
}

func (queue *literalQueue) push(value byte) {
	if queue.size == len(queue.values) {
		panic(fmt.Sprintf("literal queue overflow: more than %d literals for one control byte", maxQueuedLiterals))
	}
	queue.values[queue.size] = value
	queue.size++
}

func (queue *literalQueue) bytes() []byte {
	return queue.values[:queue.size]
}

func (queue *literalQueue) clear() {
	queue.size = 0
}

// Encoder writes PB12-encoded data to an [io.Writer].
type Encoder struct {
	output  io.Writer
	handler EventHandler
}

// NewEncoder creates an [Encoder] writing to `output`.
func NewEncoder(output io.Writer) *Encoder {
	return &Encoder{output: output}
}

// SetEventHandler installs a function called for every byte encoded, including
// padding. Pass nil to remove it.
func (enc *Encoder) SetEventHandler(handler EventHandler) {
	enc.handler = handler
}

// Encode writes `data` as one complete PB12 stream, terminator included, and
// returns the number of bytes written. If an error occurred the count is the
// number of bytes written before the failure.
//
// `data` is encoded exactly as given. Trailing null bytes aren't removed; use
// [EncodePB12] for that.
//
// Every call is an independent pass: no state carries over between calls.
func (enc *Encoder) Encode(data []byte) (int64, error) {
	pass := encodingPass{
		output:  enc.output,
		handler: enc.handler,
	}

	for _, value := range data {
		err := pass.encodeByte(value, false)
		if err != nil {
			return pass.bytesWritten, err
		}
	}

	// Finish the last control byte by encoding nulls, as if the input went on
	// forever.
	for !pass.control.empty() {
		err := pass.encodeByte(0, true)
		if err != nil {
			return pass.bytesWritten, err
		}
	}

	err := pass.write([]byte{EndOfStream})
	return pass.bytesWritten, err
}

// EncodePB12 removes trailing null bytes from `data`, then writes the rest to
// `output` as a PB12 stream. It returns the number of bytes written.
func EncodePB12(data []byte, output io.Writer) (int64, error) {
	return NewEncoder(output).Encode(TrimTrailingZeros(data))
}

// EncodePB12ToBytes is a convenience function wrapping [EncodePB12]. It
// functions identically, except it returns the encoded data in a new byte slice
// instead of writing to an [io.Writer].
func EncodePB12ToBytes(data []byte) []byte {
	var buffer bytes.Buffer
	// Writes to a bytes.Buffer can't fail.
	_, _ = EncodePB12(data, &buffer)
	return buffer.Bytes()
}

// encodingPass holds the state of a single call to [Encoder.Encode].
type encodingPass struct {
	output    io.Writer
	handler   EventHandler
	predictor predictorState
	control   controlAccumulator
	literals  literalQueue

	position     int
	controlBytes int
	bytesWritten int64
}

// classify decides how to encode `value` given the bytes seen so far.
func (pass *encodingPass) classify(value byte, padding bool) Event {
	event := Event{
		Position:    pass.position,
		Value:       value,
		Kind:        Literal,
		Index:       -1,
		Padding:     padding,
		ControlByte: pass.controlBytes,
	}

	// prev1 is tested first so a byte equal to both slots uses the prev1 code.
	switch {
	case pass.predictor.prev1.matches(value):
		event.Kind = RepeatPrev1
	case pass.predictor.prev0.matches(value):
		event.Kind = RepeatPrev0
	default:
		index := pass.predictor.predictionIndex(value)
		if index < 0 {
			break
		}
		code, width := Predicted.controlCode(index)
		if pass.control.completesReservedByte(code, width) {
			event.Demoted = true
			break
		}
		event.Kind = Predicted
		event.Index = index
	}
	return event
}

func (pass *encodingPass) encodeByte(value byte, padding bool) error {
	event := pass.classify(value, padding)

	code, width := event.Kind.controlCode(event.Index)
	pass.control.push(code, width)
	if event.Kind == Literal {
		pass.literals.push(value)
	}
	pass.predictor.push(value)
	pass.position++

	if pass.handler != nil {
		pass.handler(event)
	}

	if pass.control.hasByte() {
		return pass.flush()
	}
	return nil
}

// flush writes the next control byte and the literals belonging to it.
func (pass *encodingPass) flush() error {
	control := pass.control.popByte()
	if control == EndOfStream {
		panic(fmt.Sprintf(
			"control byte %d at input position %d is the reserved end marker 0x%02x",
			pass.controlBytes, pass.position-1, EndOfStream))
	}

	record := make([]byte, 0, 1+maxQueuedLiterals)
	record = append(record, control)
	record = append(record, pass.literals.bytes()...)
	pass.literals.clear()
	pass.controlBytes++

	return pass.write(record)
}

func (pass *encodingPass) write(data []byte) error {
	n, err := pass.output.Write(data)
	pass.bytesWritten += int64(n)
	if err != nil {
		return fmt.Errorf("failed to write to output: %w", err)
	}
	return nil
}
