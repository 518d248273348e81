package compression

// controlAccumulator collects control bits until a whole control byte can be
// written. Bits are appended at the least significant end, so the oldest bit is
// always the most significant one held.
//
// Every event adds two or four bits and a byte is removed as soon as eight are
// held, so there are never more than ten bits pending.
type controlAccumulator struct {
	bits  uint16
	count uint
}

// push appends the low `width` bits of `code`.
func (acc *controlAccumulator) push(code uint16, width uint) {
	acc.bits = acc.bits<<width | code&(1<<width-1)
	acc.count += width
}

func (acc *controlAccumulator) hasByte() bool {
	return acc.count >= 8
}

// peekByte returns the control byte that popByte would return next. Only valid
// if hasByte() is true.
func (acc *controlAccumulator) peekByte() byte {
	return byte(acc.bits >> (acc.count - 8))
}

// popByte removes and returns the eight oldest bits.
func (acc *controlAccumulator) popByte() byte {
	value := acc.peekByte()
	acc.count -= 8
	acc.bits &= 1<<acc.count - 1
	return value
}

// completesReservedByte reports whether appending `code` would complete a
// control byte equal to [EndOfStream].
func (acc controlAccumulator) completesReservedByte(code uint16, width uint) bool {
	acc.push(code, width)
	return acc.hasByte() && acc.peekByte() == EndOfStream
}

func (acc *controlAccumulator) empty() bool {
	return acc.count == 0
}
