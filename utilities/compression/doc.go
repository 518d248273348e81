// Package compression provides the encoders used to shrink boot ROM data
// before it is embedded in a ROM image.
//
// The main format is PB12. The Game Boy boot ROM zeroes video memory before it
// decompresses anything into it, so an image is first stripped of trailing
// null bytes; they never need to be stored. What remains is encoded one byte at
// a time. Every byte produces one event, described by two or four control bits:
//
//	10     the byte repeats the byte before the previous one
//	11     the byte repeats the previous byte
//	01 ii  the byte is prediction ii (0-3) derived from the previous byte
//	00     the byte is a literal, stored verbatim after the control byte
//
// The predictions model tile data where one row is a bit-shifted blend of the
// row above it. For a previous byte p they are, in order:
//
//	p | p<<1    p & p<<1    p | p>>1    p & p>>1
//
// Control bits are packed most significant bit first. Each time eight of them
// are available they are written out as a control byte, immediately followed by
// the literals whose events are inside that byte. The last partial control byte
// is completed by encoding implicit null bytes past the end of the input, so
// every control byte in the stream is made of real events. A single 0x01 byte
// terminates the stream. It's never used as a control byte: a prediction that
// would complete a 0x01 control byte is stored as a literal instead.
//
// For example, 3c 3c 7c encodes as 34 3c 01. The first byte has nothing to
// repeat or predict from, so it is a literal (00). The second repeats the
// previous byte (11), and 7c is 3c | 3c<<1, prediction 0 (01 00). The control
// byte 00110100 is followed by the single literal and the terminator.
//
// The package also contains LRE, the much simpler run-length encoding used by
// the same tooling: (count, byte) pairs with counts from 1 to 255, ending with a
// single null byte.

package compression
