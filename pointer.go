package lz77

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Codec bundles the wire-format parameters: the escape marker and the bit
// widths of the packed offset+length field. It is an immutable value; codecs
// with different parameters can coexist, but streams are only compatible
// between identical codecs.
type Codec struct {
	escape     byte
	fieldBytes int
	offsetBits uint8
	lengthBits uint8
}

// DefaultCodec returns the codec for the default wire format:
// escape marker 0xCC, 2-byte pointer field, 12-bit offset, 4-bit length.
func DefaultCodec() Codec {
	return Codec{
		escape:     EscapeMarker,
		fieldBytes: PointerFieldBytes,
		offsetBits: OffsetBits,
		lengthBits: LengthBits,
	}
}

// NewCodec returns a codec with custom parameters. The offset and length
// fields must exactly fill fieldBytes, and fieldBytes must be at least 2 so
// the escape-collision sequence (marker, 0x00, 0x00) stays shorter than any
// pointer payload it could be confused with. The offset may be at most 16
// bits wide: the decoder recognizes an escaped literal by two zero payload
// bytes, and with a wider offset a small nonzero offset would also zero those
// two bytes. At 16 bits or below, two zero bytes imply offset zero, which no
// emitted pointer carries (a match never reaches past the window's newest
// byte, so offset+1 >= length >= ShortestMatch).
func NewCodec(escape byte, fieldBytes int, offsetBits, lengthBits uint8) (Codec, error) {
	if fieldBytes < 2 {
		return Codec{}, fmt.Errorf("%w: pointer field must be at least 2 bytes, got %d", ErrInvalidParameters, fieldBytes)
	}
	if offsetBits == 0 || lengthBits == 0 {
		return Codec{}, fmt.Errorf("%w: offset and length widths must be non-zero", ErrInvalidParameters)
	}
	if offsetBits > 16 {
		return Codec{}, fmt.Errorf("%w: offset width %d exceeds 16 bits; a small-offset pointer would mimic the escaped-literal sequence",
			ErrInvalidParameters, offsetBits)
	}
	if int(offsetBits)+int(lengthBits) != fieldBytes*8 {
		return Codec{}, fmt.Errorf("%w: offset (%d) + length (%d) bits must fill %d bytes",
			ErrInvalidParameters, offsetBits, lengthBits, fieldBytes)
	}

	return Codec{
		escape:     escape,
		fieldBytes: fieldBytes,
		offsetBits: offsetBits,
		lengthBits: lengthBits,
	}, nil
}

// WindowSize returns the sliding window capacity in bytes.
func (c Codec) WindowSize() int {
	return 1 << c.offsetBits
}

// BufferSize returns the read-ahead buffer capacity in bytes.
func (c Codec) BufferSize() int {
	return c.LongestMatch() + BufferMargin
}

// ShortestMatch returns the shortest run a pointer may replace (inclusive).
// Below this, a pointer plus its escape marker would not be smaller than the
// literals it replaces.
func (c Codec) ShortestMatch() int {
	return c.fieldBytes + 2
}

// LongestMatch returns the longest run a pointer may replace (inclusive).
func (c Codec) LongestMatch() int {
	return 1<<c.lengthBits + c.ShortestMatch() - 1
}

// pointerSize returns the full encoded pointer size: escape marker + field.
func (c Codec) pointerSize() int {
	return c.fieldBytes + 1
}

// pointer is a back-reference into the sliding window. offset is the backward
// distance from the end of the window to the start of the match (zero-based,
// inclusive); length is the number of bytes the match covers.
type pointer struct {
	offset int
	length int
}

// writePointer emits the escape marker followed by the bit-packed field:
// offset in the high offsetBits, biased length in the low lengthBits,
// big-endian with no padding in between.
func (c Codec) writePointer(w *bitio.Writer, p pointer) {
	w.TryWriteByte(c.escape)
	w.TryWriteBits(uint64(p.offset), c.offsetBits)
	w.TryWriteBits(uint64(p.length-c.ShortestMatch()), c.lengthBits)
}

// Encode converts (offset, length) into its wire form: the escape marker
// followed by the packed pointer field. Offset must be below WindowSize and
// length within [ShortestMatch, LongestMatch].
func (c Codec) Encode(offset, length int) ([]byte, error) {
	if offset < 0 || offset >= c.WindowSize() {
		return nil, fmt.Errorf("%w: offset %d outside [0, %d)", ErrInvalidParameters, offset, c.WindowSize())
	}
	if length < c.ShortestMatch() || length > c.LongestMatch() {
		return nil, fmt.Errorf("%w: length %d outside [%d, %d]",
			ErrInvalidParameters, length, c.ShortestMatch(), c.LongestMatch())
	}

	var buf bytes.Buffer
	buf.Grow(c.pointerSize())
	w := bitio.NewWriter(&buf)
	c.writePointer(w, pointer{offset: offset, length: length})
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decode is the inverse of Encode: it reads the escape marker and the packed
// field from the start of src and returns the offset and the unbiased length.
// Bytes past the pointer are ignored.
func (c Codec) Decode(src []byte) (offset, length int, err error) {
	if len(src) < c.pointerSize() {
		return 0, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrMalformedPointer, c.pointerSize(), len(src))
	}
	if src[0] != c.escape {
		return 0, 0, fmt.Errorf("%w: leading byte 0x%02X is not the escape marker 0x%02X",
			ErrMalformedPointer, src[0], c.escape)
	}

	r := bitio.NewReader(bytes.NewReader(src[1:]))
	offset = int(r.TryReadBits(c.offsetBits))
	length = int(r.TryReadBits(c.lengthBits)) + c.ShortestMatch()
	if r.TryError != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedPointer, r.TryError)
	}

	return offset, length, nil
}
