package lz77

import "fmt"

// tokenKind classifies the token at the decode cursor. The wire format has
// exactly three kinds, distinguished by a 1-3 byte lookahead.
type tokenKind int

const (
	tokenLiteral        tokenKind = iota // raw byte, not the escape marker
	tokenEscapedLiteral                  // marker, 0x00, 0x00: a literal escape byte
	tokenPointer                         // marker + packed offset/length field
)

// escapedLiteralSize is the wire size of an escaped literal.
const escapedLiteralSize = 3

// Decompress decompresses src with the default wire format.
func Decompress(src []byte) ([]byte, error) {
	return DefaultCodec().Decompress(src)
}

// Decompress reconstructs the original bytes from the compressed form. The
// output doubles as the back-reference history: every pointer resolves
// against bytes already produced, so no separate window is kept. Input that
// ends inside a token or points before the start of the output fails with
// ErrTruncatedInput or ErrMalformedPointer; nothing is returned on failure.
func (c Codec) Decompress(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)*2)

	for cur := 0; cur < len(src); {
		kind, err := c.peekToken(src[cur:])
		if err != nil {
			return nil, err
		}

		switch kind {
		case tokenLiteral:
			out = append(out, src[cur])
			cur++

		case tokenEscapedLiteral:
			out = append(out, c.escape)
			cur += escapedLiteralSize

		case tokenPointer:
			offset, length, err := c.Decode(src[cur : cur+c.pointerSize()])
			if err != nil {
				return nil, err
			}

			start := len(out) - offset - 1
			if start < 0 {
				return nil, fmt.Errorf("%w: back-reference reaches %d byte(s) before start of output",
					ErrMalformedPointer, -start)
			}
			// Byte-by-byte so each written byte is visible to later reads of
			// the same copy. copy(dst, src) does not handle overlap.
			for i := 0; i < length; i++ {
				out = append(out, out[start+i])
			}
			cur += c.pointerSize()
		}
	}

	return out, nil
}

// peekToken classifies the token starting at the front of rest; rest must be
// non-empty. An escape marker must be followed by either the two-zero-byte
// collision tail or a full pointer field.
func (c Codec) peekToken(rest []byte) (tokenKind, error) {
	if rest[0] != c.escape {
		return tokenLiteral, nil
	}
	if len(rest) < escapedLiteralSize {
		return 0, fmt.Errorf("%w: escape marker %d byte(s) before end of input", ErrTruncatedInput, len(rest)-1)
	}
	if rest[1] == 0x00 && rest[2] == 0x00 {
		return tokenEscapedLiteral, nil
	}
	if len(rest) < c.pointerSize() {
		return 0, fmt.Errorf("%w: pointer needs %d bytes, have %d", ErrTruncatedInput, c.pointerSize(), len(rest))
	}

	return tokenPointer, nil
}
