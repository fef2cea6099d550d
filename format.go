package lz77

// Default wire-format parameters (see DefaultCodec).
const (
	EscapeMarker      = 0xCC // Reserved byte: starts a pointer or an escaped literal.
	PointerFieldBytes = 2    // Packed offset+length field size in bytes, excluding the escape marker.
	OffsetBits        = 12   // Bits of backward offset (sliding window of 4096 bytes).
	LengthBits        = 4    // Bits of biased match length (lengths 4..19).
	BufferMargin      = 10   // Read-ahead buffer slack beyond the longest match.
)
