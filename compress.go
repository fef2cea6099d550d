package lz77

import (
	"bytes"

	"github.com/icza/bitio"
)

// Compress compresses src with the default wire format.
func Compress(src []byte) ([]byte, error) {
	return DefaultCodec().Compress(src)
}

// Compress compresses src into the escape-marker wire form: literals pass
// through, literal bytes equal to the escape marker become the 3-byte
// collision sequence (marker, 0x00, 0x00), and repeated runs of at least
// ShortestMatch bytes found in the sliding window become pointers.
// Empty input yields empty output.
func (c Codec) Compress(src []byte) ([]byte, error) {
	window := newByteRing(c.WindowSize())
	buffer := newByteRing(c.BufferSize())
	remaining := src

	// refill moves up to n bytes from the unread input into the buffer tail.
	refill := func(n int) {
		for i := 0; i < n && len(remaining) > 0; i++ {
			buffer.PushBack(remaining[0])
			remaining = remaining[1:]
		}
	}
	refill(c.BufferSize())

	// Pre-allocate for the common case; worst case (all escape bytes) regrows.
	var out bytes.Buffer
	out.Grow(len(src) + len(src)/8 + 64)
	w := bitio.NewWriter(&out)

	for buffer.Len() > 0 {
		m, found := c.findMatch(window, buffer)

		if !found {
			head, _ := buffer.PopFront()
			window.PushBack(head)
			if head == c.escape {
				// Literal collides with the escape marker.
				w.TryWriteByte(c.escape)
				w.TryWriteByte(0x00)
				w.TryWriteByte(0x00)
			} else {
				w.TryWriteByte(head)
			}
			refill(1)
			continue
		}

		c.writePointer(w, m)
		for i := 0; i < m.length; i++ {
			b, _ := buffer.PopFront()
			window.PushBack(b)
		}
		refill(m.length)
	}

	if w.TryError != nil {
		return nil, w.TryError
	}
	// Every token is whole bytes, so Close never pads.
	if err := w.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
