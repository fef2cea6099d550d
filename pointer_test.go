package lz77

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeWireBytes(t *testing.T) {
	c := DefaultCodec()

	got, err := c.Encode(3, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xCC, 0x00, 0x30}, got)

	got, err = c.Encode(4095, 19)
	require.NoError(t, err)
	require.Equal(t, []byte{0xCC, 0xFF, 0xFF}, got)

	got, err = c.Encode(291, 7)
	require.NoError(t, err)
	require.Equal(t, []byte{0xCC, 0x12, 0x33}, got)
}

func TestEncodeDecodeInverse(t *testing.T) {
	c := DefaultCodec()
	pairs := []struct{ offset, length int }{
		{0, 4}, {3, 4}, {17, 11}, {4095, 19}, {2048, 5}, {1, 4},
	}

	for _, p := range pairs {
		enc, err := c.Encode(p.offset, p.length)
		require.NoError(t, err)
		require.Len(t, enc, c.pointerSize())

		offset, length, err := c.Decode(enc)
		require.NoError(t, err)
		require.Equal(t, p.offset, offset)
		require.Equal(t, p.length, length)
	}
}

func TestEncodeBounds(t *testing.T) {
	c := DefaultCodec()

	_, err := c.Encode(-1, 4)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = c.Encode(c.WindowSize(), 4)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = c.Encode(0, c.ShortestMatch()-1)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = c.Encode(0, c.LongestMatch()+1)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestDecodeMalformed(t *testing.T) {
	c := DefaultCodec()

	_, _, err := c.Decode([]byte{0xCC, 0x01})
	require.ErrorIs(t, err, ErrMalformedPointer)

	_, _, err = c.Decode(nil)
	require.ErrorIs(t, err, ErrMalformedPointer)

	// Leading byte must be the escape marker.
	_, _, err = c.Decode([]byte{0xAB, 0x00, 0x30})
	require.ErrorIs(t, err, ErrMalformedPointer)
}

func TestDerivedSizes(t *testing.T) {
	c := DefaultCodec()
	require.Equal(t, 4096, c.WindowSize())
	require.Equal(t, 29, c.BufferSize())
	require.Equal(t, 4, c.ShortestMatch())
	require.Equal(t, 19, c.LongestMatch())
}

func TestNewCodecCustomWidths(t *testing.T) {
	c, err := NewCodec(0xCC, 3, 16, 8)
	require.NoError(t, err)
	require.Equal(t, 1<<16, c.WindowSize())
	require.Equal(t, 5, c.ShortestMatch())
	require.Equal(t, 260, c.LongestMatch())
	require.Equal(t, 270, c.BufferSize())
}

func TestNewCodecRejectsBadWidths(t *testing.T) {
	_, err := NewCodec(0xCC, 1, 4, 4)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewCodec(0xCC, 2, 12, 5)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewCodec(0xCC, 2, 16, 0)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestNewCodecRejectsWideOffsets(t *testing.T) {
	// With an offset wider than 16 bits, a pointer with a small nonzero
	// offset zeroes its first two payload bytes and decodes as an escaped
	// literal: encode(4, 5) under a 20-bit offset would be CC 00 00 40.
	_, err := NewCodec(0xCC, 3, 20, 4)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewCodec(0xCC, 3, 17, 7)
	require.ErrorIs(t, err, ErrInvalidParameters)

	// 16 bits is the widest safe offset: two zero payload bytes then imply
	// offset zero, which no emitted pointer carries.
	_, err = NewCodec(0xCC, 3, 16, 8)
	require.NoError(t, err)
}
