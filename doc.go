/*
Package lz77 implements sliding-window LZ77 compression and decompression.

Format: a headerless byte stream of three token kinds, telling them apart by
the escape marker 0xCC. A byte other than the marker is a raw literal. The
sequence 0xCC 0x00 0x00 is a literal 0xCC (escape collision). Otherwise 0xCC
starts a pointer: 2 bytes holding a 12-bit backward offset and a 4-bit biased
length, big-endian, covering matches of 4..19 bytes against a 4096-byte
sliding window. A pointer never reaches past the window into bytes not yet
produced, so decompression resolves every back-reference from output it has
already reconstructed.

Match search is nearest-match-wins: the compressor takes the first run of at
least 4 bytes scanning from the smallest offset outward rather than hunting
for the globally longest match. This keeps compression cheap and deterministic
and is part of the format contract; changing it would change the emitted
stream for identical inputs.

Use Compress(src) and Decompress(src) for whole-buffer transforms.
Use CompressFile(in, out) and DecompressFile(in, out) for whole-file helpers.
Use DefaultCodec() for the format above, or NewCodec to derive a codec with
different bit widths; streams are only compatible between identical codecs.

# Examples

Round-trip compress and decompress:

	enc, err := lz77.Compress(data)
	if err != nil {
		return err
	}
	dec, err := lz77.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Compress a file and log sizes and ratio:

	lz77.SetLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel))
	if err := lz77.CompressFile("in.bin", "out.lz77"); err != nil {
		return err
	}

Custom parameters, for example a wider window via a 3-byte field with a
16-bit offset and an 8-bit length:

	codec, err := lz77.NewCodec(0xCC, 3, 16, 8)
	if err != nil {
		return err
	}
	enc, _ := codec.Compress(data)
	dec, _ := codec.Decompress(enc)
*/
package lz77
