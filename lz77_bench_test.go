package lz77

import (
	"bytes"
	"math/rand"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func BenchmarkCompress(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compress(data)
	}
}

func BenchmarkCompressInputKinds(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 16384)
	rng.Read(random)

	inputs := []struct {
		name string
		data []byte
	}{
		{"Text", benchInput},
		{"Uniform", bytes.Repeat([]byte{'a'}, 16384)},
		{"Random", random},
		{"EscapeHeavy", bytes.Repeat([]byte{EscapeMarker}, 16384)},
	}

	for _, in := range inputs {
		in := in
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Compress(in.data)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	enc, err := Compress(benchInput)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(enc)
	}
}
