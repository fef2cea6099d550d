package lz77

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger reports file helper activity. Disabled unless replaced via SetLogger.
// Held behind an atomic pointer so SetLogger is safe while file helpers run
// on other goroutines.
var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger replaces the package logger used by CompressFile and
// DecompressFile. Safe for concurrent use. The core transforms never log.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// CompressFile reads inPath whole, compresses it with the default wire format
// and writes the result to outPath.
func CompressFile(inPath, outPath string) error {
	src, err := os.ReadFile(inPath) // #nosec G304 -- caller-supplied path by design of the API
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	enc, err := Compress(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, enc, 0o644); err != nil { // #nosec G306
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Load().Debug().
		Str("in", inPath).
		Str("out", outPath).
		Int("rawSize", len(src)).
		Int("compressedSize", len(enc)).
		Float64("ratio", ratio(len(src), len(enc))).
		Msg("compressed file")

	return nil
}

// DecompressFile reads inPath whole, decompresses it with the default wire
// format and writes the result to outPath.
func DecompressFile(inPath, outPath string) error {
	src, err := os.ReadFile(inPath) // #nosec G304 -- caller-supplied path by design of the API
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	dec, err := Decompress(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, dec, 0o644); err != nil { // #nosec G306
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Load().Debug().
		Str("in", inPath).
		Str("out", outPath).
		Int("compressedSize", len(src)).
		Int("rawSize", len(dec)).
		Float64("ratio", ratio(len(dec), len(src))).
		Msg("decompressed file")

	return nil
}

// ratio returns raw/compressed, or 0 when the compressed size is zero.
func ratio(raw, compressed int) float64 {
	if compressed == 0 {
		return 0
	}

	return float64(raw) / float64(compressed)
}
