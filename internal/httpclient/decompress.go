package httpclient

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
)

// Decompressor decodes one Content-Encoding.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

var decompressorRegistry = make(map[string]Decompressor)

func init() {
	RegisterDecompressor("gzip", &GzipDecompressor{})
	RegisterDecompressor("br", &BrotliDecompressor{})
	RegisterDecompressor("deflate", &DeflateDecompressor{})
	RegisterDecompressor("zstd", &ZstdDecompressor{})
}

// RegisterDecompressor adds a decoder for a Content-Encoding value.
func RegisterDecompressor(encoding string, decompressor Decompressor) {
	decompressorRegistry[encoding] = decompressor
}

// DecompressResponse decodes a response body according to its
// Content-Encoding header. Unknown encodings and decode failures fall back
// to the raw bytes; a garbled error body is still better than none.
func DecompressResponse(contentEncoding string, data []byte) []byte {
	encoding := strings.ToLower(strings.TrimSpace(contentEncoding))
	if encoding == "" || encoding == "identity" || len(data) == 0 {
		return data
	}

	decompressor, exists := decompressorRegistry[encoding]
	if !exists {
		logrus.Warnf("No decompressor registered for encoding '%s', returning original data", encoding)
		return data
	}

	decompressed, err := decompressor.Decompress(data)
	if err != nil {
		logrus.WithError(err).Warnf("Failed to decompress with '%s', returning original data", encoding)
		return data
	}
	return decompressed
}

// GzipDecompressor handles gzip encoding.
type GzipDecompressor struct{}

func (g *GzipDecompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

// BrotliDecompressor handles brotli encoding.
type BrotliDecompressor struct{}

func (b *BrotliDecompressor) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
}

// DeflateDecompressor handles deflate encoding as raw DEFLATE streams.
type DeflateDecompressor struct{}

func (d *DeflateDecompressor) Decompress(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()
	return io.ReadAll(reader)
}

// ZstdDecompressor handles Zstandard encoding.
type ZstdDecompressor struct{}

func (z *ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
