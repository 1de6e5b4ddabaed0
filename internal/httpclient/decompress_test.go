package httpclient

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const decompressPayload = `{"choices":[{"message":{"content":"你好"}}]}`

func gzipCompress(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func brotliCompress(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdCompress(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func flateCompress(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompressResponse(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		data     []byte
		expected string
	}{
		{"gzip", "gzip", gzipCompress(t, decompressPayload), decompressPayload},
		{"brotli", "br", brotliCompress(t, decompressPayload), decompressPayload},
		{"zstd", "zstd", zstdCompress(t, decompressPayload), decompressPayload},
		{"deflate", "deflate", flateCompress(t, decompressPayload), decompressPayload},
		{"uppercase header value", "GZIP", gzipCompress(t, decompressPayload), decompressPayload},
		{"no encoding", "", []byte(decompressPayload), decompressPayload},
		{"identity", "identity", []byte(decompressPayload), decompressPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DecompressResponse(tt.encoding, tt.data)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestDecompressResponseFallbacks(t *testing.T) {
	t.Run("unknown encoding returns raw bytes", func(t *testing.T) {
		raw := []byte("plain text")
		assert.Equal(t, raw, DecompressResponse("snappy", raw))
	})

	t.Run("corrupt payload returns raw bytes", func(t *testing.T) {
		raw := []byte("definitely not gzip")
		assert.Equal(t, raw, DecompressResponse("gzip", raw))
	})

	t.Run("empty payload", func(t *testing.T) {
		assert.Empty(t, DecompressResponse("gzip", nil))
	})
}
