// Package mczlib implements the zlib compression layer frames use once a
// connection calls set_compression (spec.md §4.H): a raw-deflate-wrapped
// zlib stream over the payload that follows a frame's inner
// decompressed-length VarInt.
package mczlib

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/go-mcproto/mcproto/mcerr"
)

// Compressor zlib-compresses a payload.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor zlib-decompresses a payload, growing dst up to maxLen bytes.
type Decompressor interface {
	Decompress(data []byte, maxLen int) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

type codec struct {
	level int
}

// New returns a Codec using klauspost/compress's zlib implementation at
// the given level (0-9; zlib.DefaultCompression if out of range).
func New(level int) Codec {
	if level < 0 || level > 9 {
		level = zlib.DefaultCompression
	}

	return &codec{level: level}
}

// Compress zlib-compresses data.
func (c *codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, mcerr.Framing("mczlib: compression failed: %v", err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, mcerr.Framing("mczlib: compression failed: %v", err)
	}

	if err := w.Close(); err != nil {
		return nil, mcerr.Framing("mczlib: compression failed: %v", err)
	}

	return buf.Bytes(), nil
}

// Decompress zlib-decompresses data, failing with a Framing error (spec.md
// §7's "too long") if the decompressed output would exceed maxLen bytes.
func (c *codec) Decompress(data []byte, maxLen int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, mcerr.Framing("mczlib: not compressed")
	}
	defer r.Close()

	limited := io.LimitReader(r, int64(maxLen)+1)

	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, mcerr.Framing("mczlib: decompression failed: %v", err)
	}

	if len(out) > maxLen {
		return nil, mcerr.Framing("mczlib: decompressed payload too long (max %d)", maxLen)
	}

	return out, nil
}
