// Package framing implements the stateful frame encoder/decoder of
// spec.md §4.H/§4.I: a VarInt length prefix wrapping an optional zlib
// compression layer, itself wrapped by an optional AES-128 CFB8
// encryption layer. Compression and encryption may only be enabled, never
// disabled, on a given stream (spec.md §4.I's monotonic state machine).
package framing

import (
	"bytes"
	"io"

	"github.com/go-mcproto/mcproto/internal/pool"
	"github.com/go-mcproto/mcproto/mccipher"
	"github.com/go-mcproto/mcproto/mczlib"
	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/varint"
)

// MaxPacketSize bounds a frame's wire length after the length VarInt.
const MaxPacketSize = 2097152

// MaxPacketDataSize bounds a frame's decompressed payload length.
const MaxPacketDataSize = 8388608

// RawPacket is an undecoded packet id plus its raw body bytes, as produced
// by Decoder.ReadPacket and consumed by Encoder.WritePacket.
type RawPacket struct {
	ID      int32
	Payload []byte
}

// Encoder writes frames to an underlying stream, applying compression and
// encryption once enabled. It is not safe for concurrent use.
type Encoder struct {
	w io.Writer

	compressionSet bool
	threshold      int
	zlib           mczlib.Codec

	encryptionSet bool
}

// NewEncoder wraps w with no compression or encryption enabled.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetCompression enables zlib compression for frames at or above
// threshold bytes of uncompressed id+body. Calling it a second time is
// allowed (the threshold/level may be updated) — only encryption is
// single-shot, per spec.md §4.I.
func (e *Encoder) SetCompression(threshold, level int) {
	e.compressionSet = true
	e.threshold = threshold
	e.zlib = mczlib.New(level)
}

// SetEncryption enables AES-128 CFB8 encryption keyed by key. Calling this
// twice on the same Encoder is a programming error (spec.md §7.4).
func (e *Encoder) SetEncryption(key []byte) error {
	if e.encryptionSet {
		return mcerr.Programming("framing: encryption already enabled on this stream")
	}

	enc, err := mccipher.NewStreamEncryptor(e.w, key)
	if err != nil {
		return err
	}

	e.w = enc
	e.encryptionSet = true

	return nil
}

// WriteByte lets Encoder satisfy io.ByteWriter so varint.WriteInt can write
// the outer length VarInt directly through the (possibly encrypting)
// underlying writer, since io.Writer alone does not guarantee WriteByte.
func (e *Encoder) WriteByte(b byte) error {
	_, err := e.w.Write([]byte{b})
	return err
}

// WritePacket frames and writes a single packet: id (VarInt) + payload,
// optionally compressed, length-prefixed, then passed through the
// encryption layer if enabled.
func (e *Encoder) WritePacket(p RawPacket) error {
	body := pool.GetPacketBuffer()
	defer pool.PutPacketBuffer(body)

	if err := varint.WriteInt(body, p.ID); err != nil {
		return err
	}

	body.MustWrite(p.Payload)

	idAndBody := body.Bytes()
	if len(idAndBody) > MaxPacketDataSize {
		return mcerr.Framing("framing: packet data too long (%d bytes)", len(idAndBody))
	}

	frame := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(frame)

	if e.compressionSet {
		if len(idAndBody) >= e.threshold {
			compressed, err := e.zlib.Compress(idAndBody)
			if err != nil {
				return err
			}

			if err := varint.WriteInt(frame, int32(len(idAndBody))); err != nil {
				return err
			}

			frame.MustWrite(compressed)
		} else {
			if err := varint.WriteInt(frame, 0); err != nil {
				return err
			}

			frame.MustWrite(idAndBody)
		}
	} else {
		frame.MustWrite(idAndBody)
	}

	if frame.Len() > MaxPacketSize {
		return mcerr.Framing("framing: frame exceeds MAX_PACKET_SIZE (%d bytes)", frame.Len())
	}

	if err := varint.WriteInt(e, int32(frame.Len())); err != nil {
		return mcerr.Transport(err, "framing: write failed")
	}

	if _, err := e.w.Write(frame.Bytes()); err != nil {
		return mcerr.Transport(err, "framing: write failed")
	}

	return nil
}

// Decoder reads frames from an underlying stream, undoing encryption and
// compression as configured. It is not safe for concurrent use.
type Decoder struct {
	r io.Reader

	compressionSet bool
	threshold      int
	zlib           mczlib.Codec

	encryptionSet bool

	byteBuf [1]byte
}

// NewDecoder wraps r with no compression or encryption enabled.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// SetCompression enables zlib decompression for frames, validating the
// "not compressed" invariant against threshold.
func (d *Decoder) SetCompression(threshold, level int) {
	d.compressionSet = true
	d.threshold = threshold
	d.zlib = mczlib.New(level)
}

// SetEncryption enables AES-128 CFB8 decryption keyed by key. Calling this
// twice on the same Decoder is a programming error (spec.md §7.4).
func (d *Decoder) SetEncryption(key []byte) error {
	if d.encryptionSet {
		return mcerr.Programming("framing: encryption already enabled on this stream")
	}

	dec, err := mccipher.NewStreamDecryptor(d.r, key)
	if err != nil {
		return err
	}

	d.r = dec
	d.encryptionSet = true

	return nil
}

// ReadByte lets Decoder satisfy proto.Reader/varint.ReadInt's io.ByteReader
// requirement by pulling a single byte through the (possibly encrypting)
// underlying reader.
func (d *Decoder) ReadByte() (byte, error) {
	if _, err := io.ReadFull(d.r, d.byteBuf[:]); err != nil {
		return 0, err
	}

	return d.byteBuf[0], nil
}

// Read implements io.Reader by delegating to the underlying stream.
func (d *Decoder) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

// ReadPacket reads, decompresses, and decrypts a single frame, returning
// its packet id and raw body payload.
func (d *Decoder) ReadPacket() (RawPacket, error) {
	length, err := varint.ReadInt(d)
	if err != nil {
		return RawPacket{}, mcerr.DecodeWrap(err, "framing: malformed frame length")
	}

	if length < 0 || length > MaxPacketSize {
		return RawPacket{}, mcerr.Framing("framing: frame length out of bounds (%d)", length)
	}

	bounded := io.LimitReader(d, int64(length))

	var idAndBody []byte

	if d.compressionSet {
		decompLen, n, err := readVarIntCounting(bounded)
		if err != nil {
			return RawPacket{}, mcerr.DecodeWrap(err, "framing: malformed decompressed-length VarInt")
		}

		if decompLen < 0 || decompLen > MaxPacketDataSize {
			return RawPacket{}, mcerr.Framing("framing: decompressed length too long (%d)", decompLen)
		}

		rawLen := int(length) - n

		if decompLen > 0 {
			raw, err := io.ReadAll(bounded)
			if err != nil {
				return RawPacket{}, mcerr.Transport(err, "framing: read failed")
			}

			idAndBody, err = d.zlib.Decompress(raw, MaxPacketDataSize)
			if err != nil {
				return RawPacket{}, err
			}
		} else {
			if rawLen > d.threshold {
				return RawPacket{}, mcerr.Framing("framing: not compressed")
			}

			idAndBody, err = io.ReadAll(bounded)
			if err != nil {
				return RawPacket{}, mcerr.Transport(err, "framing: read failed")
			}
		}
	} else {
		idAndBody, err = io.ReadAll(bounded)
		if err != nil {
			return RawPacket{}, mcerr.Transport(err, "framing: read failed")
		}
	}

	idReader := bytes.NewReader(idAndBody)

	id, err := varint.ReadInt(idReader)
	if err != nil {
		return RawPacket{}, mcerr.DecodeWrap(err, "framing: malformed packet id")
	}

	payload := make([]byte, idReader.Len())
	if _, err := io.ReadFull(idReader, payload); err != nil {
		return RawPacket{}, mcerr.Transport(err, "framing: read failed")
	}

	return RawPacket{ID: id, Payload: payload}, nil
}

// readVarIntCounting reads a VarInt from r and reports how many bytes it
// consumed, needed to compute the raw (uncompressed) payload length when
// decompressed_length == 0.
func readVarIntCounting(r io.Reader) (int32, int, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReaderAdapter{r: r}
	}

	counting := &countingByteReader{inner: br}

	v, err := varint.ReadInt(counting)
	return v, counting.n, err
}

type byteReaderAdapter struct {
	r   io.Reader
	buf [1]byte
}

func (a *byteReaderAdapter) ReadByte() (byte, error) {
	if _, err := io.ReadFull(a.r, a.buf[:]); err != nil {
		return 0, err
	}

	return a.buf[0], nil
}

type countingByteReader struct {
	inner io.ByteReader
	n     int
}

func (c *countingByteReader) ReadByte() (byte, error) {
	b, err := c.inner.ReadByte()
	if err == nil {
		c.n++
	}

	return b, err
}
