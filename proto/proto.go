// Package proto implements the primitive codec contract shared by every
// type in the protocol catalog: a value reads exactly its own bytes from a
// stream and writes exactly its own bytes back, with no length prefix and
// no padding, per spec.md §4.A.
//
// Scalars are fixed-width big-endian. Composite and self-delimiting types
// (NBT, Slot, packets) build on the functions in this package rather than
// reimplementing primitive encoding.
package proto

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-mcproto/mcproto/mcerr"
	"github.com/go-mcproto/mcproto/varint"
)

// Reader is the minimal stream contract primitive decoders need: byte-at-a
// time reads for VarInt/VarLong, bulk reads for fixed-width scalars.
type Reader interface {
	io.Reader
	io.ByteReader
}

// Writer is the minimal stream contract primitive encoders need.
type Writer interface {
	io.Writer
	io.ByteWriter
}

// Decoder is implemented by self-delimiting composite types (NBT tags,
// slots, components, packets) that know how to read their own fields from
// a Reader in declaration order.
type Decoder interface {
	ReadFrom(r Reader) error
}

// Encoder is implemented by self-delimiting composite types that know how
// to write their own fields to a Writer in declaration order.
type Encoder interface {
	WriteTo(w Writer) error
}

// Codec is satisfied by any value that can both decode and encode itself.
type Codec interface {
	Decoder
	Encoder
}

// --- VarInt / VarLong -------------------------------------------------

// ReadVarInt decodes a VarInt, translating stream errors to mcerr.
func ReadVarInt(r Reader) (int32, error) {
	v, err := varint.ReadInt(r)
	if err != nil {
		if err == varint.ErrVarIntTooBig {
			return 0, mcerr.Decode("VarInt too big")
		}

		return 0, mcerr.Transport(err, "read VarInt")
	}

	return v, nil
}

// WriteVarInt encodes a VarInt.
func WriteVarInt(w Writer, v int32) error {
	if err := varint.WriteInt(w, v); err != nil {
		return mcerr.Transport(err, "write VarInt")
	}

	return nil
}

// ReadVarLong decodes a VarLong.
func ReadVarLong(r Reader) (int64, error) {
	v, err := varint.ReadLong(r)
	if err != nil {
		if err == varint.ErrVarLongTooBig {
			return 0, mcerr.Decode("VarLong too big")
		}

		return 0, mcerr.Transport(err, "read VarLong")
	}

	return v, nil
}

// WriteVarLong encodes a VarLong.
func WriteVarLong(w Writer, v int64) error {
	if err := varint.WriteLong(w, v); err != nil {
		return mcerr.Transport(err, "write VarLong")
	}

	return nil
}

// --- Scalars ------------------------------------------------------------

func ReadBool(r Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, mcerr.Transport(err, "read bool")
	}

	return b != 0, nil
}

func WriteBool(w Writer, v bool) error {
	b := byte(0)
	if v {
		b = 1
	}

	if err := w.WriteByte(b); err != nil {
		return mcerr.Transport(err, "write bool")
	}

	return nil
}

func ReadU8(r Reader) (uint8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, mcerr.Transport(err, "read u8")
	}

	return b, nil
}

func WriteU8(w Writer, v uint8) error {
	if err := w.WriteByte(v); err != nil {
		return mcerr.Transport(err, "write u8")
	}

	return nil
}

func ReadI8(r Reader) (int8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, mcerr.Transport(err, "read i8")
	}

	return int8(b), nil
}

func WriteI8(w Writer, v int8) error {
	if err := w.WriteByte(byte(v)); err != nil {
		return mcerr.Transport(err, "write i8")
	}

	return nil
}

func readFull(r Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, mcerr.Transport(err, "read %d bytes", n)
	}

	return buf, nil
}

func ReadU16(r Reader) (uint16, error) {
	buf, err := readFull(r, 2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(buf), nil
}

func WriteU16(w Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)

	return writeAll(w, buf[:])
}

func ReadI16(r Reader) (int16, error) {
	v, err := ReadU16(r)
	return int16(v), err
}

func WriteI16(w Writer, v int16) error {
	return WriteU16(w, uint16(v))
}

func ReadU32(r Reader) (uint32, error) {
	buf, err := readFull(r, 4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(buf), nil
}

func WriteU32(w Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)

	return writeAll(w, buf[:])
}

func ReadI32(r Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

func WriteI32(w Writer, v int32) error {
	return WriteU32(w, uint32(v))
}

func ReadU64(r Reader) (uint64, error) {
	buf, err := readFull(r, 8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(buf), nil
}

func WriteU64(w Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)

	return writeAll(w, buf[:])
}

func ReadI64(r Reader) (int64, error) {
	v, err := ReadU64(r)
	return int64(v), err
}

func WriteI64(w Writer, v int64) error {
	return WriteU64(w, uint64(v))
}

func ReadF32(r Reader) (float32, error) {
	v, err := ReadU32(r)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

func WriteF32(w Writer, v float32) error {
	return WriteU32(w, math.Float32bits(v))
}

func ReadF64(r Reader) (float64, error) {
	v, err := ReadU64(r)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

func WriteF64(w Writer, v float64) error {
	return WriteU64(w, math.Float64bits(v))
}

func writeAll(w Writer, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return mcerr.Transport(err, "write %d bytes", len(buf))
	}

	return nil
}

// ReadFixed reads exactly n raw bytes (FixedLenBytes<L>).
func ReadFixed(r Reader, n int) ([]byte, error) {
	return readFull(r, n)
}

// WriteFixed writes exactly len(data) raw bytes.
func WriteFixed(w Writer, data []byte) error {
	return writeAll(w, data)
}
