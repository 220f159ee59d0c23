package proto

import "github.com/go-mcproto/mcproto/mcerr"

// BitSet is a VarInt-prefixed array of i64 words, little-endian bit
// addressing: bit i lives in word i/64 at position i%64. The words
// themselves are written big-endian on the wire (each is an ordinary i64).
type BitSet struct {
	Words []int64
}

// NewBitSet allocates a BitSet with enough words to hold numBits bits.
func NewBitSet(numBits int) BitSet {
	return BitSet{Words: make([]int64, (numBits+63)/64)}
}

// Get reports whether bit i is set.
func (b BitSet) Get(i int) bool {
	return b.Words[i/64]&(1<<(uint(i)%64)) != 0
}

// Set sets bit i.
func (b BitSet) Set(i int) {
	b.Words[i/64] |= 1 << (uint(i) % 64)
}

// ReadBitSet decodes a variable-length BitSet.
func ReadBitSet(r Reader) (BitSet, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return BitSet{}, err
	}

	if n < 0 {
		return BitSet{}, mcerr.Decode("negative bitset length: %d", n)
	}

	words := make([]int64, n)
	for i := range words {
		w, err := ReadI64(r)
		if err != nil {
			return BitSet{}, err
		}

		words[i] = w
	}

	return BitSet{Words: words}, nil
}

// WriteBitSet encodes a variable-length BitSet.
func WriteBitSet(w Writer, b BitSet) error {
	if err := WriteVarInt(w, int32(len(b.Words))); err != nil {
		return err
	}

	for _, word := range b.Words {
		if err := WriteI64(w, word); err != nil {
			return err
		}
	}

	return nil
}

// FixedBitSet is a fixed-size, ceil(L/8)-byte bitset; bit i lives in byte
// i/8 at position i%8.
type FixedBitSet struct {
	Bits []byte // len == ceil(L/8)
	L    int
}

// NewFixedBitSet allocates a FixedBitSet with exactly ceil(l/8) bytes.
func NewFixedBitSet(l int) FixedBitSet {
	return FixedBitSet{Bits: make([]byte, (l+7)/8), L: l}
}

// Get reports whether bit i is set.
func (b FixedBitSet) Get(i int) bool {
	return b.Bits[i/8]&(1<<(uint(i)%8)) != 0
}

// Set sets bit i.
func (b FixedBitSet) Set(i int) {
	b.Bits[i/8] |= 1 << (uint(i) % 8)
}

// ReadFixedBitSet decodes a FixedBitSet of bit-length l (ceil(l/8) raw bytes).
func ReadFixedBitSet(r Reader, l int) (FixedBitSet, error) {
	size := (l + 7) / 8

	data, err := ReadFixed(r, size)
	if err != nil {
		return FixedBitSet{}, err
	}

	return FixedBitSet{Bits: data, L: l}, nil
}

// WriteFixedBitSet encodes a FixedBitSet, erroring if its backing byte
// slice doesn't match the expected ceil(L/8) length.
func WriteFixedBitSet(w Writer, b FixedBitSet) error {
	want := (b.L + 7) / 8
	if len(b.Bits) != want {
		return mcerr.Programming("wrong fixed bitset length: want %d bytes for %d bits, got %d", want, b.L, len(b.Bits))
	}

	return WriteFixed(w, b.Bits)
}
