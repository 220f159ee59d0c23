package composite

// BitfieldU8 tests/sets a single bit in a u8-backed bitfield struct.
type BitfieldU8 uint8

// Has reports whether bit i (0 = LSB) is set.
func (b BitfieldU8) Has(i int) bool {
	return b&(1<<uint(i)) != 0
}

// With returns b with bit i set to v.
func (b BitfieldU8) With(i int, v bool) BitfieldU8 {
	if v {
		return b | (1 << uint(i))
	}

	return b &^ (1 << uint(i))
}

// BitfieldI32 tests/sets a single bit in an i32-backed bitfield struct
// (e.g. command-node Node.flags, EntityMetadata-adjacent packed fields).
type BitfieldI32 int32

// Has reports whether bit i (0 = LSB) is set.
func (b BitfieldI32) Has(i int) bool {
	return b&(1<<uint(i)) != 0
}

// With returns b with bit i set to v.
func (b BitfieldI32) With(i int, v bool) BitfieldI32 {
	if v {
		return b | (1 << uint(i))
	}

	return b &^ (1 << uint(i))
}
