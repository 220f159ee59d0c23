package proto

// Angle is a single signed byte encoding a rotation. Decode/encode formulas
// follow spec.md §3 exactly.
//
// Per spec.md §9 Open Question #2: despite the method name, Degrees below
// returns degrees (raw * 360/256), not radians — this mirrors
// original_source's Angle::to_radians, which is mislabeled upstream. Treat
// the float as degrees.
type Angle int8

// AngleFromDegrees builds an Angle from a degree value, matching
// original_source's Angle::from_radians (which despite its name takes the
// same raw * 256/360 conversion regardless of unit naming).
func AngleFromDegrees(deg float32) Angle {
	return Angle(int8(deg * (256.0 / 360.0)))
}

// Degrees returns the angle in degrees. See the Open Question note above:
// this is the wire-accurate unit despite upstream naming it "radians".
func (a Angle) Degrees() float32 {
	return float32(a) * (360.0 / 256.0)
}

// ReadAngle decodes a signed-byte Angle.
func ReadAngle(r Reader) (Angle, error) {
	v, err := ReadI8(r)
	return Angle(v), err
}

// WriteAngle encodes a signed-byte Angle.
func WriteAngle(w Writer, a Angle) error {
	return WriteI8(w, int8(a))
}
