package q

import "encoding/binary"

// FromInt32 converts a signed 32-bit integer to Q, clamped per c's
// overflow policy (an integer whose magnitude exceeds WholeBits bits
// cannot be represented exactly).
func (c Config) FromInt32(v int32) Q { return c.clamp(int64(v) << FracBits) }

// FromInt32 is shorthand for Default.FromInt32.
func FromInt32(v int32) Q { return Default.FromInt32(v) }

// FromInt64 converts a signed 64-bit integer to Q, clamped per c's
// overflow policy.
func (c Config) FromInt64(v int64) Q { return c.clamp(v << FracBits) }

// FromInt64 is shorthand for Default.FromInt64.
func FromInt64(v int64) Q { return Default.FromInt64(v) }

// FromInt16 converts a signed 16-bit integer to Q.
func FromInt16(v int16) Q { return FromInt32(int32(v)) }

// FromInt8 converts a signed 8-bit integer to Q.
func FromInt8(v int8) Q { return FromInt32(int32(v)) }

// ToInt32 truncates x toward zero and returns its integer part as an
// int32.
func (x Q) ToInt32() int32 { return int32(Trunc(x)) >> FracBits }

// ToInt64 truncates x toward zero and returns its integer part as an
// int64.
func (x Q) ToInt64() int64 { return int64(x.ToInt32()) }

// ToInt16 truncates x toward zero and returns its integer part as an
// int16, which may itself overflow if |x| exceeds the int16 range.
func (x Q) ToInt16() int16 { return int16(x.ToInt32()) }

// ToInt8 truncates x toward zero and returns its integer part as an int8.
func (x Q) ToInt8() int8 { return int8(x.ToInt32()) }

// PackedLen is the number of bytes a packed Q occupies.
const PackedLen = 4

// Pack serialises x to four little-endian bytes.
func Pack(x Q) [PackedLen]byte {
	var b [PackedLen]byte
	binary.LittleEndian.PutUint32(b[:], uint32(x))
	return b
}

// ErrShortBuffer is returned by Unpack when given fewer than PackedLen
// bytes.
type ErrShortBuffer struct{ Len int }

func (e *ErrShortBuffer) Error() string {
	return "q: unpack: buffer too short"
}

// Unpack is the inverse of Pack: it decodes four little-endian bytes from
// the front of b into a Q. It fails if len(b) < PackedLen.
func Unpack(b []byte) (Q, error) {
	if len(b) < PackedLen {
		return 0, &ErrShortBuffer{Len: len(b)}
	}
	return Q(binary.LittleEndian.Uint32(b)), nil
}
