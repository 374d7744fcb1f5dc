package q

// And, Or, Xor and Not act directly on the underlying Q16.16 integer;
// they carry no fixed-point semantics of their own.
func And(a, b Q) Q { return a & b }
func Or(a, b Q) Q  { return a | b }
func Xor(a, b Q) Q { return a ^ b }
func Not(a Q) Q    { return ^a }

// Asl returns x shifted left by n bits — multiplication by 2^n — clamped
// per c's overflow policy. Logical and arithmetic left shift coincide in
// two's complement, so Lsl is an alias.
func (c Config) Asl(x Q, n uint) Q { return c.clamp(int64(x) << n) }

// Asl is shorthand for Default.Asl.
func Asl(x Q, n uint) Q { return Default.Asl(x, n) }

// Lsl is an alias for Asl: left shift has no logical/arithmetic
// distinction in two's complement.
func Lsl(x Q, n uint) Q { return Default.Asl(x, n) }

// Asr returns x shifted right by n bits, preserving the sign bit
// (arithmetic shift — division by 2^n, rounding toward -infinity).
func Asr(x Q, n uint) Q { return x >> n }

// Lsr returns x shifted right by n bits without preserving the sign bit
// (logical shift, treating x as unsigned).
func Lsr(x Q, n uint) Q { return Q(uint32(x) >> n) }
