package q

import "math"

// Q is a Q16.16 fixed-point number: a 32-bit signed two's-complement
// integer interpreted as value * 2^-16. All arithmetic in this package
// consumes and produces Q values by this interpretation; internal
// calculations widen to a 64-bit signed intermediate.
type Q int32

// Width, in bits, of the whole and fractional parts of a Q.
const (
	WholeBits = 15 // magnitude bits, excluding the sign bit
	FracBits  = 16 // fractional bits
)

// Fundamental constants. Step is the smallest representable positive
// value; MinValue and MaxValue are the representable extremes (named to
// leave Min/Max free for the pairwise arithmetic operators in arith.go).
const (
	Zero     Q = 0
	One      Q = 1 << FracBits
	Step     Q = 1
	MinValue Q = math.MinInt32
	MaxValue Q = math.MaxInt32
)

// Precomputed transcendental constants, stored at Q16.16 scale and
// rounded to the nearest representable value. These are literals, fixed
// at compile time and never mutated.
const (
	Pi    Q = 0x3243F // 3.14159...
	E     Q = 0x2B7E1 // 2.71828...
	Sqrt2 Q = 0x16A0A // 1.41421...
	Sqrt3 Q = 0x1BB68 // 1.73205...
	Ln2   Q = 0xB172  // 0.69314...
	Ln10  Q = 0x24D76 // 2.30258...

	HalfPi    Q = 0x19220 // Pi / 2
	QuarterPi Q = 0xC910  // Pi / 4
	TwoPi     Q = 0x6487F // Pi * 2
)

// Raw returns the underlying Q16.16 bit pattern as a plain int32.
func (x Q) Raw() int32 { return int32(x) }
