package q

import (
	"math"
	"strconv"
	"strings"
)

// maxDigitsForBase returns ceil(log_base(2^(FracBits+1))), the number of
// fractional digits in the given base after which Format's truncation
// error is below half a Step — enough for Parse(Format(x)) == x to hold,
// since Parse rounds to the nearest Step — and a safe bound that
// guarantees Format's digit loop terminates even for bases (anything
// other than powers of two) whose fractional expansion of a Q16.16
// residue never reaches exactly zero.
func maxDigitsForBase(base int) int {
	return int(math.Ceil(float64(FracBits+1) * math.Ln2 / math.Log(float64(base))))
}

func digitChar(d int) byte {
	if d < 10 {
		return byte('0' + d)
	}
	return byte('A' + d - 10)
}

// Format renders x in the given base with up to dp fractional digits (or
// the round-trip-exact number of digits, if dp is negative): the sign,
// the integer part, a decimal point, then successive digits obtained by
// multiplying the fractional residue by the base, stopping when dp
// digits have been emitted or the residue reaches zero.
func (c Config) Format(x Q, base, dp int) string {
	assert(base >= 2 && base <= 36, "invalid base %d", base)

	if dp < 0 {
		dp = maxDigitsForBase(base)
	}

	neg := x < 0
	mag := int64(x)
	if neg {
		mag = -mag
	}
	intPart := mag >> FracBits
	residue := mag & fracMask

	var frac strings.Builder
	for i := 0; i < dp && residue != 0; i++ {
		residue *= int64(base)
		digit := residue >> FracBits
		residue &= fracMask
		frac.WriteByte(digitChar(int(digit)))
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(strings.ToUpper(strconv.FormatInt(intPart, base)))
	if frac.Len() > 0 {
		sb.WriteByte('.')
		sb.WriteString(frac.String())
	}
	return sb.String()
}

// Format is shorthand for Default.Format.
func Format(x Q, base, dp int) string { return Default.Format(x, base, dp) }

// String renders x in Default.Radix with Default.Places fractional
// digits, satisfying fmt.Stringer.
func (x Q) String() string { return Default.Format(x, Default.Radix, Default.Places) }

// MarshalText implements encoding.TextMarshaler, rendering x the same way
// String does. This lets a Q round-trip through encoding/json and similar
// text-based encoders even though those are outside this spec's scope.
func (x Q) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using Default's
// radix.
func (x *Q) UnmarshalText(text []byte) error {
	v, err := ParseBase(string(text), Default.Radix)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
