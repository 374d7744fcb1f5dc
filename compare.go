package q

// Less, More, LessEqual, MoreEqual, Equal and Unequal are the ordering
// predicates over Q.
func Less(a, b Q) bool      { return a < b }
func More(a, b Q) bool      { return a > b }
func LessEqual(a, b Q) bool { return a <= b }
func MoreEqual(a, b Q) bool { return a >= b }
func Equal(a, b Q) bool     { return a == b }
func Unequal(a, b Q) bool   { return a != b }

// ApproxEqual reports whether a and b differ by no more than eps.
func ApproxEqual(a, b, eps Q) bool {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return d <= int64(Abs(eps))
}

// Within reports whether v lies within the (inclusive, order-independent)
// bounds b1 and b2.
func Within(v, b1, b2 Q) bool {
	lo, hi := b1, b2
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// IsNegative reports whether x is strictly negative.
func IsNegative(x Q) bool { return x < 0 }

// IsPositive reports whether x is strictly positive.
func IsPositive(x Q) bool { return x > 0 }

// IsInteger reports whether x has a zero fractional part.
func IsInteger(x Q) bool { return x&Q(fracMask) == 0 }

// IsOdd reports whether x is an odd integer. A non-integer x is neither
// odd nor even.
func IsOdd(x Q) bool { return IsInteger(x) && (int32(x)>>FracBits)&1 != 0 }

// IsEven reports whether x is an even integer.
func IsEven(x Q) bool { return IsInteger(x) && (int32(x)>>FracBits)&1 == 0 }
