package q

// Add returns a + b, widened to a 64-bit intermediate and clamped per c's
// overflow policy.
func (c Config) Add(a, b Q) Q { return c.clamp(int64(a) + int64(b)) }

// Add is shorthand for Default.Add.
func Add(a, b Q) Q { return Default.Add(a, b) }

// Sub returns a - b.
func (c Config) Sub(a, b Q) Q { return c.clamp(int64(a) - int64(b)) }

// Sub is shorthand for Default.Sub.
func Sub(a, b Q) Q { return Default.Sub(a, b) }

// Neg returns the two's-complement negation of x.
func (c Config) Neg(x Q) Q { return c.clamp(-int64(x)) }

// Neg is shorthand for Default.Neg.
func Neg(x Q) Q { return Default.Neg(x) }

// Abs returns the absolute value of x: a negation if the sign bit is set,
// otherwise x unchanged.
func (c Config) Abs(x Q) Q {
	if x < 0 {
		return c.clamp(-int64(x))
	}
	return x
}

// Abs is shorthand for Default.Abs.
func Abs(x Q) Q { return Default.Abs(x) }

// Mul returns a * b computed as (a*b + 2^15) >> 16 in a 64-bit
// intermediate, arithmetic shift, clamped once.
func (c Config) Mul(a, b Q) Q {
	v := (int64(a)*int64(b) + (1 << (FracBits - 1))) >> FracBits
	return c.clamp(v)
}

// Mul is shorthand for Default.Mul.
func Mul(a, b Q) Q { return Default.Mul(a, b) }

// FMA returns a*b + c, with a single saturation applied to the combined
// result rather than one after the multiply and one after the add.
func (cfg Config) FMA(a, b, c Q) Q {
	v := ((int64(a)*int64(b) + (1 << (FracBits - 1))) >> FracBits) + int64(c)
	return cfg.clamp(v)
}

// FMA is shorthand for Default.FMA.
func FMA(a, b, c Q) Q { return Default.FMA(a, b, c) }

// saturatedQuotientLimit returns the saturated limit appropriate for a
// division or remainder operation whose divisor is zero, by the sign of
// the dividend; this is the release-build fallback when the debug
// assertion on division by zero is compiled out.
func saturatedQuotientLimit(dividend Q) Q {
	switch {
	case dividend > 0:
		return MaxValue
	case dividend < 0:
		return MinValue
	default:
		return Zero
	}
}

// Div returns a / b, rounding the quotient half away from zero. b must be
// nonzero; violating that precondition is a debug-build assertion
// failure, and in release builds returns the saturated limit by the sign
// of a (or zero if a is also zero).
func (c Config) Div(a, b Q) Q {
	assert(b != 0, "division by zero")
	if b == 0 {
		return saturatedQuotientLimit(a)
	}

	num := int64(a) << FracBits
	half := int64(b) / 2
	if (a < 0) != (b < 0) {
		half = -half
	}
	return c.clamp((num + half) / int64(b))
}

// Div is shorthand for Default.Div.
func Div(a, b Q) Q { return Default.Div(a, b) }

// Rem returns the remainder of a / b with the sign of the dividend
// (a - trunc(a/b)*b). b must be nonzero.
func (c Config) Rem(a, b Q) Q {
	assert(b != 0, "remainder by zero")
	if b == 0 {
		return Zero
	}
	q := Trunc(c.Div(a, b))
	return c.Sub(a, c.Mul(q, b))
}

// Rem is shorthand for Default.Rem.
func Rem(a, b Q) Q { return Default.Rem(a, b) }

// Mod returns the modulo of a / b with the sign of the divisor
// (a - floor(a/b)*b). b must be nonzero.
func (c Config) Mod(a, b Q) Q {
	assert(b != 0, "modulo by zero")
	if b == 0 {
		return Zero
	}
	q := Floor(c.Div(a, b))
	return c.Sub(a, c.Mul(q, b))
}

// Mod is shorthand for Default.Mod.
func Mod(a, b Q) Q { return Default.Mod(a, b) }

// Copysign returns |a| with the sign of b.
func (c Config) Copysign(a, b Q) Q {
	mag := c.Abs(a)
	if b < 0 {
		return c.Neg(mag)
	}
	return mag
}

// Copysign is shorthand for Default.Copysign.
func Copysign(a, b Q) Q { return Default.Copysign(a, b) }

// Sign returns -1, 0, or +1 according to the sign of x.
func Sign(x Q) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Signum returns the Q representation of Sign(x): -One, Zero, or One.
func Signum(x Q) Q {
	switch {
	case x < 0:
		return -One
	case x > 0:
		return One
	default:
		return Zero
	}
}

// Min returns the lesser of a and b.
func Min(a, b Q) Q {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b Q) Q {
	if a > b {
		return a
	}
	return b
}
