package math

import (
	"github.com/howerj/q"
	"github.com/howerj/q/internal/cordic"
)

// Exp returns e^a, by writing a = r + k*ln2 with r in CORDIC's convergence
// range and k an integer, computing exp(r) = cosh(r) + sinh(r) from a
// single hyperbolic rotation-mode pass, then rescaling by 2^k — an exact
// bit shift, since Q16.16's base is itself a power of two.
func Exp(a q.Q) q.Q {
	k := q.Round(q.Div(a, q.Ln2)).ToInt32()
	r := q.Sub(a, q.Mul(q.FromInt32(k), q.Ln2))

	x := cordic.GainHyperbolic
	y := int32(0)
	z := int32(r)
	cordic.Run(cordic.Hyperbolic, cordic.Rotation, -1, &x, &y, &z)
	result := q.Add(q.Q(x), q.Q(y))

	if k >= 0 {
		return q.Asl(result, uint(k))
	}
	return q.Asr(result, uint(-k))
}

// Log returns the natural logarithm of x, which must be positive. Domain
// violations are a debug assertion; release builds return MinValue.
//
// x is first normalised to m in [1, 2) by repeated halving/doubling,
// recording the binary exponent e so that x = m * 2^e, then
// ln(m) = 2*atanh((m-1)/(m+1)) is computed with a single hyperbolic
// vectoring-mode pass and ln(x) = ln(m) + e*ln2.
func Log(x q.Q) q.Q {
	assert(x > 0, "log: non-positive operand %v", x)
	if x <= 0 {
		return q.MinValue
	}

	v := x
	e := 0
	for v >= q.FromInt32(2) {
		v = q.Asr(v, 1)
		e++
	}
	for v < q.One {
		v = q.Asl(v, 1)
		e--
	}

	mp1 := int32(q.Add(v, q.One))
	mm1 := int32(q.Sub(v, q.One))
	z := int32(0)
	cordic.Run(cordic.Hyperbolic, cordic.Vectoring, -1, &mp1, &mm1, &z)
	lnm := q.Add(q.Q(z), q.Q(z))

	return q.Add(lnm, q.Mul(q.FromInt32(int32(e)), q.Ln2))
}

// Sqrt returns the square root of x, which must be non-negative. x is
// normalised to v in [1, 4) by repeated shifts by 2 bits, then
// sqrt(v) = Kh * sqrt((v+0.25)^2 - (v-0.25)^2) is recovered from a single
// hyperbolic vectoring-mode pass (the algebraic identity (a+b)^2-(a-b)^2 =
// 4ab collapses to v when a = v, b = 0.25), corrected by the precomputed
// reciprocal hyperbolic gain, then rescaled by the recorded exponent. That
// estimate is refined by Newton-Raphson steps r' = (r + x/r)/2, at most
// four, stopping once a step moves r by no more than one Step.
func Sqrt(x q.Q) q.Q {
	assert(x >= 0, "sqrt: negative operand %v", x)
	if x <= 0 {
		return q.Zero
	}

	v := x
	shift := 0
	for v >= q.FromInt32(4) {
		v = q.Asr(v, 2)
		shift++
	}
	for v < q.One {
		v = q.Asl(v, 2)
		shift--
	}

	const quarter = q.Q(1 << (q.FracBits - 2))
	xp := int32(q.Add(v, quarter))
	xm := int32(q.Sub(v, quarter))
	z := int32(0)
	cordic.Run(cordic.Hyperbolic, cordic.Vectoring, -1, &xp, &xm, &z)
	root := q.Mul(q.Q(xp), q.Q(cordic.GainHyperbolic))

	if shift >= 0 {
		root = q.Asl(root, uint(shift))
	} else {
		root = q.Asr(root, uint(-shift))
	}

	// The CORDIC pass does not converge for v near the top of [1, 4), and
	// the rescale multiplies its error; Newton-Raphson removes both.
	for i := 0; i < 4; i++ {
		next := q.Asr(q.Add(root, q.Div(x, root)), 1)
		if d := next - root; d >= -q.Step && d <= q.Step {
			return next
		}
		root = next
	}
	return root
}

// Pow returns base^exp. By convention pow(0, 0) = 1, and pow(0, e) for
// e < 0 is a domain violation (debug assertion, saturated release
// result). A negative base with an integer exponent is handled by sign
// correction on the parity of exp; a negative base with a non-integer
// exponent is a domain violation.
func Pow(base, exp q.Q) q.Q {
	switch {
	case base > 0:
		return Exp(q.Mul(exp, Log(base)))
	case base == 0:
		switch {
		case exp > 0:
			return q.Zero
		case exp == 0:
			return q.One
		default:
			assert(false, "pow: zero base with negative exponent %v", exp)
			return q.MaxValue
		}
	default:
		if q.IsInteger(exp) {
			mag := Pow(q.Neg(base), exp)
			if exp.ToInt32()%2 != 0 {
				return q.Neg(mag)
			}
			return mag
		}
		assert(false, "pow: negative base %v with non-integer exponent %v", base, exp)
		return q.MaxValue
	}
}

// Hypot returns sqrt(a^2 + b^2), computed without the unrescaled
// intermediate squares overflowing by routing through a circular
// vectoring-mode CORDIC pass instead: vectoring (|a|, |b|) onto the x axis
// leaves the magnitude of the original vector in x, scaled by the
// circular gain, which the precomputed reciprocal gain then corrects.
func Hypot(a, b q.Q) q.Q {
	x := int32(q.Abs(a))
	y := int32(q.Abs(b))
	z := int32(0)
	cordic.Run(cordic.Circular, cordic.Vectoring, -1, &x, &y, &z)
	return q.Mul(q.Q(x), q.Q(cordic.GainCircular))
}
