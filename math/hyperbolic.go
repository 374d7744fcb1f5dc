package math

import (
	"github.com/howerj/q"
	"github.com/howerj/q/internal/cordic"
)

// sinhCosh is the hyperbolic analogue of SinCos: a single rotation-mode
// CORDIC pass seeded with (1/gain, 0, a) yields cosh(a) and sinh(a)
// directly. No argument reduction is done: the pass converges for |a| up
// to about 1.118 (the sum of the hyperbolic table's angles over its
// repeated-iteration sequence, see q/internal/cordic), and larger
// arguments are not brought into that range.
func sinhCosh(a q.Q) (sinh, cosh q.Q) {
	x := cordic.GainHyperbolic
	y := int32(0)
	z := int32(a)
	cordic.Run(cordic.Hyperbolic, cordic.Rotation, -1, &x, &y, &z)
	return q.Q(y), q.Q(x)
}

// Sinh returns the hyperbolic sine of a.
func Sinh(a q.Q) q.Q { s, _ := sinhCosh(a); return s }

// Cosh returns the hyperbolic cosine of a.
func Cosh(a q.Q) q.Q { _, c := sinhCosh(a); return c }

// Tanh returns the hyperbolic tangent of a, computed as sinh/cosh.
func Tanh(a q.Q) q.Q { s, c := sinhCosh(a); return q.Div(s, c) }

// Atanh returns the inverse hyperbolic tangent of t (|t| < 1), using a
// hyperbolic vectoring-mode pass seeded with (1, t, 0); the accumulated z
// is the answer.
func Atanh(t q.Q) q.Q {
	x := int32(q.One)
	y := int32(t)
	z := int32(0)
	cordic.Run(cordic.Hyperbolic, cordic.Vectoring, -1, &x, &y, &z)
	return q.Q(z)
}

// Asinh returns the inverse hyperbolic sine of t, via
// ln(t + sqrt(t^2 + 1)).
func Asinh(t q.Q) q.Q {
	inner := q.Add(q.Mul(t, t), q.One)
	return Log(q.Add(t, Sqrt(inner)))
}

// Acosh returns the inverse hyperbolic cosine of t (t >= 1), via
// ln(t + sqrt(t^2 - 1)).
func Acosh(t q.Q) q.Q {
	assert(t >= q.One, "acosh: operand %v below domain minimum 1", t)
	inner := q.Sub(q.Mul(t, t), q.One)
	return Log(q.Add(t, Sqrt(inner)))
}
