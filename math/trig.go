package math

import (
	"github.com/howerj/q"
	"github.com/howerj/q/internal/cordic"
)

// reduceAngle folds theta into [-Pi/4, Pi/4], recording the two sign/shift
// decisions needed to recover sin/cos of the original angle afterwards:
// negate records a +-Pi fold (cos/sin both flip sign), shift in {-1,0,1}
// records a further +-Pi/2 fold.
func reduceAngle(theta q.Q) (reduced q.Q, negate bool, shift int) {
	t := int32(theta)
	twoPi := int32(q.TwoPi)
	for t > int32(q.Pi) {
		t -= twoPi
	}
	for t < -int32(q.Pi) {
		t += twoPi
	}
	if t > int32(q.HalfPi) {
		t -= int32(q.Pi)
		negate = true
	} else if t < -int32(q.HalfPi) {
		t += int32(q.Pi)
		negate = true
	}
	if t > int32(q.QuarterPi) {
		t -= int32(q.HalfPi)
		shift = 1
	} else if t < -int32(q.QuarterPi) {
		t += int32(q.HalfPi)
		shift = -1
	}
	return q.Q(t), negate, shift
}

// SinCos returns sin(theta) and cos(theta) together, computed with a
// single circular-coordinate rotation-mode CORDIC pass seeded with
// (1/gain, 0, theta) after reducing theta into the engine's convergence
// range.
func SinCos(theta q.Q) (sin, cos q.Q) {
	reduced, negate, shift := reduceAngle(theta)

	x := cordic.GainCircular
	y := int32(0)
	z := int32(reduced)
	cordic.Run(cordic.Circular, cordic.Rotation, -1, &x, &y, &z)

	cosv, sinv := x, y
	switch shift {
	case 1:
		cosv, sinv = -y, x
	case -1:
		cosv, sinv = y, -x
	}
	if negate {
		cosv, sinv = -cosv, -sinv
	}
	return q.Q(sinv), q.Q(cosv)
}

// Sin returns the sine of theta (radians, Q16.16).
func Sin(theta q.Q) q.Q { s, _ := SinCos(theta); return s }

// Cos returns the cosine of theta (radians, Q16.16).
func Cos(theta q.Q) q.Q { _, c := SinCos(theta); return c }

// Tan returns the tangent of theta, computed as sin/cos.
func Tan(theta q.Q) q.Q { s, c := SinCos(theta); return q.Div(s, c) }

// Cot returns the cotangent of theta, computed as cos/sin.
func Cot(theta q.Q) q.Q { s, c := SinCos(theta); return q.Div(c, s) }

// Atan returns the arctangent of t, using a circular vectoring-mode pass
// seeded with (1, t, 0); the accumulated z is the angle.
func Atan(t q.Q) q.Q {
	x := int32(q.One)
	y := int32(t)
	z := int32(0)
	cordic.Run(cordic.Circular, cordic.Vectoring, -1, &x, &y, &z)
	return q.Q(z)
}

// Atan2 returns the angle of the point (b, a) (note the math convention:
// the first argument is the y-coordinate), in (-Pi, Pi] for the first,
// second and fourth quadrants. When b = 0 it returns +-Pi/2 by the sign of
// a (0 if both are 0).
//
// CORDIC vectoring only converges starting from a positive x component, so
// b < 0 is handled by vectoring the point reflected through the origin and
// adding Pi afterwards. By convention the third quadrant (both a and b
// negative) also uses the +Pi correction rather than -Pi, which leaves the
// result outside (-Pi, Pi] in that one quadrant.
func Atan2(a, b q.Q) q.Q {
	switch {
	case b > 0:
		x, y, z := int32(b), int32(a), int32(0)
		cordic.Run(cordic.Circular, cordic.Vectoring, -1, &x, &y, &z)
		return q.Q(z)
	case b < 0:
		x, y, z := int32(-b), int32(-a), int32(0)
		cordic.Run(cordic.Circular, cordic.Vectoring, -1, &x, &y, &z)
		return q.Q(z) + q.Pi
	default:
		switch {
		case a > 0:
			return q.HalfPi
		case a < 0:
			return -q.HalfPi
		default:
			return q.Zero
		}
	}
}

// Asin returns the arcsine of t (|t| <= 1) via atan2(t, sqrt(1 - t^2)).
func Asin(t q.Q) q.Q {
	one := q.One
	arg := q.Sub(one, q.Mul(t, t))
	return Atan2(t, Sqrt(arg))
}

// Acos returns the arccosine of t (|t| <= 1) via atan2(sqrt(1 - t^2), t).
func Acos(t q.Q) q.Q {
	one := q.One
	arg := q.Sub(one, q.Mul(t, t))
	return Atan2(Sqrt(arg), t)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg q.Q) q.Q { return q.Div(q.Mul(deg, q.Pi), q.FromInt32(180)) }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad q.Q) q.Q { return q.Div(q.Mul(rad, q.FromInt32(180)), q.Pi) }
