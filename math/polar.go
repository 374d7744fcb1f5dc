package math

import "github.com/howerj/q"

// Rec converts polar coordinates (r, theta) to rectangular (x, y).
func Rec(r, theta q.Q) (x, y q.Q) {
	sin, cos := SinCos(theta)
	return q.Mul(r, cos), q.Mul(r, sin)
}

// Pol converts rectangular coordinates (x, y) to polar (r, theta).
func Pol(x, y q.Q) (r, theta q.Q) {
	return Hypot(x, y), Atan2(y, x)
}
