package math

import (
	"testing"

	"github.com/howerj/q"
)

func TestRecPolRoundTrip(t *testing.T) {
	r, theta := q.FromInt32(5), q.Div(q.Pi, q.FromInt32(4))
	x, y := Rec(r, theta)
	gotR, gotTheta := Pol(x, y)
	if !withinULP(gotR, r, 1<<6) {
		t.Errorf("Pol(Rec(5, pi/4)) r = %d, want ~%d", gotR, r)
	}
	if !withinULP(gotTheta, theta, 1<<6) {
		t.Errorf("Pol(Rec(5, pi/4)) theta = %d, want ~%d", gotTheta, theta)
	}
}

func TestRecAxisAligned(t *testing.T) {
	x, y := Rec(q.FromInt32(10), q.Zero)
	if !withinULP(x, q.FromInt32(10), 1<<6) {
		t.Errorf("Rec(10, 0) x = %d, want ~10", x)
	}
	if !withinULP(y, q.Zero, 1<<6) {
		t.Errorf("Rec(10, 0) y = %d, want ~0", y)
	}
}
