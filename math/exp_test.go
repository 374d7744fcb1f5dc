package math

import (
	"testing"

	"github.com/howerj/q"
)

func TestExpLogInverse(t *testing.T) {
	for _, x := range []q.Q{q.One, q.FromInt32(2), q.FromInt32(5), q.Div(q.One, q.FromInt32(4))} {
		got := Log(Exp(x))
		if !withinULP(got, x, 1<<10) {
			t.Errorf("log(exp(%d)) = %d, want ~%d", x, got, x)
		}
	}
}

func TestLogExpInverse(t *testing.T) {
	for _, x := range []q.Q{q.One, q.FromInt32(2), q.FromInt32(10), q.E} {
		got := Exp(Log(x))
		if !withinULP(got, x, 1<<10) {
			t.Errorf("exp(log(%d)) = %d, want ~%d", x, got, x)
		}
	}
}

func TestLogOfE(t *testing.T) {
	got := Log(q.E)
	if !withinULP(got, q.One, 1<<8) {
		t.Errorf("log(e) = %d, want ~%d", got, q.One)
	}
}

// TestSqrtOfPerfectSquare checks sqrt(100) is within 1 ULP of 10.
func TestSqrtOfPerfectSquare(t *testing.T) {
	got := Sqrt(q.FromInt32(100))
	want := q.FromInt32(10)
	if !withinULP(got, want, 1) {
		t.Errorf("Sqrt(100) = %d, want within 1 ULP of %d", got, want)
	}
}

func TestSqrtSquareInverse(t *testing.T) {
	for _, x := range []q.Q{q.FromInt32(2), q.FromInt32(16), q.FromInt32(81)} {
		s := Sqrt(x)
		got := q.Mul(s, s)
		if !withinULP(got, x, 1<<6) {
			t.Errorf("sqrt(%d)^2 = %d, want ~%d", x, got, x)
		}
	}
}

func TestPowIntegerExponents(t *testing.T) {
	got := Pow(q.FromInt32(2), q.FromInt32(10))
	want := q.FromInt32(1024)
	if !withinULP(got, want, 1<<10) {
		t.Errorf("Pow(2, 10) = %d, want ~%d", got, want)
	}
}

func TestPowZeroBase(t *testing.T) {
	if got := Pow(q.Zero, q.Zero); got != q.One {
		t.Errorf("Pow(0,0) = %d, want %d", got, q.One)
	}
	if got := Pow(q.Zero, q.FromInt32(3)); got != q.Zero {
		t.Errorf("Pow(0,3) = %d, want 0", got)
	}
}

func TestPowNegativeBaseIntegerExponent(t *testing.T) {
	got := Pow(q.FromInt32(-2), q.FromInt32(3))
	want := q.FromInt32(-8)
	if !withinULP(got, want, 1<<10) {
		t.Errorf("Pow(-2, 3) = %d, want ~%d", got, want)
	}
	got = Pow(q.FromInt32(-2), q.FromInt32(2))
	want = q.FromInt32(4)
	if !withinULP(got, want, 1<<10) {
		t.Errorf("Pow(-2, 2) = %d, want ~%d", got, want)
	}
}

func TestHypotPythagorean(t *testing.T) {
	got := Hypot(q.FromInt32(3), q.FromInt32(4))
	want := q.FromInt32(5)
	if !withinULP(got, want, 1<<3) {
		t.Errorf("Hypot(3,4) = %d, want ~%d", got, want)
	}
}
