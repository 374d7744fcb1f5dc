package cordic

import (
	"math"
	"testing"
)

const fracBits = 16
const one = int32(1) << fracBits

func toFloat(x int32) float64 { return float64(x) / float64(one) }
func fromFloat(f float64) int32 { return int32(f * float64(one)) }

func TestCircularRotationSinCos(t *testing.T) {
	theta := fromFloat(math.Pi / 6) // 30 degrees
	x, y, z := GainCircular, int32(0), theta
	Run(Circular, Rotation, -1, &x, &y, &z)

	wantCos, wantSin := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	if diff := math.Abs(toFloat(x) - wantCos); diff > 1e-3 {
		t.Errorf("cos = %v, want %v (diff %v)", toFloat(x), wantCos, diff)
	}
	if diff := math.Abs(toFloat(y) - wantSin); diff > 1e-3 {
		t.Errorf("sin = %v, want %v (diff %v)", toFloat(y), wantSin, diff)
	}
}

func TestCircularVectoringAtan(t *testing.T) {
	x, y, z := one, fromFloat(0.5), int32(0)
	Run(Circular, Vectoring, -1, &x, &y, &z)
	want := math.Atan(0.5)
	if diff := math.Abs(toFloat(z) - want); diff > 1e-3 {
		t.Errorf("atan(0.5) = %v, want %v", toFloat(z), want)
	}
}

func TestHyperbolicRotationSinhCosh(t *testing.T) {
	a := fromFloat(0.5)
	x, y, z := GainHyperbolic, int32(0), a
	Run(Hyperbolic, Rotation, -1, &x, &y, &z)

	wantCosh, wantSinh := math.Cosh(0.5), math.Sinh(0.5)
	if diff := math.Abs(toFloat(x) - wantCosh); diff > 1e-3 {
		t.Errorf("cosh(0.5) = %v, want %v", toFloat(x), wantCosh)
	}
	if diff := math.Abs(toFloat(y) - wantSinh); diff > 1e-3 {
		t.Errorf("sinh(0.5) = %v, want %v", toFloat(y), wantSinh)
	}
}

func TestRunReturnsIterationCount(t *testing.T) {
	x, y, z := one, int32(0), int32(0)
	n := Run(Circular, Rotation, 5, &x, &y, &z)
	if n != 5 {
		t.Errorf("Run with iterations=5 performed %d iterations", n)
	}
	n = Run(Circular, Rotation, -1, &x, &y, &z)
	if n != TableLen {
		t.Errorf("Run with iterations=-1 performed %d, want %d", n, TableLen)
	}
}

func TestHyperbolicSequenceRepeats(t *testing.T) {
	next := hyperbolicSequence()
	want := []int{1, 2, 3, 4, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 13, 14, 15}
	for i, w := range want {
		if got := next(); got != w {
			t.Errorf("hyperbolicSequence()[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestLinearSequenceIsIdentity(t *testing.T) {
	next := linearSequence()
	for i := 0; i < TableLen; i++ {
		if got := next(); got != i {
			t.Errorf("linearSequence()[%d] = %d, want %d", i, got, i)
		}
	}
}
