package q

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	values := []Q{Zero, One, MaxValue, MinValue, FromInt32(-12345), Pi}
	for _, v := range values {
		b := Pack(v)
		got, err := Unpack(b[:])
		if err != nil {
			t.Fatalf("Unpack error: %v", err)
		}
		if got != v {
			t.Errorf("Pack/Unpack(%d) = %d", v, got)
		}
	}
}

func TestUnpackShortBuffer(t *testing.T) {
	_, err := Unpack([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected ErrShortBuffer")
	}
	if _, ok := err.(*ErrShortBuffer); !ok {
		t.Fatalf("expected *ErrShortBuffer, got %T", err)
	}
}

func TestIntConversions(t *testing.T) {
	v := FromInt32(42)
	if v.ToInt32() != 42 {
		t.Errorf("ToInt32() = %d, want 42", v.ToInt32())
	}
	if FromInt16(-7).ToInt16() != -7 {
		t.Errorf("round trip through int16 failed")
	}
	if FromInt8(3).ToInt8() != 3 {
		t.Errorf("round trip through int8 failed")
	}
}

func TestFMASaturatesCloseToOverflow(t *testing.T) {
	half := Div(MaxValue, FromInt32(2))
	oneAndHalf := Add(One, Div(One, FromInt32(2)))
	got := FMA(MaxValue, oneAndHalf, MinValue)
	diff := int64(got) - int64(half)
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		t.Errorf("FMA(max, 1.5, min) = %d, want within 1 of max/2 = %d", got, half)
	}
}
