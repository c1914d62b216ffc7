package fixed

import "testing"

func TestSatInt32(t *testing.T) {
	cases := []struct {
		in   int64
		want int32
	}{
		{0, 0},
		{1 << 40, 1<<31 - 1},
		{-(1 << 40), -1 << 31},
		{42, 42},
	}
	for _, c := range cases {
		if got := SatInt32(c.in); got != c.want {
			t.Errorf("SatInt32(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRshiftRound(t *testing.T) {
	// Half-LSB rounding: 3 >> 1 rounded = (3+1)>>1 = 2.
	if got := RshiftRound(3, 1); got != 2 {
		t.Errorf("RshiftRound(3,1) = %d, want 2", got)
	}
	// Exact shift, no rounding artifact.
	if got := RshiftRound(4, 2); got != 1 {
		t.Errorf("RshiftRound(4,2) = %d, want 1", got)
	}
	// shift <= 0 is a no-op.
	if got := RshiftRound(7, 0); got != 7 {
		t.Errorf("RshiftRound(7,0) = %d, want 7", got)
	}
}

func TestSignExtendRoundTrip(t *testing.T) {
	// A 24-bit negative value held in the low bits of an int32.
	in := int32(0xFFFFFF) // -1 in 24-bit two's complement
	ext := SignExtend24(in)
	if ext != -1 {
		t.Errorf("SignExtend24(0xFFFFFF) = %d, want -1", ext)
	}
	if back := Narrow24(ext); back != -1 {
		t.Errorf("Narrow24(SignExtend24(x)) = %d, want -1", back)
	}
}

func TestMulQ15Q23(t *testing.T) {
	if got := MulQ15(2, 3); got != 6 {
		t.Errorf("MulQ15(2,3) = %d, want 6", got)
	}
	if got := MulQ23(256, 3); got != 3 {
		t.Errorf("MulQ23(256,3) = %d, want 3", got)
	}
}
