// Package fixed implements the fixed-point arithmetic primitives the
// polyphase engine needs: saturation, rounding right shift, and the
// narrow multiply-accumulate helpers used by the FIR kernel.
//
// The naming follows the SigProc_FIX.h convention the teacher codec
// ports (silk_SMULWB, silk_SAT16, ...), generalized to the 32-bit
// saturation the SRC engine needs instead of SILK's 16-bit domain.
package fixed

// SatInt32 saturates a 64-bit accumulator to the int32 range, matching
// the teacher's sat_int32 used after the FIR accumulate-and-shift.
func SatInt32(x int64) int32 {
	if x > int64(1<<31-1) {
		return 1<<31 - 1
	}
	if x < int64(-1<<31) {
		return -1 << 31
	}
	return int32(x)
}

// RshiftRound shifts x right by shift with half-LSB rounding: the
// accumulator is biased by 1<<(shift-1) before the shift, matching
// invariant 9 (half-LSB symmetric rounding).
func RshiftRound(x int64, shift int) int64 {
	if shift <= 0 {
		return x
	}
	return (x + (1 << (shift - 1))) >> shift
}

// MulQ15 computes a Q1.15 coefficient times a Q1.31 sample, producing
// a Q2.46 partial product (coef is widened to int64 from int16).
func MulQ15(coef int16, data int32) int64 {
	return int64(coef) * int64(data)
}

// MulQ23 computes a Q1.23 coefficient times a Q1.31 sample, producing
// a Q2.54 partial product. The coefficient is right-shifted by 8 first
// per the kernel spec (§4.4): y += (i64)(coef >> 8) * (i32)data.
func MulQ23(coef int32, data int32) int64 {
	return int64(coef>>8) * int64(data)
}

// SignExtend24 sign-extends the low 24 bits of a 24-in-32 sample by a
// left shift of 8 followed by an arithmetic right shift of 8,
// matching invariant 8's ingest rule.
func SignExtend24(x int32) int32 {
	return (x << 8) >> 8
}

// Narrow24 is the egress counterpart of the 8-bit ingest left shift:
// an arithmetic right shift by 8. It does not undo SignExtend24, which
// keeps the sample's scale (Narrow24(SignExtend24(x)) equals x only
// for 0 and -1).
func Narrow24(x int32) int32 {
	return x >> 8
}
