// Package ratetable holds the rate-pair catalogue the polyphase engine
// plans against: the canonical sample-rate list, the supported
// input/output masks, and the per-pair stage1/stage2 filter designs.
//
// The catalogue here is a curated subset, not the full SOF ROM: the
// coefficient tables those rates ship with were never part of the
// retrieved corpus, so the designs below are generated once at package
// init from a windowed-sinc lowpass rather than transcribed from a ROM
// image. See coefs.go.
package ratetable

// CoefFormat selects the width of a stage's coefficient storage.
type CoefFormat uint8

const (
	// CoefQ15 stores coefficients as Q1.15 in a 16-bit lane, matching
	// SRC_SHORT in the teacher's C ancestor.
	CoefQ15 CoefFormat = iota
	// CoefQ23 stores coefficients as Q1.23 in a 32-bit lane, the
	// higher-precision default build.
	CoefQ23
)

// Stage is one leg of a two-stage polyphase cascade: a bank of
// num_of_subfilters polyphase sub-filters, each subfilter_length taps
// long, driven at a fixed input/output block ratio.
type Stage struct {
	// IDM and ODM are the per-subfilter read/write strides (invariant
	// 4): IDM advances the input read pointer between subfilters, ODM
	// advances the output write pointer between subfilters.
	IDM, ODM int
	// NumSubfilters is the subfilter count (a stage's interpolation or
	// decimation factor, depending on which side is 1).
	NumSubfilters int
	// SubfilterLength is taps per subfilter. Must be a multiple of 4
	// whenever FilterLength > 1 (invariant 3).
	SubfilterLength int
	// FilterLength is NumSubfilters * SubfilterLength, or 0 for a
	// deleted (unsupported) rate pair, or 1 for a single-tap
	// passthrough marking a one-stage cascade.
	FilterLength int
	// BlkIn and BlkOut are the samples consumed/produced per stage
	// invocation.
	BlkIn, BlkOut int
	// Shift is the post-accumulate right shift applied on top of the
	// coefficient's fixed-point width (qshift = 15+Shift for Q1.15,
	// 23+Shift for Q1.23).
	Shift int
	// Format selects which of CoefsQ15 / CoefsQ23 holds the data.
	Format CoefFormat
	// CoefsQ15 / CoefsQ23 hold NumSubfilters*SubfilterLength taps,
	// subfilter-major: CoefsQ15[f*SubfilterLength : (f+1)*SubfilterLength]
	// is the f'th subfilter.
	CoefsQ15 []int16
	CoefsQ23 []int32
}

// Deleted reports whether this rate pair carries no usable filter
// design (invariant 5: filter_length == 0).
func (s Stage) Deleted() bool {
	return s.FilterLength == 0
}

// Passthrough reports whether this stage is the single-tap marker used
// when only one real stage is needed (invariant 5: filter_length == 1
// on stage2 collapses the cascade to a one-stage driver).
func (s Stage) Passthrough() bool {
	return s.FilterLength == 1
}

// FirDelayLength returns the FIR delay-line length this stage needs,
// grounded on src_fir_delay_length in the original engine:
// subfilter_length + (num_of_subfilters-1)*idm + blk_in.
func (s Stage) FirDelayLength() int {
	return s.SubfilterLength + (s.NumSubfilters-1)*s.IDM + s.BlkIn
}

// OutDelayLength returns the output delay-line length this stage
// needs, grounded on src_out_delay_length: 1 + (num_of_subfilters-1)*odm.
func (s Stage) OutDelayLength() int {
	return 1 + (s.NumSubfilters-1)*s.ODM
}
