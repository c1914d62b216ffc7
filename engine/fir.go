package engine

import (
	"github.com/sof-tools/polysrc/fixed"
	"github.com/sof-tools/polysrc/ratetable"
)

// runStage drives one cascade leg for the given number of invocations,
// grounded on src_polyphase_stage_cir / _s24: ingest the newly
// available input into the FIR history, then for every invocation emit
// NumSubfilters output samples by convolving the trailing history
// window against each subfilter's taps.
//
// in must hold exactly times*stage.BlkIn samples; out must have room
// for exactly times*stage.BlkOut samples.
func runStage(stage ratetable.Stage, st *StageState, times int, in, out []int32) {
	if stage.Passthrough() {
		copy(out, in)
		return
	}

	qshift := stage.Shift + 15
	if stage.Format == ratetable.CoefQ23 {
		qshift = stage.Shift + 23
	}

	for t := 0; t < times; t++ {
		for k := 0; k < stage.BlkIn; k++ {
			st.Fir.Set(st.FirWi, in[t*stage.BlkIn+k])
			st.FirWi++
		}
		for f := 0; f < stage.NumSubfilters; f++ {
			base := st.FirWi - 1 - f*stage.IDM
			var acc int64
			switch stage.Format {
			case ratetable.CoefQ15:
				row := stage.CoefsQ15[f*stage.SubfilterLength : (f+1)*stage.SubfilterLength]
				for k := 0; k < stage.SubfilterLength; k++ {
					acc += fixed.MulQ15(row[k], st.Fir.At(base-k))
				}
			case ratetable.CoefQ23:
				row := stage.CoefsQ23[f*stage.SubfilterLength : (f+1)*stage.SubfilterLength]
				for k := 0; k < stage.SubfilterLength; k++ {
					acc += fixed.MulQ23(row[k], st.Fir.At(base-k))
				}
			}
			out[t*stage.BlkOut+f] = fixed.SatInt32(fixed.RshiftRound(acc, qshift))
		}
	}
}
