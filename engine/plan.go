package engine

import (
	"github.com/sof-tools/polysrc/ratetable"
	"github.com/sof-tools/polysrc/util"
)

// Plan describes the sizing of one sample-rate conversion: which
// stages to run, how many times each runs per period, and how large
// the delay lines and inter-stage buffer need to be. It is grounded
// on src_buffer_lengths / src_alloc in the engine's C ancestor.
type Plan struct {
	FsIn, FsOut, Channels int

	// NumberOfStages is 0 (identity copy), 1 (stage1 only), or 2.
	NumberOfStages int

	Stage1, Stage2 ratetable.Stage

	// Stage1Times / Stage2Times are how many times each stage runs to
	// cover one period.
	Stage1Times, Stage2Times int

	// BlkIn / BlkOut are the total source/sink frames this period
	// consumes and produces.
	BlkIn, BlkOut int

	// InterStageLen is the inter-stage buffer length in samples (per
	// channel) counted against MaxDelaySize: twice one period of stage1
	// output for a two-stage plan, 0 otherwise. Polyphase allocates one
	// period (Stage1Times*Stage1.BlkOut) as the slice stage1 writes into
	// and stage2 reads from.
	InterStageLen int

	FirDelayLen1, OutDelayLen1 int
	FirDelayLen2, OutDelayLen2 int
}

// NewPlan sizes a conversion from fsIn to fsOut for nch channels.
// frames is the period length on the source side if forSource is
// true, or on the sink side otherwise.
//
// This collapses the original's two-branch (source-anchored vs
// sink-anchored) scheduling into a single ceil-based schedule, simpler
// than the original's fat-iteration-then-one-block-at-a-time double
// loop, which existed to amortize call overhead that doesn't apply
// here. Unlike the original, the inter-stage buffer this module builds
// from the plan is not a persistent ring (engine.Polyphase's stage1Out
// is fully overwritten every Process call) — so where the original
// would carry a leftover remainder into the next src_copy, a two-stage
// plan whose period does not divide evenly across the inter-stage
// boundary is rejected with ErrFrameAlignment instead of silently
// dropping that remainder every period. Callers picking Frames for a
// two-stage rate pair must choose a value that divides evenly; for the
// curated 44100<->48000 pairing (interpolate-by-147/decimate-by-160 or
// the reverse) that means Frames must be a multiple of 160 or 147
// respectively, since the two factors are coprime.
func NewPlan(fsIn, fsOut, nch, frames int, forSource bool) (Plan, error) {
	if nch <= 0 || nch > MaxChannels {
		return Plan{}, ErrChannelLimit
	}
	idxIn, idxOut := ratetable.FindRate(fsIn), ratetable.FindRate(fsOut)
	if idxIn < 0 || idxOut < 0 {
		return Plan{}, ErrUnsupportedRate
	}

	p := Plan{FsIn: fsIn, FsOut: fsOut, Channels: nch}

	if idxIn == idxOut {
		p.NumberOfStages = 0
		p.BlkIn = frames
		p.BlkOut = frames
		return p, nil
	}

	s1 := ratetable.Table.Stage1[idxOut][idxIn]
	s2 := ratetable.Table.Stage2[idxOut][idxIn]
	if s1.Deleted() {
		return Plan{}, ErrDeletedMode
	}
	if s1.FilterLength > 1 && s1.SubfilterLength%4 != 0 {
		return Plan{}, ErrSubfilterAlignment
	}
	if s2.FilterLength > 1 && s2.SubfilterLength%4 != 0 {
		return Plan{}, ErrSubfilterAlignment
	}
	p.Stage1, p.Stage2 = s1, s2

	if s2.Passthrough() {
		p.NumberOfStages = 1
	} else {
		p.NumberOfStages = 2
	}

	if forSource {
		p.Stage1Times = util.Max(util.CeilDiv(frames, s1.BlkIn), 1)
		p.BlkIn = p.Stage1Times * s1.BlkIn
		inter := p.Stage1Times * s1.BlkOut
		if p.NumberOfStages == 2 {
			if inter%s2.BlkIn != 0 {
				return Plan{}, ErrFrameAlignment
			}
			p.Stage2Times = inter / s2.BlkIn
			p.BlkOut = p.Stage2Times * s2.BlkOut
		} else {
			p.Stage2Times = 0
			p.BlkOut = inter
		}
	} else {
		if p.NumberOfStages == 2 {
			p.Stage2Times = util.Max(util.CeilDiv(frames, s2.BlkOut), 1)
			p.BlkOut = p.Stage2Times * s2.BlkOut
			interNeeded := p.Stage2Times * s2.BlkIn
			if interNeeded%s1.BlkOut != 0 {
				return Plan{}, ErrFrameAlignment
			}
			p.Stage1Times = interNeeded / s1.BlkOut
		} else {
			p.Stage1Times = util.Max(util.CeilDiv(frames, s1.BlkOut), 1)
			p.BlkOut = p.Stage1Times * s1.BlkOut
		}
		p.BlkIn = p.Stage1Times * s1.BlkIn
	}

	p.FirDelayLen1 = s1.FirDelayLength()
	p.OutDelayLen1 = s1.OutDelayLength()
	if p.NumberOfStages == 2 {
		p.InterStageLen = 2 * p.Stage1Times * s1.BlkOut
		p.FirDelayLen2 = s2.FirDelayLength()
		p.OutDelayLen2 = s2.OutDelayLength()
	}

	total := (p.FirDelayLen1 + p.OutDelayLen1 + p.FirDelayLen2 + p.OutDelayLen2 + p.InterStageLen) * nch
	if total > MaxDelaySize {
		return Plan{}, ErrDelaySizeExceeded
	}

	return p, nil
}
