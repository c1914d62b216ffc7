package engine

import "github.com/sof-tools/polysrc/types"

// driverKind tags which processing path a Polyphase instance runs,
// replacing the teacher C ancestor's function-pointer dispatch
// (src_copy_s16/src_copy_s32/src_1s/src_2s/src_fallback) with an enum
// switch, which is the idiomatic Go substitute for dispatching through
// a struct of function pointers chosen once at init time.
type driverKind int

const (
	driverIdentity16 driverKind = iota
	driverIdentity32
	driverOneStage
	driverTwoStage
	driverFallback
)

// Polyphase is a configured sample-rate converter for a fixed
// (fsIn, fsOut, channels) triple, holding the per-channel FIR history
// needed to process consecutive blocks continuously.
type Polyphase struct {
	Plan   Plan
	Format types.Format

	driver driverKind

	stage1 []*StageState
	stage2 []*StageState

	stage1Out [][]int32
}

// NewPolyphase builds a converter from an already-sized Plan. Internal
// samples are always Q1.31; Format only selects which identity driver
// is recorded for a 0-stage plan (the data itself is never reshifted
// inside Polyphase regardless of Format, preserving bit-exactness for
// formats narrower than 32 bits, per the planner's identity contract).
func NewPolyphase(plan Plan, format types.Format) (*Polyphase, error) {
	p := &Polyphase{Plan: plan, Format: format}

	switch plan.NumberOfStages {
	case 0:
		if format == types.FormatS16LE {
			p.driver = driverIdentity16
		} else {
			p.driver = driverIdentity32
		}
		return p, nil
	case 1:
		p.driver = driverOneStage
	case 2:
		p.driver = driverTwoStage
	default:
		p.driver = driverFallback
		return p, nil
	}

	p.stage1 = make([]*StageState, plan.Channels)
	for c := range p.stage1 {
		p.stage1[c] = NewStageState(plan.FirDelayLen1)
	}
	if plan.NumberOfStages == 2 {
		p.stage2 = make([]*StageState, plan.Channels)
		p.stage1Out = make([][]int32, plan.Channels)
		for c := range p.stage2 {
			p.stage2[c] = NewStageState(plan.FirDelayLen2)
			p.stage1Out[c] = make([]int32, plan.Stage1Times*plan.Stage1.BlkOut)
		}
	}
	return p, nil
}

// Process converts one period of interleaved Q1.31 samples. in must
// hold Plan.BlkIn*Plan.Channels samples; out must have room for
// Plan.BlkOut*Plan.Channels samples.
func (p *Polyphase) Process(in, out []int32) error {
	nch := p.Plan.Channels

	switch p.driver {
	case driverIdentity16, driverIdentity32:
		copy(out, in)
		return nil
	case driverFallback:
		for i := range out {
			out[i] = 0
		}
		return nil
	}

	chIn := make([]int32, p.Plan.BlkIn)
	chOut := make([]int32, p.Plan.BlkOut)

	for c := 0; c < nch; c++ {
		for i := 0; i < p.Plan.BlkIn; i++ {
			chIn[i] = in[i*nch+c]
		}

		switch p.driver {
		case driverOneStage:
			runStage(p.Plan.Stage1, p.stage1[c], p.Plan.Stage1Times, chIn, chOut)
		case driverTwoStage:
			runStage(p.Plan.Stage1, p.stage1[c], p.Plan.Stage1Times, chIn, p.stage1Out[c])
			runStage(p.Plan.Stage2, p.stage2[c], p.Plan.Stage2Times, p.stage1Out[c], chOut)
		}

		for i := 0; i < p.Plan.BlkOut; i++ {
			out[i*nch+c] = chOut[i]
		}
	}
	return nil
}

// Reset clears all per-channel FIR history, as if the converter had
// just been created, without reallocating its buffers.
func (p *Polyphase) Reset() {
	for _, st := range p.stage1 {
		if st != nil {
			for i := range st.Fir.buf {
				st.Fir.buf[i] = 0
			}
			st.FirWi = 0
		}
	}
	for _, st := range p.stage2 {
		if st != nil {
			for i := range st.Fir.buf {
				st.Fir.buf[i] = 0
			}
			st.FirWi = 0
		}
	}
}
