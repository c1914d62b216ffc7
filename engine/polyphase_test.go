package engine

import (
	"testing"

	"github.com/sof-tools/polysrc/types"
)

func TestPolyphaseIdentity(t *testing.T) {
	plan, err := NewPlan(48000, 48000, 2, 64, true)
	if err != nil {
		t.Fatal(err)
	}
	pp, err := NewPolyphase(plan, types.FormatS32LE)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]int32, 64*2)
	for i := range in {
		in[i] = int32(i + 1)
	}
	out := make([]int32, 64*2)
	if err := pp.Process(in, out); err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("identity conversion must be bit-exact, out[%d]=%d want %d", i, out[i], in[i])
		}
	}
}

func TestPolyphaseOneStageDownsample(t *testing.T) {
	plan, err := NewPlan(96000, 48000, 2, 96, true)
	if err != nil {
		t.Fatal(err)
	}
	pp, err := NewPolyphase(plan, types.FormatS32LE)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]int32, plan.BlkIn*plan.Channels)
	out := make([]int32, plan.BlkOut*plan.Channels)
	for tick := 0; tick < 10; tick++ {
		if err := pp.Process(in, out); err != nil {
			t.Fatal(err)
		}
	}
	if plan.BlkOut != 48 {
		t.Fatalf("per-tick output must be 48 frames, got %d", plan.BlkOut)
	}
}

func TestPolyphaseTwoStageConservesSampleCount(t *testing.T) {
	plan, err := NewPlan(48000, 44100, 2, 480, true)
	if err != nil {
		t.Fatal(err)
	}
	pp, err := NewPolyphase(plan, types.FormatS32LE)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]int32, plan.BlkIn*plan.Channels)
	out := make([]int32, plan.BlkOut*plan.Channels)
	if err := pp.Process(in, out); err != nil {
		t.Fatal(err)
	}
	if plan.BlkOut != 441 {
		t.Fatalf("480 source frames at 48000->44100 must produce 441, got %d", plan.BlkOut)
	}
}

func TestPolyphaseTwoStageRejectsMisalignedPeriod(t *testing.T) {
	// The inter-stage buffer is not a persistent ring, so a period that
	// does not divide evenly across it must fail at planning time
	// rather than silently drop samples on every Process call.
	if _, err := NewPlan(48000, 44100, 2, 1024, true); err != ErrFrameAlignment {
		t.Fatalf("want ErrFrameAlignment, got %v", err)
	}
}

func TestPolyphaseResetClearsHistory(t *testing.T) {
	plan, err := NewPlan(48000, 16000, 1, 96, true)
	if err != nil {
		t.Fatal(err)
	}
	pp, err := NewPolyphase(plan, types.FormatS32LE)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]int32, plan.BlkIn*plan.Channels)
	for i := range in {
		in[i] = 1 << 20
	}
	out := make([]int32, plan.BlkOut*plan.Channels)
	if err := pp.Process(in, out); err != nil {
		t.Fatal(err)
	}
	pp.Reset()
	for _, st := range pp.stage1 {
		for _, v := range st.Fir.buf {
			if v != 0 {
				t.Fatal("Reset must clear FIR history")
			}
		}
		if st.FirWi != 0 {
			t.Fatal("Reset must clear the write cursor")
		}
	}
}
