package stream

import (
	"testing"

	"github.com/sof-tools/polysrc/engine"
	"github.com/sof-tools/polysrc/types"
)

func newActiveNode(t *testing.T, cfg Config) *Node {
	t.Helper()
	n := NewNode(cfg)
	if err := n.Trigger(TriggerPrepare); err != nil {
		t.Fatal(err)
	}
	if err := n.Trigger(TriggerStart); err != nil {
		t.Fatal(err)
	}
	return n
}

// Scenario a: 48000->48000 identity copy.
func TestNodeIdentityCopy(t *testing.T) {
	cfg := Config{SourceRate: 48000, SinkRate: 48000, Channels: 2, Frames: 64, Format: types.FormatS32LE}
	n := newActiveNode(t, cfg)

	fb := cfg.Channels * cfg.Format.BytesPerSample()
	src := NewByteRing(64*fb*2, fb)
	sink := NewByteRing(64*fb*2, fb)
	src.Write(make([]byte, 64*fb))

	nRead, nWritten, err := n.Copy(src, sink)
	if err != nil {
		t.Fatal(err)
	}
	if nRead != 64*fb || nWritten != 64*fb {
		t.Fatalf("identity copy: read=%d written=%d, want %d/%d", nRead, nWritten, 64*fb, 64*fb)
	}
}

// Scenario e: 96000->48000, 2ch 32-bit, 10 ticks of 96 source frames
// each must yield exactly 480 sink frames total.
func TestNodeDownsampleTenTicks(t *testing.T) {
	cfg := Config{SourceRate: 96000, SinkRate: 48000, Channels: 2, Frames: 96, Format: types.FormatS32LE}
	n := newActiveNode(t, cfg)

	fb := cfg.Channels * cfg.Format.BytesPerSample()
	src := NewByteRing(96*fb*4, fb)
	sink := NewByteRing(48*fb*16, fb)

	total := 0
	for i := 0; i < 10; i++ {
		src.Write(make([]byte, 96*fb))
		_, nWritten, err := n.Copy(src, sink)
		if err != nil {
			t.Fatal(err)
		}
		total += nWritten
	}
	wantBytes := 480 * fb
	if total != wantBytes {
		t.Fatalf("10 ticks of 96 frames at 96000->48000 produced %d bytes, want %d", total, wantBytes)
	}
}

// Scenario f: 48000->96000, source supplies fewer frames than blk_in
// needs and the copy must report an xrun without touching the sink.
func TestNodeUpsampleSourceXrun(t *testing.T) {
	cfg := Config{SourceRate: 48000, SinkRate: 96000, Channels: 2, Frames: 48, Format: types.FormatS32LE}
	n := newActiveNode(t, cfg)

	fb := cfg.Channels * cfg.Format.BytesPerSample()
	src := NewByteRing(64*fb, fb)
	sink := NewByteRing(256*fb, fb)

	// Supply fewer frames than the plan's blk_in requires.
	short := n.plan.BlkIn - 1
	if short < 1 {
		t.Fatalf("test needs a plan with blk_in > 1, got %d", n.plan.BlkIn)
	}
	src.Write(make([]byte, short*fb))

	sinkBefore := sink.Available()
	_, _, err := n.Copy(src, sink)
	if err != engine.ErrXrun {
		t.Fatalf("want ErrXrun, got %v", err)
	}
	if sink.Available() != sinkBefore {
		t.Fatal("an xrun must not write anything to the sink")
	}
}

// Scenario b: 48000->44100, 2ch 32-bit, 480 zero frames in must yield
// 441 frames out.
func TestNodeTwoStageZeroInput(t *testing.T) {
	cfg := Config{SourceRate: 48000, SinkRate: 44100, Channels: 2, Frames: 480, Format: types.FormatS32LE}
	n := newActiveNode(t, cfg)

	fb := cfg.Channels * cfg.Format.BytesPerSample()
	src := NewByteRing(n.plan.BlkIn*fb, fb)
	sink := NewByteRing(n.plan.BlkOut*fb, fb)
	src.Write(make([]byte, n.plan.BlkIn*fb))

	_, nWritten, err := n.Copy(src, sink)
	if err != nil {
		t.Fatal(err)
	}
	if want := 441 * fb; nWritten != want {
		t.Fatalf("480 source frames at 48000->44100 produced %d bytes, want %d", nWritten, want)
	}
}

// A caller picking an ordinary buffer size (1024 frames) for the
// 48000<->44100 pairing must get a rejected Prepare, not a Node that
// silently drops samples every period.
func TestNodePrepareRejectsMisalignedFramesForTwoStagePairing(t *testing.T) {
	cfg := Config{SourceRate: 48000, SinkRate: 44100, Channels: 2, Frames: 1024, Format: types.FormatS32LE}
	n := NewNode(cfg)
	if err := n.Trigger(TriggerPrepare); err != engine.ErrFrameAlignment {
		t.Fatalf("want ErrFrameAlignment, got %v", err)
	}
}

func TestNodeStateMachine(t *testing.T) {
	cfg := Config{SourceRate: 48000, SinkRate: 16000, Channels: 1, Frames: 96, Format: types.FormatS32LE}
	n := NewNode(cfg)

	if err := n.Trigger(TriggerStart); err == nil {
		t.Fatal("Start before Prepare must fail")
	}
	if err := n.Trigger(TriggerPrepare); err != nil {
		t.Fatal(err)
	}
	if err := n.Trigger(TriggerStart); err != nil {
		t.Fatal(err)
	}
	if err := n.Trigger(TriggerPause); err != nil {
		t.Fatal(err)
	}
	if err := n.Trigger(TriggerStart); err != nil {
		t.Fatal("resuming from paused must succeed")
	}
	if err := n.Trigger(TriggerStop); err != nil {
		t.Fatal(err)
	}
	if n.State() != StateReady {
		t.Fatalf("after Stop, state = %s, want ready", n.State())
	}
	if err := n.Trigger(TriggerReset); err != nil {
		t.Fatal(err)
	}
	if n.State() != StateReset {
		t.Fatalf("after Reset, state = %s, want reset", n.State())
	}
}

func TestConfigNegotiate(t *testing.T) {
	cfg := Config{SinkRate: 48000, Channels: 2, Frames: 64, Format: types.FormatS32LE}
	resolved, err := cfg.Negotiate(44100)
	if err != nil {
		t.Fatal(err)
	}
	if resolved.SourceRate != 44100 {
		t.Fatalf("Negotiate must fill SourceRate, got %d", resolved.SourceRate)
	}

	both := Config{SourceRate: 48000, SinkRate: 44100}
	if _, err := both.Negotiate(16000); err != ErrRateNegotiation {
		t.Fatal("Negotiate with both rates set must fail")
	}
}
