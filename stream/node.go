package stream

import (
	"errors"
	"fmt"

	"github.com/sof-tools/polysrc/cache"
	"github.com/sof-tools/polysrc/engine"
	"github.com/sof-tools/polysrc/ratetable"
)

// State is a Node's pipeline lifecycle state, grounded on the
// teacher ancestor's component state machine (src_prepare/src_reset
// and the trigger commands that drive them).
type State int

const (
	StateReset State = iota
	StateReady
	StatePrepared
	StateActive
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateReset:
		return "reset"
	case StateReady:
		return "ready"
	case StatePrepared:
		return "prepared"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// TriggerCommand requests a state transition.
type TriggerCommand int

const (
	TriggerPrepare TriggerCommand = iota
	TriggerStart
	TriggerPause
	TriggerStop
	TriggerReset
)

// ErrInvalidTransition is returned when a TriggerCommand does not
// apply to the Node's current State.
var ErrInvalidTransition = errors.New("stream: invalid state transition")

// Node drives one configured Polyphase conversion as a pipeline
// component: it owns the plan, the converter, its one-shot prefill,
// and the xrun-checked copy loop.
type Node struct {
	Config Config

	state   State
	plan    engine.Plan
	conv    *engine.Polyphase
	prefill int // bytes of silence still owed to the sink

	needSourceBytes int
	needSinkBytes   int

	cache cache.Invalidator
}

// NewNode constructs a Node in StateReset; call Prepare before Copy.
// Cache hooks default to a no-op; use WithCacheHooks to install one.
func NewNode(cfg Config) *Node {
	return &Node{Config: cfg, state: StateReset, cache: cache.Noop}
}

// WithCacheHooks installs inv to be notified with the byte range
// written to the sink after every Copy. On a single address space
// this is unnecessary; it exists for hosts that migrate buffers
// across cache domains between periods.
func (n *Node) WithCacheHooks(inv cache.Invalidator) {
	if inv == nil {
		inv = cache.Noop
	}
	n.cache = inv
}

// State returns the Node's current lifecycle state.
func (n *Node) State() State { return n.state }

// RateMasks forwards the catalogue's supported-rate bitmasks, useful
// for a caller negotiating a topology before it builds a Config.
func (n *Node) RateMasks() (in, out uint32) {
	return ratetable.InputRateMask(), ratetable.OutputRateMask()
}

// Prepare sizes and allocates the underlying Polyphase, grounded on
// src_prepare: it computes the plan from Config, validates the
// subfilter/channel/delay invariants through engine.NewPlan, and
// schedules a one-shot prefill when the cascade's output lags its
// input (a positive frames-blk_out gap).
func (n *Node) Prepare() error {
	if n.state != StateReset && n.state != StateReady {
		return fmt.Errorf("stream: Prepare from %s: %w", n.state, ErrInvalidTransition)
	}
	plan, err := engine.NewPlan(n.Config.SourceRate, n.Config.SinkRate, n.Config.Channels, n.Config.Frames, true)
	if err != nil {
		return err
	}
	conv, err := engine.NewPolyphase(plan, n.Config.Format)
	if err != nil {
		return err
	}
	n.plan = plan
	n.conv = conv
	n.needSourceBytes = plan.BlkIn * n.Config.Channels * n.Config.Format.BytesPerSample()
	n.needSinkBytes = plan.BlkOut * n.Config.Channels * n.Config.Format.BytesPerSample()

	if gap := n.Config.Frames - plan.BlkOut; gap > 0 {
		n.prefill = gap * n.Config.Channels * n.Config.Format.BytesPerSample()
	} else {
		n.prefill = 0
	}
	n.state = StatePrepared
	return nil
}

// Trigger requests a lifecycle transition.
func (n *Node) Trigger(cmd TriggerCommand) error {
	switch cmd {
	case TriggerPrepare:
		return n.Prepare()
	case TriggerStart:
		if n.state != StatePrepared && n.state != StatePaused {
			return fmt.Errorf("stream: Start from %s: %w", n.state, ErrInvalidTransition)
		}
		n.state = StateActive
	case TriggerPause:
		if n.state != StateActive {
			return fmt.Errorf("stream: Pause from %s: %w", n.state, ErrInvalidTransition)
		}
		n.state = StatePaused
	case TriggerStop:
		if n.state != StateActive && n.state != StatePaused {
			return fmt.Errorf("stream: Stop from %s: %w", n.state, ErrInvalidTransition)
		}
		n.state = StateReady
	case TriggerReset:
		if n.conv != nil {
			n.conv.Reset()
		}
		n.state = StateReset
	default:
		return fmt.Errorf("stream: unknown trigger %d", cmd)
	}
	return nil
}

// Prefill writes the one-shot startup silence Prepare computed into
// sink, consuming the obligation. Calling it again after it is spent
// is a no-op. It is a caller error to omit this before the first Copy
// when Prepare scheduled a nonzero prefill.
func (n *Node) Prefill(sink RingBuffer) (int, error) {
	if n.prefill == 0 {
		return 0, nil
	}
	zero := make([]byte, n.prefill)
	written := sink.Write(zero)
	n.prefill -= written
	if written < len(zero) {
		return written, engine.ErrXrun
	}
	return written, nil
}

// Copy runs one period: it checks source/sink headroom (an xrun
// returns engine.ErrXrun without consuming or producing anything),
// decodes, resamples, and encodes, grounded on src_copy.
func (n *Node) Copy(source, sink RingBuffer) (nRead, nWritten int, err error) {
	if n.state != StateActive {
		return 0, 0, fmt.Errorf("stream: Copy while %s: %w", n.state, ErrInvalidTransition)
	}
	if source.Available() < n.needSourceBytes || sink.Free() < n.needSinkBytes {
		return 0, 0, engine.ErrXrun
	}

	raw := make([]byte, n.needSourceBytes)
	nRead = source.Read(raw)
	if nRead < n.needSourceBytes {
		return nRead, 0, engine.ErrXrun
	}

	nchFrames := n.plan.BlkIn * n.Config.Channels
	in := make([]int32, nchFrames)
	decode(n.Config.Format, raw, in)

	outFrames := n.plan.BlkOut * n.Config.Channels
	out := make([]int32, outFrames)
	if err := n.conv.Process(in, out); err != nil {
		return nRead, 0, err
	}

	rawOut := make([]byte, n.needSinkBytes)
	encode(n.Config.Format, out, rawOut)
	nWritten = sink.Write(rawOut)
	if nWritten < len(rawOut) {
		return nRead, nWritten, engine.ErrXrun
	}
	n.cache.WritebackInvalidate(rawOut[:nWritten])
	return nRead, nWritten, nil
}
