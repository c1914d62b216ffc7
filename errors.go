// errors.go re-exports the resampler's sentinel errors at the top
// level, so a caller using the Resampler facade need not import
// engine or stream directly to do an errors.Is check.

package polysrc

import (
	"github.com/sof-tools/polysrc/engine"
	"github.com/sof-tools/polysrc/stream"
)

var (
	// ErrUnsupportedRate indicates fsIn or fsOut is not a recognized
	// sample rate at all.
	ErrUnsupportedRate = engine.ErrUnsupportedRate

	// ErrDeletedMode indicates both rates are recognized but the
	// catalogue has no filter design wired for that pair.
	ErrDeletedMode = engine.ErrDeletedMode

	// ErrChannelLimit indicates a plan requested more channels than
	// engine.MaxChannels.
	ErrChannelLimit = engine.ErrChannelLimit

	// ErrDelaySizeExceeded indicates a plan's delay-line requirement
	// exceeded engine.MaxDelaySize.
	ErrDelaySizeExceeded = engine.ErrDelaySizeExceeded

	// ErrSubfilterAlignment indicates a wired stage's subfilter
	// length was not a multiple of 4.
	ErrSubfilterAlignment = engine.ErrSubfilterAlignment

	// ErrFrameAlignment indicates a two-stage conversion's Frames does
	// not divide evenly across the inter-stage boundary; pick a Frames
	// that is a multiple of the other stage's block size.
	ErrFrameAlignment = engine.ErrFrameAlignment

	// ErrXrun indicates a Copy call could not satisfy one period from
	// the source or into the sink.
	ErrXrun = engine.ErrXrun

	// ErrRateNegotiation indicates a Config left zero, or both, of
	// SourceRate/SinkRate unset instead of exactly one.
	ErrRateNegotiation = stream.ErrRateNegotiation

	// ErrInvalidTransition indicates a TriggerCommand did not apply to
	// the Resampler's current state.
	ErrInvalidTransition = stream.ErrInvalidTransition
)
