// Package engine implements the polyphase FIR sample-rate converter:
// the planner that sizes a rate conversion, the fixed-point FIR
// kernel, and the delay-line driven stage cascade that runs it.
package engine

import "errors"

// MaxChannels bounds how many interleaved channels a single Polyphase
// instance will plan for.
const MaxChannels = 8

// MaxDelaySize bounds the total delay-line and inter-stage buffer
// allocation (in samples, summed over all stages and all channels) a
// plan is allowed to request, guarding against a pathological rate
// pair demanding unbounded memory.
const MaxDelaySize = 1 << 20

var (
	// ErrUnsupportedRate is returned when fsIn or fsOut is not in the
	// canonical rate list at all.
	ErrUnsupportedRate = errors.New("engine: unsupported sample rate")
	// ErrDeletedMode is returned when both rates are recognized but
	// the catalogue has no filter design wired for that pair.
	ErrDeletedMode = errors.New("engine: rate pair has no filter design")
	// ErrChannelLimit is returned when a plan requests more channels
	// than MaxChannels.
	ErrChannelLimit = errors.New("engine: channel count exceeds limit")
	// ErrDelaySizeExceeded is returned when a plan's total delay-line
	// and inter-stage requirement exceeds MaxDelaySize.
	ErrDelaySizeExceeded = errors.New("engine: delay line size exceeded")
	// ErrSubfilterAlignment is returned when a wired stage's
	// subfilter_length is not a multiple of 4.
	ErrSubfilterAlignment = errors.New("engine: subfilter length misaligned")
	// ErrXrun is returned by a stream pump when the source or sink
	// ring buffer could not satisfy one period.
	ErrXrun = errors.New("engine: buffer underrun or overrun")
	// ErrFrameAlignment is returned when a two-stage plan's requested
	// period does not divide evenly across the inter-stage boundary
	// (Stage1Times*Stage1.BlkOut is not a multiple of Stage2.BlkIn, or
	// vice versa on the sink-anchored path). The inter-stage buffer is
	// not a persistent ring, so a misaligned period would otherwise
	// silently drop the remainder every period; this is rejected
	// instead of producing quietly corrupted audio.
	ErrFrameAlignment = errors.New("engine: period does not align with inter-stage block size")
)
