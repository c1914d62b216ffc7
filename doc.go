// Package polysrc implements a fixed-point, multi-rate polyphase FIR
// sample-rate converter in pure Go.
//
// It resamples interleaved PCM between a curated set of rates (8 kHz
// up to 192 kHz) using up to two cascaded polyphase stages: a plain
// copy for equal rates, one stage for small integer ratios, and an
// interpolation stage followed by a decimation stage for 44100<->48000,
// each driven by a fixed block-size schedule computed once per
// configuration. It requires no cgo dependencies.
//
// # Package layout
//
//   - fixed holds the Q-format fixed-point primitives the FIR kernel
//     needs: saturation, rounding shifts, narrow multiply-accumulate.
//   - ratetable holds the rate catalogue: which (fsIn, fsOut) pairs are
//     supported and the filter design for each.
//   - engine implements the planner and the FIR stage cascade itself.
//   - stream wraps engine.Polyphase in the pipeline-component contract:
//     rate negotiation, prefill, xrun detection, a ring-buffer copy loop.
//
// This package is the thin top-level facade over stream.Node for
// callers that just want to hand it two byte buffers.
//
// # Rate pairs
//
// Use engine.NewPlan or NewResampler to discover whether a given
// (fsIn, fsOut) pair is supported; an unrecognized rate or an
// unwired pair both return a distinct sentinel error (see errors.go).
package polysrc
