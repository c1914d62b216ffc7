// Package stream wraps engine.Polyphase in the thin pipeline-component
// contract a streaming caller actually drives: rate negotiation,
// prefill, xrun detection, and a ring-buffer-to-ring-buffer copy loop.
// It is grounded on src.c's comp_data/src_params/src_prepare/src_copy.
package stream

import (
	"errors"

	"github.com/sof-tools/polysrc/types"
)

// ErrRateNegotiation is returned when a Config has zero, or both,
// of SourceRate/SinkRate set instead of exactly one.
var ErrRateNegotiation = errors.New("stream: exactly one of SourceRate/SinkRate must be preset")

// Config describes one conversion endpoint before it is prepared.
type Config struct {
	// SourceRate and SinkRate are sample rates in Hz. Exactly one may
	// be left at 0, to be resolved by Negotiate from a peer's rate,
	// mirroring src_params's "one side fixed, one side negotiated"
	// contract.
	SourceRate, SinkRate int
	Channels             int
	// Frames is the nominal period length, source-anchored.
	Frames int
	Format types.Format
}

// Negotiate resolves a single unset rate (SourceRate or SinkRate) to
// peerRate and returns the completed config. It is an error for both
// rates to be unset, or for both to already be set.
func (c Config) Negotiate(peerRate int) (Config, error) {
	switch {
	case c.SourceRate == 0 && c.SinkRate == 0:
		return Config{}, ErrRateNegotiation
	case c.SourceRate != 0 && c.SinkRate != 0:
		return Config{}, ErrRateNegotiation
	case c.SourceRate == 0:
		c.SourceRate = peerRate
	default:
		c.SinkRate = peerRate
	}
	return c, nil
}
