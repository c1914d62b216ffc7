package polysrc

import "github.com/sof-tools/polysrc/types"

// Format is the PCM sample container a Resampler ingests and emits.
type Format = types.Format

const (
	FormatS16LE     = types.FormatS16LE
	FormatS24In32LE = types.FormatS24In32LE
	FormatS32LE     = types.FormatS32LE
)
