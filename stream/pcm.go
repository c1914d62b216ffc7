package stream

import (
	"encoding/binary"

	"github.com/sof-tools/polysrc/types"
)

// decode unpacks n interleaved frames of raw bytes into Q1.31 samples
// per Format's DataShift, grounded on src_prepare's format-to-shift
// dispatch and the teacher's float32ToInt16-style boundary conversion
// in pcm.go.
func decode(format types.Format, raw []byte, out []int32) {
	shift := uint(format.DataShift())
	bps := format.BytesPerSample()
	for i := range out {
		off := i * bps
		switch format {
		case types.FormatS16LE:
			v := int32(int16(binary.LittleEndian.Uint16(raw[off:])))
			out[i] = v << shift
		default:
			v := int32(binary.LittleEndian.Uint32(raw[off:]))
			out[i] = v << shift
		}
	}
}

// encode reverses decode: Q1.31 samples back to raw interleaved bytes.
func encode(format types.Format, in []int32, raw []byte) {
	shift := uint(format.DataShift())
	bps := format.BytesPerSample()
	for i, v := range in {
		off := i * bps
		switch format {
		case types.FormatS16LE:
			binary.LittleEndian.PutUint16(raw[off:], uint16(int16(v>>shift)))
		default:
			binary.LittleEndian.PutUint32(raw[off:], uint32(v>>shift))
		}
	}
}
