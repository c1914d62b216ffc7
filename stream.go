// stream.go implements a streaming io.Reader/io.Writer facade over a
// single stream.Node, for callers that want to push raw PCM bytes in
// and pull resampled PCM bytes out without managing rings or periods
// themselves.

package polysrc

import (
	"io"

	"github.com/sof-tools/polysrc/engine"
	"github.com/sof-tools/polysrc/stream"
)

// Config configures a Resampler. See stream.Config for field meaning.
type Config = stream.Config

const ringCapacityFrames = 4096

// Resampler wraps a stream.Node behind an io.Writer (accepts source
// PCM bytes) / io.Reader (yields resampled sink PCM bytes) pair,
// internally buffering until a full period is available, the same
// incremental-buffering pattern the teacher's streaming Reader used
// for packet-boundary buffering.
type Resampler struct {
	node *stream.Node
	src  *stream.ByteRing
	sink *stream.ByteRing
}

// NewResampler prepares and starts a Node for cfg.
func NewResampler(cfg Config) (*Resampler, error) {
	n := stream.NewNode(cfg)
	if err := n.Trigger(stream.TriggerPrepare); err != nil {
		return nil, err
	}
	if err := n.Trigger(stream.TriggerStart); err != nil {
		return nil, err
	}

	fb := cfg.Channels * cfg.Format.BytesPerSample()
	r := &Resampler{
		node: n,
		src:  stream.NewByteRing(ringCapacityFrames*fb, fb),
		sink: stream.NewByteRing(ringCapacityFrames*fb, fb),
	}
	if _, err := n.Prefill(r.sink); err != nil {
		return nil, err
	}
	return r, nil
}

// Write buffers p as source PCM bytes and drains as many full periods
// through the converter as are now available.
func (r *Resampler) Write(p []byte) (int, error) {
	n := r.src.Write(p)
	for {
		if _, _, err := r.node.Copy(r.src, r.sink); err != nil {
			if err == engine.ErrXrun {
				break
			}
			return n, err
		}
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Read yields resampled sink PCM bytes already produced by Write. It
// returns io.EOF when nothing is currently buffered; callers should
// treat that as "no output yet", not end of stream, and try again
// after the next Write.
func (r *Resampler) Read(p []byte) (int, error) {
	n := r.sink.Read(p)
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// SampleRate returns the (source, sink) rate pair this Resampler
// converts between.
func (r *Resampler) SampleRate() (source, sink int) {
	return r.node.Config.SourceRate, r.node.Config.SinkRate
}

// Channels returns the interleaved channel count.
func (r *Resampler) Channels() int {
	return r.node.Config.Channels
}

// Reset clears all buffered bytes and FIR history for a fresh stream.
func (r *Resampler) Reset() error {
	if err := r.node.Trigger(stream.TriggerStop); err != nil {
		return err
	}
	if err := r.node.Trigger(stream.TriggerReset); err != nil {
		return err
	}
	r.src = stream.NewByteRing(r.src.FrameBytes()*ringCapacityFrames, r.src.FrameBytes())
	r.sink = stream.NewByteRing(r.sink.FrameBytes()*ringCapacityFrames, r.sink.FrameBytes())
	if err := r.node.Trigger(stream.TriggerPrepare); err != nil {
		return err
	}
	return r.node.Trigger(stream.TriggerStart)
}
