package ratetable

import "math"

// sinc is the normalized sinc function used by designPhases.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// designPhases builds a windowed-sinc polyphase lowpass with
// numSubfilters phases of subfilterLength taps each, subfilter-major.
//
// This stands in for the coefficient ROM the teacher's SRC ancestor
// ships (src_std_int32_table.h / src_tiny_int16_table.h): those tables
// were not part of the retrieved corpus, so the catalogue below is
// generated once here, deterministically, rather than hand-transcribed.
// It is not adaptive: the same (numSubfilters, subfilterLength, cutoff)
// always produces the same taps, computed once before first use.
func designPhases(numSubfilters, subfilterLength int, cutoff float64) []float64 {
	taps := make([]float64, numSubfilters*subfilterLength)
	half := float64(subfilterLength-1) / 2
	for f := 0; f < numSubfilters; f++ {
		phase := float64(f) / float64(numSubfilters)
		var sum float64
		row := taps[f*subfilterLength : (f+1)*subfilterLength]
		for k := 0; k < subfilterLength; k++ {
			t := float64(k) - half - phase
			w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(k)/float64(subfilterLength-1))
			v := cutoff * sinc(cutoff*t) * w
			row[k] = v
			sum += v
		}
		if sum != 0 {
			for k := range row {
				row[k] /= sum
			}
		}
	}
	return taps
}

// quantizeQ15 converts unit-gain float taps to Q1.15.
func quantizeQ15(taps []float64) []int16 {
	out := make([]int16, len(taps))
	for i, v := range taps {
		q := math.Round(v * 32768)
		if q > 32767 {
			q = 32767
		}
		if q < -32768 {
			q = -32768
		}
		out[i] = int16(q)
	}
	return out
}

// quantizeQ23 converts unit-gain float taps to Q1.23.
func quantizeQ23(taps []float64) []int32 {
	const max = 1<<23 - 1
	out := make([]int32, len(taps))
	for i, v := range taps {
		q := math.Round(v * (1 << 23))
		if q > max {
			q = max
		}
		if q < -(max + 1) {
			q = -(max + 1)
		}
		out[i] = int32(q)
	}
	return out
}

// interpStage builds a pure interpolate-by-L stage: one new input
// sample yields L output samples, all read from the same history
// window (idm=0), written consecutively (odm=1).
func interpStage(l, subfilterLength int, format CoefFormat, shift int) Stage {
	taps := designPhases(l, subfilterLength, 1.0/float64(l))
	s := Stage{
		IDM:             0,
		ODM:             1,
		NumSubfilters:   l,
		SubfilterLength: subfilterLength,
		FilterLength:    l * subfilterLength,
		BlkIn:           1,
		BlkOut:          l,
		Shift:           shift,
		Format:          format,
	}
	switch format {
	case CoefQ15:
		s.CoefsQ15 = quantizeQ15(taps)
	case CoefQ23:
		s.CoefsQ23 = quantizeQ23(taps)
	}
	return s
}

// decimStage builds a pure decimate-by-M stage: M input samples yield
// one output sample through a single subfilter.
func decimStage(m, totalTaps int, format CoefFormat, shift int) Stage {
	taps := designPhases(1, totalTaps, 1.0/float64(m))
	s := Stage{
		IDM:             1,
		ODM:             0,
		NumSubfilters:   1,
		SubfilterLength: totalTaps,
		FilterLength:    totalTaps,
		BlkIn:           m,
		BlkOut:          1,
		Shift:           shift,
		Format:          format,
	}
	switch format {
	case CoefQ15:
		s.CoefsQ15 = quantizeQ15(taps)
	case CoefQ23:
		s.CoefsQ23 = quantizeQ23(taps)
	}
	return s
}

// wire sets Table.Stage1[out][in]/Table.Stage2[out][in] for one
// supported rate pair. stage2 is the passthrough marker when the
// conversion needs only one real stage.
func wire(fsOut, fsIn int, stage1, stage2 Stage) {
	o, i := FindRate(fsOut), FindRate(fsIn)
	if o < 0 || i < 0 {
		panic("ratetable: wire references a rate not in Rates")
	}
	Table.Stage1[o][i] = stage1
	Table.Stage2[o][i] = stage2
}

func init() {
	passthrough := identityStage()

	for _, fs := range Rates {
		wire(fs, fs, passthrough, passthrough)
	}

	// Small integer-factor pairs: a single Q1.15 stage suffices.
	wire(16000, 8000, interpStage(2, 8, CoefQ15, 0), passthrough)
	wire(8000, 16000, decimStage(2, 16, CoefQ15, 0), passthrough)

	wire(24000, 8000, interpStage(3, 8, CoefQ15, 0), passthrough)
	wire(8000, 24000, decimStage(3, 24, CoefQ15, 0), passthrough)

	wire(48000, 16000, interpStage(3, 16, CoefQ15, 0), passthrough)
	wire(16000, 48000, decimStage(3, 48, CoefQ15, 0), passthrough)

	wire(48000, 24000, interpStage(2, 16, CoefQ15, 0), passthrough)
	wire(24000, 48000, decimStage(2, 32, CoefQ15, 0), passthrough)

	wire(96000, 48000, interpStage(2, 16, CoefQ15, 0), passthrough)
	wire(48000, 96000, decimStage(2, 32, CoefQ15, 0), passthrough)

	// 44100 <-> 48000 reduces to 147:160, an irreducible ratio that
	// cannot fit a single constant-stride stage. It needs a genuine
	// two-stage cascade: interpolate by the output side's factor, then
	// decimate by the input side's (160 then 147 for 44100->48000, 147
	// then 160 for 48000->44100), each a Q1.23 design for the extra
	// precision the long cascade needs.
	wire(48000, 44100, interpStage(160, 8, CoefQ23, 0), decimStage(147, 32, CoefQ23, 0))
	wire(44100, 48000, interpStage(147, 8, CoefQ23, 0), decimStage(160, 32, CoefQ23, 0))
}
