package ratetable

// Rates is the canonical sample-rate list, grounded on sof_rates in
// src_core.c. The full engine lists 15 rates; this catalogue wires
// stage designs for a representative subset and marks the remainder
// present-but-deleted so InputRateMask/OutputRateMask still reflect
// the full list.
var Rates = [15]int{
	8000, 11025, 12000, 16000, 18900, 22050,
	24000, 32000, 44100, 48000, 64000, 88200,
	96000, 176400, 192000,
}

// FindRate returns the index of fs in Rates, or -1 if fs is not a
// recognized rate at all (distinct from a recognized-but-deleted
// pair), grounded on src_find_fs.
func FindRate(fs int) int {
	for i, r := range Rates {
		if r == fs {
			return i
		}
	}
	return -1
}

// InputRateMask returns a bitmask over Rates with bit i set when
// Rates[i] has at least one supported (non-deleted) conversion as a
// source rate, grounded on src_input_rates.
func InputRateMask() uint32 {
	var mask uint32
	for i := range Rates {
		for j := range Rates {
			if !Table.Stage1[j][i].Deleted() {
				mask |= 1 << uint(i)
				break
			}
		}
	}
	return mask
}

// OutputRateMask returns a bitmask over Rates with bit i set when
// Rates[i] has at least one supported conversion as a sink rate,
// grounded on src_output_rates.
func OutputRateMask() uint32 {
	var mask uint32
	for i := range Rates {
		for j := range Rates {
			if !Table.Stage1[i][j].Deleted() {
				mask |= 1 << uint(i)
				break
			}
		}
	}
	return mask
}

// Catalogue holds the stage1/stage2 cascade for every (output, input)
// rate index pair, mirroring the [idx_out][idx_in] layout the planner
// indexes into.
type Catalogue struct {
	Stage1 [15][15]Stage
	Stage2 [15][15]Stage
}

// Table is the process-wide curated rate catalogue, populated by the
// init function in coefs.go.
var Table Catalogue

// identityStage marks a same-rate pair: a single-tap passthrough on
// both legs, collapsed to zero stages by the planner (invariant 5)
// before either stage is ever evaluated.
func identityStage() Stage {
	return Stage{FilterLength: 1, BlkIn: 1, BlkOut: 1, NumSubfilters: 1}
}
