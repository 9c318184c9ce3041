// Package stats computes weighted averages and rank estimates over binned
// distribution data. All inputs are taken as-is; nothing here mutates a bin
// or a segment.
package stats

import (
	"math"

	"github.com/nagatsuki/gpadist/pkg/models"
	"gonum.org/v1/gonum/stat"
)

// boundarySlack widens every non-terminal bin's upper bound when locating a
// value, closing the float gap between adjacent bin boundaries. The true top
// bin keeps its exact maximum as a closed boundary.
const boundarySlack = 0.0001

// WeightedAverage computes the count-weighted mean of the bin midpoints:
// Σ(count·midpoint)/Σcount. The second return is false when the counts sum
// to zero, meaning "no data" — callers must render that as a missing value,
// not as zero. Counts and bins are index-aligned; indexes past the shorter
// slice contribute nothing.
func WeightedAverage(counts []int, bins []models.BinRange) (float64, bool) {
	n := len(counts)
	if len(bins) < n {
		n = len(bins)
	}

	mids := make([]float64, n)
	weights := make([]float64, n)
	total := 0
	for i := 0; i < n; i++ {
		mids[i] = bins[i].Midpoint()
		weights[i] = float64(counts[i])
		total += counts[i]
	}
	if total == 0 {
		return 0, false
	}
	return stat.Mean(mids, weights), true
}

// RankInfo is the estimated standing of one individual inside a segment.
// Rank is 1-indexed with 1 = highest value; Percentile is Rank/Total×100.
// Both are real-valued estimates, not integers. Valid is false when the
// segment has no data to rank against.
type RankInfo struct {
	Rank       float64 `json:"rank"`
	Percentile float64 `json:"percentile"`
	Valid      bool    `json:"valid"`
}

// ComputeRankInfo estimates where an individual with the given value ranks
// inside seg, assuming values within each bin are uniformly distributed.
// That assumption is a deliberate approximation; downstream consumers depend
// on this exact estimator.
//
// A non-finite value is replaced by the lowest bin's minimum, then the value
// is clamped into the dataset's overall range. The percentile can exceed 100
// at the very bottom of the range; display layers clamp it.
func ComputeRankInfo(seg *models.SegmentDistribution, bins []models.BinRange, value float64) RankInfo {
	if seg == nil || seg.Total == 0 || len(bins) == 0 {
		return RankInfo{}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = bins[0].Min
	}
	if value < bins[0].Min {
		value = bins[0].Min
	}
	if top := bins[len(bins)-1].Max; value > top {
		value = top
	}

	idx := locateBin(bins, value)

	// Everyone in a higher bin outranks the individual.
	higher := 0.0
	for j := idx + 1; j < len(bins) && j < len(seg.Counts); j++ {
		higher += float64(seg.Counts[j])
	}

	// Within the containing bin, the fraction of occupants above the value
	// under the uniform assumption.
	if idx < len(seg.Counts) && seg.Counts[idx] > 0 {
		bin := bins[idx]
		width := bin.Max - bin.Min
		if width <= 0 {
			width = 1
		}
		frac := (bin.Max - value) / width
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}
		higher += float64(seg.Counts[idx]) * frac
	}

	rank := higher + 1
	return RankInfo{
		Rank:       rank,
		Percentile: rank / float64(seg.Total) * 100,
		Valid:      true,
	}
}

// locateBin finds the first bin containing value, widening every upper bound
// except the last by boundarySlack. Falls back to the last bin when nothing
// matches.
func locateBin(bins []models.BinRange, value float64) int {
	for i, bin := range bins {
		upper := bin.Max
		if i < len(bins)-1 {
			upper += boundarySlack
		}
		if value >= bin.Min && value <= upper {
			return i
		}
	}
	return len(bins) - 1
}
