// Package models defines the frequency-distribution data model shared by the
// parser, aggregator, statistics engine, and query façade.
package models

// BinRange is one numeric sub-range of a distribution table, identified by a
// display label such as "3.0-3.5". Bins are ordered as they appear in the
// table header; that order is ascending and semantically meaningful.
// Immutable once parsed.
type BinRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Midpoint returns the center of the range, used as the representative value
// of every individual counted in this bin.
func (b BinRange) Midpoint() float64 {
	return (b.Min + b.Max) / 2
}

// SegmentDistribution is one categorical row of a distribution table: a
// major/grade combination with a count per bin. Counts is always
// index-aligned with the dataset's bins; missing or malformed cells are
// coerced to 0, never dropped. Grade 0 is the sentinel for a row with no
// grade suffix (an ungraded or aggregate row).
type SegmentDistribution struct {
	Major  string `json:"major"`
	Grade  int    `json:"grade"`
	Label  string `json:"label"`
	Counts []int  `json:"counts"`
	Total  int    `json:"total"`
}

// DistributionDataset is one fully parsed table: ordered bins plus all
// segment rows, sorted by (major, grade).
type DistributionDataset struct {
	Bins     []BinRange            `json:"bins"`
	Segments []SegmentDistribution `json:"segments"`
}

// Empty reports whether the dataset holds no bins and no segments, the
// normal result of parsing blank or header-only input.
func (d *DistributionDataset) Empty() bool {
	return len(d.Bins) == 0 && len(d.Segments) == 0
}

// Aggregate is the elementwise sum of counts and totals over a subset of
// segments. It is derived on demand and never stored.
type Aggregate struct {
	Counts []int `json:"counts"`
	Total  int   `json:"total"`
}

// Combine sums the given segments into a single aggregate with a length
// binCount count vector. The reduction is commutative and associative, so
// combining the same set in any order or grouping yields the same result.
// An empty input yields all-zero counts and a zero total.
func Combine(segments []SegmentDistribution, binCount int) Aggregate {
	agg := Aggregate{Counts: make([]int, binCount)}
	for _, seg := range segments {
		for i, c := range seg.Counts {
			if i >= binCount {
				break
			}
			agg.Counts[i] += c
		}
		agg.Total += seg.Total
	}
	return agg
}
