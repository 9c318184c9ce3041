// Package query resolves segments and grouping views over a parsed dataset.
// Lookups are linear scans: datasets run to tens of bins and at most a few
// hundred segments, so no index structure is kept. Every function is a pure
// read of its arguments.
package query

import "github.com/nagatsuki/gpadist/pkg/models"

// FindSegment returns the unique segment matching major and grade exactly
// (case-sensitive on major). The second return is false when no segment
// matches — an expected steady state, not an error.
func FindSegment(segments []models.SegmentDistribution, major string, grade int) (*models.SegmentDistribution, bool) {
	for i := range segments {
		if segments[i].Major == major && segments[i].Grade == grade {
			return &segments[i], true
		}
	}
	return nil, false
}

// MajorSegments returns every segment belonging to the given major, in
// dataset order.
func MajorSegments(ds *models.DistributionDataset, major string) []models.SegmentDistribution {
	var out []models.SegmentDistribution
	for _, seg := range ds.Segments {
		if seg.Major == major {
			out = append(out, seg)
		}
	}
	return out
}

// AggregateMajor combines all segments of one major into a single count
// vector. A major with no segments yields a zero aggregate.
func AggregateMajor(ds *models.DistributionDataset, major string) models.Aggregate {
	return models.Combine(MajorSegments(ds, major), len(ds.Bins))
}

// AggregateAll combines every segment in the dataset.
func AggregateAll(ds *models.DistributionDataset) models.Aggregate {
	return models.Combine(ds.Segments, len(ds.Bins))
}

// Majors returns the distinct majors in dataset (sorted) order.
func Majors(ds *models.DistributionDataset) []string {
	var out []string
	seen := make(map[string]bool)
	for _, seg := range ds.Segments {
		if !seen[seg.Major] {
			seen[seg.Major] = true
			out = append(out, seg.Major)
		}
	}
	return out
}
