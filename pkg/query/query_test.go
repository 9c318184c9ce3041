package query

import (
	"testing"

	"github.com/nagatsuki/gpadist/pkg/models"
	"github.com/nagatsuki/gpadist/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T) *models.DistributionDataset {
	t.Helper()
	raw := ",0-1,1-2,2-3\n" +
		"CS 1回生,1,2,3\n" +
		"CS 2回生,0,1,1\n" +
		"Math 1回生,4,0,2\n"
	ds, err := parser.Parse(raw)
	require.NoError(t, err)
	return ds
}

func TestFindSegment(t *testing.T) {
	ds := testDataset(t)

	seg, ok := FindSegment(ds.Segments, "CS", 2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 1}, seg.Counts)
	assert.Equal(t, 2, seg.Total)

	_, ok = FindSegment(ds.Segments, "CS", 3)
	assert.False(t, ok, "no partial match on grade")

	_, ok = FindSegment(ds.Segments, "cs", 1)
	assert.False(t, ok, "major match is case-sensitive")

	_, ok = FindSegment(nil, "CS", 1)
	assert.False(t, ok)
}

func TestMajorSegments(t *testing.T) {
	ds := testDataset(t)

	cs := MajorSegments(ds, "CS")
	require.Len(t, cs, 2)
	assert.Equal(t, 1, cs[0].Grade)
	assert.Equal(t, 2, cs[1].Grade)

	assert.Empty(t, MajorSegments(ds, "Law"))
}

func TestAggregateMajor(t *testing.T) {
	ds := testDataset(t)

	agg := AggregateMajor(ds, "CS")
	assert.Equal(t, []int{1, 3, 4}, agg.Counts)
	assert.Equal(t, 8, agg.Total)

	empty := AggregateMajor(ds, "Law")
	assert.Equal(t, []int{0, 0, 0}, empty.Counts)
	assert.Zero(t, empty.Total)
}

func TestAggregateAll(t *testing.T) {
	ds := testDataset(t)

	agg := AggregateAll(ds)
	assert.Equal(t, []int{5, 3, 6}, agg.Counts)
	assert.Equal(t, 14, agg.Total)
}

func TestMajors(t *testing.T) {
	ds := testDataset(t)
	assert.Equal(t, []string{"CS", "Math"}, Majors(ds))

	assert.Empty(t, Majors(&models.DistributionDataset{}))
}
