package loader

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/nagatsuki/gpadist/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCSV = ",0-1,1-2,2-3\nCS 1回生,1,2,3\nCS 2回生,0,1,1\n"

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "sample.csv", sampleCSV)

	ds, err := Load(path, parser.New())
	require.NoError(t, err)
	assert.Len(t, ds.Bins, 3)
	assert.Len(t, ds.Segments, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), parser.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read dataset")
}

func TestLoadMalformedHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "bad.csv", ",0-1,broken\nCS,1,2\n")

	_, err := Load(path, parser.New())
	require.Error(t, err)

	var fe *parser.FormatError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "broken", fe.Label)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	sources := map[string]string{
		"undergrad": writeDataset(t, dir, "u.csv", sampleCSV),
		"graduate":  writeDataset(t, dir, "g.csv", ",0-1\nLaw,5\n"),
	}

	var ticks atomic.Int32
	results, errs := LoadAll(sources, parser.New(), func() { ticks.Add(1) })
	require.Nil(t, errs)
	require.Len(t, results, 2)
	assert.Equal(t, int32(2), ticks.Load())

	// Sorted by name.
	assert.Equal(t, "graduate", results[0].Name)
	assert.Equal(t, "undergrad", results[1].Name)
	assert.Equal(t, 2, len(results[1].Dataset.Segments))
}

func TestLoadAllCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	sources := map[string]string{
		"good": writeDataset(t, dir, "good.csv", sampleCSV),
		"bad":  filepath.Join(dir, "missing.csv"),
	}

	results, errs := LoadAll(sources, parser.New(), nil)
	require.NotNil(t, errs)
	assert.True(t, errs.HasErrors())
	require.Len(t, errs.Errors, 1)
	assert.Equal(t, "bad", errs.Errors[0].Name)

	// The good dataset still loads.
	require.Len(t, results, 1)
	assert.Equal(t, "good", results[0].Name)
}

func TestLoadAllEmpty(t *testing.T) {
	results, errs := LoadAll(nil, parser.New(), nil)
	assert.Nil(t, results)
	assert.Nil(t, errs)
}
