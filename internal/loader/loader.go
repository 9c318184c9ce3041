// Package loader reads distribution tables from disk. It is the data-loading
// collaborator in front of the pure parsing core: the core itself never does
// I/O.
package loader

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/nagatsuki/gpadist/pkg/models"
	"github.com/nagatsuki/gpadist/pkg/parser"
	"github.com/sourcegraph/conc/pool"
)

// LoadError reports a single dataset that failed to load.
type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Name, e.Path, e.Err)
}

func (e LoadError) Unwrap() error {
	return e.Err
}

// LoadErrors collects failures across a multi-dataset load.
type LoadErrors struct {
	Errors []LoadError
	mu     sync.Mutex
}

// Add appends an error to the collection (thread-safe).
func (e *LoadErrors) Add(name, path string, err error) {
	e.mu.Lock()
	e.Errors = append(e.Errors, LoadError{Name: name, Path: path, Err: err})
	e.mu.Unlock()
}

// HasErrors returns true if any errors were collected.
func (e *LoadErrors) HasErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.Errors) > 0
}

// Error implements the error interface.
func (e *LoadErrors) Error() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("%d datasets failed to load (first: %v)", len(e.Errors), e.Errors[0])
	}
}

// Load reads and parses one dataset file.
func Load(path string, p *parser.Parser) (*models.DistributionDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	ds, err := p.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Result pairs a loaded dataset with the source it came from.
type Result struct {
	Name    string
	Path    string
	Dataset *models.DistributionDataset
}

// ProgressFunc is called after each dataset finishes loading.
type ProgressFunc func()

// LoadAll loads the named datasets in parallel and returns the successful
// ones sorted by name. Failures are collected per dataset rather than
// aborting the batch; the second return is nil when everything loaded.
func LoadAll(sources map[string]string, p *parser.Parser, onProgress ProgressFunc) ([]Result, *LoadErrors) {
	if len(sources) == 0 {
		return nil, nil
	}

	results := make([]Result, 0, len(sources))
	errs := &LoadErrors{}
	var mu sync.Mutex

	wp := pool.New().WithMaxGoroutines(runtime.NumCPU())
	for name, path := range sources {
		wp.Go(func() {
			ds, err := Load(path, p)

			if onProgress != nil {
				onProgress()
			}
			if err != nil {
				errs.Add(name, path, err)
				return
			}

			mu.Lock()
			results = append(results, Result{Name: name, Path: path, Dataset: ds})
			mu.Unlock()
		})
	}
	wp.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	if !errs.HasErrors() {
		return results, nil
	}
	return results, errs
}
