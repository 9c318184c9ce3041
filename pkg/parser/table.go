// Package parser turns delimited grade-distribution tables into datasets.
//
// The input format is plain UTF-8 text: one header row naming the bins,
// then one row per segment. Columns are separated by a single comma with no
// quoting or escaping, so commas inside labels or cells are not supported —
// a hard constraint on source data, not a recoverable condition.
package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nagatsuki/gpadist/pkg/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultGradeSuffix is the marker that closes a "<major> <N>回生" row label.
const DefaultGradeSuffix = "回生"

// Options configures a Parser.
type Options struct {
	// GradeSuffix is the fixed token that, preceded by an integer, marks the
	// grade portion of a row label. Empty means DefaultGradeSuffix.
	GradeSuffix string
}

// Parser parses distribution tables. It holds no mutable state, so a single
// instance may be shared across goroutines.
type Parser struct {
	gradeSuffix string
	gradeRe     *regexp.Regexp
}

// New creates a parser with the default grade suffix.
func New() *Parser {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a parser with the given options.
func NewWithOptions(opts Options) *Parser {
	suffix := opts.GradeSuffix
	if suffix == "" {
		suffix = DefaultGradeSuffix
	}
	return &Parser{
		gradeSuffix: suffix,
		gradeRe:     regexp.MustCompile(`^(.*?)\s*([0-9]+)` + regexp.QuoteMeta(suffix) + `$`),
	}
}

// Parse converts raw delimited text into a dataset. Blank input or a lone
// header row yields an empty dataset, not an error; the only failure mode is
// a *FormatError from a malformed bin label, which aborts the whole parse.
func (p *Parser) Parse(raw string) (*models.DistributionDataset, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= 1 {
		return &models.DistributionDataset{}, nil
	}

	bins, err := p.parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	var segments []models.SegmentDistribution
	for _, line := range lines[1:] {
		seg, ok := p.parseRow(line, len(bins))
		if !ok {
			continue
		}
		segments = append(segments, seg)
	}

	sortSegments(segments)

	return &models.DistributionDataset{Bins: bins, Segments: segments}, nil
}

// parseHeader reads the header row. The first cell is the row-label column
// heading and is ignored; empty trailing cells are dropped.
func (p *Parser) parseHeader(line string) ([]models.BinRange, error) {
	cells := strings.Split(line, ",")[1:]
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}

	bins := make([]models.BinRange, 0, len(cells))
	for _, label := range cells {
		bin, err := ParseRange(label)
		if err != nil {
			return nil, err
		}
		bins = append(bins, bin)
	}
	return bins, nil
}

// parseRow reads one data row. Rows with an empty label are skipped. Count
// cells that are missing, empty, or non-numeric become 0, so the counts
// vector is always index-aligned with the bins.
func (p *Parser) parseRow(line string, binCount int) (models.SegmentDistribution, bool) {
	cells := strings.Split(line, ",")
	label := strings.TrimSpace(cells[0])
	if label == "" {
		return models.SegmentDistribution{}, false
	}

	major, grade := p.splitLabel(label)

	seg := models.SegmentDistribution{
		Major:  major,
		Grade:  grade,
		Label:  label,
		Counts: make([]int, binCount),
	}
	for i := 0; i < binCount; i++ {
		if i+1 >= len(cells) {
			break
		}
		n, err := strconv.Atoi(strings.TrimSpace(cells[i+1]))
		if err != nil {
			continue
		}
		seg.Counts[i] = n
	}
	for _, c := range seg.Counts {
		seg.Total += c
	}
	return seg, true
}

// splitLabel decomposes a row label into major and grade. A label ending in
// "<integer><suffix>" yields that integer and the label with the match and
// surrounding whitespace stripped; anything else is an ungraded row (grade 0).
func (p *Parser) splitLabel(label string) (string, int) {
	m := p.gradeRe.FindStringSubmatch(label)
	if m == nil {
		return label, 0
	}
	grade, _ := strconv.Atoi(m[2])
	return strings.TrimSpace(m[1]), grade
}

// sortSegments orders segments by locale-collated major, then numeric grade.
// The sort is stable so equal keys keep their table order.
func sortSegments(segments []models.SegmentDistribution) {
	col := collate.New(language.Japanese)
	sort.SliceStable(segments, func(i, j int) bool {
		if c := col.CompareString(segments[i].Major, segments[j].Major); c != 0 {
			return c < 0
		}
		return segments[i].Grade < segments[j].Grade
	})
}

// Parse parses raw text with a default parser.
func Parse(raw string) (*models.DistributionDataset, error) {
	return New().Parse(raw)
}
