package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nagatsuki/gpadist/pkg/models"
)

// Format serializes a dataset back to the delimited text format that Parse
// consumes. Re-parsing the result yields an equal dataset. Labels containing
// commas would break the format; Parse never produces them.
func (p *Parser) Format(ds *models.DistributionDataset) string {
	var b strings.Builder

	b.WriteString("segment")
	for _, bin := range ds.Bins {
		b.WriteByte(',')
		b.WriteString(bin.Label)
	}
	b.WriteByte('\n')

	for _, seg := range ds.Segments {
		b.WriteString(p.rowLabel(seg))
		for _, c := range seg.Counts {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// rowLabel returns the original row label when the segment carries one,
// otherwise rebuilds it from major and grade.
func (p *Parser) rowLabel(seg models.SegmentDistribution) string {
	if seg.Label != "" {
		return seg.Label
	}
	if seg.Grade == 0 {
		return seg.Major
	}
	return fmt.Sprintf("%s %d%s", seg.Major, seg.Grade, p.gradeSuffix)
}

// Format serializes a dataset with a default parser.
func Format(ds *models.DistributionDataset) string {
	return New().Format(ds)
}
