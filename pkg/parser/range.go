package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/nagatsuki/gpadist/pkg/models"
)

// FormatError reports a bin label that does not match the numeric-range
// grammar. It is fatal to the table parse that encountered it: a malformed
// header invalidates the whole bin structure, so no partial dataset is
// produced.
type FormatError struct {
	Label string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed range label %q", e.Label)
}

// rangePattern matches "<number>-<number>" with an optional trailing
// non-digit suffix (e.g. a unit). Numbers may be integers or decimals.
var rangePattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)-([0-9]+(?:\.[0-9]+)?)(?:[^0-9].*)?$`)

// ParseRange parses a bin label such as "3.0-3.5" into a BinRange. The label
// is kept verbatim; only the two numbers are extracted. A label that does not
// match the grammar yields a *FormatError.
func ParseRange(label string) (models.BinRange, error) {
	m := rangePattern.FindStringSubmatch(label)
	if m == nil {
		return models.BinRange{}, &FormatError{Label: label}
	}

	// The pattern guarantees both captures parse.
	min, _ := strconv.ParseFloat(m[1], 64)
	max, _ := strconv.ParseFloat(m[2], 64)

	return models.BinRange{Label: label, Min: min, Max: max}, nil
}
