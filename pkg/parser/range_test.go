package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		label   string
		wantMin float64
		wantMax float64
	}{
		{"3.0-3.5", 3.0, 3.5},
		{"0-1", 0, 1},
		{"0.5-1", 0.5, 1},
		{"2-2.75", 2, 2.75},
		{"3.5-4.0点", 3.5, 4.0},
		{"10-20 pts", 10, 20},
		{"0.0-0.0", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			bin, err := ParseRange(tt.label)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.label, err)
			}
			if bin.Min != tt.wantMin || bin.Max != tt.wantMax {
				t.Errorf("ParseRange(%q) = [%v, %v], want [%v, %v]",
					tt.label, bin.Min, bin.Max, tt.wantMin, tt.wantMax)
			}
			if bin.Label != tt.label {
				t.Errorf("ParseRange(%q) label = %q, want original", tt.label, bin.Label)
			}
		})
	}
}

func TestParseRangeInvalid(t *testing.T) {
	labels := []string{
		"",
		"3.0",
		"3.0-",
		"-3.5",
		"a-b",
		"GPA",
		"x3.0-3.5",
		".5-1",
	}
	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			_, err := ParseRange(label)
			if err == nil {
				t.Fatalf("ParseRange(%q) should fail", label)
			}

			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("ParseRange(%q) error type = %T, want *FormatError", label, err)
			}
			if !strings.Contains(err.Error(), label) && label != "" {
				t.Errorf("error %q should mention the offending label %q", err, label)
			}
		})
	}
}
