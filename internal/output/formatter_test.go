package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"text", FormatText},
		{"", FormatText},
		{"bogus", FormatText},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTableMarkdown(t *testing.T) {
	tbl := NewTable("Segments", []string{"Major", "Grade"}, [][]string{
		{"CS", "1"},
		{"CS", "2"},
	}, []string{"Total", "2"}, nil)

	var buf bytes.Buffer
	if err := tbl.renderMarkdown(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"## Segments",
		"| Major | Grade |",
		"| --- | --- |",
		"| CS | 1 |",
		"| Total | 2 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestTableJSONDataFallback(t *testing.T) {
	tbl := NewTable("", []string{"Major", "Total"}, [][]string{{"CS", "8"}}, nil, nil)

	raw, err := json.Marshal(tbl.jsonData())
	if err != nil {
		t.Fatal(err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0]["Major"] != "CS" || rows[0]["Total"] != "8" {
		t.Errorf("unexpected JSON rows: %v", rows)
	}
}

func TestTableJSONDataPayload(t *testing.T) {
	payload := map[string]int{"total": 8}
	tbl := NewTable("", nil, nil, nil, payload)

	got, ok := tbl.jsonData().(map[string]int)
	if !ok || got["total"] != 8 {
		t.Errorf("jsonData() = %v, want the structured payload", tbl.jsonData())
	}
}
