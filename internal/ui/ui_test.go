package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type row struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

var rowCols = []Column[row]{
	{Title: "Name", Value: func(r row) string { return r.Name }},
	{Title: "Size", Value: func(r row) string { return strings.Repeat("#", r.Size) }},
}

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Printer{out: &buf, width: 80}, &buf
}

func TestHeaderKeepsParamOrder(t *testing.T) {
	h := NewHeader("Radarr downloads", "servdash radarr list downloads",
		Param{Key: "Server", Value: "main"},
		Param{Key: "Output", Value: "table"},
	).SetWidth(80)

	got := h.Render()

	if !strings.Contains(got, "RADARR DOWNLOADS") {
		t.Errorf("Render() missing upper-cased title:\n%s", got)
	}
	server, output := strings.Index(got, "Server:"), strings.Index(got, "Output:")
	if server < 0 || output < 0 || server > output {
		t.Errorf("params out of order: Server at %d, Output at %d", server, output)
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Download deleted", Param{Key: "ID", Value: "7"}),
			want:   []string{"SUCCESS", "Download deleted", "ID:", "7"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Delete failed", errors.New("404 Not Found"), []string{"Check the ID"}),
			want:   []string{"FAILED", "404 Not Found", "Troubleshooting:", "Check the ID"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Nothing deleted"),
			want:   []string{"WARNING", "Nothing deleted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.SetWidth(80).Render()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() missing %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"yes", true},
		{"y\n", false},
		{"no\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Delete download", []string{"This cannot be undone"})
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "This cannot be undone") {
				t.Error("Confirm() should print the warnings")
			}
		})
	}
}

func TestPrintTable(t *testing.T) {
	p, buf := newTestPrinter()

	PrintTable(p, []row{{"alpha", 2}, {"beta", 3}}, rowCols)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "NAME") || !strings.Contains(lines[0], "SIZE") {
		t.Errorf("header = %q, want NAME and SIZE", lines[0])
	}
	if !strings.Contains(lines[2], "beta") || !strings.Contains(lines[2], "###") {
		t.Errorf("last row = %q", lines[2])
	}
}

func TestPrintTableEmpty(t *testing.T) {
	p, buf := newTestPrinter()

	PrintTable(p, []row{}, rowCols)

	if !strings.Contains(buf.String(), "Nothing to show") {
		t.Errorf("output = %q, want Nothing to show", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	p, buf := newTestPrinter()

	if err := Print(p, FormatJSON, []row{{"alpha", 2}}, rowCols); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	var got []row
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || got[0].Name != "alpha" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestPrintJSONNilIsEmptyArray(t *testing.T) {
	p, buf := newTestPrinter()

	if err := Print[row](p, FormatJSON, nil, rowCols); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("output = %q, want []", got)
	}
}

func TestPrintUnknownFormat(t *testing.T) {
	p, _ := newTestPrinter()

	if err := Print(p, "yaml", []row{}, rowCols); err == nil {
		t.Error("Print() should reject unknown formats")
	}
}
