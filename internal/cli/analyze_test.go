package cli

import (
	"reflect"
	"testing"
)

func TestRenderFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		want    []string
	}{
		{"nil", nil, nil},
		{"json only", []string{"json"}, nil},
		{"mixed", []string{"json", "svg", "dot"}, []string{"svg", "dot"}},
		{"render only", []string{"png"}, []string{"png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderFormats(tt.formats)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("renderFormats(%v) = %v, want %v", tt.formats, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		input       string
		output      string
		formatCount int
		want        string
	}{
		{"single json defaults to stdout", "json", "graph.json", "", 1, ""},
		{"single explicit stdout", "svg", "graph.json", "-", 1, ""},
		{"single with output file", "svg", "graph.json", "out.svg", 1, "out.svg"},
		{"single svg derives from input", "svg", "graph.json", "", 1, "graph.svg"},
		{"multiple derive from input", "dot", "deps/graph.json", "", 2, "deps/graph.dot"},
		{"multiple with base path", "svg", "graph.json", "result", 2, "result.svg"},
		{"multiple strips format ext from base", "png", "graph.json", "result.svg", 2, "result.png"},
		{"multiple json gets report suffix", "json", "graph.json", "", 2, "graph.report.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.format, tt.input, tt.output, tt.formatCount)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q, %q, %d) = %q, want %q",
					tt.format, tt.input, tt.output, tt.formatCount, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"from input", "", "graph.json", "graph"},
		{"keeps unknown ext", "report.out", "graph.json", "report.out"},
		{"strips format ext", "report.svg", "graph.json", "report"},
		{"strips json ext", "report.json", "graph.json", "report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	if got := suffix("json"); got != ".report.json" {
		t.Errorf("suffix(json) = %q, want .report.json", got)
	}
	if got := suffix("svg"); got != ".svg" {
		t.Errorf("suffix(svg) = %q, want .svg", got)
	}
}
