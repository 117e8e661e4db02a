package figfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlDoc = `
width: 640
height: 480
theme: dark
axes:
  - xlim: [0, 10]
    nodes:
      - kind: line
        x: [0, 5, 10]
        y: [0, 1, 0]
        width: 2
      - kind: scatter
        x: [1, 2]
        y: [3, 4]
        marker: s
`

const jsonDoc = `{
  "width": 640,
  "height": 480,
  "axes": [
    {"rect": [0.1, 0.1, 0.8, 0.8], "nodes": [{"kind": "bar", "x": [1, 2], "heights": [3, 4], "color": "#336699"}]}
  ]
}`

func TestDecodeYAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(yamlDoc), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Width != 640 || doc.Theme != "dark" {
		t.Errorf("doc = %+v", doc)
	}
	if len(doc.Axes) != 1 || len(doc.Axes[0].Nodes) != 2 {
		t.Fatalf("axes/nodes = %+v", doc.Axes)
	}
	if *doc.Axes[0].XLim != [2]float64{0, 10} {
		t.Errorf("xlim = %v", *doc.Axes[0].XLim)
	}
	if doc.Axes[0].YLim != nil {
		t.Error("omitted ylim should stay nil")
	}

	fig, err := doc.Figure()
	if err != nil {
		t.Fatalf("Figure() error = %v", err)
	}
	if fig.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", fig.NodeCount())
	}
}

func TestDecodeJSON(t *testing.T) {
	doc, err := Decode(strings.NewReader(jsonDoc), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Axes[0].Rect == nil || doc.Axes[0].Rect[2] != 0.8 {
		t.Errorf("rect = %v", doc.Axes[0].Rect)
	}
	if got := doc.Axes[0].Nodes[0].Heights; len(got) != 2 || got[1] != 4 {
		t.Errorf("heights = %v", got)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"axes": [], "colour": "#fff"}`), FormatJSON); err == nil {
		t.Error("JSON with unknown field should fail")
	}
	if _, err := Decode(strings.NewReader("axes: []\ncolour: red\n"), FormatYAML); err == nil {
		t.Error("YAML with unknown field should fail")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader("{"), FormatJSON); err == nil {
		t.Error("truncated JSON should fail")
	}
	if _, err := Decode(strings.NewReader(""), FormatYAML); !errors.Is(err, ErrNoAxes) {
		t.Errorf("empty YAML error = %v, want ErrNoAxes", err)
	}
	if _, err := Decode(strings.NewReader(""), Format(9)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("bad format error = %v, want ErrUnknownFormat", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	orig, err := Decode(strings.NewReader(yamlDoc), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, orig, f); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := Decode(&buf, f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Width != orig.Width || got.Axes[0].Nodes[1].Marker != "s" {
				t.Errorf("re-decoded = %+v", got)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"dir/B.YAML", FormatYAML, false},
		{"c.yml", FormatYAML, false},
		{"d.toml", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadFigure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	fig, err := LoadFigure(path)
	if err != nil {
		t.Fatalf("LoadFigure() error = %v", err)
	}
	if fig.Size.Width != 640 {
		t.Errorf("Width = %d, want 640", fig.Size.Width)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
	if _, err := Load(filepath.Join(dir, "plot.txt")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(.txt) error = %v, want ErrUnknownFormat", err)
	}
}
