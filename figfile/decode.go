package figfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/OliverKKY/pltrs"
)

// Format is a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned for unsupported encodings and file extensions.
var ErrUnknownFormat = errors.New("figfile: unknown format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("figfile: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoAxes
			}
			return nil, fmt.Errorf("figfile: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return &doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("figfile: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("figfile: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("figfile: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return nil
}

// Load reads the document at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("figfile: %w", err)
	}
	defer file.Close()
	return Decode(file, f)
}

// LoadFigure loads the document at path and builds its figure.
func LoadFigure(path string) (*pltrs.Figure, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Figure()
}
