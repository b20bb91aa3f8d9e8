// Package pattern defines the read-only bundle handed to the export
// pipeline. The pattern library that produces these lives elsewhere; the
// core only consumes them.
package pattern

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"sashiko-tools/pkg/svg"
)

// Tile is the editable unit of a pattern: the SVG source string plus its
// coordinate frame. The serialized string is the canonical state.
type Tile struct {
	SVG     string `json:"svg"`
	ViewBox string `json:"viewBox"`
}

// Defaults seed the export and snapping options for a pattern.
type Defaults struct {
	StitchLengthMM float64 `json:"stitchLengthMm"`
	GapLengthMM    float64 `json:"gapLengthMm"`
	StrokeWidthMM  float64 `json:"strokeWidthMm"`
	SnapGridMM     float64 `json:"snapGridMm"`
}

// Pattern is one library entry.
type Pattern struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Author   string   `json:"author,omitempty"`
	License  string   `json:"license,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Tile     Tile     `json:"tile"`
	Defaults Defaults `json:"defaults"`
}

// ViewBox parses the tile's coordinate frame.
func (p Pattern) ViewBox() (svg.ViewBox, error) {
	vb, ok := svg.ParseViewBox(p.Tile.ViewBox)
	if !ok {
		return svg.ViewBox{}, fmt.Errorf("pattern %q: invalid viewBox %q", p.Name, p.Tile.ViewBox)
	}
	return vb, nil
}

// Validate checks that the bundle is usable: a parseable viewBox and a tile
// that passes the SVG dialect allow-list.
func (p Pattern) Validate() error {
	if p.Tile.SVG == "" {
		return fmt.Errorf("pattern %q: empty tile", p.Name)
	}
	if _, err := p.ViewBox(); err != nil {
		return err
	}
	if err := svg.Validate(p.Tile.SVG); err != nil {
		return fmt.Errorf("pattern %q: %w", p.Name, err)
	}
	return nil
}

// Load decodes a pattern bundle from JSON.
func Load(r io.Reader) (Pattern, error) {
	var p Pattern
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return Pattern{}, fmt.Errorf("pattern: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

// LoadFile reads a pattern bundle from a JSON file.
func LoadFile(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, err
	}
	defer f.Close()
	return Load(f)
}

// FromSVG wraps a bare tile SVG as an unnamed pattern, taking the viewBox
// from the document itself. Used when the input is a plain .svg file rather
// than a library bundle.
func FromSVG(name, svgText string) (Pattern, error) {
	doc, err := svg.Parse(svgText)
	if err != nil {
		return Pattern{}, err
	}
	if doc.ViewBox == nil {
		return Pattern{}, fmt.Errorf("pattern %q: tile has no viewBox", name)
	}
	return Pattern{
		Name: name,
		Tile: Tile{SVG: svgText, ViewBox: doc.ViewBox.String()},
		Defaults: Defaults{
			StitchLengthMM: 3,
			GapLengthMM:    2,
			StrokeWidthMM:  0.6,
			SnapGridMM:     5,
		},
	}, nil
}
