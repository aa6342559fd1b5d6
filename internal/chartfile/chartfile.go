// Package chartfile loads chart documents from TOML or JSON files.
//
// A chart file bundles everything one render needs: where the series comes
// from (a locator or inline data), the visual options, and the requested
// output formats. TOML is the native format for hand-written files; JSON is
// accepted for documents produced by other tools.
//
// Example:
//
//	locator = "https://example.com/revenue.json"
//	formats = ["svg", "png"]
//
//	[chart]
//	type = "bar"
//	theme = "dark"
//	title = "Quarterly Revenue"
package chartfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

// Document is the on-disk description of a chart.
type Document struct {
	// Locator resolves the series through a data loader. Ignored when Data
	// is present.
	Locator string `toml:"locator" json:"locator,omitempty"`

	// Data is an inline series, taking precedence over Locator.
	Data chart.Series `toml:"data" json:"data,omitempty"`

	// Chart holds the visual options.
	Chart chart.Options `toml:"chart" json:"chart"`

	// Formats are the requested outputs. Empty means SVG only.
	Formats []string `toml:"formats" json:"formats,omitempty"`
}

// Load reads a chart document, picking the decoder from the file extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "chart file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read chart file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported chart file extension %q (use .toml or .json)", filepath.Ext(path))
	}
}

// ParseTOML decodes a TOML chart document.
func ParseTOML(data []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "parse TOML chart file")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseJSON decodes a JSON chart document.
func ParseJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "parse JSON chart file")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that the document describes a renderable chart. Inline data
// nested under the chart options is lifted to the document level so both
// spellings work.
func (d *Document) Validate() error {
	if len(d.Data) == 0 && len(d.Chart.Data) > 0 {
		d.Data = d.Chart.Data
		d.Chart.Data = nil
	}
	if d.Locator == "" && len(d.Data) == 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "chart file needs inline data or a locator")
	}
	if _, err := chart.ParseKind(string(d.Chart.GetType())); err != nil {
		return err
	}
	return nil
}
