package chartfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

const tomlDoc = `
locator = "https://example.com/revenue.json"
formats = ["svg", "png"]

[chart]
type = "bar"
theme = "dark"
title = "Quarterly Revenue"
`

const tomlInlineDoc = `
[chart]
type = "pie"

[[data]]
label = "Q1"
value = 120

[[data]]
label = "Q2"
value = 95.5
`

func TestParseTOML(t *testing.T) {
	doc, err := ParseTOML([]byte(tomlDoc))
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	if doc.Locator != "https://example.com/revenue.json" {
		t.Errorf("Locator = %q", doc.Locator)
	}
	if doc.Chart.Type != chart.KindBar {
		t.Errorf("Type = %q, want bar", doc.Chart.Type)
	}
	if doc.Chart.Theme != "dark" || doc.Chart.Title != "Quarterly Revenue" {
		t.Errorf("chart options not decoded: %+v", doc.Chart)
	}
	if len(doc.Formats) != 2 {
		t.Errorf("Formats = %v, want two entries", doc.Formats)
	}
}

func TestParseTOMLInlineData(t *testing.T) {
	doc, err := ParseTOML([]byte(tomlInlineDoc))
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	if len(doc.Data) != 2 {
		t.Fatalf("Data has %d entries, want 2", len(doc.Data))
	}
	if doc.Data[0].Label != "Q1" || doc.Data[0].Value != 120 {
		t.Errorf("first entry = %+v", doc.Data[0])
	}
	if doc.Data[1].Value != 95.5 {
		t.Errorf("second entry value = %v, want 95.5", doc.Data[1].Value)
	}
}

func TestParseJSON(t *testing.T) {
	raw := `{
		"data": [8, {"label": "Feb", "value": 12}],
		"chart": {"type": "line", "showLegend": true}
	}`
	doc, err := ParseJSON([]byte(raw))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(doc.Data) != 2 {
		t.Fatalf("Data has %d entries, want 2", len(doc.Data))
	}
	if doc.Data[0].Value != 8 {
		t.Errorf("bare number entry = %+v", doc.Data[0])
	}
	if doc.Chart.Type != chart.KindLine {
		t.Errorf("Type = %q, want line", doc.Chart.Type)
	}
}

func TestValidateLiftsNestedData(t *testing.T) {
	raw := `{"chart": {"type": "bar", "data": [{"label": "Jan", "value": 3}]}}`
	doc, err := ParseJSON([]byte(raw))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(doc.Data) != 1 {
		t.Errorf("nested data not lifted: %+v", doc)
	}
	if doc.Chart.Data != nil {
		t.Error("nested data should be cleared after lifting")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCode errors.Code
	}{
		{
			name:     "missing data and locator",
			raw:      `{"chart": {"type": "bar"}}`,
			wantCode: errors.ErrCodeInvalidOptions,
		},
		{
			name:     "unknown chart type",
			raw:      `{"locator": "file://x.json", "chart": {"type": "sparkline"}}`,
			wantCode: errors.ErrCodeInvalidKind,
		},
		{
			name:     "malformed document",
			raw:      `{"chart": `,
			wantCode: errors.ErrCodeDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.raw))
			if err == nil {
				t.Fatal("ParseJSON succeeded, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", tomlPath, err)
	}
	if doc.Chart.Type != chart.KindBar {
		t.Errorf("Type = %q, want bar", doc.Chart.Type)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	yamlPath := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(yamlPath, []byte("x: 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yamlPath); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("yaml error = %v, want INVALID_FORMAT", err)
	}
}
