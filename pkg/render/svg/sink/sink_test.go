package sink

import (
	"strings"
	"testing"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v", f, got)
		}
	}

	_, err := ParseFormat("gif")
	if err == nil {
		t.Fatal("ParseFormat(gif) succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestRenderSVG(t *testing.T) {
	data := chart.Series{{Label: "Jan", Value: 12}, {Label: "Feb", Value: 9}}
	out, err := RenderSVG(data, chart.Options{Type: chart.KindBar})
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.HasPrefix(string(out), "<svg ") {
		t.Error("output is not an SVG document")
	}
}

func TestRenderPropagatesChartErrors(t *testing.T) {
	_, err := Render(nil, chart.Options{Type: chart.KindBar}, FormatSVG)
	if err == nil {
		t.Fatal("render of empty series succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeEmptySeries) {
		t.Errorf("error code = %v, want EMPTY_SERIES", errors.GetCode(err))
	}
}
