package cli

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chartwright/chartwright/pkg/chart"
)

func TestGalleryKindsAllRenderable(t *testing.T) {
	kinds := galleryKinds()
	if len(kinds) == 0 {
		t.Fatal("galleryKinds returned nothing")
	}
	for _, k := range kinds {
		if !k.Supported() {
			t.Errorf("gallery lists unsupported kind %q", k)
		}
	}
}

func TestSampleSeriesShapes(t *testing.T) {
	if s := sampleSeries(chart.KindGauge); len(s) != 1 || s[0].Max != 100 {
		t.Errorf("gauge sample = %+v", s)
	}
	if s := sampleSeries(chart.KindHeatmap); len(s[0].Values) == 0 {
		t.Error("heatmap sample has no cell values")
	}
	hasNegative := false
	for _, e := range sampleSeries(chart.KindWaterfall) {
		if e.Value < 0 {
			hasNegative = true
		}
	}
	if !hasNegative {
		t.Error("waterfall sample has no falling deltas")
	}
	if s := sampleSeries(chart.KindBar); len(s) < 3 {
		t.Errorf("bar sample too small: %d entries", len(s))
	}
}

func TestRenderSampleWritesFiles(t *testing.T) {
	dir := t.TempDir()
	opts := &galleryOpts{output: dir}

	for _, k := range galleryKinds() {
		if err := renderSample(k, opts); err != nil {
			t.Fatalf("renderSample(%s) failed: %v", k, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(galleryKinds()) {
		t.Errorf("wrote %d files, want %d", len(entries), len(galleryKinds()))
	}
	if _, err := os.Stat(filepath.Join(dir, "bar.svg")); err != nil {
		t.Errorf("missing bar.svg: %v", err)
	}
}

func TestGalleryModelNavigation(t *testing.T) {
	m := newGalleryModel(galleryKinds())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(galleryModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(galleryModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(galleryModel)
	if m.cursor != 0 {
		t.Error("cursor moved above the first entry")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(galleryModel)
	if m.selected != chart.KindBar {
		t.Errorf("selected = %q, want bar", m.selected)
	}
}
