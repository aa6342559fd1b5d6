package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/chartwright/chartwright/pkg/cache"
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

type stubLoader struct {
	calls  int
	series chart.Series
	err    error
}

func (l *stubLoader) Load(ctx context.Context, locator string) (chart.Series, error) {
	l.calls++
	return l.series, l.err
}

func testSeries() chart.Series {
	return chart.Series{{Label: "Jan", Value: 12}, {Label: "Feb", Value: 9}}
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		wantCode errors.Code
	}{
		{
			name:     "needs data or locator",
			req:      Request{},
			wantCode: errors.ErrCodeInvalidOptions,
		},
		{
			name:     "rejects unknown kind",
			req:      Request{Data: testSeries(), Options: chart.Options{Type: "sparkline"}},
			wantCode: errors.ErrCodeInvalidKind,
		},
		{
			name:     "rejects unknown format",
			req:      Request{Data: testSeries(), Formats: []string{"gif"}},
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name: "valid request",
			req:  Request{Data: testSeries()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ValidateAndSetDefaults()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("validation failed: %v", err)
				}
				if len(tt.req.Formats) != 1 || tt.req.Formats[0] != "svg" {
					t.Errorf("Formats = %v, want svg default", tt.req.Formats)
				}
				if tt.req.Scale != DefaultScale {
					t.Errorf("Scale = %v, want %v", tt.req.Scale, DefaultScale)
				}
				return
			}
			if err == nil {
				t.Fatal("validation succeeded, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestExecuteInlineData(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Request{
		Data:    testSeries(),
		Options: chart.Options{Type: chart.KindBar},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	svg, ok := result.Artifacts["svg"]
	if !ok {
		t.Fatal("result missing svg artifact")
	}
	if !strings.HasPrefix(string(svg), "<svg ") {
		t.Error("artifact is not an SVG document")
	}
	if result.Stats.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", result.Stats.EntryCount)
	}
	if result.SeriesHash == "" {
		t.Error("result missing series hash")
	}
}

func TestExecuteLoadsFromLocator(t *testing.T) {
	loader := &stubLoader{series: testSeries()}
	runner := NewRunner(nil, nil, loader, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Request{
		Locator: "https://example.com/data",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if loader.calls != 1 {
		t.Errorf("loader called %d times, want 1", loader.calls)
	}
	if len(result.Data) != 2 {
		t.Errorf("Data has %d entries, want 2", len(result.Data))
	}
}

func TestExecuteSeriesCache(t *testing.T) {
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	loader := &stubLoader{series: testSeries()}
	runner := NewRunner(fileCache, nil, loader, nil)
	defer runner.Close()

	ctx := context.Background()
	req := Request{Locator: "https://example.com/data"}

	first, err := runner.Execute(ctx, req)
	if err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	if first.CacheInfo.LoadHit {
		t.Error("first run reported a load cache hit")
	}

	second, err := runner.Execute(ctx, req)
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if !second.CacheInfo.LoadHit {
		t.Error("second run missed the series cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run missed the artifact cache")
	}
	if loader.calls != 1 {
		t.Errorf("loader called %d times, want 1", loader.calls)
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	loader := &stubLoader{series: testSeries()}
	runner := NewRunner(fileCache, nil, loader, nil)
	defer runner.Close()

	ctx := context.Background()
	if _, err := runner.Execute(ctx, Request{Locator: "https://example.com/data"}); err != nil {
		t.Fatal(err)
	}
	if _, err := runner.Execute(ctx, Request{Locator: "https://example.com/data", Refresh: true}); err != nil {
		t.Fatal(err)
	}
	if loader.calls != 2 {
		t.Errorf("loader called %d times, want 2 (refresh bypasses cache)", loader.calls)
	}
}

func TestExecuteLoaderErrorSurfaces(t *testing.T) {
	loader := &stubLoader{err: errors.New(errors.ErrCodeNetwork, "connection refused")}
	runner := NewRunner(nil, nil, loader, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Request{Locator: "https://example.com/data"})
	if err == nil {
		t.Fatal("Execute swallowed the loader error")
	}
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("error code = %v, want NETWORK_ERROR", errors.GetCode(err))
	}
}

func TestExecuteNoLoaderForLocator(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Request{Locator: "https://example.com/data"})
	if err == nil {
		t.Fatal("Execute without loader succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidLocator) {
		t.Errorf("error code = %v, want INVALID_LOCATOR", errors.GetCode(err))
	}
}

func TestArtifactKeyVariesWithOptions(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil)
	defer runner.Close()

	base := Request{Options: chart.Options{Type: chart.KindBar, Theme: "lite"}, Scale: 2}
	other := Request{Options: chart.Options{Type: chart.KindBar, Theme: "dark"}, Scale: 2}

	if runner.artifactKey("abc", "svg", base) == runner.artifactKey("abc", "svg", other) {
		t.Error("different themes produced the same artifact key")
	}
	if runner.artifactKey("abc", "svg", base) != runner.artifactKey("abc", "svg", base) {
		t.Error("identical requests produced different artifact keys")
	}
}
