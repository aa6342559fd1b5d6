package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, nil, logger)
	ts := httptest.NewServer(New(runner, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func createChart(t *testing.T, ts *httptest.Server, body any) string {
	t.Helper()
	resp := postJSON(t, ts.URL+"/api/charts", body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("create returned %d: %s", resp.StatusCode, raw)
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.ID == "" {
		t.Fatal("create returned empty id")
	}
	return out.ID
}

func getFrame(t *testing.T, ts *httptest.Server, id string) (int, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + "/api/charts/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(data)
}

func testPayload() map[string]any {
	return map[string]any{
		"data": []map[string]any{
			{"label": "Jan", "value": 12},
			{"label": "Feb", "value": 9},
		},
		"options": map[string]any{"type": "bar"},
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}

func TestOneShotRender(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/render", map[string]any{
		"data":    []map[string]any{{"label": "Jan", "value": 12}},
		"options": map[string]any{"type": "bar", "title": "Revenue"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("render status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(data), "<svg ") {
		t.Error("response is not an SVG document")
	}
	if !strings.Contains(string(data), "Revenue") {
		t.Error("response missing chart title")
	}
}

func TestOneShotRenderRejectsUnknownKind(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/render", map[string]any{
		"data":    []map[string]any{{"value": 1}},
		"options": map[string]any{"type": "sparkline"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	var e struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatal(err)
	}
	if e.Code != "INVALID_KIND" {
		t.Errorf("code = %q, want INVALID_KIND", e.Code)
	}
}

func TestChartLifecycle(t *testing.T) {
	ts := newTestServer(t)
	id := createChart(t, ts, testPayload())

	status, frame := getFrame(t, ts, id)
	if status != http.StatusOK {
		t.Fatalf("frame status = %d", status)
	}
	if !strings.HasPrefix(frame, "<svg ") || !strings.Contains(frame, ">Jan<") {
		t.Error("frame is not the rendered bar chart")
	}

	// Reconfigure to the dark theme and check the background changed.
	req, _ := http.NewRequest(http.MethodPatch, ts.URL+"/api/charts/"+id,
		strings.NewReader(`{"theme": "dark"}`))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("configure status = %d", resp.StatusCode)
	}

	_, frame = getFrame(t, ts, id)
	if !strings.Contains(frame, "#111827") {
		t.Error("frame does not use the dark background")
	}

	// Replace the data.
	resp = postJSON(t, ts.URL+"/api/charts/"+id+"/data", map[string]any{
		"data": []map[string]any{{"label": "Mar", "value": 20}},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("data status = %d", resp.StatusCode)
	}
	var out struct {
		Entries int `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Entries != 1 {
		t.Errorf("entries = %d, want 1", out.Entries)
	}
	_, frame = getFrame(t, ts, id)
	if !strings.Contains(frame, ">Mar<") {
		t.Error("frame does not show the replaced data")
	}

	// Tear down.
	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/api/charts/"+id, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	if status, _ := getFrame(t, ts, id); status != http.StatusNotFound {
		t.Errorf("frame after delete = %d, want 404", status)
	}
}

func TestResizeRerendersFrame(t *testing.T) {
	ts := newTestServer(t)
	id := createChart(t, ts, testPayload())

	resp := postJSON(t, ts.URL+"/api/charts/"+id+"/resize", map[string]int{
		"width":  300,
		"height": 200,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("resize status = %d", resp.StatusCode)
	}

	// The re-render is debounced; wait past the window.
	time.Sleep(chart.ResizeDebounce + 100*time.Millisecond)

	_, frame := getFrame(t, ts, id)
	if !strings.Contains(frame, `viewBox="0 0 300 200"`) {
		t.Errorf("frame not re-rendered at new size: %s", frame[:min(len(frame), 120)])
	}
}

func TestGetOptions(t *testing.T) {
	ts := newTestServer(t)
	payload := testPayload()
	payload["options"] = map[string]any{"type": "donut", "theme": "ocean"}
	id := createChart(t, ts, payload)

	resp, err := http.Get(ts.URL + "/api/charts/" + id + "/options")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var opts chart.Options
	if err := json.NewDecoder(resp.Body).Decode(&opts); err != nil {
		t.Fatal(err)
	}
	if opts.Type != chart.KindDonut || opts.Theme != "ocean" {
		t.Errorf("options = %+v", opts)
	}
}

func TestCreateWithoutDataRendersPlaceholder(t *testing.T) {
	ts := newTestServer(t)
	id := createChart(t, ts, map[string]any{
		"options": map[string]any{"type": "bar"},
	})

	_, frame := getFrame(t, ts, id)
	if !strings.Contains(frame, "No data available") {
		t.Error("empty chart should render the placeholder frame")
	}
}

func TestSetDataValidation(t *testing.T) {
	ts := newTestServer(t)
	id := createChart(t, ts, testPayload())

	resp := postJSON(t, ts.URL+"/api/charts/"+id+"/data", map[string]any{})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownChartIs404(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{
		"/api/charts/nope",
		"/api/charts/nope/options",
	} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestConcurrentCreates(t *testing.T) {
	ts := newTestServer(t)

	const n = 8
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			payload, _ := json.Marshal(map[string]any{
				"data":    []map[string]any{{"label": fmt.Sprintf("w%d", i), "value": float64(i + 1)}},
				"options": map[string]any{"type": "bar"},
			})
			resp, err := http.Post(ts.URL+"/api/charts", "application/json", bytes.NewReader(payload))
			if err != nil {
				ids <- ""
				return
			}
			defer resp.Body.Close()
			var out struct {
				ID string `json:"id"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&out)
			ids <- out.ID
		}(i)
	}

	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		id := <-ids
		if id == "" {
			t.Fatal("concurrent create failed")
		}
		if seen[id] {
			t.Errorf("duplicate chart id %s", id)
		}
		seen[id] = true
	}
}
