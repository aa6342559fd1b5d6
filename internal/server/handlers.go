package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
	"github.com/chartwright/chartwright/pkg/pipeline"
	"github.com/chartwright/chartwright/pkg/render/svg"
)

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"pdf": "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender executes the one-shot pipeline. A single requested format is
// returned raw with its content type; multiple formats come back as a JSON
// document with base64 artifacts.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeDecode, err, "decode render request"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(result.Artifacts) == 1 {
		for format, data := range result.Artifacts {
			w.Header().Set("Content-Type", contentTypes[format])
			w.WriteHeader(http.StatusOK)
			w.Write(data)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"seriesHash": result.SeriesHash,
		"entries":    result.Stats.EntryCount,
		"artifacts":  result.Artifacts,
	})
}

// createChartRequest describes a new live chart. Width and height size the
// backing surface; zero defers to the chart options.
type createChartRequest struct {
	Locator string        `json:"locator,omitempty"`
	Data    chart.Series  `json:"data,omitempty"`
	Options chart.Options `json:"options"`
	Width   int           `json:"width,omitempty"`
	Height  int           `json:"height,omitempty"`
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req createChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeDecode, err, "decode create request"))
		return
	}

	opts := req.Options
	if req.Data != nil {
		opts.Data = req.Data
	}
	if opts.Data == nil && req.Locator != "" {
		data, err := s.runner.Load(r.Context(), pipeline.Request{Locator: req.Locator})
		if err != nil {
			writeError(w, err)
			return
		}
		opts.Data = data
	}
	if opts.Data == nil && opts.ShowPlaceholder == nil {
		// Placeholder until data arrives, instead of failing the create.
		show := true
		opts.ShowPlaceholder = &show
	}

	id := uuid.NewString()
	surface := chart.NewMemorySurface(req.Width, req.Height)
	s.registry.Register(id, surface)

	inst, err := chart.New(s.registry, id, opts, svg.Render,
		chart.WithLoader(s.runner.Loader),
		chart.WithLogger(s.logger))
	if err != nil {
		s.registry.Remove(id)
		writeError(w, err)
		return
	}

	s.mu.Lock()
	s.instances[id] = &liveChart{id: id, surface: surface, inst: inst}
	s.mu.Unlock()

	s.logger.Info("chart created", "id", id, "type", opts.GetType())
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleGetFrame(w http.ResponseWriter, r *http.Request) {
	lc, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, errNoChart(chi.URLParam(r, "id")))
		return
	}

	frame := lc.surface.Frame()
	if frame == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "chart %s has no rendered frame", lc.id))
		return
	}
	w.Header().Set("Content-Type", contentTypes["svg"])
	w.WriteHeader(http.StatusOK)
	w.Write(frame)
}

func (s *Server) handleGetOptions(w http.ResponseWriter, r *http.Request) {
	lc, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, errNoChart(chi.URLParam(r, "id")))
		return
	}
	writeJSON(w, http.StatusOK, lc.inst.Options())
}

func (s *Server) handleConfigure(w http.ResponseWriter, r *http.Request) {
	lc, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, errNoChart(chi.URLParam(r, "id")))
		return
	}

	var overlay chart.Options
	if err := json.NewDecoder(r.Body).Decode(&overlay); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeDecode, err, "decode options overlay"))
		return
	}
	if err := lc.inst.Configure(overlay); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lc.inst.Options())
}

// setDataRequest replaces a chart's series. Inline data wins over a locator.
type setDataRequest struct {
	Locator string       `json:"locator,omitempty"`
	Data    chart.Series `json:"data,omitempty"`
}

func (s *Server) handleSetData(w http.ResponseWriter, r *http.Request) {
	lc, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, errNoChart(chi.URLParam(r, "id")))
		return
	}

	var req setDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeDecode, err, "decode data request"))
		return
	}

	var err error
	switch {
	case req.Data != nil:
		err = lc.inst.SetData(req.Data)
	case req.Locator != "":
		err = lc.inst.Load(r.Context(), req.Locator)
	default:
		err = errors.New(errors.ErrCodeInvalidOptions, "data request needs inline data or a locator")
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"entries": len(lc.inst.Data())})
}

// resizeRequest carries the new surface dimensions.
type resizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	lc, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, errNoChart(chi.URLParam(r, "id")))
		return
	}

	var req resizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeDecode, err, "decode resize request"))
		return
	}

	lc.surface.SetSize(req.Width, req.Height)
	lc.inst.Resize()
	// The re-render is debounced; the new frame lands shortly after.
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	lc, ok := s.instances[id]
	if ok {
		delete(s.instances, id)
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, errNoChart(id))
		return
	}

	if err := lc.inst.Close(); err != nil {
		writeError(w, err)
		return
	}
	s.registry.Remove(id)
	s.logger.Info("chart deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func errNoChart(id string) error {
	return errors.New(errors.ErrCodeChartNotFound, "no chart with id %s", id)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps an error code to an HTTP status and writes the envelope.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidOptions, errors.ErrCodeInvalidKind, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidLocator, errors.ErrCodeEmptySeries, errors.ErrCodeDecode,
		errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeChartNotFound, errors.ErrCodeSurfaceNotFound,
		errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: string(code)})
}
