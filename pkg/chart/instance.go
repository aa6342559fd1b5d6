package chart

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chartwright/chartwright/pkg/errors"
)

// ResizeDebounce is the fixed delay used to coalesce bursts of resize
// notifications into a single re-render.
const ResizeDebounce = 150 * time.Millisecond

// Renderer turns a series and options into a complete SVG frame.
// pkg/render/svg provides the standard implementation; the indirection
// keeps this package free of a dependency on the drawing code.
type Renderer func(Series, Options) ([]byte, error)

// Loader resolves a data locator (an http(s) URL, a mongodb URI, ...) into a
// series. pkg/dataset provides the standard implementation.
type Loader interface {
	Load(ctx context.Context, locator string) (Series, error)
}

// Instance is one live chart: an owned mutable configuration, a surface to
// draw on, and the current series. Every mutation — reconfigure, data
// reload, resize — recomputes the whole frame from scratch; there is no
// partial-update path, which keeps renders idempotent for identical inputs.
//
// All methods are safe for concurrent use.
type Instance struct {
	mu      sync.Mutex
	surface Surface
	opts    Options
	data    Series
	render  Renderer
	loader  Loader
	logger  *log.Logger

	resizeTimer *time.Timer
	cancelLoad  context.CancelFunc
	loadGen     uint64
	closed      bool
}

// InstanceOption configures optional instance collaborators.
type InstanceOption func(*Instance)

// WithLoader sets the data loader used by Load.
func WithLoader(l Loader) InstanceOption {
	return func(i *Instance) { i.loader = l }
}

// WithLogger sets the instance logger. Without one, logging is discarded.
func WithLogger(l *log.Logger) InstanceOption {
	return func(i *Instance) { i.logger = l }
}

// New constructs a chart instance bound to the surface registered under
// surfaceName and renders the initial frame from opts (including opts.Data,
// which may be empty). It fails with SURFACE_NOT_FOUND when no such surface
// exists.
func New(reg *Registry, surfaceName string, opts Options, render Renderer, instOpts ...InstanceOption) (*Instance, error) {
	surface, err := reg.Lookup(surfaceName)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		surface: surface,
		opts:    opts,
		data:    opts.Data,
		render:  render,
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, o := range instOpts {
		o(inst)
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	if err := inst.renderLocked(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Options returns a copy of the current effective options.
func (i *Instance) Options() Options {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.opts
}

// Data returns the current series.
func (i *Instance) Data() Series {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.data
}

// Configure shallow-merges overlay into the current options and re-renders.
// Theme, surface sizing and every other derived value are recomputed in full.
func (i *Instance) Configure(overlay Options) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return errClosed()
	}
	i.opts = i.opts.Merge(overlay)
	if overlay.Data != nil {
		i.data = overlay.Data
	}
	return i.renderLocked()
}

// SetData replaces the series wholesale and re-renders.
func (i *Instance) SetData(data Series) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return errClosed()
	}
	i.data = data
	return i.renderLocked()
}

// Load fetches a series from locator and applies it. Loads are single-flight:
// starting a new one cancels the previous in-flight request, and a load that
// finishes after being superseded is dropped rather than applied out of
// order. Fetch and decode failures are returned to the caller; the current
// data stays untouched.
func (i *Instance) Load(ctx context.Context, locator string) error {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return errClosed()
	}
	if i.loader == nil {
		i.mu.Unlock()
		return errNoLoader()
	}
	if i.cancelLoad != nil {
		i.cancelLoad()
	}
	ctx, cancel := context.WithCancel(ctx)
	i.cancelLoad = cancel
	i.loadGen++
	gen := i.loadGen
	loader := i.loader
	i.mu.Unlock()

	data, err := loader.Load(ctx, locator)

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed || gen != i.loadGen {
		// Superseded by a newer load or a teardown; drop the result.
		i.logger.Debugf("dropping stale load for %s", locator)
		return nil
	}
	// Release the derived context now that the load is settled.
	i.cancelLoad()
	i.cancelLoad = nil
	if err != nil {
		return err
	}
	i.data = data
	return i.renderLocked()
}

// Resize notifies the instance that its surface changed size. Notifications
// are debounced by ResizeDebounce so a burst collapses into one re-render.
// Instances configured with responsive=false ignore resizes entirely.
func (i *Instance) Resize() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed || !i.opts.GetResponsive() {
		return
	}
	if i.resizeTimer != nil {
		i.resizeTimer.Stop()
	}
	i.resizeTimer = time.AfterFunc(ResizeDebounce, func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		if i.closed {
			return
		}
		if err := i.renderLocked(); err != nil {
			i.logger.Errorf("resize render failed: %v", err)
		}
	})
}

// Close releases the instance: pending debounced renders are dropped,
// in-flight loads are cancelled, and the surface is cleared. Further method
// calls return an error.
func (i *Instance) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.closed = true
	if i.resizeTimer != nil {
		i.resizeTimer.Stop()
		i.resizeTimer = nil
	}
	if i.cancelLoad != nil {
		i.cancelLoad()
		i.cancelLoad = nil
	}
	return i.surface.Clear()
}

func errClosed() error {
	return errors.New(errors.ErrCodeChartNotFound, "chart instance is closed")
}

func errNoLoader() error {
	return errors.New(errors.ErrCodeInvalidLocator, "instance has no data loader configured")
}

// renderLocked recomputes the frame from the current configuration and data
// and draws it. Callers must hold i.mu. When the instance is responsive and
// the surface reports a size, that size wins over the configured dimensions.
func (i *Instance) renderLocked() error {
	opts := i.opts
	if opts.GetResponsive() {
		if w, h := i.surface.Size(); w > 0 && h > 0 {
			opts.Width = w
			opts.Height = h
		}
	}

	frame, err := i.render(i.data, opts)
	if err != nil {
		return err
	}
	return i.surface.Draw(frame)
}
