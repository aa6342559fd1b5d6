package chart

import (
	"sync"

	"github.com/chartwright/chartwright/pkg/errors"
)

// Surface is a drawable target for rendered chart output. Implementations
// report their current pixel dimensions (the "container" size an instance
// follows when responsive) and accept complete SVG frames — rendering is
// never incremental, so each Draw replaces the previous frame wholesale.
type Surface interface {
	// Size returns the current width and height in pixels. Either value may
	// be zero when the surface has no intrinsic size, in which case the
	// instance falls back to its configured dimensions.
	Size() (width, height int)

	// Draw replaces the surface content with a rendered SVG frame.
	Draw(svg []byte) error

	// Clear removes any rendered output.
	Clear() error
}

// Registry maps surface names to surfaces. Constructing an Instance against
// a name that is not registered fails with SURFACE_NOT_FOUND — the one fatal
// construction-time error in the system.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

// NewRegistry creates an empty surface registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register adds or replaces a named surface.
func (r *Registry) Register(name string, s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[name] = s
}

// Remove deletes a named surface.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, name)
}

// Lookup returns the surface registered under name.
func (r *Registry) Lookup(name string) (Surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeSurfaceNotFound, "no surface named %q", name)
	}
	return s, nil
}

// MemorySurface is an in-memory Surface holding the most recent frame. The
// HTTP server hands one to each chart instance and serves its content; tests
// use it to inspect rendered output.
type MemorySurface struct {
	mu     sync.RWMutex
	width  int
	height int
	frame  []byte
}

// NewMemorySurface creates a memory surface with the given dimensions.
// Zero dimensions are valid and defer sizing to the chart options.
func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{width: width, height: height}
}

// Size returns the surface dimensions.
func (m *MemorySurface) Size() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.width, m.height
}

// SetSize updates the dimensions. The owning instance re-renders on its next
// Resize notification; the surface itself does not trigger anything.
func (m *MemorySurface) SetSize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = width
	m.height = height
}

// Draw stores the frame.
func (m *MemorySurface) Draw(svg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = svg
	return nil
}

// Clear drops the stored frame.
func (m *MemorySurface) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = nil
	return nil
}

// Frame returns the most recently drawn SVG, or nil if none.
func (m *MemorySurface) Frame() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frame
}
