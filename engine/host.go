package engine

import (
	"errors"
	"sync"
)

// ErrHostNotFound is returned when attachTo names no registered host
var ErrHostNotFound = errors.New("host not found")

// Host is the drawing region a simulation attaches to
type Host interface {
	ID() string
	Size() (width, height float64)
}

// HostLookup resolves attachTo identifiers
type HostLookup interface {
	Lookup(id string) (Host, bool)
}

// HostRegistry is a concurrent id to host map
type HostRegistry struct {
	mu    sync.RWMutex
	hosts map[string]Host
}

func NewHostRegistry(hosts ...Host) *HostRegistry {
	r := &HostRegistry{hosts: make(map[string]Host, len(hosts))}
	for _, h := range hosts {
		r.hosts[h.ID()] = h
	}
	return r
}

// Register adds or replaces the host under its id
func (r *HostRegistry) Register(h Host) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hosts[h.ID()] = h
}

func (r *HostRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.hosts, id)
}

func (r *HostRegistry) Lookup(id string) (Host, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hosts[id]
	return h, ok
}

// StaticHost is a fixed-size host resized explicitly by its owner
type StaticHost struct {
	mu     sync.RWMutex
	id     string
	width  float64
	height float64
}

func NewStaticHost(id string, width, height float64) *StaticHost {
	return &StaticHost{id: id, width: width, height: height}
}

func (h *StaticHost) ID() string {
	return h.id
}

func (h *StaticHost) Size() (float64, float64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.width, h.height
}

func (h *StaticHost) Resize(width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.width = width
	h.height = height
}
