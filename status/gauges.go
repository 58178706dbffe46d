package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Float is an atomic float64 gauge; the zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Gauges is a named set of gauges of one kind
// Lookups allocate on first use; callers cache the returned pointer
type Gauges[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewGauges[T any]() *Gauges[T] {
	return &Gauges[T]{items: make(map[string]*T)}
}

// Get returns the gauge for name, creating it when absent
func (g *Gauges[T]) Get(name string) *T {
	g.mu.RLock()
	ptr, ok := g.items[name]
	g.mu.RUnlock()
	if ok {
		return ptr
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if ptr, ok := g.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	g.items[name] = ptr
	return ptr
}

// Drop removes gauges whose name starts with prefix
func (g *Gauges[T]) Drop(prefix string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for name := range g.items {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			delete(g.items, name)
		}
	}
}

// Each visits gauges in name order
func (g *Gauges[T]) Each(fn func(name string, gauge *T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.items))
	for name := range g.items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn(name, g.items[name])
	}
}

func (g *Gauges[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items)
}
