// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package appsurface

import (
	"errors"
	"sort"
	"sync"
)

// Factory opens a provider for a validated view descriptor.
// Implementations may block until the device and surface are ready.
type Factory func(desc ViewDescriptor) (Provider, error)

// RegistryEntry represents a registered provider backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native GPU backends (Metal, Vulkan)
	//   - 10: software backend
	Priority int

	// Factory opens providers.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered provider backends.
//
// Platform integrations register their native backend without any change
// to the canvas or the bridge:
//
//	func init() {
//	    appsurface.Register("metal", 100, openMetal, nil)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// Open validates desc and opens a provider from the global registry.
// desc.Backend selects a backend by name; otherwise the best available wins.
func Open(desc *ViewDescriptor) (Provider, error) {
	return globalRegistry.Open(desc)
}

// OpenByName opens a provider with a specific backend from the global registry.
func OpenByName(name string, desc *ViewDescriptor) (Provider, error) {
	return globalRegistry.OpenByName(name, desc)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	entryCopy := *entry
	return &entryCopy, true
}

// Open validates desc and opens a provider.
// desc.Backend selects a backend by name; otherwise backends are tried in
// priority order and the first one that opens wins.
func (r *Registry) Open(desc *ViewDescriptor) (Provider, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if desc.Backend != "" {
		return r.open(desc.Backend, *desc)
	}

	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		p, err := r.open(name, *desc)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// OpenByName validates desc and opens a provider with the named backend.
func (r *Registry) OpenByName(name string, desc *ViewDescriptor) (Provider, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return r.open(name, *desc)
}

func (r *Registry) open(name string, desc ViewDescriptor) (Provider, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory(desc)
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority == entries[j].priority {
			return entries[i].name < entries[j].name
		}
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no provider backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("appsurface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "appsurface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "appsurface: backend unavailable: " + e.Name
}

// init registers the built-in software backend.
func init() {
	Register(SoftwareBackend, 10, func(desc ViewDescriptor) (Provider, error) {
		return NewSoftware(int(desc.Width), int(desc.Height))
	}, nil)
}
