// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknown is returned by Lookup for a name that was never registered.
var ErrUnknown = errors.New("registry: unknown name")

// Registry is a concurrency-safe name → value table.
// The zero value is not usable; construct with New.
type Registry[T any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]T
}

// New returns an empty registry. kind names the registered concept
// ("cost model", "comparator", …) in error messages.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: make(map[string]T)}
}

// Register binds name to v.
// Panics on an empty or duplicate name: both are programmer errors in init code.
//
// Complexity: O(1).
func (r *Registry[T]) Register(name string, v T) {
	if name == "" {
		panic(fmt.Sprintf("registry: %s: empty name", r.kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[name]; dup {
		panic(fmt.Sprintf("registry: %s: duplicate name %q", r.kind, name))
	}
	r.entries[name] = v
}

// Lookup returns the value bound to name.
//
// Errors:
//   - ErrUnknown wrapped with the kind, the name and the known names.
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	v, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q (known: %v): %w", r.kind, name, r.Names(), ErrUnknown)
	}

	return v, nil
}

// MustLookup is Lookup for names known at compile time; it panics on ErrUnknown.
func (r *Registry[T]) MustLookup(name string) T {
	v, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}

	return v
}

// Names returns the registered names in ascending order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
