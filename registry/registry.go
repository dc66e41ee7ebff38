package registry

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/value"
)

// Registry is an explicit named collection of converters. It replaces
// any ambient global lookup: consumers receive a registry by reference
// and resolve names against it.
//
// A registry is built once during setup and read-only afterwards; it is
// safe for concurrent lookup but not for concurrent registration.
type Registry struct {
	converters map[string]convert.Converter[any]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{converters: make(map[string]convert.Converter[any])}
}

// Register adds a named converter. Duplicate names are rejected.
func (r *Registry) Register(name string, conv convert.Converter[any]) error {
	if name == "" {
		return fmt.Errorf("converter name is empty")
	}
	if conv == nil {
		return fmt.Errorf("converter %q is nil", name)
	}
	if _, exists := r.converters[name]; exists {
		return fmt.Errorf("converter %q already registered", name)
	}
	r.converters[name] = conv
	Logger().Debug("registered converter", zap.String("name", name))
	return nil
}

// MustRegister adds a named converter and panics on error. Intended for
// setup-time registration of static converter sets.
func (r *Registry) MustRegister(name string, conv convert.Converter[any]) {
	if err := r.Register(name, conv); err != nil {
		panic(err)
	}
}

// Lookup resolves a converter by name.
func (r *Registry) Lookup(name string) (convert.Converter[any], bool) {
	conv, ok := r.converters[name]
	return conv, ok
}

// Names returns the registered names sorted for stable listing.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered converters.
func (r *Registry) Len() int {
	return len(r.converters)
}

// Convert resolves a converter by name and applies it. An unknown name
// is a caller error, not a conversion failure.
func (r *Registry) Convert(name string, v value.Value, ctx convert.Context) (any, error) {
	conv, ok := r.converters[name]
	if !ok {
		return nil, fmt.Errorf("unknown converter %q", name)
	}
	return conv(v, ctx)
}
