package di

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sghaida/principles/config"
)

// ErrFactoryPanic is returned if a factory panics during Resolve.
var ErrFactoryPanic = errors.New("di: panic during Resolve")

// UnknownCapabilityError is returned when no factory is registered under Name.
type UnknownCapabilityError struct {
	Name  string
	Known []string
}

// Error implements the error interface.
func (e UnknownCapabilityError) Error() string {
	// Example: di: unknown capability "ftp" (known: live, stub)
	return "di: unknown capability " + strconv.Quote(e.Name) + " (known: " + strings.Join(e.Known, ", ") + ")"
}

// Factory builds a capability from configuration.
type Factory[T any] func(cfg config.Config) (T, error)

// Registry provides capabilities of type T by name.
//
// It is intentionally:
// - build-time only
// - side effect free apart from what factories do
type Registry[T any] struct {
	items map[string]Factory[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: map[string]Factory[T]{}}
}

// Provide stores a factory under name and returns the registry for chaining.
// A later Provide with the same name replaces the earlier one.
func (r *Registry[T]) Provide(name string, f Factory[T]) *Registry[T] {
	r.items[name] = f
	return r
}

// Has reports whether a factory exists for name.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.items[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	out := make([]string, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Resolve builds the capability registered under name and converts factory
// panics into errors.
func (r *Registry[T]) Resolve(cfg config.Config, name string) (val T, err error) {
	f, ok := r.items[name]
	if !ok || f == nil {
		return val, UnknownCapabilityError{Name: name, Known: r.Names()}
	}

	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			val = zero
			err = fmt.Errorf("%w: %v", ErrFactoryPanic, rec)
		}
	}()

	return f(cfg)
}

// MustResolve returns the capability or panics.
// Useful in examples/tests where wiring errors should fail fast.
func (r *Registry[T]) MustResolve(cfg config.Config, name string) T {
	v, err := r.Resolve(cfg, name)
	if err != nil {
		panic(err)
	}
	return v
}
