package maskable

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Define builds the schema for T and registers it as T's schema.
// A type is defined once; a second Define for T fails with ErrAlreadyDefined
// and leaves the registered schema untouched.
func Define[T any](decls ...Declaration) (*Schema[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock check
	registryMu.RLock()
	_, exists := registry[typ]
	registryMu.RUnlock()
	if exists {
		return nil, newConfigError(ErrAlreadyDefined, typ.String(), "", "")
	}

	schema, err := New[T](decls...)
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if _, exists := registry[typ]; exists {
		return nil, newConfigError(ErrAlreadyDefined, typ.String(), "", "")
	}
	registry[typ] = schema
	return schema, nil
}

// DefineExtended builds U's schema from the registered schema of T, as
// Extend does, and registers it as U's schema.
func DefineExtended[U, T any](decls ...Declaration) (*Schema[U], error) {
	parent, ok := Lookup[T]()
	if !ok {
		return nil, newConfigError(ErrUndefined, reflect.TypeFor[T]().String(), "", "")
	}

	typ := reflect.TypeFor[U]()
	schema, err := Extend[U](parent, decls...)
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[typ]; exists {
		return nil, newConfigError(ErrAlreadyDefined, typ.String(), "", "")
	}
	registry[typ] = schema
	return schema, nil
}

// Lookup returns the registered schema for T.
func Lookup[T any]() (*Schema[T], bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	cached, ok := registry[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return cached.(*Schema[T]), true
}

// Bind binds host to the registered schema for T.
func Bind[T any](host *T) (*Record[T], error) {
	schema, ok := Lookup[T]()
	if !ok {
		return nil, newConfigError(ErrUndefined, reflect.TypeFor[T]().String(), "", "")
	}
	if host == nil {
		return nil, newConfigError(ErrNilHost, schema.TypeName(), "", "")
	}
	return schema.Bind(host), nil
}

// Reset clears the schema registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
