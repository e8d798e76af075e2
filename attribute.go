package maskable

import (
	"context"
	"time"
)

// Attribute masks one attribute of one host.
//
// It holds the render cache for that attribute: the rendered value is kept
// until the raw template changes. A write through Set always invalidates it,
// and a template changed behind its back is detected by comparing the raw
// value on the next Render. Changes to other attributes or methods that
// resolvers read do not invalidate the cache.
//
// Attribute is not safe for concurrent use.
type Attribute[T any] struct {
	host     *T
	access   hostAccess
	name     string
	typeName string
	masks    Masks

	cached   bool
	template string
	rendered string
}

// Name returns the attribute name.
func (a *Attribute[T]) Name() string {
	return a.name
}

// Host returns the masked object.
func (a *Attribute[T]) Host() *T {
	return a.host
}

// Masks returns the configured token names in declaration order.
func (a *Attribute[T]) Masks() []string {
	return a.masks.Names()
}

// Cached reports whether a render is held for the current template.
func (a *Attribute[T]) Cached() bool {
	raw := a.access.read(a.name)
	return a.cached && raw != nil && *raw == a.template
}

// Unmasked returns the raw template exactly as stored.
func (a *Attribute[T]) Unmasked() *string {
	return a.access.read(a.name)
}

// Render returns the masked value. An absent template renders as nil
// without invoking any resolver.
func (a *Attribute[T]) Render() (*string, error) {
	raw := a.access.read(a.name)
	if raw == nil {
		return nil, nil
	}

	ctx := context.Background()
	if a.cached && a.template == *raw {
		emitRenderCached(ctx, a.typeName, a.name)
		out := a.rendered
		return &out, nil
	}

	a.cached = false
	start := time.Now()
	out, count, err := render(*raw, a.masks, a.access.invoke, a.name)
	emitRenderComplete(ctx, a.typeName, a.name, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	a.cached, a.template, a.rendered = true, *raw, out
	return &out, nil
}

// Set replaces the raw template and invalidates the cached render.
// A nil value stores an absent template.
func (a *Attribute[T]) Set(value *string) {
	a.access.write(a.name, value)
	a.cached = false
	emitAttributeWritten(context.Background(), a.typeName, a.name)
}
