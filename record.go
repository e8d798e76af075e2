package maskable

// Record is a host bound to its schema. It owns one Attribute per
// maskable attribute and is the read/write surface callers use instead of
// touching maskable fields directly.
//
// Record is not safe for concurrent use.
type Record[T any] struct {
	schema     *Schema[T]
	host       *T
	attributes map[string]*Attribute[T]
}

// Host returns the bound host.
func (r *Record[T]) Host() *T {
	return r.host
}

// Schema returns the schema the record was bound from.
func (r *Record[T]) Schema() *Schema[T] {
	return r.schema
}

// Attribute returns the mask resolver for the named attribute.
func (r *Record[T]) Attribute(name string) (*Attribute[T], error) {
	key, ok := lookupName(r.attributes, name)
	if !ok {
		return nil, unknownAttribute(r.schema.TypeName(), name)
	}
	return r.attributes[key], nil
}

// Get returns the masked value of the attribute.
func (r *Record[T]) Get(name string) (*string, error) {
	a, err := r.Attribute(name)
	if err != nil {
		return nil, err
	}
	return a.Render()
}

// Set stores a raw template for the attribute. A nil value is absent.
func (r *Record[T]) Set(name string, value *string) error {
	a, err := r.Attribute(name)
	if err != nil {
		return err
	}
	a.Set(value)
	return nil
}

// SetString stores a raw template for the attribute.
func (r *Record[T]) SetString(name, value string) error {
	return r.Set(name, &value)
}

// Unmasked returns the raw template of the attribute.
func (r *Record[T]) Unmasked(name string) (*string, error) {
	a, err := r.Attribute(name)
	if err != nil {
		return nil, err
	}
	return a.Unmasked(), nil
}

// Masks returns the token names configured for the attribute.
func (r *Record[T]) Masks(name string) ([]string, error) {
	a, err := r.Attribute(name)
	if err != nil {
		return nil, err
	}
	return a.Masks(), nil
}
