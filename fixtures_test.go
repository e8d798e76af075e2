package maskable

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"testing"
)

// testCodec is a simple JSON codec for testing without importing maskable/json.
type testCodec struct{}

func (c *testCodec) ContentType() string { return "application/json" }

func (c *testCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *testCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Hickwell is the base host: three sibling attributes and one maskable one.
type Hickwell struct {
	Foo string  `json:"foo"`
	Bar *string `json:"bar"`
	Baz *string `json:"baz"`
	Qux *string `json:"qux"`
}

func (h *Hickwell) Quux() string { return "thud" }

// Rickwell maps a token to a differently named method.
type Rickwell struct {
	Hickwell
}

// Wickwell masks with an inline func.
type Wickwell struct {
	Hickwell
}

// Dickwell uses a multi-word token.
type Dickwell struct {
	Hickwell
}

// Tagged declares its masks with struct tags.
type Tagged struct {
	Foo   string
	Bar   string
	Qux   string  `mask:"foo,bar"`
	Title *string `mask:"thud=Quux,foo"`
}

func (t *Tagged) Quux() string { return "thud" }

var errBoom = errors.New("boom")

// Failing has a method resolver that returns an error.
type Failing struct {
	Qux string
}

func (f *Failing) Fail() (string, error) { return "", errBoom }

func (f *Failing) Count() (int, error) { return 42, nil }

// mapHost keeps its attributes in a map and implements Host.
type mapHost struct {
	attrs map[string]*string
	name  string
}

func (h *mapHost) AttributeNames() []string { return []string{"title", "body"} }

func (h *mapHost) ReadAttribute(name string) *string { return h.attrs[name] }

func (h *mapHost) WriteAttribute(name string, value *string) {
	if h.attrs == nil {
		h.attrs = make(map[string]*string)
	}
	h.attrs[name] = value
}

func (h *mapHost) Invoke(method string) (any, error) {
	switch method {
	case "name":
		return h.name, nil
	case "length":
		return len(h.attrs), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
}

func (h mapHost) Clone() mapHost {
	return mapHost{attrs: maps.Clone(h.attrs), name: h.name}
}

// sharedHost is a Host whose copies share one attribute map.
type sharedHost struct {
	mapHost
}

func ptr(s string) *string { return &s }

// hickwellSchema returns the base schema: Qux masks foo, bar and baz.
func hickwellSchema(t *testing.T) *Schema[Hickwell] {
	t.Helper()
	schema, err := New[Hickwell](AttributeMasks("Qux", Same("foo", "bar", "baz")...))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return schema
}

// newHickwell binds a Hickwell with foo=a, bar=b, baz=c and the given template.
func newHickwell(t *testing.T, template string) *Record[Hickwell] {
	t.Helper()
	return hickwellSchema(t).Bind(&Hickwell{
		Foo: "a",
		Bar: ptr("b"),
		Baz: ptr("c"),
		Qux: ptr(template),
	})
}

func mustGet[T any](t *testing.T, r *Record[T], attribute string) *string {
	t.Helper()
	v, err := r.Get(attribute)
	if err != nil {
		t.Fatalf("Get(%q) error: %v", attribute, err)
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
