package maskable

import (
	"testing"
)

// countingSchema masks Qux with a func that counts its calls.
func countingSchema(t *testing.T, calls *int) *Schema[Hickwell] {
	t.Helper()
	schema, err := New[Hickwell](AttributeMasks("Qux",
		Map("foo", Method("Foo")),
		Map("n", Func(func() any {
			*calls++
			return *calls
		})),
	))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return schema
}

func TestAttribute_CacheHit(t *testing.T) {
	var calls int
	rec := countingSchema(t, &calls).Bind(&Hickwell{Qux: ptr("{n}")})
	a, _ := rec.Attribute("Qux")

	if a.Cached() {
		t.Error("new attribute should be uncached")
	}

	first, err := a.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !a.Cached() {
		t.Error("attribute should be cached after render")
	}

	second, err := a.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if deref(first) != "1" || deref(second) != "1" {
		t.Errorf("renders = %q, %q, want 1, 1", deref(first), deref(second))
	}
	if calls != 1 {
		t.Errorf("resolver calls = %d, want 1", calls)
	}
}

func TestAttribute_SetInvalidates(t *testing.T) {
	var calls int
	rec := countingSchema(t, &calls).Bind(&Hickwell{Qux: ptr("{n}")})
	a, _ := rec.Attribute("Qux")

	_, _ = a.Render()
	a.Set(ptr("{n}"))
	if a.Cached() {
		t.Error("Set should invalidate the cache")
	}

	got, _ := a.Render()
	if deref(got) != "2" {
		t.Errorf("Render() = %q, want %q", deref(got), "2")
	}
	if calls != 2 {
		t.Errorf("resolver calls = %d, want 2", calls)
	}
}

func TestAttribute_DirectWriteDetected(t *testing.T) {
	var calls int
	host := &Hickwell{Foo: "a", Qux: ptr("{n}")}
	rec := countingSchema(t, &calls).Bind(host)
	a, _ := rec.Attribute("Qux")

	_, _ = a.Render()
	host.Qux = ptr("{foo}{n}")

	got, _ := a.Render()
	if deref(got) != "a2" {
		t.Errorf("Render() = %q, want %q", deref(got), "a2")
	}
}

func TestAttribute_SiblingChangeIsStale(t *testing.T) {
	var calls int
	host := &Hickwell{Foo: "a", Qux: ptr("{foo}")}
	rec := countingSchema(t, &calls).Bind(host)

	if got := deref(mustGet(t, rec, "Qux")); got != "a" {
		t.Fatalf("Get() = %q, want %q", got, "a")
	}

	// Resolver inputs changing does not invalidate the render.
	host.Foo = "z"
	if got := deref(mustGet(t, rec, "Qux")); got != "a" {
		t.Errorf("Get() after sibling change = %q, want cached %q", got, "a")
	}

	// Rewriting the template does.
	_ = rec.Set("Qux", host.Qux)
	if got := deref(mustGet(t, rec, "Qux")); got != "z" {
		t.Errorf("Get() after Set = %q, want %q", got, "z")
	}
}

func TestAttribute_NilSkipsResolvers(t *testing.T) {
	var calls int
	rec := countingSchema(t, &calls).Bind(&Hickwell{})
	a, _ := rec.Attribute("Qux")

	got, err := a.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != nil {
		t.Errorf("Render() = %q, want nil", *got)
	}
	if calls != 0 {
		t.Errorf("resolver calls = %d, want 0", calls)
	}
	if a.Cached() {
		t.Error("nil template should not populate the cache")
	}
}

func TestAttribute_RenderReturnsCopy(t *testing.T) {
	rec := newHickwell(t, "{foo}")
	a, _ := rec.Attribute("Qux")

	first, _ := a.Render()
	*first = "tampered"

	second, _ := a.Render()
	if deref(second) != "a" {
		t.Errorf("Render() = %q, want %q", deref(second), "a")
	}
}

func TestAttribute_UnmaskedBypassesRender(t *testing.T) {
	var calls int
	rec := countingSchema(t, &calls).Bind(&Hickwell{Qux: ptr("{n}")})
	a, _ := rec.Attribute("Qux")

	for i := 0; i < 3; i++ {
		if got := deref(a.Unmasked()); got != "{n}" {
			t.Errorf("Unmasked() = %q, want %q", got, "{n}")
		}
	}
	if calls != 0 {
		t.Errorf("resolver calls = %d, want 0", calls)
	}
}

func TestAttribute_Masks(t *testing.T) {
	var calls int
	rec := countingSchema(t, &calls).Bind(&Hickwell{})
	a, _ := rec.Attribute("Qux")

	masks := a.Masks()
	if len(masks) != 2 || masks[0] != "foo" || masks[1] != "n" {
		t.Errorf("Masks() = %v, want [foo n]", masks)
	}
}
