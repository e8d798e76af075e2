package maskable

import (
	"errors"
	"testing"
)

func mapHostSchema(t *testing.T) *Schema[mapHost] {
	t.Helper()
	schema, err := New[mapHost](
		AttributeMasks("title", Same("name")...),
		AttributeMasks("body", Map("len", Method("length")), Map("x", Method("missing"))),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return schema
}

func TestHost_RendersThroughInterface(t *testing.T) {
	rec := mapHostSchema(t).Bind(&mapHost{name: "ada"})

	if err := rec.SetString("title", "hi {name}"); err != nil {
		t.Fatalf("SetString() error: %v", err)
	}
	if got := deref(rec.Host().attrs["title"]); got != "hi {name}" {
		t.Errorf("stored title = %q, want raw template", got)
	}
	if got := deref(mustGet(t, rec, "title")); got != "hi ada" {
		t.Errorf("Get(title) = %q, want %q", got, "hi ada")
	}
}

func TestHost_AttributeNameCaseInsensitive(t *testing.T) {
	rec := mapHostSchema(t).Bind(&mapHost{name: "ada", attrs: map[string]*string{"title": ptr("{name}")}})

	if got := deref(mustGet(t, rec, "Title")); got != "ada" {
		t.Errorf("Get(Title) = %q, want %q", got, "ada")
	}
}

func TestHost_AbsentAttribute(t *testing.T) {
	rec := mapHostSchema(t).Bind(&mapHost{})

	if got := mustGet(t, rec, "title"); got != nil {
		t.Errorf("Get() = %q, want nil", *got)
	}
}

func TestHost_UnknownMethodAtRender(t *testing.T) {
	rec := mapHostSchema(t).Bind(&mapHost{})
	_ = rec.SetString("body", "{len}")

	if got := deref(mustGet(t, rec, "body")); got != "1" {
		t.Errorf("Get(body) = %q, want %q", got, "1")
	}

	_ = rec.SetString("body", "{len}{x}")
	_, err := rec.Get("body")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("Get() error = %v, want ErrUnknownMethod", err)
	}
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("Get() error = %T, want *ResolutionError", err)
	}
	if re.Token != "x" || re.Attribute != "body" {
		t.Errorf("token/attribute = %q/%q, want x/body", re.Token, re.Attribute)
	}
}

func TestHost_UnknownAttribute(t *testing.T) {
	_, err := New[mapHost](AttributeMasks("summary", Same("name")...))
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("New() error = %v, want ErrUnknownAttribute", err)
	}
}

func TestHost_SendUsesCloner(t *testing.T) {
	rec := mapHostSchema(t).Bind(&mapHost{name: "ada", attrs: map[string]*string{"title": ptr("{name}")}})
	codec := &captureCodec{}

	if _, err := rec.Send(t.Context(), codec); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	sent, ok := codec.value.(*mapHost)
	if !ok {
		t.Fatalf("marshaled %T, want *mapHost", codec.value)
	}
	if got := deref(sent.attrs["title"]); got != "ada" {
		t.Errorf("sent title = %q, want %q", got, "ada")
	}
	if got := deref(rec.Host().attrs["title"]); got != "{name}" {
		t.Errorf("host title = %q, want raw template", got)
	}
}

func TestHost_SendWithoutCloner(t *testing.T) {
	schema, err := New[sharedHost](AttributeMasks("title", Same("name")...))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	host := &sharedHost{mapHost{name: "ada", attrs: map[string]*string{"title": ptr("{name}")}}}
	rec := schema.Bind(host)
	codec := &captureCodec{}

	data, err := rec.Send(t.Context(), codec)
	if !errors.Is(err, ErrNoCloner) {
		t.Fatalf("Send() error = %v, want ErrNoCloner", err)
	}
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Type != "sharedHost" {
		t.Errorf("Send() error = %v, want ConfigError for sharedHost", err)
	}
	if data != nil || codec.value != nil {
		t.Error("Send() should not marshal without a Cloner")
	}

	raw, _ := rec.Unmasked("title")
	if deref(raw) != "{name}" {
		t.Errorf("Unmasked() after Send = %q, want raw template", deref(raw))
	}

	stored, err := rec.Store(t.Context(), codec)
	if err != nil || string(stored) != "ok" {
		t.Fatalf("Store() = %q, %v", stored, err)
	}
	if got := deref(codec.value.(*sharedHost).attrs["title"]); got != "{name}" {
		t.Errorf("stored title = %q, want raw template", got)
	}
}

func TestHasCloner(t *testing.T) {
	if !hasCloner[mapHost]() {
		t.Error("mapHost implements Cloner")
	}
	if hasCloner[sharedHost]() {
		t.Error("sharedHost does not implement Cloner[sharedHost]")
	}
	if hasCloner[Hickwell]() {
		t.Error("Hickwell does not implement Cloner")
	}
}
