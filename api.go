// Package maskable renders string attributes that hold placeholder templates.
//
// A maskable attribute stores a raw template such as "{foo}-{bar}". Reading
// it through a Record returns the masked value, with each token replaced by
// the output of its resolver. Writing it replaces the raw template, which is
// what gets persisted.
//
// # Tokens
//
// A token is '{', an identifier matching [A-Za-z_][A-Za-z0-9_]*, and '}'.
// Anything else, including tokens no mask is declared for, is copied through
// unchanged:
//
//	"{foo} and {unknown} and { foo }"  ->  "a and {unknown} and { foo }"
//
// # Resolvers
//
// A Resolver is one of two variants:
//
//   - Method(name): a zero-argument method on the host, or an attribute of
//     that name when no such method exists. Methods may return (X, error).
//   - Func(fn): a zero-argument callable with no receiver.
//
// Results are converted to strings; nil becomes "".
//
// # Basic Usage
//
//	type Hickwell struct {
//	    Foo string
//	    Bar string
//	    Qux *string `mask:"foo,bar"`
//	}
//
//	schema, _ := maskable.New[Hickwell]()
//	rec := schema.Bind(&Hickwell{Foo: "a", Bar: "b"})
//
//	_ = rec.SetString("Qux", "{foo}{bar}")
//	masked, _ := rec.Get("Qux")      // "ab"
//	raw, _ := rec.Unmasked("Qux")    // "{foo}{bar}"
//
// Declarations may also be given in code, and take precedence over tags:
//
//	schema, _ := maskable.New[Hickwell](
//	    maskable.AttributeMasks("Qux",
//	        maskable.Map("foo", maskable.Method("Foo")),
//	        maskable.Map("now", maskable.Func(func() any { return time.Now().Year() })),
//	    ),
//	)
//
// # Subtypes
//
// Extend derives a schema for a type embedding the host. A declaration for
// an attribute replaces the parent's masks for it; masks are never merged.
//
// # Caching
//
// Each Attribute caches its last render and reuses it while the raw
// template is unchanged. Only a change to the template invalidates it;
// changes to values the resolvers read do not.
//
// # Override Interfaces
//
// Types whose pointer implements Host bypass reflection for attribute
// access and method resolvers. Types implementing Cloner control the copy
// Send renders into.
//
// # Codec Providers
//
// The following codec implementations are available as submodules for
// Record.Store, Record.Send and Schema.Load:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package maskable
