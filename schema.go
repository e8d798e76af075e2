package maskable

import (
	"context"
	"reflect"
	"slices"
)

// Declaration declares one maskable attribute and its masks.
type Declaration struct {
	attribute string
	masks     Masks
}

// AttributeMasks declares attribute maskable with the given masks.
// Token names must be unique within the declaration.
func AttributeMasks(attribute string, masks ...Mask) Declaration {
	return Declaration{attribute: attribute, masks: slices.Clone(Masks(masks))}
}

// Schema is the mask configuration for host type T.
//
// A Schema is immutable once built and safe for concurrent use. Records
// bound from it are not.
type Schema[T any] struct {
	plan       *typePlan
	attributes map[string]Masks // keyed by canonical attribute name
	order      []string
}

// New builds a schema for T from mask struct tags and decls.
//
// Declarations are applied in order after tags; a later declaration for an
// attribute replaces an earlier one. Every declaration is validated before
// New returns, so configuration mistakes surface here and never at render
// time for struct hosts.
func New[T any](decls ...Declaration) (*Schema[T], error) {
	plan, err := buildTypePlan[T]()
	if err != nil {
		return nil, err
	}
	tags, err := plan.tagDeclarations()
	if err != nil {
		return nil, err
	}
	return newSchema[T](plan, append(tags, decls...))
}

// Extend builds a schema for U that starts from parent's configuration.
//
// U is usually a struct embedding T. Declarations from U's own mask tags and
// from decls replace the parent's masks for the same attribute; masks are
// never merged. The parent is not modified. A nil parent fails with
// ErrUndefined.
func Extend[U, T any](parent *Schema[T], decls ...Declaration) (*Schema[U], error) {
	if parent == nil {
		return nil, newConfigError(ErrUndefined, typeName(reflect.TypeFor[T]()), "", "")
	}
	plan, err := buildTypePlan[U]()
	if err != nil {
		return nil, err
	}
	tags, err := plan.tagDeclarations()
	if err != nil {
		return nil, err
	}

	inherited := make([]Declaration, 0, len(parent.order)+len(tags)+len(decls))
	for _, name := range parent.order {
		inherited = append(inherited, Declaration{attribute: name, masks: parent.attributes[name]})
	}
	inherited = append(inherited, tags...)
	return newSchema[U](plan, append(inherited, decls...))
}

func newSchema[T any](plan *typePlan, decls []Declaration) (*Schema[T], error) {
	s := &Schema[T]{
		plan:       plan,
		attributes: make(map[string]Masks, len(decls)),
	}

	for _, decl := range decls {
		name, ok := plan.attribute(decl.attribute)
		if !ok {
			if _, exists := plan.fields[decl.attribute]; exists {
				return nil, newConfigError(ErrInvalidAttribute, plan.typeName, decl.attribute, "")
			}
			return nil, newConfigError(ErrUnknownAttribute, plan.typeName, decl.attribute, "")
		}
		if err := decl.masks.validate(plan.typeName, name); err != nil {
			return nil, err
		}
		for _, mask := range decl.masks {
			if mask.Resolver.Kind() != ResolverMethod {
				continue
			}
			if err := plan.bindMember(mask.Resolver.MethodName()); err != nil {
				return nil, newConfigError(err, plan.typeName, name, mask.Token)
			}
		}

		if _, seen := s.attributes[name]; !seen {
			s.order = append(s.order, name)
		}
		s.attributes[name] = slices.Clone(decl.masks)
	}

	emitSchemaDefined(context.Background(), plan.typeName, len(s.order))
	return s, nil
}

// TypeName returns the name of the host type.
func (s *Schema[T]) TypeName() string {
	return s.plan.typeName
}

// Attributes returns the maskable attribute names in declaration order.
func (s *Schema[T]) Attributes() []string {
	return slices.Clone(s.order)
}

// Masks returns the token names configured for attribute, in declaration order.
func (s *Schema[T]) Masks(attribute string) ([]string, error) {
	masks, _, err := s.masks(attribute)
	if err != nil {
		return nil, err
	}
	return masks.Names(), nil
}

func (s *Schema[T]) masks(attribute string) (Masks, string, error) {
	name, ok := lookupName(s.attributes, attribute)
	if !ok {
		return nil, "", unknownAttribute(s.plan.typeName, attribute)
	}
	return s.attributes[name], name, nil
}

// Bind returns the record that masks host. Bind panics if host is nil;
// the package-level Bind reports ErrNilHost instead.
//
// Each call builds fresh attributes with empty render caches, so bind a
// host once and keep the record alongside it.
func (s *Schema[T]) Bind(host *T) *Record[T] {
	if host == nil {
		panic("maskable: Bind of nil " + s.plan.typeName)
	}
	access := newHostAccess(s.plan, host)
	r := &Record[T]{
		schema:     s,
		host:       host,
		attributes: make(map[string]*Attribute[T], len(s.order)),
	}
	for _, name := range s.order {
		r.attributes[name] = &Attribute[T]{
			host:     host,
			access:   access,
			name:     name,
			typeName: s.plan.typeName,
			masks:    s.attributes[name],
		}
	}
	return r
}

// unknownAttribute reports a lookup of an attribute that is not maskable.
func unknownAttribute(typ, attribute string) error {
	return newConfigError(ErrUnknownAttribute, typ, attribute, "")
}
