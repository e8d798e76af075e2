package maskable

import "fmt"

// ResolverKind identifies which variant a Resolver holds.
type ResolverKind int

const (
	// ResolverMethod invokes a zero-argument method or reads an attribute on the host.
	ResolverMethod ResolverKind = iota + 1

	// ResolverFunc invokes an inline zero-argument callable with no receiver.
	ResolverFunc
)

func (k ResolverKind) String() string {
	switch k {
	case ResolverMethod:
		return "method"
	case ResolverFunc:
		return "func"
	default:
		return "unknown"
	}
}

// Resolver produces the replacement value for a token.
// The zero value is invalid; use Method or Func.
type Resolver struct {
	kind   ResolverKind
	method string
	fn     func() any
}

// Method returns a resolver that calls the named zero-argument method on the
// host, or reads the named attribute when no such method exists.
// The method may return a single value or a value and an error.
func Method(name string) Resolver {
	return Resolver{kind: ResolverMethod, method: name}
}

// Func returns a resolver that calls fn with no receiver.
func Func(fn func() any) Resolver {
	return Resolver{kind: ResolverFunc, fn: fn}
}

// Kind returns the resolver variant.
func (r Resolver) Kind() ResolverKind {
	return r.kind
}

// MethodName returns the method name of a ResolverMethod, or "".
func (r Resolver) MethodName() string {
	return r.method
}

func (r Resolver) valid() bool {
	switch r.kind {
	case ResolverMethod:
		return r.method != ""
	case ResolverFunc:
		return r.fn != nil
	default:
		return false
	}
}

// Mask binds a token name to its resolver.
type Mask struct {
	Token    string
	Resolver Resolver
}

// Map binds token to r.
func Map(token string, r Resolver) Mask {
	return Mask{Token: token, Resolver: r}
}

// Same binds each token to a method or attribute of the same name.
func Same(tokens ...string) []Mask {
	masks := make([]Mask, len(tokens))
	for i, tok := range tokens {
		masks[i] = Map(tok, Method(tok))
	}
	return masks
}

// Masks is an ordered set of token bindings for one attribute.
type Masks []Mask

// Names returns the token names in declaration order.
func (m Masks) Names() []string {
	names := make([]string, len(m))
	for i, mask := range m {
		names[i] = mask.Token
	}
	return names
}

func (m Masks) lookup(token string) (Resolver, bool) {
	for _, mask := range m {
		if mask.Token == token {
			return mask.Resolver, true
		}
	}
	return Resolver{}, false
}

// validate checks token syntax, uniqueness, and resolver shape.
func (m Masks) validate(typ, attribute string) error {
	if len(m) == 0 {
		return newConfigError(ErrNoMasks, typ, attribute, "")
	}
	seen := make(map[string]bool, len(m))
	for _, mask := range m {
		if !IsTokenName(mask.Token) {
			return newConfigError(ErrInvalidToken, typ, attribute, mask.Token)
		}
		if seen[mask.Token] {
			return newConfigError(ErrDuplicateToken, typ, attribute, mask.Token)
		}
		seen[mask.Token] = true
		if !mask.Resolver.valid() {
			return newConfigError(ErrInvalidResolver, typ, attribute, mask.Token)
		}
	}
	return nil
}

// invoker calls a named zero-argument method on a host.
type invoker func(method string) (any, error)

// resolve produces the string for r. Method resolvers need invoke.
func (r Resolver) resolve(invoke invoker) (string, error) {
	switch r.kind {
	case ResolverMethod:
		if invoke == nil {
			return "", ErrUnboundMethod
		}
		v, err := invoke(r.method)
		if err != nil {
			return "", err
		}
		return stringify(v), nil
	case ResolverFunc:
		if r.fn == nil {
			return "", ErrInvalidResolver
		}
		return stringify(r.fn()), nil
	default:
		return "", ErrInvalidResolver
	}
}

// stringify coerces a resolver result to its string form. Absent values become "".
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case []byte:
		return string(val)
	case fmt.Stringer:
		if isNilPointer(val) {
			return ""
		}
		return val.String()
	case error:
		if isNilPointer(val) {
			return ""
		}
		return val.Error()
	default:
		if isNilPointer(val) {
			return ""
		}
		return fmt.Sprint(val)
	}
}
