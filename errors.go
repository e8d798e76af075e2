package maskable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownAttribute indicates the named attribute is not a stored field of the type.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidAttribute indicates the attribute exists but cannot hold a template.
	ErrInvalidAttribute = errors.New("attribute is not a string")

	// ErrNoMasks indicates an attribute was declared maskable without any masks.
	ErrNoMasks = errors.New("no masks declared")

	// ErrDuplicateToken indicates a token name was declared twice for one attribute.
	ErrDuplicateToken = errors.New("duplicate token")

	// ErrInvalidToken indicates a token name is not a valid identifier.
	ErrInvalidToken = errors.New("invalid token name")

	// ErrInvalidResolver indicates a resolver has an empty method name or nil func.
	ErrInvalidResolver = errors.New("invalid resolver")

	// ErrUnknownMethod indicates a method resolver names something the host does not provide.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrUnboundMethod indicates a method resolver was used without a host.
	ErrUnboundMethod = errors.New("method resolver without host")

	// ErrUnsupportedType indicates the host type is neither a struct nor a Host.
	ErrUnsupportedType = errors.New("unsupported host type")

	// ErrInvalidTag indicates a mask struct tag has an invalid format.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrAlreadyDefined indicates a schema was already registered for the type.
	ErrAlreadyDefined = errors.New("schema already defined")

	// ErrUndefined indicates no schema is registered for the type.
	ErrUndefined = errors.New("schema not defined")

	// ErrNoCloner indicates Send needs a Cloner to copy a Host type.
	ErrNoCloner = errors.New("host type does not implement Cloner")

	// ErrNilHost indicates a nil host was bound.
	ErrNilHost = errors.New("nil host")

	// ErrResolve indicates a resolver failed while rendering.
	ErrResolve = errors.New("resolve failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a schema configuration error.
// It is returned while a schema is being built, by registry lookups, and
// when a record is asked for an attribute it does not mask. Rendering
// never returns it.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrNoMasks, etc.)
	Type      string // Host type name
	Attribute string // Attribute that triggered the error
	Token     string // Token that triggered the error, if any
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	switch {
	case e.Type != "" && e.Attribute != "":
		return fmt.Sprintf("%s (attribute %s.%s)", msg, e.Type, e.Attribute)
	case e.Attribute != "":
		return fmt.Sprintf("%s (attribute %s)", msg, e.Attribute)
	case e.Type != "":
		return fmt.Sprintf("%s (type %s)", msg, e.Type)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ResolutionError represents a failure to resolve a token while rendering.
// The render that produced it returns no value.
type ResolutionError struct {
	Err       error  // Underlying sentinel error (ErrUnknownMethod, ErrResolve)
	Attribute string // Attribute being rendered
	Token     string // Token being resolved
	Cause     error  // Original error from the resolver, if any
}

func (e *ResolutionError) Error() string {
	where := fmt.Sprintf("token %q", e.Token)
	if e.Attribute != "" {
		where = fmt.Sprintf("%s of attribute %s", where, e.Attribute)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Err.Error(), where, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), where)
}

// Unwrap exposes both the sentinel and the resolver's own error to errors.Is.
func (e *ResolutionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for schema declaration failures.
func newConfigError(sentinel error, typ, attribute, token string) error {
	return &ConfigError{
		Err:       sentinel,
		Type:      typ,
		Attribute: attribute,
		Token:     token,
	}
}

// newResolutionError creates a ResolutionError for render failures.
func newResolutionError(sentinel error, attribute, token string, cause error) error {
	return &ResolutionError{
		Err:       sentinel,
		Attribute: attribute,
		Token:     token,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
