package maskable

// Host allows types to bypass reflection-based attribute access.
// When *T implements Host, the schema reads and writes attributes and
// invokes method resolvers through these methods instead of struct fields
// and reflected methods.
//
// Because a Host's members are not known until it is called, method
// resolvers are checked at render time rather than when the schema is
// built: an Invoke for an unknown method must return an error wrapping
// ErrUnknownMethod.
type Host interface {
	// AttributeNames lists the stored string attributes.
	// It is called on a zero value when the schema is built, so the
	// result must not depend on instance state.
	AttributeNames() []string

	// ReadAttribute returns the raw value of a stored attribute.
	// A nil result is an absent value.
	ReadAttribute(name string) *string

	// WriteAttribute stores the raw value of an attribute and does nothing else.
	WriteAttribute(name string, value *string)

	// Invoke calls the named zero-argument method and returns its result.
	Invoke(method string) (any, error)
}
