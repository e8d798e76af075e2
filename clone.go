package maskable

// Cloner allows host types to provide deep copy logic for Send.
//
// Send writes rendered values into a copy of the host so the host itself
// keeps its raw templates. Without Cloner the copy is a shallow struct copy,
// which is enough when maskable attributes are plain string or *string
// fields. Host types keep attributes in storage a shallow copy would share,
// so Send refuses them with ErrNoCloner unless they implement Cloner:
//
//	func (h Hickwell) Clone() Hickwell {
//	    attrs := maps.Clone(h.attrs)
//	    return Hickwell{attrs: attrs}
//	}
type Cloner[T any] interface {
	Clone() T
}

// hasCloner reports whether T or *T implements Cloner[T].
func hasCloner[T any]() bool {
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		return true
	}
	_, ok := any(&zero).(Cloner[T])
	return ok
}

// clone copies host for Send.
func clone[T any](host *T) *T {
	if c, ok := any(*host).(Cloner[T]); ok {
		v := c.Clone()
		return &v
	}
	if c, ok := any(host).(Cloner[T]); ok {
		v := c.Clone()
		return &v
	}
	v := *host
	return &v
}
