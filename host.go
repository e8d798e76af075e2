package maskable

import (
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

// errorType is the reflected error interface, used to recognize (X, error) methods.
var errorType = reflect.TypeFor[error]()

// attributeField locates a stored string attribute on a struct host.
type attributeField struct {
	name     string // Go field name
	index    []int  // reflect.Value.FieldByIndex access path
	nullable bool   // true for *string, false for string
	tag      string // raw mask tag value
	tagged   bool   // true when the field carries a mask tag
	promoted bool   // true when reached through an embedded struct
}

// member is the target of a method resolver on a struct host.
type member struct {
	method int   // method index on *T, or -1
	field  []int // field index path when method < 0
}

// typePlan describes how to access attributes and members of host type T.
// It is built once per schema and never mutated afterwards.
type typePlan struct {
	typeName   string
	override   bool                      // *T implements Host
	attributes map[string]attributeField // keyed by Go field name
	order      []string                  // attribute names in field order
	fields     map[string][]int          // every exported field, any type
	methods    map[string]reflect.Method // zero-argument methods on *T
	hostNames  map[string]bool           // Host.AttributeNames, override only
	members    map[string]member         // resolved method resolvers
	mistagged  []string                  // mask-tagged fields that are not strings
}

// buildTypePlan inspects T once, through Host when *T implements it,
// otherwise through sentinel struct metadata.
func buildTypePlan[T any]() (*typePlan, error) {
	rt := reflect.TypeFor[T]()
	plan := &typePlan{
		typeName:   typeName(rt),
		attributes: make(map[string]attributeField),
		fields:     make(map[string][]int),
		methods:    make(map[string]reflect.Method),
		members:    make(map[string]member),
	}

	var zero T
	if h, ok := any(&zero).(Host); ok {
		plan.override = true
		plan.hostNames = make(map[string]bool)
		for _, name := range h.AttributeNames() {
			plan.hostNames[name] = true
			plan.order = append(plan.order, name)
		}
		return plan, nil
	}

	if rt.Kind() != reflect.Struct {
		return nil, newConfigError(ErrUnsupportedType, plan.typeName, "", "")
	}

	spec := sentinel.Scan[T]()
	plan.collectFields(rt, spec, nil, false)

	pt := reflect.PointerTo(rt)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		// Func includes the receiver.
		if m.Type.NumIn() != 1 || !validResults(m.Type) {
			continue
		}
		plan.methods[m.Name] = m
	}

	return plan, nil
}

// typeName is the short name of rt, or its full form for unnamed types.
func typeName(rt reflect.Type) string {
	if name := rt.Name(); name != "" {
		return name
	}
	return rt.String()
}

// collectFields indexes string attributes and exported fields, breadth first
// so that shallower fields shadow promoted ones the way Go selectors do.
func (p *typePlan) collectFields(rt reflect.Type, spec sentinel.Metadata, parentIndex []int, promoted bool) {
	var embedded []sentinel.FieldMetadata
	var embeddedIndex [][]int

	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)

		if field.Kind == sentinel.KindStruct && rt.FieldByIndex(fullIndex).Anonymous {
			embedded = append(embedded, field)
			embeddedIndex = append(embeddedIndex, fullIndex)
			continue
		}

		if _, ok := p.fields[field.Name]; ok {
			continue
		}
		p.fields[field.Name] = fullIndex

		ft := field.ReflectType
		isString := ft.Kind() == reflect.String
		isNullable := ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.String
		if !isString && !isNullable {
			if _, tagged := field.Tags[maskTag]; tagged && !promoted {
				p.mistagged = append(p.mistagged, field.Name)
			}
			continue
		}

		tag, tagged := field.Tags[maskTag]
		p.attributes[field.Name] = attributeField{
			name:     field.Name,
			index:    fullIndex,
			nullable: isNullable,
			tag:      tag,
			tagged:   tagged,
			promoted: promoted,
		}
		p.order = append(p.order, field.Name)
	}

	for i, field := range embedded {
		if nested := scanNestedType(field.ReflectType); nested != nil {
			p.collectFields(rt, *nested, embeddedIndex[i], true)
		}
	}
}

// scanNestedType scans an embedded struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        make(map[string]string),
		}
		if val, ok := sf.Tag.Lookup(maskTag); ok {
			fm.Tags[maskTag] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// validResults accepts methods returning X or (X, error).
func validResults(ft reflect.Type) bool {
	switch ft.NumOut() {
	case 1:
		return true
	case 2:
		return ft.Out(1) == errorType
	default:
		return false
	}
}

// attribute resolves a declared attribute name to its canonical name.
// Exact matches win; otherwise names compare case-insensitively.
func (p *typePlan) attribute(name string) (string, bool) {
	if p.override {
		return lookupName(p.hostNames, name)
	}
	return lookupName(p.attributes, name)
}

// bindMember resolves a method resolver name against T and records it.
// Override hosts are resolved at call time.
func (p *typePlan) bindMember(name string) error {
	if p.override {
		return nil
	}
	if _, ok := p.members[name]; ok {
		return nil
	}
	if key, ok := lookupName(p.methods, name); ok {
		p.members[name] = member{method: p.methods[key].Index}
		return nil
	}
	if key, ok := lookupName(p.fields, name); ok {
		p.members[name] = member{method: -1, field: p.fields[key]}
		return nil
	}
	return ErrUnknownMethod
}

// lookupName finds name in m, exactly or else case-insensitively.
// When several keys differ from name only in case, the smallest wins.
func lookupName[V any](m map[string]V, name string) (string, bool) {
	if _, ok := m[name]; ok {
		return name, true
	}
	var found string
	for key := range m {
		if strings.EqualFold(key, name) && (found == "" || key < found) {
			found = key
		}
	}
	return found, found != ""
}

// hostAccess reads, writes, and invokes members of one host instance.
type hostAccess interface {
	read(attribute string) *string
	write(attribute string, value *string)
	invoke(method string) (any, error)
}

// newHostAccess returns the accessor for host under plan.
func newHostAccess[T any](plan *typePlan, host *T) hostAccess {
	if plan.override {
		return overrideHost{host: any(host).(Host)}
	}
	return reflectHost{plan: plan, ptr: reflect.ValueOf(host)}
}

// reflectHost accesses struct fields and methods by reflection.
type reflectHost struct {
	plan *typePlan
	ptr  reflect.Value
}

func (h reflectHost) read(attribute string) *string {
	af := h.plan.attributes[attribute]
	fv := h.ptr.Elem().FieldByIndex(af.index)
	if af.nullable {
		if fv.IsNil() {
			return nil
		}
		s := fv.Elem().String()
		return &s
	}
	s := fv.String()
	return &s
}

func (h reflectHost) write(attribute string, value *string) {
	af := h.plan.attributes[attribute]
	fv := h.ptr.Elem().FieldByIndex(af.index)
	if af.nullable {
		if value == nil {
			fv.Set(reflect.Zero(fv.Type()))
			return
		}
		s := *value
		fv.Set(reflect.ValueOf(&s).Convert(fv.Type()))
		return
	}
	if value == nil {
		fv.SetString("")
		return
	}
	fv.SetString(*value)
}

func (h reflectHost) invoke(method string) (any, error) {
	m, ok := h.plan.members[method]
	if !ok {
		return nil, ErrUnknownMethod
	}
	if m.method < 0 {
		return h.ptr.Elem().FieldByIndex(m.field).Interface(), nil
	}
	out := h.ptr.Method(m.method).Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// overrideHost delegates to a Host implementation.
type overrideHost struct {
	host Host
}

func (h overrideHost) read(attribute string) *string {
	return h.host.ReadAttribute(attribute)
}

func (h overrideHost) write(attribute string, value *string) {
	h.host.WriteAttribute(attribute, value)
}

func (h overrideHost) invoke(method string) (any, error) {
	return h.host.Invoke(method)
}

// isNilPointer reports whether v holds a nil pointer-like value.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
