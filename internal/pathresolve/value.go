package pathresolve

import (
	"reflect"
	"strings"
)

// Kind tags the shape of a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindScalar
	KindRecord
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRecord:
		return "record"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "absent"
	}
}

// Record is implemented by types that expose named members.
//
// Field reports the member called name and whether such a member exists. A member that
// exists but holds nil is reported as (nil, true); the resolver treats it as absent.
type Record interface {
	Field(name string) (any, bool)
}

// Mapping is implemented by string-keyed containers with dynamic keys.
type Mapping interface {
	Key(key string) (any, bool)
}

// Sequence is implemented by ordered containers.
type Sequence interface {
	Len() int
	Index(i int) any
}

// Value is the datum the resolver is currently positioned on. Exactly one of the
// capability fields is set, matching kind.
type Value struct {
	kind    Kind
	raw     any
	record  Record
	mapping Mapping
	seq     Sequence
}

// Kind returns the shape tag of v.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the underlying Go value, or nil when v is absent.
func (v Value) Interface() any { return v.raw }

// IsAbsent reports whether v holds no value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// ValueOf classifies x.
//
// Classification order:
//   - nil or a nil pointer/interface/map/slice: absent.
//   - Mapping implementations, then string-keyed Go maps (even with a Field method): mapping.
//   - Record implementations: record.
//   - Sequence implementations, then Go slices and arrays: sequence.
//   - Non-nil pointers are dereferenced and classified again.
//   - Structs: record, read by exported or promoted field name or JSON tag name.
//   - Everything else: scalar.
func ValueOf(x any) Value {
	if x == nil {
		return Value{}
	}
	rv := reflect.ValueOf(x)
	if isNil(rv) {
		return Value{}
	}

	switch t := x.(type) {
	case Mapping:
		return Value{kind: KindMapping, raw: x, mapping: t}
	case map[string]any:
		return Value{kind: KindMapping, raw: x, mapping: anyMap(t)}
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return Value{kind: KindMapping, raw: x, mapping: reflectMap{rv}}
	}

	switch t := x.(type) {
	case Record:
		return Value{kind: KindRecord, raw: x, record: t}
	case Sequence:
		return Value{kind: KindSequence, raw: x, seq: t}
	case []any:
		return Value{kind: KindSequence, raw: x, seq: anySlice(t)}
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Value{kind: KindSequence, raw: x, seq: reflectSeq{rv}}
	case reflect.Pointer, reflect.Interface:
		return ValueOf(rv.Elem().Interface())
	case reflect.Struct:
		return Value{kind: KindRecord, raw: x, record: reflectStruct{rv}}
	default:
		return Value{kind: KindScalar, raw: x}
	}
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// lookup reads name from v through its mapping or record capability.
// An empty name never resolves.
func (v Value) lookup(name string) Value {
	if name == "" {
		return Value{}
	}
	switch v.kind {
	case KindMapping:
		if x, ok := v.mapping.Key(name); ok {
			return ValueOf(x)
		}
	case KindRecord:
		if x, ok := v.record.Field(name); ok {
			return ValueOf(x)
		}
	}
	return Value{}
}

// index reads element i from v when v is a sequence.
func (v Value) index(i int) Value {
	if v.kind != KindSequence || i < 0 || i >= v.seq.Len() {
		return Value{}
	}
	return ValueOf(v.seq.Index(i))
}

type anyMap map[string]any

func (m anyMap) Key(key string) (any, bool) {
	x, ok := m[key]
	return x, ok
}

type anySlice []any

func (s anySlice) Len() int        { return len(s) }
func (s anySlice) Index(i int) any { return s[i] }

type reflectMap struct{ rv reflect.Value }

func (m reflectMap) Key(key string) (any, bool) {
	k := reflect.ValueOf(key).Convert(m.rv.Type().Key())
	x := m.rv.MapIndex(k)
	if !x.IsValid() {
		return nil, false
	}
	return x.Interface(), true
}

type reflectSeq struct{ rv reflect.Value }

func (s reflectSeq) Len() int        { return s.rv.Len() }
func (s reflectSeq) Index(i int) any { return s.rv.Index(i).Interface() }

// reflectStruct reads exported fields of arbitrary structs, including fields promoted
// from embedded structs. A field matches when its Go name or its JSON tag name equals
// the requested name exactly; the shallowest match wins.
type reflectStruct struct{ rv reflect.Value }

func (s reflectStruct) Field(name string) (any, bool) {
	if name == "" {
		return nil, false
	}
	var (
		best  []int
		found bool
	)
	for _, f := range reflect.VisibleFields(s.rv.Type()) {
		if !f.IsExported() {
			continue
		}
		if f.Name != name && jsonName(f) != name {
			continue
		}
		if !found || len(f.Index) < len(best) {
			best, found = f.Index, true
		}
	}
	if !found {
		return nil, false
	}
	fv, err := s.rv.FieldByIndexErr(best)
	if err != nil {
		// promoted through a nil embedded pointer
		return nil, true
	}
	if !fv.CanInterface() {
		return nil, false
	}
	return fv.Interface(), true
}

func jsonName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
