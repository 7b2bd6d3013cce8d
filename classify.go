package ipfmt

import (
	"reflect"
	"strings"
)

// Kind is the category a static type resolves to.
type Kind int

const (
	KindInvalid Kind = iota
	KindInteger
	KindText
	KindSequence
	KindTuple
)

// String returns the category name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindTuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// Classify mirrors the constructors' static dispatch over a
// reflect.Type, for introspection and diagnostics. Precedence follows
// the constructor set: exact scalar shapes first (integer, text), then
// sequence shapes, then tuples; a struct is a tuple only when it has at
// least one field and every field carries the first field's type.
// Classify never gates rendering — the type checker is the authority,
// and a KindInvalid type has no constructor to call in the first place.
func Classify(t reflect.Type) Kind {
	if t == nil {
		return KindInvalid
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return KindInteger
	case reflect.Bool:
		// Integral-like, never a byte sequence.
		return KindInvalid
	case reflect.String:
		return KindText
	case reflect.Slice:
		return KindSequence
	case reflect.Pointer:
		if isListType(t.Elem()) {
			return KindSequence
		}
	case reflect.Struct:
		if isListType(t) {
			return KindSequence
		}
		if t.NumField() >= 1 && uniformFields(t) {
			return KindTuple
		}
	}
	return KindInvalid
}

// Supported reports whether T resolves to an accepted category.
func Supported[T any]() bool {
	return Classify(reflect.TypeFor[T]()) != KindInvalid
}

// uniformFields folds over the field list, short-circuiting on the
// first type mismatch. A single field is vacuously uniform.
func uniformFields(t reflect.Type) bool {
	first := t.Field(0).Type
	for i := 1; i < t.NumField(); i++ {
		if t.Field(i).Type != first {
			return false
		}
	}
	return true
}

var listPkgPath = reflect.TypeFor[List[int]]().PkgPath()

// isListType matches any instantiation of [List]. Instantiated generic
// types surface in reflect with names like "List[int]".
func isListType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == listPkgPath &&
		strings.HasPrefix(t.Name(), "List[")
}
