package serializer

import (
	"encoding"
	"encoding/json"
	"reflect"
)

// Kind is the shape a value is serialized as.
type Kind int

const (
	KindScalar Kind = iota
	KindValidated
	KindArrayable
	KindPaged
	KindObject
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindValidated:
		return "validated"
	case KindArrayable:
		return "arrayable"
	case KindPaged:
		return "paged"
	case KindObject:
		return "object"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// classify decides how v is serialized. Capabilities win over the
// reflected shape; values that marshal themselves stay scalars.
func classify(v any) Kind {
	if v == nil {
		return KindScalar
	}

	if m, ok := v.(Validatable); ok && m.HasErrors() {
		return KindValidated
	}
	if _, ok := v.(Arrayable); ok {
		return KindArrayable
	}
	if _, ok := v.(DataProvider); ok {
		return KindPaged
	}
	if _, ok := v.(json.Marshaler); ok {
		return KindScalar
	}
	if _, ok := v.(encoding.TextMarshaler); ok {
		return KindScalar
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return KindScalar
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return KindObject
	case reflect.Map:
		return KindMapping
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindScalar
		}
		return KindSequence
	case reflect.Array:
		return KindSequence
	default:
		return KindScalar
	}
}
