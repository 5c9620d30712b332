package serializer

import (
	"fmt"
	"reflect"
	"strings"
)

// structToMap converts the exported fields of a struct into a map keyed the
// way encoding/json would name them. Embedded structs without a tag are
// flattened; "-" fields are skipped; omitempty is honored.
func structToMap(rv reflect.Value) map[string]any {
	out := make(map[string]any, rv.NumField())
	collectFields(rv, out)
	return out
}

func collectFields(rv reflect.Value, out map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		fv := rv.Field(i)

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		if sf.Anonymous && name == "" {
			embedded := fv
			if embedded.Kind() == reflect.Pointer {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, out)
				continue
			}
		}
		if !sf.IsExported() || !fv.CanInterface() {
			continue
		}

		if name == "" {
			name = sf.Name
		}
		if hasOption(opts, "omitempty") && isEmptyValue(fv) {
			continue
		}
		out[name] = fv.Interface()
	}
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var name string
		name, opts, _ = strings.Cut(opts, ",")
		if name == option {
			return true
		}
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
