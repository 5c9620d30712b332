package models

// arrayable is the local view of resources that can render themselves into
// a field map. It mirrors the serializer's capability without importing it.
type arrayable interface {
	Fields() []string
	ToMap(fields, expand []string, recursive bool) map[string]any
}

// pick builds the outgoing field map of a resource.
//
// all holds every default field, extra holds expandable fields keyed by
// name. Unknown names in fields or expand are ignored. An empty fields list
// selects every default field.
func pick(all map[string]any, order []string, extra map[string]any, fields, expand []string, recursive bool) map[string]any {
	out := make(map[string]any, len(order))

	if len(fields) == 0 {
		fields = order
	}
	for _, name := range fields {
		if v, ok := all[name]; ok {
			out[name] = v
		}
	}

	for _, name := range expand {
		v, ok := extra[name]
		if !ok {
			continue
		}
		if nested, isArrayable := v.(arrayable); isArrayable && recursive {
			out[name] = nested.ToMap(nested.Fields(), nil, true)
			continue
		}
		out[name] = v
	}

	return out
}
