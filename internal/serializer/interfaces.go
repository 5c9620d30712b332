package serializer

import (
	"net/http"

	"github.com/MKhiriev/go-rest-kit/internal/response"
)

// Arrayable is a resource that renders itself into a field map.
type Arrayable interface {
	// Fields returns the default fields exposed by the resource.
	Fields() []string
	// ToMap renders the selected fields plus the expanded relations.
	ToMap(fields, expand []string, recursive bool) map[string]any
}

// RelationLoader is a resource that knows which relations were loaded
// together with it. Loaded relations are always expanded.
type RelationLoader interface {
	RelatedRecords() map[string]any
}

// Validatable is a resource that carries validation errors.
type Validatable interface {
	HasErrors() bool
	FirstErrors() map[string]string
}

// DataProvider is a paged collection source.
type DataProvider interface {
	Models() []any
	// Keys names the models when keys are preserved. A nil result means
	// the models are keyed by position.
	Keys() []string
	Pagination() (response.PageSource, bool)
}

// Response is the part of the outgoing response the serializer writes to.
type Response interface {
	Header() http.Header
	SetStatus(code int)
}
