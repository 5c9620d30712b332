// Package serializer converts action results into the plain maps, lists and
// scalars handed to the response encoders.
//
// Resources that render themselves (Arrayable) honor the fields and expand
// query parameters. Resources carrying validation errors turn into a list
// of field errors and switch the response status to 422. Paged collections
// are either wrapped together with their pagination metadata or returned
// bare with the metadata moved into X-Pagination-* and Link headers.
package serializer
