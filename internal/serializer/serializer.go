// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rest-kit/internal/response"
	"github.com/MKhiriev/go-rest-kit/models"
)

// Pagination headers written for collections served without an envelope.
const (
	HeaderTotalCount  = "X-Pagination-Total-Count"
	HeaderPageCount   = "X-Pagination-Page-Count"
	HeaderCurrentPage = "X-Pagination-Current-Page"
	HeaderPerPage     = "X-Pagination-Per-Page"
)

// Options configures a Serializer.
type Options struct {
	// CollectionEnvelope names the key holding the models of a paged
	// collection. Empty returns the models unwrapped and moves the
	// pagination metadata into response headers.
	CollectionEnvelope string

	// MetaEnvelope names the key holding the pagination metadata.
	MetaEnvelope string

	// PreserveKeys serializes collections as maps keyed by the provider's
	// keys instead of dense lists.
	PreserveKeys bool

	// FieldsParam and ExpandParam name the query parameters that narrow
	// the rendered fields and request extra relations.
	FieldsParam string
	ExpandParam string
}

// DefaultOptions returns options with the conventional parameter names and
// no collection envelope.
func DefaultOptions() Options {
	return Options{
		MetaEnvelope: response.MetaKey,
		FieldsParam:  "fields",
		ExpandParam:  "expand",
	}
}

// Serializer turns action results into plain maps, lists and scalars that
// every response encoder understands. A serializer is bound to one request.
type Serializer struct {
	opts     Options
	request  *http.Request
	response Response
}

// New returns a serializer for a single request/response pair.
func New(opts Options, r *http.Request, w Response) *Serializer {
	if opts.MetaEnvelope == "" {
		opts.MetaEnvelope = response.MetaKey
	}
	return &Serializer{opts: opts, request: r, response: w}
}

// Serialize replaces the payload of content with its serialized form.
// Envelopes without a payload are returned unchanged.
func (s *Serializer) Serialize(content models.Envelope) models.Envelope {
	if isEmpty(content.Data) {
		return content
	}
	content.Data = s.SerializeValue(content.Data)
	return content
}

// SerializeValue serializes any value. Unrecognized values are returned as
// is.
func (s *Serializer) SerializeValue(v any) any {
	switch classify(v) {
	case KindValidated:
		return s.serializeModelErrors(v.(Validatable))
	case KindArrayable:
		return s.serializeModel(v.(Arrayable))
	case KindPaged:
		return s.serializeDataProvider(v.(DataProvider))
	case KindObject:
		return s.serializeMapping(structToMap(indirect(reflect.ValueOf(v))))
	case KindMapping:
		return s.serializeReflectedMap(indirect(reflect.ValueOf(v)))
	case KindSequence:
		return s.serializeSequence(indirect(reflect.ValueOf(v)))
	default:
		return v
	}
}

func (s *Serializer) serializeModel(m Arrayable) any {
	if s.request.Method == http.MethodHead {
		return nil
	}

	fields, expand := s.requestedFields()
	if len(fields) == 0 {
		fields = m.Fields()
	}
	if loader, ok := m.(RelationLoader); ok {
		expand = mergeNames(expand, keysOf(loader.RelatedRecords()))
	}

	return s.serializeMapping(m.ToMap(fields, expand, true))
}

func (s *Serializer) serializeModelErrors(m Validatable) []models.FieldError {
	s.response.SetStatus(http.StatusUnprocessableEntity)

	first := m.FirstErrors()
	result := make([]models.FieldError, 0, len(first))
	for _, field := range keysOf(first) {
		result = append(result, models.FieldError{Field: field, Message: first[field]})
	}
	return result
}

func (s *Serializer) serializeDataProvider(p DataProvider) any {
	items := p.Models()

	var serialized any
	if s.opts.PreserveKeys {
		keys := p.Keys()
		keyed := make(map[string]any, len(items))
		for i, item := range items {
			key := strconv.Itoa(i)
			if i < len(keys) {
				key = keys[i]
			}
			keyed[key] = s.serializeCollectionItem(item)
		}
		serialized = keyed
	} else {
		dense := make([]any, 0, len(items))
		for _, item := range items {
			dense = append(dense, s.serializeCollectionItem(item))
		}
		serialized = dense
	}

	pager, paged := p.Pagination()
	if s.opts.CollectionEnvelope == "" {
		if paged {
			s.addPaginationHeaders(pager)
		}
		if s.request.Method == http.MethodHead {
			return nil
		}
		return serialized
	}

	if s.request.Method == http.MethodHead {
		return nil
	}
	result := map[string]any{s.opts.CollectionEnvelope: serialized}
	if paged {
		result[s.opts.MetaEnvelope] = response.PageInfoFrom(pager)
	}
	return result
}

func (s *Serializer) serializeCollectionItem(item any) any {
	if m, ok := item.(Arrayable); ok {
		return s.serializeModel(m)
	}
	return s.SerializeValue(item)
}

func (s *Serializer) addPaginationHeaders(p response.PageSource) {
	info := response.PageInfoFrom(p)

	h := s.response.Header()
	h.Set(HeaderTotalCount, strconv.Itoa(info.TotalCount))
	h.Set(HeaderPageCount, strconv.Itoa(info.PageCount))
	h.Set(HeaderCurrentPage, strconv.Itoa(info.CurrentPage))
	h.Set(HeaderPerPage, strconv.Itoa(info.PerPage))

	links := response.Links(p, absoluteURL(s.request))
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, "<"+link.URL+">; rel="+link.Rel)
	}
	h.Set("Link", strings.Join(parts, ", "))
}

func (s *Serializer) serializeMapping(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = s.SerializeValue(v)
	}
	return m
}

func (s *Serializer) serializeReflectedMap(rv reflect.Value) map[string]any {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[mapKey(iter.Key())] = s.SerializeValue(iter.Value().Interface())
	}
	return out
}

func (s *Serializer) serializeSequence(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = s.SerializeValue(rv.Index(i).Interface())
	}
	return out
}

// requestedFields reads the comma-separated fields and expand query
// parameters.
func (s *Serializer) requestedFields() (fields, expand []string) {
	q := s.request.URL.Query()
	if s.opts.FieldsParam != "" {
		fields = splitNames(q.Get(s.opts.FieldsParam))
	}
	if s.opts.ExpandParam != "" {
		expand = splitNames(q.Get(s.opts.ExpandParam))
	}
	return fields, expand
}

func splitNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func mergeNames(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, name := range append(append([]string(nil), a...), b...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func absoluteURL(r *http.Request) *url.URL {
	u := *r.URL
	if u.Host == "" {
		u.Host = r.Host
	}
	if u.Scheme == "" {
		u.Scheme = "http"
		if r.TLS != nil {
			u.Scheme = "https"
		}
	}
	return &u
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
