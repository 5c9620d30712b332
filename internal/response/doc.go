// Package response builds the {status, error, data} envelope returned by
// every API endpoint and provides the pagination primitives and the
// buffered response writer the rest of the HTTP layer relies on.
package response
