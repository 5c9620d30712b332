// Package http implements the HTTP transport layer of the application.
//
// Requests are served by controllers. A controller runs every action
// through the same stages: content negotiation, the verb filter, the rate
// limiter, the access gate, the action itself, serialization and encoding.
// Failures from any stage are converted to faults and written by the error
// renderer. Cross-cutting concerns such as request tracing, access logging
// and response compression are handled by middleware in this package.
package http
