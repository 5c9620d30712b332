// Package format holds the response encoders and the content negotiation
// that picks one of them for a request.
package format

import (
	"context"
	"fmt"
	"io"
)

// Format names a response representation.
type Format string

const (
	JSON Format = "json"
	XML  Format = "xml"
	YAML Format = "yaml"
	CBOR Format = "cbor"
	HTML Format = "html"
	Raw  Format = "raw"
)

// Encoder writes a value in one representation.
type Encoder interface {
	ContentType() string
	Encode(w io.Writer, v any) error
}

var encoders = map[Format]Encoder{
	JSON: jsonEncoder{},
	XML:  xmlEncoder{},
	YAML: yamlEncoder{},
	CBOR: cborEncoder{},
	HTML: htmlEncoder{},
	Raw:  rawEncoder{},
}

// EncoderFor returns the encoder registered for f.
func EncoderFor(f Format) (Encoder, error) {
	enc, ok := encoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return enc, nil
}

// MustEncoder is EncoderFor for formats known to be registered. It falls
// back to JSON.
func MustEncoder(f Format) Encoder {
	if enc, ok := encoders[f]; ok {
		return enc
	}
	return encoders[JSON]
}

type ctxKey struct{}

// WithFormat stores the negotiated format in ctx.
func WithFormat(ctx context.Context, f Format) context.Context {
	return context.WithValue(ctx, ctxKey{}, f)
}

// FromContext returns the negotiated format, JSON when none was stored.
func FromContext(ctx context.Context) Format {
	if f, ok := ctx.Value(ctxKey{}).(Format); ok {
		return f
	}
	return JSON
}
