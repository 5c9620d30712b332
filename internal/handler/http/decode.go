package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// decodeBody decodes the request payload into v by its Content-Type. A
// missing Content-Type is read as JSON.
func decodeBody(r *http.Request, v any) error {
	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fault.UnsupportedMediaType(ct).WithErr(err)
		}
		mediaType = parsed
	}

	if mediaType == "application/x-www-form-urlencoded" {
		return decodeForm(r, v)
	}

	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyRequestBody
	}

	var err error
	switch mediaType {
	case "application/json", "text/json":
		err = json.NewDecoder(r.Body).Decode(v)
	case "application/yaml", "application/x-yaml", "text/yaml":
		err = yaml.NewDecoder(r.Body).Decode(v)
	case "application/cbor":
		err = cbor.NewDecoder(r.Body).Decode(v)
	default:
		return fault.UnsupportedMediaType(mediaType)
	}

	if errors.Is(err, io.EOF) {
		return ErrEmptyRequestBody
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// decodeForm maps the first value of every form field onto the JSON field
// of the same name.
func decodeForm(r *http.Request, v any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	fields := make(map[string]string, len(r.PostForm))
	for name, values := range r.PostForm {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}
