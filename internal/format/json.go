package format

import (
	"encoding/json"
	"io"
)

type jsonEncoder struct{}

func (jsonEncoder) ContentType() string {
	return "application/json; charset=UTF-8"
}

func (jsonEncoder) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
