package format

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
)

// htmlEncoder writes strings verbatim, so callers can hand it a rendered
// page. Any other value is shown as indented JSON inside <pre>.
type htmlEncoder struct{}

func (htmlEncoder) ContentType() string {
	return "text/html; charset=UTF-8"
}

func (htmlEncoder) Encode(w io.Writer, v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		_, err := io.WriteString(w, t)
		return err
	case []byte:
		_, err := w.Write(t)
		return err
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "<pre>"+html.EscapeString(string(b))+"</pre>")
	return err
}

type rawEncoder struct{}

func (rawEncoder) ContentType() string {
	return "text/plain; charset=UTF-8"
}

func (rawEncoder) Encode(w io.Writer, v any) error {
	var err error
	switch t := v.(type) {
	case nil:
	case string:
		_, err = io.WriteString(w, t)
	case []byte:
		_, err = w.Write(t)
	default:
		_, err = fmt.Fprint(w, t)
	}
	return err
}
