package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"sort"
	"unicode"
)

const (
	xmlRootTag = "response"
	xmlItemTag = "item"
)

// xmlEncoder renders any JSON-marshalable value as an element tree. The
// value is first reduced to its JSON shape so struct tags and custom
// marshalers apply the same way they do for JSON. Object keys become
// element names (sorted); list entries and keys that are not valid XML
// names become <item> elements.
type xmlEncoder struct{}

func (xmlEncoder) ContentType() string {
	return "application/xml; charset=UTF-8"
}

func (xmlEncoder) Encode(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err = dec.Decode(&tree); err != nil {
		return err
	}

	if _, err = io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if err = writeXMLElement(enc, xmlRootTag, tree); err != nil {
		return err
	}
	if err = enc.Flush(); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func writeXMLElement(enc *xml.Encoder, name string, v any) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			tag := k
			if !isXMLName(k) {
				tag = xmlItemTag
			}
			if err := writeXMLElement(enc, tag, t[k]); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range t {
			if err := writeXMLElement(enc, xmlItemTag, item); err != nil {
				return err
			}
		}
	case bool:
		if err := enc.EncodeToken(xml.CharData(boolText(t))); err != nil {
			return err
		}
	case json.Number:
		if err := enc.EncodeToken(xml.CharData(t.String())); err != nil {
			return err
		}
	case string:
		if err := enc.EncodeToken(xml.CharData(t)); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func isXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.') {
			continue
		}
		return false
	}
	return true
}
