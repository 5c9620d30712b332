package format

import (
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// DefaultFormatParam is the query parameter that overrides Accept.
const DefaultFormatParam = "_format"

var mediaTypes = map[string]Format{
	"application/json":   JSON,
	"text/json":          JSON,
	"application/xml":    XML,
	"text/xml":           XML,
	"application/yaml":   YAML,
	"application/x-yaml": YAML,
	"text/yaml":          YAML,
	"application/cbor":   CBOR,
	"text/html":          HTML,
	"text/plain":         Raw,
}

// Negotiator picks a response format from the request.
type Negotiator struct {
	// Formats lists the supported formats in order of preference. The
	// first entry answers wildcard and missing Accept headers.
	Formats []Format

	// Param names the query parameter that forces a format. Empty
	// disables the override.
	Param string
}

// NewNegotiator returns a negotiator for the given formats, defaulting to
// JSON and XML.
func NewNegotiator(formats ...Format) *Negotiator {
	if len(formats) == 0 {
		formats = []Format{JSON, XML}
	}
	return &Negotiator{Formats: formats, Param: DefaultFormatParam}
}

// Negotiate returns the format to answer r with, or ErrNotAcceptable.
func (n *Negotiator) Negotiate(r *http.Request) (Format, error) {
	if n.Param != "" {
		if forced := r.URL.Query().Get(n.Param); forced != "" {
			f := Format(strings.ToLower(forced))
			if n.supports(f) {
				return f, nil
			}
			return "", ErrNotAcceptable
		}
	}

	accept := strings.TrimSpace(r.Header.Get("Accept"))
	if accept == "" {
		return n.Formats[0], nil
	}

	for _, rng := range parseAccept(accept) {
		if rng.mediaType == "*/*" {
			return n.Formats[0], nil
		}
		if strings.HasSuffix(rng.mediaType, "/*") {
			prefix := strings.TrimSuffix(rng.mediaType, "*")
			for _, f := range n.Formats {
				if strings.HasPrefix(mediaTypeOf(f), prefix) {
					return f, nil
				}
			}
			continue
		}
		if f, ok := mediaTypes[rng.mediaType]; ok && n.supports(f) {
			return f, nil
		}
	}
	return "", ErrNotAcceptable
}

func (n *Negotiator) supports(f Format) bool {
	for _, s := range n.Formats {
		if s == f {
			return true
		}
	}
	return false
}

func mediaTypeOf(f Format) string {
	mt, _, _ := mime.ParseMediaType(MustEncoder(f).ContentType())
	return mt
}

type acceptRange struct {
	mediaType string
	q         float64
}

// parseAccept returns the acceptable ranges of an Accept header, most
// preferred first. Ranges with q=0 are dropped.
func parseAccept(header string) []acceptRange {
	var ranges []acceptRange
	for _, part := range strings.Split(header, ",") {
		mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		q := 1.0
		if raw, ok := params["q"]; ok {
			if q, err = strconv.ParseFloat(raw, 64); err != nil {
				continue
			}
		}
		if q <= 0 {
			continue
		}
		ranges = append(ranges, acceptRange{mediaType: mt, q: q})
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].q != ranges[j].q {
			return ranges[i].q > ranges[j].q
		}
		return specificity(ranges[i].mediaType) > specificity(ranges[j].mediaType)
	})
	return ranges
}

func specificity(mediaType string) int {
	switch {
	case mediaType == "*/*":
		return 0
	case strings.HasSuffix(mediaType, "/*"):
		return 1
	default:
		return 2
	}
}
