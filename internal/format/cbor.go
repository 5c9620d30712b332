package format

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborMode uses Core Deterministic Encoding: sorted map keys and the
// smallest integer encoding. Times are written as RFC 3339 strings so the
// payload matches the JSON representation.
var cborMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339
	opts.TimeTag = cbor.EncTagNone
	opts.TextMarshaler = cbor.TextMarshalerTextString

	var err error
	cborMode, err = opts.EncMode()
	if err != nil {
		panic("format: CBOR encoder initialization failed: " + err.Error())
	}
}

type cborEncoder struct{}

func (cborEncoder) ContentType() string {
	return "application/cbor"
}

func (cborEncoder) Encode(w io.Writer, v any) error {
	return cborMode.NewEncoder(w).Encode(v)
}
