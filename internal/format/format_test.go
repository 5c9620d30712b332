package format

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleEnvelope() models.Envelope {
	return models.Envelope{
		Data: map[string]any{
			"title": "Hello <world>",
			"id":    7,
			"tags":  []any{"a", "b"},
		},
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustEncoder(JSON).Encode(&buf, sampleEnvelope()))

	assert.JSONEq(t, `{"status":0,"error":"","data":{"id":7,"tags":["a","b"],"title":"Hello <world>"}}`, buf.String())
	assert.Contains(t, buf.String(), "<world>", "html must not be escaped")
}

func TestXMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustEncoder(XML).Encode(&buf, sampleEnvelope()))

	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<response><data><id>7</id><tags><item>a</item><item>b</item></tags><title>Hello &lt;world&gt;</title></data><error></error><status>0</status></response>` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestXMLEncoder_InvalidNamesAndScalars(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"1": true, "ok": false, "none": nil}
	require.NoError(t, MustEncoder(XML).Encode(&buf, v))

	assert.Contains(t, buf.String(), "<item>true</item>")
	assert.Contains(t, buf.String(), "<ok>false</ok>")
	assert.Contains(t, buf.String(), "<none></none>")
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustEncoder(YAML).Encode(&buf, sampleEnvelope()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 0, got["status"])
	assert.Equal(t, "Hello <world>", got["data"].(map[string]any)["title"])
}

func TestCBOREncoder_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, MustEncoder(CBOR).Encode(&first, sampleEnvelope()))
	require.NoError(t, MustEncoder(CBOR).Encode(&second, sampleEnvelope()))
	assert.Equal(t, first.Bytes(), second.Bytes())

	var got map[string]any
	require.NoError(t, cbor.Unmarshal(first.Bytes(), &got))
	assert.Equal(t, "", got["error"])
}

func TestCBOREncoder_TimeAsRFC3339(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, MustEncoder(CBOR).Encode(&buf, map[string]any{"at": ts}))

	var got map[string]any
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2026-01-02T03:04:05Z", got["at"])
}

func TestHTMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustEncoder(HTML).Encode(&buf, "<h1>ok</h1>"))
	assert.Equal(t, "<h1>ok</h1>", buf.String())

	buf.Reset()
	require.NoError(t, MustEncoder(HTML).Encode(&buf, map[string]any{"a": "<b>"}))
	assert.True(t, strings.HasPrefix(buf.String(), "<pre>"))
	assert.Contains(t, buf.String(), "&lt;b&gt;")
}

func TestRawEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustEncoder(Raw).Encode(&buf, "Not Found: missing"))
	assert.Equal(t, "Not Found: missing", buf.String())

	buf.Reset()
	require.NoError(t, MustEncoder(Raw).Encode(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestEncoderFor_Unknown(t *testing.T) {
	_, err := EncoderFor("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.Equal(t, MustEncoder(JSON), MustEncoder("toml"))
}

func TestContext(t *testing.T) {
	assert.Equal(t, JSON, FromContext(context.Background()))

	ctx := WithFormat(context.Background(), XML)
	assert.Equal(t, XML, FromContext(ctx))
}
