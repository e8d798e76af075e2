// Package json provides a JSON codec for maskable records.
//
// Record.Store writes hosts with their raw templates, Record.Send with the
// rendered values, and Schema.Load reads what Store wrote. HTML characters
// are written as is so stored templates stay readable.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/maskable"
)

// jsonCodec implements maskable.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() maskable.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON without HTML escaping.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
