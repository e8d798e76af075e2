// Package xml provides an XML codec for maskable records.
//
// Templates are character data, so their braces need no escaping. Nil
// *string attributes are only preserved as absent when the field is tagged
// omitempty; otherwise they load back as empty templates.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/maskable"
)

// xmlCodec implements maskable.Codec for XML.
type xmlCodec struct{}

// New returns a XML codec.
func New() maskable.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
