// Package bson provides a BSON codec for maskable records.
//
// Hosts are encoded as BSON documents. Store writes raw templates and Send
// writes rendered values; nil *string attributes round-trip as null.
package bson

import (
	"github.com/zoobzio/maskable"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements maskable.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() maskable.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
