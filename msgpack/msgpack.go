// Package msgpack provides a MessagePack codec for maskable records.
//
// Store writes raw templates and Send writes rendered values; nil *string
// attributes round-trip as nil.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/maskable"
)

// msgpackCodec implements maskable.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() maskable.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
