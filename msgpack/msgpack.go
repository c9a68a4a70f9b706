// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/pancake"
)

// msgpackCodec implements pancake.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() pancake.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack, dispatching non-primitive values
// through the capability hook.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	nv, err := pancake.Normalize(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(nv)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
