// Package json provides a JSON codec implementation.
package json

import (
	"encoding/json"

	"github.com/zoobzio/pancake"
)

// jsonCodec implements pancake.Codec for JSON.
type jsonCodec struct {
	indent string
}

// New returns a JSON codec.
func New() pancake.Codec {
	return &jsonCodec{}
}

// NewIndent returns a JSON codec producing output indented with the given
// string.
func NewIndent(indent string) pancake.Codec {
	return &jsonCodec{indent: indent}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON, dispatching non-primitive values through the
// capability hook.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	nv, err := pancake.Normalize(v)
	if err != nil {
		return nil, err
	}
	if c.indent != "" {
		return json.MarshalIndent(nv, "", c.indent)
	}
	return json.Marshal(nv)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
