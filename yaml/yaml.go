// Package yaml provides a YAML codec implementation.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/pancake"
)

// yamlCodec implements pancake.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() pancake.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML, dispatching non-primitive values through the
// capability hook.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	nv, err := pancake.Normalize(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(nv)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
