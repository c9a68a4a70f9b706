package yaml

import (
	"errors"
	"testing"

	"github.com/zoobzio/pancake"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	original := map[string]any{"name": "test", "value": 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored map[string]any
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored["name"] != "test" || restored["value"] != 42 {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshal_CapabilityDispatch(t *testing.T) {
	c := New()

	b := pancake.NewBag().Set("name", "test")
	data, err := c.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got map[string]any
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got["Name"] != "test" {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestMarshal_UnsupportedType(t *testing.T) {
	c := New()

	_, err := c.Marshal(map[string]any{"ch": make(chan int)})
	if !errors.Is(err, pancake.ErrUnsupportedType) {
		t.Errorf("Marshal() error = %v, want ErrUnsupportedType", err)
	}
}
