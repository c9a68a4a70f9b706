package pancake

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Namespace is a dynamic attribute bag with bidirectional mapping
// conversion. It implements AttrSource and Serializer.
//
// Namespaces are not safe for concurrent mutation.
type Namespace struct {
	attrs map[string]any
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{attrs: make(map[string]any)}
}

// FromMap builds a Namespace from a string-keyed mapping. Returns
// ErrNotMapping if data is not a map with string keys.
//
// When recursive, every nested string-keyed mapping becomes a Namespace,
// and every mapping found inside a slice becomes a Namespace; other slice
// elements and scalars pass through unchanged.
func FromMap(data any, recursive bool) (*Namespace, error) {
	rv := reflect.ValueOf(data)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, newContractError(ErrNotMapping, fmt.Sprintf("%T", data))
	}

	n := NewNamespace()
	iter := rv.MapRange()
	for iter.Next() {
		value := iter.Value().Interface()
		if recursive {
			value = fromMapValue(value)
		}
		n.attrs[iter.Key().String()] = value
	}

	emitNamespaceBuilt(context.Background(), len(n.attrs))
	return n, nil
}

// fromMapValue recursively converts nested mappings to Namespaces.
func fromMapValue(value any) any {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return value
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value
		}
		ns, err := FromMap(value, true)
		if err != nil {
			return value
		}
		return ns
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = fromMapValue(rv.Index(i).Interface())
		}
		return out
	}
	return value
}

// Set assigns an attribute and returns the namespace for chaining.
func (n *Namespace) Set(name string, value any) *Namespace {
	n.attrs[name] = value
	return n
}

// Get returns the named attribute, or the optional default (nil if none
// given) when the attribute is absent.
func (n *Namespace) Get(name string, def ...any) any {
	if v, ok := n.attrs[name]; ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the named attribute is present.
func (n *Namespace) Has(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// Update bulk-assigns attributes and returns the namespace for chaining.
func (n *Namespace) Update(attrs map[string]any) *Namespace {
	for k, v := range attrs {
		n.attrs[k] = v
	}
	return n
}

// Len returns the number of attributes.
func (n *Namespace) Len() int {
	return len(n.attrs)
}

// Attrs returns a snapshot of the namespace's current attributes.
func (n *Namespace) Attrs() map[string]any {
	out := make(map[string]any, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// Serialize converts the namespace to a mapping. Every attribute appears;
// no selection or key formatting applies, so FromMap followed by Serialize
// round-trips a mapping of scalars and nested mappings.
//
// With the Nested option (the default), values convert recursively: a
// Serializer value is replaced by its serialization, each entry of a
// string-keyed map is serialized when it implements Serializer, and each
// element of a slice likewise. Everything else passes through.
func (n *Namespace) Serialize(opts ...Option) (map[string]any, error) {
	o := buildOptions(defaultOptions(), opts)

	start := time.Now()
	var retErr error
	result := make(map[string]any, len(n.attrs))
	defer func() {
		emitSerializeComplete(context.Background(), "namespace", "Namespace",
			len(result), time.Since(start), retErr)
	}()

	for key, value := range n.attrs {
		if o.Nested {
			converted, err := namespaceValue(value, o)
			if err != nil {
				retErr = err
				return nil, err
			}
			value = converted
		}
		result[key] = value
	}

	return result, nil
}

// namespaceValue applies the namespace's nested-handling rules to a
// single attribute value.
func namespaceValue(value any, o Options) (any, error) {
	if s, ok := value.(Serializer); ok {
		return s.Serialize(WithOptions(o.child()))
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return value, nil
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entry := iter.Value().Interface()
			if s, ok := entry.(Serializer); ok {
				m, err := s.Serialize(WithOptions(o.child()))
				if err != nil {
					return nil, err
				}
				entry = m
			}
			out[iter.Key().String()] = entry
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if s, ok := elem.(Serializer); ok {
				m, err := s.Serialize(WithOptions(o.child()))
				if err != nil {
					return nil, err
				}
				elem = m
			}
			out[i] = elem
		}
		return out, nil
	}
	return value, nil
}
