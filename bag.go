package pancake

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Bag is a mutable, open-ended attribute set. Attributes are assigned at
// run time with no fixed schema. Bag implements both AttrSource and
// Serializer.
//
// Bags are not safe for concurrent mutation.
type Bag struct {
	attrs map[string]any
}

// NewBag returns an empty attribute bag.
func NewBag() *Bag {
	return &Bag{attrs: make(map[string]any)}
}

// Set assigns an attribute and returns the bag for chaining.
func (b *Bag) Set(name string, value any) *Bag {
	b.attrs[name] = value
	return b
}

// Get returns the named attribute and whether it is present.
func (b *Bag) Get(name string) (any, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// Delete removes the named attribute.
func (b *Bag) Delete(name string) {
	delete(b.attrs, name)
}

// Len returns the number of attributes.
func (b *Bag) Len() int {
	return len(b.attrs)
}

// Attrs returns a snapshot of the bag's current attributes.
func (b *Bag) Attrs() map[string]any {
	out := make(map[string]any, len(b.attrs))
	for k, v := range b.attrs {
		out[k] = v
	}
	return out
}

// Serialize converts the bag to a mapping. See SerializeBag.
func (b *Bag) Serialize(opts ...Option) (map[string]any, error) {
	return SerializeBag(b, opts...)
}

// SerializeBag converts an attribute source to a mapping with rich
// formatting. Each attribute passes the field selector (custom Select
// option, or DefaultSelect), then its key is computed by the key formatter
// using the source's runtime type name as the class name.
//
// Attribute values dispatch by capability:
//
//   - Serializer: recursively serialized. With the Flatten option (the
//     default) the nested mapping's keys merge directly into the output,
//     rewritten with the field prefix when one is set, and the attribute's
//     own key is suppressed; later keys win on collision. Without Flatten
//     the nested mapping is stored under the attribute's key.
//   - AttrSource (without Serializer): replaced by a dump of its own
//     attributes filtered through the same selector, unformatted. Never
//     flattened.
//   - fmt.Stringer (without either): replaced by its textual form.
//   - anything else: stored as-is.
func SerializeBag(src AttrSource, opts ...Option) (map[string]any, error) {
	o := buildOptions(defaultOptions(), opts)
	sel := o.Select
	if sel == nil {
		sel = DefaultSelect
	}
	className := typeName(src)

	start := time.Now()
	var retErr error
	result := make(map[string]any)
	defer func() {
		emitSerializeComplete(context.Background(), "bag", className,
			len(result), time.Since(start), retErr)
	}()

	for name, value := range src.Attrs() {
		if !sel(name, value, o.IncludeID) {
			continue
		}

		key := formatKey(name, className, o)

		switch tv := value.(type) {
		case Serializer:
			nested, err := tv.Serialize(WithOptions(o.child()))
			if err != nil {
				retErr = err
				return nil, err
			}
			if o.Flatten {
				// Merge nested keys into the parent; the attribute's own
				// key is not emitted.
				for nk, nv := range nested {
					if o.FieldPrefix != "" {
						nk = o.FieldPrefix + "_" + nk
					}
					result[nk] = nv
				}
				continue
			}
			value = nested

		case AttrSource:
			inner := make(map[string]any, len(tv.Attrs()))
			for ik, iv := range tv.Attrs() {
				if sel(ik, iv, o.IncludeID) {
					inner[ik] = iv
				}
			}
			value = inner

		case fmt.Stringer:
			value = tv.String()
		}

		result[key] = value
	}

	return result, nil
}

// typeName returns the base type name of v, following pointers.
func typeName(v any) string {
	rt := reflect.TypeOf(v)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Name() != "" {
		return rt.Name()
	}
	return rt.String()
}
