package pancake

import (
	"context"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// SerializeAny converts any value to a mapping using whichever capability
// it has: Serializer delegates to the value's own algorithm, a struct gets
// a flat dump of its present fields, an AttrSource gets its attributes
// filtered through the default selector (including "id"), and anything
// else is wrapped as {"value": v}.
func SerializeAny(v any, opts ...Option) (map[string]any, error) {
	if s, ok := v.(Serializer); ok {
		return s.Serialize(opts...)
	}

	// The explicit capability wins over structural shape: a struct that
	// exposes an open attribute set is a bag, not a record.
	if src, ok := v.(AttrSource); ok {
		attrs := src.Attrs()
		out := make(map[string]any, len(attrs))
		for name, value := range attrs {
			if DefaultSelect(name, value, true) {
				out[name] = value
			}
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() {
		if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Struct {
			return dumpStruct(rv), nil
		}
	}

	return map[string]any{"value": v}, nil
}

// ToNamespace converts a string-keyed mapping to a Namespace.
// Alias for FromMap.
func ToNamespace(data any, recursive bool) (*Namespace, error) {
	return FromMap(data, recursive)
}

// Normalize rewrites v into plain mappings, sequences, and scalars fit for
// any codec. Unknown values dispatch through the capability hook in order:
// Serializer, AttrSource, flat record dump. A value with none of those
// capabilities fails with ErrUnsupportedType; the failure is never
// swallowed.
//
// Values implementing json.Marshaler or encoding.TextMarshaler already
// know how to render themselves and pass through untouched.
func Normalize(v any, opts ...Option) (any, error) {
	return normalizeValue(v, buildOptions(defaultOptions(), opts), "")
}

func normalizeValue(v any, o Options, key string) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch v.(type) {
	case json.Marshaler, encoding.TextMarshaler:
		return v, nil
	}

	if s, ok := v.(Serializer); ok {
		m, err := s.Serialize(WithOptions(o))
		if err != nil {
			return nil, err
		}
		return normalizeMap(reflect.ValueOf(m), o)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return normalizeValue(rv.Elem().Interface(), o, key)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, newEncodeError(rv.Type().String(), key)
		}
		return normalizeMap(rv, o)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			nv, err := normalizeValue(rv.Index(i).Interface(), o, key)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	}

	if src, ok := v.(AttrSource); ok {
		attrs := src.Attrs()
		out := make(map[string]any, len(attrs))
		for name, value := range attrs {
			if !DefaultSelect(name, value, o.IncludeID) {
				continue
			}
			nv, err := normalizeValue(value, o, name)
			if err != nil {
				return nil, err
			}
			out[name] = nv
		}
		return out, nil
	}

	if rv.Kind() == reflect.Struct {
		return normalizeMap(reflect.ValueOf(dumpStruct(rv)), o)
	}

	return nil, newEncodeError(rv.Type().String(), key)
}

// normalizeMap normalizes every value of a string-keyed map.
func normalizeMap(rv reflect.Value, o Options) (any, error) {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		nv, err := normalizeValue(iter.Value().Interface(), o, k)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

// MarshalJSON renders v as JSON text, dispatching embedded non-primitive
// values through the capability hook. Use WithIndent for indented output;
// the default is the encoder's compact form.
func MarshalJSON(v any, opts ...Option) ([]byte, error) {
	o := buildOptions(defaultOptions(), opts)

	start := time.Now()
	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(context.Background(), "application/json",
			len(retData), time.Since(start), retErr)
	}()

	nv, err := normalizeValue(v, o, "")
	if err != nil {
		retErr = err
		return nil, err
	}

	if o.Indent != "" {
		retData, retErr = json.MarshalIndent(nv, "", o.Indent)
	} else {
		retData, retErr = json.Marshal(nv)
	}
	if retErr != nil {
		retErr = fmt.Errorf("marshal: %w", retErr)
		return nil, retErr
	}
	return retData, nil
}

// Render normalizes v through the capability hook and marshals it with
// the given codec.
func Render(v any, c Codec, opts ...Option) ([]byte, error) {
	o := buildOptions(defaultOptions(), opts)

	start := time.Now()
	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(context.Background(), c.ContentType(),
			len(retData), time.Since(start), retErr)
	}()

	nv, err := normalizeValue(v, o, "")
	if err != nil {
		retErr = err
		return nil, err
	}

	retData, retErr = c.Marshal(nv)
	if retErr != nil {
		retErr = fmt.Errorf("marshal: %w", retErr)
		return nil, retErr
	}
	return retData, nil
}
