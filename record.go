package pancake

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the field tag with sentinel
	sentinel.Tag("pancake")
}

// TransformFunc rewrites a field value before it is emitted. The input is
// the raw field value, or the configured default when the raw value is
// absent.
type TransformFunc func(value any) any

// RecordConfig declares per-type serialization rules for a record. The
// zero value is a valid empty configuration. Config entries take priority
// over `pancake:"..."` struct tags. Unknown field names are ignored.
type RecordConfig struct {
	// FieldMap renames fields in the output: field name -> output key.
	FieldMap map[string]string

	// Exclude lists field names omitted from output.
	Exclude []string

	// Defaults supplies fallback values used when a field's raw value is
	// absent.
	Defaults map[string]any

	// Transforms supplies per-field value rewrites.
	Transforms map[string]TransformFunc
}

// recordFieldPlan describes how to serialize a single field.
type recordFieldPlan struct {
	index        []int  // reflect.Value.FieldByIndex access path
	name         string // field name
	outKey       string // output key after rename
	transform    TransformFunc
	defaultValue any
	hasDefault   bool
}

// RecordSerializer converts values of a struct type into mappings,
// applying the type's configured field rules. Build one with
// NewRecordSerializer, or use Register/Record for the cached per-type
// instance.
//
// Serializers are immutable after construction and safe for concurrent
// use.
type RecordSerializer[T any] struct {
	typeName string
	plans    []recordFieldPlan
}

// NewRecordSerializer builds a record serializer for struct type T.
// Returns ErrNotRecord if T is not a struct type.
func NewRecordSerializer[T any](cfg RecordConfig) (*RecordSerializer[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, newContractError(ErrNotRecord, rt.String())
	}

	spec := sentinel.Scan[T]()

	exclude := make(map[string]bool, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		exclude[name] = true
	}

	rs := &RecordSerializer[T]{typeName: spec.TypeName}
	for _, field := range spec.Fields {
		tag, hasTag := field.Tags["pancake"]
		if exclude[field.Name] || tag == "-" {
			continue
		}

		plan := recordFieldPlan{
			index:  field.Index,
			name:   field.Name,
			outKey: field.Name,
		}
		if mapped, ok := cfg.FieldMap[field.Name]; ok {
			plan.outKey = mapped
		} else if hasTag && tag != "" {
			plan.outKey = tag
		}
		if def, ok := cfg.Defaults[field.Name]; ok {
			plan.defaultValue = def
			plan.hasDefault = true
		}
		plan.transform = cfg.Transforms[field.Name]

		rs.plans = append(rs.plans, plan)
	}

	emitRecordRegistered(context.Background(), rs.typeName, len(rs.plans))
	return rs, nil
}

// TypeName returns the record type's name.
func (r *RecordSerializer[T]) TypeName() string {
	return r.typeName
}

// Serialize converts v to a mapping. Fields are visited in declaration
// order: excluded fields are skipped, values are resolved through the
// field's transform and default, absent values are dropped, and nested
// values recurse when the Nested option is set (the default).
//
// Nested handling distinguishes three shapes: a value implementing
// Serializer is replaced by its recursive serialization; a plain struct is
// replaced by a flat dump of its present fields with no rename or exclude
// rules; a slice is rebuilt element-wise, serializing the elements that
// implement Serializer.
func (r *RecordSerializer[T]) Serialize(v T, opts ...Option) (map[string]any, error) {
	o := buildOptions(defaultOptions(), opts)

	start := time.Now()
	var retErr error
	result := make(map[string]any, len(r.plans))
	defer func() {
		emitSerializeComplete(context.Background(), "record", r.typeName,
			len(result), time.Since(start), retErr)
	}()

	rv := reflect.ValueOf(v)
	for _, plan := range r.plans {
		value := rv.FieldByIndex(plan.index).Interface()
		if plan.transform != nil {
			// The configured default substitutes an absent raw value only
			// on the transform path; without a transform an absent field
			// stays absent and is dropped below.
			if isAbsent(value) && plan.hasDefault {
				value = plan.defaultValue
			}
			value = plan.transform(value)
		}
		if isAbsent(value) {
			continue
		}

		if o.Nested {
			nested, err := nestedRecordValue(value, o)
			if err != nil {
				retErr = err
				return nil, err
			}
			value = nested
		}

		result[plan.outKey] = value
	}

	return result, nil
}

// nestedRecordValue applies the nested-handling rules to a single field
// value.
func nestedRecordValue(value any, o Options) (any, error) {
	if s, ok := value.(Serializer); ok {
		return s.Serialize(WithOptions(o.child()))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Struct:
		return dumpStruct(rv), nil
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

// dumpStruct flattens a struct value to {field name: value} for every
// exported field whose value is present. No rename, exclude, or transform
// rules apply; this is the structural dump used for nested plain records
// and for the encoder hook's record fallback.
func dumpStruct(rv reflect.Value) map[string]any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		value := rv.Field(i).Interface()
		if isAbsent(value) {
			continue
		}
		out[sf.Name] = value
	}
	return out
}
