// Package pancake converts in-memory values into plain string-keyed
// mappings with configurable key formatting, field selection, and
// flattening, and reconstructs dynamic namespaces from mappings.
//
// Three kinds of values are supported:
//
//   - records: struct types with a fixed field set, serialized through a
//     RecordSerializer with per-type rename/exclude/default/transform rules
//   - attribute bags: open-ended attribute sets (Bag, or any AttrSource),
//     serialized with rich formatting options including flattening
//   - namespaces: mutable attribute bags with bidirectional mapping
//     conversion (Namespace, FromMap, ToNamespace)
//
// # Records
//
// Field rules are declared via struct tags and a RecordConfig registered
// per type:
//
//	type User struct {
//	    Name  string   `pancake:"name"`
//	    Age   int      `pancake:"-"`
//	    Email *string  `pancake:"email"`
//	    Tags  []string `pancake:"tags"`
//	}
//
//	rs, _ := pancake.Register[User](pancake.RecordConfig{
//	    FieldMap:   map[string]string{"Email": "email_address"},
//	    Transforms: map[string]pancake.TransformFunc{"Name": upper},
//	})
//
//	out, _ := rs.Serialize(user)
//
// A tag of "-" excludes the field; any other tag value renames it. Entries
// in RecordConfig take priority over tags. Fields whose resolved value is
// absent (nil) never appear in the output.
//
// # Attribute bags
//
// Bags carry arbitrary runtime attributes and serialize with formatting
// options:
//
//	b := pancake.NewBag().Set("name", "test").Set("value", 42)
//	out, _ := b.Serialize()                      // {"Name": "test", "Value": 42}
//	out, _ = b.Serialize(pancake.WithCase(pancake.CaseUpper))
//
// Attribute values that implement Serializer are flattened into the parent
// mapping by default; pass WithFlatten(false) to nest them instead.
//
// # Namespaces
//
// Namespaces convert to and from mappings, recursively:
//
//	ns, _ := pancake.ToNamespace(map[string]any{
//	    "name":  "test",
//	    "items": []any{map[string]any{"id": 1}},
//	}, true)
//	ns.Get("name")       // "test"
//	out, _ := ns.Serialize()
//
// # Rendering
//
// Output mappings render to text through a Codec. Codec implementations
// are provided as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//
// Every codec dispatches unknown values through the capability hook
// (Normalize): Serializer first, then AttrSource, then a flat record dump.
// A value with none of those capabilities fails with ErrUnsupportedType.
//
// # Concurrency
//
// Serialization only reads its input. Concurrent serialization of an
// unmodified value is safe; mutating a value while serializing it is not.
// Value graphs must be acyclic.
package pancake
