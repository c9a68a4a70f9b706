package pancake

// Capability interfaces replace runtime probing: a value's serialization
// behavior is decided by which of these interfaces it implements, resolved
// once at the dispatch boundary.

// Serializer is the capability of producing a mapping of one's own state.
// Implementations decide their own algorithm; RecordSerializer, Bag, and
// Namespace each provide one. Nested Serializer values found during
// serialization are replaced by their recursive serialization, and are the
// only values that participate in flattening.
type Serializer interface {
	// Serialize converts the receiver to a string-keyed mapping.
	// Implementations must not mutate the receiver.
	Serialize(opts ...Option) (map[string]any, error)
}

// AttrSource is the capability of exposing an open attribute set: the
// value's current (name, value) pairs, discoverable at run time without a
// fixed schema.
type AttrSource interface {
	// Attrs returns the current attributes. The returned map is a
	// snapshot; mutating it does not affect the source.
	Attrs() map[string]any
}
