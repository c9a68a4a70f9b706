package pancake

// CaseMode represents a whole-key case transformation.
// Use these constants with WithCase.
type CaseMode string

const (
	// CaseNone leaves the key unchanged (capitalization may still apply).
	CaseNone CaseMode = ""

	// CaseUpper uppercases the entire key.
	CaseUpper CaseMode = "upper"

	// CaseLower lowercases the entire key.
	CaseLower CaseMode = "lower"
)

// validCaseModes contains all valid case modes for option validation.
var validCaseModes = map[CaseMode]bool{
	CaseNone:  true,
	CaseUpper: true,
	CaseLower: true,
}

// IsValidCaseMode returns true if the mode is a known case mode.
func IsValidCaseMode(mode CaseMode) bool {
	return validCaseModes[mode]
}

// Options bundles the formatting rules consumed by a single serialization
// call. Options are ephemeral: they are never stored on a value, and they
// propagate unchanged into recursive calls except for FieldPrefix, which
// each level consumes itself when rewriting flattened keys.
type Options struct {
	// Flatten merges nested serializations into the parent mapping
	// instead of nesting them under their own key.
	Flatten bool

	// Nested enables recursion into nested serializable values. When
	// false, nested values are stored as-is.
	Nested bool

	// IncludeID includes attributes named "id" under the default selector.
	IncludeID bool

	// IncludeClass prepends the value's type name to each key.
	IncludeClass bool

	// ClassSep separates the type name from the key. Defaults to "_".
	ClassSep string

	// Case applies a whole-key case transformation. Takes priority over
	// Capitalize.
	Case CaseMode

	// Capitalize uppercases the first character of each key, leaving the
	// rest unchanged.
	Capitalize bool

	// Select overrides the default field selection rules entirely.
	Select SelectFunc

	// FieldPrefix is prepended to each key as prefix + "_".
	FieldPrefix string

	// Indent sets the indentation string for textual rendering. Empty
	// means compact output.
	Indent string
}

// Option mutates an Options bundle.
type Option func(*Options)

// defaultOptions returns the option defaults for serialization calls.
func defaultOptions() Options {
	return Options{
		Flatten:    true,
		Nested:     true,
		IncludeID:  true,
		Capitalize: true,
		ClassSep:   "_",
	}
}

// legacyOptions returns the option defaults for the legacy pair generator,
// which historically excludes "id" attributes. This asymmetry with
// defaultOptions is intentional; callers depend on both defaults.
func legacyOptions() Options {
	o := defaultOptions()
	o.IncludeID = false
	return o
}

// buildOptions applies opts on top of base.
func buildOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// child returns the option bundle to propagate into a recursive call.
// FieldPrefix is consumed per level; the parent rewrites flattened keys
// itself, so propagating it would double-prefix.
func (o Options) child() Options {
	c := o
	c.FieldPrefix = ""
	return c
}

// WithFlatten controls flattening of nested serializations.
func WithFlatten(v bool) Option {
	return func(o *Options) { o.Flatten = v }
}

// WithNested controls recursion into nested serializable values.
func WithNested(v bool) Option {
	return func(o *Options) { o.Nested = v }
}

// WithIncludeID controls whether "id" attributes pass the default selector.
func WithIncludeID(v bool) Option {
	return func(o *Options) { o.IncludeID = v }
}

// WithClassName prepends the value's type name to each key, separated
// by "_".
func WithClassName() Option {
	return func(o *Options) { o.IncludeClass = true }
}

// WithClassSeparator prepends the value's type name to each key using the
// given separator.
func WithClassSeparator(sep string) Option {
	return func(o *Options) {
		o.IncludeClass = true
		o.ClassSep = sep
	}
}

// WithCase applies a whole-key case transformation.
func WithCase(mode CaseMode) Option {
	return func(o *Options) { o.Case = mode }
}

// WithCapitalize controls first-character capitalization of keys.
func WithCapitalize(v bool) Option {
	return func(o *Options) { o.Capitalize = v }
}

// WithSelect supplies a custom field selector. The custom selector's
// verdict is authoritative; the default rules do not apply.
func WithSelect(fn SelectFunc) Option {
	return func(o *Options) { o.Select = fn }
}

// WithFieldPrefix prepends prefix + "_" to each key.
func WithFieldPrefix(prefix string) Option {
	return func(o *Options) { o.FieldPrefix = prefix }
}

// WithIndent sets the indentation for textual rendering.
func WithIndent(indent string) Option {
	return func(o *Options) { o.Indent = indent }
}

// WithOptions replaces the entire option bundle. Used to propagate options
// into recursive Serialize calls.
func WithOptions(o Options) Option {
	return func(t *Options) { *t = o }
}
