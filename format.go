package pancake

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatKey computes an output key from an attribute name and formatting
// options. className supplies the type name used when IncludeClass is set;
// it receives the same case rule as the key, independently.
//
// The transformations apply in a fixed order: case/capitalize, then field
// prefix, then class name. Pure function of its inputs.
func FormatKey(name, className string, opts ...Option) string {
	return formatKey(name, className, buildOptions(defaultOptions(), opts))
}

func formatKey(name, className string, o Options) string {
	key := applyCase(name, o)

	if o.FieldPrefix != "" {
		key = o.FieldPrefix + "_" + key
	}

	if o.IncludeClass {
		sep := o.ClassSep
		if sep == "" {
			sep = "_"
		}
		key = applyCase(className, o) + sep + key
	}

	return key
}

// applyCase applies the case rule: an explicit case mode wins over
// capitalization when both are set.
func applyCase(s string, o Options) string {
	switch {
	case o.Case == CaseUpper:
		return strings.ToUpper(s)
	case o.Case == CaseLower:
		return strings.ToLower(s)
	case o.Capitalize:
		return capitalize(s)
	}
	return s
}

// capitalize uppercases the first character only. Unlike strings.Title or
// a full case mapping, the rest of the string is left untouched, so the
// transformation is idempotent.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
