package pancake

import "iter"

// Pairs streams the selected (key, value) pairs of an attribute source as
// a lazy, single-pass sequence. This is the legacy generator interface
// predating SerializeBag; unlike SerializeBag its defaults exclude "id"
// attributes. That asymmetry is long-standing and both defaults are kept
// as documented.
//
// An attribute whose value is itself an AttrSource is spliced when the
// Flatten option is set (the default): its own selected pairs are yielded
// inline in place of the attribute, with no prefixing or renaming. Without
// Flatten the attribute yields one pair whose value is the mapping of the
// non-flattened recursive pairs. No key formatting applies.
func Pairs(src AttrSource, opts ...Option) iter.Seq2[string, any] {
	o := buildOptions(legacyOptions(), opts)
	sel := o.Select
	if sel == nil {
		sel = DefaultSelect
	}
	return func(yield func(string, any) bool) {
		yieldPairs(src, o, sel, yield)
	}
}

func yieldPairs(src AttrSource, o Options, sel SelectFunc, yield func(string, any) bool) bool {
	for name, value := range src.Attrs() {
		if !sel(name, value, o.IncludeID) {
			continue
		}

		nested, ok := value.(AttrSource)
		if !ok {
			if !yield(name, value) {
				return false
			}
			continue
		}

		if o.Flatten {
			if !yieldPairs(nested, o, sel, yield) {
				return false
			}
			continue
		}

		inner := make(map[string]any)
		collect := func(k string, v any) bool {
			inner[k] = v
			return true
		}
		if !yieldPairs(nested, o, sel, collect) {
			return false
		}
		if !yield(name, inner) {
			return false
		}
	}
	return true
}
