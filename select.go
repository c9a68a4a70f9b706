package pancake

import (
	"reflect"
	"strings"
)

// SelectFunc decides whether a (name, value) pair appears in serialized
// output. includeID reports whether attributes named "id" should pass.
type SelectFunc func(name string, value any, includeID bool) bool

// DefaultSelect is the default field selection policy: a pair is included
// unless the name is underscore-prefixed (private), the value is a
// function, the value is absent, or the name is "id" while includeID is
// false.
func DefaultSelect(name string, value any, includeID bool) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	if isCallable(value) {
		return false
	}
	if isAbsent(value) {
		return false
	}
	if name == "id" && !includeID {
		return false
	}
	return true
}

// isCallable reports whether v is a function value.
func isCallable(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Func
}

// isAbsent reports whether v is the no-value state: a nil interface, or a
// nil pointer, map, slice, func, or chan. Non-nil empty slices and maps
// are present.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
