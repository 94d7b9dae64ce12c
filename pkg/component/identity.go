package component

import "reflect"

// identical reports whether a and b are the same value by reference
// identity. Maps, slices, funcs, channels, and pointers compare by their
// underlying data pointer; comparable scalars compare with ==. Values of
// different dynamic types, or of uncomparable non-reference types, are
// never identical. This is deliberately not deep equality: two maps with
// equal contents but separate allocations are distinct.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}

	switch av.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Pointer, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	}

	if !av.Type().Comparable() {
		return false
	}
	return a == b
}
