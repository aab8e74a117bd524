package engine

import "reflect"

// Same is the sentinel comparison: nil equals only nil, values of different
// dynamic types are never equal, slices, maps and funcs compare by identity
// (same backing data, and same length for slices), other comparable values
// compare with ==. Values that are not comparable, such as structs holding
// slices, never equal anything. NaN is not equal to itself.
//
// Two nil slices of one type are the same. A non-nil slice without backing
// storage (zero capacity, or zero-size elements) has no identity and is never
// the same as anything, itself included.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Slice:
		if ra.IsNil() || rb.IsNil() {
			return ra.IsNil() && rb.IsNil()
		}
		if ra.Cap() == 0 || rb.Cap() == 0 || ra.Type().Elem().Size() == 0 {
			return false
		}
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Map, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	}

	if !ra.Comparable() || !rb.Comparable() {
		return false
	}

	return a == b
}
