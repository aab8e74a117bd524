package kind

import (
	"math"
	"reflect"
	"regexp"
	"time"
)

var (
	regexpType = reflect.TypeFor[regexp.Regexp]()
	timeType   = reflect.TypeFor[time.Time]()
)

// Classify maps any value to exactly one semantic tag. It never panics and
// never looks inside collections.
//
// The nil interface value itself is undefined. Typed nils (pointer, map,
// slice, func, chan, and a nil interface held by a pointer or a struct field)
// are null. Pointers are classified by what they point to.
func Classify(value any) TagEnum {
	// fast path for the common dynamic values, named types fall through to reflection
	switch v := value.(type) {
	case nil:
		return TagUndefined
	case *regexp.Regexp:
		if v == nil {
			return TagNull
		}
		return TagRegex
	case time.Time:
		return TagDate
	case bool:
		return TagBoolean
	case string:
		return TagString
	case int:
		return TagInteger
	case float64:
		return FromFloat(v)
	}

	return FromReflectValue(reflect.ValueOf(value))
}

// FromReflectValue classifies a reflected value with the same rules as Classify.
func FromReflectValue(rv reflect.Value) TagEnum {
	if !rv.IsValid() {
		return TagUndefined
	}

	// pattern matchers and dates first: both are structs underneath
	switch rv.Type() {
	case regexpType:
		return TagRegex
	case timeType:
		return TagDate
	}

	switch rv.Kind() {
	default:
		return TagObject

	case reflect.Bool:
		return TagBoolean

	case reflect.String:
		return TagString

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return TagInteger

	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float())

	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if imag(c) != 0 {
			return TagFloat
		}
		return FromFloat(real(c))

	case reflect.Func:
		if rv.IsNil() {
			return TagNull
		}
		return TagFunction

	case reflect.Slice:
		if rv.IsNil() {
			return TagNull
		}
		return TagArray

	case reflect.Array:
		return TagArray

	case reflect.Map, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return TagNull
		}
		return TagObject

	case reflect.Pointer:
		if rv.IsNil() {
			return TagNull
		}
		return FromReflectValue(rv.Elem())

	case reflect.Interface:
		// a nil interface reached through a pointer or a field is typed
		if rv.IsNil() {
			return TagNull
		}
		return FromReflectValue(rv.Elem())

	case reflect.Struct:
		return TagObject
	}
}

// FromFloat refines a floating point number.
func FromFloat(f float64) TagEnum {
	switch {
	case math.IsNaN(f):
		return TagNaN
	case math.IsInf(f, 0):
		return TagInfinity
	case f == math.Trunc(f):
		return TagInteger
	default:
		return TagFloat
	}
}

// IsFunction reports whether the value is a callable, non-nil func.
func IsFunction(value any) bool {
	return Classify(value) == TagFunction
}
