package shape

import (
	"iter"
	"reflect"

	"polyiter/internal/common"
	"polyiter/kind"
)

// Indexed is an ordered, indexable element list that is not a Go slice or
// array, such as a captured argument list. Inputs implementing it are
// traversed as sequences.
type Indexed interface {
	Len() int
	At(i int) any
}

// Keyed is a mapping that enumerates its own keys, optionally together with
// the keys it inherits.
type Keyed interface {
	Keys(inherit bool) []string
	Get(key string) (any, bool)
}

// Input is a normalized traversal input.
type Input struct {
	Shape ShapeEnum
	// Tag is the classification of the input before normalization.
	Tag kind.TagEnum
	// Len is the number of elements Entries yields.
	Len int
	// Entries yields (key, element) pairs in visiting order. Sequence and
	// singleton keys are ints, mapping keys are the mapping's keys.
	Entries iter.Seq2[any, any]
}

// Dispatch decides the shape of an input without enumerating it.
func Dispatch(input any) ShapeEnum {
	switch kind.Classify(input) {
	default:
		return ShapeSingleton
	case kind.TagUndefined:
		return ShapeEmpty
	case kind.TagArray:
		return ShapeSequence
	case kind.TagObject:
		if _, ok := input.(Indexed); ok {
			return ShapeSequence
		}
		return ShapeMapping
	}
}

// Normalize decides how input is enumerated and prepares its entries. The
// inherit flag only affects mapping inputs: when false, only directly owned
// keys are visited.
func Normalize(input any, inherit bool) Input {
	tag := kind.Classify(input)

	switch Dispatch(input) {
	default:
		return Input{Shape: ShapeEmpty, Tag: tag, Entries: none}

	case ShapeSingleton:
		return Input{Shape: ShapeSingleton, Tag: tag, Len: 1, Entries: single(input)}

	case ShapeSequence:
		if ix, ok := input.(Indexed); ok && tag == kind.TagObject {
			return fromIndexed(tag, ix)
		}
		if s, ok := input.([]any); ok {
			return fromSlice(tag, s)
		}
		return fromSequence(tag, indirect(reflect.ValueOf(input)))

	case ShapeMapping:
		if kd, ok := input.(Keyed); ok {
			return fromKeyed(tag, kd, inherit)
		}

		rv := indirect(reflect.ValueOf(input))
		switch rv.Kind() {
		case reflect.Map:
			return fromMap(tag, rv)
		case reflect.Struct:
			return fromStruct(tag, rv, inherit)
		}

		// channels and other opaque objects own no enumerable keys
		return Input{Shape: ShapeMapping, Tag: tag, Entries: none}
	}
}

func none(func(any, any) bool) {}

func single(v any) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		yield(0, v)
	}
}

func fromSlice(tag kind.TagEnum, s []any) Input {
	return Input{
		Shape: ShapeSequence,
		Tag:   tag,
		Len:   len(s),
		Entries: func(yield func(any, any) bool) {
			for i, v := range s {
				if !yield(i, v) {
					return
				}
			}
		},
	}
}

func fromSequence(tag kind.TagEnum, rv reflect.Value) Input {
	n := rv.Len()
	return Input{
		Shape: ShapeSequence,
		Tag:   tag,
		Len:   n,
		Entries: func(yield func(any, any) bool) {
			for i := range n {
				if !yield(i, rv.Index(i).Interface()) {
					return
				}
			}
		},
	}
}

// fromIndexed snapshots an array-like value into a true sequence.
func fromIndexed(tag kind.TagEnum, ix Indexed) Input {
	values := make([]any, ix.Len())
	for i := range values {
		values[i] = ix.At(i)
	}

	return fromSlice(tag, values)
}

func fromKeyed(tag kind.TagEnum, kd Keyed, inherit bool) Input {
	keys := kd.Keys(inherit)
	return Input{
		Shape: ShapeMapping,
		Tag:   tag,
		Len:   len(keys),
		Entries: func(yield func(any, any) bool) {
			for _, k := range keys {
				v, _ := kd.Get(k)
				if !yield(k, v) {
					return
				}
			}
		},
	}
}

func fromMap(tag kind.TagEnum, rv reflect.Value) Input {
	entries := common.SortedMapEntries(rv)
	return Input{
		Shape: ShapeMapping,
		Tag:   tag,
		Len:   len(entries),
		Entries: func(yield func(any, any) bool) {
			for _, e := range entries {
				v := e.Value
				if e.Key.Equal(e.Key) {
					// keys that can be looked up again see callback updates
					if v = rv.MapIndex(e.Key); !v.IsValid() {
						// deleted by an earlier callback
						continue
					}
				}
				if !yield(e.Key.Interface(), v.Interface()) {
					return
				}
			}
		},
	}
}

func fromStruct(tag kind.TagEnum, rv reflect.Value, inherit bool) Input {
	type field struct {
		name string
		val  reflect.Value
	}

	var fields []field
	for _, sf := range StructKeys(rv.Type(), inherit) {
		fv, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			// promoted through a nil embedded pointer
			continue
		}
		fields = append(fields, field{name: sf.Name, val: fv})
	}

	return Input{
		Shape: ShapeMapping,
		Tag:   tag,
		Len:   len(fields),
		Entries: func(yield func(any, any) bool) {
			for _, f := range fields {
				if !yield(f.name, f.val.Interface()) {
					return
				}
			}
		},
	}
}

// StructKeys lists the enumerable fields of a struct type: exported fields
// declared on the struct itself and, when inherit is set, the exported fields
// promoted from embedded structs that are not shadowed or ambiguous. Embedded
// structs are inheritance links, not keys.
func StructKeys(t reflect.Type, inherit bool) []reflect.StructField {
	var own, inherited []reflect.StructField
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || isEmbeddedStruct(sf) {
			continue
		}

		if len(sf.Index) == 1 {
			own = append(own, sf)
		} else if inherit {
			inherited = append(inherited, sf)
		}
	}

	return append(own, inherited...)
}

func isEmbeddedStruct(sf reflect.StructField) bool {
	if !sf.Anonymous {
		return false
	}

	t := sf.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	return rv
}
