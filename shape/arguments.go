package shape

// Arguments is a captured argument list. It is indexable but is not a slice,
// so it classifies as an object and is normalized into a sequence.
type Arguments struct {
	values []any
}

// Args captures the given values.
func Args(values ...any) Arguments {
	return Arguments{values: values}
}

func (a Arguments) Len() int { return len(a.values) }

func (a Arguments) At(i int) any { return a.values[i] }
