package shape

//go:generate go tool stringer -type=ShapeEnum -linecomment -output=shape_string.go

// ShapeEnum says how an input is enumerated.
type ShapeEnum int

const (
	_ ShapeEnum = iota // skip zero value, use it as a default (invalid) value for ShapeEnum

	ShapeEmpty     // empty
	ShapeSequence  // sequence
	ShapeMapping   // mapping
	ShapeSingleton // singleton

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)
