package kind

//go:generate go tool stringer -type=TagEnum -linecomment -output=tag_string.go

// TagEnum is the semantic category of a runtime value.
type TagEnum int

const (
	_ TagEnum = iota // skip zero value, use it as a default (invalid) value for TagEnum

	TagUndefined // undefined
	TagNull      // null
	TagBoolean   // boolean
	TagString    // string
	TagFunction  // function
	TagRegex     // regex
	TagDate      // date
	TagNaN       // nan
	TagInfinity  // infinity
	TagInteger   // integer
	TagFloat     // float
	TagArray     // array
	TagObject    // object

	// TagTotal is a constant that represents the total number of tags defined
	TagTotal = int(iota)
)

func (t TagEnum) IsValid() bool {
	return t > 0 && int(t) < TagTotal
}

// IsNumber reports whether the tag is one of the refinements of a number.
func (t TagEnum) IsNumber() bool {
	switch t {
	default:
		return false
	case TagNaN, TagInfinity, TagInteger, TagFloat:
		return true
	}
}

// IsCollection reports whether values of this tag can hold more than one element.
func (t TagEnum) IsCollection() bool {
	switch t {
	default:
		return false
	case TagArray, TagObject:
		return true
	}
}

// IsAbsent reports whether the tag stands for "no value".
func (t TagEnum) IsAbsent() bool {
	return t == TagUndefined || t == TagNull
}
