// Package engine traverses inputs of any shape with one callback contract.
//
// An input is a sequence (slices, arrays, shape.Indexed values), a mapping
// (maps, structs, *object.Object, shape.Keyed values), a singleton (any other
// value, visited once at key 0) or empty (the nil interface). Every operation
// is a single synchronous pass over the input:
//
//	Map             collect every callback result
//	FilterMap       collect results that are not Same as the sentinel
//	BuildMapping    store the [key, value] pairs returned by the callback
//	StopOnMatch     return the first result Same as the sentinel
//	StopOnMismatch  return the first result not Same as the sentinel
//
// Misuse, such as a nil callback or a malformed pair, is reported once to the
// engine's diagnostic.Reporter and returned as an error wrapping one of the
// Err* values.
package engine
