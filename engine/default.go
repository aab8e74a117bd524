package engine

import (
	"polyiter/options"
)

var std = New()

// Default returns the engine used by the package-level functions. It reports
// to the logrus standard logger and does not inherit by default.
func Default() *Engine { return std }

// Map calls Default().Map.
func Map(input any, fn Func, opts ...options.Option) ([]any, error) {
	return std.Map(input, fn, opts...)
}

// FilterMap calls Default().FilterMap.
func FilterMap(input, sentinel any, fn Func, opts ...options.Option) ([]any, error) {
	return std.FilterMap(input, sentinel, fn, opts...)
}

// BuildMapping calls Default().BuildMapping.
func BuildMapping(input any, fn Func, opts ...options.Option) (map[any]any, error) {
	return std.BuildMapping(input, fn, opts...)
}

// BuildMappingInto calls Default().BuildMappingInto.
func BuildMappingInto(input, base any, fn Func, opts ...options.Option) (any, error) {
	return std.BuildMappingInto(input, base, fn, opts...)
}

// StopOnMatch calls Default().StopOnMatch.
func StopOnMatch(input, sentinel any, fn Func, opts ...options.Option) (any, error) {
	return std.StopOnMatch(input, sentinel, fn, opts...)
}

// StopOnMismatch calls Default().StopOnMismatch.
func StopOnMismatch(input, sentinel any, fn Func, opts ...options.Option) (any, error) {
	return std.StopOnMismatch(input, sentinel, fn, opts...)
}

// KeysOf calls Default().KeysOf.
func KeysOf(input any, opts ...options.Option) ([]any, error) {
	return std.KeysOf(input, opts...)
}

// Reduce calls Default().Reduce.
func Reduce(input any, combine Combine, opts ...options.Option) (any, error) {
	return std.Reduce(input, combine, opts...)
}

// ReduceSeed calls Default().ReduceSeed.
func ReduceSeed(input, seed any, combine Combine, opts ...options.Option) (any, error) {
	return std.ReduceSeed(input, seed, combine, opts...)
}

// Times calls Default().Times.
func Times(count any, fn Func, opts ...options.Option) ([]any, error) {
	return std.Times(count, fn, opts...)
}

// ArithmeticSequence calls Default().ArithmeticSequence.
func ArithmeticSequence(count any, bounds ...any) ([]any, error) {
	return std.ArithmeticSequence(count, bounds...)
}
