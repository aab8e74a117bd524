package engine

import (
	"fmt"
	"math"
	"reflect"

	"polyiter/diagnostic"
	"polyiter/kind"
	"polyiter/options"
)

// ArithmeticSequence returns count numbers starting at start (default 1) and
// stepping by step (default 1). Elements are ints when start and step are
// integral, float64 otherwise. count must be a non-negative integer.
func (e *Engine) ArithmeticSequence(count any, bounds ...any) ([]any, error) {
	return e.sequence("ArithmeticSequence", count, bounds)
}

// Times calls fn with 1..count as values and 0..count-1 as keys and collects
// the results.
func (e *Engine) Times(count any, fn Func, opts ...options.Option) ([]any, error) {
	const op = "Times"

	seq, err := e.sequence(op, count, nil)
	if err != nil {
		return nil, err
	}

	if err := e.checkFunc(op, 2, fn); err != nil {
		return nil, err
	}

	res, err := e.run(op, ModeMap, seq, nil, fn, nil, opts)
	if err != nil {
		return nil, err
	}

	return res.([]any), nil
}

const maxExactInt = 1 << 53

func (e *Engine) sequence(op string, count any, bounds []any) ([]any, error) {
	if len(bounds) > 2 {
		return nil, e.fail(ErrBadSequence, diagnostic.Diagnostic{
			Code:     diagnostic.CodeBadSequence,
			Message:  fmt.Sprintf("expected at most 3 arguments but got %d", len(bounds)+1),
			Op:       op,
			Argument: 4,
		})
	}

	n, err := e.sequenceCount(op, count)
	if err != nil {
		return nil, err
	}

	start, step := 1.0, 1.0
	integral := true
	for i, b := range bounds {
		v, tag, ok := number(b)
		if !ok {
			return nil, e.fail(ErrBadSequence, diagnostic.Diagnostic{
				Code:     diagnostic.CodeBadSequence,
				Message:  fmt.Sprintf("argument #%d must be a finite number but instead is %s", i+2, tag),
				Op:       op,
				Argument: i + 2,
				Type:     tag.String(),
				Value:    diagnostic.Describe(b),
			})
		}

		if tag != kind.TagInteger {
			integral = false
		}

		if i == 0 {
			start = v
		} else {
			step = v
		}
	}

	// ints only while every element is exactly representable
	if integral && n > 0 && math.Abs(start)+float64(n-1)*math.Abs(step) > maxExactInt {
		integral = false
		e.warn(diagnostic.Diagnostic{
			Code:    diagnostic.CodeInexactSequence,
			Message: fmt.Sprintf("elements exceed %d in magnitude, producing floats", int64(maxExactInt)),
			Op:      op,
		})
	}

	out := make([]any, n)
	for i := range out {
		if integral {
			out[i] = int(start) + i*int(step)
		} else {
			out[i] = start + float64(i)*step
		}
	}

	return out, nil
}

func (e *Engine) sequenceCount(op string, count any) (int, error) {
	v, tag, ok := number(count)
	if ok && tag == kind.TagInteger && v >= 0 && v <= math.MaxInt32 {
		return int(v), nil
	}

	msg := fmt.Sprintf("argument #1 must be a non-negative integer but instead is %s", tag)
	if tag == kind.TagInteger {
		msg = fmt.Sprintf("argument #1 must be a non-negative integer no larger than %d but instead is %v", math.MaxInt32, count)
	}

	return 0, e.fail(ErrBadSequence, diagnostic.Diagnostic{
		Code:     diagnostic.CodeBadSequence,
		Message:  msg,
		Op:       op,
		Argument: 1,
		Type:     tag.String(),
		Value:    diagnostic.Describe(count),
	})
}

// number converts a finite numeric value to float64. ok is false for anything
// classifying other than integer or float.
func number(v any) (float64, kind.TagEnum, bool) {
	tag := kind.Classify(v)
	if tag != kind.TagInteger && tag != kind.TagFloat {
		return 0, tag, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), tag, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), tag, true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), tag, true
	case reflect.Complex64, reflect.Complex128:
		if c := rv.Complex(); imag(c) == 0 {
			return real(c), tag, true
		}
	}

	return 0, tag, false
}
