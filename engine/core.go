package engine

import (
	"fmt"

	"polyiter/diagnostic"
	"polyiter/kind"
	"polyiter/shape"
	"polyiter/utils"
)

// Func is the uniform iteration callback. key is the 0-based index for
// sequences and singletons, the mapping key otherwise.
type Func func(value, key any) any

// request is one traversal, fully resolved by the façade.
type request struct {
	op       string
	mode     ModeEnum
	fn       Func
	sentinel any
	out      sink
}

// traverse drives a single pass over in. Map and FilterMap return []any,
// BuildMapping returns the sink's mapping, the early-exit modes return the
// triggering or last callback result.
func (e *Engine) traverse(in shape.Input, req request) (any, error) {
	if in.Shape == shape.ShapeEmpty {
		return identity(req), nil
	}

	if req.mode.IsEarlyExit() {
		return scan(in, req), nil
	}

	switch req.mode {
	default:
		panic("engine: unhandled traversal mode " + req.mode.String())

	case ModeMap, ModeFilterMap:
		out := make([]any, 0, in.Len)
		for k, v := range in.Entries {
			res := req.fn(v, k)
			if req.mode == ModeFilterMap && Same(res, req.sentinel) {
				continue
			}
			out = append(out, res)
		}
		return out, nil

	case ModeBuildMapping:
		for k, v := range in.Entries {
			res := req.fn(v, k)
			if res == nil {
				continue
			}

			if err := e.store(req, k, res); err != nil {
				// insertions made so far stay in the base mapping
				return nil, err
			}
		}
		return req.out.result(), nil
	}
}

// scan runs an early-exit mode: it stops at the first result that is (or,
// for ModeStopOnMismatch, is not) the sentinel.
func scan(in shape.Input, req request) any {
	match := req.mode == ModeStopOnMatch

	var last any
	for k, v := range in.Entries {
		res := req.fn(v, k)
		if Same(res, req.sentinel) == match {
			return res
		}
		last = res
	}

	return last
}

// identity is the result of a traversal over no input at all.
func identity(req request) any {
	if req.mode.IsEarlyExit() {
		return nil
	}

	switch req.mode {
	default:
		panic("engine: unhandled traversal mode " + req.mode.String())
	case ModeMap, ModeFilterMap:
		return []any{}
	case ModeBuildMapping:
		return req.out.result()
	}
}

// store writes one BuildMapping result into the output mapping.
func (e *Engine) store(req request, elemKey, res any) error {
	var key, value any
	if p, ok := res.(Pair); ok {
		key, value = p.Key, p.Value
	} else {
		first, second, n, ok := utils.Pair2(res)
		if !ok {
			tag := kind.Classify(res)
			desc := tag.String()
			if n >= 0 {
				desc = fmt.Sprintf("%s of length %d", tag, n)
			}

			return e.fail(ErrMalformedPair, diagnostic.Diagnostic{
				Code:    diagnostic.CodeMalformedPair,
				Message: fmt.Sprintf("element %v: callback result must be a [key, value] pair or nil but instead is %s", elemKey, desc),
				Op:      req.op,
				Type:    tag.String(),
				Value:   diagnostic.Describe(res),
			})
		}
		key, value = first, second
	}

	if err := req.out.set(key, value); err != nil {
		return e.fail(ErrKeyType, diagnostic.Diagnostic{
			Code:    diagnostic.CodeKeyType,
			Message: fmt.Sprintf("element %v: %v", elemKey, err),
			Op:      req.op,
			Type:    kind.Classify(key).String(),
			Value:   diagnostic.Describe(Pair{Key: key, Value: value}),
		})
	}

	return nil
}
