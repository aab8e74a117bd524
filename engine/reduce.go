package engine

import (
	"polyiter/options"
)

// Combine folds one element into the accumulator.
type Combine func(acc, value any) any

// Reduce folds input with combine, starting from its first element. An empty
// input yields nil.
func (e *Engine) Reduce(input any, combine Combine, opts ...options.Option) (any, error) {
	return e.reduce("Reduce", 2, input, nil, false, combine, opts)
}

// ReduceSeed folds input with combine, starting from seed.
func (e *Engine) ReduceSeed(input, seed any, combine Combine, opts ...options.Option) (any, error) {
	return e.reduce("ReduceSeed", 3, input, seed, true, combine, opts)
}

func (e *Engine) reduce(op string, pos int, input, acc any, seeded bool, combine Combine, opts []options.Option) (any, error) {
	if err := e.checkFunc(op, pos, combine); err != nil {
		return nil, err
	}

	fold := func(value, _ any) any {
		if !seeded {
			acc, seeded = value, true
			return nil
		}

		acc = combine(acc, value)
		return nil
	}

	if _, err := e.run(op, ModeMap, input, nil, fold, nil, opts); err != nil {
		return nil, err
	}

	return acc, nil
}
