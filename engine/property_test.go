package engine_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyiter/diagnostic"
	"polyiter/engine"
	"polyiter/kind"
)

func TestProperties(t *testing.T) {
	t.Parallel()

	e := engine.New(engine.WithReporter(diagnostic.Discard))
	double := func(v, k any) any { return []any{v, v, k} }

	t.Run("scalar is a one element sequence", func(t *testing.T) {
		t.Parallel()

		f := func(i int, s string, b bool, x float64) bool {
			for _, v := range []any{i, s, b, x} {
				single, err1 := e.Map(v, double)
				wrapped, err2 := e.Map([]any{v}, double)
				if err1 != nil || err2 != nil || !assert.ObjectsAreEqual(wrapped, single) {
					return false
				}
			}
			return true
		}
		require.NoError(t, quick.Check(f, nil))
	})

	t.Run("classification is deterministic", func(t *testing.T) {
		t.Parallel()

		f := func(i int64, u uint16, x float32, s string) bool {
			for _, v := range []any{i, u, x, s, []byte(s)} {
				if kind.Classify(v) != kind.Classify(v) || !kind.Classify(v).IsValid() {
					return false
				}
			}
			return true
		}
		require.NoError(t, quick.Check(f, nil))
	})

	t.Run("map preserves length and order", func(t *testing.T) {
		t.Parallel()

		f := func(xs []int) bool {
			got, err := e.Map(xs, func(v, k any) any { return k })
			if err != nil || len(got) != len(xs) {
				return false
			}
			for i, k := range got {
				if k != i {
					return false
				}
			}
			return true
		}
		require.NoError(t, quick.Check(f, nil))
	})

	t.Run("filterMap drops exactly the sentinel", func(t *testing.T) {
		t.Parallel()

		f := func(xs []int8, sentinel int8) bool {
			got, err := e.FilterMap(xs, sentinel, identity)
			if err != nil {
				return false
			}

			want := []any{}
			for _, x := range xs {
				if x != sentinel {
					want = append(want, x)
				}
			}
			return assert.ObjectsAreEqual(want, got)
		}
		require.NoError(t, quick.Check(f, nil))
	})

	t.Run("stopOnMatch agrees with a plain scan", func(t *testing.T) {
		t.Parallel()

		f := func(xs []bool) bool {
			visits := 0
			got, err := e.StopOnMatch(xs, false, func(v, _ any) any {
				visits++
				return v
			})
			if err != nil {
				return false
			}

			for i, x := range xs {
				if !x {
					return got == false && visits == i+1
				}
			}
			if len(xs) == 0 {
				return got == nil && visits == 0
			}
			return got == true && visits == len(xs)
		}
		require.NoError(t, quick.Check(f, nil))
	})

	t.Run("reduce with seed equals a loop", func(t *testing.T) {
		t.Parallel()

		f := func(xs []int16, seed int16) bool {
			got, err := e.ReduceSeed(xs, int(seed), func(acc, v any) any { return acc.(int) + int(v.(int16)) })
			want := int(seed)
			for _, x := range xs {
				want += int(x)
			}
			return err == nil && got == want
		}
		require.NoError(t, quick.Check(f, nil))
	})
}
