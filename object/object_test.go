package object_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"polyiter/object"
)

func ExampleObject_Keys() {
	base := object.New(nil).With("foo", 42).With("shared", "base")
	derived := object.New(base).With("bar", true).With("shared", "derived")

	fmt.Println(derived.Keys(false))
	fmt.Println(derived.Keys(true))

	v, _ := derived.Get("shared")
	fmt.Println(v)
	// Output:
	// [bar shared]
	// [bar shared foo]
	// derived
}

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("insertion order survives overwrite", func(t *testing.T) {
		t.Parallel()

		o := object.New(nil).With("b", 1).With("a", 2).With("b", 3)
		assert.Equal(t, []string{"b", "a"}, o.OwnKeys())
		v, ok := o.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, 2, o.Len())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var o object.Object
		assert.Empty(t, o.Keys(true))
		o.Set("x", 1)
		assert.True(t, o.HasOwn("x"))
		assert.Nil(t, o.Proto())
	})

	t.Run("inherited keys are not own", func(t *testing.T) {
		t.Parallel()

		proto := object.New(nil).With("foo", 42)
		o := object.New(proto)
		assert.False(t, o.HasOwn("foo"))
		assert.Empty(t, o.Keys(false))
		assert.Equal(t, []string{"foo"}, o.Keys(true))
		assert.Equal(t, map[string]any{"foo": 42}, o.Map(true))
		assert.Empty(t, o.Map(false))
	})

	t.Run("delete only touches own keys", func(t *testing.T) {
		t.Parallel()

		proto := object.New(nil).With("k", "proto")
		o := object.New(proto).With("k", "own").With("z", 0)
		o.Delete("k")
		o.Delete("missing")

		assert.Equal(t, []string{"z"}, o.OwnKeys())
		v, ok := o.Get("k")
		assert.True(t, ok)
		assert.Equal(t, "proto", v)
	})

	t.Run("owned keys slice is a copy", func(t *testing.T) {
		t.Parallel()

		o := object.New(nil).With("a", 1)
		keys := o.OwnKeys()
		keys[0] = "mutated"
		assert.Equal(t, []string{"a"}, o.OwnKeys())
	})
}

func TestObject_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	doc := `
zeta: 1
alpha:
  nested: true
  list: [1, two, 3.5]
mid: ~
`
	var o object.Object
	require.NoError(t, yaml.Unmarshal([]byte(doc), &o))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.OwnKeys())

	alpha, _ := o.Get("alpha")
	nested, ok := alpha.(*object.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"nested", "list"}, nested.OwnKeys())

	list, _ := nested.Get("list")
	assert.Equal(t, []any{1, "two", 3.5}, list)

	mid, ok := o.Get("mid")
	assert.True(t, ok)
	assert.Nil(t, mid)

	var bad object.Object
	err := yaml.Unmarshal([]byte(`[1, 2]`), &bad)
	assert.ErrorContains(t, err, "cannot decode sequence into an object")
}

func TestObject_UnmarshalYAML_Aliases(t *testing.T) {
	t.Parallel()

	t.Run("shared anchors are expanded", func(t *testing.T) {
		t.Parallel()

		var o object.Object
		require.NoError(t, yaml.Unmarshal([]byte("base: &b {x: 1}\ncopy: *b\nlist: &l [1, 2]\nagain: *l\n"), &o))

		copied, _ := o.Get("copy")
		require.IsType(t, &object.Object{}, copied)
		x, _ := copied.(*object.Object).Get("x")
		assert.Equal(t, 1, x)

		again, _ := o.Get("again")
		assert.Equal(t, []any{1, 2}, again)
	})

	for name, doc := range map[string]string{
		"mapping refers to itself":  "a: &x {b: *x}",
		"sequence refers to itself": "a: &x [1, *x]",
		"through a nested mapping":  "a: &x {b: {c: [*x]}}",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := yaml.Unmarshal([]byte(doc), object.New(nil))
			assert.ErrorContains(t, err, "recursive alias *x")
		})
	}

	t.Run("expansion is bounded", func(t *testing.T) {
		t.Parallel()

		var doc strings.Builder
		doc.WriteString("l0: &l0 [a, a, a, a, a, a, a, a, a, a]\n")
		for i := 1; i <= 5; i++ {
			fmt.Fprintf(&doc, "l%d: &l%d [", i, i)
			for j := range 10 {
				if j > 0 {
					doc.WriteString(", ")
				}
				fmt.Fprintf(&doc, "*l%d", i-1)
			}
			doc.WriteString("]\n")
		}

		err := yaml.Unmarshal([]byte(doc.String()), object.New(nil))
		assert.ErrorContains(t, err, "through aliases")
	})
}
