package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyiter/diagnostic"
	"polyiter/engine"
)

func TestArithmeticSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		count  any
		bounds []any
		want   []any
	}{
		{"defaults", 3, nil, []any{1, 2, 3}},
		{"start and step", 4, []any{0, 2}, []any{0, 2, 4, 6}},
		{"negative step", 3, []any{10, -5}, []any{10, 5, 0}},
		{"empty", 0, nil, []any{}},
		{"integral float count", 2.0, nil, []any{1, 2}},
		{"unsigned count", uint8(2), []any{int64(7)}, []any{7, 8}},
		{"float step", 3, []any{0, 0.25}, []any{0.0, 0.25, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newEngine(t)
			got, err := e.ArithmeticSequence(tt.count, tt.bounds...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithmeticSequence_LargeIntegers(t *testing.T) {
	t.Parallel()

	t.Run("exact range stays int", func(t *testing.T) {
		t.Parallel()

		e, diags := newEngine(t)
		got, err := e.ArithmeticSequence(2, 0, 1<<53)
		require.NoError(t, err)
		assert.Equal(t, []any{0, 1 << 53}, got)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("beyond exact range turns float", func(t *testing.T) {
		t.Parallel()

		e, diags := newEngine(t)
		got, err := e.ArithmeticSequence(2000, 0, 1<<53)
		require.NoError(t, err)
		require.Len(t, got, 2000)
		assert.Equal(t, 0.0, got[0])
		assert.Equal(t, 1999*float64(1<<53), got[1999])

		assert.True(t, diags.IsValid())
		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, diagnostic.CodeInexactSequence, diags.Warnings[0].Code)
	})

	t.Run("large negative start", func(t *testing.T) {
		t.Parallel()

		e, _ := newEngine(t)
		got, err := e.ArithmeticSequence(3, -(1 << 53), 1)
		require.NoError(t, err)
		assert.Equal(t, []any{-(1 << 53) * 1.0, -(1<<53)*1.0 + 1, -(1<<53)*1.0 + 2}, got)
	})
}

func TestArithmeticSequence_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    any
		bounds   []any
		argument int
	}{
		{"fractional count", 0.5, nil, 1},
		{"negative count", -1, nil, 1},
		{"string count", "3", nil, 1},
		{"undefined count", nil, nil, 1},
		{"nan start", 2, []any{math.NaN()}, 2},
		{"infinite step", 2, []any{0, math.Inf(1)}, 3},
		{"string step", 2, []any{0, "1"}, 3},
		{"too many bounds", 2, []any{0, 1, 2}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, diags := newEngine(t)
			got, err := e.ArithmeticSequence(tt.count, tt.bounds...)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, engine.ErrBadSequence))

			require.Len(t, diags.Errors, 1)
			assert.Equal(t, diagnostic.CodeBadSequence, diags.Errors[0].Code)
			assert.Equal(t, tt.argument, diags.Errors[0].Argument)
		})
	}
}

func TestTimes(t *testing.T) {
	t.Parallel()

	e, diags := newEngine(t)

	got, err := e.Times(3, func(v, k any) any { return v.(int)*10 + k.(int) })
	require.NoError(t, err)
	assert.Equal(t, []any{10, 21, 32}, got)

	got, err = e.Times(0, identity)
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)

	_, err = e.Times(1.5, identity)
	assert.True(t, errors.Is(err, engine.ErrBadSequence))
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "Times", diags.Errors[0].Op)
}
