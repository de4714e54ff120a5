package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64_Exact(t *testing.T) {
	s, err := Int64("exact,42")
	require.NoError(t, err)

	v, ok := s.ExactValue()
	require.True(t, ok)
	assert.Equal(t, int64(42), v)
	assert.False(t, s.IsNoSearch())
}

func TestInt64_NegativeValue(t *testing.T) {
	s, err := Int64("exact,-7")
	require.NoError(t, err)

	v, ok := s.ExactValue()
	require.True(t, ok)
	assert.Equal(t, int64(-7), v)
}

func TestInt64_MalformedValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "non-numeric payload", raw: "exact,abc"},
		{name: "missing tag", raw: "42"},
		{name: "empty value", raw: ""},
		{name: "unknown tag", raw: "like,42"},
		{name: "float payload", raw: "exact,4.2"},
		{name: "overflow", raw: "exact,99999999999999999999"},
		{name: "null is not valid for non-nullable", raw: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Int64(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestString_Exact(t *testing.T) {
	s, err := String("exact,read_only")
	require.NoError(t, err)

	v, ok := s.ExactValue()
	require.True(t, ok)
	assert.Equal(t, "read_only", v)
}

func TestString_EmptyPayloadIsValid(t *testing.T) {
	s, err := String("exact,")
	require.NoError(t, err)

	v, ok := s.ExactValue()
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestString_PayloadMayContainCommas(t *testing.T) {
	s, err := String("exact,a,b")
	require.NoError(t, err)

	v, ok := s.ExactValue()
	require.True(t, ok)
	assert.Equal(t, "a,b", v)
}

func TestNullableString_Null(t *testing.T) {
	s, err := NullableString("null")
	require.NoError(t, err)

	assert.True(t, s.IsNull())
	assert.False(t, s.IsNoSearch())

	_, ok := s.ExactValue()
	assert.False(t, ok)
}

func TestNullableString_Exact(t *testing.T) {
	s, err := NullableString("exact,admin")
	require.NoError(t, err)

	v, ok := s.ExactValue()
	require.True(t, ok)
	assert.Equal(t, "admin", v)
	assert.False(t, s.IsNull())
}

// The literal string "null" is still reachable through the exact tag.
func TestNullableString_ExactNullLiteral(t *testing.T) {
	s, err := NullableString("exact,null")
	require.NoError(t, err)

	v, ok := s.ExactValue()
	require.True(t, ok)
	assert.Equal(t, "null", v)
	assert.False(t, s.IsNull())
}

func TestNullableString_Malformed(t *testing.T) {
	_, err := NullableString("nul")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadFormat))
}

func TestZeroValues_AreNoSearch(t *testing.T) {
	var s Search[int64]
	assert.True(t, s.IsNoSearch())

	var ns NullableSearch[string]
	assert.True(t, ns.IsNoSearch())
	assert.False(t, ns.IsNull())
}

func TestConstructors(t *testing.T) {
	assert.True(t, NoSearch[int64]().IsNoSearch())
	assert.True(t, NoNullableSearch[string]().IsNoSearch())
	assert.True(t, Null[string]().IsNull())

	v, ok := Exact(int64(5)).ExactValue()
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	sv, ok := NullableExact("lead").ExactValue()
	require.True(t, ok)
	assert.Equal(t, "lead", sv)
}

// Parsing the same raw value twice yields identical predicates.
func TestParse_Deterministic(t *testing.T) {
	first, err := Int64("exact,10")
	require.NoError(t, err)
	second, err := Int64("exact,10")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
