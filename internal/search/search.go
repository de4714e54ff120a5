// Package search implements the typed query-predicate sub-language used by
// the list endpoints. One query-string value parses into one predicate over
// a column of type T; predicates for distinct columns are independent and
// the store conjoins them with AND.
//
// Grammar of a single value:
//
//	exact,<value>  → match the column against <value> (parsed as T)
//	null           → require the column to be absent (nullable variant only)
//
// An absent query parameter is the no-filter state; it is never produced by
// parsing, only by the zero value of Search / NullableSearch.
package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadFormat is returned when a query value does not conform to the
// predicate grammar or its payload cannot be parsed as the target type.
// Callers match it with errors.Is.
var ErrBadFormat = errors.New("malformed search parameter")

const (
	exactPrefix = "exact,"
	nullToken   = "null"
)

type kind int

const (
	noSearch kind = iota
	exactMatch
	isNull
)

// Search is a filter predicate over a column of type T.
// The zero value is the no-filter state.
type Search[T any] struct {
	k     kind
	value T
}

// NoSearch returns the no-filter predicate.
func NoSearch[T any]() Search[T] {
	return Search[T]{}
}

// Exact returns a predicate requiring the column to equal v.
func Exact[T any](v T) Search[T] {
	return Search[T]{k: exactMatch, value: v}
}

// IsNoSearch reports whether s is the no-filter state.
func (s Search[T]) IsNoSearch() bool {
	return s.k == noSearch
}

// ExactValue returns the match value and true when s is an exact-match
// predicate.
func (s Search[T]) ExactValue() (T, bool) {
	return s.value, s.k == exactMatch
}

// NullableSearch is a filter predicate over a nullable column of type T.
// Beyond the states of Search it can require the column to be NULL.
// The zero value is the no-filter state.
//
// It is a distinct type rather than a wrapper around Search to keep the
// require-null state from nesting ambiguously.
type NullableSearch[T any] struct {
	k     kind
	value T
}

// NoNullableSearch returns the no-filter predicate.
func NoNullableSearch[T any]() NullableSearch[T] {
	return NullableSearch[T]{}
}

// NullableExact returns a predicate requiring the column to equal v.
func NullableExact[T any](v T) NullableSearch[T] {
	return NullableSearch[T]{k: exactMatch, value: v}
}

// Null returns a predicate requiring the column to be NULL.
func Null[T any]() NullableSearch[T] {
	return NullableSearch[T]{k: isNull}
}

// IsNoSearch reports whether s is the no-filter state.
func (s NullableSearch[T]) IsNoSearch() bool {
	return s.k == noSearch
}

// IsNull reports whether s requires the column to be NULL.
func (s NullableSearch[T]) IsNull() bool {
	return s.k == isNull
}

// ExactValue returns the match value and true when s is an exact-match
// predicate.
func (s NullableSearch[T]) ExactValue() (T, bool) {
	return s.value, s.k == exactMatch
}

// FromQuery parses one raw query value into a Search[T] using the provided
// value parser. Any deviation from the grammar yields ErrBadFormat.
func FromQuery[T any](raw string, parse func(string) (T, error)) (Search[T], error) {
	payload, ok := strings.CutPrefix(raw, exactPrefix)
	if !ok {
		return Search[T]{}, fmt.Errorf("%w: %q", ErrBadFormat, raw)
	}

	v, err := parse(payload)
	if err != nil {
		return Search[T]{}, fmt.Errorf("%w: %q", ErrBadFormat, raw)
	}

	return Exact(v), nil
}

// NullableFromQuery parses one raw query value into a NullableSearch[T].
// The bare token "null" produces the require-null predicate.
func NullableFromQuery[T any](raw string, parse func(string) (T, error)) (NullableSearch[T], error) {
	if raw == nullToken {
		return Null[T](), nil
	}

	payload, ok := strings.CutPrefix(raw, exactPrefix)
	if !ok {
		return NullableSearch[T]{}, fmt.Errorf("%w: %q", ErrBadFormat, raw)
	}

	v, err := parse(payload)
	if err != nil {
		return NullableSearch[T]{}, fmt.Errorf("%w: %q", ErrBadFormat, raw)
	}

	return NullableExact(v), nil
}

// Int64 parses a query value into an int64 predicate.
func Int64(raw string) (Search[int64], error) {
	return FromQuery(raw, parseInt64)
}

// String parses a query value into a string predicate.
func String(raw string) (Search[string], error) {
	return FromQuery(raw, parseString)
}

// NullableString parses a query value into a nullable string predicate.
func NullableString(raw string) (NullableSearch[string], error) {
	return NullableFromQuery(raw, parseString)
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseString(s string) (string, error) {
	return s, nil
}
