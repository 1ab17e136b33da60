package dispatchers

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrParamIndex is returned when a handler asks for a parameter that does
// not exist.
var ErrParamIndex = errors.New("dispatchers: parameter index out of range")

// ParamTypeError reports a handler reading a parameter as the wrong type.
// It is a bug in the handler, not in the user's input.
type ParamTypeError struct {
	Index int
	Value any
	Want  string
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("dispatchers: parameter mismatch: index=%d, value=%v, type=%T, want=%s", e.Index, e.Value, e.Value, e.Want)
}

// Params holds the values accepted along a matched path. Index 0 is the
// command name.
type Params struct {
	values []any
}

// NewParams wraps values. It is mostly useful to call handlers in tests.
func NewParams(values ...any) Params {
	return Params{values: values}
}

// Len returns the number of values.
func (p Params) Len() int {
	return len(p.values)
}

// Raw returns a copy of the values.
func (p Params) Raw() []any {
	return append([]any(nil), p.values...)
}

// index resolves i the way Param documents it.
func (p Params) index(i int) (int, error) {
	n := len(p.values)
	if n == 0 {
		return 0, fmt.Errorf("%w: index=%d, len=0", ErrParamIndex, i)
	}
	idx := (i + n) % n
	if idx < 0 {
		return 0, fmt.Errorf("%w: index=%d, len=%d", ErrParamIndex, i, n)
	}
	return idx, nil
}

// Lookup returns the value at index as a T. A negative index counts from
// the end, so -1 is the last value.
func Lookup[T any](p Params, index int) (T, error) {
	var zero T
	idx, err := p.index(index)
	if err != nil {
		return zero, err
	}
	v, ok := p.values[idx].(T)
	if !ok {
		return zero, &ParamTypeError{Index: index, Value: p.values[idx], Want: typeName[T]()}
	}
	return v, nil
}

// Param is Lookup for handlers: a missing or mistyped parameter is a
// programming error and panics.
func Param[T any](p Params, index int) T {
	v, err := Lookup[T](p, index)
	if err != nil {
		panic(err)
	}
	return v
}

// Slice returns the values in [from, to) as Ts, panicking like Param.
func Slice[T any](p Params, from, to int) []T {
	if from < 0 || to > len(p.values) || from > to {
		panic(fmt.Errorf("%w: range=[%d, %d), len=%d", ErrParamIndex, from, to, len(p.values)))
	}
	out := make([]T, 0, to-from)
	for i, raw := range p.values[from:to] {
		v, ok := raw.(T)
		if !ok {
			panic(&ParamTypeError{Index: from + i, Value: raw, Want: typeName[T]()})
		}
		out = append(out, v)
	}
	return out
}

// Rest returns the values from index from to the end as Ts. It is the
// usual way to read a variadic tail.
func Rest[T any](p Params, from int) []T {
	return Slice[T](p, from, len(p.values))
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
