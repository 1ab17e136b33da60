package dispatchers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParam(t *testing.T) {
	p := NewParams("/set", "locale", 3)

	require.Equal(t, "/set", Param[string](p, 0))
	require.Equal(t, 3, Param[int](p, 2))
	require.Equal(t, 3, Param[int](p, -1), "negative index counts from the end")
	require.Equal(t, "locale", Param[string](p, -2))
	require.Equal(t, "locale", Param[string](p, 4), "index wraps around")
}

func TestParam_WrongTypePanics(t *testing.T) {
	p := NewParams("/set", "locale")

	err := recoverError(t, func() {
		Param[int](p, 1)
	})

	var typeErr *ParamTypeError
	require.True(t, errors.As(err, &typeErr))
	require.Equal(t, 1, typeErr.Index)
	require.Equal(t, "locale", typeErr.Value)
	require.Equal(t, "int", typeErr.Want)
	require.Equal(t, "dispatchers: parameter mismatch: index=1, value=locale, type=string, want=int", err.Error())
}

func TestLookup(t *testing.T) {
	p := NewParams("/add", 1)

	v, err := Lookup[int](p, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = Lookup[string](p, 1)
	var typeErr *ParamTypeError
	require.ErrorAs(t, err, &typeErr)

	_, err = Lookup[int](p, -3)
	require.ErrorIs(t, err, ErrParamIndex)

	_, err = Lookup[int](NewParams(), 0)
	require.ErrorIs(t, err, ErrParamIndex)
}

func TestSliceAndRest(t *testing.T) {
	p := NewParams("/add", 1, 2, 3)

	require.Equal(t, []int{1, 2}, Slice[int](p, 1, 3))
	require.Equal(t, []int{1, 2, 3}, Rest[int](p, 1))
	require.Empty(t, Rest[int](p, 4))

	err := recoverError(t, func() { Rest[int](p, 0) })
	var typeErr *ParamTypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, 0, typeErr.Index)

	err = recoverError(t, func() { Slice[int](p, 2, 9) })
	require.ErrorIs(t, err, ErrParamIndex)
}

func TestParams_RawIsACopy(t *testing.T) {
	p := NewParams("a", "b")

	raw := p.Raw()
	raw[0] = "changed"

	require.Equal(t, "a", Param[string](p, 0))
	require.Equal(t, 2, p.Len())
}
