package pipes

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Unwrap(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		result  Result[int]
		want    int
		wantErr error
	}{
		{
			name:   "should return a successful value",
			result: Ok(7),
			want:   7,
		},
		{
			name:    "should carry a failure",
			result:  Err[int](errBoom),
			wantErr: errBoom,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.result.Unwrap()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestResult_Must(t *testing.T) {
	t.Run("should return a successful value", func(t *testing.T) {
		require.Equal(t, 7, Ok(7).Must())
	})

	t.Run("should panic on a failure", func(t *testing.T) {
		assert.PanicsWithValue(t, "pipes: Must called on failed Result: boom", func() {
			Err[int](errors.New("boom")).Must()
		})
	})
}

func TestLiftErr(t *testing.T) {
	parse := LiftErr(strconv.Atoi)

	t.Run("should wrap successes", func(t *testing.T) {
		v, err := parse.Next("42").Unwrap()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("should wrap failures", func(t *testing.T) {
		_, err := parse.Next("not a number").Unwrap()
		assert.Error(t, err)
	})

	t.Run("should compose without the error being interpreted", func(t *testing.T) {
		tag := Lift(func(r Result[int]) string {
			if v, err := r.Unwrap(); err == nil {
				return "ok:" + strconv.Itoa(v)
			}
			return "err"
		})
		pipeline := Connect[string, Result[int], string](parse, tag)

		assert.Equal(t, "ok:3", pipeline.Next("3"))
		assert.Equal(t, "err", pipeline.Next("x"))
		assert.Equal(t, "ok:5", pipeline.Next("5"))
	})
}
