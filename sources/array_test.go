package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastiflow/pipes"
)

func TestFromArray(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		steps  int
		want   []string
	}{
		{
			name:   "should yield every value then exhaust",
			values: []string{"a", "b", "c"},
			steps:  4,
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "should stay exhausted",
			values: []string{"a"},
			steps:  5,
			want:   []string{"a"},
		},
		{
			name:   "should exhaust immediately on an empty slice",
			values: nil,
			steps:  3,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := FromArray(tt.values)

			var got []string
			for i := 0; i < tt.steps; i++ {
				if v, ok := source.Next(pipes.Trigger).Get(); ok {
					got = append(got, v)
				} else {
					assert.GreaterOrEqual(t, i, len(tt.values), "exhausted too early")
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromArray_Reset(t *testing.T) {
	source := FromArray([]int{1, 2})

	require.True(t, source.Next(pipes.Trigger).IsSome())
	require.True(t, source.Next(pipes.Trigger).IsSome())
	require.False(t, source.Next(pipes.Trigger).IsSome())

	require.True(t, pipes.Reset(source))

	v, ok := source.Next(pipes.Trigger).Get()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
