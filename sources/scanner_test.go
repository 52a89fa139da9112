package sources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elastiflow/pipes"
)

func TestFromReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "should yield one line per trigger",
			input: "alpha\nbeta\ngamma\n",
			want:  []string{"alpha", "beta", "gamma"},
		},
		{
			name:  "should handle a missing trailing newline",
			input: "alpha\nbeta",
			want:  []string{"alpha", "beta"},
		},
		{
			name:  "should exhaust immediately on empty input",
			input: "",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := FromReader(strings.NewReader(tt.input))

			var got []string
			for {
				v, ok := source.Next(pipes.Trigger).Get()
				if !ok {
					break
				}
				got = append(got, v)
			}
			assert.Equal(t, tt.want, got)
			assert.False(t, source.Next(pipes.Trigger).IsSome(), "exhaustion is terminal")
		})
	}
}
