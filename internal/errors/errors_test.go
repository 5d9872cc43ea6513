package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesKind(t *testing.T) {
	t.Parallel()

	w := NewWrapper("rank", "distance_matrix")
	err := w.Wrap(ErrUpstreamFailure, "Error: could not reach the distance provider")

	assert.True(t, errors.Is(err, ErrUpstreamFailure))
	assert.False(t, errors.Is(err, ErrConfigMissing))
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	w := NewWrapper("contacts", "match")
	assert.NoError(t, w.Wrap(nil, "unused"))
	assert.NoError(t, w.Wrapf(nil, "unused %d", 1))
}

func TestGetUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrapped error returns user message",
			err:  NewWrapper("classroom", "query").Wrap(ErrUpstreamFailure, "Error searching classrooms"),
			want: "Error searching classrooms",
		},
		{
			name: "wrapped error nested deeper",
			err:  fmt.Errorf("outer: %w", NewWrapper("maps", "geocode").Wrap(ErrConfigMissing, "Error: Google Maps API key not configured")),
			want: "Error: Google Maps API key not configured",
		},
		{
			name: "plain error falls back to Error()",
			err:  errors.New("boom"),
			want: "boom",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetUserMessage(tt.err))
		})
	}
}

func TestWrappedErrorString(t *testing.T) {
	t.Parallel()

	err := NewWrapper("rank", "distance_matrix").Wrapf(ErrUpstreamFailure, "Error: %s", "bad response")
	assert.Contains(t, err.Error(), "[rank:distance_matrix]")
	assert.Contains(t, err.Error(), "Error: bad response")
}
