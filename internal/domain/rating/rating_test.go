package rating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/alanyang/skillswap/internal/domain/rating"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  bool
	}{
		{name: "lower bound", value: 1, want: true},
		{name: "upper bound", value: 5, want: true},
		{name: "middle", value: 3, want: true},
		{name: "zero", value: 0, want: false},
		{name: "above max", value: 6, want: false},
		{name: "negative", value: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.value))
		})
	}
}
