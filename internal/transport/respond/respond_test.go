package respond

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alanyang/skillswap/internal/domain/errs"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validationf("bad input"), want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("register agent: %w", errs.Validationf("bad")), want: http.StatusBadRequest},
		{name: "not found", err: errs.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("get agent: %w", errs.ErrNotFound), want: http.StatusNotFound},
		{name: "anything else", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
