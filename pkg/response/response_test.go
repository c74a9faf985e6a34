package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	errNotFound := NotFound("blog not found")

	assert.True(t, errors.Is(errNotFound, NotFound("blog not found")))
	assert.False(t, errors.Is(errNotFound, NotFound("user not found")))
	assert.False(t, errors.Is(errNotFound, Conflict("blog not found")))

	wrapped := fmt.Errorf("get blog: %w", errNotFound)
	assert.True(t, errors.Is(wrapped, errNotFound))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("x"), http.StatusNotFound},
		{"conflict", Conflict("x"), http.StatusConflict},
		{"invalid operation", InvalidOperation("x"), http.StatusBadRequest},
		{"internal", Internal("x"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", Conflict("x")), http.StatusConflict},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}
