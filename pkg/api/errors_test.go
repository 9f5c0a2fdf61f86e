package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpc-toolchain/license-manager/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", services.NewValidationError("name", "required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"booking conflict", services.ErrBookingConflict, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := mapServiceError(tc.err)
			assert.Equal(t, tc.code, httpErr.Code)
		})
	}

	t.Run("booking conflict carries its message", func(t *testing.T) {
		httpErr := mapServiceError(services.ErrBookingConflict)
		assert.Equal(t, services.ErrBookingConflict.Error(), httpErr.Message)
	})
}
