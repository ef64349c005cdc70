package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bethouse/domain/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
		{"insufficient funds", apperrors.ErrInsufficientFunds, http.StatusBadRequest},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"permission", apperrors.ErrPermission, http.StatusForbidden},
		{"storage", apperrors.ErrStorage, http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestStatusFor_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("failed to place bet: %w", fmt.Errorf("%w: event 7", apperrors.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, statusFor(err))

	err = fmt.Errorf("%w: balance 10.00, needed 104.00", apperrors.ErrInsufficientFunds)
	assert.Equal(t, http.StatusBadRequest, statusFor(err))
}
