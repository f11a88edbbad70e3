package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.ErrValidation, http.StatusBadRequest},
		{fmt.Errorf("%w: days must be positive", apperrors.ErrValidation), http.StatusBadRequest},
		{apperrors.ErrAuthentication, http.StatusUnauthorized},
		{apperrors.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("account x: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{apperrors.ErrDuplicate, http.StatusConflict},
		{apperrors.ErrBalanceChanged, http.StatusConflict},
		{apperrors.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
