package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		apperrors.ErrInvalidCredentials:                             http.StatusUnauthorized,
		apperrors.ErrAccountInactive:                                http.StatusForbidden,
		fmt.Errorf("%w: name is required", apperrors.ErrValidation): http.StatusBadRequest,
		apperrors.ErrNotFound:                                       http.StatusNotFound,
		apperrors.ErrEmailAlreadyExists:                             http.StatusConflict,
		apperrors.ErrInvalidRole:                                    http.StatusUnprocessableEntity,
		apperrors.Backend("list accounts", errors.New("boom")):      http.StatusInternalServerError,
		apperrors.NewAppError(http.StatusTeapot, "teapot", nil):     http.StatusTeapot,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusFor(err), err.Error())
	}
}
