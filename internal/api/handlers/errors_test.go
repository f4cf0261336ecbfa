package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{application.ErrScholarshipNotFound, http.StatusNotFound},
		{application.ErrForbidden, http.StatusForbidden},
		{application.ErrNotApplied, http.StatusForbidden},
		{application.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: bad audience", application.ErrFederatedLogin), http.StatusUnauthorized},
		{application.ErrPaymentRequired, http.StatusPaymentRequired},
		{application.ErrEmailTaken, http.StatusConflict},
		{application.ErrAlreadyApplied, http.StatusConflict},
		{application.ErrAlreadyReviewed, http.StatusConflict},
		{user.ErrUnknownRole, http.StatusBadRequest},
		{application.ErrInvalidStatusTransition, http.StatusBadRequest},
		{application.ErrApplicationLocked, http.StatusBadRequest},
		{application.ErrDeadlinePassed, http.StatusBadRequest},
		{application.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
		{fmt.Errorf("%w: timeout", application.ErrPaymentProvider), http.StatusBadGateway},
		{application.ErrStorageUnavailable, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}
