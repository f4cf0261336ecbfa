package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
	"gorm.io/gorm"
)

// statusOf maps service errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrScholarshipNotFound),
		errors.Is(err, application.ErrPaymentNotFound),
		errors.Is(err, application.ErrApplicationNotFound),
		errors.Is(err, application.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrForbidden),
		errors.Is(err, application.ErrNotApplied),
		errors.Is(err, application.ErrReservedAdminUser):
		return http.StatusForbidden
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrFederatedLogin),
		errors.Is(err, application.ErrIncorrectPassword),
		errors.Is(err, application.ErrMissingOldPassword):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrAlreadyApplied),
		errors.Is(err, application.ErrAlreadyReviewed):
		return http.StatusConflict
	case errors.Is(err, user.ErrUnknownRole),
		errors.Is(err, application.ErrInvalidDeadline),
		errors.Is(err, application.ErrDeadlinePassed),
		errors.Is(err, application.ErrApplicationLocked),
		errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, application.ErrInvalidStatusTransition),
		errors.Is(err, application.ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, application.ErrPaymentProvider),
		errors.Is(err, application.ErrStorageUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", c.GetString("request_id"), c.Request.Method, c.FullPath(), err)
		msg = "internal server error"
	}
	c.JSON(status, response.ErrorResponse{Error: msg})
}

// bind decodes the request into dst and writes a 400 on failure.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: utils.FormatValidationError(err)})
		return false
	}
	return true
}

func idParam(c *gin.Context, what string) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + what + " id"})
		return 0, false
	}
	return id, true
}
