package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/domain/payment"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

type PaymentHandler struct {
	svc *application.PaymentService
}

func NewPaymentHandler(svc *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateIntent godoc
// @Summary Start paying a scholarship's application fee
// @Description The amount is read from the scholarship; free scholarships return a paid payment.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body payment.CreateIntentInput true "Scholarship to pay for"
// @Success 200 {object} payment.Intent
// @Failure 400 {object} response.ErrorResponse "Deadline passed"
// @Failure 404 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse "Provider unavailable"
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input payment.CreateIntentInput
	if !bind(c, &input) {
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), uid, input.ScholarshipID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

// Notification godoc
// @Summary Provider payment notification
// @Description Only the order id is read; the status is fetched from the provider.
// @Tags payments
// @Accept json
// @Produce json
// @Param input body payment.NotificationInput true "Notification"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /payments/notification [post]
func (h *PaymentHandler) Notification(c *gin.Context) {
	var input payment.NotificationInput
	if !bind(c, &input) {
		return
	}
	p, err := h.svc.HandleNotification(c.Request.Context(), input.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: string(p.Status)})
}

// Confirm godoc
// @Summary Re-check one of my payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} payment.Payment
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /payments/{id}/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := idParam(c, "payment")
	if !ok {
		return
	}

	p, err := h.svc.Confirm(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListMine godoc
// @Summary My payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} payment.Payment
// @Router /payments/my [get]
func (h *PaymentHandler) ListMine(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	list, err := h.svc.ListMine(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
