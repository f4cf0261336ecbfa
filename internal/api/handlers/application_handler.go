package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/api/middleware"
	"github.com/linskybing/scholarship-go/internal/application"
	domain "github.com/linskybing/scholarship-go/internal/domain/application"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

type ApplicationHandler struct {
	svc *application.ApplicationService
}

func NewApplicationHandler(svc *application.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit godoc
// @Summary Apply for a scholarship
// @Description Requires a paid, unused payment for the same scholarship.
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body application.CreateApplicationInput true "Application"
// @Success 201 {object} application.Application
// @Failure 400 {object} response.ErrorResponse
// @Failure 402 {object} response.ErrorResponse "Payment required"
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input domain.CreateApplicationInput
	if !bind(c, &input) {
		return
	}

	a, err := h.svc.Submit(c, uid, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// List godoc
// @Summary All applications
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param status query string false "Pending | Processing | Completed | Rejected"
// @Param scholarship_id query int false "Scholarship ID"
// @Param sort query string false "applied | deadline"
// @Success 200 {array} application.Application
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	var f domain.ListFilter
	if raw := c.Query("status"); raw != "" {
		st, err := domain.ParseStatus(raw)
		if err != nil {
			respondError(c, application.ErrInvalidStatus)
			return
		}
		f.Status = &st
	}
	if sid, err := utils.ParseQueryUintParam(c, "scholarship_id"); err == nil {
		f.ScholarshipID = &sid
	} else if !errors.Is(err, utils.ErrEmptyParameter) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid scholarship_id"})
		return
	}
	f.Sort = c.Query("sort")

	list, err := h.svc.List(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListMine godoc
// @Summary My applications
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} application.Application
// @Router /applications/my [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
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

// Stats godoc
// @Summary Application counts per status
// @Description Staff may pass scope=all for global counts.
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param scope query string false "all"
// @Success 200 {object} application.Stats
// @Router /applications/stats [get]
func (h *ApplicationHandler) Stats(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	uid := &claims.UserID
	if c.Query("scope") == "all" && middleware.IsStaff(claims) {
		uid = nil
	}
	st, err := h.svc.Stats(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// Get godoc
// @Summary Application details
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} application.Application
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := idParam(c, "application")
	if !ok {
		return
	}
	a, err := h.svc.Get(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Update godoc
// @Summary Edit my pending application
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body application.UpdateApplicationInput true "Fields to change"
// @Success 200 {object} application.Application
// @Failure 400 {object} response.ErrorResponse "No longer pending"
// @Failure 403 {object} response.ErrorResponse
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) Update(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := idParam(c, "application")
	if !ok {
		return
	}
	var input domain.UpdateApplicationInput
	if !bind(c, &input) {
		return
	}

	a, err := h.svc.Update(c, claims, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateStatus godoc
// @Summary Move an application through review
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body application.UpdateStatusInput true "New status"
// @Success 200 {object} application.Application
// @Failure 400 {object} response.ErrorResponse "Transition not allowed"
// @Failure 404 {object} response.ErrorResponse
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "application")
	if !ok {
		return
	}
	var input domain.UpdateStatusInput
	if !bind(c, &input) {
		return
	}

	a, err := h.svc.UpdateStatus(c, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// SetFeedback godoc
// @Summary Leave feedback for the applicant
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body application.FeedbackInput true "Feedback"
// @Success 200 {object} application.Application
// @Router /applications/{id}/feedback [patch]
func (h *ApplicationHandler) SetFeedback(c *gin.Context) {
	id, ok := idParam(c, "application")
	if !ok {
		return
	}
	var input domain.FeedbackInput
	if !bind(c, &input) {
		return
	}

	a, err := h.svc.SetFeedback(c, id, input.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete godoc
// @Summary Withdraw or remove an application
// @Tags applications
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "No longer pending"
// @Failure 403 {object} response.ErrorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := idParam(c, "application")
	if !ok {
		return
	}
	if err := h.svc.Delete(c, claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
