package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/domain/review"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

type ReviewHandler struct {
	svc *application.ReviewService
}

func NewReviewHandler(svc *application.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// Create godoc
// @Summary Review a scholarship I applied to
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body review.CreateReviewInput true "Review"
// @Success 201 {object} review.Review
// @Failure 403 {object} response.ErrorResponse "Not an applicant"
// @Failure 409 {object} response.ErrorResponse "Already reviewed"
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input review.CreateReviewInput
	if !bind(c, &input) {
		return
	}

	rv, err := h.svc.Create(c, uid, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

// ListAll godoc
// @Summary All reviews
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Success 200 {array} review.Review
// @Router /reviews [get]
func (h *ReviewHandler) ListAll(c *gin.Context) {
	list, err := h.svc.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListMine godoc
// @Summary My reviews
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Success 200 {array} review.Review
// @Router /reviews/my [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
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

// Update godoc
// @Summary Edit a review
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param input body review.UpdateReviewInput true "Fields to change"
// @Success 200 {object} review.Review
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := idParam(c, "review")
	if !ok {
		return
	}
	var input review.UpdateReviewInput
	if !bind(c, &input) {
		return
	}

	rv, err := h.svc.Update(c, claims, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

// Delete godoc
// @Summary Delete a review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := idParam(c, "review")
	if !ok {
		return
	}
	if err := h.svc.Delete(c, claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
