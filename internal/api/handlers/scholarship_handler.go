package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

type ScholarshipHandler struct {
	svc     *application.ScholarshipService
	reviews *application.ReviewService
}

func NewScholarshipHandler(svc *application.ScholarshipService, reviews *application.ReviewService) *ScholarshipHandler {
	return &ScholarshipHandler{svc: svc, reviews: reviews}
}

func filterFromQuery(c *gin.Context) scholarship.Filter {
	return scholarship.Filter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Subject:  c.Query("subject"),
		Degree:   c.Query("degree"),
		Sort:     scholarship.ParseSortKey(c.Query("sort")),
		Page:     utils.QueryInt(c, "page", 1),
		Limit:    utils.QueryInt(c, "limit", 0),
	}
}

// List godoc
// @Summary Browse scholarships
// @Tags scholarships
// @Produce json
// @Param search query string false "Substring of name, university or degree"
// @Param category query string false "Scholarship category"
// @Param subject query string false "Subject category"
// @Param degree query string false "Degree"
// @Param sort query string false "name | fees-low | fees-high | rating"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12)"
// @Success 200 {object} scholarship.Page
// @Router /scholarships [get]
func (h *ScholarshipHandler) List(c *gin.Context) {
	page, err := h.svc.List(filterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Top godoc
// @Summary Featured scholarships
// @Tags scholarships
// @Produce json
// @Success 200 {array} scholarship.Scholarship
// @Router /top-scholarships [get]
func (h *ScholarshipHandler) Top(c *gin.Context) {
	f := filterFromQuery(c)
	list, err := h.svc.Top(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Scholarship details
// @Tags scholarships
// @Produce json
// @Param id path int true "Scholarship ID"
// @Success 200 {object} scholarship.Scholarship
// @Failure 404 {object} response.ErrorResponse
// @Router /scholarships/{id} [get]
func (h *ScholarshipHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "scholarship")
	if !ok {
		return
	}
	sc, err := h.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// Reviews godoc
// @Summary Reviews of one scholarship
// @Tags scholarships
// @Produce json
// @Param id path int true "Scholarship ID"
// @Success 200 {array} review.Review
// @Router /scholarships/{id}/reviews [get]
func (h *ScholarshipHandler) Reviews(c *gin.Context) {
	id, ok := idParam(c, "scholarship")
	if !ok {
		return
	}
	list, err := h.reviews.ListForScholarship(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Publish a scholarship
// @Tags scholarships
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body scholarship.CreateScholarshipInput true "Scholarship"
// @Success 201 {object} scholarship.Scholarship
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /scholarships [post]
func (h *ScholarshipHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input scholarship.CreateScholarshipInput
	if !bind(c, &input) {
		return
	}

	sc, err := h.svc.Create(c, claims, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sc)
}

// Update godoc
// @Summary Edit a scholarship
// @Tags scholarships
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Scholarship ID"
// @Param input body scholarship.UpdateScholarshipInput true "Fields to change"
// @Success 200 {object} scholarship.Scholarship
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /scholarships/{id} [patch]
func (h *ScholarshipHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "scholarship")
	if !ok {
		return
	}
	var input scholarship.UpdateScholarshipInput
	if !bind(c, &input) {
		return
	}

	sc, err := h.svc.Update(c, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// Delete godoc
// @Summary Remove a scholarship
// @Tags scholarships
// @Security BearerAuth
// @Param id path int true "Scholarship ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /scholarships/{id} [delete]
func (h *ScholarshipHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "scholarship")
	if !ok {
		return
	}
	if err := h.svc.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
