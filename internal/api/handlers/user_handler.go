package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.UserDTO
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	u, err := h.svc.FindUserByID(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(u))
}

// Role godoc
// @Summary Role of the current user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /users/role [get]
func (h *UserHandler) Role(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": claims.Role})
}

// Exists godoc
// @Summary Check whether an email is registered
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} response.ErrorResponse
// @Router /users/exists [get]
func (h *UserHandler) Exists(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "email is required"})
		return
	}
	ok, err := h.svc.EmailExists(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": ok})
}

// ListAll godoc
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "Role filter"
// @Success 200 {array} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Unknown role"
// @Failure 403 {object} response.ErrorResponse
// @Router /users/all [get]
func (h *UserHandler) ListAll(c *gin.Context) {
	var role *user.Role
	if raw := c.Query("role"); raw != "" {
		r, err := user.ParseRole(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		role = &r
	}

	users, err := h.svc.ListUsers(role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// ListPaging godoc
// @Summary List users with pagination
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} response.SuccessResponse{data=[]user.UserDTO}
// @Router /users/paging [get]
func (h *UserHandler) ListPaging(c *gin.Context) {
	page := utils.QueryInt(c, "page", 1)
	limit := utils.QueryInt(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	users, total, err := h.svc.ListUserByPaging(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, response.SuccessResponse{Code: 0, Message: "ok", Data: user.ToDTOs(users)})
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateRoleInput true "New role"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Reserved admin"
// @Failure 404 {object} response.ErrorResponse
// @Router /users/role/{id} [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := idParam(c, "user")
	if !ok {
		return
	}
	var input user.UpdateRoleInput
	if !bind(c, &input) {
		return
	}

	u, err := h.svc.UpdateRole(c, id, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(u))
}

// UpdateUser godoc
// @Summary Update profile
// @Description Partially update name, photo or password. Changing a password requires the old one.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Fields to change"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "Old password missing or wrong"
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "user")
	if !ok {
		return
	}
	var input user.UpdateUserInput
	if !bind(c, &input) {
		return
	}

	u, err := h.svc.UpdateUser(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(u))
}

// DeleteUser godoc
// @Summary Delete user by ID
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse "Reserved admin"
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "user")
	if !ok {
		return
	}
	if err := h.svc.RemoveUser(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
