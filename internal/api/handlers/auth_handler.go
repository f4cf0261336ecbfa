package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, maxAge, "/", "", config.IsProduction, true)
}

func cookieAge() int {
	hours := config.TokenTTLHours
	if hours <= 0 {
		hours = 24
	}
	return hours * 3600
}

func (h *AuthHandler) signedIn(c *gin.Context, u user.User, token string) {
	setTokenCookie(c, token, cookieAge())
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:  token,
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
	})
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "Registration info"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if !bind(c, &input) {
		return
	}

	u, err := h.svc.RegisterUser(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.ToDTO(u))
}

// Login godoc
// @Summary Password login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bind(c, &input) {
		return
	}

	u, token, err := h.svc.LoginUser(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.signedIn(c, u, token)
}

// GoogleLogin godoc
// @Summary Exchange a Google ID token for an API token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.GoogleLoginInput true "Google ID token"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Token rejected"
// @Router /jwt [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var input user.GoogleLoginInput
	if !bind(c, &input) {
		return
	}

	u, token, err := h.svc.LoginWithGoogle(c.Request.Context(), input.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}
	h.signedIn(c, u, token)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Status godoc
// @Summary Validate the current token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "valid",
		"user_id": claims.UserID,
		"email":   claims.Email,
		"role":    claims.Role,
	})
}
