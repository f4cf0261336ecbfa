package middleware

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/linskybing/scholarship-go/pkg/utils"
	"gorm.io/gorm"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// RequireRoles lets the request through only when the caller's current role
// is one of roles. The role is read from the database, so demotions apply to
// tokens issued earlier; the claims are refreshed for downstream handlers.
func (a *Auth) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		u, err := a.repos.User.GetUserByID(claims.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "account no longer exists"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}

		if !u.Role.In(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "forbidden"})
			return
		}

		refreshed := *claims
		refreshed.Role = string(u.Role)
		refreshed.Email = u.Email
		c.Set("claims", &refreshed)
		c.Next()
	}
}

// Authenticated accepts any existing account.
func (a *Auth) Authenticated() gin.HandlerFunc {
	return a.RequireRoles(user.RoleUser, user.RoleModerator, user.RoleAdmin)
}

// Staff accepts moderators and admins.
func (a *Auth) Staff() gin.HandlerFunc {
	return a.RequireRoles(user.RoleModerator, user.RoleAdmin)
}

func (a *Auth) Admin() gin.HandlerFunc {
	return a.RequireRoles(user.RoleAdmin)
}

// UserOrAdmin checks if user is the target user or an admin
func (a *Auth) UserOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		targetUID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
			return
		}

		if claims.UserID != targetUID && claims.Role != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

// IsStaff reports whether the claims carry a moderator or admin role.
func IsStaff(claims *types.Claims) bool {
	return claims != nil && user.Role(claims.Role).IsStaff()
}

// LoggingMiddleware tags each request with an id and logs its outcome.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Header("X-Request-ID", reqID)

		c.Next()

		log.Printf("[%s] %s %s %d %s", reqID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CORSMiddleware allows the configured front-end origins.
func CORSMiddleware() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(config.AllowedOrigins))
	for _, o := range config.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	corsHandler := cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
	return func(c *gin.Context) {
		if c.GetHeader("Upgrade") == "websocket" {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
