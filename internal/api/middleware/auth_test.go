package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/internal/repository/mock"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthMocks(t *testing.T) (*Auth, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	return NewAuth(repos), mockUser
}

func withClaims(claims *types.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", claims)
		c.Next()
	}
}

func TestAdminGuard_RejectsNonAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth, mockUser := setupAuthMocks(t)

	tests := []struct {
		name string
		role user.Role
	}{
		{"plain user", user.RoleUser},
		{"moderator", user.RoleModerator},
		{"unknown role", user.Role("superuser")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			r := gin.New()
			r.GET("/users/all", withClaims(&types.Claims{UserID: 7, Role: string(user.RoleAdmin)}), auth.Admin(), func(c *gin.Context) {
				reached = true
				c.Status(http.StatusOK)
			})

			// the stale admin claim is ignored in favour of the stored role
			mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Role: tt.role}, nil)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/all", nil))

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.False(t, reached)
		})
	}
}

func TestAdminGuard_AllowsAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth, mockUser := setupAuthMocks(t)

	var seen *types.Claims
	r := gin.New()
	r.GET("/users/all", withClaims(&types.Claims{UserID: 1, Role: string(user.RoleUser)}), auth.Admin(), func(c *gin.Context) {
		seen = c.MustGet("claims").(*types.Claims)
		c.Status(http.StatusOK)
	})
	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1, Email: "a@x.io", Role: user.RoleAdmin}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/all", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, string(user.RoleAdmin), seen.Role)
}

func TestRequireRoles_MissingAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth, mockUser := setupAuthMocks(t)

	r := gin.New()
	r.GET("/x", withClaims(&types.Claims{UserID: 9}), auth.Staff(), func(c *gin.Context) { c.Status(http.StatusOK) })
	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserOrAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth, _ := setupAuthMocks(t)

	run := func(claims *types.Claims, path string) int {
		r := gin.New()
		r.PATCH("/users/:id", withClaims(claims), auth.UserOrAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run(&types.Claims{UserID: 3, Role: "user"}, "/users/3"))
	assert.Equal(t, http.StatusForbidden, run(&types.Claims{UserID: 3, Role: "user"}, "/users/4"))
	assert.Equal(t, http.StatusOK, run(&types.Claims{UserID: 1, Role: "admin"}, "/users/4"))
	assert.Equal(t, http.StatusBadRequest, run(&types.Claims{UserID: 1, Role: "admin"}, "/users/abc"))
}

func TestJWTRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtKey = []byte("test-secret")

	token, err := GenerateToken(user.User{ID: 5, Email: "jane@example.com", Role: user.RoleModerator}, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/auth/status", JWTAuthMiddleware(), func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":5,"role":"moderator"}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.Header.Set("Authorization", "Token "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWT_Expired(t *testing.T) {
	jwtKey = []byte("test-secret")
	token, err := GenerateToken(user.User{ID: 5}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestJWT_WrongKey(t *testing.T) {
	jwtKey = []byte("one")
	token, err := GenerateToken(user.User{ID: 5}, time.Hour)
	require.NoError(t, err)

	jwtKey = []byte("two")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
