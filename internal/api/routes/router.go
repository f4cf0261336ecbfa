package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/api/handlers"
	"github.com/linskybing/scholarship-go/internal/api/middleware"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/scholarship-go/docs"
)

// NewEngine builds the gin engine with the global middleware. Only the
// configured proxies may supply the client address through forwarding headers.
func NewEngine() (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(config.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoggingMiddleware())
	return r, nil
}

func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos, limiter middleware.Limiter) {
	h := handlers.New(svc)
	authMiddleware := middleware.NewAuth(repos)

	authLimit := middleware.RateLimit(limiter, 10, time.Minute)
	payLimit := middleware.RateLimit(limiter, 20, time.Minute)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- public ---
	r.POST("/register", authLimit, h.Auth.Register)
	r.POST("/login", authLimit, h.Auth.Login)
	r.POST("/jwt", authLimit, h.Auth.GoogleLogin)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/users/exists", h.User.Exists)

	r.GET("/scholarships", h.Scholarship.List)
	r.GET("/top-scholarships", h.Scholarship.Top)
	r.GET("/scholarships/:id", h.Scholarship.Get)
	r.GET("/scholarships/:id/reviews", h.Scholarship.Reviews)

	r.POST("/payments/notification", h.Payment.Notification)

	// --- JWT-protected ---
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.Auth.Status)
		auth.GET("/ws/applications", authMiddleware.Authenticated(), h.Application.Stream)

		users := auth.Group("/users")
		{
			users.GET("/me", authMiddleware.Authenticated(), h.User.Me)
			users.GET("/role", authMiddleware.Authenticated(), h.User.Role)
			users.GET("/all", authMiddleware.Admin(), h.User.ListAll)
			users.GET("/paging", authMiddleware.Admin(), h.User.ListPaging)
			users.PATCH("/role/:id", authMiddleware.Admin(), h.User.UpdateRole)
			users.PATCH("/:id", authMiddleware.Authenticated(), authMiddleware.UserOrAdmin(), h.User.UpdateUser)
			users.DELETE("/:id", authMiddleware.Admin(), h.User.DeleteUser)
		}

		scholarships := auth.Group("/scholarships")
		scholarships.Use(authMiddleware.Staff())
		{
			scholarships.POST("", h.Scholarship.Create)
			scholarships.PATCH("/:id", h.Scholarship.Update)
			scholarships.DELETE("/:id", h.Scholarship.Delete)
		}

		auth.POST("/create-payment-intent", payLimit, authMiddleware.Authenticated(), h.Payment.CreateIntent)
		payments := auth.Group("/payments")
		payments.Use(authMiddleware.Authenticated())
		{
			payments.GET("/my", h.Payment.ListMine)
			payments.POST("/:id/confirm", h.Payment.Confirm)
		}

		applications := auth.Group("/applications")
		{
			applications.POST("", authMiddleware.Authenticated(), h.Application.Submit)
			applications.GET("", authMiddleware.Staff(), h.Application.List)
			applications.GET("/my", authMiddleware.Authenticated(), h.Application.ListMine)
			applications.GET("/stats", authMiddleware.Authenticated(), h.Application.Stats)
			applications.GET("/:id", authMiddleware.Authenticated(), h.Application.Get)
			applications.PATCH("/:id", authMiddleware.Authenticated(), h.Application.Update)
			applications.PATCH("/:id/status", authMiddleware.Staff(), h.Application.UpdateStatus)
			applications.PATCH("/:id/feedback", authMiddleware.Staff(), h.Application.SetFeedback)
			applications.DELETE("/:id", authMiddleware.Authenticated(), h.Application.Delete)
		}

		reviews := auth.Group("/reviews")
		{
			reviews.POST("", authMiddleware.Authenticated(), h.Review.Create)
			reviews.GET("", authMiddleware.Staff(), h.Review.ListAll)
			reviews.GET("/my", authMiddleware.Authenticated(), h.Review.ListMine)
			reviews.PATCH("/:id", authMiddleware.Authenticated(), h.Review.Update)
			reviews.DELETE("/:id", authMiddleware.Authenticated(), h.Review.Delete)
		}

		auth.POST("/uploads/images", authMiddleware.Staff(), h.Upload.UploadImage)
		auth.GET("/audit/logs", authMiddleware.Admin(), h.Audit.GetAuditLogs)
	}
}
