package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthmate/healthmate-backend/internal/common"
)

type RouterConfig struct {
	CORSOrigin string
	// HealthCheck is probed by /healthz; typically a database ping.
	HealthCheck    func(ctx context.Context) error
	AuthMiddleware *AuthMiddleware
	UserHandler    *UserHandler
	FileHandler    *FileHandler
	InsightHandler *InsightHandler
	VitalsHandler  *VitalsHandler
	FamilyHandler  *FamilyHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(requestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", cfg.UserHandler.Register)
		user.POST("/login", cfg.UserHandler.Login)
		user.GET("/logout", cfg.UserHandler.Logout)
		user.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.UserHandler.GetMe)
	}

	files := api.Group("/files", cfg.AuthMiddleware.RequireAuth())
	{
		files.POST("/upload", cfg.FileHandler.Upload)
		files.GET("/all", cfg.FileHandler.GetAll)
		files.DELETE("/:fileId", cfg.FileHandler.Delete)
		files.POST("/analyze/:fileId", cfg.FileHandler.Analyze)
	}

	insights := api.Group("/insights", cfg.AuthMiddleware.RequireAuth())
	{
		insights.GET("", cfg.InsightHandler.GetAll)
		insights.GET("/:id", cfg.InsightHandler.GetOne)
	}

	vitals := api.Group("/vitals", cfg.AuthMiddleware.RequireAuth())
	{
		vitals.POST("/add", cfg.VitalsHandler.Add)
		vitals.GET("/history", cfg.VitalsHandler.History)
		vitals.GET("/export", cfg.VitalsHandler.Export)
	}

	family := api.Group("/family", cfg.AuthMiddleware.RequireAuth())
	{
		family.POST("/add", cfg.FamilyHandler.Add)
		family.PUT("/update/:memberId", cfg.FamilyHandler.Update)
		family.GET("", cfg.FamilyHandler.List)
	}

	return router
}

// requestID tags every request with an id, honoring one supplied by the
// caller, so log lines from the handler down to the model client correlate.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), rid))
		c.Next()
	}
}
