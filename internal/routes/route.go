package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"meetapp/internal/config"
	"meetapp/internal/container"
	"meetapp/internal/handlers"
	"meetapp/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "meetapp-api",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// public routes
	r.POST("/users", handlers.RegisterUser(container.UserService))
	r.POST("/sessions", handlers.AuthenticateUser(container.UserService))

	// uploaded banners are served back as static files
	r.Static("/files", cfg.UploadDir)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Tokens))

	protected.PUT("/users", handlers.UpdateUser(container.UserService))
	protected.POST("/files", handlers.UploadFile(container.FileService))

	meetupRoutes := protected.Group("/meetups")
	{
		meetupRoutes.GET("", handlers.ListMeetups(container.MeetupService))
		meetupRoutes.POST("", handlers.CreateMeetup(container.MeetupService))
		meetupRoutes.PUT("", handlers.UpdateMeetup(container.MeetupService))
		meetupRoutes.DELETE("/:id", handlers.DeleteMeetup(container.MeetupService))
	}

	return r
}
