package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/handlers"
	"github.com/sarthak6789/doughjo/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		profile := users.Group("/profile")
		profile.Use(middleware.AuthMiddleware())
		{
			profile.GET("", handlers.GetProfile)
			profile.PUT("", handlers.UpdateProfile)
			profile.GET("/stats", handlers.GetStats)
			profile.POST("/avatar", middleware.UploadRateLimit(), handlers.UploadAvatar)
		}
	}

	// Public profile view
	r.GET("/public/users/:username", handlers.GetPublicProfile)
}
