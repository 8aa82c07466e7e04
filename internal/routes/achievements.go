package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/handlers"
	"github.com/sarthak6789/doughjo/internal/middleware"
)

func RegisterAchievementRoutes(r gin.IRouter) {
	achievements := r.Group("/achievements")
	{
		achievements.GET("", middleware.OptionalAuthMiddleware(), handlers.ListAchievements)

		protected := achievements.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/earned", handlers.GetMyAchievements)
			protected.POST("/check", handlers.CheckAchievements)
		}
	}
}
