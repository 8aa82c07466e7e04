package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/handlers"
	"github.com/sarthak6789/doughjo/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
	r.GET("/check-username", handlers.CheckUsername)

	// Google OAuth
	r.GET("/google", handlers.GoogleLogin)
	r.GET("/google/callback", handlers.GoogleCallback)
}
