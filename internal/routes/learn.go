package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/handlers"
	"github.com/sarthak6789/doughjo/internal/middleware"
)

func RegisterLearnRoutes(r gin.IRouter) {
	learn := r.Group("/learn")
	{
		// Public content (optional auth attaches per-user progress)
		learn.GET("/lessons", middleware.OptionalAuthMiddleware(), handlers.ListLessons)
		learn.GET("/lessons/:id", handlers.GetLesson)
		learn.GET("/quizzes", handlers.ListQuizzes)
		learn.GET("/categories", handlers.ListCategories)
		learn.GET("/glossary", handlers.ListGlossary)

		// Bookmarks require a session
		bookmarks := learn.Group("/bookmarks")
		bookmarks.Use(middleware.AuthMiddleware())
		{
			bookmarks.GET("", handlers.ListBookmarks)
			bookmarks.POST("/:lessonId", handlers.AddBookmark)
			bookmarks.DELETE("/:lessonId", handlers.RemoveBookmark)
		}
	}
}
