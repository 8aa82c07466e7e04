package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/handlers"
	"github.com/sarthak6789/doughjo/internal/middleware"
)

func RegisterProgressRoutes(r gin.IRouter) {
	progress := r.Group("/progress")
	progress.Use(middleware.AuthMiddleware())
	{
		progress.GET("/lessons", handlers.GetMyLessonProgress)
		progress.GET("/lessons/:lessonId", handlers.GetLessonProgress)
		progress.PUT("/lessons/:lessonId", middleware.ProgressRateLimit(), handlers.UpsertLessonProgress)

		progress.GET("/quizzes/:quizId/attempts", handlers.GetQuizAttempts)
		progress.POST("/quizzes/:quizId/attempts", middleware.ProgressRateLimit(), handlers.RecordQuizAttempt)

		progress.GET("/sessions", handlers.GetStudySessions)
	}
}
