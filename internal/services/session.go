package services

import (
	"time"

	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/pkg/logger"
)

// LogStudySession appends a session row for the activity log. Failures are
// logged and swallowed: session history is best-effort and must never block
// progress writes.
func LogStudySession(userID, sessionType string, lessonID, quizID *string, duration int, completed bool) {
	now := time.Now()
	session := models.StudySession{
		UserID:      userID,
		LessonID:    lessonID,
		QuizID:      quizID,
		SessionType: sessionType,
		Duration:    duration,
		Completed:   completed,
		StartedAt:   now.Add(-time.Duration(duration) * time.Minute),
		EndedAt:     &now,
	}

	if err := database.DB.Create(&session).Error; err != nil {
		l := logger.WithUser(userID)
		l.Error().Err(err).Str("session_type", sessionType).Msg("Failed to log study session")
	}
}
