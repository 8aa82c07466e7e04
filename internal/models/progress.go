package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonProgress holds the per-(user, lesson) completion state. Exactly one
// row per pair; writes are last-write-wins upserts.
type LessonProgress struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	UserID   string `gorm:"uniqueIndex:idx_progress_user_lesson;not null" json:"userId"`
	LessonID string `gorm:"uniqueIndex:idx_progress_user_lesson;not null" json:"lessonId"`

	Completed   bool       `gorm:"default:false" json:"completed"`
	Progress    float64    `gorm:"default:0" json:"progress"` // fraction in [0,1]
	TimeSpent   int        `gorm:"default:0" json:"timeSpent"` // minutes
	CompletedAt *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (LessonProgress) TableName() string {
	return "user_progress"
}

func (lp *LessonProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if lp.ID == "" {
		lp.ID = uuid.New().String()
	}
	return
}

// StudySession is the append-only activity log that feeds the streak
// tracker. Either LessonID or QuizID is set depending on the session type.
type StudySession struct {
	ID          string     `gorm:"primaryKey;type:text" json:"id"`
	UserID      string     `gorm:"index;not null" json:"userId"`
	LessonID    *string    `json:"lessonId"`
	QuizID      *string    `json:"quizId"`
	SessionType string     `json:"sessionType"` // lesson | quiz
	Duration    int        `gorm:"default:0" json:"duration"` // minutes
	Completed   bool       `gorm:"default:false" json:"completed"`
	StartedAt   time.Time  `json:"startedAt"`
	EndedAt     *time.Time `json:"endedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (ss *StudySession) BeforeCreate(tx *gorm.DB) (err error) {
	if ss.ID == "" {
		ss.ID = uuid.New().String()
	}
	if ss.StartedAt.IsZero() {
		ss.StartedAt = time.Now()
	}
	return
}
