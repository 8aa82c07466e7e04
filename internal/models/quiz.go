package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quiz struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	Title    string `json:"title"`
	Question string `gorm:"not null" json:"question"`

	// Answer options as a JSON array of strings
	Options       string `gorm:"type:text" json:"options"`
	CorrectAnswer int    `json:"correctAnswer"`

	Category     string `gorm:"index" json:"category"`
	Difficulty   string `json:"difficulty"`
	Reward       int    `gorm:"default:0" json:"reward"` // Dough Coins for a correct answer
	ImageURL     string `json:"imageUrl"`
	ImageAltText string `json:"imageAltText"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return
}

// QuizAttempt is append-only. Repeat attempts at the same quiz are allowed
// and all retained.
type QuizAttempt struct {
	ID             string    `gorm:"primaryKey;type:text" json:"id"`
	UserID         string    `gorm:"index;not null" json:"userId"`
	QuizID         string    `gorm:"index;not null" json:"quizId"`
	SelectedAnswer int       `json:"selectedAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	TimeTaken      int       `json:"timeTaken"` // seconds
	CompletedAt    time.Time `json:"completedAt"`
	CreatedAt      time.Time `json:"createdAt"`

	Quiz Quiz `gorm:"foreignKey:QuizID" json:"-"`
}

func (qa *QuizAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if qa.ID == "" {
		qa.ID = uuid.New().String()
	}
	if qa.CompletedAt.IsZero() {
		qa.CompletedAt = time.Now()
	}
	return
}
