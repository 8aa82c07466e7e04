package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lesson struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Category    string `gorm:"index" json:"category"`
	Difficulty  string `json:"difficulty"` // Beginner | Intermediate | Advanced

	// Card content rendered by the client, stored as a JSON document
	Content string `gorm:"type:text" json:"content"`

	CoverImageURL string `json:"coverImageUrl"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	ImageAltText  string `json:"imageAltText"`

	BeltRequired  BeltLevel `gorm:"type:text;default:'white'" json:"beltRequired"`
	OrderIndex    int       `gorm:"index" json:"orderIndex"`
	EstimatedTime int       `json:"estimatedTime"` // minutes

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

type LessonCategory struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	IconURL     string    `json:"iconUrl"`
	ColorHex    string    `json:"colorHex"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (lc *LessonCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if lc.ID == "" {
		lc.ID = uuid.New().String()
	}
	return
}

// Bookmark marks a lesson the user saved for later. One row per (user, lesson).
type Bookmark struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_bookmark_user_lesson;not null" json:"userId"`
	LessonID  string    `gorm:"uniqueIndex:idx_bookmark_user_lesson;not null" json:"lessonId"`
	CreatedAt time.Time `json:"createdAt"`

	Lesson Lesson `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
