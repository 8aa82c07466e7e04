package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GlossaryTerm struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	Term       string    `gorm:"uniqueIndex;not null" json:"term"`
	Definition string    `gorm:"type:text" json:"definition"`
	Example    string    `gorm:"type:text" json:"example"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (g *GlossaryTerm) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return
}
